// mazeimg generates a maze, solves it with a chosen search strategy, and
// writes a PNG showing the maze, the visited cells, and the solution path.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/yalue/image_utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/mazekit/maze"
	"github.com/katalvlaran/mazekit/search"
)

// cellPixels is the square size of one rendered grid cell.
const cellPixels = 16

// captionHeight is the strip below the maze reserved for the caption.
const captionHeight = 24

// pathThickness is the width of the solution polyline in pixels.
const pathThickness = 3

var (
	wallColor    = color.RGBA{30, 30, 40, 255}
	passageColor = color.RGBA{245, 245, 245, 255}
	visitedColor = color.RGBA{170, 200, 245, 255}
	pathColor    = color.RGBA{220, 60, 60, 255}
	startColor   = color.RGBA{40, 180, 70, 255}
	goalColor    = color.RGBA{100, 120, 255, 255}
	captionColor = color.RGBA{20, 20, 20, 255}
)

// costShade maps a cell cost within [min,max] to a passage shade: cheap
// cells stay light, expensive ones darken toward amber.
func costShade(cost, min, max float64) color.RGBA {
	if max <= min {
		return passageColor
	}
	t := (cost - min) / (max - min)
	blend := func(a, b uint8) uint8 { return uint8(float64(a) + t*(float64(b)-float64(a))) }

	return color.RGBA{
		R: blend(passageColor.R, 235),
		G: blend(passageColor.G, 180),
		B: blend(passageColor.B, 90),
		A: 255,
	}
}

// cellRect returns the pixel rectangle of a grid cell.
func cellRect(c maze.Cell) image.Rectangle {
	return image.Rect(c.Col*cellPixels, c.Row*cellPixels,
		(c.Col+1)*cellPixels, (c.Row+1)*cellPixels)
}

// cellCenter returns the pixel center of a grid cell.
func cellCenter(c maze.Cell) image.Point {
	return image.Pt(c.Col*cellPixels+cellPixels/2, c.Row*cellPixels+cellPixels/2)
}

// fillRect paints r onto img, clipped to img's bounds.
func fillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}

// drawBaseMaze rasterizes walls and (cost-shaded) passages.
func drawBaseMaze(img *image.RGBA, m *maze.Maze) {
	minCost, maxCost := costBounds(m)
	for r, row := range m.Grid {
		for c := 0; c < len(row); c++ {
			cell := maze.Cell{Row: r, Col: c}
			col := wallColor
			if row[c] != maze.Wall {
				col = costShade(m.Costs[cell], minCost, maxCost)
			}
			fillRect(img, cellRect(cell), col)
		}
	}
}

// costBounds scans the cost map for its min and max values.
func costBounds(m *maze.Maze) (min, max float64) {
	first := true
	for _, c := range m.Costs {
		if first || c < min {
			min = c
		}
		if first || c > max {
			max = c
		}
		first = false
	}

	return min, max
}

// drawVisited overlays every node the search expanded or relaxed.
func drawVisited(img *image.RGBA, visited []*search.Node) {
	const inset = 4
	for _, n := range visited {
		fillRect(img, cellRect(n.Cell()).Inset(inset), visitedColor)
	}
}

// drawPath draws the solution as a thick polyline through cell centers.
// Path segments are axis-aligned (4-directional movement), so each is a
// filled rectangle between consecutive centers.
func drawPath(img *image.RGBA, path []*search.Node) {
	const half = pathThickness / 2
	for i := 1; i < len(path); i++ {
		a := cellCenter(path[i-1].Cell())
		b := cellCenter(path[i].Cell())
		seg := image.Rect(a.X, a.Y, b.X, b.Y).Canon().Inset(-half)
		fillRect(img, seg, pathColor)
	}
}

// addEndpointArrows composes start/goal arrows over the maze image.
func addEndpointArrows(base *image.RGBA, m *maze.Maze) (*image.RGBA, error) {
	composite := image_utils.NewCompositeImage()
	if e := composite.AddImage(base, image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("adding base maze image: %w", e)
	}
	startArrow := image_utils.ResizeImage(image_utils.RightArrow(startColor),
		cellPixels, cellPixels)
	if e := composite.AddImage(startArrow, cellRect(m.Start).Min); e != nil {
		return nil, fmt.Errorf("adding start arrow: %w", e)
	}
	goalArrow := image_utils.ResizeImage(image_utils.DownArrow(goalColor),
		cellPixels, cellPixels)
	if e := composite.AddImage(goalArrow, cellRect(m.Goal).Min); e != nil {
		return nil, fmt.Errorf("adding goal arrow: %w", e)
	}

	return image_utils.ToRGBA(composite), nil
}

// drawCaption writes a centered caption line below the maze.
func drawCaption(img *image.RGBA, text string, width, baselineY int) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(captionColor),
		Face: basicfont.Face7x13,
	}
	textWidth := int(drawer.MeasureString(text) >> 6)
	drawer.Dot = fixed.Point26_6{
		X: fixed.I((width - textWidth) / 2),
		Y: fixed.I(baselineY),
	}
	drawer.DrawString(text)
}

func run() int {
	var width, height, cellsArg int
	var seed int64
	var branch, costMin, costMax float64
	var algorithm, outFilename string
	flag.IntVar(&width, "width", 31, "Maze width in grid cells.")
	flag.IntVar(&height, "height", 21, "Maze height in grid cells.")
	flag.IntVar(&cellsArg, "cells", 0, "If set, overrides both width and height.")
	flag.Int64Var(&seed, "seed", 1, "Random seed for maze generation.")
	flag.Float64Var(&branch, "branch_factor", 0.1,
		"Probability of carving an extra passage at each eligible wall.")
	flag.Float64Var(&costMin, "cost_min", 0, "Minimum random cell cost.")
	flag.Float64Var(&costMax, "cost_max", 0,
		"Maximum random cell cost. Zero for both bounds keeps unit costs.")
	flag.StringVar(&algorithm, "algorithm", "astar",
		"Search strategy: breadth-first, depth-first, uniform-cost, or astar.")
	flag.StringVar(&outFilename, "out", "maze.png", "Output PNG filename.")
	flag.Parse()
	if cellsArg > 0 {
		width, height = cellsArg, cellsArg
	}

	kind, e := search.ParseKind(algorithm)
	if e != nil {
		fmt.Printf("Invalid -algorithm: %s\n", e)
		return 1
	}
	opts := []maze.Option{maze.WithSeed(seed), maze.WithBranchFactor(branch)}
	if costMax > 0 {
		opts = append(opts, maze.WithCostRange(costMin, costMax))
	}
	m, e := maze.Generate(width, height, opts...)
	if e != nil {
		fmt.Printf("Error generating maze: %s\n", e)
		return 1
	}
	model, e := maze.NewModel(m)
	if e != nil {
		fmt.Printf("Error building maze model: %s\n", e)
		return 1
	}

	s, e := search.New(model, kind)
	if e != nil {
		fmt.Printf("Error creating search: %s\n", e)
		return 1
	}
	last, outcome := s.Run()
	if outcome != search.FoundGoal {
		fmt.Printf("Search ended without reaching the goal: %s\n", outcome)
		return 1
	}
	path, e := s.ReconstructPathTo(model.Goal())
	if e != nil {
		fmt.Printf("Error reconstructing path: %s\n", e)
		return 1
	}

	base := image.NewRGBA(image.Rect(0, 0, m.Cols()*cellPixels, m.Rows()*cellPixels))
	drawBaseMaze(base, m)
	drawVisited(base, last.Visited)
	drawPath(base, path)
	decorated, e := addEndpointArrows(base, m)
	if e != nil {
		fmt.Printf("Error decorating maze image: %s\n", e)
		return 1
	}

	// Append the caption strip below the maze.
	bounds := decorated.Bounds()
	final := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()+captionHeight))
	fillRect(final, final.Bounds(), color.RGBA{255, 255, 255, 255})
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			final.Set(x, y, decorated.At(x, y))
		}
	}
	caption := fmt.Sprintf("%s · %d visited · path cost %.1f · seed %d",
		kind, len(last.Visited), search.PathCost(path), seed)
	drawCaption(final, caption, bounds.Dx(), bounds.Dy()+16)

	f, e := os.Create(outFilename)
	if e != nil {
		fmt.Printf("Error creating %s: %s\n", outFilename, e)
		return 1
	}
	defer f.Close()
	if e = png.Encode(f, image_utils.AddImageBorder(final, color.White, 2)); e != nil {
		fmt.Printf("Error encoding PNG: %s\n", e)
		return 1
	}
	fmt.Printf("Wrote %s (%s, %d path cells)\n", outFilename, kind, len(path))

	return 0
}

func main() {
	os.Exit(run())
}
