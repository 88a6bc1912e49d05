package maze

import (
	"math/rand"
	"time"
)

// carveStart is the fixed start cell of every generated maze. Row 0 and
// column 0 form the outer wall border, so (1,1) is the first interior cell.
var carveStart = Cell{Row: 1, Col: 1}

// twoStep lists the four carving directions on the wall/passage lattice.
// Carving moves two cells at a time so walls and passages stay aligned.
var twoStep = [4][2]int{{2, 0}, {-2, 0}, {0, 2}, {0, -2}}

// oneStep lists the four orthogonal neighbor offsets.
var oneStep = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Generate produces a guaranteed-solvable maze of the given dimensions.
//
// Even dimensions are incremented to the next odd value so the wall
// border and the interior cell lattice align. The maze is carved as a
// randomized depth-first spanning tree from (1,1), which makes every
// interior passage reachable (a perfect maze); an optional branching
// pass then adds cycles without ever creating isolated islands, since
// every new passage touches an already-connected cell. The goal is the
// farthest reachable cell from the start, found by BFS, with discovery
// order breaking distance ties.
//
// Returns ErrTooSmall when the normalized dimensions leave no interior,
// or only a single interior cell (start and goal must be distinct).
//
// Complexity: O(W×H) time and memory.
func Generate(width, height int, opts ...Option) (*Maze, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// Normalize to odd dimensions, then validate.
	if width%2 == 0 {
		width++
	}
	if height%2 == 0 {
		height++
	}
	if width < MinDim || height < MinDim {
		return nil, ErrTooSmall
	}
	if width == MinDim && height == MinDim {
		// A 3×3 grid has a single interior cell: no room for distinct
		// start and goal cells.
		return nil, ErrTooSmall
	}

	c := &carver{
		width:  width,
		height: height,
		rng:    o.Rand,
		grid:   make([][]byte, height),
	}
	for r := range c.grid {
		row := make([]byte, width)
		for i := range row {
			row[i] = Wall
		}
		c.grid[r] = row
	}

	// 1) Spanning carve from the fixed start cell.
	c.set(carveStart, Passage)
	c.carveFrom(carveStart)

	// 2) Extra passages with probability BranchFactor per eligible wall.
	c.addBranches(o.BranchFactor)

	// 3) Farthest reachable cell from the start becomes the goal.
	goal := c.farthestFrom(carveStart)
	c.set(carveStart, Start)
	c.set(goal, Goal)

	// 4) Freeze the grid and assign passage costs.
	grid := make([]string, height)
	for r, row := range c.grid {
		grid[r] = string(row)
	}
	costs := make(map[Cell]float64, width*height/2)
	for r := 0; r < height; r++ {
		for col := 0; col < width; col++ {
			if c.grid[r][col] == Wall {
				continue
			}
			cell := Cell{Row: r, Col: col}
			if o.CostRange != nil {
				span := o.CostRange.Max - o.CostRange.Min
				costs[cell] = o.CostRange.Min + c.rng.Float64()*span
			} else {
				costs[cell] = 1
			}
		}
	}

	return &Maze{Grid: grid, Start: carveStart, Goal: goal, Costs: costs}, nil
}

// DefaultOptions returns the Options used when no functional options are
// supplied: DefaultBranchFactor, unit costs, and a time-seeded RNG.
// Pass WithSeed to lock outcomes in tests.
func DefaultOptions() Options {
	return Options{
		BranchFactor: DefaultBranchFactor,
		CostRange:    nil,
		Rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// carver holds the mutable state of one Generate run.
type carver struct {
	width, height int
	rng           *rand.Rand
	grid          [][]byte
}

func (c *carver) at(cell Cell) byte     { return c.grid[cell.Row][cell.Col] }
func (c *carver) set(cell Cell, b byte) { c.grid[cell.Row][cell.Col] = b }

// interior reports whether cell lies strictly inside the outer wall border.
func (c *carver) interior(cell Cell) bool {
	return cell.Row > 0 && cell.Row < c.height-1 && cell.Col > 0 && cell.Col < c.width-1
}

// inBounds reports whether cell lies within the grid.
func (c *carver) inBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < c.height && cell.Col >= 0 && cell.Col < c.width
}

// carveFrom knocks passages out of the all-wall grid by recursive
// backtracking: visit the four two-step neighbors in random order, and
// for each still-walled one, open the intervening wall and the neighbor,
// then recurse from the neighbor.
func (c *carver) carveFrom(cur Cell) {
	dirs := twoStep
	c.rng.Shuffle(len(dirs), func(i, j int) {
		dirs[i], dirs[j] = dirs[j], dirs[i]
	})
	for _, d := range dirs {
		next := Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
		if !c.interior(next) || c.at(next) != Wall {
			continue
		}
		between := Cell{Row: cur.Row + d[0]/2, Col: cur.Col + d[1]/2}
		c.set(between, Passage)
		c.set(next, Passage)
		c.carveFrom(next)
	}
}

// addBranches converts interior wall cells adjacent to at least one
// passage into passages with probability p, independently per cell.
// Each conversion touches an already-connected cell, so connectivity is
// preserved and only cycles are added.
func (c *carver) addBranches(p float64) {
	if p == 0 {
		return
	}
	for r := 1; r < c.height-1; r++ {
		for col := 1; col < c.width-1; col++ {
			if c.grid[r][col] != Wall {
				continue
			}
			touching := false
			for _, d := range oneStep {
				if c.grid[r+d[0]][col+d[1]] == Passage {
					touching = true
					break
				}
			}
			if touching && c.rng.Float64() < p {
				c.grid[r][col] = Passage
			}
		}
	}
}

// farthestFrom runs BFS over passage cells and returns the last dequeued
// cell whose distance strictly exceeded the running maximum. Ties at
// equal distance are therefore broken by BFS discovery order, not by
// coordinate.
func (c *carver) farthestFrom(start Cell) Cell {
	queue := []Cell{start}
	dist := map[Cell]int{start: 0}
	farthest, maxDist := start, 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if d := dist[cur]; d > maxDist {
			maxDist = d
			farthest = cur
		}
		for _, d := range oneStep {
			next := Cell{Row: cur.Row + d[0], Col: cur.Col + d[1]}
			if !c.inBounds(next) || c.at(next) == Wall {
				continue
			}
			if _, seen := dist[next]; seen {
				continue
			}
			dist[next] = dist[cur] + 1
			queue = append(queue, next)
		}
	}

	return farthest
}
