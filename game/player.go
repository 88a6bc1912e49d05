package game

import (
	"math"

	"github.com/katalvlaran/mazekit/maze"
	"github.com/katalvlaran/mazekit/search"
)

// Player is the motion model consumed by the renderer each tick: a
// continuous pixel position interpolated at constant speed along a
// precomputed path of search nodes. It holds no game logic beyond the
// lerp; the controller installs the path and drives Advance.
type Player struct {
	// X, Y is the position in pixels, starting at the start cell center.
	X, Y float64

	// Direction is the facing angle in radians, recomputed from the
	// motion vector on every tick that moves.
	Direction float64

	// Path is the node sequence to walk, start first.
	Path []*search.Node

	// Index is the path position most recently reached.
	Index int

	// Speed is the motion speed in pixels per second.
	Speed float64

	// CellSize converts cell coordinates to pixel centers.
	CellSize float64
}

// NewPlayer places a player at the center of the start cell using
// DefaultSpeed and DefaultCellSize.
func NewPlayer(start maze.Cell) *Player {
	p := &Player{Speed: DefaultSpeed, CellSize: DefaultCellSize}
	p.X, p.Y = p.center(start)

	return p
}

// SetPath installs a reconstructed path and rewinds the path index.
func (p *Player) SetPath(path []*search.Node) {
	p.Path = path
	p.Index = 0
}

// Arrived reports whether the player has reached the final path node.
func (p *Player) Arrived() bool { return p.Index >= len(p.Path)-1 }

// Advance moves the player toward the next path node at constant speed.
// When one tick's travel covers the remaining distance, the position
// snaps to the node and the index advances; otherwise the position moves
// along the unit vector and the facing direction follows it.
func (p *Player) Advance(dt float64) {
	if p.Arrived() {
		return
	}
	next := p.Path[p.Index+1]
	tx, ty := p.center(next.Cell())
	vx, vy := tx-p.X, ty-p.Y
	dist := math.Hypot(vx, vy)
	if dist == 0 {
		p.Index++
		return
	}

	ux, uy := vx/dist, vy/dist
	move := p.Speed * dt
	if move >= dist {
		p.X, p.Y = tx, ty
		p.Index++
	} else {
		p.X += ux * move
		p.Y += uy * move
	}
	p.Direction = math.Atan2(uy, ux)
}

// center returns the pixel center of a cell.
func (p *Player) center(c maze.Cell) (x, y float64) {
	return float64(c.Col)*p.CellSize + p.CellSize/2,
		float64(c.Row)*p.CellSize + p.CellSize/2
}
