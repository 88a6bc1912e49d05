// Package maze defines core types, tunable options, and sentinel errors
// for maze generation and the cell-lookup model.
package maze

import (
	"errors"
	"math/rand"
	"strings"
)

// Grid cell runes. A maze grid is built exclusively from these four.
const (
	Wall    byte = '#' // impassable cell
	Passage byte = ' ' // open cell
	Start   byte = 'S' // the unique start cell (always (1,1))
	Goal    byte = 'G' // the unique goal cell (farthest from start)
)

// MinDim is the smallest allowed maze dimension after odd-normalization.
// Anything below 3 leaves no interior cells to carve.
const MinDim = 3

// DefaultBranchFactor is the probability used for the extra-passage pass
// when no WithBranchFactor option is supplied.
const DefaultBranchFactor = 0.1

// Sentinel errors for maze generation and model construction.
var (
	// ErrTooSmall indicates width or height below MinDim after
	// normalization, or a 3×3 grid, whose single interior cell cannot
	// hold distinct start and goal cells.
	ErrTooSmall = errors.New("maze: dimensions leave too few interior cells")

	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")

	// ErrStartGoal indicates a grid without exactly one 'S' and one 'G'.
	ErrStartGoal = errors.New("maze: grid must contain exactly one start and one goal")
)

// Cell addresses one grid position by row and column.
type Cell struct {
	Row, Col int
}

// Maze is the product of Generate: an immutable character grid plus the
// start cell, the goal cell, and a per-passage-cell traversal cost map.
// Wall cells never appear in Costs.
type Maze struct {
	Grid  []string
	Start Cell
	Goal  Cell
	Costs map[Cell]float64
}

// Rows returns the number of grid rows.
func (m *Maze) Rows() int { return len(m.Grid) }

// Cols returns the number of grid columns (0 for an empty grid).
func (m *Maze) Cols() int {
	if len(m.Grid) == 0 {
		return 0
	}

	return len(m.Grid[0])
}

// String renders the grid one row per line, suitable for golden tests.
func (m *Maze) String() string { return strings.Join(m.Grid, "\n") }

// Options holds parameters for Generate.
//
// BranchFactor – probability, per eligible interior wall cell, of carving
// an extra passage after the spanning carve. 0 keeps the maze perfect.
// CostRange    – if non-nil, every passage cell receives a cost drawn
// uniformly from [Min,Max]; if nil, every passage cell costs 1.
// Rand         – RNG for carving order, branching, and cost sampling.
type Options struct {
	BranchFactor float64
	CostRange    *CostRange
	Rand         *rand.Rand
}

// CostRange bounds the uniform per-cell cost distribution.
type CostRange struct {
	Min, Max float64
}

// Option configures Generate via functional arguments.
// Option constructors validate their inputs and panic on meaningless
// values; Generate itself never panics.
type Option func(*Options)

// WithBranchFactor sets the extra-passage probability p ∈ [0,1].
// Panics outside that range.
func WithBranchFactor(p float64) Option {
	if p < 0 || p > 1 {
		panic("maze: WithBranchFactor(p outside [0,1])")
	}
	return func(o *Options) {
		o.BranchFactor = p
	}
}

// WithCostRange assigns uniform random costs from [min,max] to every
// passage cell, start and goal included. Panics if min > max or min < 0;
// negative costs would break the search engine's optimality guarantees.
func WithCostRange(min, max float64) Option {
	if min < 0 || min > max {
		panic("maze: WithCostRange requires 0 <= min <= max")
	}
	return func(o *Options) {
		o.CostRange = &CostRange{Min: min, Max: max}
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(o *Options) {
		o.Rand = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed so that two
// Generate calls with identical parameters produce identical mazes.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
	}
}
