package maze

// Model is the cell-lookup view of a Maze consumed by the search engine.
// It is immutable once built: the grid is referenced, never copied, and
// a Maze is never mutated after Generate returns.
//
// Neighbor iteration is 4-directional in the fixed order S, N, E, W
// (the order of the lattice offsets), which keeps traversal order fully
// deterministic for a given grid.
type Model struct {
	grid       []string
	rows, cols int
	start      Cell
	goal       Cell
	costs      map[Cell]float64
}

// NewModel validates m and wraps it for cell lookups.
// Returns ErrEmptyGrid, ErrNonRectangular, or ErrStartGoal when m —
// typically an externally supplied maze — violates the grid invariants.
// Complexity: O(W×H) validation, O(1) memory beyond the error path.
func NewModel(m *Maze) (*Model, error) {
	if m == nil || len(m.Grid) == 0 || len(m.Grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(m.Grid[0])
	var start, goal Cell
	var nStart, nGoal int
	for r, row := range m.Grid {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for c := 0; c < cols; c++ {
			switch row[c] {
			case Start:
				start = Cell{Row: r, Col: c}
				nStart++
			case Goal:
				goal = Cell{Row: r, Col: c}
				nGoal++
			}
		}
	}
	if nStart != 1 || nGoal != 1 {
		return nil, ErrStartGoal
	}

	return &Model{
		grid:  m.Grid,
		rows:  len(m.Grid),
		cols:  cols,
		start: start,
		goal:  goal,
		costs: m.Costs,
	}, nil
}

// Start returns the unique 'S' cell.
func (md *Model) Start() Cell { return md.start }

// Goal returns the unique 'G' cell.
func (md *Model) Goal() Cell { return md.goal }

// Rows returns the grid height.
func (md *Model) Rows() int { return md.rows }

// Cols returns the grid width.
func (md *Model) Cols() int { return md.cols }

// InBounds reports whether cell lies within the grid.
func (md *Model) InBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < md.rows && cell.Col >= 0 && cell.Col < md.cols
}

// Passable reports whether cell is in bounds and not a wall.
func (md *Model) Passable(cell Cell) bool {
	return md.InBounds(cell) && md.grid[cell.Row][cell.Col] != Wall
}

// Cost returns the traversal cost assigned to a passage cell.
// Cells absent from the cost map (walls, or mazes built without costs)
// report 1, the unweighted step cost.
func (md *Model) Cost(cell Cell) float64 {
	if c, ok := md.costs[cell]; ok {
		return c
	}

	return 1
}

// Neighbors appends the passable 4-directional neighbors of cell to dst
// and returns it. Passing a reused dst avoids per-step allocations in
// the search loop.
func (md *Model) Neighbors(cell Cell, dst []Cell) []Cell {
	for _, d := range oneStep {
		next := Cell{Row: cell.Row + d[0], Col: cell.Col + d[1]}
		if md.Passable(next) {
			dst = append(dst, next)
		}
	}

	return dst
}
