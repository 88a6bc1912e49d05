// Package maze generates guaranteed-solvable mazes and exposes them
// through a cell-lookup Model suitable for graph search.
//
// What
//
//   - Generate(width, height, opts...) carves a maze as a randomized
//     depth-first spanning tree from the fixed start cell (1,1):
//     a perfect maze with exactly one path between any two passage cells.
//   - A branching pass (WithBranchFactor) then converts interior wall
//     cells adjacent to a passage into passages with a fixed probability,
//     adding alternate routes without ever isolating a cell.
//   - The goal is the farthest reachable cell from the start, found by
//     BFS over passage cells; distance ties break by discovery order.
//   - WithCostRange assigns every passage cell (start and goal included)
//     an independent uniform random traversal cost; without it, every
//     passage costs 1.
//   - NewModel wraps a Maze for searches: bounds checks, passability,
//     per-cell cost, and deterministic 4-directional neighbor iteration.
//
// Why
//
//   - Every generated maze is solvable by construction, so search
//     strategies can be compared on identical, reproducible inputs.
//   - The cost map turns the same grid into a weighted search problem
//     for uniform-cost and A* without changing its shape.
//
// Determinism
//
//	All randomness (carve order, branch decisions, cost sampling) flows
//	through a single RNG. WithSeed locks it: two Generate calls with the
//	same seed and parameters produce byte-identical grids and cost maps.
//
// Grid format
//
//	'#' wall · ' ' passage · 'S' start · 'G' goal
//	Row 0, column 0, and the opposite edges are always walls; even
//	dimensions are incremented so the wall/passage lattice aligns.
//
// Complexity (W = width, H = height)
//
//   - Time:   O(W×H) for carve, branching, goal BFS, and cost assignment
//   - Memory: O(W×H)
//
// Options
//
//   - WithBranchFactor(p): extra-passage probability in [0,1] (default 0.1).
//   - WithCostRange(min, max): uniform random passage costs (default: cost 1).
//   - WithSeed(seed): reproducible RNG.
//   - WithRand(r): explicit RNG instance.
//
// Errors
//
//   - ErrTooSmall        if normalized dimensions leave no interior, or
//     a single interior cell (start and goal must be distinct).
//   - ErrEmptyGrid       if a model is built from an empty grid.
//   - ErrNonRectangular  if grid rows differ in length.
//   - ErrStartGoal       if a grid lacks exactly one 'S' and one 'G'.
package maze
