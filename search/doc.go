// Package search implements a stepwise fringe search over a maze model,
// specialized into four interchangeable strategies: breadth-first,
// depth-first, uniform-cost, and A*.
//
// What
//
//   - New(model, kind) builds an explicit resumable search state:
//     frontier, cost table, visited set, and a node arena forming the
//     search tree.
//   - Step() advances by exactly one frontier pop-and-expand and returns
//     a Snapshot {Current, Root, Visited}; the driving loop calls it once
//     per render tick. Past exhaustion Step returns ErrDone.
//   - All four strategies share one relaxation rule: a neighbor is
//     re-costed and re-parented only when the new path is strictly
//     cheaper. The same Node object is reused across relaxations, so the
//     rendered tree can visibly re-root a subtree mid-run.
//   - ReconstructPath / ReconstructPathTo walk parent links into a
//     start-first path; PathCost totals its step costs.
//
// Why
//
//   - One engine, four disciplines: the frontier order and edge-cost
//     function are the only things that differ between strategies, so
//     they are the only things a Kind changes.
//   - Suspend/resume as data: there is no generator or goroutine; the
//     whole per-tick unit of work is one Step call on a plain struct.
//
// Determinism
//
//	Node identity is (row<<16)|col; frontier ties in the priority
//	frontiers break by a monotonic insertion counter; the model iterates
//	neighbors in a fixed order. Two searches over the same maze with the
//	same Kind produce identical snapshot sequences.
//
// No closed set
//
//	A node may be pushed and popped more than once if a cheaper path to
//	it is found before its first expansion. Repeated expansion only ever
//	tightens costs, never worsens them — correctness holds, at the price
//	of some repeated work. Intentional simplicity trade-off.
//
// Termination
//
//	The snapshot sequence ends when the goal is popped (Outcome
//	FoundGoal, with one final duplicate snapshot) or when the frontier
//	empties first (Outcome Exhausted — impossible for generated mazes,
//	but externally supplied grids must not crash the engine).
//
// Complexity (V = passage cells, E ≤ 4V)
//
//   - BreadthFirst/DepthFirst: O(V + E) pops worst case, O(1) per push/pop
//   - UniformCost/AStar: O((V + E) log V) with lazy decrease-key
//   - Memory: O(V) for arena, cost table, visited set, frontier
//
// Errors
//
//   - ErrNilModel     if New receives a nil model.
//   - ErrUnknownKind  if New receives an undeclared Kind.
//   - ErrDone         if Step is called past exhaustion.
//   - ErrNoPath       if ReconstructPathTo names an unreached cell.
package search
