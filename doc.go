// Package mazekit is an incremental maze-search playground: it generates
// guaranteed-solvable mazes, explores them with interchangeable search
// strategies, and exposes the exploration as a step-by-step process
// suitable for frame-by-frame visualization.
//
// 🚀 What is mazekit?
//
//	A small, focused library that brings together:
//		• Maze generation: randomized recursive-backtracking carve,
//		  optional extra branching, farthest-cell goal selection
//		• Cost mazes: uniform random per-cell traversal costs
//		• Stepwise search: breadth-first, depth-first, uniform-cost and A*
//		  over a single shared relaxation engine, one frontier pop per step
//		• A game controller: a Paused→Searching→Moving state machine that
//		  drives one search step per render tick and then walks the path
//
// ✨ Why choose mazekit?
//
//   - Deterministic – seedable generation and insertion-order tie-breaks
//     make every run reproducible
//   - Inspectable – every search step yields a snapshot of the current
//     node, the search tree and the visited set
//   - Pure Go core – the library packages use no cgo and no hidden deps
//
// Everything is organized under three packages plus one tool:
//
//	maze/        — maze generation, cost assignment, and the cell model
//	search/      — search nodes, frontiers, the stepwise engine, paths
//	game/        — controller state machine and player motion
//	cmd/mazeimg/ — render a solved maze to a PNG
//
// Quick ASCII example (5×5, branch factor 0):
//
//	#####
//	#S#G#
//	# # #
//	#   #
//	#####
//
// Dive into examples/ for runnable demos of generation, each strategy,
// and the controller loop.
//
//	go get github.com/katalvlaran/mazekit
package mazekit
