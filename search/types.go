// Package search defines core types, strategy kinds, options, and
// sentinel errors for the stepwise maze-search engine.
package search

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for search construction and stepping.
var (
	// ErrNilModel is returned when a nil *maze.Model is passed to New.
	ErrNilModel = errors.New("search: model is nil")

	// ErrUnknownKind is returned for a Kind outside the declared set.
	ErrUnknownKind = errors.New("search: unknown strategy kind")

	// ErrDone is returned by Step once the snapshot sequence is exhausted.
	// A finished Search never wraps around; create a new one to restart.
	ErrDone = errors.New("search: sequence exhausted")

	// ErrNoPath is returned by ReconstructPathTo when the requested cell
	// was never reached by the search.
	ErrNoPath = errors.New("search: no path to requested cell")
)

// Kind selects one of the four frontier disciplines. The set is closed:
// each kind fixes the frontier order, the edge-cost function, and the
// priority pushed, per the table below.
//
//	Kind          Frontier    Edge cost           Priority pushed
//	BreadthFirst  FIFO queue  constant 1          n/a (order only)
//	DepthFirst    LIFO stack  constant 1          n/a (order only)
//	UniformCost   min-heap    neighbor step cost  new cost
//	AStar         min-heap    neighbor step cost  new cost + Manhattan(goal)
type Kind int

const (
	// BreadthFirst expands nodes in insertion (FIFO) order.
	BreadthFirst Kind = iota
	// DepthFirst expands the most recently pushed node first.
	DepthFirst
	// UniformCost expands the lowest cumulative-cost node first.
	UniformCost
	// AStar expands the lowest cost-plus-heuristic node first.
	AStar
)

// kindNames is indexed by Kind; keep in sync with the constants above.
var kindNames = [...]string{"breadth-first", "depth-first", "uniform-cost", "astar"}

// Valid reports whether k is one of the declared strategy kinds.
func (k Kind) Valid() bool { return k >= BreadthFirst && k <= AStar }

// String returns the canonical lowercase name of the strategy.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind resolves a canonical strategy name (as produced by String)
// back to its Kind. Matching is case-insensitive.
// Returns ErrUnknownKind for anything else.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if name == n {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Outcome classifies the terminal state of a Search.
type Outcome int

const (
	// Running means the snapshot sequence has not terminated yet.
	Running Outcome = iota
	// FoundGoal means the goal cell was popped from the frontier.
	FoundGoal
	// Exhausted means the frontier emptied before the goal was popped.
	// Generated mazes cannot produce this; externally supplied ones can.
	Exhausted
)

// String returns a short label for the outcome.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case FoundGoal:
		return "found-goal"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Snapshot is the read-only view produced by one Step: the node just
// popped for expansion, the root of the search tree, and every node
// visited so far in first-visit order. Visited shares Node pointers with
// the live search tree; costs and parents on those nodes may change on
// later steps.
type Snapshot struct {
	Current *Node
	Root    *Node
	Visited []*Node
}

// Option configures a Search via functional arguments.
type Option func(*Options)

// Options holds optional per-search callbacks. Both hooks default to
// no-ops and run synchronously inside Step.
type Options struct {
	// OnExpand is called when a node is popped from the frontier,
	// immediately before its snapshot is produced.
	OnExpand func(n *Node)

	// OnRelax is called whenever a node's cost/parent is tightened,
	// including the first time the node is discovered.
	OnRelax func(parent, child *Node)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnExpand: func(*Node) {},
		OnRelax:  func(*Node, *Node) {},
	}
}

// WithOnExpand registers a callback invoked on every frontier pop.
// Panics on nil to surface programmer error early.
func WithOnExpand(fn func(n *Node)) Option {
	if fn == nil {
		panic("search: WithOnExpand(nil)")
	}
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// WithOnRelax registers a callback invoked on every cost relaxation.
// Panics on nil.
func WithOnRelax(fn func(parent, child *Node)) Option {
	if fn == nil {
		panic("search: WithOnRelax(nil)")
	}
	return func(o *Options) {
		o.OnRelax = fn
	}
}
