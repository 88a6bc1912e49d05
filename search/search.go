package search

import (
	"github.com/katalvlaran/mazekit/maze"
)

// phase tracks where a Search is in its snapshot sequence.
type phase int

const (
	phaseRunning phase = iota // frontier pops still pending
	phaseFinal                // terminal duplicate snapshot still owed
	phaseDone                 // sequence exhausted; Step returns ErrDone
)

// Search is one in-progress exploration of a maze: an explicit resumable
// state object advanced by the caller one frontier pop at a time. Each
// New call creates fresh internal state; a Search is single-use and not
// restartable. Not safe for concurrent use — the driving loop is
// expected to call Step once per render tick from a single goroutine.
type Search struct {
	model *maze.Model
	kind  Kind
	opts  Options
	goal  maze.Cell

	frontier   frontier
	nodes      arena
	root       *Node
	current    *Node // last node popped from the frontier
	costSoFar  map[int]float64
	visited    map[int]struct{}
	visitOrder []int // first-visit order of IDs, for snapshot Visited

	phase   phase
	outcome Outcome
	scratch []maze.Cell // reused neighbor buffer
}

// New creates a fresh stepwise search of kind k over md, from the
// model's start cell toward its goal cell.
// Returns ErrNilModel or ErrUnknownKind on invalid input.
func New(md *maze.Model, k Kind, opts ...Option) (*Search, error) {
	if md == nil {
		return nil, ErrNilModel
	}
	if !k.Valid() {
		return nil, ErrUnknownKind
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Search{
		model:     md,
		kind:      k,
		opts:      o,
		goal:      md.Goal(),
		frontier:  newFrontier(k),
		nodes:     make(arena),
		costSoFar: make(map[int]float64),
		visited:   make(map[int]struct{}),
	}

	// Seed the tree with the root: the start cell at cost 0.
	root := s.nodes.node(md.Start())
	root.Cost = 0
	root.StepCost = 0
	s.root = root
	s.costSoFar[root.ID()] = 0
	s.markVisited(root.ID())
	s.frontier.Push(root.ID(), priority(k, 0, md.Start(), s.goal))

	return s, nil
}

// Kind returns the strategy this search was created with.
func (s *Search) Kind() Kind { return s.kind }

// Outcome reports how the sequence terminated; Running until it has.
func (s *Search) Outcome() Outcome { return s.outcome }

// Done reports whether Step has returned its last snapshot.
func (s *Search) Done() bool { return s.phase == phaseDone }

// Root returns the root of the search tree (the start cell's node).
func (s *Search) Root() *Node { return s.root }

// Parent resolves n's current parent in the search tree, nil for the
// root. The answer can change between steps when n is re-parented.
func (s *Search) Parent(n *Node) *Node {
	if n.parent == noParent {
		return nil
	}

	return s.nodes[n.parent]
}

// Children resolves n's owned children in attach order. The returned
// slice is freshly allocated per call.
func (s *Search) Children(n *Node) []*Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	for i, id := range n.children {
		out[i] = s.nodes[id]
	}

	return out
}

// Step advances the search by exactly one unit of work — one frontier
// pop and expansion — and returns the resulting snapshot.
//
// The produced sequence mirrors the expansion loop: one snapshot per
// pop, then, once the goal is popped, one final duplicate snapshot of
// the goal node. An emptied frontier yields a single Exhausted snapshot
// instead. After that, every call returns ErrDone.
func (s *Search) Step() (Snapshot, error) {
	switch s.phase {
	case phaseDone:
		return Snapshot{}, ErrDone

	case phaseFinal:
		// Terminal duplicate of the last popped node.
		s.phase = phaseDone
		return s.snapshot(), nil
	}

	id, ok := s.frontier.Pop()
	if !ok {
		// Frontier emptied without popping the goal: a distinct failure
		// outcome, only reachable with an externally supplied maze.
		s.outcome = Exhausted
		s.phase = phaseDone

		return s.snapshot(), nil
	}

	s.current = s.nodes[id]
	s.opts.OnExpand(s.current)
	snap := s.snapshot()

	if s.current.Cell() == s.goal {
		s.outcome = FoundGoal
		s.phase = phaseFinal

		return snap, nil
	}
	s.extend(s.current)

	return snap, nil
}

// extend relaxes every passable neighbor of cur: if the neighbor has
// never been relaxed, or the path through cur is strictly cheaper than
// its recorded cost, re-cost and re-parent it (the same node object is
// reused, never replaced), mark it visited, and push it with the
// strategy's priority. Shared by all four strategies; it is what makes
// uniform-cost and A* optimal and is harmlessly conservative for the
// unordered frontiers.
func (s *Search) extend(cur *Node) {
	s.scratch = s.model.Neighbors(cur.Cell(), s.scratch[:0])
	curCost := s.costSoFar[cur.ID()]
	for _, nc := range s.scratch {
		step := edgeCost(s.kind, s.model, nc)
		newCost := curCost + step
		id := CellID(nc)
		if old, seen := s.costSoFar[id]; seen && newCost >= old {
			continue
		}

		node := s.nodes.node(nc)
		s.costSoFar[id] = newCost
		node.Cost = newCost
		node.StepCost = step
		s.nodes.reparent(node, cur)
		s.markVisited(id)
		s.opts.OnRelax(cur, node)
		s.frontier.Push(id, priority(s.kind, newCost, nc, s.goal))
	}
}

// markVisited records id in first-visit order; later relaxations keep
// the original position.
func (s *Search) markVisited(id int) {
	if _, ok := s.visited[id]; ok {
		return
	}
	s.visited[id] = struct{}{}
	s.visitOrder = append(s.visitOrder, id)
}

// snapshot materializes the read-only view of the current step.
func (s *Search) snapshot() Snapshot {
	visited := make([]*Node, len(s.visitOrder))
	for i, id := range s.visitOrder {
		visited[i] = s.nodes[id]
	}

	return Snapshot{Current: s.current, Root: s.root, Visited: visited}
}

// Run drains the snapshot sequence and returns the last snapshot along
// with the terminal outcome. Convenience for batch callers (tools,
// tests) that do not need per-step control.
func (s *Search) Run() (Snapshot, Outcome) {
	last := s.snapshot()
	for {
		snap, err := s.Step()
		if err != nil {
			return last, s.outcome
		}
		last = snap
	}
}
