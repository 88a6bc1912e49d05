package search

import "github.com/katalvlaran/mazekit/maze"

// ReconstructPath walks parent links from the last-expanded node back to
// the root and returns the reversed sequence, start first. It reads the
// tree without mutating it, so calling it repeatedly on the same
// exhausted search yields identical sequences.
//
// When the search terminated with FoundGoal the result is the full
// start→goal path. When it terminated Exhausted the result ends at
// whatever node was last expanded — callers that must distinguish the
// two should check Outcome or use ReconstructPathTo.
func (s *Search) ReconstructPath() []*Node {
	if s.current == nil {
		return []*Node{s.root}
	}

	return s.pathFrom(s.current)
}

// ReconstructPathTo returns the start→cell path recorded in the search
// tree, or ErrNoPath if the search never reached cell. Unlike
// ReconstructPath it never silently truncates: asking for the goal of an
// Exhausted search is an error, not a shorter path.
func (s *Search) ReconstructPathTo(cell maze.Cell) ([]*Node, error) {
	n, ok := s.nodes[CellID(cell)]
	if !ok {
		return nil, ErrNoPath
	}

	return s.pathFrom(n), nil
}

// pathFrom builds the root→n node sequence by walking parents.
func (s *Search) pathFrom(n *Node) []*Node {
	path := []*Node{}
	for cur := n; cur != nil; cur = s.Parent(cur) {
		path = append(path, cur)
	}
	// reverse to get start → n
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost totals the step costs along a reconstructed path. The first
// node contributes nothing (there is no incoming edge), so the total
// equals the last node's cumulative cost. A nil or empty path costs 0.
func PathCost(path []*Node) float64 {
	if len(path) == 0 {
		return 0
	}
	var total float64
	for _, n := range path[1:] {
		total += n.StepCost
	}

	return total
}
