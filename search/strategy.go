package search

import "github.com/katalvlaran/mazekit/maze"

// edgeCost returns the cost of the edge current→neighbor under kind k.
// The unordered strategies charge a constant 1 per step; the cost-aware
// strategies charge the neighbor's assigned cell cost.
func edgeCost(k Kind, md *maze.Model, neighbor maze.Cell) float64 {
	switch k {
	case UniformCost, AStar:
		return md.Cost(neighbor)
	default:
		return 1
	}
}

// priority returns the value pushed with a relaxed neighbor. It is only
// observed by the heap frontiers: the new cumulative cost for
// uniform-cost, plus the Manhattan heuristic for A*.
func priority(k Kind, newCost float64, neighbor, goal maze.Cell) float64 {
	if k == AStar {
		return newCost + manhattan(neighbor, goal)
	}

	return newCost
}

// manhattan is the A* heuristic: grid distance to the fixed goal.
// It ignores per-cell costs, an accepted approximation that stays
// admissible on unit-cost grids and, with random cost ranges starting
// at 1, never overestimates the remaining cost.
func manhattan(a, b maze.Cell) float64 {
	return float64(abs(a.Row-b.Row) + abs(a.Col-b.Col))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
