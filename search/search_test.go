package search_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazekit/maze"
	"github.com/katalvlaran/mazekit/search"
)

// model builds a maze.Model from raw grid rows and an optional cost map,
// failing the test on invalid fixtures.
func model(t *testing.T, grid []string, costs map[maze.Cell]float64) *maze.Model {
	t.Helper()
	md, err := maze.NewModel(&maze.Maze{Grid: grid, Costs: costs})
	require.NoError(t, err)

	return md
}

// drain steps a search to completion, returning every snapshot produced.
func drain(t *testing.T, s *search.Search) []search.Snapshot {
	t.Helper()
	var snaps []search.Snapshot
	for {
		snap, err := s.Step()
		if err != nil {
			require.ErrorIs(t, err, search.ErrDone)
			return snaps
		}
		snaps = append(snaps, snap)
	}
}

// hopDistance computes the BFS shortest-hop distance between S and G on
// a grid, independently of the search package.
func hopDistance(t *testing.T, md *maze.Model) int {
	t.Helper()
	dist := map[maze.Cell]int{md.Start(): 0}
	queue := []maze.Cell{md.Start()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == md.Goal() {
			return dist[cur]
		}
		for _, next := range md.Neighbors(cur, nil) {
			if _, seen := dist[next]; !seen {
				dist[next] = dist[cur] + 1
				queue = append(queue, next)
			}
		}
	}
	t.Fatal("goal unreachable in fixture")

	return -1
}

// linearCorridor is a 5-cell single-corridor maze: only one path exists.
var linearCorridor = []string{
	"#######",
	"#S   G#",
	"#######",
}

// twoRoutes has exactly two S→G routes; the cost map below makes the
// lower one far cheaper.
var twoRoutes = []string{
	"#####",
	"#S  #",
	"# # #",
	"#  G#",
	"#####",
}

func twoRoutesCosts() map[maze.Cell]float64 {
	return map[maze.Cell]float64{
		{Row: 1, Col: 1}: 1, // S
		{Row: 1, Col: 2}: 10,
		{Row: 1, Col: 3}: 10,
		{Row: 2, Col: 3}: 10,
		{Row: 2, Col: 1}: 1,
		{Row: 3, Col: 1}: 1,
		{Row: 3, Col: 2}: 1,
		{Row: 3, Col: 3}: 1, // G
	}
}

func TestNew_Errors(t *testing.T) {
	_, err := search.New(nil, search.BreadthFirst)
	require.ErrorIs(t, err, search.ErrNilModel)

	md := model(t, linearCorridor, nil)
	_, err = search.New(md, search.Kind(42))
	require.ErrorIs(t, err, search.ErrUnknownKind)
}

func TestOptions_PanicOnNilHook(t *testing.T) {
	require.Panics(t, func() { search.WithOnExpand(nil) })
	require.Panics(t, func() { search.WithOnRelax(nil) })
}

func TestStep_TerminalSequence(t *testing.T) {
	md := model(t, linearCorridor, nil)
	s, err := search.New(md, search.BreadthFirst)
	require.NoError(t, err)

	snaps := drain(t, s)
	require.NotEmpty(t, snaps)
	require.Equal(t, search.FoundGoal, s.Outcome())
	require.True(t, s.Done())

	// The goal pop is followed by one duplicate terminal snapshot.
	last, prev := snaps[len(snaps)-1], snaps[len(snaps)-2]
	require.Equal(t, md.Goal(), last.Current.Cell())
	require.Same(t, prev.Current, last.Current)

	// Past exhaustion Step keeps returning ErrDone, never wraps around.
	for i := 0; i < 3; i++ {
		_, err = s.Step()
		require.ErrorIs(t, err, search.ErrDone)
	}
}

func TestSnapshot_Contents(t *testing.T) {
	md := model(t, linearCorridor, nil)
	s, err := search.New(md, search.BreadthFirst)
	require.NoError(t, err)

	snap, err := s.Step()
	require.NoError(t, err)
	require.Same(t, s.Root(), snap.Root)
	require.Equal(t, md.Start(), snap.Current.Cell(), "first pop is the start")
	require.Contains(t, snap.Visited, snap.Current)
	require.Equal(t, 0.0, snap.Root.Cost, "root cost is zero")
}

// TestBreadthFirst_ShortestHops checks that BFS path length equals the
// independently computed shortest-hop distance on generated mazes.
func TestBreadthFirst_ShortestHops(t *testing.T) {
	for _, seed := range []int64{11, 12, 13} {
		m, err := maze.Generate(15, 15, maze.WithSeed(seed), maze.WithBranchFactor(0.25))
		require.NoError(t, err)
		md, err := maze.NewModel(m)
		require.NoError(t, err)

		s, err := search.New(md, search.BreadthFirst)
		require.NoError(t, err)
		drain(t, s)
		require.Equal(t, search.FoundGoal, s.Outcome())

		path, err := s.ReconstructPathTo(md.Goal())
		require.NoError(t, err)
		require.Equal(t, hopDistance(t, md), len(path)-1, "seed %d", seed)
	}
}

// TestLinearCorridor_SamePathAllStrategies: with a single corridor there
// is only one path, so every strategy must reconstruct it, even though
// their snapshot counts may differ.
func TestLinearCorridor_SamePathAllStrategies(t *testing.T) {
	md := model(t, linearCorridor, nil)
	want := []maze.Cell{
		{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 1, Col: 4}, {Row: 1, Col: 5},
	}
	for _, k := range []search.Kind{
		search.BreadthFirst, search.DepthFirst, search.UniformCost, search.AStar,
	} {
		s, err := search.New(md, k)
		require.NoError(t, err)
		drain(t, s)

		path := s.ReconstructPath()
		got := make([]maze.Cell, len(path))
		for i, n := range path {
			got[i] = n.Cell()
		}
		require.Equal(t, want, got, "kind %v", k)
	}
}

// TestUniformCostAndAStar_Optimal: both cost-aware strategies must find
// the cheap lower route, and their totals must agree.
func TestUniformCostAndAStar_Optimal(t *testing.T) {
	const wantCost = 4.0 // four unit-cost steps along the lower route

	totals := make(map[search.Kind]float64)
	for _, k := range []search.Kind{search.UniformCost, search.AStar} {
		md := model(t, twoRoutes, twoRoutesCosts())
		s, err := search.New(md, k)
		require.NoError(t, err)
		drain(t, s)
		require.Equal(t, search.FoundGoal, s.Outcome())

		path, err := s.ReconstructPathTo(md.Goal())
		require.NoError(t, err)
		totals[k] = search.PathCost(path)
		require.Equal(t, wantCost, totals[k], "kind %v", k)

		// The cheap route runs through the bottom-left corner.
		cells := make(map[maze.Cell]bool, len(path))
		for _, n := range path {
			cells[n.Cell()] = true
		}
		require.True(t, cells[maze.Cell{Row: 3, Col: 1}], "kind %v took the expensive route", k)
	}
	require.Equal(t, totals[search.UniformCost], totals[search.AStar])
}

// TestUnitCosts_AStarMatchesBreadthFirstTotal: on an unweighted maze the
// minimum cost path is the minimum hop path, so totals agree even when
// the visited sets differ.
func TestUnitCosts_AStarMatchesBreadthFirstTotal(t *testing.T) {
	m, err := maze.Generate(13, 13, maze.WithSeed(21), maze.WithBranchFactor(0.3))
	require.NoError(t, err)
	md, err := maze.NewModel(m)
	require.NoError(t, err)

	totals := make(map[search.Kind]float64)
	for _, k := range []search.Kind{search.BreadthFirst, search.AStar} {
		s, err := search.New(md, k)
		require.NoError(t, err)
		drain(t, s)
		path, err := s.ReconstructPathTo(md.Goal())
		require.NoError(t, err)
		totals[k] = search.PathCost(path)
	}
	require.Equal(t, totals[search.BreadthFirst], totals[search.AStar])
}

func TestPathCost_DegeneratePaths(t *testing.T) {
	require.Equal(t, 0.0, search.PathCost(nil))
	require.Equal(t, 0.0, search.PathCost([]*search.Node{}))
	require.Equal(t, 0.0, search.PathCost([]*search.Node{{Row: 1, Col: 1}}),
		"single-node path has no incoming edge")
}

func TestReconstructPath_Idempotent(t *testing.T) {
	md := model(t, twoRoutes, twoRoutesCosts())
	s, err := search.New(md, search.UniformCost)
	require.NoError(t, err)
	drain(t, s)

	first := s.ReconstructPath()
	second := s.ReconstructPath()
	require.Equal(t, first, second)
}

// exhaustedFixture wall-isolates the goal: the frontier must empty
// without the goal ever being popped.
var exhaustedFixture = []string{
	"#######",
	"#S  #G#",
	"#######",
}

func TestExhausted_DistinctOutcome(t *testing.T) {
	md := model(t, exhaustedFixture, nil)
	s, err := search.New(md, search.BreadthFirst)
	require.NoError(t, err)

	snaps := drain(t, s)
	require.Equal(t, search.Exhausted, s.Outcome())

	// The terminal snapshot duplicates the last expanded node, which is
	// not the goal.
	last := snaps[len(snaps)-1]
	require.NotEqual(t, md.Goal(), last.Current.Cell())

	// Asking for the goal path is an error, not a truncated path.
	_, err = s.ReconstructPathTo(md.Goal())
	require.ErrorIs(t, err, search.ErrNoPath)

	// The best-effort path still exists and starts at the root.
	path := s.ReconstructPath()
	require.Equal(t, md.Start(), path[0].Cell())
}

// reparentFixture is a loop with a walled-off goal. Depth-first explores
// the loop the long way first, then, while draining the frontier, finds
// the short way and re-parents the far loop cells.
var reparentFixture = []string{
	"#######",
	"#S  #G#",
	"# # ###",
	"#   ###",
	"#######",
}

func TestRelaxation_ReparentsExistingNodes(t *testing.T) {
	md := model(t, reparentFixture, nil)

	farCorner := maze.Cell{Row: 3, Col: 1}
	relaxed := make(map[maze.Cell][]*search.Node) // cell → parents at each relaxation
	var corner *search.Node

	s, err := search.New(md, search.DepthFirst, search.WithOnRelax(
		func(parent, child *search.Node) {
			relaxed[child.Cell()] = append(relaxed[child.Cell()], parent)
			if child.Cell() == farCorner {
				if corner != nil {
					// The same node object is re-parented, never replaced.
					require.Same(t, corner, child)
				}
				corner = child
			}
		},
	))
	require.NoError(t, err)
	drain(t, s)
	require.Equal(t, search.Exhausted, s.Outcome())

	// The far corner is first reached the long way around the loop
	// (cost 6), then improved through the short way (cost 2).
	require.Len(t, relaxed[farCorner], 2)
	require.Equal(t, maze.Cell{Row: 3, Col: 2}, relaxed[farCorner][0].Cell())
	require.Equal(t, maze.Cell{Row: 2, Col: 1}, relaxed[farCorner][1].Cell())
	require.Equal(t, 2.0, corner.Cost)

	// The tree reflects the best-known parent.
	require.Equal(t, maze.Cell{Row: 2, Col: 1}, s.Parent(corner).Cell())
	require.Contains(t, s.Children(s.Parent(corner)), corner)
}

// TestDeterminism: two searches over the same maze and strategy produce
// identical snapshot sequences.
func TestDeterminism(t *testing.T) {
	m, err := maze.Generate(15, 15, maze.WithSeed(77), maze.WithBranchFactor(0.2), maze.WithCostRange(1, 9))
	require.NoError(t, err)
	md, err := maze.NewModel(m)
	require.NoError(t, err)

	for _, k := range []search.Kind{
		search.BreadthFirst, search.DepthFirst, search.UniformCost, search.AStar,
	} {
		a, err := search.New(md, k)
		require.NoError(t, err)
		b, err := search.New(md, k)
		require.NoError(t, err)

		sa, sb := drain(t, a), drain(t, b)
		require.Equal(t, len(sa), len(sb), "kind %v", k)
		for i := range sa {
			require.Equal(t, sa[i].Current.Cell(), sb[i].Current.Cell(), "kind %v step %d", k, i)
		}
	}
}

func TestRun_DrainsToLastSnapshot(t *testing.T) {
	md := model(t, linearCorridor, nil)
	s, err := search.New(md, search.DepthFirst)
	require.NoError(t, err)

	last, outcome := s.Run()
	require.Equal(t, search.FoundGoal, outcome)
	require.Equal(t, md.Goal(), last.Current.Cell())
	require.True(t, s.Done())
}
