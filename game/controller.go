package game

import (
	"errors"

	"github.com/katalvlaran/mazekit/maze"
	"github.com/katalvlaran/mazekit/search"
)

// Controller drives one maze run as a state machine: bind a strategy
// while Paused, advance the search one snapshot per Update while
// Searching, then walk the reconstructed path while Moving. Reset
// returns to Paused with a fresh maze; Quit is terminal.
//
// Single-threaded by design: Update is meant to be called once per
// render tick from the driving loop.
type Controller struct {
	model  *maze.Model
	player *Player

	state    State
	srch     *search.Search
	snapshot search.Snapshot
	hasSnap  bool
	failed   bool
}

// NewController binds a controller to a maze model and a player.
// Returns ErrNilModel or ErrNilPlayer on invalid input.
func NewController(md *maze.Model, p *Player) (*Controller, error) {
	if md == nil {
		return nil, ErrNilModel
	}
	if p == nil {
		return nil, ErrNilPlayer
	}

	return &Controller{model: md, player: p, state: Paused}, nil
}

// SetStrategy binds a search strategy and starts its snapshot sequence
// against the current maze's start and goal, entering Searching.
// Only legal while Paused; a live run must go through Reset first
// (ErrSearchActive otherwise).
func (c *Controller) SetStrategy(k search.Kind, opts ...search.Option) error {
	if c.state != Paused {
		return ErrSearchActive
	}
	s, err := search.New(c.model, k, opts...)
	if err != nil {
		return err
	}
	c.srch = s
	c.hasSnap = false
	c.failed = false
	c.state = Searching

	return nil
}

// Update advances the machine by one tick.
//
// While Searching it consumes exactly one snapshot; when the sequence is
// exhausted it reconstructs the path from the last current node, installs
// it on the player, and transitions to Moving. An Exhausted search (goal
// never popped) still installs its best-effort path — original product
// behavior — but is flagged via Failed so callers can surface it instead
// of mistaking the truncated path for a solution.
//
// While Moving it advances the player. Returns ErrQuit after Quit.
func (c *Controller) Update(dt float64) error {
	switch c.state {
	case Searching:
		snap, err := c.srch.Step()
		if err == nil {
			c.snapshot = snap
			c.hasSnap = true
			return nil
		}
		if !errors.Is(err, search.ErrDone) {
			return err
		}
		c.failed = c.srch.Outcome() == search.Exhausted
		c.player.SetPath(c.srch.ReconstructPath())
		c.state = Moving

		return nil

	case Moving:
		c.player.Advance(dt)
		return nil

	case Quit:
		return ErrQuit

	default: // Paused
		return nil
	}
}

// Reset discards the in-progress search and its snapshots, rebinds the
// controller to a new maze model and player, and returns to Paused.
// The partially expanded search tree is owned solely by the discarded
// search, so dropping the reference drops the whole tree.
func (c *Controller) Reset(md *maze.Model, p *Player) error {
	if md == nil {
		return ErrNilModel
	}
	if p == nil {
		return ErrNilPlayer
	}
	c.model = md
	c.player = p
	c.srch = nil
	c.snapshot = search.Snapshot{}
	c.hasSnap = false
	c.failed = false
	c.state = Paused

	return nil
}

// Quit moves the controller to the terminal Quit state.
func (c *Controller) Quit() { c.state = Quit }

// State returns the current machine state.
func (c *Controller) State() State { return c.state }

// SearchState returns the most recent snapshot for rendering, and
// whether one exists yet.
func (c *Controller) SearchState() (search.Snapshot, bool) {
	return c.snapshot, c.hasSnap
}

// Search exposes the bound search, nil while Paused.
func (c *Controller) Search() *search.Search { return c.srch }

// Player returns the motion model.
func (c *Controller) Player() *Player { return c.player }

// Failed reports whether the last search exhausted its frontier without
// popping the goal; the installed path then ends at a non-goal cell.
func (c *Controller) Failed() bool { return c.failed }

// IsPaused reports whether the controller is Paused.
func (c *Controller) IsPaused() bool { return c.state == Paused }

// IsSearching reports whether a search is being advanced.
func (c *Controller) IsSearching() bool { return c.state == Searching }

// IsMoving reports whether the player is walking the path.
func (c *Controller) IsMoving() bool { return c.state == Moving }

// IsQuit reports whether the controller has terminated.
func (c *Controller) IsQuit() bool { return c.state == Quit }

// IsRunning reports whether the controller has not terminated.
func (c *Controller) IsRunning() bool { return c.state != Quit }
