// Package game turns a batch maze search into a frame-driven process:
// a Controller state machine advances one search snapshot per tick,
// then walks the solved path with a constant-speed Player.
//
// States
//
//	Paused → Searching   on SetStrategy
//	Searching → Moving   when the snapshot sequence is exhausted
//	any → Paused         on Reset (new maze, new player)
//	any → Quit           on Quit (terminal)
//
// Per tick, Update does exactly one unit of work: one search Step while
// Searching, one Advance of the player while Moving. There are no
// goroutines and no blocking calls; suspension is the caller simply not
// calling Update.
//
// Failure semantics
//
//	If the frontier empties without the goal ever being popped (possible
//	only with an externally supplied, disconnected maze), the controller
//	still installs the best-effort path to the last expanded node and
//	enters Moving, but Failed() reports true so callers can distinguish
//	the truncated path from a real solution.
//
// Errors
//
//   - ErrNilModel / ErrNilPlayer  on nil collaborators.
//   - ErrSearchActive             if SetStrategy is called outside Paused.
//   - ErrQuit                     if Update is called after Quit.
package game
