// Package monitor implements the sampling loop and terminal dashboard for
// local host metrics.
//
// A run takes a fixed number of rounds. Each round samples memory use,
// logged-in sessions, and total CPU use, then renders them either as a live
// dashboard that repaints in place or as append-only per-round blocks.
//
// # Key Components
//
//	Scheduler   - Drives the run: banner, rounds, closing identity block
//	Dispatcher  - Fans a round out to per-metric worker goroutines
//	Layout      - Turns a frame into cursor and write operations
//	View        - Formats samples and replays layout operations on a screen
//	Controller  - Owns SIGINT/SIGTSTP delivery and the quit prompt
//
// # Round Flow
//
//  1. The scheduler asks the dispatcher for round i.
//  2. The dispatcher spawns one goroutine per enabled metric; each sends a
//     single result on its own buffered channel and exits.
//  3. Results are consumed in fixed order: memory, users, cpu. The CPU
//     measurement blocks for the sampling interval, pacing the round.
//  4. The view formats the sample into a frame and the layout places it,
//     repainting in place or appending a block.
//
// # Cursor Discipline
//
// In the live mode the dashboard is repainted with relative cursor moves
// only, never absolute addressing, so it works inside scrollback and over
// plain pipes. The layout tracks exactly how many lines every section
// occupies; round i rewrites memory row i in place, then everything from the
// sessions header down, blanking leftover rows when the session list shrank.
// The cursor always comes to rest on the line just below the dashboard.
//
// # Signals
//
// Install diverts SIGINT and SIGTSTP to the controller's channel, away from
// the worker goroutines. Ctrl-C stops the run on a confirmation prompt on
// stderr; declining resumes exactly where the run stopped, without
// re-sampling anything. Ctrl-Z is swallowed and its terminal echo erased;
// the process never suspends.
package monitor
