package monitor

import (
	"bufio"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/logger"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/ui"
)

// quitPrompt is what the operator sees after Ctrl-C.
const quitPrompt = "Do you want to quit? [y/N] "

// Controller owns signal handling for a run. Install diverts SIGINT and
// SIGTSTP to a channel so no goroutine dies mid-round; the scheduler and
// dispatcher consume that channel at their blocking points and ask the
// controller to service each delivery.
//
// The prompt writes to its own screen, stderr in production, so it never
// lands inside the dashboard on stdout.
type Controller struct {
	sigCh  chan os.Signal
	input  *bufio.Reader
	screen *ui.Screen
	log    logger.Logger
	state  State
}

// NewController wires the quit prompt to in and out. Production use passes
// os.Stdin and os.Stderr.
func NewController(in io.Reader, out io.Writer, log logger.Logger) *Controller {
	if log == nil {
		log = logger.NewEnvLogger("[signals]")
	}
	return &Controller{
		sigCh:  make(chan os.Signal, 1),
		input:  bufio.NewReader(in),
		screen: ui.NewScreen(out),
		log:    log,
		state:  StateIdle,
	}
}

// Install starts diverting SIGINT and SIGTSTP to the controller. Pair with
// Uninstall.
func (c *Controller) Install() {
	signal.Notify(c.sigCh, os.Interrupt, syscall.SIGTSTP)
	c.state = StateRunning
}

// Uninstall restores default delivery for the diverted signals.
func (c *Controller) Uninstall() {
	signal.Stop(c.sigCh)
}

// Signals exposes the delivery channel for select loops. Receivers must pass
// whatever arrives to Handle.
func (c *Controller) Signals() <-chan os.Signal {
	return c.sigCh
}

// State reports where the controller is, for logs and tests.
func (c *Controller) State() State {
	return c.state
}

// Handle services one delivered signal and reports whether the run must
// terminate.
func (c *Controller) Handle(sig os.Signal) bool {
	switch sig {
	case syscall.SIGTSTP:
		c.log.Debug("ignoring SIGTSTP")
		// The terminal already echoed ^Z. Wipe it so the artifact does
		// not survive into the next repaint.
		c.screen.Print("\r")
		c.screen.ClearLine()
		return false
	case os.Interrupt:
		return c.confirmQuit()
	default:
		return false
	}
}

// Poll services a pending signal without blocking. It returns true when that
// signal terminated the run.
func (c *Controller) Poll() bool {
	select {
	case sig := <-c.sigCh:
		return c.Handle(sig)
	default:
		return false
	}
}

// Sleep pauses for d but keeps signals serviced. It returns true when a
// signal serviced during the pause terminated the run. A declined prompt
// consumes part of the pause; the remainder still applies.
func (c *Controller) Sleep(d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			return false
		case sig := <-c.sigCh:
			if c.Handle(sig) {
				return true
			}
		}
	}
}

// confirmQuit runs the interactive quit prompt. The interrupt may land with
// the cursor anywhere in the dashboard, so the position is saved first and
// put back, with the prompt line erased, when the operator declines.
func (c *Controller) confirmQuit() bool {
	c.state = StatePrompting

	c.screen.SaveCursor()
	c.screen.Print(quitPrompt)

	line, err := c.input.ReadString('\n')
	if err != nil && line == "" {
		// Nothing to read (closed stdin, EOF). Treat as a decline so an
		// unattended run keeps going.
		c.log.Debug("quit prompt unanswered: %v", err)
	}

	if confirmed(line) {
		c.state = StateTerminated
		c.log.Debug("quit confirmed")
		return true
	}

	c.screen.RestoreCursor()
	c.screen.ClearLine()
	c.state = StateRunning
	c.log.Debug("quit declined, resuming")
	return false
}

// confirmed reports whether an operator answer means yes. Only a leading
// y or Y counts; everything else, including an empty answer, declines.
func confirmed(line string) bool {
	for _, r := range line {
		switch r {
		case ' ', '\t':
			continue
		case 'y', 'Y':
			return true
		default:
			return false
		}
	}
	return false
}
