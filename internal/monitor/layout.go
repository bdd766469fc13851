package monitor

import "github.com/Chloekyuu/System-Monitoring-Tool/internal/config"

// OpKind discriminates layout operations.
type OpKind int

const (
	// OpWrite writes Text plus a newline at the cursor.
	OpWrite OpKind = iota
	// OpMoveUp moves the cursor up N lines to column one.
	OpMoveUp
	// OpMoveDown moves the cursor down N lines to column one.
	OpMoveDown
)

// Op is one terminal operation produced by the layout model. The model is
// pure arithmetic over line counts; the view replays its ops on a Screen.
type Op struct {
	Kind OpKind
	N    int    // line count for moves
	Text string // line content for writes, without the newline
	// Clear erases the line before writing, so shorter text fully
	// replaces whatever the previous round left there.
	Clear bool
}

// Frame carries one round's fully rendered lines plus the framing text the
// layout places around them. Rendering and placement stay separate: the view
// formats values into a Frame, the layout decides where each line goes.
type Frame struct {
	Round int

	Separator      string
	MemoryHeader   string
	SessionsHeader string

	// IterationLine and SelfUsage open a sequential block. Unused in
	// refresh mode.
	IterationLine string
	SelfUsage     string

	// MemoryLine is the full memory row, inline graph included.
	MemoryLine string

	// UserLines are the session rows, one per login, or a single failure
	// marker when enumeration failed.
	UserLines []string

	CoresLine string
	CPULine   string

	// CPUGraph is the bar line. Present whenever graphics are on and the
	// system section is enabled; blank when the cpu read failed.
	CPUGraph string
}

// Layout turns frames into terminal operations.
//
// In refresh mode the dashboard occupies a fixed region: the memory section
// reserves one row per round up front, and each later round moves the cursor
// back over exactly the number of lines the previous round occupied before
// rewriting the enabled sections in place. The user list is the one part
// whose height changes between rounds, so its previous line count is the
// only state carried here. Any miscount would land every subsequent round's
// output on the wrong rows, which is why the arithmetic lives in this one
// place.
type Layout struct {
	Samples  int
	System   bool
	Users    bool
	Graphics bool

	painted   bool
	userLines int
}

// NewLayout builds the layout for a run.
func NewLayout(cfg *config.Config) *Layout {
	return &Layout{
		Samples:  cfg.Samples,
		System:   cfg.ShowSystem,
		Users:    cfg.ShowUsers,
		Graphics: cfg.Graphics,
	}
}

// RoundOps returns the operations that draw frame f in refresh mode. The
// first call paints the full dashboard; later calls rewrite it in place.
func (l *Layout) RoundOps(f *Frame) []Op {
	if !l.painted {
		return l.paintOps(f)
	}
	return l.repaintOps(f)
}

// SequentialOps returns the operations for one appended block. Sequential
// mode never moves the cursor or clears a line: every round's block stays
// intact in the scrollback.
func (l *Layout) SequentialOps(f *Frame) []Op {
	ops := []Op{
		{Kind: OpWrite, Text: f.IterationLine},
		{Kind: OpWrite, Text: f.SelfUsage},
	}

	if l.System {
		ops = append(ops,
			Op{Kind: OpWrite, Text: f.Separator},
			Op{Kind: OpWrite, Text: f.MemoryHeader})
		for i := 0; i < f.Round; i++ {
			ops = append(ops, Op{Kind: OpWrite})
		}
		ops = append(ops, Op{Kind: OpWrite, Text: f.MemoryLine})
		for i := f.Round + 1; i < l.Samples; i++ {
			ops = append(ops, Op{Kind: OpWrite})
		}
	}

	ops = l.appendUserBlock(ops, f, false)
	ops = l.appendCPUBlock(ops, f, false)
	return ops
}

// paintOps draws the first frame top to bottom, reserving one blank row per
// future round in the memory section.
func (l *Layout) paintOps(f *Frame) []Op {
	var ops []Op

	if l.System {
		ops = append(ops,
			Op{Kind: OpWrite, Text: f.Separator},
			Op{Kind: OpWrite, Text: f.MemoryHeader},
			Op{Kind: OpWrite, Text: f.MemoryLine})
		for i := 1; i < l.Samples; i++ {
			ops = append(ops, Op{Kind: OpWrite})
		}
	}

	ops = l.appendUserBlock(ops, f, false)
	ops = l.appendCPUBlock(ops, f, false)

	l.painted = true
	l.userLines = len(f.UserLines)
	return ops
}

// repaintOps moves the cursor from its resting position below the dashboard
// back to the top, rewrites this round's lines, and returns the cursor to
// rest one line below the (possibly shorter) dashboard.
func (l *Layout) repaintOps(f *Frame) []Op {
	prevHeight := l.height(l.userLines)
	ops := []Op{{Kind: OpMoveUp, N: prevHeight}}

	if l.System {
		// Skip the separator, the header, and the rows of earlier
		// rounds; they already hold their final text.
		ops = append(ops, Op{Kind: OpMoveDown, N: 2 + f.Round})
		ops = append(ops, Op{Kind: OpWrite, Text: f.MemoryLine, Clear: true})
		if below := l.Samples - 1 - f.Round; below > 0 {
			ops = append(ops, Op{Kind: OpMoveDown, N: below})
		}
	}

	ops = l.appendUserBlock(ops, f, true)
	ops = l.appendCPUBlock(ops, f, true)

	// A shorter user list leaves rows of the previous frame stranded
	// below the new bottom; blank them and come back.
	newHeight := l.height(len(f.UserLines))
	if leftover := prevHeight - newHeight; leftover > 0 {
		for i := 0; i < leftover; i++ {
			ops = append(ops, Op{Kind: OpWrite, Clear: true})
		}
		ops = append(ops, Op{Kind: OpMoveUp, N: leftover})
	}

	l.userLines = len(f.UserLines)
	return ops
}

func (l *Layout) appendUserBlock(ops []Op, f *Frame, clear bool) []Op {
	if !l.Users {
		return ops
	}
	ops = append(ops,
		Op{Kind: OpWrite, Text: f.Separator, Clear: clear},
		Op{Kind: OpWrite, Text: f.SessionsHeader, Clear: clear})
	for _, line := range f.UserLines {
		ops = append(ops, Op{Kind: OpWrite, Text: line, Clear: clear})
	}
	return ops
}

func (l *Layout) appendCPUBlock(ops []Op, f *Frame, clear bool) []Op {
	if !l.System {
		return ops
	}
	ops = append(ops,
		Op{Kind: OpWrite, Text: f.Separator, Clear: clear},
		Op{Kind: OpWrite, Text: f.CoresLine, Clear: clear},
		Op{Kind: OpWrite, Text: f.CPULine, Clear: clear})
	if l.Graphics {
		ops = append(ops, Op{Kind: OpWrite, Text: f.CPUGraph, Clear: clear})
	}
	return ops
}

// height is the dashboard's total line count for a given user-list size.
func (l *Layout) height(userLines int) int {
	h := 0
	if l.System {
		h += 2 + l.Samples // separator, header, one row per round
		h += 3             // separator, cores line, cpu line
		if l.Graphics {
			h++
		}
	}
	if l.Users {
		h += 2 + userLines // separator, header, session rows
	}
	return h
}
