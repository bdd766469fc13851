package monitor

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/config"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/errors"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/stats"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/ui"
)

// The fixed dashboard text. These strings are load-bearing: the refresh
// protocol overwrites them in place, and downstream scripts parse the
// sequential form, so they must not change shape between rounds.
const (
	separatorLine  = "---------------------------------------"
	memoryHeader   = "### Memory ### (Phys.Used/Tot -- Virtual Used/Tot)"
	sessionsHeader = "### Sessions/users ###"
	identityHeader = "### System Information ###"
)

// bytesPerGB converts bytes to decimal gigabytes for display.
const bytesPerGB = 1e9

// View renders samples onto a screen in the configured mode. It owns all
// formatting; placement is delegated to the Layout.
type View struct {
	screen *ui.Screen
	layout *Layout
	styles Styles
	cfg    *config.Config
}

// NewView builds the view for one run, writing to w.
func NewView(w io.Writer, cfg *config.Config) *View {
	return &View{
		screen: ui.NewScreen(w),
		layout: NewLayout(cfg),
		styles: DefaultStyles(),
		cfg:    cfg,
	}
}

// Interactive reports whether the view writes to a real terminal.
func (v *View) Interactive() bool {
	return v.screen.IsTerminal()
}

// RenderRunHeader prints the run banner.
func (v *View) RenderRunHeader(samples, delay int) {
	v.screen.Printf("Nbr of samples: %d -- every %d secs\n", samples, delay)
}

// RenderSelfUsage prints this process's own memory footprint.
func (v *View) RenderSelfUsage(kilobytes uint64, err error) {
	v.screen.Print(v.selfUsageLine(kilobytes, err) + "\n")
}

// RenderSample draws one round. prevMemory is the previous round's physical
// reading in gigabytes, nil on the first round; it feeds the inline graph.
func (v *View) RenderSample(s *Sample, prevMemory *float64) {
	f := v.buildFrame(s, prevMemory)

	var ops []Op
	if v.cfg.Sequential {
		ops = v.layout.SequentialOps(f)
	} else {
		ops = v.layout.RoundOps(f)
	}
	v.apply(ops)
}

// RenderIdentity prints the closing host identity block.
func (v *View) RenderIdentity(info stats.SystemInfo, err error) {
	sep := v.styles.Separator.Render(separatorLine)

	v.screen.Print(sep + "\n")
	v.screen.Print(v.styles.Header.Render(identityHeader) + "\n")
	if err != nil {
		v.screen.Print(v.failLine("host identity unavailable", err) + "\n")
	} else {
		v.screen.Printf(" System Name = %s\n", info.OS)
		v.screen.Printf(" Machine Name = %s\n", info.Hostname)
		v.screen.Printf(" Version = %s\n", info.Version)
		v.screen.Printf(" Release = %s\n", info.Release)
		v.screen.Printf(" Architecture = %s\n", info.Architecture)
	}
	v.screen.Print(sep + "\n")
}

// apply replays layout ops onto the screen.
func (v *View) apply(ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpMoveUp:
			v.screen.MoveUp(op.N)
		case OpMoveDown:
			v.screen.MoveDown(op.N)
		case OpWrite:
			if op.Clear {
				v.screen.ClearLine()
			}
			v.screen.Print(op.Text + "\n")
		}
	}
}

// buildFrame formats one sample into the lines the layout will place.
func (v *View) buildFrame(s *Sample, prevMemory *float64) *Frame {
	f := &Frame{
		Round:          s.Round,
		Separator:      v.styles.Separator.Render(separatorLine),
		MemoryHeader:   v.styles.Header.Render(memoryHeader),
		SessionsHeader: v.styles.Header.Render(sessionsHeader),
	}

	if v.cfg.Sequential {
		f.IterationLine = fmt.Sprintf(">>> iteration %d", s.Round)
		f.SelfUsage = v.selfUsageLine(s.SelfRSS, s.SelfRSSErr)
	}

	if v.cfg.ShowSystem {
		f.MemoryLine = v.memoryLine(s, prevMemory)
		f.CoresLine = v.coresLine(s)
		f.CPULine = v.cpuLine(s)
		if v.cfg.Graphics && s.CPUErr == nil {
			f.CPUGraph = CPUGraph(s.CPUPercent)
		}
	}

	if v.cfg.ShowUsers {
		f.UserLines = v.userLines(s)
	}

	return f
}

func (v *View) selfUsageLine(kilobytes uint64, err error) string {
	if err != nil {
		return v.failLine("memory usage unavailable", err)
	}
	return fmt.Sprintf(" Memory usage: %d kilobytes", kilobytes)
}

func (v *View) memoryLine(s *Sample, prevMemory *float64) string {
	if s.MemoryErr != nil {
		return v.failLine("memory unavailable", s.MemoryErr)
	}

	m := s.Memory
	line := fmt.Sprintf("%.2f GB / %.2f GB  -- %.2f GB / %.2f GB",
		float64(m.PhysUsed)/bytesPerGB, float64(m.PhysTotal)/bytesPerGB,
		float64(m.VirtUsed)/bytesPerGB, float64(m.VirtTotal)/bytesPerGB)

	if v.cfg.Graphics {
		line += MemoryGraph(float64(m.PhysUsed)/bytesPerGB, prevMemory)
	}
	return line
}

func (v *View) userLines(s *Sample) []string {
	if s.SessionsErr != nil {
		return []string{v.failLine("sessions unavailable", s.SessionsErr)}
	}

	lines := make([]string, 0, len(s.Sessions))
	for _, sess := range s.Sessions {
		lines = append(lines, sessionLine(sess))
	}
	return lines
}

func (v *View) coresLine(s *Sample) string {
	if s.CoresErr != nil {
		return v.failLine("core count unavailable", s.CoresErr)
	}
	return fmt.Sprintf("Number of cores: %d", s.Cores)
}

func (v *View) cpuLine(s *Sample) string {
	if s.CPUErr != nil {
		return v.failLine("cpu usage unavailable", s.CPUErr)
	}
	return fmt.Sprintf(" total cpu use = %.2f%%", s.CPUPercent)
}

// failLine renders an inline marker for a metric that could not be read.
// It must stay on a single row or it would break the line accounting.
func (v *View) failLine(what string, err error) string {
	return v.styles.Failure.Render(fmt.Sprintf(" %s %s (%s)", ui.SymbolFail, what, shortCause(err)))
}

// sessionLine formats one login: " user<TAB>terminal (host)". Entries with
// no user name keep the column alignment with a double tab.
func sessionLine(s stats.Session) string {
	var b strings.Builder
	if s.User != "" {
		fmt.Fprintf(&b, " %s\t", s.User)
	} else {
		b.WriteString("\t\t")
	}
	b.WriteString(s.Terminal)
	b.WriteString(" ")
	if s.Host != "" {
		fmt.Fprintf(&b, "(%s)", s.Host)
	}
	return b.String()
}

// shortCause reduces an error to a single-line reason for inline display.
func shortCause(err error) string {
	if err == nil {
		return ""
	}

	var structured *errors.Error
	if stderrors.As(err, &structured) {
		if structured.Cause == nil {
			return structured.Message
		}
		err = structured.Cause
	}

	line := err.Error()
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
