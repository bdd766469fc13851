package monitor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/ui"
)

// Styles holds the lipgloss styles the dashboard renders with. On plain
// (non-terminal) output lipgloss drops the escapes and the text comes out
// bare, so the layout never depends on styling.
type Styles struct {
	// Header styles the "### ... ###" section headers.
	Header lipgloss.Style

	// Separator styles the dashed lines between sections.
	Separator lipgloss.Style

	// Failure styles inline markers for metrics that could not be read.
	Failure lipgloss.Style
}

// DefaultStyles returns the dashboard's standard look.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Foreground(ui.ColorInfo).Bold(true),
		Separator: lipgloss.NewStyle().Foreground(ui.ColorMuted),
		Failure:   lipgloss.NewStyle().Foreground(ui.ColorError),
	}
}
