package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/config"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/logger"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/monitor"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/stats"
)

// runMonitor resolves the effective configuration, wires the sampling
// pipeline, and drives the run to completion.
func runMonitor(cmd *cobra.Command, args []string) error {
	base, err := loadBaseConfig()
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(base, &monitorFlagValues, cmd, args)
	if err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}

	// Styling off when stdout is not a terminal. Cursor arithmetic still
	// runs, so a redirected capture replays exactly like the live session.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	log := logger.NewEnvLogger("[sysmon]")
	provider := stats.NewProvider()
	view := monitor.NewView(os.Stdout, cfg)
	ctrl := monitor.NewController(os.Stdin, os.Stderr, log)

	ctrl.Install()
	defer ctrl.Uninstall()

	sched := monitor.NewScheduler(cfg, provider, view, ctrl, log)
	return sched.Run(cmd.Context())
}

// loadBaseConfig reads the file named by --config, or discovers one, falling
// back to built-in defaults when none exists.
func loadBaseConfig() (*config.Config, error) {
	if path := Config(); path != "" {
		return config.Load(path)
	}
	return config.LoadOrDefault()
}
