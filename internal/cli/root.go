package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/errors"
)

// configFlag holds --config; empty means discovery.
var configFlag string

// monitorFlagValues backs the root command's flag surface.
var monitorFlagValues monitorFlags

// rootCmd is the top-level command. sysmon has no subcommands besides
// version: invoking it runs the monitor.
var rootCmd = &cobra.Command{
	Use:   "sysmon [samples [tdelay]]",
	Short: "Live terminal report of memory, sessions, and cpu use",
	Long: `sysmon samples host statistics a fixed number of times and renders them in
the terminal, either as a dashboard redrawn in place or as one appended
block per round.

Sections are selectable: --system shows memory and cpu, --user shows
logged-in sessions, together or alone. --graphics adds inline change graphs
and --sequential switches to append-only output suitable for piping.

The first two positional arguments, when present, set the number of samples
and the delay in seconds between them.

Examples:
  sysmon
  sysmon 30 2
  sysmon --user --samples=5
  sysmon --system --graphics --tdelay=3
  sysmon --sequential 20 1 > capture.txt`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMonitor,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file (default: discover .sysmon.yaml)")
	addMonitorFlags(rootCmd, &monitorFlagValues)
}

// Config returns the path passed via --config, or empty for discovery.
func Config() string {
	return configFlag
}

// Execute runs the CLI and exits the process. Operator mistakes (bad flags,
// bad arguments, impossible section selections) print their diagnostic and
// exit zero; scripted captures rely on that. Everything else exits one.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, err)

	if errors.IsCode(err, errors.ErrInput) || isUsageError(err) {
		os.Exit(0)
	}
	os.Exit(1)
}

// isUsageError reports whether err is cobra or pflag rejecting the command
// line, as opposed to a failure of the run itself.
func isUsageError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "unknown shorthand flag") ||
		strings.Contains(msg, "unknown command") ||
		strings.Contains(msg, "invalid argument")
}
