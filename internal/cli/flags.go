package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/config"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/errors"
)

// consistentInt is a pflag value that accepts repeats only when every
// occurrence carries the same number. Flags and positionals may name the
// same setting twice; silently taking the last value would hide a typo.
type consistentInt struct {
	value int
	set   bool
}

func (c *consistentInt) String() string {
	if !c.set {
		return ""
	}
	return strconv.Itoa(c.value)
}

func (c *consistentInt) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("%q is not an integer", s)
	}
	if c.set && n != c.value {
		return fmt.Errorf("conflicting values %d and %d", c.value, n)
	}
	c.value = n
	c.set = true
	return nil
}

func (c *consistentInt) Type() string {
	return "int"
}

// monitorFlags is the root command's flag surface.
type monitorFlags struct {
	system     bool
	user       bool
	graphics   bool
	sequential bool
	samples    consistentInt
	delay      consistentInt
}

// addMonitorFlags registers the monitor flags on a command.
func addMonitorFlags(cmd *cobra.Command, f *monitorFlags) {
	cmd.Flags().BoolVar(&f.system, "system", false, "show the memory and cpu sections")
	cmd.Flags().BoolVar(&f.user, "user", false, "show the logged-in sessions section")
	cmd.Flags().BoolVar(&f.graphics, "graphics", false, "draw inline change graphs")
	cmd.Flags().BoolVar(&f.sequential, "sequential", false, "append one block per round instead of redrawing")
	cmd.Flags().Var(&f.samples, "samples", "number of sampling rounds")
	cmd.Flags().Var(&f.delay, "tdelay", "seconds between rounds")
}

// resolveConfig folds flags and positionals over the file-derived base. The
// first two bare arguments fill samples then tdelay; a positional that
// contradicts an explicit flag value is rejected rather than resolved.
func resolveConfig(base *config.Config, f *monitorFlags, cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := *base

	if len(args) > 2 {
		return nil, errors.New(errors.ErrInput,
			fmt.Sprintf("Too many arguments: %v", args),
			"Pass at most two numbers: samples, then the delay in seconds.")
	}

	positionals := [2]struct {
		name   string
		target *consistentInt
	}{
		{name: "samples", target: &f.samples},
		{name: "tdelay", target: &f.delay},
	}

	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.New(errors.ErrInput,
				fmt.Sprintf("Invalid argument %q", arg),
				"Positional arguments must be integers: samples, then the delay in seconds.")
		}

		p := positionals[i]
		if p.target.set && p.target.value != n {
			return nil, errors.New(errors.ErrInput,
				fmt.Sprintf("Argument %q conflicts with --%s=%d", arg, p.name, p.target.value),
				"Repeated values must agree; drop one or make them equal.")
		}
		p.target.value = n
		p.target.set = true
	}

	if f.samples.set {
		cfg.Samples = f.samples.value
	}
	if f.delay.set {
		cfg.Delay = f.delay.value
	}

	// Section selection: either flag alone restricts the output to its
	// sections, both together or neither means everything the base allows.
	systemSet := cmd.Flags().Changed("system")
	userSet := cmd.Flags().Changed("user")
	switch {
	case systemSet && userSet:
		cfg.ShowSystem = f.system
		cfg.ShowUsers = f.user
	case systemSet:
		cfg.ShowSystem = f.system
		if f.system {
			cfg.ShowUsers = false
		}
	case userSet:
		cfg.ShowUsers = f.user
		if f.user {
			cfg.ShowSystem = false
		}
	}

	if cmd.Flags().Changed("graphics") {
		cfg.Graphics = f.graphics
	}
	if cmd.Flags().Changed("sequential") {
		cfg.Sequential = f.sequential
	}

	return &cfg, nil
}
