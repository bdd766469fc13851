package config

import (
	"fmt"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/errors"
)

// MaxSamples caps a single run. The refresh dashboard reserves one line per
// round, so a run longer than a terminal's scrollback is never useful.
const MaxSamples = 10000

// Validate checks the resolved config for value errors. It runs after file
// values and flags have been merged, so a bad value may come from either.
func Validate(cfg *Config) error {
	if cfg.Samples < 1 {
		return errors.New(errors.ErrInput,
			"The value given to --samples must be a positive integer",
			"Pass a whole number of rounds, like --samples=5")
	}

	if cfg.Samples > MaxSamples {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("The value given to --samples is too large (max %d)", MaxSamples),
			"Pick a smaller number of rounds")
	}

	if cfg.Delay < 0 {
		return errors.New(errors.ErrInput,
			"The value given to --tdelay must be a non-negative integer",
			"Pass the pause between rounds in whole seconds, like --tdelay=2")
	}

	if !cfg.ShowSystem && !cfg.ShowUsers {
		return errors.New(errors.ErrInput,
			"Nothing to monitor: both the system and user sections are disabled",
			"Enable at least one section in "+ConfigFileName)
	}

	return nil
}
