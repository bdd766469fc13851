package config

import "time"

// Config represents one monitoring run: how many rounds to sample, how far
// apart, which sections to show, and how to draw them. Values come from the
// optional .sysmon.yaml file and are overridden by command-line flags.
type Config struct {
	// Samples is the number of sampling rounds in the run.
	Samples int `yaml:"samples" mapstructure:"samples"`

	// Delay is the pause between rounds, in whole seconds.
	Delay int `yaml:"tdelay" mapstructure:"tdelay"`

	// ShowSystem enables the memory and cpu sections.
	ShowSystem bool `yaml:"system" mapstructure:"system"`

	// ShowUsers enables the logged-in sessions section.
	ShowUsers bool `yaml:"user" mapstructure:"user"`

	// Graphics adds change graphs to the memory and cpu output.
	Graphics bool `yaml:"graphics" mapstructure:"graphics"`

	// Sequential appends one block per round instead of redrawing in place.
	Sequential bool `yaml:"sequential" mapstructure:"sequential"`
}

// DefaultConfig returns the configuration used when no file or flags are given:
// ten rounds, one second apart, all sections shown, plain refresh output.
func DefaultConfig() *Config {
	return &Config{
		Samples:    10,
		Delay:      1,
		ShowSystem: true,
		ShowUsers:  true,
	}
}

// Interval returns the delay between rounds as a time.Duration.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.Delay) * time.Second
}
