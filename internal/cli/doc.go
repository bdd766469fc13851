// Package cli implements the sysmon command-line interface.
//
// sysmon is a single-purpose command: the root command itself runs the
// monitor, with a version subcommand on the side. The package owns flag
// parsing and config resolution, then hands a validated Config to the
// monitor package:
//
//	sysmon                  - full dashboard, defaults from config file
//	sysmon 30 2             - 30 rounds, 2 seconds apart
//	sysmon --user           - sessions section only
//	sysmon --sequential     - append-only output for piping
//	sysmon version          - build information
//
// # Flag Handling
//
// --config names a config file explicitly; otherwise the loader discovers
// .sysmon.yaml upwards from the working directory, then the global config.
// The file supplies defaults; flags and positionals always win. The first
// two bare arguments set samples and tdelay, and must agree with any flag
// that names the same setting.
//
// # Exit Codes
//
// A rejected command line prints its diagnostic and exits 0, so scripted
// captures never fail on a usage mistake. Unreadable or invalid config
// exits 1. A run that completes, or ends on a confirmed interrupt, exits 0.
package cli
