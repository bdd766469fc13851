// Package stats reads host metrics: memory usage, cpu busy time, logged-in
// sessions, core counts, and the host's identity.
//
// # Provider
//
// All reads go through the Provider interface so the collection pipeline can
// run against a fake in tests. The real implementation is backed by gopsutil
// and focuses on Linux hosts, where the figures line up with free(1),
// /proc/stat, and the utmp database.
//
// # CPU measurement
//
// CPUPercent is deliberately a blocking call: it reads the cumulative cpu
// counters, sleeps for the requested interval, reads them again, and reports
// the busy share of the delta. A monitoring round therefore takes at least
// one interval, which is what paces the run loop.
package stats
