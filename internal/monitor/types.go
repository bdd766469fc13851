package monitor

import "github.com/Chloekyuu/System-Monitoring-Tool/internal/stats"

// MetricKind identifies one worker's assignment within a round.
type MetricKind int

const (
	MetricMemory MetricKind = iota
	MetricUsers
	MetricCPU
)

// String returns the metric name used in logs.
func (k MetricKind) String() string {
	switch k {
	case MetricMemory:
		return "memory"
	case MetricUsers:
		return "users"
	case MetricCPU:
		return "cpu"
	default:
		return "unknown"
	}
}

// Sample is one round's assembled results. Fields for disabled sections stay
// zero. A failed read leaves its value empty and records the error, so a
// single bad metric never aborts the round.
type Sample struct {
	Round int

	// Memory is nil when the read failed or the section is disabled.
	Memory    *stats.MemorySnapshot
	MemoryErr error

	Sessions    []stats.Session
	SessionsErr error

	CPUPercent float64
	CPUErr     error

	Cores    int
	CoresErr error

	// SelfRSS is this process's own footprint in kilobytes. It is read by
	// the scheduler, not a worker, and only in sequential mode where every
	// block repeats the figure.
	SelfRSS    uint64
	SelfRSSErr error
}

// result is a single worker's delivery for one round. Each worker sends
// exactly one result on its own channel and exits.
type result struct {
	kind     MetricKind
	memory   *stats.MemorySnapshot
	sessions []stats.Session
	percent  float64
	cores    int
	coresErr error
	err      error
}

// State tracks where the run loop is, mostly for logging and tests.
type State int

const (
	// StateIdle means the scheduler has not started yet.
	StateIdle State = iota
	// StateRunning means rounds are being sampled and rendered.
	StateRunning
	// StatePrompting means the run is stopped on the quit confirmation.
	StatePrompting
	// StateTerminated means the run is over and the closing output was
	// written.
	StateTerminated
)

// String returns the state name used in logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePrompting:
		return "prompting"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
