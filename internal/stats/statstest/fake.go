// Package statstest provides test doubles for the stats package.
package statstest

import (
	"context"
	"sync"
	"time"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/stats"
)

// FakeProvider implements stats.Provider with scripted values for testing
// the collection pipeline without touching the host.
//
// The slice fields are consumed one entry per call; the final entry repeats
// once the script runs out, so a fake with a single entry behaves like a
// constant. Call counters record how often each metric was read.
type FakeProvider struct {
	mu sync.Mutex

	// Snapshots are returned by Memory in call order.
	Snapshots []stats.MemorySnapshot
	// MemoryErr, when set, makes every Memory call fail.
	MemoryErr error

	// Percents are returned by CPUPercent in call order.
	Percents []float64
	// CPUErr, when set, makes every CPUPercent call fail.
	CPUErr error

	// SessionLists are returned by Sessions in call order.
	SessionLists [][]stats.Session
	// SessionsErr, when set, makes every Sessions call fail.
	SessionsErr error

	// Identity is returned by Info.
	Identity    stats.SystemInfo
	IdentityErr error

	// CoreCount is returned by Cores.
	CoreCount int
	CoresErr  error

	// RSS is returned by SelfRSS, in kilobytes.
	RSS    uint64
	RSSErr error

	// BlockCPU makes CPUPercent wait out the interval like the real
	// provider does, so pacing behavior can be exercised.
	BlockCPU bool

	// Call counters, incremented on every read.
	MemoryCalls  int
	CPUCalls     int
	SessionCalls int
	InfoCalls    int
	RSSCalls     int
}

var _ stats.Provider = (*FakeProvider)(nil)

func (f *FakeProvider) Memory() (stats.MemorySnapshot, error) {
	f.mu.Lock()
	idx := f.MemoryCalls
	f.MemoryCalls++
	err := f.MemoryErr
	var snap stats.MemorySnapshot
	if len(f.Snapshots) > 0 {
		if idx >= len(f.Snapshots) {
			idx = len(f.Snapshots) - 1
		}
		snap = f.Snapshots[idx]
	}
	f.mu.Unlock()

	if err != nil {
		return stats.MemorySnapshot{}, err
	}
	return snap, nil
}

func (f *FakeProvider) CPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	f.mu.Lock()
	idx := f.CPUCalls
	f.CPUCalls++
	err := f.CPUErr
	var pct float64
	if len(f.Percents) > 0 {
		if idx >= len(f.Percents) {
			idx = len(f.Percents) - 1
		}
		pct = f.Percents[idx]
	}
	block := f.BlockCPU
	f.mu.Unlock()

	if block && interval > 0 {
		timer := time.NewTimer(interval)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-timer.C:
		}
	}

	if err != nil {
		return 0, err
	}
	return pct, nil
}

func (f *FakeProvider) Sessions() ([]stats.Session, error) {
	f.mu.Lock()
	idx := f.SessionCalls
	f.SessionCalls++
	err := f.SessionsErr
	var list []stats.Session
	if len(f.SessionLists) > 0 {
		if idx >= len(f.SessionLists) {
			idx = len(f.SessionLists) - 1
		}
		list = f.SessionLists[idx]
	}
	f.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return list, nil
}

func (f *FakeProvider) Info() (stats.SystemInfo, error) {
	f.mu.Lock()
	f.InfoCalls++
	identity, err := f.Identity, f.IdentityErr
	f.mu.Unlock()

	if err != nil {
		return stats.SystemInfo{}, err
	}
	return identity, nil
}

func (f *FakeProvider) Cores() (int, error) {
	f.mu.Lock()
	n, err := f.CoreCount, f.CoresErr
	f.mu.Unlock()

	if err != nil {
		return 0, err
	}
	return n, nil
}

func (f *FakeProvider) SelfRSS() (uint64, error) {
	f.mu.Lock()
	f.RSSCalls++
	rss, err := f.RSS, f.RSSErr
	f.mu.Unlock()

	if err != nil {
		return 0, err
	}
	return rss, nil
}
