package stats

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/errors"
)

// Provider supplies the host metrics a monitoring run samples.
// Implementations must be safe for concurrent use: each round reads memory,
// sessions, and cpu from separate goroutines.
type Provider interface {
	// Memory returns the current physical and virtual usage totals.
	Memory() (MemorySnapshot, error)

	// CPUPercent measures busy time across all cores over the given
	// interval. It blocks for the full interval; ctx cancels it early.
	CPUPercent(ctx context.Context, interval time.Duration) (float64, error)

	// Sessions lists the currently logged-in user sessions.
	Sessions() ([]Session, error)

	// Info returns the host identity fields.
	Info() (SystemInfo, error)

	// Cores returns the number of logical cores online.
	Cores() (int, error)

	// SelfRSS returns this process's resident set size in kilobytes.
	SelfRSS() (uint64, error)
}

// systemProvider reads metrics from the running host via gopsutil.
type systemProvider struct{}

// NewProvider returns a Provider backed by the local host.
func NewProvider() Provider {
	return &systemProvider{}
}

func (p *systemProvider) Memory() (MemorySnapshot, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return MemorySnapshot{}, errors.WrapWithCode(err, errors.ErrProvider,
			"Cannot read memory statistics",
			"Verify /proc is mounted and readable")
	}

	sw, err := mem.SwapMemory()
	if err != nil {
		return MemorySnapshot{}, errors.WrapWithCode(err, errors.ErrProvider,
			"Cannot read swap statistics",
			"Verify /proc is mounted and readable")
	}

	return snapshotFrom(vm, sw), nil
}

func (p *systemProvider) CPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	first, err := readCPUTimes()
	if err != nil {
		return 0, err
	}

	if interval > 0 {
		timer := time.NewTimer(interval)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-timer.C:
		}
	}

	second, err := readCPUTimes()
	if err != nil {
		return 0, err
	}

	return busyDelta(first, second), nil
}

func (p *systemProvider) Sessions() ([]Session, error) {
	users, err := host.Users()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrProvider,
			"Cannot enumerate logged-in users",
			"Verify the utmp database is readable")
	}

	sessions := make([]Session, 0, len(users))
	for _, u := range users {
		sessions = append(sessions, Session{
			User:     u.User,
			Terminal: u.Terminal,
			Host:     u.Host,
		})
	}
	return sessions, nil
}

func (p *systemProvider) Info() (SystemInfo, error) {
	info, err := host.Info()
	if err != nil {
		return SystemInfo{}, errors.WrapWithCode(err, errors.ErrProvider,
			"Cannot read host identity",
			"Verify /proc and /etc/os-release are readable")
	}

	return SystemInfo{
		OS:           titleCase(info.OS),
		Hostname:     info.Hostname,
		Version:      strings.TrimSpace(info.Platform + " " + info.PlatformVersion),
		Release:      info.KernelVersion,
		Architecture: info.KernelArch,
	}, nil
}

func (p *systemProvider) Cores() (int, error) {
	n, err := cpu.Counts(true)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrProvider,
			"Cannot count cpu cores", "")
	}
	return n, nil
}

func (p *systemProvider) SelfRSS() (uint64, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrProvider,
			"Cannot inspect own process", "")
	}

	info, err := proc.MemoryInfo()
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrProvider,
			"Cannot read own memory usage", "")
	}

	// Peak RSS where the platform reports it, current RSS otherwise.
	rss := info.RSS
	if info.HWM > rss {
		rss = info.HWM
	}
	return rss / 1024, nil
}

// readCPUTimes returns the aggregate cumulative cpu times for the host.
func readCPUTimes() (cpu.TimesStat, error) {
	times, err := cpu.Times(false)
	if err != nil {
		return cpu.TimesStat{}, errors.WrapWithCode(err, errors.ErrProvider,
			"Cannot read cpu times",
			"Verify /proc/stat is readable")
	}
	if len(times) == 0 {
		return cpu.TimesStat{}, errors.New(errors.ErrProvider,
			"No aggregate cpu entry reported", "")
	}
	return times[0], nil
}

// snapshotFrom folds two gopsutil readings into a MemorySnapshot.
// vm.Used already excludes buffers and reclaimable caches on Linux, which is
// the figure free(1) reports as used.
func snapshotFrom(vm *mem.VirtualMemoryStat, sw *mem.SwapMemoryStat) MemorySnapshot {
	return MemorySnapshot{
		PhysUsed:  vm.Used,
		PhysTotal: vm.Total,
		VirtUsed:  vm.Used + sw.Used,
		VirtTotal: vm.Total + sw.Total,
	}
}

// busyDelta converts two cumulative cpu readings into a busy percentage.
// Busy time counts user, nice, system, irq, and softirq; idle time counts
// idle and iowait. The result is the busy share of the elapsed window.
func busyDelta(prev, curr cpu.TimesStat) float64 {
	busy := func(t cpu.TimesStat) float64 {
		return t.User + t.Nice + t.System + t.Irq + t.Softirq
	}
	idle := func(t cpu.TimesStat) float64 {
		return t.Idle + t.Iowait
	}

	db := busy(curr) - busy(prev)
	di := idle(curr) - idle(prev)
	total := db + di
	if total <= 0 {
		return 0
	}
	return 100 * db / total
}

// titleCase upper-cases the first letter, turning "linux" into "Linux".
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
