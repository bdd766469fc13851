package monitor

import (
	"context"
	"time"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/config"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/logger"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/stats"
)

// Dispatcher fans one round out to per-metric workers and gathers their
// results in a fixed order. Every worker owns a buffered channel, so it can
// deliver and exit even while the gather loop is stopped on the quit prompt.
type Dispatcher struct {
	provider stats.Provider
	ctrl     *Controller
	log      logger.Logger
}

// NewDispatcher builds a dispatcher over the given provider. ctrl may be
// nil, in which case waits are not interruptible.
func NewDispatcher(provider stats.Provider, ctrl *Controller, log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.NewEnvLogger("[dispatcher]")
	}
	return &Dispatcher{provider: provider, ctrl: ctrl, log: log}
}

// RunRound samples every enabled metric once and assembles the results.
//
// The CPU worker blocks for the sampling interval inside its measurement,
// which paces the round whenever the system section is on; otherwise the
// sessions worker sleeps the interval itself. The returned stop flag is true
// when a signal serviced during a wait ended the run; the partially filled
// sample is then abandoned by the caller.
func (d *Dispatcher) RunRound(ctx context.Context, cfg *config.Config, round int) (*Sample, bool) {
	s := &Sample{Round: round}

	var memCh, userCh, cpuCh chan result

	if cfg.ShowSystem {
		memCh = make(chan result, 1)
		go d.collectMemory(round, memCh)
	}
	if cfg.ShowUsers {
		userCh = make(chan result, 1)
		go d.collectSessions(ctx, cfg, round, userCh)
	}
	if cfg.ShowSystem {
		cpuCh = make(chan result, 1)
		go d.collectCPU(ctx, cfg, round, cpuCh)
	}

	// Consume in fixed order regardless of completion order so the frame
	// is assembled deterministically.
	if memCh != nil {
		res, stop := d.await(memCh)
		if stop {
			return s, true
		}
		s.Memory, s.MemoryErr = res.memory, res.err
	}
	if userCh != nil {
		res, stop := d.await(userCh)
		if stop {
			return s, true
		}
		s.Sessions, s.SessionsErr = res.sessions, res.err
	}
	if cpuCh != nil {
		res, stop := d.await(cpuCh)
		if stop {
			return s, true
		}
		s.CPUPercent, s.CPUErr = res.percent, res.err
		s.Cores, s.CoresErr = res.cores, res.coresErr
	}

	return s, false
}

// await blocks for one worker's delivery while keeping signals serviced. A
// confirmed quit returns stop=true; a declined one resumes the same wait.
// The buffered channel holds the delivery across a prompt, so nothing is
// ever sampled twice after a decline.
func (d *Dispatcher) await(ch <-chan result) (result, bool) {
	if d.ctrl == nil {
		return <-ch, false
	}

	for {
		select {
		case res := <-ch:
			return res, false
		case sig := <-d.ctrl.Signals():
			if d.ctrl.Handle(sig) {
				return result{}, true
			}
		}
	}
}

func (d *Dispatcher) collectMemory(round int, ch chan<- result) {
	res := result{kind: MetricMemory}

	snap, err := d.provider.Memory()
	if err != nil {
		d.log.Debug("round %d: memory read failed: %v", round, err)
		res.err = err
	} else {
		res.memory = &snap
	}
	ch <- res
}

// collectSessions reads the login table. With the system section off nothing
// else spends the interval, so the wait lands here, before the read, keeping
// the rendered list as current as a cpu reading would be.
func (d *Dispatcher) collectSessions(ctx context.Context, cfg *config.Config, round int, ch chan<- result) {
	res := result{kind: MetricUsers}

	if !cfg.ShowSystem {
		if err := sleep(ctx, cfg.Interval()); err != nil {
			res.err = err
			ch <- res
			return
		}
	}

	sessions, err := d.provider.Sessions()
	if err != nil {
		d.log.Debug("round %d: session read failed: %v", round, err)
		res.err = err
	} else {
		res.sessions = sessions
	}
	ch <- res
}

func (d *Dispatcher) collectCPU(ctx context.Context, cfg *config.Config, round int, ch chan<- result) {
	res := result{kind: MetricCPU}

	// The core count travels with the cpu reading; it heads the cpu block.
	res.cores, res.coresErr = d.provider.Cores()

	res.percent, res.err = d.provider.CPUPercent(ctx, cfg.Interval())
	if res.err != nil {
		d.log.Debug("round %d: cpu read failed: %v", round, res.err)
	}
	ch <- res
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
