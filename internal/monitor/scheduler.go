package monitor

import (
	"context"
	"time"

	"github.com/Chloekyuu/System-Monitoring-Tool/internal/config"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/logger"
	"github.com/Chloekyuu/System-Monitoring-Tool/internal/stats"
)

// Scheduler drives a full run: banner, sampling rounds, closing identity
// block. It owns all cross-round state and mutates it only between rounds,
// so nothing here needs locking.
type Scheduler struct {
	cfg      *config.Config
	provider stats.Provider
	disp     *Dispatcher
	view     *View
	ctrl     *Controller
	log      logger.Logger

	state State

	// prevMem is the previous round's physical memory use in gigabytes,
	// nil before the first successful reading. It feeds the change graph.
	prevMem *float64
}

// NewScheduler assembles a run over the given collaborators. ctrl may be
// nil, in which case the run cannot be interrupted interactively.
func NewScheduler(cfg *config.Config, provider stats.Provider, view *View, ctrl *Controller, log logger.Logger) *Scheduler {
	if log == nil {
		log = logger.NewEnvLogger("[scheduler]")
	}
	return &Scheduler{
		cfg:      cfg,
		provider: provider,
		disp:     NewDispatcher(provider, ctrl, log),
		view:     view,
		ctrl:     ctrl,
		log:      log,
		state:    StateIdle,
	}
}

// State reports where the run is, for logs and tests.
func (s *Scheduler) State() State {
	return s.state
}

// Run executes the configured number of rounds. It always closes with the
// host identity block, whether the run completed or a confirmed interrupt
// cut it short, and in both cases returns nil. Sampling failures render
// inline and never abort the run.
func (s *Scheduler) Run(ctx context.Context) error {
	s.state = StateRunning
	s.log.Debug("starting: %d samples every %ds", s.cfg.Samples, s.cfg.Delay)

	s.view.RenderRunHeader(s.cfg.Samples, s.cfg.Delay)
	if !s.cfg.Sequential {
		s.view.RenderSelfUsage(s.provider.SelfRSS())
	}

	for round := 0; round < s.cfg.Samples; round++ {
		if s.ctrl != nil && s.ctrl.Poll() {
			return s.finish()
		}

		sample, stopped := s.disp.RunRound(ctx, s.cfg, round)
		if stopped {
			return s.finish()
		}

		if s.cfg.Sequential {
			sample.SelfRSS, sample.SelfRSSErr = s.provider.SelfRSS()
		}

		s.view.RenderSample(sample, s.prevMem)

		if sample.Memory != nil {
			gb := float64(sample.Memory.PhysUsed) / bytesPerGB
			s.prevMem = &gb
		}

		// Workers pace the round whenever any section is enabled; this
		// branch only fires when validation was bypassed.
		if !s.cfg.ShowSystem && !s.cfg.ShowUsers && round < s.cfg.Samples-1 {
			if s.sleep(s.cfg.Interval()) {
				return s.finish()
			}
		}
	}

	s.log.Debug("run complete")
	return s.finish()
}

// sleep pauses between rounds, keeping signals serviced when a controller
// is present. It returns true when the run was terminated during the pause.
func (s *Scheduler) sleep(d time.Duration) bool {
	if s.ctrl == nil {
		time.Sleep(d)
		return false
	}
	return s.ctrl.Sleep(d)
}

// finish emits the closing identity block exactly once.
func (s *Scheduler) finish() error {
	if s.state == StateTerminated {
		return nil
	}
	s.state = StateTerminated
	s.view.RenderIdentity(s.provider.Info())
	return nil
}
