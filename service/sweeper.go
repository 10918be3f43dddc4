package service

import (
	"mybalancer/domain"
	"mybalancer/helpers"
	"mybalancer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Sweeper runs the periodic expiry pass: on each tick it snapshots the current node list,
// skips every node inside the aperture window, and expires the rest once they have been idle
// past the configured threshold. Sweeping is best-effort — a close failure on one node is
// logged and does not stop the pass, and no ordering is guaranteed between two expirable
// nodes in the same pass.
//
// Membership is re-evaluated on every tick, so a node that re-enters the window before its
// idle time elapses is never expired, and a node that leaves the window while busy only
// starts accumulating idle time once it actually goes idle. The window may resize mid-pass;
// each node sees the membership answer current at its own evaluation.
type Sweeper struct {
	nodes    func() []*ExpiringNode
	aperture interfaces.AperturePolicy
	clock    interfaces.TimeProvider
	cfg      domain.ExpiryConfig
	logger   log.Logger
}

// NewSweeper creates a Sweeper over a node snapshot provider. Panics on nil nodes func,
// aperture, clock or logger.
//
// Parameters: nodes — returns the current ranked node list (service.Balancer.Nodes);
// aperture — membership oracle; clock — time source read once per pass; cfg — idle threshold
// and sweep interval; logger — close failures are logged through it.
//
// Returns: *Sweeper.
//
// Called from service.NewBalancer when wiring the expiry task, and from tests.
func NewSweeper(
	nodes func() []*ExpiringNode,
	aperture interfaces.AperturePolicy,
	clock interfaces.TimeProvider,
	cfg domain.ExpiryConfig,
	logger log.Logger,
) *Sweeper {
	return &Sweeper{
		nodes:    helpers.NilPanic(nodes, "service.sweeper.go: nodes func is required"),
		aperture: helpers.NilPanic(aperture, "service.sweeper.go: aperture is required"),
		clock:    helpers.NilPanic(clock, "service.sweeper.go: clock is required"),
		cfg:      cfg,
		logger:   log.With(helpers.NilPanic(logger, "service.sweeper.go: logger is required"), "component", "sweeper"),
	}
}

// Sweep performs one expiry pass over the current node set. For each node whose rank is
// outside the aperture window and whose idle time has reached the threshold, Expire is
// called; close failures are logged and the pass continues with the remaining nodes.
//
// Parameters and return: none.
//
// Called on each tick of the task returned by NewExpiryTask, and directly from tests.
func (s *Sweeper) Sweep() {
	now := s.clock.Now()
	for i, node := range s.nodes() {
		if s.aperture.Membership(i) {
			continue
		}
		if !node.IsExpirable(now, s.cfg.IdleThreshold) {
			continue
		}
		if err := node.Expire(); err != nil {
			level.Warn(s.logger).Log("msg", "close failed during expiry", "instance", node.InstanceID(), "err", err)
		}
	}
}

// NewExpiryTask schedules Sweep on the timer every EffectiveSweepInterval (SweepInterval, or
// half the idle threshold when unset) and returns the cancellable handle. The balancer owns
// the handle and cancels it exactly once at shutdown; Cancel is idempotent, and a sweep
// already running when Cancel is called finishes normally with no further tick scheduled.
//
// Parameter timer — scheduler for the recurring tick (ticker-backed in prod, mocked in tests).
//
// Returns: interfaces.TimerTask handle.
//
// Called from service.NewBalancer.
func (s *Sweeper) NewExpiryTask(timer interfaces.TimerService) interfaces.TimerTask {
	timer = helpers.NilPanic(timer, "service.sweeper.go: timer is required")
	return timer.Schedule(s.cfg.EffectiveSweepInterval(), s.Sweep)
}
