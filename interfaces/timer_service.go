package interfaces

import "time"

// TimerService schedules a recurring callback. The returned TimerTask stops the recurrence;
// Cancel is idempotent and safe to call while the callback runs (the in-progress invocation
// finishes, no further one is scheduled).
//
// Implemented by service.NewTimerService (ticker-backed). Tests substitute TimerServiceMock
// to capture the callback and drive ticks manually.
//
//go:generate moq -stub -out mock/timer_service.go -pkg mock . TimerService TimerTask
type TimerService interface {
	// Schedule invokes fn every interval until the returned task is cancelled. Invocations are serialized: a tick never overlaps the previous callback.
	// Parameters: interval — time between invocations (must be positive); fn — callback (e.g. Sweeper.Sweep).
	// Returns: TimerTask handle used to stop the recurrence.
	// Called from service.Sweeper.NewExpiryTask and service.Balancer (refresh loop).
	Schedule(interval time.Duration, fn func()) TimerTask
}

// TimerTask is the cancellable handle for one recurring schedule.
type TimerTask interface {
	// Cancel stops future invocations. Idempotent: repeated calls are no-ops, never an error.
	// An invocation already running is allowed to finish.
	// Called from service.Balancer.Close exactly once per task at shutdown (extra calls are harmless).
	Cancel()
}
