package service

import (
	"time"

	"mybalancer/helpers"
	"mybalancer/interfaces"
)

// timeProvider implements interfaces.TimeProvider. It returns the current time via the injected now func.
// Used by service.ExpiringNode for idle stamps and service.Sweeper for threshold checks, and by tests
// for deterministic time. Built in cmd/main with time.Now().UTC.
type timeProvider struct {
	now func() time.Time
}

// NewTimeProvider creates a TimeProvider that returns time via the given now func. Panics on nil now.
//
// Parameter now — no-arg function returning current time (in prod — time.Now().UTC, in tests — fixed or advancing time).
//
// Returns: interfaces.TimeProvider (*timeProvider).
//
// Called from cmd/main when building the balancer.
func NewTimeProvider(now func() time.Time) interfaces.TimeProvider {
	return &timeProvider{now: helpers.NilPanic(now, "service.time_provider.go: now is required")}
}

// Now returns current time from the injected function (UTC in prod or fixed in tests).
//
// Returns: time.Time.
//
// Called from service.ExpiringNode.Release when stamping idle time and from service.Sweeper.Sweep.
func (t *timeProvider) Now() time.Time {
	return t.now()
}
