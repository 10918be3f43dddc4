package interfaces

import "time"

// TimeProvider supplies the current time for idle stamping and expiry checks.
// Injected so tests can use a fixed clock instead of time.Now().
//
// Used by service.ExpiringNode to stamp the moment the last in-flight request finished,
// and by service.Sweeper to compare "now" against each node's idle stamp.
// Constructed in cmd/main as NewTimeProvider(func() time.Time { return time.Now().UTC() }).
//
//go:generate moq -stub -out mock/time_provider.go -pkg mock . TimeProvider
type TimeProvider interface {
	// Now returns current time (UTC in prod; in tests — fixed or manually advanced time for deterministic expiry checks).
	// Parameters: none.
	// Returns: time.Time — "now" for idle stamping and threshold comparison.
	// Called from service.ExpiringNode.Release and service.Sweeper.Sweep.
	Now() time.Time
}
