package domain

import "time"

// ExpiryConfig controls idle eviction of out-of-aperture nodes. IdleThreshold is how long a
// node must stay idle (zero in-flight requests) outside the aperture before its connection is
// closed; SweepInterval is how often the sweep runs. A zero SweepInterval means
// IdleThreshold/2, so a node crossing the threshold is detected within half the threshold.
type ExpiryConfig struct {
	IdleThreshold time.Duration
	SweepInterval time.Duration
}

// EffectiveSweepInterval returns SweepInterval, or IdleThreshold/2 when SweepInterval is zero.
//
// Parameters: none.
//
// Returns: time.Duration used by service.Sweeper.NewExpiryTask to schedule the recurring sweep.
//
// Called from service.Sweeper.NewExpiryTask and cmd.LoadConfig validation.
func (c ExpiryConfig) EffectiveSweepInterval() time.Duration {
	if c.SweepInterval > 0 {
		return c.SweepInterval
	}
	return c.IdleThreshold / 2
}
