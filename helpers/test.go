package helpers

import (
	"time"
)

// TestNow returns a fixed time (2026-02-11 12:00:00 UTC) for deterministic tests (idle stamps, expiry checks, etc.).
//
// Parameters: none.
//
// Returns: time.Time in UTC.
//
// Called from tests (e.g. service/expiring_node_test, service/sweeper_test) when a fixed "current" time is needed.
func TestNow() time.Time {
	return time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
}
