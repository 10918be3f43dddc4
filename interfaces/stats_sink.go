package interfaces

// StatsSink hands out named counters. The eviction subsystem records exactly one observation
// on the "expired" counter per node it expires.
//
// Implemented by service.NewMemStats (in-memory, read back by the status endpoint) and
// adapters/redis.NewStatsSink (Redis INCR); service.NewFanoutStats combines them.
//
//go:generate moq -stub -out mock/stats_sink.go -pkg mock . StatsSink Counter
type StatsSink interface {
	// Counter returns the counter registered under name, creating it on first use.
	// Parameter name — counter name (e.g. "expired").
	// Returns: Counter handle; the same name yields a handle to the same counter.
	// Called from service.NewBalancer when wiring nodes.
	Counter(name string) Counter
}

// Counter is a monotonically increasing observation count.
type Counter interface {
	// Incr adds one observation. No return: sink failures (e.g. Redis down) are the sink's to report.
	// Called from service.ExpiringNode.Expire, exactly once per expired node.
	Incr()
}
