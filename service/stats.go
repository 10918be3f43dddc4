package service

import (
	"sync"
	"sync/atomic"

	"mybalancer/interfaces"
)

// MemStats implements interfaces.StatsSink with in-process atomic counters. It is the default
// sink and the one the status endpoint reads back; adapters/redis provides a remote sink and
// NewFanoutStats combines the two.
type MemStats struct {
	mu       sync.Mutex
	counters map[string]*memCounter
}

// NewMemStats creates an empty in-memory stats sink.
//
// Parameters: none.
//
// Returns: *MemStats.
//
// Called from cmd/main and tests.
func NewMemStats() *MemStats {
	return &MemStats{counters: make(map[string]*memCounter)}
}

// Counter returns the counter registered under name, creating it on first use. The same name
// always maps to the same counter.
//
// Parameter name — counter name (e.g. "expired").
//
// Returns: interfaces.Counter (*memCounter).
//
// Called from service.NewBalancer and handlers via CounterValue.
func (s *MemStats) Counter(name string) interfaces.Counter {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.counters[name]
	if !ok {
		c = &memCounter{}
		s.counters[name] = c
	}
	return c
}

// CounterValue returns the current value of the named counter, 0 if it was never created.
//
// Parameter name — counter name.
//
// Returns: int64 observation count.
//
// Called from handlers.HTTPServer.Status and tests.
func (s *MemStats) CounterValue(name string) int64 {
	s.mu.Lock()
	c, ok := s.counters[name]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	return c.n.Load()
}

// memCounter implements interfaces.Counter over an atomic int64.
type memCounter struct {
	n atomic.Int64
}

// Incr adds one observation.
func (c *memCounter) Incr() {
	c.n.Add(1)
}

// fanoutStats implements interfaces.StatsSink by forwarding each counter to every underlying
// sink. Used when observations should land both in memory (status endpoint) and in Redis.
type fanoutStats struct {
	sinks []interfaces.StatsSink
}

// NewFanoutStats combines sinks into one: Counter(name) returns a counter whose Incr hits the
// counter of the same name in every sink. Panics on empty sinks.
//
// Parameter sinks — at least one underlying sink.
//
// Returns: interfaces.StatsSink (*fanoutStats).
//
// Called from cmd/main when REDIS_ADDR is configured.
func NewFanoutStats(sinks ...interfaces.StatsSink) interfaces.StatsSink {
	if len(sinks) == 0 {
		panic("service.stats.go: at least one sink is required")
	}
	return &fanoutStats{sinks: sinks}
}

// Counter returns a fanout counter over the named counter of every sink.
//
// Parameter name — counter name.
//
// Returns: interfaces.Counter.
func (s *fanoutStats) Counter(name string) interfaces.Counter {
	counters := make([]interfaces.Counter, 0, len(s.sinks))
	for _, sink := range s.sinks {
		counters = append(counters, sink.Counter(name))
	}
	return &fanoutCounter{counters: counters}
}

type fanoutCounter struct {
	counters []interfaces.Counter
}

// Incr increments the counter in every underlying sink.
func (c *fanoutCounter) Incr() {
	for _, counter := range c.counters {
		counter.Incr()
	}
}
