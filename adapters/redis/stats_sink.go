package redis

import (
	"context"
	"time"

	"mybalancer/helpers"
	"mybalancer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/go-redis/redis/v8"
)

const keyPrefix = "mybalancer_counter"

// statsSink implements interfaces.StatsSink over Redis: each counter is the key
// mybalancer_counter:{name}, incremented with INCR so observations survive process restarts
// and aggregate across balancer instances.
type statsSink struct {
	client redis.UniversalClient
	logger log.Logger
}

// NewStatsSink creates a StatsSink writing counters to Redis. INCR failures are logged, not
// returned — the eviction path never fails because the sink is down. Panics on nil client or logger.
//
// Parameters: client — redis client (NewRedisUniversalClient); logger — INCR errors are logged through it.
//
// Returns: interfaces.StatsSink (*statsSink).
//
// Called from cmd/main when REDIS_ADDR is configured (combined with the in-memory sink via
// service.NewFanoutStats).
func NewStatsSink(client redis.UniversalClient, logger log.Logger) interfaces.StatsSink {
	return &statsSink{
		client: helpers.NilPanic(client, "adapters.redis.stats_sink.go: client is required"),
		logger: log.With(helpers.NilPanic(logger, "adapters.redis.stats_sink.go: logger is required"), "component", "redis_stats"),
	}
}

// Counter returns the counter stored under mybalancer_counter:{name}.
//
// Parameter name — counter name (e.g. "expired").
//
// Returns: interfaces.Counter (*counter).
//
// Called from service.NewBalancer via the fanout sink.
func (s *statsSink) Counter(name string) interfaces.Counter {
	return &counter{
		client: s.client,
		logger: s.logger,
		key:    keyPrefix + ":" + name,
	}
}

// counter implements interfaces.Counter with Redis INCR.
type counter struct {
	client redis.UniversalClient
	logger log.Logger
	key    string
}

// Incr increments the Redis key with a 2s timeout. Errors are logged and swallowed.
//
// Called from service.ExpiringNode.Expire.
func (c *counter) Incr() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := c.client.Incr(ctx, c.key).Err(); err != nil {
		level.Warn(c.logger).Log("msg", "failed to increment counter", "key", c.key, "err", err)
	}
}
