package service

import (
	"sync"
	"testing"

	"mybalancer/interfaces"
	"mybalancer/interfaces/mock"

	"github.com/stretchr/testify/assert"
)

func TestMemStats(t *testing.T) {
	t.Run("incr_and_read_back", func(t *testing.T) {
		stats := NewMemStats()
		c := stats.Counter("expired")
		c.Incr()
		c.Incr()
		assert.Equal(t, int64(2), stats.CounterValue("expired"))
	})

	t.Run("same_name_is_same_counter", func(t *testing.T) {
		stats := NewMemStats()
		stats.Counter("expired").Incr()
		stats.Counter("expired").Incr()
		assert.Equal(t, int64(2), stats.CounterValue("expired"))
	})

	t.Run("unknown_counter_reads_zero", func(t *testing.T) {
		stats := NewMemStats()
		assert.Equal(t, int64(0), stats.CounterValue("never_created"))
	})

	t.Run("concurrent_incr", func(t *testing.T) {
		stats := NewMemStats()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				stats.Counter("expired").Incr()
			}()
		}
		wg.Wait()
		assert.Equal(t, int64(50), stats.CounterValue("expired"))
	})
}

func TestFanoutStats(t *testing.T) {
	t.Run("incr_hits_every_sink", func(t *testing.T) {
		mem := NewMemStats()
		remote := &mock.CounterMock{}
		sink := NewFanoutStats(mem, &mock.StatsSinkMock{
			CounterFunc: func(name string) interfaces.Counter { return remote },
		})
		sink.Counter("expired").Incr()
		assert.Equal(t, int64(1), mem.CounterValue("expired"))
		assert.Len(t, remote.IncrCalls(), 1)
	})

	t.Run("empty_sinks_panics", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.stats.go: at least one sink is required", func() {
			NewFanoutStats()
		})
	})
}
