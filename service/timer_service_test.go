package service

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimerService_Schedule(t *testing.T) {
	t.Run("invokes_callback_repeatedly", func(t *testing.T) {
		var count atomic.Int64
		task := NewTimerService().Schedule(5*time.Millisecond, func() { count.Add(1) })
		defer task.Cancel()
		require.Eventually(t, func() bool { return count.Load() >= 3 }, time.Second, 5*time.Millisecond)
	})

	t.Run("cancel_stops_future_invocations", func(t *testing.T) {
		var count atomic.Int64
		task := NewTimerService().Schedule(5*time.Millisecond, func() { count.Add(1) })
		require.Eventually(t, func() bool { return count.Load() >= 1 }, time.Second, 5*time.Millisecond)
		task.Cancel()
		// An invocation in flight at cancellation may still finish; none start after it.
		time.Sleep(20 * time.Millisecond)
		settled := count.Load()
		time.Sleep(50 * time.Millisecond)
		require.Equal(t, settled, count.Load())
	})

	t.Run("cancel_is_idempotent", func(t *testing.T) {
		task := NewTimerService().Schedule(time.Hour, func() {})
		task.Cancel()
		require.NotPanics(t, func() { task.Cancel() })
		require.NotPanics(t, func() { task.Cancel() })
	})
}
