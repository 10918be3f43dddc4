package service

import (
	"sync"
	"time"

	"mybalancer/interfaces"
)

// tickerTimerService implements interfaces.TimerService with one goroutine and a time.Ticker
// per schedule. The single goroutine serializes invocations, so ticks never overlap; Cancel
// closes a stop channel guarded by sync.Once, so redundant cancellation is a no-op.
type tickerTimerService struct{}

// NewTimerService creates the ticker-backed TimerService used in production. Tests usually
// substitute mock.TimerServiceMock to drive the callback manually.
//
// Parameters: none.
//
// Returns: interfaces.TimerService (*tickerTimerService).
//
// Called from cmd/main when building the balancer.
func NewTimerService() interfaces.TimerService {
	return &tickerTimerService{}
}

// Schedule starts a goroutine invoking fn every interval until the returned task is cancelled.
// The stop channel is re-checked after each tick fires, so a cancellation racing a tick means
// at most the in-flight invocation runs — never a later one.
//
// Parameters: interval — tick period (must be positive, enforced by time.NewTicker);
// fn — callback invoked per tick.
//
// Returns: interfaces.TimerTask whose Cancel stops the goroutine.
//
// Called from service.Sweeper.NewExpiryTask and service.NewBalancer (refresh loop).
func (s *tickerTimerService) Schedule(interval time.Duration, fn func()) interfaces.TimerTask {
	task := &timerTask{stop: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-task.stop:
				return
			case <-ticker.C:
				select {
				case <-task.stop:
					return
				default:
				}
				fn()
			}
		}
	}()
	return task
}

// timerTask implements interfaces.TimerTask for one Schedule call.
type timerTask struct {
	stop chan struct{}
	once sync.Once
}

// Cancel stops future invocations. Idempotent: only the first call closes the stop channel.
//
// Called from service.Balancer.Close at shutdown.
func (t *timerTask) Cancel() {
	t.once.Do(func() { close(t.stop) })
}
