package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"mybalancer/domain"
	"mybalancer/helpers"
	"mybalancer/interfaces/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testInstance(id string) domain.ServiceInstance {
	return domain.ServiceInstance{InstanceID: id, Ipv4: "127.0.0.1", Port: 9001}
}

func TestWrapNode_Panics(t *testing.T) {
	factory := &mock.SessionFactoryMock{}
	clock := &mock.TimeProviderMock{NowFunc: helpers.TestNow}
	counter := &mock.CounterMock{}

	t.Run("factory_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.expiring_node.go: factory is required", func() {
			WrapNode(testInstance("i1"), nil, clock, counter)
		})
	})
	t.Run("clock_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.expiring_node.go: clock is required", func() {
			WrapNode(testInstance("i1"), factory, nil, counter)
		})
	})
	t.Run("counter_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "service.expiring_node.go: expired counter is required", func() {
			WrapNode(testInstance("i1"), factory, clock, nil)
		})
	})
}

func TestExpiringNode_IdleTracking(t *testing.T) {
	threshold := time.Minute

	t.Run("never_acquired_is_never_expirable", func(t *testing.T) {
		node := WrapNode(testInstance("i1"), &mock.SessionFactoryMock{}, &mock.TimeProviderMock{NowFunc: helpers.TestNow}, &mock.CounterMock{})
		assert.False(t, node.IsExpirable(helpers.TestNow().Add(1000*time.Hour), threshold))
		assert.Equal(t, domain.NodeStateUnused, node.State())
	})

	t.Run("release_that_zeroes_counter_starts_idle_clock", func(t *testing.T) {
		now := helpers.TestNow()
		clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
		node := WrapNode(testInstance("i1"), &mock.SessionFactoryMock{}, clock, &mock.CounterMock{})
		node.Acquire()
		node.Release()
		assert.Equal(t, domain.NodeStateIdle, node.State())
		assert.False(t, node.IsExpirable(now.Add(threshold-time.Second), threshold))
		assert.True(t, node.IsExpirable(now.Add(threshold), threshold))
	})

	t.Run("only_last_of_overlapping_releases_starts_idle_clock", func(t *testing.T) {
		now := helpers.TestNow()
		clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
		node := WrapNode(testInstance("i1"), &mock.SessionFactoryMock{}, clock, &mock.CounterMock{})
		node.Acquire()
		node.Acquire()
		node.Release()
		// One request still in flight: no idle stamp yet, however much time passes.
		assert.Equal(t, domain.NodeStateBusy, node.State())
		assert.False(t, node.IsExpirable(now.Add(1000*time.Hour), threshold))

		now = now.Add(10 * time.Minute)
		node.Release()
		assert.False(t, node.IsExpirable(now.Add(threshold-time.Second), threshold))
		assert.True(t, node.IsExpirable(now.Add(threshold), threshold))
	})

	t.Run("new_acquire_clears_idle_stamp", func(t *testing.T) {
		now := helpers.TestNow()
		clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
		node := WrapNode(testInstance("i1"), &mock.SessionFactoryMock{}, clock, &mock.CounterMock{})
		node.Acquire()
		node.Release()
		node.Acquire()
		assert.False(t, node.IsExpirable(now.Add(1000*time.Hour), threshold))
		assert.Equal(t, domain.NodeStateBusy, node.State())
	})

	t.Run("unmatched_release_is_ignored", func(t *testing.T) {
		now := helpers.TestNow()
		clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
		node := WrapNode(testInstance("i1"), &mock.SessionFactoryMock{}, clock, &mock.CounterMock{})
		node.Release()
		assert.Equal(t, 0, node.Outstanding())
		assert.False(t, node.IsExpirable(now.Add(threshold), threshold))
	})

	t.Run("concurrent_acquire_release_balances_to_zero", func(t *testing.T) {
		now := helpers.TestNow()
		clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
		node := WrapNode(testInstance("i1"), &mock.SessionFactoryMock{}, clock, &mock.CounterMock{})
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				node.Acquire()
				node.Release()
			}()
		}
		wg.Wait()
		assert.Equal(t, 0, node.Outstanding())
		assert.True(t, node.IsExpirable(now.Add(threshold), threshold))
	})
}

func TestExpiringNode_Expire(t *testing.T) {
	t.Run("closes_factory_and_counts_exactly_once", func(t *testing.T) {
		factory := &mock.SessionFactoryMock{}
		counter := &mock.CounterMock{}
		node := WrapNode(testInstance("i1"), factory, &mock.TimeProviderMock{NowFunc: helpers.TestNow}, counter)

		require.NoError(t, node.Expire())
		require.NoError(t, node.Expire())
		require.NoError(t, node.Expire())

		assert.Len(t, factory.CloseCalls(), 1)
		assert.Len(t, counter.IncrCalls(), 1)
		assert.True(t, node.Closed())
		assert.Equal(t, domain.NodeStateExpired, node.State())
	})

	t.Run("concurrent_expires_collapse_to_one_close", func(t *testing.T) {
		factory := &mock.SessionFactoryMock{}
		counter := &mock.CounterMock{}
		node := WrapNode(testInstance("i1"), factory, &mock.TimeProviderMock{NowFunc: helpers.TestNow}, counter)

		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = node.Expire()
			}()
		}
		wg.Wait()
		assert.Len(t, factory.CloseCalls(), 1)
		assert.Len(t, counter.IncrCalls(), 1)
	})

	t.Run("expired_node_is_not_expirable", func(t *testing.T) {
		now := helpers.TestNow()
		clock := &mock.TimeProviderMock{NowFunc: func() time.Time { return now }}
		node := WrapNode(testInstance("i1"), &mock.SessionFactoryMock{}, clock, &mock.CounterMock{})
		node.Acquire()
		node.Release()
		require.NoError(t, node.Expire())
		assert.False(t, node.IsExpirable(now.Add(time.Hour), time.Minute))
	})

	t.Run("close_error_is_wrapped_and_observation_still_counted", func(t *testing.T) {
		factory := &mock.SessionFactoryMock{CloseFunc: func() error { return errors.New("close failed") }}
		counter := &mock.CounterMock{}
		node := WrapNode(testInstance("i1"), factory, &mock.TimeProviderMock{NowFunc: helpers.TestNow}, counter)

		err := node.Expire()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "i1")
		assert.Len(t, counter.IncrCalls(), 1)
		assert.True(t, node.Closed())
	})
}

func TestExpiringNode_Shutdown(t *testing.T) {
	t.Run("closes_factory_without_counting", func(t *testing.T) {
		factory := &mock.SessionFactoryMock{}
		counter := &mock.CounterMock{}
		node := WrapNode(testInstance("i1"), factory, &mock.TimeProviderMock{NowFunc: helpers.TestNow}, counter)

		require.NoError(t, node.Shutdown())
		require.NoError(t, node.Shutdown())
		assert.Len(t, factory.CloseCalls(), 1)
		assert.Empty(t, counter.IncrCalls())
	})

	t.Run("expire_after_shutdown_is_noop", func(t *testing.T) {
		factory := &mock.SessionFactoryMock{}
		counter := &mock.CounterMock{}
		node := WrapNode(testInstance("i1"), factory, &mock.TimeProviderMock{NowFunc: helpers.TestNow}, counter)

		require.NoError(t, node.Shutdown())
		require.NoError(t, node.Expire())
		assert.Len(t, factory.CloseCalls(), 1)
		assert.Empty(t, counter.IncrCalls())
	})
}
