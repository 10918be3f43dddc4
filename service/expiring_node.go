package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mybalancer/domain"
	"mybalancer/helpers"
	"mybalancer/interfaces"

	"google.golang.org/grpc"
)

// ExpiringNode wraps one backend instance's lazy SessionFactory with the idle bookkeeping
// the expiry sweep needs: an outstanding-request counter, an idle stamp set when the counter
// last hit zero, and a closed flag. All three live under one per-node mutex so a Release
// racing a fresh Acquire can never stamp idle after the new use has started, and concurrent
// Expire calls collapse into a single close with a single counted observation.
//
// Dispatch code treats the node as a transparent decorator: Session forwards to the factory,
// Acquire/Release bracket each request. Fields: instance, factory, clock, expired (counter
// from the stats sink); under mu: outstanding, idleSince (zero time = no stamp), closed.
type ExpiringNode struct {
	instance domain.ServiceInstance
	factory  interfaces.SessionFactory
	clock    interfaces.TimeProvider
	expired  interfaces.Counter

	mu          sync.Mutex
	outstanding int
	idleSince   time.Time
	closed      bool
}

// WrapNode decorates an instance's session factory with expiry bookkeeping. The node starts
// Unused: no idle stamp, so it is not expirable until it has served (and finished) at least
// one request. Panics on nil factory, clock or expired counter.
//
// Parameters: instance — the backend endpoint; factory — lazy session factory for it;
// clock — time source for idle stamps; expired — counter incremented once per expiry.
//
// Returns: *ExpiringNode.
//
// Called from service.Balancer.refresh for each new instance and from tests.
func WrapNode(
	instance domain.ServiceInstance,
	factory interfaces.SessionFactory,
	clock interfaces.TimeProvider,
	expired interfaces.Counter,
) *ExpiringNode {
	return &ExpiringNode{
		instance: instance,
		factory:  helpers.NilPanic(factory, "service.expiring_node.go: factory is required"),
		clock:    helpers.NilPanic(clock, "service.expiring_node.go: clock is required"),
		expired:  helpers.NilPanic(expired, "service.expiring_node.go: expired counter is required"),
	}
}

// InstanceID returns the wrapped instance's identifier.
//
// Returns: string instance ID.
//
// Called from service.Balancer.Checkout and Describe.
func (n *ExpiringNode) InstanceID() string {
	return n.instance.InstanceID
}

// Acquire marks the start of one request on the node: increments the outstanding counter and
// clears the idle stamp in the same critical section. A node with a request in flight is never
// an expiry candidate, regardless of aperture membership.
//
// Parameters and return: none.
//
// Called from service.Balancer.Checkout before the session is handed to the caller.
func (n *ExpiringNode) Acquire() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.outstanding++
	n.idleSince = time.Time{}
}

// Release marks the completion of one request: decrements the outstanding counter and, iff
// this decrement brings it to exactly zero, stamps idleSince with the current time. With
// overlapping requests only the last Release starts the idle clock. A Release without a
// matching Acquire is ignored.
//
// Parameters and return: none.
//
// Called from the checkin func returned by service.Balancer.Checkout when the request completes.
func (n *ExpiringNode) Release() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.outstanding == 0 {
		return
	}
	n.outstanding--
	if n.outstanding == 0 {
		n.idleSince = n.clock.Now()
	}
}

// IsExpirable reports whether the node qualifies for expiry at time now: zero outstanding
// requests, an idle stamp present (the node has been used at least once), idle for at least
// threshold, and not already closed. Aperture membership is the sweeper's concern, not the
// node's.
//
// Parameters: now — evaluation time (the sweeper reads its clock once per pass);
// threshold — minimum idle duration.
//
// Returns: true if the node may be expired on this check.
//
// Called from service.Sweeper.Sweep for every node outside the aperture window.
func (n *ExpiringNode) IsExpirable(now time.Time, threshold time.Duration) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed || n.outstanding > 0 || n.idleSince.IsZero() {
		return false
	}
	return now.Sub(n.idleSince) >= threshold
}

// Expire closes the node's session factory and records one "expired" observation. Idempotent:
// the closed flag is flipped under the node mutex, so concurrent Expire (or Shutdown) calls
// collapse into a single close and a single counted observation; losers return nil without
// side effects. The factory close runs outside the mutex.
//
// Parameters: none.
//
// Returns: nil when already closed or close succeeded; wrapped factory close error otherwise
// (the observation is still counted — the eviction happened, the close failed).
//
// Called from service.Sweeper.Sweep when IsExpirable is true.
func (n *ExpiringNode) Expire() error {
	if !n.beginClose() {
		return nil
	}
	n.expired.Incr()
	if err := n.factory.Close(); err != nil {
		return fmt.Errorf("expire node %s: %w", n.instance.InstanceID, err)
	}
	return nil
}

// Shutdown closes the node's session factory without counting an expiry observation. Used
// when the instance disappears from the discoverer or the balancer closes — membership churn
// is not an idle eviction. Shares the closed flag with Expire, so a node is closed at most
// once between the two.
//
// Parameters: none.
//
// Returns: nil when already closed or close succeeded; wrapped factory close error otherwise.
//
// Called from service.Balancer.refresh (vanished instances) and service.Balancer.Close.
func (n *ExpiringNode) Shutdown() error {
	if !n.beginClose() {
		return nil
	}
	if err := n.factory.Close(); err != nil {
		return fmt.Errorf("shutdown node %s: %w", n.instance.InstanceID, err)
	}
	return nil
}

// beginClose flips the closed flag. Returns true for exactly one caller; everyone else sees
// the node already closed.
func (n *ExpiringNode) beginClose() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return false
	}
	n.closed = true
	return true
}

// Closed reports whether the node has been expired or shut down.
//
// Returns: true once Expire or Shutdown has run.
//
// Called from service.Balancer.Checkout (skip closed nodes) and refresh (replace closed nodes).
func (n *ExpiringNode) Closed() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.closed
}

// Session forwards to the wrapped factory, dialing the connection on first use. Callers must
// hold an Acquire for the duration of their use of the returned connection.
//
// Parameter ctx — context for the dial when the connection does not exist yet.
//
// Returns: (conn, nil) on success; (nil, error) on dial error or after the factory was closed.
//
// Called from service.Balancer.Checkout.
func (n *ExpiringNode) Session(ctx context.Context) (*grpc.ClientConn, error) {
	return n.factory.Session(ctx)
}

// State derives the node's lifecycle state for the status report: Expired if closed, Busy if
// requests are in flight, Idle if the idle stamp is set, Unused otherwise.
//
// Returns: domain.NodeState.
//
// Called from service.Balancer.Describe.
func (n *ExpiringNode) State() domain.NodeState {
	n.mu.Lock()
	defer n.mu.Unlock()
	switch {
	case n.closed:
		return domain.NodeStateExpired
	case n.outstanding > 0:
		return domain.NodeStateBusy
	case !n.idleSince.IsZero():
		return domain.NodeStateIdle
	default:
		return domain.NodeStateUnused
	}
}

// Outstanding returns the current in-flight request count.
//
// Returns: int ≥ 0.
//
// Called from service.Balancer.Describe and tests.
func (n *ExpiringNode) Outstanding() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.outstanding
}
