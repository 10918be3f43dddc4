package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"mybalancer/domain"
	"mybalancer/helpers"
	"mybalancer/interfaces"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
)

// ErrBalancerClosed is returned by Checkout after the balancer has been closed.
var ErrBalancerClosed = errors.New("balancer is closed")

// ErrNoAvailableEndpoint is returned when no endpoint inside the aperture window can serve:
// empty instance list, every in-window node closed, or every dial failed.
var ErrNoAvailableEndpoint = errors.New("no available backend endpoint")

// expiredCounterName is the stats counter incremented once per idle-evicted node.
const expiredCounterName = "expired"

// Balancer maintains the ranked node list for one backend cluster: a background refresh task
// calls Discoverer.GetInstances and updates the list (new instances wrapped into lazy
// ExpiringNodes, vanished instances shut down and dropped, the aperture's node count updated);
// Checkout hands out a connection from inside the aperture window in round-robin order with
// acquire/release bookkeeping wrapped around it; a recurring expiry task sweeps nodes outside
// the window and closes those idle past the threshold. Close is idempotent and cancels both
// recurring tasks exactly once.
//
// An expired node whose instance is still registered is replaced with a fresh unopened node on
// the next refresh, so an endpoint that re-enters the aperture is re-dialed on demand rather
// than staying dead. The round-robin checkout stands in for the external pick algorithm; the
// expiry contract only depends on aggregate idle/membership state, not on which node a given
// request lands on.
//
// Fields: discoverer, factory, clock, stats, cfg, logger; aperture window; refreshTask and
// expiryTask handles; under mu: instances, nodes (rank order matches instances), rr, closed.
type Balancer struct {
	discoverer interfaces.Discoverer
	factory    func(instance domain.ServiceInstance) interfaces.SessionFactory
	clock      interfaces.TimeProvider
	expired    interfaces.Counter
	cfg        domain.ExpiryConfig
	logger     log.Logger

	aperture    *ApertureWindow
	refreshTask interfaces.TimerTask
	expiryTask  interfaces.TimerTask

	mu        sync.Mutex
	instances []domain.ServiceInstance
	nodes     []*ExpiringNode
	rr        int
	closed    bool
}

// BalancerConfig carries the collaborators and settings for NewBalancer. All fields except
// Expiry.SweepInterval are required.
type BalancerConfig struct {
	Discoverer      interfaces.Discoverer
	Factory         func(instance domain.ServiceInstance) interfaces.SessionFactory
	Timer           interfaces.TimerService
	Clock           interfaces.TimeProvider
	Stats           interfaces.StatsSink
	Logger          log.Logger
	Expiry          domain.ExpiryConfig
	RefreshInterval time.Duration
	ApertureWidth   int
}

// NewBalancer builds the balancer for one cluster: runs the first refresh, schedules the
// recurring refresh on the timer, and schedules the expiry sweep via Sweeper.NewExpiryTask.
// Panics on nil discoverer, factory, timer, clock, stats or logger, or non-positive
// RefreshInterval or Expiry.IdleThreshold.
//
// Parameter cfg — see BalancerConfig.
//
// Returns: *Balancer.
//
// Called from cmd/main.
func NewBalancer(cfg BalancerConfig) *Balancer {
	if cfg.RefreshInterval <= 0 {
		panic("service.balancer.go: refresh interval must be positive")
	}
	if cfg.Expiry.IdleThreshold <= 0 {
		panic("service.balancer.go: idle threshold must be positive")
	}
	stats := helpers.NilPanic(cfg.Stats, "service.balancer.go: stats is required")
	b := &Balancer{
		discoverer: helpers.NilPanic(cfg.Discoverer, "service.balancer.go: discoverer is required"),
		factory:    helpers.NilPanic(cfg.Factory, "service.balancer.go: factory is required"),
		clock:      helpers.NilPanic(cfg.Clock, "service.balancer.go: clock is required"),
		expired:    stats.Counter(expiredCounterName),
		cfg:        cfg.Expiry,
		logger:     log.With(helpers.NilPanic(cfg.Logger, "service.balancer.go: logger is required"), "component", "balancer"),
		aperture:   NewApertureWindow(cfg.ApertureWidth),
	}
	timer := helpers.NilPanic(cfg.Timer, "service.balancer.go: timer is required")
	b.refresh()
	b.refreshTask = timer.Schedule(cfg.RefreshInterval, b.refresh)
	sweeper := NewSweeper(b.Nodes, b.aperture, b.clock, b.cfg, cfg.Logger)
	b.expiryTask = sweeper.NewExpiryTask(timer)
	return b
}

// Aperture returns the balancer's aperture window so an external sizing controller can call
// SetWidth.
//
// Returns: *ApertureWindow.
//
// Called from cmd/main (initial width comes from config) and tests.
func (b *Balancer) Aperture() *ApertureWindow {
	return b.aperture
}

// refresh fetches the current instance list from the discoverer; on error logs and returns.
// On success under lock: keeps the live node of every instance still present, replaces closed
// nodes with fresh unopened ones, shuts down and drops nodes of vanished instances, replaces
// the instance list, clamps rr and updates the aperture's node count. No-op once closed.
//
// Parameters and return: none. GetInstances error is not returned, only logged.
//
// Called from the refresh task on timer and once from NewBalancer at startup.
func (b *Balancer) refresh() {
	instances, err := b.discoverer.GetInstances()
	if err != nil {
		level.Warn(b.logger).Log("msg", "discoverer GetInstances failed", "err", err)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}

	existing := make(map[string]*ExpiringNode, len(b.nodes))
	for _, node := range b.nodes {
		existing[node.InstanceID()] = node
	}
	nodes := make([]*ExpiringNode, 0, len(instances))
	for _, inst := range instances {
		if node, ok := existing[inst.InstanceID]; ok && !node.Closed() {
			nodes = append(nodes, node)
			delete(existing, inst.InstanceID)
			continue
		}
		delete(existing, inst.InstanceID)
		nodes = append(nodes, WrapNode(inst, b.factory(inst), b.clock, b.expired))
	}
	for id, node := range existing {
		if err := node.Shutdown(); err != nil {
			level.Warn(b.logger).Log("msg", "close failed for removed instance", "instance", id, "err", err)
		}
	}
	b.instances = instances
	b.nodes = nodes
	if b.rr >= len(b.nodes) {
		b.rr = 0
	}
	b.aperture.SetCount(len(b.nodes))
}

// Checkout returns a connection to the next usable node inside the aperture window in
// round-robin order, acquiring the node before the session is handed out so the sweeper never
// expires a node mid-dispatch. The caller must call checkin exactly when the request
// completes; extra calls are ignored.
//
// Parameter ctx — context for the dial when the node's connection does not exist yet.
//
// Returns: (conn, instanceID, checkin, nil) on success; (nil, "", nil, ErrBalancerClosed)
// after Close; (nil, "", nil, ErrNoAvailableEndpoint) when the window is empty or every
// in-window node is closed or fails to dial.
//
// Called by the request dispatch path (cmd/main demo loop, tests).
func (b *Balancer) Checkout(ctx context.Context) (*grpc.ClientConn, string, func(), error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil, "", nil, ErrBalancerClosed
	}
	window := b.aperture.WindowSize()
	if window > len(b.nodes) {
		window = len(b.nodes)
	}
	if window == 0 {
		return nil, "", nil, ErrNoAvailableEndpoint
	}
	if b.rr >= window {
		b.rr = 0
	}
	for i := 0; i < window; i++ {
		idx := (b.rr + i) % window
		node := b.nodes[idx]
		if node.Closed() {
			continue
		}
		node.Acquire()
		conn, err := node.Session(ctx)
		if err != nil {
			node.Release()
			continue
		}
		b.rr = (idx + 1) % window
		var once sync.Once
		checkin := func() { once.Do(node.Release) }
		return conn, node.InstanceID(), checkin, nil
	}
	return nil, "", nil, ErrNoAvailableEndpoint
}

// Nodes returns a snapshot of the ranked node list. The slice is a copy; the nodes are shared.
//
// Returns: []*ExpiringNode in rank order.
//
// Called from service.Sweeper.Sweep each tick and from tests.
func (b *Balancer) Nodes() []*ExpiringNode {
	b.mu.Lock()
	defer b.mu.Unlock()
	nodes := make([]*ExpiringNode, len(b.nodes))
	copy(nodes, b.nodes)
	return nodes
}

// Describe returns one NodeDescription per node in rank order for the status endpoint.
//
// Returns: []domain.NodeDescription snapshot.
//
// Called from handlers.HTTPServer.Status.
func (b *Balancer) Describe() []domain.NodeDescription {
	nodes := b.Nodes()
	out := make([]domain.NodeDescription, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, domain.NodeDescription{
			InstanceID:  node.InstanceID(),
			State:       node.State(),
			Outstanding: node.Outstanding(),
		})
	}
	return out
}

// Close marks the balancer closed, cancels the refresh and expiry tasks (idempotently — a
// second Close finds the closed flag set and returns nil), and shuts down every node outside
// the lock. After Close no further expirations occur: the expiry task schedules no more ticks.
//
// Returns: nil (node close errors are logged, not returned).
//
// Called from cmd/main (defer) at shutdown.
func (b *Balancer) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	nodes := b.nodes
	b.nodes = nil
	b.instances = nil
	b.mu.Unlock()

	b.refreshTask.Cancel()
	b.expiryTask.Cancel()
	for _, node := range nodes {
		if err := node.Shutdown(); err != nil {
			level.Warn(b.logger).Log("msg", "close failed at shutdown", "instance", node.InstanceID(), "err", err)
		}
	}
	return nil
}

var _ interfaces.BalancerStatus = (*Balancer)(nil)
