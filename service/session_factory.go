package service

import (
	"context"
	"errors"
	"sync"

	"mybalancer/domain"
	"mybalancer/helpers"
	"mybalancer/interfaces"

	"google.golang.org/grpc"
)

// ErrSessionFactoryClosed is returned by Session after the factory has been closed.
var ErrSessionFactoryClosed = errors.New("session factory is closed")

// DialFunc dials a connection to one backend instance. cmd/main supplies
// grpc.NewClient with insecure credentials; tests supply stubs.
type DialFunc func(ctx context.Context, instance domain.ServiceInstance) (*grpc.ClientConn, error)

// grpcSessionFactory implements interfaces.SessionFactory: a lazy holder of one
// *grpc.ClientConn per instance. Nothing is dialed until the first Session call, so a node
// that never receives traffic never holds a real connection. Fields: instance, dial; under
// mu: conn (nil until first dial), closed.
type grpcSessionFactory struct {
	instance domain.ServiceInstance
	dial     DialFunc

	mu     sync.Mutex
	conn   *grpc.ClientConn
	closed bool
}

// NewGRPCSessionFactory creates a lazy session factory for one instance. Panics on nil dial.
//
// Parameters: instance — backend endpoint to dial; dial — (ctx, instance) → (*grpc.ClientConn, error).
//
// Returns: interfaces.SessionFactory (*grpcSessionFactory).
//
// Called from service.Balancer.refresh (via the factory func built in cmd/main) for each new instance.
func NewGRPCSessionFactory(instance domain.ServiceInstance, dial DialFunc) interfaces.SessionFactory {
	return &grpcSessionFactory{
		instance: instance,
		dial:     helpers.NilPanic(dial, "service.session_factory.go: dial is required"),
	}
}

// Session returns the connection, dialing it on first use. The dial runs under the factory
// mutex so concurrent first uses produce one connection.
//
// Parameter ctx — context for the dial (grpc.NewClient itself does not block on the network).
//
// Returns: (conn, nil) on success; (nil, ErrSessionFactoryClosed) after Close; (nil, error) on dial error.
//
// Called from service.ExpiringNode.Session.
func (f *grpcSessionFactory) Session(ctx context.Context) (*grpc.ClientConn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil, ErrSessionFactoryClosed
	}
	if f.conn != nil {
		return f.conn, nil
	}
	conn, err := f.dial(ctx, f.instance)
	if err != nil {
		return nil, err
	}
	f.conn = conn
	return conn, nil
}

// Opened reports whether a connection has ever been dialed.
//
// Returns: true once Session has succeeded at least once (stays true after Close).
//
// Called from tests.
func (f *grpcSessionFactory) Opened() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.conn != nil
}

// Close releases the connection if one was dialed; closing an unopened factory only marks it
// closed. Idempotent: repeated calls return nil.
//
// Returns: nil when nothing was opened, already closed or close succeeded; the conn close error otherwise.
//
// Called from service.ExpiringNode.Expire and Shutdown.
func (f *grpcSessionFactory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	if f.conn == nil {
		return nil
	}
	return f.conn.Close()
}
