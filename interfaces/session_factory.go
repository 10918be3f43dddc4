package interfaces

import (
	"context"

	"google.golang.org/grpc"
)

// SessionFactory owns the backend connection of one node. The connection is lazy: nothing is
// dialed until the first Session call, so a node the balancer never routes to never opens
// (and therefore never needs to close) a real connection.
//
// Implemented by service.NewGRPCSessionFactory. Wrapped per node by service.WrapNode, which
// adds the acquire/release bookkeeping around Session.
//
//go:generate moq -stub -out mock/session_factory.go -pkg mock . SessionFactory
type SessionFactory interface {
	// Session returns the node's connection, dialing it on first use.
	// Parameter ctx — context for the dial when the connection does not exist yet.
	// Returns: (conn, nil) on success; (nil, error) on dial error or after Close.
	// Called from service.ExpiringNode.Session on the request dispatch path.
	Session(ctx context.Context) (*grpc.ClientConn, error)

	// Opened reports whether the factory has ever dialed a connection.
	// Returns: true once Session has succeeded at least once.
	// Called from tests asserting that unused nodes stay unopened.
	Opened() bool

	// Close releases the connection if one was opened. Idempotent: repeated calls return nil.
	// Returns: nil when nothing was opened or close succeeded; error from the underlying close otherwise.
	// Called from service.ExpiringNode.Expire (idle eviction) and Shutdown (membership churn, balancer close).
	Close() error
}
