package interfaces

import "mybalancer/domain"

// BalancerStatus exposes a read-only snapshot of the balancer's nodes for the status endpoint.
//
// Implemented by service.Balancer. Called from handlers.HTTPServer.Status.
//
//go:generate moq -stub -out mock/balancer_status.go -pkg mock . BalancerStatus
type BalancerStatus interface {
	// Describe returns one NodeDescription per node in rank order (instance ID, derived state, in-flight count).
	// Parameters: none.
	// Returns: snapshot slice; safe to use after concurrent balancer mutation (it is a copy).
	// Called from handlers.HTTPServer.Status on GET /v1/status.
	Describe() []domain.NodeDescription
}
