package interfaces

import "mybalancer/domain"

// Discoverer provides the current list of backend instances for the balancer's cluster.
//
// GetInstances returns the current set of instances (e.g. from HTTP GET /v1/instances).
// Instances that disappear between two calls are shut down and dropped by the balancer;
// new instances get a fresh lazy node.
//
// Implemented by adapters.DiscovererHTTP. Called from service.Balancer in refresh.
//
//go:generate moq -stub -out mock/discoverer.go -pkg mock . Discoverer
type Discoverer interface {
	// GetInstances returns the current list of backend instances (e.g. from HTTP GET /v1/instances).
	// Parameters: none.
	// Returns: ([]ServiceInstance, nil) on success; (nil, error) on network or response parse error. Empty list is valid (e.g. 404 from discoverer).
	// Called from service.Balancer.refresh (background refresh) and at startup in NewBalancer.
	GetInstances() ([]domain.ServiceInstance, error)
}
