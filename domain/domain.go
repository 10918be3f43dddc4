package domain

// ServiceInstance is a single backend instance from the discoverer (e.g. GET /v1/instances).
type ServiceInstance struct {
	InstanceID string
	Ipv4       string
	Port       int
}

// NodeState is the derived lifecycle state of one balancer node, computed from its
// outstanding-request count, idle stamp and closed flag. Unused → Busy → Idle → Expired;
// Expired is terminal, Busy↔Idle repeat while the node is alive.
type NodeState string

const (
	// NodeStateUnused — node has never served a request; its session factory may still be undialed.
	NodeStateUnused NodeState = "unused"
	// NodeStateBusy — at least one request is in flight on the node.
	NodeStateBusy NodeState = "busy"
	// NodeStateIdle — no requests in flight; the idle stamp marks when the last one finished.
	NodeStateIdle NodeState = "idle"
	// NodeStateExpired — the node's session factory has been closed; the node is never used again.
	NodeStateExpired NodeState = "expired"
)

// NodeDescription is one node's row in the status report (handlers GET /v1/status):
// instance identity, derived state and current in-flight request count.
type NodeDescription struct {
	InstanceID  string    `json:"instance_id"`
	State       NodeState `json:"state"`
	Outstanding int       `json:"outstanding"`
}
