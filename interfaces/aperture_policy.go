package interfaces

// AperturePolicy answers whether a node, identified by its rank in the balancer's ordered
// node list, is currently inside the active aperture window. Nodes inside the window are
// never expired; nodes outside it are eviction candidates once idle long enough.
//
// The window may be resized concurrently with a sweep: each node is checked against the
// membership answer at the moment it is evaluated, so nodes within the same pass may see
// slightly different window snapshots. That is acceptable — membership is re-checked on
// every tick, and a node that re-enters the window before its idle time elapses is kept.
//
// Implemented by service.ApertureWindow. The width itself is set by an external sizing
// controller (out of scope here); cmd/main seeds it from config.
//
//go:generate moq -stub -out mock/aperture_policy.go -pkg mock . AperturePolicy
type AperturePolicy interface {
	// Membership reports whether the node at nodeIndex (rank in the balancer's node list) is inside the active window.
	// Parameter nodeIndex — zero-based rank; out-of-range indexes are outside the window.
	// Returns: true if the node may receive traffic and is exempt from expiry on this check.
	// Called from service.Sweeper.Sweep per node per tick and from service.Balancer.Checkout.
	Membership(nodeIndex int) bool

	// WindowSize returns the current effective width of the window (clamped to the node count).
	// Parameters: none.
	// Returns: number of ranked nodes eligible for traffic.
	// Called from service.Balancer.Checkout to bound the round-robin scan.
	WindowSize() int
}
