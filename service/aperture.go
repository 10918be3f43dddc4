package service

import (
	"sync"

	"mybalancer/interfaces"
)

// ApertureWindow implements interfaces.AperturePolicy as a prefix over the balancer's ranked
// node list: node i is inside the window iff i < width, with width clamped to the current
// node count. Width changes come from an external sizing controller (cmd/main seeds it from
// config); count changes come from the balancer's refresh. Both may happen concurrently with
// a sweep — membership is answered from the state current at each call.
type ApertureWindow struct {
	mu    sync.RWMutex
	width int
	count int
}

// NewApertureWindow creates a window of the given initial width. Width below 1 is raised
// to 1, so at least one node (once any exist) is always eligible for traffic.
//
// Parameter width — initial window width in nodes.
//
// Returns: *ApertureWindow.
//
// Called from service.NewBalancer.
func NewApertureWindow(width int) *ApertureWindow {
	if width < 1 {
		width = 1
	}
	return &ApertureWindow{width: width}
}

// Membership reports whether the node at nodeIndex is inside the window (nodeIndex < effective
// width). Out-of-range indexes are outside.
//
// Parameter nodeIndex — zero-based rank in the balancer's node list.
//
// Returns: bool.
//
// Called from service.Sweeper.Sweep per node per tick.
func (w *ApertureWindow) Membership(nodeIndex int) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return nodeIndex >= 0 && nodeIndex < w.effectiveWidthLocked()
}

// WindowSize returns the effective width: the configured width clamped to the node count.
//
// Returns: int ≥ 0 (0 only while no nodes are known).
//
// Called from service.Balancer.Checkout to bound the round-robin scan.
func (w *ApertureWindow) WindowSize() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.effectiveWidthLocked()
}

// SetWidth changes the configured window width; values below 1 are raised to 1. Shrinking the
// window makes the nodes that fell outside it eviction candidates from their next idle moment.
//
// Parameter width — new width in nodes.
//
// Called from the external aperture-sizing controller (and tests).
func (w *ApertureWindow) SetWidth(width int) {
	if width < 1 {
		width = 1
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.width = width
}

// SetCount updates the known node count used to clamp the width.
//
// Parameter count — current length of the balancer's node list.
//
// Called from service.Balancer.refresh after each instance list update.
func (w *ApertureWindow) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.count = count
}

// effectiveWidthLocked returns min(width, count). Caller must hold w.mu.
func (w *ApertureWindow) effectiveWidthLocked() int {
	if w.width > w.count {
		return w.count
	}
	return w.width
}

var _ interfaces.AperturePolicy = (*ApertureWindow)(nil)
