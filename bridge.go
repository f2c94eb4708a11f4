// bridge.go - Broadcast bridge: secondary output endpoint with explicit lifecycle

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import "sync"

// BroadcastBridge is the secondary output endpoint used for platform
// session integration (lock-screen metadata, background keep-alive). It is
// an explicitly constructed and released resource, passed by reference to
// whatever needs it; there is no package-level singleton. While acquired,
// its bus retains a mirror of the device signal that a platform consumer
// drains with ReadFrames.
type BroadcastBridge struct {
	mu       sync.Mutex
	bus      *Bus
	acquired bool
}

// NewBroadcastBridge creates a released bridge whose tap holds up to
// capFrames frames.
func NewBroadcastBridge(capFrames int) *BroadcastBridge {
	return &BroadcastBridge{
		bus: NewBus("broadcast", capFrames),
	}
}

// Bus returns the bridge's endpoint for generators to connect to. The
// endpoint accepts signal whether or not the bridge is acquired; frames
// are only retained while acquired.
func (b *BroadcastBridge) Bus() *Bus { return b.bus }

// Acquire starts retaining frames. Idempotent.
func (b *BroadcastBridge) Acquire() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.acquired {
		b.acquired = true
		b.bus.SetTap(true)
	}
}

// Release stops retaining frames and drops anything buffered. Idempotent.
func (b *BroadcastBridge) Release() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.acquired {
		b.acquired = false
		b.bus.SetTap(false)
	}
}

// IsAcquired reports the bridge lifecycle state.
func (b *BroadcastBridge) IsAcquired() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.acquired
}

// ReadFrames drains up to len(dst)/2 mirrored frames, oldest first.
func (b *BroadcastBridge) ReadFrames(dst []float32) int {
	return b.bus.ReadFrames(dst)
}
