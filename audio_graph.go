// audio_graph.go - Declarative routing tables and fan-out output buses

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"sync"
)

// Route is one wire in a generator's internal node graph: Source feeds
// input Input of Dest. The table is built once at construction so the
// wiring can be inspected and tested without a live audio device.
type Route struct {
	Source string
	Dest   string
	Input  int
}

// RouteTable is the complete wiring of one generator.
type RouteTable []Route

func (rt RouteTable) String() string {
	s := ""
	for _, r := range rt {
		s += fmt.Sprintf("%s -> %s[%d]\n", r.Source, r.Dest, r.Input)
	}
	return s
}

// Contains reports whether the table wires source into dest.
func (rt RouteTable) Contains(source, dest string) bool {
	for _, r := range rt {
		if r.Source == source && r.Dest == dest {
			return true
		}
	}
	return false
}

// Bus is a shared output endpoint. Generators Connect to any number of
// buses and every bus receives the identical mixed signal; no generator
// owns a bus exclusively. The render thread accumulates one frame from
// each connected generator, then commit seals the frame.
//
// A tapped bus retains committed frames in a ring for an external consumer
// (the broadcast bridge); the device bus is untapped and its committed
// frames stream straight to the output backend.
type Bus struct {
	name string

	mu         sync.Mutex
	accL, accR float32
	tap        bool
	ring       []float32 // interleaved stereo, valid when tap
	w          int
	buffered   int // frames currently retained, <= cap
}

// NewBus creates a bus. capFrames bounds the tap ring; older frames are
// overwritten once the consumer falls behind.
func NewBus(name string, capFrames int) *Bus {
	if capFrames < 1 {
		capFrames = 1
	}
	return &Bus{
		name: name,
		ring: make([]float32, capFrames*CHANNEL_COUNT),
	}
}

func (b *Bus) Name() string { return b.name }

// SetTap enables or disables frame retention. Disabling drops any
// buffered frames.
func (b *Bus) SetTap(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tap = on
	if !on {
		b.w = 0
		b.buffered = 0
	}
}

// accumulate adds one generator's frame into the frame under construction.
func (b *Bus) accumulate(l, r float32) {
	b.mu.Lock()
	b.accL += l
	b.accR += r
	b.mu.Unlock()
}

// commit seals the current frame, retains it if tapped, and returns it
// clamped to [-1,1].
func (b *Bus) commit() (l, r float32) {
	b.mu.Lock()
	l, r = clampSample(b.accL), clampSample(b.accR)
	b.accL, b.accR = 0, 0
	if b.tap {
		b.ring[b.w] = l
		b.ring[b.w+1] = r
		b.w = (b.w + CHANNEL_COUNT) % len(b.ring)
		if b.buffered < len(b.ring)/CHANNEL_COUNT {
			b.buffered++
		}
	}
	b.mu.Unlock()
	return l, r
}

// ReadFrames copies up to len(dst)/2 buffered frames into dst, oldest
// first, and returns the number of frames copied. Only meaningful on a
// tapped bus.
func (b *Bus) ReadFrames(dst []float32) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	want := len(dst) / CHANNEL_COUNT
	if want > b.buffered {
		want = b.buffered
	}
	start := (b.w - b.buffered*CHANNEL_COUNT + len(b.ring)*2) % len(b.ring)
	for i := 0; i < want; i++ {
		pos := (start + i*CHANNEL_COUNT) % len(b.ring)
		dst[i*CHANNEL_COUNT] = b.ring[pos]
		dst[i*CHANNEL_COUNT+1] = b.ring[pos+1]
	}
	b.buffered -= want
	return want
}

// Buffered returns the number of frames the tap currently retains.
func (b *Bus) Buffered() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffered
}

func clampSample(v float32) float32 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
