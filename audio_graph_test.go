// audio_graph_test.go - Bus accumulation, clamping and tap ring behavior

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import "testing"

func TestBus_AccumulateAndCommit(t *testing.T) {
	t.Parallel()

	b := NewBus("test", 16)
	b.accumulate(0.25, -0.5)
	b.accumulate(0.25, 0.25)

	l, r := b.commit()
	if l != 0.5 || r != -0.25 {
		t.Errorf("commit = (%f, %f), expected summed (0.5, -0.25)", l, r)
	}

	// The accumulator resets per frame.
	l, r = b.commit()
	if l != 0 || r != 0 {
		t.Errorf("second commit = (%f, %f), expected empty frame (0, 0)", l, r)
	}
}

func TestBus_CommitClamps(t *testing.T) {
	t.Parallel()

	b := NewBus("test", 16)
	b.accumulate(0.8, -0.9)
	b.accumulate(0.8, -0.9)

	l, r := b.commit()
	if l != 1 || r != -1 {
		t.Errorf("commit = (%f, %f), expected hard clamp to (1, -1)", l, r)
	}
}

func TestBus_UntappedRetainsNothing(t *testing.T) {
	t.Parallel()

	b := NewBus("test", 16)
	for i := 0; i < 8; i++ {
		b.accumulate(0.1, 0.1)
		b.commit()
	}
	if n := b.Buffered(); n != 0 {
		t.Errorf("untapped bus buffered %d frames", n)
	}
}

func TestBus_TapRetainsCommittedFrames(t *testing.T) {
	t.Parallel()

	b := NewBus("test", 16)
	b.SetTap(true)

	values := []float32{0.1, 0.2, 0.3}
	for _, v := range values {
		b.accumulate(v, -v)
		b.commit()
	}
	if n := b.Buffered(); n != 3 {
		t.Fatalf("buffered = %d, expected 3", n)
	}

	dst := make([]float32, 6)
	if n := b.ReadFrames(dst); n != 3 {
		t.Fatalf("ReadFrames = %d, expected 3", n)
	}
	for i, v := range values {
		if dst[i*2] != v || dst[i*2+1] != -v {
			t.Errorf("frame %d = (%f, %f), expected (%f, %f)", i, dst[i*2], dst[i*2+1], v, -v)
		}
	}

	// Drained.
	if n := b.Buffered(); n != 0 {
		t.Errorf("buffered after drain = %d", n)
	}
}

func TestBus_RingOverwritesOldest(t *testing.T) {
	t.Parallel()

	b := NewBus("test", 4)
	b.SetTap(true)

	// Six frames into a four-frame ring: the consumer fell behind and the
	// two oldest frames are gone.
	for i := 1; i <= 6; i++ {
		b.accumulate(float32(i)/10, 0)
		b.commit()
	}
	if n := b.Buffered(); n != 4 {
		t.Fatalf("buffered = %d, expected ring capacity 4", n)
	}

	dst := make([]float32, 8)
	b.ReadFrames(dst)
	want := []float32{0.3, 0.4, 0.5, 0.6}
	for i, v := range want {
		if dst[i*2] != v {
			t.Errorf("frame %d = %f, expected %f", i, dst[i*2], v)
		}
	}
}

func TestBus_PartialRead(t *testing.T) {
	t.Parallel()

	b := NewBus("test", 16)
	b.SetTap(true)
	for i := 1; i <= 5; i++ {
		b.accumulate(float32(i), 0)
		b.commit()
	}

	dst := make([]float32, 4) // room for 2 frames
	if n := b.ReadFrames(dst); n != 2 {
		t.Fatalf("ReadFrames = %d, expected 2", n)
	}
	if n := b.Buffered(); n != 3 {
		t.Errorf("buffered after partial read = %d, expected 3", n)
	}
}

func TestBus_DisablingTapDropsFrames(t *testing.T) {
	t.Parallel()

	b := NewBus("test", 16)
	b.SetTap(true)
	b.accumulate(0.5, 0.5)
	b.commit()

	b.SetTap(false)
	if n := b.Buffered(); n != 0 {
		t.Errorf("buffered after tap off = %d, expected 0", n)
	}
}

func TestRouteTable_Contains(t *testing.T) {
	t.Parallel()

	rt := RouteTable{
		{"a", "b", 0},
		{"c", "b", 1},
	}
	if !rt.Contains("a", "b") || !rt.Contains("c", "b") {
		t.Error("Contains missed an existing route")
	}
	if rt.Contains("b", "a") {
		t.Error("Contains is not directional")
	}
}
