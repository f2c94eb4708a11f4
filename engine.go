// engine.go - Synthesis engine: generators, mix policy and output lifecycle

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

// Engine owns both generators, the mix policy and the output backend. The
// backend's rendering thread pulls interleaved stereo frames through
// RenderFrames; all control-plane calls stay synchronous and non-blocking.
//
// Start is synchronous end-to-end: by the time it returns, the backend has
// been told to begin producing samples. No asynchronous gap is allowed
// before that call, since the first start may be running inside a host
// user-gesture window.
type Engine struct {
	mu      sync.Mutex
	noise   *PinkNoiseGenerator
	beat    *BinauralBeatGenerator
	mix     *Mixer
	device  *Bus
	buses   []*Bus
	output  AudioOutput
	started bool
}

// NewEngine constructs both generators, wires them to the device bus and
// opens the selected output backend. A backend failure is surfaced
// immediately; there is no silent fallback.
func NewEngine(backend int) (*Engine, error) {
	noise, err := NewPinkNoiseGenerator(SAMPLE_RATE)
	if err != nil {
		return nil, err
	}
	beat, err := NewBinauralBeatGenerator(SAMPLE_RATE)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		noise:  noise,
		beat:   beat,
		device: NewBus("device", 1), // never tapped, frames stream straight out
	}
	e.buses = []*Bus{e.device}
	noise.Connect(e.device)
	beat.Connect(e.device)
	e.mix = NewMixer(noise, beat)

	output, err := NewAudioOutput(backend, SAMPLE_RATE, e)
	if err != nil {
		return nil, fmt.Errorf("audio output: %w", err)
	}
	e.output = output
	return e, nil
}

// Noise returns the pink noise generator.
func (e *Engine) Noise() *PinkNoiseGenerator { return e.noise }

// Beat returns the binaural beat generator.
func (e *Engine) Beat() *BinauralBeatGenerator { return e.beat }

// Mixer returns the mode/mix policy.
func (e *Engine) Mixer() *Mixer { return e.mix }

// AttachBridge connects both generators to the bridge's endpoint so it
// mirrors the device signal.
func (e *Engine) AttachBridge(b *BroadcastBridge) {
	e.mu.Lock()
	defer e.mu.Unlock()
	bus := b.Bus()
	e.buses = append(e.buses, bus)
	e.noise.Connect(bus)
	e.beat.Connect(bus)
}

// Start brings both generators up, gates the mix policy open and tells
// the backend to begin producing samples, all within this call. No-op if
// already started. A failed start leaves the engine stopped and clean.
func (e *Engine) Start() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return nil
	}
	e.noise.Start()
	e.beat.Start()
	e.mix.SetPlaying(true)
	e.output.Start()
	e.started = true
	return nil
}

// Stop is the only cancellation primitive: it gates the mix closed and
// unconditionally tears down the sound-producing nodes. No-op if already
// stopped.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.started {
		return
	}
	e.mix.SetPlaying(false)
	e.noise.Stop()
	e.beat.Stop()
	e.output.Stop()
	e.started = false
}

// IsPlaying reports whether the engine is started. This is the only state
// the UI layer reads back.
func (e *Engine) IsPlaying() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.started
}

// Close stops the engine and releases the output device.
func (e *Engine) Close() {
	e.Stop()
	e.output.Close()
}

// RenderFrames fills dst (interleaved stereo float32) with the mixed
// output of both generators and delivers the same frames to every
// attached bus. Called by the output backend's rendering thread.
func (e *Engine) RenderFrames(dst []float32) {
	e.mu.Lock()
	buses := e.buses
	e.mu.Unlock()

	frames := len(dst) / CHANNEL_COUNT
	for i := 0; i < frames; i++ {
		e.noise.RenderFrame()
		e.beat.RenderFrame()

		var l, r float32
		for _, b := range buses {
			cl, cr := b.commit()
			if b == e.device {
				l, r = cl, cr
			}
		}
		dst[i*CHANNEL_COUNT] = l
		dst[i*CHANNEL_COUNT+1] = r
	}
}
