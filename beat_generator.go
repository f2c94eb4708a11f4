// beat_generator.go - Binaural beat generator with explicit left/right tone routing

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"math"
	"sync"
)

// BinauralBeatGenerator produces two pure sine tones, left at the base
// frequency and right at base+beat, so their difference is perceived as a
// low-frequency beat. The tones are merged into explicit stereo channels
// rather than panned: each ear must receive a single unmixed tone.
//
// The merge stage and master gain persist; the two oscillators are created
// by Start and destroyed by Stop.
type BinauralBeatGenerator struct {
	mu         sync.Mutex
	sampleRate int
	running    bool

	masterGain *SmoothedParam
	leftFreq   *SmoothedParam
	rightFreq  *SmoothedParam

	// Stored parameters, survive Stop.
	baseFreq float64
	beatFreq float64

	// Oscillator phases, only meaningful while running.
	leftPhase  float64
	rightPhase float64

	buses  []*Bus
	routes RouteTable
}

// NewBinauralBeatGenerator allocates the stereo merge stage and the master
// gain, gain initialized to 0.
func NewBinauralBeatGenerator(sampleRate int) (*BinauralBeatGenerator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("binaural beat generator: invalid sample rate %d", sampleRate)
	}
	g := &BinauralBeatGenerator{
		sampleRate: sampleRate,
		masterGain: NewSmoothedParam(0, SMOOTHING_TIME_CONSTANT, sampleRate),
		leftFreq:   NewSmoothedParam(DEFAULT_BASE_FREQ, SMOOTHING_TIME_CONSTANT, sampleRate),
		rightFreq:  NewSmoothedParam(DEFAULT_BASE_FREQ+DEFAULT_BEAT_FREQ, SMOOTHING_TIME_CONSTANT, sampleRate),
		baseFreq:   DEFAULT_BASE_FREQ,
		beatFreq:   DEFAULT_BEAT_FREQ,
		routes: RouteTable{
			{"leftOscillator", "merger", 0},  // channel 0 = left ear
			{"rightOscillator", "merger", 1}, // channel 1 = right ear
			{"merger", "masterGain", 0},
		},
	}
	return g, nil
}

// Routing exposes the generator's internal wiring for inspection.
func (g *BinauralBeatGenerator) Routing() RouteTable { return g.routes }

// Start creates the two oscillators with frequencies set directly (no
// smoothing) so they do not glide in from defaults. No-op when running.
func (g *BinauralBeatGenerator) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		return
	}
	g.leftPhase = 0
	g.rightPhase = 0
	g.leftFreq.SetNow(g.baseFreq)
	g.rightFreq.SetNow(g.baseFreq + g.beatFreq)
	g.running = true
}

// Stop destroys both oscillators. No-op when already stopped.
func (g *BinauralBeatGenerator) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.running = false
}

// IsRunning reports whether the oscillators exist.
func (g *BinauralBeatGenerator) IsRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// SetFrequencies retunes left to base and right to base+beat with the
// shared smoothing constant. Any sign or magnitude is accepted; a zero
// beat collapses to a monotone and that is the caller's business.
func (g *BinauralBeatGenerator) SetFrequencies(base, beat float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.baseFreq = base
	g.beatFreq = beat
	if g.running {
		g.leftFreq.SetTarget(base)
		g.rightFreq.SetTarget(base + beat)
	}
}

// Frequencies returns the stored base and beat frequencies.
func (g *BinauralBeatGenerator) Frequencies() (base, beat float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.baseFreq, g.beatFreq
}

// SetVolume ramps the master gain toward v.
func (g *BinauralBeatGenerator) SetVolume(v float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.masterGain.SetTarget(v)
}

// Volume returns the master gain target.
func (g *BinauralBeatGenerator) Volume() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.masterGain.Target()
}

// Connect routes the master gain output to an endpoint. Fan-out capable.
func (g *BinauralBeatGenerator) Connect(b *Bus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.buses = append(g.buses, b)
}

// RenderFrame produces one stereo frame and delivers it to every
// connected bus. Called from the render thread.
func (g *BinauralBeatGenerator) RenderFrame() (float32, float32) {
	g.mu.Lock()

	if !g.running {
		g.mu.Unlock()
		return 0, 0
	}

	gain := g.masterGain.Step()
	l := math.Sin(g.leftPhase) * gain
	r := math.Sin(g.rightPhase) * gain

	twoPi := 2 * math.Pi
	g.leftPhase += twoPi * g.leftFreq.Step() / float64(g.sampleRate)
	g.rightPhase += twoPi * g.rightFreq.Step() / float64(g.sampleRate)
	g.leftPhase = math.Mod(g.leftPhase, twoPi)
	g.rightPhase = math.Mod(g.rightPhase, twoPi)

	lf, rf := float32(l), float32(r)
	buses := g.buses
	g.mu.Unlock()

	for _, b := range buses {
		b.accumulate(lf, rf)
	}
	return lf, rf
}
