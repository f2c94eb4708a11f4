// noise_generator.go - Pink noise generator with isochronic pulse and pan LFOs

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

// lfoOscillator is a sine phase accumulator used for modulation only,
// never as an audible source. The caller supplies the frequency so both
// LFOs advance on the identical value each frame.
type lfoOscillator struct {
	phase float64
}

func (o *lfoOscillator) sample(freq float64, sampleRate int) float64 {
	v := math.Sin(o.phase)
	o.phase += 2 * math.Pi * freq / float64(sampleRate)
	if o.phase >= 2*math.Pi {
		o.phase -= 2 * math.Pi
	} else if o.phase < 0 {
		o.phase += 2 * math.Pi
	}
	return v
}

// PinkNoiseGenerator produces looped pink noise and optionally modulates
// its amplitude and stereo position with two LFOs locked to one shared
// modulation frequency.
//
// The persistent routing nodes (pulse gain, panner, master gain) exist for
// the generator's whole lifetime; the sound-producing nodes (noise buffer,
// both LFOs) are created by Start and destroyed by Stop. There is no
// paused-but-allocated state.
type PinkNoiseGenerator struct {
	mu         sync.Mutex
	sampleRate int
	running    bool

	// Persistent routing nodes. The pulse stage swings the amplitude
	// between (1-depth) and 1: base gain 1-depth/2 plus an LFO swing of
	// depth/2. The pan stage swings stereo position by panDepth around
	// center.
	masterGain *SmoothedParam
	pulseBase  *SmoothedParam
	pulseSwing *SmoothedParam
	panSwing   *SmoothedParam
	lfoFreq    *SmoothedParam

	// Stored modulation parameters. They survive Stop so an immediate
	// restart reproduces the same effective settings.
	modFreq    float64
	pulseDepth float64
	panDepth   float64

	// Sound-producing nodes, nil/zero while stopped.
	buffer   []float32
	bufPos   int
	pulseLFO *lfoOscillator
	panLFO   *lfoOscillator

	rng    *rand.Rand
	buses  []*Bus
	routes RouteTable
}

// NewPinkNoiseGenerator allocates the persistent routing chain
// source -> pulse-gain -> panner -> master-gain. Master gain starts at 0
// so the generator is silent until the mix policy applies a volume.
func NewPinkNoiseGenerator(sampleRate int) (*PinkNoiseGenerator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("pink noise generator: invalid sample rate %d", sampleRate)
	}
	g := &PinkNoiseGenerator{
		sampleRate: sampleRate,
		masterGain: NewSmoothedParam(0, SMOOTHING_TIME_CONSTANT, sampleRate),
		pulseBase:  NewSmoothedParam(1, SMOOTHING_TIME_CONSTANT, sampleRate),
		pulseSwing: NewSmoothedParam(0, SMOOTHING_TIME_CONSTANT, sampleRate),
		panSwing:   NewSmoothedParam(0, SMOOTHING_TIME_CONSTANT, sampleRate),
		lfoFreq:    NewSmoothedParam(DEFAULT_MOD_FREQ, SMOOTHING_TIME_CONSTANT, sampleRate),
		modFreq:    DEFAULT_MOD_FREQ,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		routes: RouteTable{
			{"noiseSource", "pulseGain", 0},
			{"pulseLFO", "pulseGain", 1},
			{"pulseGain", "panner", 0},
			{"panLFO", "panner", 1},
			{"panner", "masterGain", 0},
		},
	}
	return g, nil
}

// Routing exposes the generator's internal wiring for inspection.
func (g *PinkNoiseGenerator) Routing() RouteTable { return g.routes }

// Start builds the sound-producing nodes: the looped noise buffer and both
// modulation LFOs. Stored modulation parameters are applied directly, not
// via smoothing, so nothing glides in from a default. No-op when already
// running.
func (g *PinkNoiseGenerator) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running {
		return
	}
	g.buffer = generatePinkBuffer(NOISE_BUFFER_SECONDS*g.sampleRate, g.rng)
	g.bufPos = 0
	g.pulseLFO = &lfoOscillator{}
	g.panLFO = &lfoOscillator{}
	g.lfoFreq.SetNow(g.modFreq)
	g.pulseBase.SetNow(1 - g.pulseDepth/2)
	g.pulseSwing.SetNow(g.pulseDepth / 2)
	g.panSwing.SetNow(g.panDepth)
	g.running = true
}

// Stop releases the noise source and both LFOs. A later Start rebuilds
// them; there is no resume shortcut. No-op when already stopped.
func (g *PinkNoiseGenerator) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.running {
		return
	}
	g.buffer = nil
	g.pulseLFO = nil
	g.panLFO = nil
	g.running = false
}

// IsRunning reports whether the sound-producing nodes exist.
func (g *PinkNoiseGenerator) IsRunning() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running
}

// SetVolume ramps the master gain toward v. Never an instantaneous jump.
func (g *PinkNoiseGenerator) SetVolume(v float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.masterGain.SetTarget(v)
}

// Volume returns the master gain target.
func (g *PinkNoiseGenerator) Volume() float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.masterGain.Target()
}

// SetModulation retunes the shared LFO frequency and both depth stages.
// Depths are clamped to [0,1]. Safe to call while stopped: the values are
// stored and seed the nodes at the next Start.
func (g *PinkNoiseGenerator) SetModulation(freq, pulseDepth, panDepth float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.modFreq = freq
	g.pulseDepth = clampUnit(pulseDepth)
	g.panDepth = clampUnit(panDepth)
	if g.running {
		g.lfoFreq.SetTarget(g.modFreq)
		g.pulseBase.SetTarget(1 - g.pulseDepth/2)
		g.pulseSwing.SetTarget(g.pulseDepth / 2)
		g.panSwing.SetTarget(g.panDepth)
	}
}

// Modulation returns the stored modulation parameters (depths already
// clamped).
func (g *PinkNoiseGenerator) Modulation() (freq, pulseDepth, panDepth float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.modFreq, g.pulseDepth, g.panDepth
}

// Connect routes the master gain output to an endpoint. May be called for
// several endpoints; all receive identical signal.
func (g *PinkNoiseGenerator) Connect(b *Bus) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.buses = append(g.buses, b)
}

// RenderFrame produces one stereo frame and delivers it to every
// connected bus. Called from the render thread.
func (g *PinkNoiseGenerator) RenderFrame() (float32, float32) {
	g.mu.Lock()

	if !g.running {
		g.mu.Unlock()
		return 0, 0
	}

	s := float64(g.buffer[g.bufPos])
	g.bufPos++
	if g.bufPos >= len(g.buffer) {
		g.bufPos = 0
	}

	// One Step per frame: both LFOs run on the same frequency value, so
	// a ramp keeps them phase locked and the time constant stays 0.1s.
	freq := g.lfoFreq.Step()
	pulse := g.pulseBase.Step() + g.pulseSwing.Step()*g.pulseLFO.sample(freq, g.sampleRate)
	pan := g.panSwing.Step() * g.panLFO.sample(freq, g.sampleRate)
	gainL, gainR := equalPowerPan(pan)
	out := s * pulse * g.masterGain.Step()

	l, r := float32(out*gainL), float32(out*gainR)
	buses := g.buses
	g.mu.Unlock()

	for _, b := range buses {
		b.accumulate(l, r)
	}
	return l, r
}

// equalPowerPan maps a pan position in [-1,1] (clamped) to left/right
// gains on the quarter circle, 0 dB total power across the sweep.
func equalPowerPan(p float64) (float64, float64) {
	p = clamp(p, -1, 1)
	theta := (p + 1) * math.Pi / 4
	return math.Cos(theta), math.Sin(theta)
}

// generatePinkBuffer renders n samples of pink noise with Paul Kellet's
// refined 7-coefficient recursive filter, about -3dB/octave. The 0.11
// output scale is empirical gain compensation and must not change.
func generatePinkBuffer(n int, rng *rand.Rand) []float32 {
	buf := make([]float32, n)
	var b0, b1, b2, b3, b4, b5, b6 float64
	for i := range buf {
		w := rng.Float64()*2 - 1
		b0 = 0.99886*b0 + w*0.0555179
		b1 = 0.99332*b1 + w*0.0750759
		b2 = 0.96900*b2 + w*0.1538520
		b3 = 0.86650*b3 + w*0.3104856
		b4 = 0.55000*b4 + w*0.5329522
		b5 = -0.7616*b5 - w*0.0168980
		buf[i] = float32((b0 + b1 + b2 + b3 + b4 + b5 + b6 + w*0.5362) * PINK_OUTPUT_SCALE)
		b6 = w * 0.115926
	}
	return buf
}
