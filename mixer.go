// mixer.go - Mode/mix policy: computes effective generator settings per output mode

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import "sync"

// NoiseParams is the UI-facing parameter bundle for the noise generator.
type NoiseParams struct {
	Volume     float64
	ModFreq    float64 // Hz, LFO rate
	PulseDepth float64 // clamped to [0,1] before use
	PanDepth   float64 // clamped to [0,1] before use
}

// BeatParams is the UI-facing parameter bundle for the beat generator.
// Frequencies pass through unvalidated; range policy belongs to the caller.
type BeatParams struct {
	Volume   float64
	BaseFreq float64 // Hz carrier
	BeatFreq float64 // Hz inter-aural difference
}

// Mixer is the mode/mix policy. It is not an audio node: it holds the
// master volume, the output mode and both source parameter sets, and on
// every change recomputes the effective settings and pushes them through
// the generators' smoothed setters. Recomputing with unchanged inputs is
// harmless because every underlying setter is redundant-safe.
//
// Mode switches never stop or start the generators; they only change which
// parameter branch is live, so no buffer or oscillator teardown clicks.
type Mixer struct {
	mu    sync.Mutex
	noise *PinkNoiseGenerator
	beat  *BinauralBeatGenerator

	mode    OutputMode
	master  float64
	playing bool
	np      NoiseParams
	bp      BeatParams
}

// NewMixer creates the policy object over both generators and applies the
// default parameter set.
func NewMixer(noise *PinkNoiseGenerator, beat *BinauralBeatGenerator) *Mixer {
	m := &Mixer{
		noise:  noise,
		beat:   beat,
		mode:   MODE_CLASSIC,
		master: DEFAULT_MASTER_VOLUME,
		np: NoiseParams{
			Volume:     DEFAULT_NOISE_VOLUME,
			ModFreq:    DEFAULT_MOD_FREQ,
			PulseDepth: DEFAULT_PULSE_DEPTH,
			PanDepth:   DEFAULT_PAN_DEPTH,
		},
		bp: BeatParams{
			Volume:   DEFAULT_BEAT_VOLUME,
			BaseFreq: DEFAULT_BASE_FREQ,
			BeatFreq: DEFAULT_BEAT_FREQ,
		},
	}
	m.mu.Lock()
	m.apply()
	m.mu.Unlock()
	return m
}

// apply recomputes and pushes the effective settings. Caller holds m.mu.
//
//	mode    | noise volume        | noise modulation     | beat volume
//	classic | playing?nv*master:0 | forced (0,0,0)       | playing?bv*master:0
//	pulse   | playing?nv*master:0 | (freq, pulse, pan)   | forced 0
//
// Beat frequencies are always applied; in pulse mode the tones are silent
// so the values are simply irrelevant.
func (m *Mixer) apply() {
	noiseVol := 0.0
	if m.playing {
		noiseVol = m.np.Volume * m.master
	}
	m.noise.SetVolume(noiseVol)

	switch m.mode {
	case MODE_PULSE:
		m.noise.SetModulation(m.np.ModFreq, m.np.PulseDepth, m.np.PanDepth)
		m.beat.SetVolume(0)
	default:
		m.noise.SetModulation(0, 0, 0)
		beatVol := 0.0
		if m.playing {
			beatVol = m.bp.Volume * m.master
		}
		m.beat.SetVolume(beatVol)
	}
	m.beat.SetFrequencies(m.bp.BaseFreq, m.bp.BeatFreq)
}

// Apply recomputes the effective settings from the current state. Safe to
// call from any trigger; idempotent.
func (m *Mixer) Apply() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.apply()
}

// SetPlaying gates both generator volumes without touching their
// lifecycles.
func (m *Mixer) SetPlaying(playing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playing = playing
	m.apply()
}

// IsPlaying reports the policy's playing flag.
func (m *Mixer) IsPlaying() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playing
}

// SetMode switches the presentation mode and re-routes the live parameter
// branch.
func (m *Mixer) SetMode(mode OutputMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
	m.apply()
}

// Mode returns the current output mode.
func (m *Mixer) Mode() OutputMode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// SetMasterVolume sets the master volume, multiplicative with both
// per-generator volumes.
func (m *Mixer) SetMasterVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.master = v
	m.apply()
}

// MasterVolume returns the master volume.
func (m *Mixer) MasterVolume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.master
}

// SetNoiseParams replaces the noise parameter set.
func (m *Mixer) SetNoiseParams(p NoiseParams) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.np = p
	m.apply()
}

// NoiseParams returns the stored (source, not effective) noise parameters.
func (m *Mixer) NoiseParams() NoiseParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.np
}

// SetBeatParams replaces the beat parameter set.
func (m *Mixer) SetBeatParams(p BeatParams) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bp = p
	m.apply()
}

// BeatParams returns the stored beat parameters.
func (m *Mixer) BeatParams() BeatParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bp
}
