// mixer_test.go - Mode/mix policy behavior table

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"math"
	"testing"
)

func newTestMixer(t *testing.T) (*Mixer, *PinkNoiseGenerator, *BinauralBeatGenerator) {
	t.Helper()
	noise, err := NewPinkNoiseGenerator(SAMPLE_RATE)
	if err != nil {
		t.Fatalf("NewPinkNoiseGenerator: %v", err)
	}
	beat, err := NewBinauralBeatGenerator(SAMPLE_RATE)
	if err != nil {
		t.Fatalf("NewBinauralBeatGenerator: %v", err)
	}
	return NewMixer(noise, beat), noise, beat
}

func TestMixer_Defaults(t *testing.T) {
	t.Parallel()

	m, noise, beat := newTestMixer(t)

	if m.Mode() != MODE_CLASSIC {
		t.Errorf("default mode = %v, expected classic", m.Mode())
	}
	if m.MasterVolume() != DEFAULT_MASTER_VOLUME {
		t.Errorf("default master = %f", m.MasterVolume())
	}
	// Not playing yet: both generators muted.
	if noise.Volume() != 0 || beat.Volume() != 0 {
		t.Errorf("generator volumes (%f, %f) before playback, expected 0", noise.Volume(), beat.Volume())
	}
}

func TestMixer_ClassicForcesModulationOff(t *testing.T) {
	t.Parallel()

	m, noise, _ := newTestMixer(t)

	m.SetNoiseParams(NoiseParams{Volume: 0.7, ModFreq: 10, PulseDepth: 0.9, PanDepth: 0.4})
	m.SetMode(MODE_CLASSIC)

	freq, pulse, pan := noise.Modulation()
	if freq != 0 || pulse != 0 || pan != 0 {
		t.Errorf("classic mode modulation = (%f, %f, %f), expected (0, 0, 0)", freq, pulse, pan)
	}

	// The stored parameter set is untouched; only the effective values are
	// forced.
	np := m.NoiseParams()
	if np.ModFreq != 10 || np.PulseDepth != 0.9 || np.PanDepth != 0.4 {
		t.Errorf("stored noise params mutated: %+v", np)
	}
}

func TestMixer_PulseSilencesBeat(t *testing.T) {
	t.Parallel()

	m, noise, beat := newTestMixer(t)

	m.SetPlaying(true)
	m.SetBeatParams(BeatParams{Volume: 0.8, BaseFreq: 220, BeatFreq: 6})
	m.SetNoiseParams(NoiseParams{Volume: 0.5, ModFreq: 10, PulseDepth: 0.9, PanDepth: 0.4})
	m.SetMode(MODE_PULSE)

	if v := beat.Volume(); v != 0 {
		t.Errorf("pulse mode beat volume = %f, expected forced 0", v)
	}
	freq, pulse, pan := noise.Modulation()
	if freq != 10 || pulse != 0.9 || pan != 0.4 {
		t.Errorf("pulse mode modulation = (%f, %f, %f), expected stored values", freq, pulse, pan)
	}

	// Beat frequencies still track the parameter set even while silent, so
	// a switch back to classic needs no retune.
	base, beatFreq := beat.Frequencies()
	if base != 220 || beatFreq != 6 {
		t.Errorf("beat frequencies = (%f, %f), expected (220, 6)", base, beatFreq)
	}
}

func TestMixer_VolumesMultiply(t *testing.T) {
	t.Parallel()

	m, noise, beat := newTestMixer(t)

	m.SetMasterVolume(0.5)
	m.SetNoiseParams(NoiseParams{Volume: 0.8})
	m.SetBeatParams(BeatParams{Volume: 0.6, BaseFreq: 200, BeatFreq: 7})
	m.SetPlaying(true)

	if v := noise.Volume(); math.Abs(v-0.4) > 1e-12 {
		t.Errorf("noise volume = %f, expected 0.8*0.5", v)
	}
	if v := beat.Volume(); math.Abs(v-0.3) > 1e-12 {
		t.Errorf("beat volume = %f, expected 0.6*0.5", v)
	}
}

func TestMixer_PlayingGatesVolumes(t *testing.T) {
	t.Parallel()

	m, noise, beat := newTestMixer(t)

	m.SetPlaying(true)
	m.SetPlaying(false)

	if noise.Volume() != 0 || beat.Volume() != 0 {
		t.Errorf("volumes (%f, %f) after pause, expected 0", noise.Volume(), beat.Volume())
	}

	// The parameter sets survive the pause.
	if m.NoiseParams().Volume != DEFAULT_NOISE_VOLUME {
		t.Error("pause mutated the stored noise volume")
	}
}

func TestMixer_ApplyIdempotent(t *testing.T) {
	t.Parallel()

	m, noise, beat := newTestMixer(t)

	m.SetPlaying(true)
	m.SetMode(MODE_PULSE)
	nv, bv := noise.Volume(), beat.Volume()
	freq, pulse, pan := noise.Modulation()

	for i := 0; i < 5; i++ {
		m.Apply()
	}

	if noise.Volume() != nv || beat.Volume() != bv {
		t.Error("repeated Apply changed effective volumes")
	}
	f2, p2, pn2 := noise.Modulation()
	if f2 != freq || p2 != pulse || pn2 != pan {
		t.Error("repeated Apply changed effective modulation")
	}
}

func TestMixer_ModeSwitchKeepsGeneratorsRunning(t *testing.T) {
	t.Parallel()

	m, noise, beat := newTestMixer(t)

	noise.Start()
	beat.Start()
	m.SetPlaying(true)

	m.SetMode(MODE_PULSE)
	m.SetMode(MODE_CLASSIC)
	m.SetMode(MODE_PULSE)

	if !noise.IsRunning() || !beat.IsRunning() {
		t.Error("mode switch stopped a generator")
	}
}

func TestMixer_SwitchBackRestoresModulation(t *testing.T) {
	t.Parallel()

	m, noise, _ := newTestMixer(t)

	m.SetNoiseParams(NoiseParams{Volume: 0.5, ModFreq: 8, PulseDepth: 0.7, PanDepth: 0.2})
	m.SetMode(MODE_CLASSIC)
	m.SetMode(MODE_PULSE)

	freq, pulse, pan := noise.Modulation()
	if freq != 8 || pulse != 0.7 || pan != 0.2 {
		t.Errorf("modulation after round trip = (%f, %f, %f), expected (8, 0.7, 0.2)", freq, pulse, pan)
	}
}
