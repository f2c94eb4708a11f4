// engine_constants.go - Shared constants and parameter helpers for the synthesis engine

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

const (
	SAMPLE_RATE   = 44100
	CHANNEL_COUNT = 2 // Interleaved stereo throughout
)

// Output backend selection
const (
	AUDIO_BACKEND_OTO = iota
	AUDIO_BACKEND_ALSA
	AUDIO_BACKEND_NONE // Silent sink, used by tests and -backend none
)

// OutputMode selects which parameter branch of the mix policy is live.
type OutputMode int

const (
	MODE_CLASSIC OutputMode = iota // Static noise bed under the binaural tones
	MODE_PULSE                     // Modulated noise only, tones silenced
)

func (m OutputMode) String() string {
	if m == MODE_PULSE {
		return "pulse"
	}
	return "classic"
}

const (
	// Every ramped parameter approaches its target exponentially with this
	// time constant. Rapid successive updates simply retarget the ramp.
	SMOOTHING_TIME_CONSTANT = 0.1 // seconds

	// Length of the looped pink noise source buffer.
	NOISE_BUFFER_SECONDS = 2

	// Empirical gain compensation for the Kellet pink filter. Changing this
	// changes perceived loudness relative to the tone generators.
	PINK_OUTPUT_SCALE = 0.11
)

// Default parameter values applied before any preset or UI input.
const (
	DEFAULT_MASTER_VOLUME = 0.5
	DEFAULT_NOISE_VOLUME  = 0.5
	DEFAULT_BEAT_VOLUME   = 0.5
	DEFAULT_BASE_FREQ     = 200.0 // Hz carrier
	DEFAULT_BEAT_FREQ     = 7.0   // Hz inter-aural difference
	DEFAULT_MOD_FREQ      = 7.0   // Hz LFO rate
	DEFAULT_PULSE_DEPTH   = 0.8
	DEFAULT_PAN_DEPTH     = 0.0
)

// Brainwave band thresholds for the beat frequency label, part of the
// documented UI contract.
const (
	BAND_DELTA_MAX = 4.0
	BAND_THETA_MAX = 8.0
	BAND_ALPHA_MAX = 13.0
	BAND_BETA_MAX  = 30.0
)

// BandLabel maps a beat frequency in Hz to its brainwave band name.
func BandLabel(freq float64) string {
	switch {
	case freq < BAND_DELTA_MAX:
		return "Delta"
	case freq < BAND_THETA_MAX:
		return "Theta"
	case freq < BAND_ALPHA_MAX:
		return "Alpha"
	case freq < BAND_BETA_MAX:
		return "Beta"
	default:
		return "Gamma"
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampUnit bounds modulation depths to [0,1]. Out of range inputs are
// clamped silently, never rejected.
func clampUnit(v float64) float64 {
	return clamp(v, 0, 1)
}
