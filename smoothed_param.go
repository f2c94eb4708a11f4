// smoothed_param.go - Exponential-approach parameter ramp for click-free updates

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import "math"

// SmoothedParam ramps a control value toward a target with a fixed
// exponential time constant so that retunes never produce audible steps.
// A new SetTarget simply retargets the in-flight ramp; there is no
// cancellation primitive. The owner serializes access: setters run under the
// owning component's mutex, Step runs on the render thread under the same
// lock discipline.
type SmoothedParam struct {
	value  float64
	target float64
	coeff  float64 // per-sample approach factor
}

// NewSmoothedParam creates a parameter at initial with the given time
// constant in seconds at the given sample rate.
func NewSmoothedParam(initial, timeConstant float64, sampleRate int) *SmoothedParam {
	return &SmoothedParam{
		value:  initial,
		target: initial,
		coeff:  1 - math.Exp(-1/(timeConstant*float64(sampleRate))),
	}
}

// SetTarget starts (or retargets) a smooth ramp toward v.
func (p *SmoothedParam) SetTarget(v float64) {
	p.target = v
}

// SetNow jumps directly to v with no ramp. Used when seeding a freshly
// created node so it does not glide in from a default value.
func (p *SmoothedParam) SetNow(v float64) {
	p.value = v
	p.target = v
}

// Step advances the ramp by one sample and returns the current value.
func (p *SmoothedParam) Step() float64 {
	p.value += (p.target - p.value) * p.coeff
	return p.value
}

// Value returns the current value without advancing the ramp.
func (p *SmoothedParam) Value() float64 {
	return p.value
}

// Target returns the value the ramp is approaching.
func (p *SmoothedParam) Target() float64 {
	return p.target
}
