// session.go - Timed parameter schedule driving the mix policy

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/goccy/go-yaml"
)

// SessionPoint is one change point in a session program.
type SessionPoint struct {
	Time        float64 `yaml:"time"` // seconds from session start
	BaseFreq    float64 `yaml:"base_freq"`
	BeatFreq    float64 `yaml:"beat_freq"`
	BeatVolume  float64 `yaml:"beat_volume"`
	NoiseVolume float64 `yaml:"noise_volume"`
}

// Session is a time-sorted program of parameter changes. Frequencies and
// volumes interpolate linearly between points; before the first and after
// the last point the boundary values hold.
type Session struct {
	Points []SessionPoint `yaml:"points"`
}

// LoadSession reads a session program from a YAML file.
func LoadSession(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	var s Session
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("session: %s: %w", path, err)
	}
	if len(s.Points) == 0 {
		return nil, fmt.Errorf("session: %s: no points", path)
	}
	sort.Slice(s.Points, func(i, j int) bool {
		return s.Points[i].Time < s.Points[j].Time
	})
	return &s, nil
}

// Duration returns the time of the last change point.
func (s *Session) Duration() float64 {
	return s.Points[len(s.Points)-1].Time
}

// At returns the interpolated parameters at t seconds.
func (s *Session) At(t float64) SessionPoint {
	first, last := s.Points[0], s.Points[len(s.Points)-1]
	if t <= first.Time {
		return first
	}
	if t >= last.Time {
		return last
	}
	for i := 0; i < len(s.Points)-1; i++ {
		a, b := s.Points[i], s.Points[i+1]
		if t >= a.Time && t < b.Time {
			k := (t - a.Time) / (b.Time - a.Time)
			return SessionPoint{
				Time:        t,
				BaseFreq:    lerp(a.BaseFreq, b.BaseFreq, k),
				BeatFreq:    lerp(a.BeatFreq, b.BeatFreq, k),
				BeatVolume:  lerp(a.BeatVolume, b.BeatVolume, k),
				NoiseVolume: lerp(a.NoiseVolume, b.NoiseVolume, k),
			}
		}
	}
	return last
}

func lerp(a, b, k float64) float64 {
	return a + (b-a)*k
}

// applyPoint pushes one schedule point into the mix policy.
func applyPoint(m *Mixer, p SessionPoint) {
	bp := m.BeatParams()
	bp.BaseFreq = p.BaseFreq
	bp.BeatFreq = p.BeatFreq
	bp.Volume = p.BeatVolume
	m.SetBeatParams(bp)

	np := m.NoiseParams()
	np.Volume = p.NoiseVolume
	m.SetNoiseParams(np)
}

// Run drives the mixer from the schedule, updating every interval, until
// the program ends or done closes. Parameter steps ride the generators'
// smoothing ramps, so the update interval does not need to be fine.
func (s *Session) Run(m *Mixer, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	applyPoint(m, s.At(0))

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			t := time.Since(start).Seconds()
			applyPoint(m, s.At(t))
			if t >= s.Duration() {
				return
			}
		}
	}
}
