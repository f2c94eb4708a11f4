// preset_store.go - Named parameter presets persisted as YAML files

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// Preset is a flat record of named floats plus the mode it belongs to.
// Classic presets use {volume, noiseVolume, beatVolume, baseFreq, beatFreq};
// pulse presets use {volume, neuralFreq, neuralPulseDepth, neuralPanDepth,
// neuralNoiseVolume}. Field names are part of the persistence contract.
type Preset struct {
	Mode string `yaml:"mode"`

	Volume float64 `yaml:"volume"`

	// Classic fields
	NoiseVolume float64 `yaml:"noiseVolume"`
	BeatVolume  float64 `yaml:"beatVolume"`
	BaseFreq    float64 `yaml:"baseFreq"`
	BeatFreq    float64 `yaml:"beatFreq"`

	// Pulse fields, "neural" per the product vocabulary
	NeuralFreq        float64 `yaml:"neuralFreq"`
	NeuralPulseDepth  float64 `yaml:"neuralPulseDepth"`
	NeuralPanDepth    float64 `yaml:"neuralPanDepth"`
	NeuralNoiseVolume float64 `yaml:"neuralNoiseVolume"`
}

// Validate checks type/shape: a known mode and finite values. The core
// itself never validates further; range policy stays with the UI.
func (p *Preset) Validate() error {
	if p.Mode != MODE_CLASSIC.String() && p.Mode != MODE_PULSE.String() {
		return fmt.Errorf("preset: unknown mode %q", p.Mode)
	}
	for name, v := range map[string]float64{
		"volume":            p.Volume,
		"noiseVolume":       p.NoiseVolume,
		"beatVolume":        p.BeatVolume,
		"baseFreq":          p.BaseFreq,
		"beatFreq":          p.BeatFreq,
		"neuralFreq":        p.NeuralFreq,
		"neuralPulseDepth":  p.NeuralPulseDepth,
		"neuralPanDepth":    p.NeuralPanDepth,
		"neuralNoiseVolume": p.NeuralNoiseVolume,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("preset: field %s is not finite", name)
		}
	}
	return nil
}

// Apply pushes the preset into the mix policy. Loading a preset is
// equivalent to calling the corresponding setters with the stored values.
func (p *Preset) Apply(m *Mixer) {
	m.SetMasterVolume(p.Volume)
	if p.Mode == MODE_PULSE.String() {
		m.SetMode(MODE_PULSE)
		np := m.NoiseParams()
		np.Volume = p.NeuralNoiseVolume
		np.ModFreq = p.NeuralFreq
		np.PulseDepth = p.NeuralPulseDepth
		np.PanDepth = p.NeuralPanDepth
		m.SetNoiseParams(np)
		return
	}
	m.SetMode(MODE_CLASSIC)
	np := m.NoiseParams()
	np.Volume = p.NoiseVolume
	m.SetNoiseParams(np)
	m.SetBeatParams(BeatParams{
		Volume:   p.BeatVolume,
		BaseFreq: p.BaseFreq,
		BeatFreq: p.BeatFreq,
	})
}

// CapturePreset snapshots the mixer's current parameter set for the
// current mode.
func CapturePreset(m *Mixer) Preset {
	np := m.NoiseParams()
	bp := m.BeatParams()
	p := Preset{
		Mode:   m.Mode().String(),
		Volume: m.MasterVolume(),
	}
	if m.Mode() == MODE_PULSE {
		p.NeuralNoiseVolume = np.Volume
		p.NeuralFreq = np.ModFreq
		p.NeuralPulseDepth = np.PulseDepth
		p.NeuralPanDepth = np.PanDepth
		return p
	}
	p.NoiseVolume = np.Volume
	p.BeatVolume = bp.Volume
	p.BaseFreq = bp.BaseFreq
	p.BeatFreq = bp.BeatFreq
	return p
}

// PresetStore persists presets one YAML file per name under a directory.
type PresetStore struct {
	dir string
}

// NewPresetStore creates the directory if needed.
func NewPresetStore(dir string) (*PresetStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("preset store: %w", err)
	}
	return &PresetStore{dir: dir}, nil
}

func (s *PresetStore) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "/\\") {
		return "", fmt.Errorf("preset store: invalid name %q", name)
	}
	return filepath.Join(s.dir, name+".yaml"), nil
}

// Save validates and writes the preset.
func (s *PresetStore) Save(name string, p Preset) error {
	if err := p.Validate(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("preset store: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load reads and validates a named preset.
func (s *PresetStore) Load(name string) (*Preset, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset store: %w", err)
	}
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("preset store: %s: %w", name, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns the stored preset names, sorted.
func (s *PresetStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("preset store: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a named preset.
func (s *PresetStore) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	return os.Remove(path)
}
