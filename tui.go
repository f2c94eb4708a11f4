// tui.go - Terminal control surface for the engine

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"fmt"
	"time"

	"github.com/nsf/termbox-go"
)

const (
	colDef    = termbox.ColorDefault
	colWhite  = termbox.ColorWhite
	colGreen  = termbox.ColorGreen
	colYellow = termbox.ColorYellow
	colCyan   = termbox.ColorCyan
)

type tuiParam struct {
	name string
	step float64
	get  func(*Mixer) float64
	set  func(*Mixer, float64)
}

// The TUI only supplies numbers to the core and reads back the playing
// flag and current values; all range policy lives here.
var tuiParams = []tuiParam{
	{"Master Volume", 0.05,
		func(m *Mixer) float64 { return m.MasterVolume() },
		func(m *Mixer, v float64) { m.SetMasterVolume(clampUnit(v)) }},
	{"Base Freq (Hz)", 5.0,
		func(m *Mixer) float64 { return m.BeatParams().BaseFreq },
		func(m *Mixer, v float64) {
			bp := m.BeatParams()
			bp.BaseFreq = clamp(v, 20, 1000)
			m.SetBeatParams(bp)
		}},
	{"Beat Freq (Hz)", 0.5,
		func(m *Mixer) float64 { return m.BeatParams().BeatFreq },
		func(m *Mixer, v float64) {
			bp := m.BeatParams()
			bp.BeatFreq = clamp(v, 0, 40)
			m.SetBeatParams(bp)
		}},
	{"Beat Volume", 0.05,
		func(m *Mixer) float64 { return m.BeatParams().Volume },
		func(m *Mixer, v float64) {
			bp := m.BeatParams()
			bp.Volume = clampUnit(v)
			m.SetBeatParams(bp)
		}},
	{"Noise Volume", 0.05,
		func(m *Mixer) float64 { return m.NoiseParams().Volume },
		func(m *Mixer, v float64) {
			np := m.NoiseParams()
			np.Volume = clampUnit(v)
			m.SetNoiseParams(np)
		}},
	{"Mod Freq (Hz)", 0.5,
		func(m *Mixer) float64 { return m.NoiseParams().ModFreq },
		func(m *Mixer, v float64) {
			np := m.NoiseParams()
			np.ModFreq = clamp(v, 0.1, 40)
			m.SetNoiseParams(np)
		}},
	{"Pulse Depth", 0.05,
		func(m *Mixer) float64 { return m.NoiseParams().PulseDepth },
		func(m *Mixer, v float64) {
			np := m.NoiseParams()
			np.PulseDepth = clampUnit(v)
			m.SetNoiseParams(np)
		}},
	{"Pan Depth", 0.05,
		func(m *Mixer) float64 { return m.NoiseParams().PanDepth },
		func(m *Mixer, v float64) {
			np := m.NoiseParams()
			np.PanDepth = clampUnit(v)
			m.SetNoiseParams(np)
		}},
}

type TUIState struct {
	selected int
	engine   *Engine
	presets  *PresetStore
	status   string
	exit     bool
}

func runTUI(engine *Engine, presets *PresetStore) error {
	if err := termbox.Init(); err != nil {
		return fmt.Errorf("failed to initialize TUI: %w", err)
	}
	defer termbox.Close()

	termbox.SetInputMode(termbox.InputEsc)

	state := &TUIState{engine: engine, presets: presets}

	eventQueue := make(chan termbox.Event)
	pollDone := make(chan struct{})
	go func() {
		defer close(pollDone)
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			eventQueue <- ev
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	drawTUI(state)

	for !state.exit {
		select {
		case ev := <-eventQueue:
			if ev.Type == termbox.EventKey {
				handleTUIKey(ev, state)
			}
			drawTUI(state)
		case <-ticker.C:
			drawTUI(state)
		}
	}

	// The poll goroutine must be gone before termbox.Close runs. It may be
	// parked inside PollEvent or on a queue send, so interrupt it and keep
	// receiving until it exits.
	termbox.Interrupt()
	drainEvents(eventQueue, pollDone)
	return nil
}

func drainEvents(events <-chan termbox.Event, pollDone <-chan struct{}) {
	for {
		select {
		case <-events:
		case <-pollDone:
			return
		}
	}
}

func handleTUIKey(ev termbox.Event, s *TUIState) {
	mix := s.engine.Mixer()

	switch {
	case ev.Key == termbox.KeyEsc || ev.Ch == 'q':
		s.exit = true
	case ev.Key == termbox.KeyArrowUp:
		s.selected--
		if s.selected < 0 {
			s.selected = len(tuiParams) - 1
		}
	case ev.Key == termbox.KeyArrowDown:
		s.selected++
		if s.selected >= len(tuiParams) {
			s.selected = 0
		}
	case ev.Key == termbox.KeyArrowLeft:
		p := tuiParams[s.selected]
		p.set(mix, p.get(mix)-p.step)
	case ev.Key == termbox.KeyArrowRight:
		p := tuiParams[s.selected]
		p.set(mix, p.get(mix)+p.step)
	case ev.Key == termbox.KeySpace:
		if s.engine.IsPlaying() {
			s.engine.Stop()
		} else if err := s.engine.Start(); err != nil {
			s.status = fmt.Sprintf("start failed: %v", err)
		}
	case ev.Ch == 'm':
		if mix.Mode() == MODE_CLASSIC {
			mix.SetMode(MODE_PULSE)
		} else {
			mix.SetMode(MODE_CLASSIC)
		}
	case ev.Ch == 's':
		if s.presets == nil {
			s.status = "no preset dir configured"
			return
		}
		name := fmt.Sprintf("%s-%s", mix.Mode(), time.Now().Format("20060102-150405"))
		if err := s.presets.Save(name, CapturePreset(mix)); err != nil {
			s.status = fmt.Sprintf("save failed: %v", err)
		} else {
			s.status = "saved preset " + name
		}
	}
}

func printText(x, y int, fg, bg termbox.Attribute, text string) {
	for _, ch := range text {
		termbox.SetCell(x, y, ch, fg, bg)
		x++
	}
}

func drawTUI(s *TUIState) {
	termbox.Clear(colDef, colDef)
	mix := s.engine.Mixer()

	printText(1, 0, colCyan, colDef, "beepink-naural")
	playState := "stopped"
	fg := colYellow
	if s.engine.IsPlaying() {
		playState = "playing"
		fg = colGreen
	}
	printText(1, 1, fg, colDef, fmt.Sprintf("[%s]  mode: %s  band: %s",
		playState, mix.Mode(), BandLabel(mix.BeatParams().BeatFreq)))

	for i, p := range tuiParams {
		fg := colWhite
		marker := "  "
		if i == s.selected {
			fg = colGreen
			marker = "> "
		}
		printText(1, 3+i, fg, colDef, fmt.Sprintf("%s%-16s %7.2f", marker, p.name, p.get(mix)))
	}

	y := 4 + len(tuiParams)
	printText(1, y, colDef, colDef, "up/down select  left/right adjust  space play/stop  m mode  s save  q quit")
	if s.status != "" {
		printText(1, y+1, colYellow, colDef, s.status)
	}

	termbox.Flush()
}
