// main.go - Command-line front end for the beepink-naural engine

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func boilerPlate() {
	fmt.Println("beepink-naural - binaural beat and modulated pink noise engine")
	fmt.Println("(c) 2025 - 2026 Rana Rodriguez")
	fmt.Println("https://github.com/RanaRodriguez/beepink-naural")
	fmt.Println("License: GPLv3 or later")
	fmt.Println()
}

func main() {
	var (
		backendName = flag.String("backend", "oto", "audio backend: oto, alsa or none")
		modeName    = flag.String("mode", "classic", "output mode: classic or pulse")
		master      = flag.Float64("volume", DEFAULT_MASTER_VOLUME, "master volume 0..1")
		baseFreq    = flag.Float64("base", DEFAULT_BASE_FREQ, "carrier frequency in Hz")
		beatFreq    = flag.Float64("beat", DEFAULT_BEAT_FREQ, "beat frequency in Hz")
		beatVolume  = flag.Float64("beat-volume", DEFAULT_BEAT_VOLUME, "tone volume 0..1")
		noiseVolume = flag.Float64("noise-volume", DEFAULT_NOISE_VOLUME, "noise volume 0..1")
		modFreq     = flag.Float64("mod-freq", DEFAULT_MOD_FREQ, "noise LFO rate in Hz (pulse mode)")
		pulseDepth  = flag.Float64("pulse-depth", DEFAULT_PULSE_DEPTH, "amplitude pulse depth 0..1 (pulse mode)")
		panDepth    = flag.Float64("pan-depth", DEFAULT_PAN_DEPTH, "stereo pan depth 0..1 (pulse mode)")
		duration    = flag.Duration("duration", 0, "stop after this long (0 = run until interrupted)")
		presetDir   = flag.String("preset-dir", defaultPresetDir(), "preset directory")
		presetName  = flag.String("preset", "", "load a named preset before starting")
		listPresets = flag.Bool("list-presets", false, "list stored presets and exit")
		sessionPath = flag.String("session", "", "run a YAML session program")
		useTUI      = flag.Bool("tui", false, "interactive terminal control surface")
	)
	flag.Parse()

	boilerPlate()

	backend := AUDIO_BACKEND_OTO
	switch *backendName {
	case "oto":
	case "alsa":
		backend = AUDIO_BACKEND_ALSA
	case "none":
		backend = AUDIO_BACKEND_NONE
	default:
		fmt.Printf("Error: unknown backend %q\n", *backendName)
		os.Exit(1)
	}

	store, err := NewPresetStore(*presetDir)
	if err != nil {
		fmt.Printf("Failed to open preset store: %v\n", err)
		os.Exit(1)
	}

	if *listPresets {
		names, err := store.List()
		if err != nil {
			fmt.Printf("Failed to list presets: %v\n", err)
			os.Exit(1)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	engine, err := NewEngine(backend)
	if err != nil {
		fmt.Printf("Failed to initialize sound: %v\n", err)
		os.Exit(1)
	}
	defer engine.Close()

	mix := engine.Mixer()
	mode := MODE_CLASSIC
	if *modeName == "pulse" {
		mode = MODE_PULSE
	} else if *modeName != "classic" {
		fmt.Printf("Error: unknown mode %q\n", *modeName)
		os.Exit(1)
	}
	mix.SetMode(mode)
	mix.SetMasterVolume(*master)
	mix.SetNoiseParams(NoiseParams{
		Volume:     *noiseVolume,
		ModFreq:    *modFreq,
		PulseDepth: *pulseDepth,
		PanDepth:   *panDepth,
	})
	mix.SetBeatParams(BeatParams{
		Volume:   *beatVolume,
		BaseFreq: *baseFreq,
		BeatFreq: *beatFreq,
	})

	if *presetName != "" {
		preset, err := store.Load(*presetName)
		if err != nil {
			fmt.Printf("Failed to load preset: %v\n", err)
			os.Exit(1)
		}
		preset.Apply(mix)
		fmt.Printf("Loaded preset %q (%s)\n", *presetName, preset.Mode)
	}

	if *useTUI {
		if err := runTUI(engine, store); err != nil {
			fmt.Printf("TUI error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := engine.Start(); err != nil {
		fmt.Printf("Failed to start playback: %v\n", err)
		os.Exit(1)
	}

	bp := mix.BeatParams()
	fmt.Printf("Playing: mode=%s base=%.1fHz beat=%.1fHz (%s band)\n",
		mix.Mode(), bp.BaseFreq, bp.BeatFreq, BandLabel(bp.BeatFreq))

	done := make(chan struct{})
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		close(done)
	}()

	if *sessionPath != "" {
		session, err := LoadSession(*sessionPath)
		if err != nil {
			fmt.Printf("Failed to load session: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Running session program (%.0fs)\n", session.Duration())
		session.Run(mix, time.Second, done)
		return
	}

	if *duration > 0 {
		select {
		case <-time.After(*duration):
		case <-done:
		}
		return
	}
	<-done
}

func defaultPresetDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "presets"
	}
	return dir + "/beepink-naural/presets"
}
