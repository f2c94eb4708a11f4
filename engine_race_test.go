// engine_race_test.go - Control-plane vs render-thread stress

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

import (
	"sync"
	"testing"
	"time"
)

// TestEngine_ConcurrentControlAndRender stresses the race between the
// control plane (UI/session setters) and the backend's render thread.
// The test itself has no assertions - the race detector is the oracle.
// Run with: go test -race -run TestEngine_ConcurrentControlAndRender -count=1
func TestEngine_ConcurrentControlAndRender(t *testing.T) {
	e, err := NewEngine(AUDIO_BACKEND_NONE)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer e.Close()

	bridge := NewBroadcastBridge(4096)
	e.AttachBridge(bridge)
	if err := e.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})

	// Goroutine 1: UI-side writer - hammers every mixer setter
	wg.Add(1)
	go func() {
		defer wg.Done()
		m := e.Mixer()
		iter := 0
		for {
			select {
			case <-stop:
				return
			default:
			}
			m.SetMasterVolume(float64(iter%100) / 100)
			m.SetNoiseParams(NoiseParams{
				Volume:     0.5,
				ModFreq:    float64(1 + iter%40),
				PulseDepth: float64(iter%100) / 100,
				PanDepth:   float64(iter%50) / 100,
			})
			m.SetBeatParams(BeatParams{
				Volume:   0.5,
				BaseFreq: float64(100 + iter%400),
				BeatFreq: float64(iter % 40),
			})
			m.SetMode(OutputMode(iter % 2))
			iter++
		}
	}()

	// Goroutine 2: lifecycle churn - start/stop and bridge acquire/release
	wg.Add(1)
	go func() {
		defer wg.Done()
		iter := 0
		for {
			select {
			case <-stop:
				return
			default:
			}
			if iter%2 == 0 {
				bridge.Acquire()
				e.Stop()
			} else {
				bridge.Release()
				_ = e.Start()
			}
			iter++
			time.Sleep(time.Millisecond)
		}
	}()

	// Goroutine 3: audio-side reader - pulls frames like a backend would
	wg.Add(1)
	go func() {
		defer wg.Done()
		buf := make([]float32, 512*CHANNEL_COUNT)
		for {
			select {
			case <-stop:
				return
			default:
			}
			e.RenderFrames(buf)
		}
	}()

	// Goroutine 4: bridge consumer
	wg.Add(1)
	go func() {
		defer wg.Done()
		buf := make([]float32, 256*CHANNEL_COUNT)
		for {
			select {
			case <-stop:
				return
			default:
			}
			bridge.ReadFrames(buf)
		}
	}()

	time.Sleep(100 * time.Millisecond)
	close(stop)
	wg.Wait()
}
