//go:build !headless

// audio_backend_alsa.go - ALSA audio output implementation

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

/*
#cgo LDFLAGS: -lasound
#include <alsa/asoundlib.h>
#include <stdlib.h>

static snd_pcm_t* openPCM(const char* device, int* err) {
    snd_pcm_t* handle;
    *err = snd_pcm_open(&handle, device, SND_PCM_STREAM_PLAYBACK, 0);
    return handle;
}

static int setupPCM(snd_pcm_t* handle, unsigned int rate, unsigned int channels) {
    snd_pcm_hw_params_t* params;
    int err;

    snd_pcm_hw_params_alloca(&params);
    err = snd_pcm_hw_params_any(handle, params);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_access(handle, params, SND_PCM_ACCESS_RW_INTERLEAVED);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_format(handle, params, SND_PCM_FORMAT_FLOAT);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_channels(handle, params, channels);
    if (err < 0) return err;

    err = snd_pcm_hw_params_set_rate(handle, params, rate, 0);
    if (err < 0) return err;

    err = snd_pcm_hw_params(handle, params);
    if (err < 0) return err;

    return snd_pcm_prepare(handle);
}

static int writePCM(snd_pcm_t* handle, float* buffer, int frames) {
    return snd_pcm_writei(handle, buffer, frames);
}

static void closePCM(snd_pcm_t* handle) {
    if (handle != NULL) {
        snd_pcm_drain(handle);
        snd_pcm_close(handle);
    }
}
*/
import "C"
import (
	"fmt"
	"sync"
	"unsafe"
)

const alsaBlockFrames = 2048

type ALSAPlayer struct {
	handle  *C.snd_pcm_t
	engine  *Engine
	started bool
	mutex   sync.Mutex
	done    chan struct{}
	wg      sync.WaitGroup
	samples []float32

	// write pushes one block to the device. Set once at construction;
	// tests substitute it to exercise the writer lifecycle without ALSA.
	write func(done chan struct{}) error
}

func NewALSAPlayer(engine *Engine) (*ALSAPlayer, error) {
	var err C.int
	dev := C.CString("default")
	defer C.free(unsafe.Pointer(dev))
	handle := C.openPCM(dev, &err)
	if err < 0 {
		return nil, fmt.Errorf("failed to open PCM device: %s", C.GoString(C.snd_strerror(err)))
	}

	if err = C.setupPCM(handle, C.uint(SAMPLE_RATE), C.uint(CHANNEL_COUNT)); err < 0 {
		C.closePCM(handle)
		return nil, fmt.Errorf("failed to setup PCM: %s", C.GoString(C.snd_strerror(err)))
	}

	ap := &ALSAPlayer{
		handle:  handle,
		engine:  engine,
		samples: make([]float32, alsaBlockFrames*CHANNEL_COUNT),
	}
	ap.write = ap.writeBlock
	return ap, nil
}

func (ap *ALSAPlayer) IsStarted() bool {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()
	return ap.started
}

// writeBlock renders one block from the engine and pushes it to the PCM,
// recovering once from an underrun. done is re-checked between render and
// write so teardown never reaches the PCM handle mid-call.
func (ap *ALSAPlayer) writeBlock(done chan struct{}) error {
	ap.engine.RenderFrames(ap.samples)

	select {
	case <-done:
		return nil
	default:
	}

	frames := C.writePCM(ap.handle, (*C.float)(unsafe.Pointer(&ap.samples[0])), C.int(alsaBlockFrames))
	if frames < 0 {
		if frames == -C.EPIPE {
			C.snd_pcm_prepare(ap.handle)
			frames = C.writePCM(ap.handle, (*C.float)(unsafe.Pointer(&ap.samples[0])), C.int(alsaBlockFrames))
		}
		if frames < 0 {
			return fmt.Errorf("write failed: %s", C.GoString(C.snd_strerror(C.int(frames))))
		}
	}
	return nil
}

func (ap *ALSAPlayer) Start() {
	ap.mutex.Lock()
	defer ap.mutex.Unlock()

	if ap.started {
		return
	}
	ap.started = true
	ap.done = make(chan struct{})
	ap.wg.Add(1)

	go func(done chan struct{}) {
		defer ap.wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if err := ap.write(done); err != nil {
				fmt.Printf("ALSA playback error: %v\n", err)
				return
			}
		}
	}(ap.done)
}

// Stop signals the writer goroutine and joins it before returning, so no
// write can be in flight once Stop has returned.
func (ap *ALSAPlayer) Stop() {
	ap.mutex.Lock()
	if !ap.started {
		ap.mutex.Unlock()
		return
	}
	close(ap.done)
	ap.started = false
	ap.mutex.Unlock()

	ap.wg.Wait()
}

func (ap *ALSAPlayer) Close() {
	ap.Stop()
	ap.mutex.Lock()
	defer ap.mutex.Unlock()

	if ap.handle != nil {
		C.closePCM(ap.handle)
		ap.handle = nil
	}
}
