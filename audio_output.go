// audio_output.go - Output backend interface and selection

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

// AudioOutput is the contract every output backend implements. The engine
// does not manage the underlying device or session; the backend supplies a
// live endpoint and pulls frames from the engine on its own thread.
type AudioOutput interface {
	Start()
	Stop()
	Close()
	IsStarted() bool
}

// NewAudioOutput opens the selected backend. Construction failures are
// surfaced to the caller; there is no retry or degraded fallback here.
func NewAudioOutput(backend int, sampleRate int, engine *Engine) (AudioOutput, error) {
	switch backend {
	case AUDIO_BACKEND_ALSA:
		return NewALSAPlayer(engine)
	case AUDIO_BACKEND_NONE:
		return &NullPlayer{}, nil
	default:
		player, err := NewOtoPlayer(sampleRate)
		if err != nil {
			return nil, err
		}
		player.SetupPlayer(engine)
		return player, nil
	}
}

// NullPlayer is a silent sink. It satisfies AudioOutput without touching
// any device, for tests and for -backend none.
type NullPlayer struct {
	started bool
}

func (np *NullPlayer) Start() {
	np.started = true
}

func (np *NullPlayer) Stop() {
	np.started = false
}

func (np *NullPlayer) Close() {
	np.started = false
}

func (np *NullPlayer) IsStarted() bool {
	return np.started
}
