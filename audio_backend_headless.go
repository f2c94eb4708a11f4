//go:build headless

// audio_backend_headless.go - Null audio backends for headless builds

/*
(c) 2025 - 2026 Rana Rodriguez
https://github.com/RanaRodriguez/beepink-naural
License: GPLv3 or later
*/

package main

type OtoPlayer struct {
	started bool
	engine  *Engine
}

func NewOtoPlayer(sampleRate int) (*OtoPlayer, error) {
	return &OtoPlayer{}, nil
}

func (op *OtoPlayer) SetupPlayer(engine *Engine) {
	op.engine = engine
}

func (op *OtoPlayer) Read(p []byte) (n int, err error) {
	return len(p), nil
}

func (op *OtoPlayer) Start() {
	op.started = true
}

func (op *OtoPlayer) Stop() {
	op.started = false
}

func (op *OtoPlayer) Close() {
	op.started = false
}

func (op *OtoPlayer) IsStarted() bool {
	return op.started
}

type ALSAPlayer struct {
	started bool
}

func NewALSAPlayer(engine *Engine) (*ALSAPlayer, error) {
	return &ALSAPlayer{}, nil
}

func (ap *ALSAPlayer) Start() {
	ap.started = true
}

func (ap *ALSAPlayer) Stop() {
	ap.started = false
}

func (ap *ALSAPlayer) Close() {
	ap.started = false
}

func (ap *ALSAPlayer) IsStarted() bool {
	return ap.started
}
