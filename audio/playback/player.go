// Package playback drives beep's speaker, the only part of audio that needs a sound device.
package playback

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constant"
)

// Player wraps the beep speaker as a service
// Handles graceful degradation when no audio device is available
type Player struct {
	sampleRate beep.SampleRate
	volume     float64

	muted    atomic.Bool
	disabled atomic.Bool
	ready    atomic.Bool

	mu sync.Mutex // Serializes speaker init/close
}

// NewPlayer creates a player; muted players never touch the audio device until unmuted
func NewPlayer(muted bool, volume float64) *Player {
	p := &Player{
		sampleRate: beep.SampleRate(constant.AudioSampleRate),
		volume:     volume,
	}
	p.muted.Store(muted)
	return p
}

// Name implements service.Service
func (p *Player) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (p *Player) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (p *Player) Init() error {
	return nil
}

// Start opens the speaker unless muted
// Sets disabled on failure, no error returned
func (p *Player) Start() error {
	if p.muted.Load() {
		return nil
	}
	p.open()
	return nil
}

func (p *Player) open() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready.Load() || p.disabled.Load() {
		return
	}
	if err := speaker.Init(p.sampleRate, p.sampleRate.N(constant.AudioBufferDuration)); err != nil {
		log.Printf("audio disabled: %v", err)
		p.disabled.Store(true)
		return
	}
	p.ready.Store(true)
}

// Stop implements service.Service, idempotent
func (p *Player) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready.CompareAndSwap(true, false) {
		speaker.Clear()
		speaker.Close()
	}
	return nil
}

// Play queues s on the speaker; no-op when muted or disabled
func (p *Player) Play(s audio.Sound) {
	if p.muted.Load() || !p.ready.Load() {
		return
	}
	st, err := audio.Stream(p.sampleRate, s, p.volume)
	if err != nil {
		log.Printf("audio: %v", err)
		return
	}
	speaker.Play(st)
}

// ToggleMute flips the mute state, opening the speaker lazily on first unmute
// Returns the new muted state
func (p *Player) ToggleMute() bool {
	muted := !p.muted.Load()
	p.muted.Store(muted)
	if !muted {
		p.open()
	}
	return muted
}

// Muted reports the mute state
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Available reports whether the speaker is open
func (p *Player) Available() bool {
	return p.ready.Load()
}
