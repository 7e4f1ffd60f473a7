// Package audio synthesizes the game's short blips as beep streamers.
// It never opens a sound device; speaker output lives in audio/playback.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-snake/constant"
)

// Sound identifies a game sound effect
type Sound uint8

const (
	SoundEat Sound = iota
	SoundCrash
	SoundCleared
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundCrash:
		return "crash"
	case SoundCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// note is one sine segment of a sound
type note struct {
	freq     float64
	duration time.Duration
}

func notesFor(s Sound) ([]note, error) {
	switch s {
	case SoundEat:
		return []note{{constant.EatSoundFreq, constant.EatSoundDuration}}, nil
	case SoundCrash:
		return []note{
			{constant.CrashSoundFreqHigh, constant.CrashSoundDuration},
			{constant.CrashSoundFreqLow, constant.CrashSoundDuration},
		}, nil
	case SoundCleared:
		notes := make([]note, len(constant.ClearedSoundFreqs))
		for i, f := range constant.ClearedSoundFreqs {
			notes[i] = note{f, constant.ClearedSoundNoteDuration}
		}
		return notes, nil
	default:
		return nil, fmt.Errorf("unknown sound %d", s)
	}
}

// Stream builds a finite streamer for s at the given sample rate and volume
// volume is a base-2 exponent as used by effects.Volume
func Stream(sr beep.SampleRate, s Sound, volume float64) (beep.Streamer, error) {
	notes, err := notesFor(s)
	if err != nil {
		return nil, err
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sr, n.freq)
		if err != nil {
			return nil, fmt.Errorf("%s tone %.1fHz: %w", s, n.freq, err)
		}
		parts = append(parts, beep.Take(sr.N(n.duration), tone))
	}

	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}
