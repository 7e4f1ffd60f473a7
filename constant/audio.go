package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer size, determines latency
	AudioBufferDuration = 50 * time.Millisecond
)

// Eat Sound
const (
	EatSoundFreq     = 880.0
	EatSoundDuration = 50 * time.Millisecond
)

// Crash Sound, two descending tones
const (
	CrashSoundFreqHigh = 220.0
	CrashSoundFreqLow  = 165.0
	CrashSoundDuration = 200 * time.Millisecond
)

// Cleared Sound, rising arpeggio
var ClearedSoundFreqs = []float64{523.25, 659.25, 783.99, 1046.5}

const ClearedSoundNoteDuration = 90 * time.Millisecond

// DefaultVolume is the beep/effects volume exponent (base 2), 0 is unchanged
const DefaultVolume = -1.0
