package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Cue durations
const (
	EatSoundDuration      = 90 * time.Millisecond
	GameOverSoundDuration = 600 * time.Millisecond
	PauseSoundDuration    = 60 * time.Millisecond
	SoundAttack           = 5 * time.Millisecond
	SoundRelease          = 40 * time.Millisecond
)

// Cue pitches in Hz, indexed by food reward tier
var EatSoundFrequencies = [3]float64{660, 880, 1320}

const (
	GameOverSoundFrequency = 110
	PauseSoundFrequency    = 440
)
