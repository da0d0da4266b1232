package audio

import "github.com/lixenwraith/vi-snake/constant"

// Config holds sound settings resolved by the config package
type Config struct {
	Enabled    bool
	Volume     float64 // Linear master volume in [0,1]
	SampleRate int
}

// DefaultConfig returns enabled audio at full volume
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Volume:     1.0,
		SampleRate: constant.AudioSampleRate,
	}
}
