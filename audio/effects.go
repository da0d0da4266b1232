package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.attackSamples > 0 && e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if releaseStart := e.totalSamples - e.releaseSamples; e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) *effects.Volume {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped single note
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, constant.SoundAttack, constant.SoundRelease, rate)
}

// CreateEatSound is a short blip pitched by the food's reward tier
func CreateEatSound(kind component.FoodKind, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	freq := constant.EatSoundFrequencies[0]
	if int(kind) < len(constant.EatSoundFrequencies) {
		freq = constant.EatSoundFrequencies[kind]
	}

	// Fundamental plus a fifth above for the rarer kinds
	notes := []beep.Streamer{newVolume(tone(freq, constant.EatSoundDuration, WaveSquare, rate), 0.6)}
	if kind != component.FoodCommon {
		notes = append(notes, newVolume(tone(freq*1.5, constant.EatSoundDuration, WaveSine, rate), 0.4))
	}
	return newVolume(beep.Mix(notes...), cfg.Volume)
}

// CreatePauseSound is a single soft tick
func CreatePauseSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return newVolume(tone(constant.PauseSoundFrequency, constant.PauseSoundDuration, WaveTriangle, rate), cfg.Volume*0.5)
}

// CreateGameOverSound is a falling three-note phrase, or a rising one for a win
func CreateGameOverSound(won bool, cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	step := constant.GameOverSoundDuration / 3
	base := float64(constant.GameOverSoundFrequency)

	ratios := []float64{4, 3, 2}
	if won {
		ratios = []float64{4, 5, 6}
	}
	seq := make([]beep.Streamer, 0, len(ratios)+1)
	for _, r := range ratios {
		seq = append(seq, tone(base*r, step, WaveSquare, rate))
	}

	// Low sine drone under the phrase
	drone, err := generators.SineTone(rate, base)
	if err != nil {
		return newVolume(beep.Seq(seq...), cfg.Volume)
	}
	shapedDrone := NewEnvelope(beep.Take(rate.N(constant.GameOverSoundDuration), drone),
		constant.GameOverSoundDuration, constant.SoundAttack, constant.GameOverSoundDuration/2, rate)

	return newVolume(beep.Mix(
		newVolume(beep.Seq(seq...), 0.5),
		newVolume(shapedDrone, 0.3),
	), cfg.Volume)
}
