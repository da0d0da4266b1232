package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
)

// SoundManager plays event cues through one speaker mixer
// Implements engine.EventHandler; all methods are safe without a sound device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	mixer := &beep.Mixer{}
	return &SoundManager{
		cfg:    cfg,
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Initialize opens the speaker; a disabled config is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	log.Printf("[audio] speaker ready at %d Hz", sm.cfg.SampleRate)
	return nil
}

// Cleanup silences and drops all queued cues
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.master.Silent
}

// ToggleMute flips the master mute and returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.master.Silent = !sm.master.Silent
	return sm.master.Silent
}

// Play queues a cue; dropped when not initialized or muted
func (sm *SoundManager) Play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || s == nil || sm.master.Silent {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// EventTypes implements engine.EventHandler
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventFoodEaten, engine.EventPhase}
}

// HandleEvent implements engine.EventHandler
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	if s := sm.cueFor(ev); s != nil {
		sm.Play(s)
	}
}

// cueFor selects the streamer for an event, nil when the event is silent
func (sm *SoundManager) cueFor(ev engine.Event) beep.Streamer {
	switch ev.Type {
	case engine.EventFoodEaten:
		return CreateEatSound(ev.Food.Kind, sm.cfg)
	case engine.EventPhase:
		switch ev.Phase {
		case engine.PhasePaused, engine.PhaseRunning:
			return CreatePauseSound(sm.cfg)
		case engine.PhaseOver:
			return CreateGameOverSound(ev.Reason.Won(), sm.cfg)
		}
	}
	return nil
}
