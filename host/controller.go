package host

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/status"
)

// SessionFactory creates a fresh session for a restart
type SessionFactory func() (*engine.Session, error)

// Muter toggles audio output; satisfied by audio.SoundManager
type Muter interface {
	ToggleMute() bool
}

// Controller applies player actions to the scheduler; shared by both hosts
type Controller struct {
	sched      *engine.Scheduler
	newSession SessionFactory
	muter      Muter
	hud        *HUD

	// OnRestart runs after a new session starts, before its first frame
	OnRestart func(s *engine.Session)

	Debug bool

	statAudio *atomic.Bool
}

// NewController wires the action handler; muter may be nil when audio is disabled
func NewController(sched *engine.Scheduler, newSession SessionFactory, muter Muter, hud *HUD, reg *status.Registry) *Controller {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Controller{
		sched:      sched,
		newSession: newSession,
		muter:      muter,
		hud:        hud,
		statAudio:  reg.Bools.Get(status.KeyAudioEnabled),
	}
}

// Scheduler returns the driven scheduler
func (c *Controller) Scheduler() *engine.Scheduler {
	return c.sched
}

// Apply executes one action; quit reports that the host should exit
func (c *Controller) Apply(a input.Action, now time.Time) (quit bool, err error) {
	if d, ok := a.Direction(); ok {
		c.sched.Steer(d)
		return false, nil
	}

	switch a {
	case input.ActionPause:
		c.sched.TogglePause(now)
	case input.ActionRestart:
		return false, c.Restart(now)
	case input.ActionMute:
		if c.muter != nil {
			muted := c.muter.ToggleMute()
			c.statAudio.Store(!muted)
			if c.hud != nil {
				c.hud.Muted = muted
			}
		}
	case input.ActionDebug:
		c.Debug = !c.Debug
	case input.ActionQuit:
		return true, nil
	}
	return false, nil
}

// Restart replaces the session; the old one keeps running on failure
func (c *Controller) Restart(now time.Time) error {
	s, err := c.newSession()
	if err != nil {
		return fmt.Errorf("restart: %w", err)
	}
	log.Printf("[host] restart, new session %s", s.ID)
	c.sched.Restart(s, now)
	if c.OnRestart != nil {
		c.OnRestart(s)
	}
	return nil
}
