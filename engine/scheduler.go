package engine

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/status"
)

// SchedulerState is the run state of the scheduler
type SchedulerState uint8

const (
	SchedulerStopped SchedulerState = iota
	SchedulerRunning
	SchedulerPaused
)

func (s SchedulerState) String() string {
	switch s {
	case SchedulerStopped:
		return "Stopped"
	case SchedulerRunning:
		return "Running"
	case SchedulerPaused:
		return "Paused"
	}
	return "Unknown"
}

// FrameRenderer draws one frame from the session state
type FrameRenderer interface {
	RenderFrame(s *Session, now time.Time)
}

// Scheduler decouples fixed-interval gameplay ticks from per-frame rendering
// The host calls Frame from its own timer or animation callback; nothing here blocks or spawns goroutines
type Scheduler struct {
	session  *Session
	renderer FrameRenderer
	router   *EventRouter

	tickInterval time.Duration
	state        SchedulerState
	lastTick     time.Time

	// Cached metric pointers
	statTicks  *atomic.Int64
	statFrames *atomic.Int64
}

// NewScheduler creates a stopped scheduler; renderer may be nil for headless runs
func NewScheduler(session *Session, renderer FrameRenderer, router *EventRouter, tickInterval time.Duration, reg *status.Registry) *Scheduler {
	if router == nil {
		router = NewEventRouter()
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Scheduler{
		session:      session,
		renderer:     renderer,
		router:       router,
		tickInterval: tickInterval,
		state:        SchedulerStopped,
		statTicks:    reg.Ints.Get(status.KeyTicks),
		statFrames:   reg.Ints.Get(status.KeyFrames),
	}
}

// Session returns the session currently driven
func (s *Scheduler) Session() *Session {
	return s.session
}

// State returns the current run state
func (s *Scheduler) State() SchedulerState {
	return s.state
}

// Start begins ticking from now; returns false when already started or the session is over
func (s *Scheduler) Start(now time.Time) bool {
	if s.state != SchedulerStopped || s.session.Model.Phase == PhaseOver {
		return false
	}
	s.state = SchedulerRunning
	s.lastTick = now
	log.Printf("[scheduler] session %s started, %dx%d, tick %v",
		s.session.ID, s.session.Model.Bounds.Width, s.session.Model.Bounds.Height, s.tickInterval)
	s.emit(EventSessionStart)
	s.emit(EventScore)
	return true
}

// Stop halts tick advancement; frames keep rendering
func (s *Scheduler) Stop() {
	s.state = SchedulerStopped
}

// TogglePause flips Running and Paused and keeps model phase and game clock in step
func (s *Scheduler) TogglePause(now time.Time) SchedulerState {
	switch s.state {
	case SchedulerRunning:
		s.session.Model.TogglePause()
		s.session.Clock.Pause()
		s.state = SchedulerPaused
		s.emit(EventPhase)
	case SchedulerPaused:
		s.session.Model.TogglePause()
		s.session.Clock.Resume()
		s.state = SchedulerRunning
		// Resuming restarts the interval instead of firing a tick for time spent paused
		s.lastTick = now
		s.emit(EventPhase)
	}
	return s.state
}

// Restart replaces the session and starts it
func (s *Scheduler) Restart(session *Session, now time.Time) {
	s.session = session
	s.state = SchedulerStopped
	s.Start(now)
}

// Steer buffers a direction for the next tick
func (s *Scheduler) Steer(d core.Direction) bool {
	return s.session.Model.SetDirection(d)
}

// Frame is the host's per-frame callback
// At most one tick runs per call, with no catch-up of missed intervals; rendering always runs
func (s *Scheduler) Frame(now time.Time) {
	if s.state == SchedulerRunning {
		s.advance(now)
	}

	s.router.DispatchAll()
	s.statFrames.Add(1)

	if s.renderer != nil {
		s.renderer.RenderFrame(s.session, now)
	}
}

// advance runs the countdown check and at most one tick
func (s *Scheduler) advance(now time.Time) {
	if s.session.Model.Phase == PhaseOver {
		s.finish()
		return
	}
	if s.session.TimeUp() {
		s.session.Model.End(EndTimeUp)
		s.finish()
		return
	}

	if now.Sub(s.lastTick) < s.tickInterval {
		return
	}
	s.lastTick = now

	m := s.session.Model
	res := m.Tick(s.session.Spawner)
	s.statTicks.Add(1)

	if res.Ate {
		s.emitFood(res)
		s.emit(EventScore)
	}
	if m.Phase == PhaseOver {
		s.finish()
	}
}

// finish stops ticking after the model reached PhaseOver
func (s *Scheduler) finish() {
	s.state = SchedulerStopped
	m := s.session.Model
	log.Printf("[scheduler] session %s over: %v, score %d, ticks %d", s.session.ID, m.Reason, m.Score, m.Ticks)
	s.emit(EventPhase)
}

func (s *Scheduler) emit(t EventType) {
	m := s.session.Model
	s.router.Emit(Event{
		Type:      t,
		SessionID: s.session.ID,
		Score:     m.Score,
		Phase:     m.Phase,
		Reason:    m.Reason,
		Food:      m.Food,
	})
}

func (s *Scheduler) emitFood(res TickResult) {
	m := s.session.Model
	s.router.Emit(Event{
		Type:      EventFoodEaten,
		SessionID: s.session.ID,
		Score:     m.Score,
		Phase:     m.Phase,
		Reason:    m.Reason,
		Food:      res.Eaten,
	})
}
