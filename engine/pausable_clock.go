package engine

import (
	"time"
)

// PausableClock provides game time that stops advancing while paused
// Accessed only from the host's frame loop; no internal locking
type PausableClock struct {
	source TimeProvider

	start time.Time // Real time at creation

	paused          bool
	pauseStartTime  time.Time     // Real time the current pause began
	totalPausedTime time.Duration // Cumulative completed pauses
}

// NewPausableClock starts a running clock at source.Now()
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{
		source: source,
		start:  source.Now(),
	}
}

// Elapsed returns game time since creation, excluding pauses
func (pc *PausableClock) Elapsed() time.Duration {
	now := pc.source.Now()
	if pc.paused {
		now = pc.pauseStartTime
	}
	return now.Sub(pc.start) - pc.totalPausedTime
}

// Pause freezes game time; repeated calls are no-ops
func (pc *PausableClock) Pause() {
	if pc.paused {
		return
	}
	pc.paused = true
	pc.pauseStartTime = pc.source.Now()
}

// Resume continues game time, accounting for the pause just ended
func (pc *PausableClock) Resume() {
	if !pc.paused {
		return
	}
	pc.totalPausedTime += pc.source.Now().Sub(pc.pauseStartTime)
	pc.pauseStartTime = time.Time{}
	pc.paused = false
}

// IsPaused returns current pause state
func (pc *PausableClock) IsPaused() bool {
	return pc.paused
}

// TotalPauseDuration returns cumulative pause time including an ongoing pause
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	total := pc.totalPausedTime
	if pc.paused {
		total += pc.source.Now().Sub(pc.pauseStartTime)
	}
	return total
}
