package host

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/vi-snake/engine"
)

// HUD tracks score and phase from routed events for the score strip and game-over overlay
type HUD struct {
	SessionID string
	Score     int
	Phase     engine.Phase
	Reason    engine.EndReason
	Muted     bool
}

// EventTypes implements engine.EventHandler
func (h *HUD) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventSessionStart, engine.EventScore, engine.EventPhase}
}

// HandleEvent implements engine.EventHandler
func (h *HUD) HandleEvent(ev engine.Event) {
	switch ev.Type {
	case engine.EventSessionStart:
		h.SessionID = ev.SessionID
		h.Score = 0
		h.Phase = engine.PhaseRunning
		h.Reason = engine.EndNone
	case engine.EventScore:
		h.Score = ev.Score
	case engine.EventPhase:
		h.Phase = ev.Phase
		h.Reason = ev.Reason
	}
}

// Status is the one-line score strip
func (h *HUD) Status(s *engine.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d", h.Score)
	if s != nil {
		if left, ok := s.Remaining(); ok {
			fmt.Fprintf(&b, "  Time: %s", formatCountdown(left))
		}
	}
	if h.Phase == engine.PhasePaused {
		b.WriteString("  [PAUSED]")
	}
	if h.Muted {
		b.WriteString("  [MUTED]")
	}
	return b.String()
}

// Overlay returns the game-over lines; ok is false while the game is live
func (h *HUD) Overlay() (lines []string, ok bool) {
	if h.Phase != engine.PhaseOver {
		return nil, false
	}
	title := "GAME OVER"
	switch h.Reason {
	case engine.EndBoardFull:
		title = "YOU WIN"
	case engine.EndTimeUp:
		title = "TIME UP"
	}
	return []string{
		title,
		fmt.Sprintf("Score: %d", h.Score),
		"press R to restart",
	}, true
}

// formatCountdown renders m:ss, rounding partial seconds up so zero shows only at expiry
func formatCountdown(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
