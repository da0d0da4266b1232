package engine

import (
	"github.com/lixenwraith/vi-snake/component"
)

// EventType identifies a state change reported to output collaborators
type EventType uint8

const (
	// EventSessionStart fires when a session begins running
	EventSessionStart EventType = iota
	// EventScore fires when the score changes or is reset
	EventScore
	// EventPhase fires on every phase transition
	EventPhase
	// EventFoodEaten fires when the head consumes food
	EventFoodEaten
)

func (t EventType) String() string {
	switch t {
	case EventSessionStart:
		return "SessionStart"
	case EventScore:
		return "Score"
	case EventPhase:
		return "Phase"
	case EventFoodEaten:
		return "FoodEaten"
	}
	return "Unknown"
}

// Event carries a snapshot of the fields relevant to its type
type Event struct {
	Type      EventType
	SessionID string
	Score     int
	Phase     Phase
	Reason    EndReason
	Food      component.Food
}
