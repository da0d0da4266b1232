package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-snake/core"
)

// ErrUnknownAction is returned for an action name outside the registry
var ErrUnknownAction = errors.New("unknown action")

// Action is a player command produced by a key press
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionPause
	ActionRestart
	ActionMute
	ActionQuit
	ActionDebug
)

// actionNames maps canonical config names to actions
// Used by the keymap loader to resolve [keys] table entries
var actionNames = map[string]Action{
	"up":      ActionUp,
	"down":    ActionDown,
	"left":    ActionLeft,
	"right":   ActionRight,
	"pause":   ActionPause,
	"restart": ActionRestart,
	"mute":    ActionMute,
	"quit":    ActionQuit,
	"debug":   ActionDebug,
}

func (a Action) String() string {
	for name, v := range actionNames {
		if v == a {
			return name
		}
	}
	return "none"
}

// Direction returns the steering direction of a movement action
func (a Action) Direction() (core.Direction, bool) {
	switch a {
	case ActionUp:
		return core.DirUp, true
	case ActionDown:
		return core.DirDown, true
	case ActionLeft:
		return core.DirLeft, true
	case ActionRight:
		return core.DirRight, true
	}
	return core.DirUp, false
}

// ParseAction resolves a config action name, case-insensitive
func ParseAction(name string) (Action, error) {
	a, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}
