package engine

import (
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// Phase is the gameplay phase of a session
type Phase uint8

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseOver:
		return "Over"
	}
	return "Unknown"
}

// EndReason records why a session reached PhaseOver
type EndReason uint8

const (
	EndNone EndReason = iota
	EndCollision
	EndBoardFull
	EndTimeUp
)

func (r EndReason) String() string {
	switch r {
	case EndNone:
		return "None"
	case EndCollision:
		return "Collision"
	case EndBoardFull:
		return "BoardFull"
	case EndTimeUp:
		return "TimeUp"
	}
	return "Unknown"
}

// Won reports whether the reason counts as a victory
func (r EndReason) Won() bool {
	return r == EndBoardFull
}

// GridModel is the complete gameplay state of one session
// Body is mutated only by Advance and Grow, through Tick
type GridModel struct {
	Bounds    Bounds
	Body      component.SnakeBody
	Direction core.Direction // Active direction, committed at tick start
	Food      component.Food
	HasFood   bool
	Score     int
	Phase     Phase
	Reason    EndReason
	Ticks     uint64

	pending    core.Direction
	hasPending bool
}

// TickResult describes what one Tick changed
type TickResult struct {
	Advanced  bool
	Removed   core.Point // Tail cell returned by Advance
	Ate       bool
	Eaten     component.Food
	Collided  bool
	Saturated bool
}

// NewGridModel creates a running model; food is placed separately by the session
func NewGridModel(b Bounds, body component.SnakeBody, dir core.Direction) *GridModel {
	return &GridModel{
		Bounds:    b,
		Body:      body,
		Direction: dir,
		Phase:     PhaseRunning,
	}
}

// SetDirection buffers d for the next tick
// Rejected when d reverses the active direction or the game is over
func (m *GridModel) SetDirection(d core.Direction) bool {
	if m.Phase == PhaseOver || d.Reverses(m.Direction) {
		return false
	}
	m.pending = d
	m.hasPending = true
	return true
}

// PendingDirection returns the buffered direction, if any
func (m *GridModel) PendingDirection() (core.Direction, bool) {
	return m.pending, m.hasPending
}

// TogglePause flips Running and Paused; Over is left unchanged
func (m *GridModel) TogglePause() Phase {
	switch m.Phase {
	case PhaseRunning:
		m.Phase = PhasePaused
	case PhasePaused:
		m.Phase = PhaseRunning
	}
	return m.Phase
}

// End moves the model to the terminal phase
func (m *GridModel) End(reason EndReason) {
	if m.Phase == PhaseOver {
		return
	}
	m.Phase = PhaseOver
	m.Reason = reason
	m.HasFood = false
	m.hasPending = false
}

// Tick runs one locomotion, collision, consumption and placement cycle
// No-op unless the phase is Running
func (m *GridModel) Tick(spawner *FoodSpawner) TickResult {
	var res TickResult
	if m.Phase != PhaseRunning {
		return res
	}

	if m.hasPending {
		m.Direction = m.pending
		m.hasPending = false
	}

	res.Removed = Advance(&m.Body, m.Direction)
	res.Advanced = true
	m.Ticks++

	if CheckCollision(m.Body, m.Bounds) {
		res.Collided = true
		m.End(EndCollision)
		return res
	}

	if m.HasFood && m.Body.Head() == m.Food.Pos {
		res.Ate = true
		res.Eaten = m.Food
		m.Score += m.Food.Kind.Reward()
		Grow(&m.Body)

		food, err := spawner.Place(m.Bounds, m.Body)
		if err != nil {
			res.Saturated = true
			m.End(EndBoardFull)
			return res
		}
		m.Food = food
	}

	return res
}
