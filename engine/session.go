package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// ErrInvalidBounds is returned when the playfield cannot hold the initial snake
var ErrInvalidBounds = errors.New("playfield too small for initial snake")

// SessionConfig holds the parameters fixed for one session
type SessionConfig struct {
	Bounds        Bounds
	InitialLength int
	FoodMargin    int
	TimeLimit     time.Duration // Zero disables the countdown
}

// Session is the explicit context of one game, replaced wholesale on restart
// Scheduler, renderer and hosts receive it instead of sharing globals
type Session struct {
	ID        string
	Model     *GridModel
	Spawner   *FoodSpawner
	Clock     *PausableClock
	TimeLimit time.Duration
}

// NewSession creates a model with a random start cell and direction and places the first food
func NewSession(cfg SessionConfig, rng Rand, tp TimeProvider) (*Session, error) {
	length := cfg.InitialLength
	if length < 1 {
		length = 1
	}
	b := cfg.Bounds
	if b.Width <= 2*length || b.Height <= 2*length {
		return nil, fmt.Errorf("%w: %dx%d for length %d", ErrInvalidBounds, b.Width, b.Height, length)
	}

	// Keeping the head length cells from every wall leaves room for the body and the first step
	dir := core.Directions[rng.Intn(len(core.Directions))]
	head := core.Point{
		X: length + rng.Intn(b.Width-2*length),
		Y: length + rng.Intn(b.Height-2*length),
	}

	model := NewGridModel(b, component.NewSnakeBody(head, dir, length), dir)
	spawner := NewFoodSpawner(rng, cfg.FoodMargin)

	food, err := spawner.Place(b, model.Body)
	if err != nil {
		return nil, fmt.Errorf("initial food: %w", err)
	}
	model.Food = food
	model.HasFood = true

	return NewSessionFromModel(model, spawner, tp, cfg.TimeLimit), nil
}

// NewSessionFromModel wraps a prepared model, used by tests and replays
func NewSessionFromModel(model *GridModel, spawner *FoodSpawner, tp TimeProvider, limit time.Duration) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Model:     model,
		Spawner:   spawner,
		Clock:     NewPausableClock(tp),
		TimeLimit: limit,
	}
}

// Remaining returns the countdown left; ok is false when no limit is set
func (s *Session) Remaining() (left time.Duration, ok bool) {
	if s.TimeLimit <= 0 {
		return 0, false
	}
	left = s.TimeLimit - s.Clock.Elapsed()
	if left < 0 {
		left = 0
	}
	return left, true
}

// TimeUp reports whether the countdown has expired
func (s *Session) TimeUp() bool {
	left, ok := s.Remaining()
	return ok && left == 0
}
