package engine

import (
	"testing"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

func TestSetDirectionRejectsReversal(t *testing.T) {
	m := NewGridModel(Bounds{10, 10}, pts(5, 5, 4, 5), core.DirRight)

	if m.SetDirection(core.DirLeft) {
		t.Error("SetDirection(Left) accepted while moving Right")
	}
	if _, ok := m.PendingDirection(); ok {
		t.Error("rejected direction left a pending value")
	}
	if !m.SetDirection(core.DirUp) {
		t.Fatal("SetDirection(Up) rejected")
	}
	// Reversal is judged against the active direction, not the buffered one
	if !m.SetDirection(core.DirDown) {
		t.Error("SetDirection(Down) rejected while active direction is Right")
	}
	if d, _ := m.PendingDirection(); d != core.DirDown {
		t.Errorf("pending = %v, want Down", d)
	}

	m.Tick(NewFoodSpawner(NewRand(1), 0))
	if m.Direction != core.DirDown {
		t.Errorf("Direction after tick = %v, want Down", m.Direction)
	}
	if m.Body.Head() != (core.Point{X: 5, Y: 6}) {
		t.Errorf("head = %v, want (5,6)", m.Body.Head())
	}
}

func TestTickEatsAndGrows(t *testing.T) {
	m := NewGridModel(Bounds{10, 10}, pts(5, 5, 4, 5), core.DirRight)
	m.Food = component.Food{Pos: core.Point{X: 6, Y: 5}, Kind: component.FoodRare}
	m.HasFood = true

	res := m.Tick(NewFoodSpawner(NewRand(5), 0))
	if !res.Ate || res.Eaten.Kind != component.FoodRare {
		t.Fatalf("Tick() = %+v, want Ate with rare food", res)
	}
	if m.Score != 2 {
		t.Errorf("Score = %d, want 2", m.Score)
	}
	if m.Body.Len() != 3 {
		t.Errorf("len after eat = %d, want 3", m.Body.Len())
	}
	if !m.HasFood || m.Body.Contains(m.Food.Pos) {
		t.Errorf("new food = %+v (HasFood %v), want free cell", m.Food, m.HasFood)
	}

	m.Food.Pos = core.Point{X: 0, Y: 0}
	m.Tick(NewFoodSpawner(NewRand(5), 0))
	if m.Body.Len() != 3 {
		t.Errorf("len one tick after eat = %d, want 3", m.Body.Len())
	}
	if m.Body.Head() != (core.Point{X: 7, Y: 5}) || m.Body.Tail() != (core.Point{X: 5, Y: 5}) {
		t.Errorf("body = %v, want head (7,5) tail (5,5)", m.Body)
	}
}

func TestTickCollisionEndsGame(t *testing.T) {
	m := NewGridModel(Bounds{4, 4}, pts(1, 1, 1, 2, 1, 3), core.DirUp)
	spawner := NewFoodSpawner(NewRand(1), 0)

	if res := m.Tick(spawner); res.Collided {
		t.Fatal("first tick collided")
	}
	res := m.Tick(spawner)
	if !res.Collided || m.Phase != PhaseOver || m.Reason != EndCollision {
		t.Fatalf("second tick = %+v phase %v reason %v, want collision", res, m.Phase, m.Reason)
	}

	ticks := m.Ticks
	if res := m.Tick(spawner); res.Advanced || m.Ticks != ticks {
		t.Error("Tick() advanced after game over")
	}
	if m.SetDirection(core.DirLeft) {
		t.Error("SetDirection accepted after game over")
	}
}

func TestTickBoardFullWins(t *testing.T) {
	// Margin 1 on a 3x3 board leaves only the centre legal; eating it leaves nothing for the next food
	m := NewGridModel(Bounds{3, 3}, pts(0, 1), core.DirRight)
	m.Food = component.Food{Pos: core.Point{X: 1, Y: 1}}
	m.HasFood = true

	res := m.Tick(NewFoodSpawner(NewRand(1), 1))
	if !res.Ate || !res.Saturated {
		t.Fatalf("Tick() = %+v, want Ate and Saturated", res)
	}
	if m.Phase != PhaseOver || m.Reason != EndBoardFull || !m.Reason.Won() {
		t.Errorf("phase %v reason %v, want Over/BoardFull", m.Phase, m.Reason)
	}
	if m.HasFood {
		t.Error("HasFood = true after game over")
	}
}

func TestTogglePause(t *testing.T) {
	m := NewGridModel(Bounds{10, 10}, pts(5, 5), core.DirRight)
	m.Food = component.Food{Pos: core.Point{X: 1, Y: 1}, Kind: component.FoodRare}
	m.HasFood = true
	spawner := NewFoodSpawner(NewRand(1), 0)

	if got := m.TogglePause(); got != PhasePaused {
		t.Fatalf("TogglePause() = %v, want Paused", got)
	}
	if !m.HasFood || m.Food.Pos != (core.Point{X: 1, Y: 1}) {
		t.Errorf("food while paused = %v %v, want kept", m.HasFood, m.Food.Pos)
	}
	if res := m.Tick(spawner); res.Advanced {
		t.Error("Tick() advanced while paused")
	}
	if got := m.TogglePause(); got != PhaseRunning {
		t.Errorf("TogglePause() = %v, want Running", got)
	}

	m.End(EndTimeUp)
	if m.HasFood {
		t.Error("HasFood = true after End")
	}
	if got := m.TogglePause(); got != PhaseOver {
		t.Errorf("TogglePause() after end = %v, want Over", got)
	}
	m.End(EndCollision)
	if m.Reason != EndTimeUp {
		t.Errorf("Reason = %v, want first reason kept", m.Reason)
	}
}

func TestRandomPlayStaysConsistent(t *testing.T) {
	rng := NewRand(2024)
	for game := 0; game < 50; game++ {
		s, err := NewSession(SessionConfig{Bounds: Bounds{8, 8}, InitialLength: 1}, rng, NewMockTimeProvider(testEpoch))
		if err != nil {
			t.Fatalf("NewSession() error = %v", err)
		}
		m := s.Model
		for step := 0; step < 400 && m.Phase == PhaseRunning; step++ {
			m.SetDirection(core.Directions[rng.Intn(4)])
			before := m.Body.Len()
			res := m.Tick(s.Spawner)
			if res.Collided {
				break
			}
			if m.Body.Len() < before {
				t.Fatalf("body shrank from %d to %d", before, m.Body.Len())
			}
			for i := 1; i < m.Body.Len(); i++ {
				if _, ok := m.Body[i-1].DirectionTo(m.Body[i]); !ok && m.Body[i-1] != m.Body[i] {
					t.Fatalf("segments %v and %v not adjacent", m.Body[i-1], m.Body[i])
				}
			}
			if m.HasFood && m.Body.Contains(m.Food.Pos) {
				t.Fatalf("food %v on body %v", m.Food.Pos, m.Body)
			}
		}
	}
}
