package component

import (
	"math"
	"testing"

	"github.com/lixenwraith/vi-snake/core"
)

func TestFoodKindFromDraw(t *testing.T) {
	tests := []struct {
		draw   float64
		kind   FoodKind
		reward int
	}{
		{0.0, FoodCommon, 1},
		{0.49, FoodCommon, 1},
		{0.5, FoodRare, 2},
		{0.79, FoodRare, 2},
		{0.8, FoodEpic, 3},
		{0.81, FoodEpic, 3},
		{0.999, FoodEpic, 3},
	}

	for _, tt := range tests {
		kind := FoodKindFromDraw(tt.draw)
		if kind != tt.kind {
			t.Errorf("FoodKindFromDraw(%v) = %v, want %v", tt.draw, kind, tt.kind)
		}
		if kind.Reward() != tt.reward {
			t.Errorf("%v.Reward() = %d, want %d", kind, kind.Reward(), tt.reward)
		}
	}
}

func TestFoodKindProbabilitiesSumToOne(t *testing.T) {
	sum := 0.0
	for _, k := range FoodKinds {
		sum += k.Probability()
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}
	if FoodEpic.Probability() < 0.19 || FoodEpic.Probability() > 0.21 {
		t.Errorf("Epic probability = %v, want 0.2", FoodEpic.Probability())
	}
}

func TestNewSnakeBody(t *testing.T) {
	body := NewSnakeBody(core.Point{X: 5, Y: 5}, core.DirRight, 3)
	want := SnakeBody{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	if body.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", body.Len(), len(want))
	}
	for i := range want {
		if body[i] != want[i] {
			t.Errorf("body[%d] = %v, want %v", i, body[i], want[i])
		}
	}
	if body.Head() != want[0] || body.Tail() != want[2] {
		t.Errorf("Head/Tail = %v/%v, want %v/%v", body.Head(), body.Tail(), want[0], want[2])
	}
	if !body.Contains(core.Point{X: 4, Y: 5}) {
		t.Error("Contains should report interior segment")
	}
	if body.Contains(core.Point{X: 6, Y: 5}) {
		t.Error("Contains should not report free cell")
	}

	single := NewSnakeBody(core.Point{X: 1, Y: 1}, core.DirUp, 0)
	if single.Len() != 1 {
		t.Errorf("length below one should clamp to 1, got %d", single.Len())
	}
}

func TestSnakeBodyCloneIsIndependent(t *testing.T) {
	body := NewSnakeBody(core.Point{X: 2, Y: 2}, core.DirDown, 2)
	clone := body.Clone()
	clone[0] = core.Point{X: 9, Y: 9}
	if body[0] == clone[0] {
		t.Error("Clone shares backing array with original")
	}
}
