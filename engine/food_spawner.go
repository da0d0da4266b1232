package engine

import (
	"errors"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/core"
)

// ErrBoardSaturated is returned when no legal cell is free for food
var ErrBoardSaturated = errors.New("board saturated: no free cell for food")

// FoodSpawner places food on free cells and picks its reward kind
type FoodSpawner struct {
	rng         Rand
	margin      int
	maxAttempts int
}

// NewFoodSpawner creates a spawner keeping food margin cells away from the walls
func NewFoodSpawner(rng Rand, margin int) *FoodSpawner {
	if margin < 0 {
		margin = 0
	}
	return &FoodSpawner{
		rng:         rng,
		margin:      margin,
		maxAttempts: constant.MaxPlacementAttempts,
	}
}

// Place picks a uniformly random free cell inside [margin, dim-margin) on both axes
// Rejection sampling runs for a bounded number of attempts, then falls back to
// scanning every legal cell; ErrBoardSaturated means the snake fills the legal area
func (s *FoodSpawner) Place(b Bounds, body component.SnakeBody) (component.Food, error) {
	minX, maxX := s.margin, b.Width-s.margin
	minY, maxY := s.margin, b.Height-s.margin
	if maxX <= minX || maxY <= minY {
		return component.Food{}, ErrBoardSaturated
	}

	for i := 0; i < s.maxAttempts; i++ {
		p := core.Point{
			X: minX + s.rng.Intn(maxX-minX),
			Y: minY + s.rng.Intn(maxY-minY),
		}
		if !body.Contains(p) {
			return component.Food{Pos: p, Kind: s.drawKind()}, nil
		}
	}

	free := freeCells(core.Point{X: minX, Y: minY}, Bounds{Width: maxX - minX, Height: maxY - minY}, body)
	if len(free) == 0 {
		return component.Food{}, ErrBoardSaturated
	}
	p := free[s.rng.Intn(len(free))]
	return component.Food{Pos: p, Kind: s.drawKind()}, nil
}

// drawKind runs after position selection and is independent of it
func (s *FoodSpawner) drawKind() component.FoodKind {
	return component.FoodKindFromDraw(s.rng.Float64())
}

// freeCells lists unoccupied cells of the legal area at origin, in row-major order
func freeCells(origin core.Point, area Bounds, body component.SnakeBody) []core.Point {
	occupied := make([]bool, area.Cells())
	for _, seg := range body {
		x, y := seg.X-origin.X, seg.Y-origin.Y
		if area.Contains(core.Point{X: x, Y: y}) {
			occupied[y*area.Width+x] = true
		}
	}

	free := make([]core.Point, 0, len(occupied))
	for i, taken := range occupied {
		if !taken {
			free = append(free, core.Point{X: origin.X + i%area.Width, Y: origin.Y + i/area.Width})
		}
	}
	return free
}
