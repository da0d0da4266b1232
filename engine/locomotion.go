package engine

import (
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// Advance moves the snake one cell in dir
// The new head is prepended and the last segment removed and returned, so the caller
// can compare against it to decide growth without rescanning the body
func Advance(body *component.SnakeBody, dir core.Direction) core.Point {
	b := *body
	removed := b[len(b)-1]
	copy(b[1:], b[:len(b)-1])
	b[0] = b[0].Add(dir)
	return removed
}

// Grow duplicates the tail so the next Advance nets no length change
// Must run in the tick that consumed food, before food placement reads the body
func Grow(body *component.SnakeBody) {
	*body = append(*body, body.Tail())
}
