package component

import (
	"github.com/lixenwraith/vi-snake/core"
)

// SnakeBody is the ordered list of occupied cells, head at index 0
// Consecutive equal cells appear only at the tail, for one tick after growth
type SnakeBody []core.Point

// Len returns the number of segments, counting a pending growth duplicate
func (b SnakeBody) Len() int {
	return len(b)
}

// Head returns the first segment; body must be non-empty
func (b SnakeBody) Head() core.Point {
	return b[0]
}

// Tail returns the last segment; body must be non-empty
func (b SnakeBody) Tail() core.Point {
	return b[len(b)-1]
}

// Contains reports whether any segment occupies p
func (b SnakeBody) Contains(p core.Point) bool {
	for _, s := range b {
		if s == p {
			return true
		}
	}
	return false
}

// Clone returns an independent copy
func (b SnakeBody) Clone() SnakeBody {
	out := make(SnakeBody, len(b))
	copy(out, b)
	return out
}

// NewSnakeBody lays out length segments starting at head and trailing away from facing
func NewSnakeBody(head core.Point, facing core.Direction, length int) SnakeBody {
	if length < 1 {
		length = 1
	}
	body := make(SnakeBody, 0, length+1)
	back := facing.Opposite()
	p := head
	for i := 0; i < length; i++ {
		body = append(body, p)
		p = p.Add(back)
	}
	return body
}
