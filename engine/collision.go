package engine

import (
	"github.com/lixenwraith/vi-snake/component"
)

// CheckCollision reports a wall hit or the head overlapping any other segment
// Linear in snake length; no spatial index is kept at this board scale
func CheckCollision(body component.SnakeBody, b Bounds) bool {
	head := body.Head()
	if !b.Contains(head) {
		return true
	}
	for _, seg := range body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
