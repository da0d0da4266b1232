package render

import (
	"math"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// Role is the sprite kind of a segment
type Role uint8

const (
	RoleHead Role = iota
	RoleBody
	RoleTurn
	RoleTail
)

func (r Role) String() string {
	switch r {
	case RoleHead:
		return "Head"
	case RoleBody:
		return "Body"
	case RoleTurn:
		return "Turn"
	case RoleTail:
		return "Tail"
	}
	return "Unknown"
}

// TurnVariant names the two sides a turn segment connects
type TurnVariant uint8

const (
	TurnNone TurnVariant = iota
	TurnUpRight
	TurnRightDown
	TurnDownLeft
	TurnLeftUp
)

func (v TurnVariant) String() string {
	switch v {
	case TurnUpRight:
		return "UpRight"
	case TurnRightDown:
		return "RightDown"
	case TurnDownLeft:
		return "DownLeft"
	case TurnLeftUp:
		return "LeftUp"
	}
	return "None"
}

// Rotation of the turn sprite, whose art connects Up and Right at zero
func (v TurnVariant) Rotation() float64 {
	switch v {
	case TurnRightDown:
		return math.Pi / 2
	case TurnDownLeft:
		return math.Pi
	case TurnLeftUp:
		return -math.Pi / 2
	}
	return 0
}

// Orientation is the resolved sprite role and rotation of one segment
type Orientation struct {
	Role     Role
	Rotation float64
	Turn     TurnVariant
}

// DirectionRotation maps a facing to a sprite rotation
// Sprite art faces down; angles are clockwise in screen space
func DirectionRotation(d core.Direction) float64 {
	switch d {
	case core.DirUp:
		return math.Pi
	case core.DirRight:
		return -math.Pi / 2
	case core.DirLeft:
		return math.Pi / 2
	}
	return 0
}

// Resolve computes the orientation of body[i]; dir is the active direction
// Duplicate positions left by growth resolve against the nearest distinct neighbour
func Resolve(body component.SnakeBody, i int, dir core.Direction) Orientation {
	if i == 0 {
		return Orientation{Role: RoleHead, Rotation: DirectionRotation(dir)}
	}

	seg := body[i]
	prev, hasPrev := distinctNeighbour(body, i, -1)
	next, hasNext := distinctNeighbour(body, i, +1)

	toPrev, okPrev := core.Direction(0), false
	if hasPrev {
		toPrev, okPrev = seg.DirectionTo(prev)
	}

	if i == len(body)-1 {
		if !okPrev {
			return Orientation{Role: RoleTail, Rotation: DirectionRotation(dir)}
		}
		// Tail points away from its predecessor
		return Orientation{Role: RoleTail, Rotation: DirectionRotation(toPrev.Opposite())}
	}

	toNext, okNext := core.Direction(0), false
	if hasNext {
		toNext, okNext = seg.DirectionTo(next)
	}

	switch {
	case okPrev && okNext && toPrev.Horizontal() != toNext.Horizontal():
		v := turnVariant(toPrev, toNext)
		return Orientation{Role: RoleTurn, Rotation: v.Rotation(), Turn: v}
	case okPrev:
		return Orientation{Role: RoleBody, Rotation: DirectionRotation(toPrev)}
	case okNext:
		return Orientation{Role: RoleBody, Rotation: DirectionRotation(toNext.Opposite())}
	}
	return Orientation{Role: RoleBody, Rotation: DirectionRotation(dir)}
}

// ResolveBody resolves every segment into out, reusing its capacity
func ResolveBody(body component.SnakeBody, dir core.Direction, out []Orientation) []Orientation {
	out = out[:0]
	for i := range body {
		out = append(out, Resolve(body, i, dir))
	}
	return out
}

// distinctNeighbour walks from i in step direction to the first segment at a different cell
func distinctNeighbour(body component.SnakeBody, i, step int) (core.Point, bool) {
	for j := i + step; j >= 0 && j < len(body); j += step {
		if body[j] != body[i] {
			return body[j], true
		}
	}
	return core.Point{}, false
}

func turnVariant(a, b core.Direction) TurnVariant {
	has := func(d core.Direction) bool { return a == d || b == d }
	switch {
	case has(core.DirUp) && has(core.DirRight):
		return TurnUpRight
	case has(core.DirRight) && has(core.DirDown):
		return TurnRightDown
	case has(core.DirDown) && has(core.DirLeft):
		return TurnDownLeft
	}
	return TurnLeftUp
}
