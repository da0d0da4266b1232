package render

import (
	"time"
)

// FoodLayer draws the current food item
type FoodLayer struct{}

func (FoodLayer) Render(ctx Context, out SpriteSink) {
	m := ctx.Session.Model
	if !m.HasFood {
		return
	}
	out.Sprite(ctx.Sprites.Food[m.Food.Kind], m.Food.Pos, 0)
}

// SnakeLayer resolves orientations every frame and draws tail first so the head stays on top
type SnakeLayer struct {
	headFrameInterval time.Duration
	orient            []Orientation
}

// NewSnakeLayer creates a snake layer cycling head frames at the given interval
func NewSnakeLayer(headFrameInterval time.Duration) *SnakeLayer {
	return &SnakeLayer{
		headFrameInterval: headFrameInterval,
		orient:            make([]Orientation, 0, 64),
	}
}

func (l *SnakeLayer) Render(ctx Context, out SpriteSink) {
	m := ctx.Session.Model
	l.orient = ResolveBody(m.Body, m.Direction, l.orient)

	for i := len(l.orient) - 1; i >= 0; i-- {
		o := l.orient[i]
		tex := ctx.Sprites.Role(o)
		if o.Role == RoleHead {
			tex = l.headFrame(ctx)
		}
		out.Sprite(tex, m.Body[i], o.Rotation)
	}
}

// headFrame picks the animation frame from wall-clock time, independent of ticks
func (l *SnakeLayer) headFrame(ctx Context) Texture {
	frames := ctx.Sprites.Head
	if len(frames) == 0 {
		return nil
	}
	if l.headFrameInterval <= 0 || len(frames) == 1 {
		return frames[0]
	}
	n := int(ctx.Elapsed / l.headFrameInterval.Seconds())
	return frames[n%len(frames)]
}
