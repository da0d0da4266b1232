package render

import (
	"time"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// Context is the per-frame input shared by all layers
type Context struct {
	Session *engine.Session
	Now     time.Time
	Elapsed float64 // Wall-clock seconds since the orchestrator started
	Sprites *SpriteSet
}

// SpriteSink receives cell-addressed sprites from layers
type SpriteSink interface {
	Sprite(tex Texture, cell core.Point, rotation float64)
}

// Layer is implemented by anything drawn from session state
type Layer interface {
	Render(ctx Context, out SpriteSink)
}

// SpriteSet binds sprite roles to textures
type SpriteSet struct {
	Head []Texture // Animation frames, cycled on wall-clock time
	Body Texture
	Turn Texture
	Tail Texture
	Food [3]Texture // Indexed by FoodKind
}

// Role returns the texture for an orientation; head frames are chosen by the caller
func (s *SpriteSet) Role(o Orientation) Texture {
	switch o.Role {
	case RoleTurn:
		return s.Turn
	case RoleTail:
		return s.Tail
	}
	return s.Body
}

// All lists every distinct texture, used by backend caches and asset loading
func (s *SpriteSet) All() []Texture {
	out := make([]Texture, 0, len(s.Head)+6)
	out = append(out, s.Head...)
	out = append(out, s.Body, s.Turn, s.Tail)
	out = append(out, s.Food[:]...)
	return out
}
