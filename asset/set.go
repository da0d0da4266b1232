package asset

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/render"
)

// Sprite names double as file stems under the asset directory
const (
	NameBody = "body"
	NameTurn = "turn"
	NameTail = "tail"
)

// HeadName returns the name of head animation frame i
func HeadName(i int) string {
	return fmt.Sprintf("head_%d", i)
}

// FoodName returns the name of the sprite for a food kind
func FoodName(k component.FoodKind) string {
	return "food_" + strings.ToLower(k.String())
}

// Set holds every texture the renderer draws
type Set struct {
	Head [constant.HeadFrames]*Texture
	Body *Texture
	Turn *Texture
	Tail *Texture
	Food [3]*Texture
}

// NewSet creates unready textures for every sprite
func NewSet() *Set {
	s := &Set{
		Body: NewTexture(NameBody),
		Turn: NewTexture(NameTurn),
		Tail: NewTexture(NameTail),
	}
	for i := range s.Head {
		s.Head[i] = NewTexture(HeadName(i))
	}
	for _, k := range component.FoodKinds {
		s.Food[k] = NewTexture(FoodName(k))
	}
	return s
}

// All lists every texture in a stable order
func (s *Set) All() []*Texture {
	out := make([]*Texture, 0, len(s.Head)+3+len(s.Food))
	out = append(out, s.Head[:]...)
	out = append(out, s.Body, s.Turn, s.Tail)
	out = append(out, s.Food[:]...)
	return out
}

// ReadyCount returns how many textures are drawable
func (s *Set) ReadyCount() int {
	n := 0
	for _, t := range s.All() {
		if t.Ready() {
			n++
		}
	}
	return n
}

// SpriteSet adapts the set to the renderer's role table
func (s *Set) SpriteSet() *render.SpriteSet {
	rs := &render.SpriteSet{
		Head: make([]render.Texture, len(s.Head)),
		Body: s.Body,
		Turn: s.Turn,
		Tail: s.Tail,
	}
	for i, t := range s.Head {
		rs.Head[i] = t
	}
	for i, t := range s.Food {
		rs.Food[i] = t
	}
	return rs
}
