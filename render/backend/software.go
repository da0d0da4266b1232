package backend

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-snake/render"
)

// Software draws each sprite with an immediate transform stack converted to a GeoM
// The pulse tint is applied per sprite through ColorScale
type Software struct {
	target  *ebiten.Image
	cache   *imageCache
	stack   *render.TransformStack
	palette render.Palette

	pulseSpeed float64
	pulseDepth float64
	tint       colorful.Color

	op ebiten.DrawImageOptions
}

// NewSoftware creates the fallback backend; it cannot fail
func NewSoftware(p render.Palette, pulseSpeed, pulseDepth float64) *Software {
	return &Software{
		cache:      newImageCache(),
		stack:      render.NewTransformStack(),
		palette:    p,
		pulseSpeed: pulseSpeed,
		pulseDepth: pulseDepth,
		tint:       colorful.Color{R: 1, G: 1, B: 1},
	}
}

func (s *Software) Name() string { return "software" }

func (s *Software) SetTarget(dst *ebiten.Image) {
	s.target = dst
}

// SetTime implements render.Clocked
func (s *Software) SetTime(t float64) {
	s.tint = s.palette.Pulse(t, s.pulseSpeed, s.pulseDepth)
}

func (s *Software) Clear() {
	if s.target != nil {
		s.target.Clear()
	}
}

func (s *Software) DrawBackground() {
	if s.target != nil {
		s.target.Fill(render.RGBA(s.palette.Background))
	}
}

func (s *Software) DrawSprite(tex render.Texture, x, y, w, h, rotation float64) {
	if s.target == nil {
		return
	}
	img := s.cache.get(tex)
	if img == nil {
		return
	}

	b := img.Bounds()
	m := render.SpriteTransform(s.stack, float64(b.Dx()), float64(b.Dy()), x, y, w, h, rotation)

	s.op.GeoM.Reset()
	s.op.GeoM.SetElement(0, 0, m.A)
	s.op.GeoM.SetElement(0, 1, m.B)
	s.op.GeoM.SetElement(0, 2, m.TX)
	s.op.GeoM.SetElement(1, 0, m.C)
	s.op.GeoM.SetElement(1, 1, m.D)
	s.op.GeoM.SetElement(1, 2, m.TY)

	s.op.ColorScale.Reset()
	s.op.ColorScale.Scale(float32(s.tint.R), float32(s.tint.G), float32(s.tint.B), 1)
	s.op.Filter = ebiten.FilterLinear

	s.target.DrawImage(img, &s.op)
}
