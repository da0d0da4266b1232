package backend

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/vi-snake/render"
)

// pulseShader samples the sprite and multiplies it by a tint that swings
// between white and Accent on wall-clock time
var pulseShader = []byte(`//kage:unit pixels

package main

var Time float
var Speed float
var Depth float
var Accent vec3

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	amount := Depth * (0.5 + 0.5*sin(Time*Speed))
	tint := mix(vec3(1), Accent, amount)
	return vec4(c.rgb*tint, c.a) * color
}
`)

// Shader is the accelerated backend: a Go vertex stage places the unit quad in
// clip space and the Kage fragment stage applies the pulse tint
type Shader struct {
	target   *ebiten.Image
	viewport render.Viewport
	shader   *ebiten.Shader
	cache    *imageCache
	palette  render.Palette

	vertices [4]ebiten.Vertex
	indices  []uint16
	opts     ebiten.DrawTrianglesShaderOptions
}

// NewShader compiles the pulse shader; an error means the accelerated path is unavailable
func NewShader(p render.Palette, pulseSpeed, pulseDepth float64) (*Shader, error) {
	sh, err := ebiten.NewShader(pulseShader)
	if err != nil {
		return nil, fmt.Errorf("compile pulse shader: %w", err)
	}

	s := &Shader{
		shader:  sh,
		cache:   newImageCache(),
		palette: p,
		indices: render.QuadIndices[:],
	}
	s.opts.Uniforms = map[string]any{
		"Time":   float32(0),
		"Speed":  float32(pulseSpeed),
		"Depth":  float32(pulseDepth),
		"Accent": []float32{float32(p.Accent.R), float32(p.Accent.G), float32(p.Accent.B)},
	}
	return s, nil
}

func (s *Shader) Name() string { return "shader" }

// SetTarget binds the frame's destination and derives the viewport from it
func (s *Shader) SetTarget(dst *ebiten.Image) {
	s.target = dst
	b := dst.Bounds()
	s.viewport = render.Viewport{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// SetTime implements render.Clocked
func (s *Shader) SetTime(t float64) {
	s.opts.Uniforms["Time"] = float32(t)
}

func (s *Shader) Clear() {
	if s.target != nil {
		s.target.Clear()
	}
}

func (s *Shader) DrawBackground() {
	if s.target != nil {
		s.target.Fill(render.RGBA(s.palette.Background))
	}
}

func (s *Shader) DrawSprite(tex render.Texture, x, y, w, h, rotation float64) {
	if s.target == nil {
		return
	}
	img := s.cache.get(tex)
	if img == nil {
		return
	}

	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	clip := render.SpriteQuad(s.viewport, x, y, w, h, rotation)
	for i := range clip {
		px := s.viewport.ToPixel(clip[i])
		uv := render.UnitQuadUV[i]
		s.vertices[i] = ebiten.Vertex{
			DstX:   float32(px.X),
			DstY:   float32(px.Y),
			SrcX:   float32(float64(b.Min.X) + uv.X*iw),
			SrcY:   float32(float64(b.Min.Y) + uv.Y*ih),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}

	s.opts.Images[0] = img
	s.target.DrawTrianglesShader(s.vertices[:], s.indices, s.shader, &s.opts)
}
