package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-snake/component"
)

// Palette holds the colours shared by procedural sprites, terminal glyphs and the pulse effect
type Palette struct {
	Background colorful.Color
	Grid       colorful.Color
	Head       colorful.Color
	Body       colorful.Color
	Tail       colorful.Color
	Food       [3]colorful.Color // Indexed by FoodKind
	Accent     colorful.Color    // Pulse target
	Text       colorful.Color
}

// DefaultPalette mirrors the original red, yellow and blue food colours
var DefaultPalette = Palette{
	Background: colorful.Color{R: 0.06, G: 0.07, B: 0.09},
	Grid:       colorful.Color{R: 0.12, G: 0.13, B: 0.16},
	Head:       mustHex("#4caf50"),
	Body:       mustHex("#388e3c"),
	Tail:       mustHex("#2e7d32"),
	Food: [3]colorful.Color{
		mustHex("#ff0000"),
		mustHex("#ffff00"),
		mustHex("#0000ff"),
	},
	Accent: mustHex("#ffd27f"),
	Text:   mustHex("#e0e0e0"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// FoodColor returns the colour of a food kind
func (p Palette) FoodColor(k component.FoodKind) colorful.Color {
	if int(k) < len(p.Food) {
		return p.Food[k]
	}
	return p.Food[0]
}

// PulseAmount is the tint blend factor at wall-clock time t seconds, in [0, depth]
func PulseAmount(t, speed, depth float64) float64 {
	return depth * (0.5 + 0.5*math.Sin(t*speed))
}

// Pulse returns the multiplicative tint at time t; the shader computes the same mix per fragment
func (p Palette) Pulse(t, speed, depth float64) colorful.Color {
	white := colorful.Color{R: 1, G: 1, B: 1}
	return white.BlendRgb(p.Accent, PulseAmount(t, speed, depth))
}

// RGBA converts to an opaque 8-bit colour
func RGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
