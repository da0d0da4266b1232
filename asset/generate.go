package asset

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/render"
)

// Generate draws a placeholder sprite for name at size by size pixels
// Orientation follows the sprite convention: heads, bodies and tails face down, turns join up and right
func Generate(name string, size int, p render.Palette) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	band := s * 0.7
	lo := (s - band) / 2

	switch {
	case strings.HasPrefix(name, "head_"):
		frame := name[len(name)-1] - '0'
		head := render.RGBA(p.Head)
		fillRect(img, lo, 0, lo+band, s*0.85, head)
		fillCircle(img, s/2, s*0.55, band/2, head)
		eye := color.RGBA{0xff, 0xff, 0xff, 0xff}
		fillCircle(img, s*0.35, s*0.6, s*0.08, eye)
		fillCircle(img, s*0.65, s*0.6, s*0.08, eye)
		if frame%2 == 1 {
			fillRect(img, s*0.45, s*0.85, s*0.55, s, color.RGBA{0xe0, 0x20, 0x30, 0xff})
		}
	case name == NameBody:
		fillRect(img, lo, 0, lo+band, s, render.RGBA(p.Body))
	case name == NameTurn:
		c := render.RGBA(p.Body)
		fillRect(img, lo, 0, lo+band, lo+band, c)
		fillRect(img, lo, lo, s, lo+band, c)
	case name == NameTail:
		fillTriangle(img, lo, 0, lo+band, 0, s/2, s*0.9, render.RGBA(p.Tail))
	case strings.HasPrefix(name, "food_"):
		kind := component.FoodCommon
		for _, k := range component.FoodKinds {
			if name == FoodName(k) {
				kind = k
			}
		}
		fillCircle(img, s/2, s/2, s*0.4, render.RGBA(p.FoodColor(kind)))
	default:
		draw.Draw(img, img.Bounds(), &image.Uniform{C: color.RGBA{0xff, 0x00, 0xff, 0xff}}, image.Point{}, draw.Src)
	}
	return img
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 float64, c color.RGBA) {
	r := image.Rect(int(math.Round(x0)), int(math.Round(y0)), int(math.Round(x1)), int(math.Round(y1)))
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{C: c}, image.Point{}, draw.Src)
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			if dx*dx+dy*dy <= r*r {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// fillTriangle fills pixels whose centres lie inside the triangle
func fillTriangle(img *image.RGBA, ax, ay, bx, by, cx, cy float64, c color.RGBA) {
	edge := func(px, py, qx, qy, x, y float64) float64 {
		return (qx-px)*(y-py) - (qy-py)*(x-px)
	}
	area := edge(ax, ay, bx, by, cx, cy)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(bx, by, cx, cy, px, py) * area
			w1 := edge(cx, cy, ax, ay, px, py) * area
			w2 := edge(ax, ay, bx, by, px, py) * area
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				img.SetRGBA(x, y, c)
			}
		}
	}
}
