package engine

import (
	"github.com/lixenwraith/vi-snake/core"
)

// Bounds is the playfield size in cells, fixed for one session
type Bounds struct {
	Width, Height int
}

// Contains reports whether p lies inside [0,Width)x[0,Height)
func (b Bounds) Contains(p core.Point) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Cells returns the total number of cells
func (b Bounds) Cells() int {
	return b.Width * b.Height
}

// RandomBounds draws a playfield whose pixel size lies in [minPx, maxPx] on each axis
func RandomBounds(rng Rand, minPx, maxPx, cellSize int) Bounds {
	if cellSize < 1 {
		cellSize = 1
	}
	span := maxPx - minPx + 1
	if span < 1 {
		span = 1
	}
	w := (minPx + rng.Intn(span)) / cellSize
	h := (minPx + rng.Intn(span)) / cellSize
	return Bounds{Width: w, Height: h}
}
