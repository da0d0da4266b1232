package render

import (
	"github.com/lixenwraith/vi-snake/core"
)

// Layout maps grid cells to pixel coordinates
type Layout struct {
	CellSize float64
	OriginX  float64
	OriginY  float64
}

// CellCenter returns the pixel centre of cell p
func (l Layout) CellCenter(p core.Point) (x, y float64) {
	return l.OriginX + (float64(p.X)+0.5)*l.CellSize, l.OriginY + (float64(p.Y)+0.5)*l.CellSize
}

// PixelToCell inverts CellCenter; any pixel inside a cell maps to that cell
func (l Layout) PixelToCell(x, y float64) core.Point {
	return core.Point{
		X: floorDiv(x-l.OriginX, l.CellSize),
		Y: floorDiv(y-l.OriginY, l.CellSize),
	}
}

// Size returns the playfield extent in pixels
func (l Layout) Size(width, height int) (w, h float64) {
	return float64(width) * l.CellSize, float64(height) * l.CellSize
}

func floorDiv(v, size float64) int {
	q := v / size
	i := int(q)
	if q < 0 && float64(i) != q {
		i--
	}
	return i
}
