package backend

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-snake/asset"
	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

// Glyph is the character cell drawn for a sprite
// Runes are indexed by clockwise quarter turns from the unrotated sprite
type Glyph struct {
	Runes [4]rune
	Color colorful.Color
}

// QuarterTurn maps a rotation to the nearest clockwise quarter turn in [0,4)
func QuarterTurn(rotation float64) int {
	q := int(math.Round(rotation/(math.Pi/2))) % 4
	if q < 0 {
		q += 4
	}
	return q
}

// DefaultGlyphs covers every sprite name produced by the asset package
// Unrotated heads, bodies and tails face down; turns join up and right
func DefaultGlyphs(p render.Palette) map[string]Glyph {
	g := map[string]Glyph{
		asset.HeadName(0): {Runes: [4]rune{'▼', '◀', '▲', '▶'}, Color: p.Head},
		asset.HeadName(1): {Runes: [4]rune{'v', '<', '^', '>'}, Color: p.Head},
		asset.NameBody:    {Runes: [4]rune{'┃', '━', '┃', '━'}, Color: p.Body},
		asset.NameTurn:    {Runes: [4]rune{'┗', '┏', '┓', '┛'}, Color: p.Body},
		// A tail at rotation zero hangs below its predecessor, so the stub points up
		asset.NameTail: {Runes: [4]rune{'╹', '╺', '╻', '╸'}, Color: p.Tail},
	}
	for _, k := range component.FoodKinds {
		g[asset.FoodName(k)] = Glyph{Runes: [4]rune{'●', '●', '●', '●'}, Color: p.FoodColor(k)}
	}
	return g
}

// Terminal renders sprites as coloured glyphs, one screen cell per pixel unit
// Pair it with a layout whose cell size is 1 and whose origin is the playfield's top-left cell
type Terminal struct {
	screen tcell.Screen
	mode   terminal.ColorMode
	glyphs map[string]Glyph
	styles map[string]tcell.Style

	field      [4]int // x, y, w, h of the playfield in screen cells
	background tcell.Style
	grid       tcell.Style
}

// NewTerminal creates the glyph backend for an initialized screen
func NewTerminal(screen tcell.Screen, mode terminal.ColorMode, p render.Palette, glyphs map[string]Glyph) *Terminal {
	if glyphs == nil {
		glyphs = DefaultGlyphs(p)
	}
	bg := terminal.Color(p.Background, mode)
	t := &Terminal{
		screen:     screen,
		mode:       mode,
		glyphs:     glyphs,
		styles:     make(map[string]tcell.Style, len(glyphs)),
		background: tcell.StyleDefault.Background(bg),
		grid:       tcell.StyleDefault.Background(bg).Foreground(terminal.Color(p.Grid, mode)),
	}
	for name, g := range glyphs {
		t.styles[name] = tcell.StyleDefault.Background(bg).Foreground(terminal.Color(g.Color, mode))
	}
	return t
}

// SetPlayfield positions the w by h cell playfield at screen cell (x,y)
func (t *Terminal) SetPlayfield(x, y, w, h int) {
	t.field = [4]int{x, y, w, h}
}

func (t *Terminal) Name() string { return "terminal" }

func (t *Terminal) Clear() {
	t.screen.Clear()
}

// DrawBackground fills the playfield with faint grid dots
func (t *Terminal) DrawBackground() {
	x0, y0, w, h := t.field[0], t.field[1], t.field[2], t.field[3]
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			t.screen.SetContent(x, y, '·', nil, t.grid)
		}
	}
}

// DrawSprite places one glyph at the cell containing (x,y); size is ignored
func (t *Terminal) DrawSprite(tex render.Texture, x, y, w, h, rotation float64) {
	g, ok := t.glyphs[tex.Name()]
	if !ok {
		t.screen.SetContent(int(math.Floor(x)), int(math.Floor(y)), '?', nil, t.background)
		return
	}
	t.screen.SetContent(int(math.Floor(x)), int(math.Floor(y)), g.Runes[QuarterTurn(rotation)], nil, t.styles[tex.Name()])
}

// Present implements render.Presenter
func (t *Terminal) Present() {
	t.screen.Show()
}
