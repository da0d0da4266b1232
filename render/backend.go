package render

import "image"

// Texture is a drawable sprite image that may still be loading
type Texture interface {
	// Name identifies the sprite for caches and glyph lookup
	Name() string
	// Ready reports whether Image may be drawn
	Ready() bool
	// Image returns the decoded pixels; nil until Ready
	Image() image.Image
}

// Backend draws sprites for one frame
// One implementation is chosen at startup and kept for the process lifetime
type Backend interface {
	Name() string
	// Clear resets the target for a new frame
	Clear()
	// DrawBackground fills the playfield
	DrawBackground()
	// DrawSprite draws tex centred at (x,y) in pixels, scaled to w by h and rotated
	// clockwise by rotation radians about its centre
	DrawSprite(tex Texture, x, y, w, h, rotation float64)
}

// Presenter is optionally implemented by backends that flush at frame end
type Presenter interface {
	Present()
}

// Clocked is optionally implemented by backends with time-driven effects
// t is wall-clock seconds since the orchestrator was created
type Clocked interface {
	SetTime(t float64)
}
