package constant

import "time"

// Game Loop Timing
const (
	// TickInterval is the fixed gameplay step; rendering is independent of it
	TickInterval = 100 * time.Millisecond

	// FrameInterval paces the terminal host's frame callback (~60 FPS)
	FrameInterval = 16 * time.Millisecond

	// TimeLimit is the countdown for one session; zero disables it
	TimeLimit = 120 * time.Second
)

// Playfield
const (
	// CellSize is the edge length of one grid cell in pixels
	CellSize = 20

	// RandomCanvasMin and RandomCanvasMax bound the pixel size drawn for a randomized playfield
	RandomCanvasMin = 400
	RandomCanvasMax = 1000

	// InitialLength is the number of segments a new snake starts with
	InitialLength = 1

	// FoodMargin keeps food this many cells away from each wall
	FoodMargin = 0

	// MaxPlacementAttempts bounds rejection sampling before the free-cell scan
	MaxPlacementAttempts = 64
)

// Visual Timing
const (
	// HeadFrameInterval is the period of one head animation frame
	HeadFrameInterval = 150 * time.Millisecond

	// HeadFrames is the number of head animation frames
	HeadFrames = 2

	// PulseSpeed is the angular speed of the tint pulse in radians per second
	PulseSpeed = 3.0

	// PulseDepth is the peak blend toward the accent colour
	PulseDepth = 0.25
)

// HUD
const (
	// HUDHeight is the pixel height of the score strip above the playfield
	HUDHeight = 20
)
