package terminal

import (
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	return detectColorMode(os.Getenv)
}

func detectColorMode(getenv func(string) string) ColorMode {
	colorterm := getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	for _, v := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID", "ALACRITTY_WINDOW_ID", "WEZTERM_PANE"} {
		if getenv(v) != "" {
			return ColorModeTrueColor
		}
	}

	term := strings.ToLower(getenv("TERM"))
	if strings.Contains(term, "truecolor") ||
		strings.Contains(term, "24bit") ||
		strings.Contains(term, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// Color cube levels for the 6x6x6 palette (indices 16-231)
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// grayscaleStart is the first grayscale index (232-255 = 24 shades)
const grayscaleStart = 232

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func nearestCube(v uint8) int {
	best, bestDist := 0, 256
	for j, c := range cubeValues {
		if d := abs(int(v) - int(c)); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

// RGBTo256 finds the nearest xterm-256 index, choosing between the colour cube and the gray ramp
func RGBTo256(r, g, b uint8) uint8 {
	cr, cg, cb := nearestCube(r), nearestCube(g), nearestCube(b)
	cubeIdx := uint8(16 + 36*cr + 6*cg + cb)
	cubeDist := abs(int(r)-int(cubeValues[cr])) + abs(int(g)-int(cubeValues[cg])) + abs(int(b)-int(cubeValues[cb]))

	gray := (int(r) + int(g) + int(b)) / 3
	step := (gray - 8 + 5) / 10
	if step < 0 {
		step = 0
	}
	if step > 23 {
		step = 23
	}
	level := 8 + step*10
	grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)

	if grayDist < cubeDist {
		return uint8(grayscaleStart + step)
	}
	return cubeIdx
}

// Color maps a palette colour to a tcell colour for the given mode
func Color(c colorful.Color, mode ColorMode) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	if mode == ColorModeTrueColor {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(RGBTo256(r, g, b)))
}
