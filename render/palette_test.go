package render

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/vi-snake/component"
)

func TestPulseAmountRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		tm := float64(i) * 0.013
		a := PulseAmount(tm, 3, 0.25)
		if a < 0 || a > 0.25+1e-12 {
			t.Fatalf("PulseAmount(%v) = %v, want in [0,0.25]", tm, a)
		}
	}
	if got := PulseAmount(0, 3, 0.25); math.Abs(got-0.125) > 1e-12 {
		t.Errorf("PulseAmount(0) = %v, want 0.125", got)
	}
}

func TestPulseZeroDepthIsWhite(t *testing.T) {
	c := DefaultPalette.Pulse(1.7, 3, 0)
	if !c.AlmostEqualRgb(colorful.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("Pulse with zero depth = %v, want white", c.Hex())
	}
}

func TestFoodColors(t *testing.T) {
	want := []string{"#ff0000", "#ffff00", "#0000ff"}
	for i, k := range component.FoodKinds {
		if got := DefaultPalette.FoodColor(k).Hex(); got != want[i] {
			t.Errorf("FoodColor(%v) = %s, want %s", k, got, want[i])
		}
	}
	rgba := RGBA(DefaultPalette.FoodColor(component.FoodCommon))
	if rgba.R != 0xff || rgba.G != 0 || rgba.A != 0xff {
		t.Errorf("RGBA(common) = %+v", rgba)
	}
}
