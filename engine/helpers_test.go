package engine

import (
	"time"

	"github.com/lixenwraith/vi-snake/component"
	"github.com/lixenwraith/vi-snake/core"
)

// scriptedRand replays fixed draws; exhausted scripts return 0
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func pts(xy ...int) component.SnakeBody {
	body := make(component.SnakeBody, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		body = append(body, core.Point{X: xy[i], Y: xy[i+1]})
	}
	return body
}

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
