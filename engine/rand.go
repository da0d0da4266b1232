package engine

import (
	"time"

	"golang.org/x/exp/rand"
)

// Rand is the randomness consumed by session setup and food placement
type Rand interface {
	// Intn returns a uniform value in [0,n)
	Intn(n int) int
	// Float64 returns a uniform value in [0,1)
	Float64() float64
}

// NewRand returns a PCG-backed generator; seed 0 seeds from the wall clock
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}
