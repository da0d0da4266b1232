package backend

import (
	"fmt"
	"log"

	"github.com/lixenwraith/vi-snake/render"
)

// shaderFactory is replaced in tests to simulate a missing accelerated path
var shaderFactory = func(p render.Palette, speed, depth float64) (Window, error) {
	return NewShader(p, speed, depth)
}

// Probe selects the window backend once at startup
// Auto and shader try the accelerated path and fall back to software on failure
func Probe(kind render.BackendKind, p render.Palette, pulseSpeed, pulseDepth float64) (Window, error) {
	switch kind {
	case render.BackendSoftware:
		return NewSoftware(p, pulseSpeed, pulseDepth), nil
	case render.BackendAuto, render.BackendShader:
		w, err := shaderFactory(p, pulseSpeed, pulseDepth)
		if err == nil {
			return w, nil
		}
		log.Printf("[render] accelerated backend unavailable, using software: %v", err)
		return NewSoftware(p, pulseSpeed, pulseDepth), nil
	case render.BackendTerminal:
		return nil, fmt.Errorf("%w: %q is not a window backend", render.ErrUnknownBackend, kind)
	}
	return nil, fmt.Errorf("%w: %q", render.ErrUnknownBackend, kind)
}
