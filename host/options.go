package host

import (
	"time"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/status"
)

// Options is shared by the window and terminal hosts
type Options struct {
	Keymap            *input.Keymap
	HUD               *HUD
	Registry          *status.Registry
	Time              engine.TimeProvider
	CellSize          int           // Window host only
	FrameInterval     time.Duration // Terminal host only; ebiten paces the window
	HeadFrameInterval time.Duration
}

func (o *Options) defaults() {
	if o.Keymap == nil {
		o.Keymap = input.NewKeymap()
	}
	if o.HUD == nil {
		o.HUD = &HUD{}
	}
	if o.Registry == nil {
		o.Registry = status.NewRegistry()
	}
	if o.Time == nil {
		o.Time = engine.NewMonotonicTimeProvider()
	}
	if o.CellSize < 1 {
		o.CellSize = 1
	}
	if o.FrameInterval <= 0 {
		o.FrameInterval = constant.FrameInterval
	}
	if o.HeadFrameInterval <= 0 {
		o.HeadFrameInterval = constant.HeadFrameInterval
	}
}
