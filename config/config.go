package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Grid configures the playfield; zero width or height draws a random size per session
type Grid struct {
	Width         int `toml:"width"`
	Height        int `toml:"height"`
	CellSize      int `toml:"cell_size"`
	FoodMargin    int `toml:"food_margin"`
	InitialLength int `toml:"initial_length"`
}

// Timing holds the fixed tick, the terminal frame pacing and the countdown
type Timing struct {
	TickInterval  time.Duration `toml:"tick_interval"`
	FrameInterval time.Duration `toml:"frame_interval"`
	TimeLimit     time.Duration `toml:"time_limit"`
}

// Render selects the backend and animation parameters
type Render struct {
	Backend           string        `toml:"backend"`
	PulseSpeed        float64       `toml:"pulse_speed"`
	PulseDepth        float64       `toml:"pulse_depth"`
	HeadFrameInterval time.Duration `toml:"head_frame_interval"`
}

// Assets points at the sprite directory; empty generates every sprite
type Assets struct {
	Dir string `toml:"dir"`
}

// Audio toggles cues and sets the master volume in [0,1]
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// Config is the complete runtime configuration
type Config struct {
	Grid   Grid                `toml:"grid"`
	Timing Timing              `toml:"timing"`
	Render Render              `toml:"render"`
	Assets Assets              `toml:"assets"`
	Audio  Audio               `toml:"audio"`
	Keys   map[string][]string `toml:"keys"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Grid: Grid{
			CellSize:      constant.CellSize,
			FoodMargin:    constant.FoodMargin,
			InitialLength: constant.InitialLength,
		},
		Timing: Timing{
			TickInterval:  constant.TickInterval,
			FrameInterval: constant.FrameInterval,
			TimeLimit:     constant.TimeLimit,
		},
		Render: Render{
			Backend:           string(render.BackendAuto),
			PulseSpeed:        constant.PulseSpeed,
			PulseDepth:        constant.PulseDepth,
			HeadFrameInterval: constant.HeadFrameInterval,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// Load reads an optional TOML file over the defaults, then applies VI_SNAKE_* overrides
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalidConfig, path, undecoded[0].String())
		}
	}

	if err := applyEnv(cfg, os.Getenv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	g := c.Grid
	if g.Width < 0 || g.Height < 0 {
		bad("grid size %dx%d is negative", g.Width, g.Height)
	}
	if g.CellSize < 1 {
		bad("grid.cell_size %d must be positive", g.CellSize)
	}
	if g.InitialLength < 1 {
		bad("grid.initial_length %d must be positive", g.InitialLength)
	}
	if g.FoodMargin < 0 {
		bad("grid.food_margin %d is negative", g.FoodMargin)
	}
	if g.Width > 0 && g.Width <= 2*(g.FoodMargin) {
		bad("grid.food_margin %d leaves no room in width %d", g.FoodMargin, g.Width)
	}
	if g.Height > 0 && g.Height <= 2*(g.FoodMargin) {
		bad("grid.food_margin %d leaves no room in height %d", g.FoodMargin, g.Height)
	}
	if (g.Width > 0) != (g.Height > 0) {
		bad("grid width and height must both be set or both be zero")
	}

	t := c.Timing
	if t.TickInterval <= 0 {
		bad("timing.tick_interval %v must be positive", t.TickInterval)
	}
	if t.FrameInterval <= 0 {
		bad("timing.frame_interval %v must be positive", t.FrameInterval)
	}
	if t.TimeLimit < 0 {
		bad("timing.time_limit %v is negative", t.TimeLimit)
	}

	if _, err := render.ParseBackendKind(c.Render.Backend); err != nil {
		errs = append(errs, fmt.Errorf("%w: render.backend: %w", ErrInvalidConfig, err))
	}
	if c.Render.PulseDepth < 0 || c.Render.PulseDepth > 1 {
		bad("render.pulse_depth %g outside [0,1]", c.Render.PulseDepth)
	}
	if c.Render.HeadFrameInterval <= 0 {
		bad("render.head_frame_interval %v must be positive", c.Render.HeadFrameInterval)
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		bad("audio.volume %g outside [0,1]", c.Audio.Volume)
	}

	if _, err := input.ParseBindings(c.Keys); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidConfig, err))
	}

	return errors.Join(errs...)
}

// Keymap builds the key bindings; call after Validate
func (c *Config) Keymap() (*input.Keymap, error) {
	return input.ParseBindings(c.Keys)
}

// Backend returns the parsed backend kind
func (c *Config) Backend() render.BackendKind {
	k, err := render.ParseBackendKind(c.Render.Backend)
	if err != nil {
		return render.BackendAuto
	}
	return k
}

// Bounds returns the configured playfield, or a random one sized in pixels when width or height is zero
func (c *Config) Bounds(rng engine.Rand) engine.Bounds {
	if c.Grid.Width > 0 && c.Grid.Height > 0 {
		return engine.Bounds{Width: c.Grid.Width, Height: c.Grid.Height}
	}
	return engine.RandomBounds(rng, constant.RandomCanvasMin, constant.RandomCanvasMax, c.Grid.CellSize)
}

// SessionConfig derives the per-session parameters for the given bounds
func (c *Config) SessionConfig(b engine.Bounds) engine.SessionConfig {
	return engine.SessionConfig{
		Bounds:        b,
		InitialLength: c.Grid.InitialLength,
		FoodMargin:    c.Grid.FoodMargin,
		TimeLimit:     c.Timing.TimeLimit,
	}
}

// AudioConfig converts the [audio] section for the sound manager
func (c *Config) AudioConfig() *audio.Config {
	ac := audio.DefaultConfig()
	ac.Enabled = c.Audio.Enabled
	ac.Volume = c.Audio.Volume
	return ac
}

// Write encodes the configuration as TOML
func (c *Config) Write(w io.Writer) error {
	enc := toml.NewEncoder(w)
	enc.Indent = ""
	return enc.Encode(c)
}
