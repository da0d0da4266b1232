package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vi-snake.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Backend() != render.BackendAuto {
		t.Errorf("Backend() = %v, want auto", cfg.Backend())
	}
	if cfg.Grid.Width != 0 || cfg.Grid.Height != 0 {
		t.Errorf("default grid %dx%d, want random (0x0)", cfg.Grid.Width, cfg.Grid.Height)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
[grid]
width = 30
height = 20
cell_size = 16
food_margin = 1

[timing]
tick_interval = "80ms"
time_limit = "0s"

[render]
backend = "software"
pulse_speed = 4.5

[assets]
dir = "sprites"

[audio]
enabled = false

[keys]
pause = ["enter"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Grid.Width != 30 || cfg.Grid.Height != 20 || cfg.Grid.CellSize != 16 {
		t.Errorf("grid = %+v", cfg.Grid)
	}
	if cfg.Timing.TickInterval != 80*time.Millisecond {
		t.Errorf("TickInterval = %v, want 80ms", cfg.Timing.TickInterval)
	}
	if cfg.Timing.TimeLimit != 0 {
		t.Errorf("TimeLimit = %v, want 0", cfg.Timing.TimeLimit)
	}
	// Unset fields keep defaults
	if cfg.Timing.FrameInterval != Default().Timing.FrameInterval {
		t.Errorf("FrameInterval = %v, want default", cfg.Timing.FrameInterval)
	}
	if cfg.Backend() != render.BackendSoftware {
		t.Errorf("Backend() = %v, want software", cfg.Backend())
	}
	if cfg.Assets.Dir != "sprites" {
		t.Errorf("Assets.Dir = %q, want sprites", cfg.Assets.Dir)
	}
	if cfg.AudioConfig().Enabled {
		t.Error("AudioConfig().Enabled = true, want false")
	}

	km, err := cfg.Keymap()
	if err != nil {
		t.Fatalf("Keymap: %v", err)
	}
	if a, ok := km.Lookup("enter"); !ok || a != input.ActionPause {
		t.Errorf("enter = %v, %v, want pause", a, ok)
	}

	sc := cfg.SessionConfig(cfg.Bounds(nil))
	if sc.Bounds.Width != 30 || sc.Bounds.Height != 20 || sc.FoodMargin != 1 || sc.TimeLimit != 0 {
		t.Errorf("SessionConfig = %+v", sc)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "[grid]\nwidht = 10\n")
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load err = %v, want ErrInvalidConfig", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load err = %v, want not-exist", err)
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Grid.CellSize = 0
	cfg.Timing.TickInterval = 0
	cfg.Render.Backend = "vulkan"
	cfg.Audio.Volume = 2
	cfg.Keys = map[string][]string{"fly": {"f"}}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
	}
	if !errors.Is(err, render.ErrUnknownBackend) {
		t.Errorf("Validate() = %v, want wrapped ErrUnknownBackend", err)
	}
	if !errors.Is(err, input.ErrUnknownAction) {
		t.Errorf("Validate() = %v, want wrapped ErrUnknownAction", err)
	}

	msg := err.Error()
	for _, field := range []string{"cell_size", "tick_interval", "render.backend", "audio.volume"} {
		if !strings.Contains(msg, field) {
			t.Errorf("error %q does not mention %s", msg, field)
		}
	}
}

func TestValidateGridPairs(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		margin        int
		ok            bool
	}{
		{"random", 0, 0, 0, true},
		{"fixed", 20, 15, 0, true},
		{"width only", 20, 0, 0, false},
		{"margin too wide", 4, 10, 2, false},
		{"margin fits", 5, 10, 2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.Grid.Width, cfg.Grid.Height, cfg.Grid.FoodMargin = tt.width, tt.height, tt.margin
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := applyEnv(cfg, envMap(map[string]string{
		EnvWidth:        "40",
		EnvHeight:       "25",
		EnvTickInterval: "50ms",
		EnvBackend:      "terminal",
		EnvAudioEnabled: "0",
		EnvMasterVolume: "75",
	}))
	if err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 25 {
		t.Errorf("grid = %dx%d, want 40x25", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Timing.TickInterval != 50*time.Millisecond {
		t.Errorf("TickInterval = %v, want 50ms", cfg.Timing.TickInterval)
	}
	if cfg.Render.Backend != "terminal" {
		t.Errorf("Backend = %q, want terminal", cfg.Render.Backend)
	}
	if cfg.Audio.Enabled {
		t.Error("Audio.Enabled = true, want false")
	}
	if cfg.Audio.Volume != 0.75 {
		t.Errorf("Volume = %v, want 0.75", cfg.Audio.Volume)
	}
}

func TestApplyEnvVolumeClamp(t *testing.T) {
	tests := []struct {
		value string
		want  float64
	}{
		{"-50", 0},
		{"0", 0},
		{"100", 1},
		{"150", 1},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg := Default()
			if err := applyEnv(cfg, envMap(map[string]string{EnvMasterVolume: tt.value})); err != nil {
				t.Fatalf("applyEnv: %v", err)
			}
			if cfg.Audio.Volume != tt.want {
				t.Errorf("Volume = %v, want %v", cfg.Audio.Volume, tt.want)
			}
		})
	}
}

func TestApplyEnvInvalid(t *testing.T) {
	for _, name := range []string{EnvWidth, EnvTickInterval, EnvAudioEnabled, EnvMasterVolume} {
		t.Run(name, func(t *testing.T) {
			err := applyEnv(Default(), envMap(map[string]string{name: "bogus"}))
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("applyEnv(%s=bogus) = %v, want ErrInvalidConfig", name, err)
			}
		})
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[grid]\nwidth = 30\nheight = 20\n")
	t.Setenv(EnvWidth, "50")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Width != 50 {
		t.Errorf("Width = %d, want 50 from environment", cfg.Grid.Width)
	}
}

func TestWriteDecodesBack(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Write(&buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got := Default()
	got.Timing = Timing{}
	if _, err := toml.Decode(buf.String(), got); err != nil {
		t.Fatalf("decode written config: %v\n%s", err, buf.String())
	}
	if got.Timing != Default().Timing {
		t.Errorf("timing = %+v, want %+v", got.Timing, Default().Timing)
	}
}
