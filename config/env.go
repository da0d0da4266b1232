package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Environment variable names, applied after the config file
const (
	EnvWidth        = "VI_SNAKE_WIDTH"
	EnvHeight       = "VI_SNAKE_HEIGHT"
	EnvCellSize     = "VI_SNAKE_CELL_SIZE"
	EnvTickInterval = "VI_SNAKE_TICK_INTERVAL"
	EnvTimeLimit    = "VI_SNAKE_TIME_LIMIT"
	EnvBackend      = "VI_SNAKE_BACKEND"
	EnvAssetDir     = "VI_SNAKE_ASSET_DIR"
	EnvAudioEnabled = "VI_SNAKE_AUDIO_ENABLED"
	EnvMasterVolume = "VI_SNAKE_MASTER_VOLUME"
)

// applyEnv overlays set variables; volume is a percentage clamped to [0,100]
func applyEnv(cfg *Config, getenv func(string) string) error {
	var err error
	setInt := func(name string, dst *int) {
		v := strings.TrimSpace(getenv(name))
		if v == "" || err != nil {
			return
		}
		n, perr := strconv.Atoi(v)
		if perr != nil {
			err = fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, name, v, perr)
			return
		}
		*dst = n
	}
	setDuration := func(name string, dst *time.Duration) {
		v := strings.TrimSpace(getenv(name))
		if v == "" || err != nil {
			return
		}
		d, perr := time.ParseDuration(v)
		if perr != nil {
			err = fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, name, v, perr)
			return
		}
		*dst = d
	}

	setInt(EnvWidth, &cfg.Grid.Width)
	setInt(EnvHeight, &cfg.Grid.Height)
	setInt(EnvCellSize, &cfg.Grid.CellSize)
	setDuration(EnvTickInterval, &cfg.Timing.TickInterval)
	setDuration(EnvTimeLimit, &cfg.Timing.TimeLimit)
	if err != nil {
		return err
	}

	if v := strings.TrimSpace(getenv(EnvBackend)); v != "" {
		cfg.Render.Backend = v
	}
	if v := strings.TrimSpace(getenv(EnvAssetDir)); v != "" {
		cfg.Assets.Dir = v
	}

	if v := strings.TrimSpace(getenv(EnvAudioEnabled)); v != "" {
		enabled, perr := strconv.ParseBool(v)
		if perr != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvAudioEnabled, v, perr)
		}
		cfg.Audio.Enabled = enabled
	}

	if v := strings.TrimSpace(getenv(EnvMasterVolume)); v != "" {
		pct, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalidConfig, EnvMasterVolume, v, perr)
		}
		if pct < 0 {
			pct = 0
		} else if pct > 100 {
			pct = 100
		}
		cfg.Audio.Volume = pct / 100
	}

	return nil
}
