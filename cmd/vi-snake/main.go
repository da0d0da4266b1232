package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/lixenwraith/vi-snake/asset"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/host"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/render/backend"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	configFlag  = flag.String("config", "", "Path to a TOML config file")
	backendFlag = flag.String("backend", "", "Render backend: auto, shader, software, terminal")
	debugFlag   = flag.Bool("debug", false, "Write logs to logs/vi-snake.log")
	seedFlag    = flag.Uint64("seed", 0, "Random seed; 0 seeds from the clock")
	termFlag    = flag.Bool("term", false, "Play in the terminal instead of a window")
	dumpFlag    = flag.Bool("dump-config", false, "Print the effective config as TOML and exit")
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	os.Exit(run())
}

// app carries what both hosts share
type app struct {
	cfg     *config.Config
	rng     engine.Rand
	tp      engine.TimeProvider
	reg     *status.Registry
	router  *engine.EventRouter
	hud     *host.HUD
	sounds  *audio.SoundManager
	palette render.Palette
	sprites *asset.Set
	opts    host.Options
}

func run() int {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return 2
	}
	if *backendFlag != "" {
		cfg.Render.Backend = *backendFlag
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
			return 2
		}
	}
	if *dumpFlag {
		if err := cfg.Write(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
			return 1
		}
		return 0
	}

	kind := cfg.Backend()
	if *termFlag {
		kind = render.BackendTerminal
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		return 2
	}
	defer a.sounds.Cleanup()

	if kind == render.BackendTerminal {
		err = a.runConsole(ctx)
	} else {
		err = a.runWindow(ctx, kind)
	}

	log.Printf("[main] exit, metrics: %s", strings.Join(a.reg.Snapshot(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		if errors.Is(err, terminal.ErrNotTerminal) || errors.Is(err, engine.ErrInvalidBounds) {
			return 2
		}
		return 1
	}
	return 0
}

// newApp builds the host-independent collaborators and starts the background sprite load
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	keymap, err := cfg.Keymap()
	if err != nil {
		return nil, err
	}

	log.Printf("[input] bound keys: %s", strings.Join(keymap.Keys(), " "))

	a := &app{
		cfg:     cfg,
		rng:     engine.NewRand(*seedFlag),
		tp:      engine.NewMonotonicTimeProvider(),
		reg:     status.NewRegistry(),
		router:  engine.NewEventRouter(),
		hud:     &host.HUD{},
		palette: render.DefaultPalette,
		sprites: asset.NewSet(),
	}

	a.sounds = audio.NewSoundManager(cfg.AudioConfig())
	if err := a.sounds.Initialize(); err != nil {
		log.Printf("[audio] disabled: %v", err)
	}
	a.reg.Bools.Get(status.KeyAudioEnabled).Store(a.sounds.Enabled())

	a.router.Register(a.hud)
	a.router.Register(a.sounds)

	ready := a.reg.Bools.Get(status.KeyAssetsReady)
	asset.NewLoader(cfg.Assets.Dir, cfg.Grid.CellSize, a.palette).LoadAsync(ctx, a.sprites, func(error) {
		ready.Store(true)
	})

	a.opts = host.Options{
		Keymap:            keymap,
		HUD:               a.hud,
		Registry:          a.reg,
		Time:              a.tp,
		CellSize:          cfg.Grid.CellSize,
		FrameInterval:     cfg.Timing.FrameInterval,
		HeadFrameInterval: cfg.Render.HeadFrameInterval,
	}
	return a, nil
}

// sessionFactory uses the configured bounds when both are set and random() otherwise
func (a *app) sessionFactory(random func() engine.Bounds) host.SessionFactory {
	return func() (*engine.Session, error) {
		b := engine.Bounds{Width: a.cfg.Grid.Width, Height: a.cfg.Grid.Height}
		if b.Width == 0 || b.Height == 0 {
			b = random()
		}
		return engine.NewSession(a.cfg.SessionConfig(b), a.rng, a.tp)
	}
}

// start creates the first session, scheduler and controller for a host's renderer
func (a *app) start(renderer engine.FrameRenderer, newSession host.SessionFactory) (*host.Controller, error) {
	session, err := newSession()
	if err != nil {
		return nil, err
	}
	sched := engine.NewScheduler(session, renderer, a.router, a.cfg.Timing.TickInterval, a.reg)
	ctl := host.NewController(sched, newSession, a.sounds, a.hud, a.reg)
	sched.Start(a.tp.Now())
	return ctl, nil
}

func (a *app) runWindow(ctx context.Context, kind render.BackendKind) error {
	b, err := backend.Probe(kind, a.palette, a.cfg.Render.PulseSpeed, a.cfg.Render.PulseDepth)
	if err != nil {
		return err
	}
	win := host.NewWindow(b, a.sprites.SpriteSet(), a.opts)

	newSession := a.sessionFactory(func() engine.Bounds { return a.cfg.Bounds(a.rng) })
	ctl, err := a.start(win.Renderer(), newSession)
	if err != nil {
		return err
	}
	return win.Run(ctx, ctl)
}

func (a *app) runConsole(ctx context.Context) error {
	screen, mode, err := terminal.Open()
	if err != nil {
		return err
	}
	defer terminal.Close(screen)

	console := host.NewConsole(screen, mode, a.palette, a.sprites.SpriteSet(), a.opts)

	// Random size means the whole screen, less the score row and a border
	newSession := a.sessionFactory(func() engine.Bounds {
		w, h := screen.Size()
		return engine.Bounds{Width: w - 2, Height: h - 3}
	})
	ctl, err := a.start(console.Renderer(), newSession)
	if err != nil {
		return err
	}
	return console.Run(ctx, ctl)
}
