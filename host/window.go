package host

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/render/backend"
	"github.com/lixenwraith/vi-snake/status"
)

// Debug font cell of ebitenutil.DebugPrint
const (
	debugGlyphWidth  = 6
	debugGlyphHeight = 16
)

// Window hosts the game in an ebiten window and implements ebiten.Game
// Update polls keys; Draw drives the scheduler's frame callback
type Window struct {
	opts    Options
	backend backend.Window
	orch    *render.Orchestrator
	ctl     *Controller

	width, height int
	bindings      []windowBinding
	actions       []input.Action
	ctx           context.Context

	statFPS *status.AtomicFloat
}

// NewWindow builds the orchestrator around the probed backend
func NewWindow(b backend.Window, sprites *render.SpriteSet, opts Options) *Window {
	opts.defaults()
	orch := render.NewOrchestrator(b, render.Layout{}, sprites, opts.Time.Now(), opts.Registry)
	orch.RegisterDefaults(opts.HeadFrameInterval)

	bindings, missing := windowBindings(opts.Keymap)
	if len(missing) > 0 {
		log.Printf("[input] no window key for %v, ignored", missing)
	}
	return &Window{
		opts:     opts,
		backend:  b,
		orch:     orch,
		bindings: bindings,
		actions:  make([]input.Action, 0, 4),
		statFPS:  opts.Registry.Floats.Get(status.KeyFPS),
	}
}

// Renderer is the frame renderer to hand to the scheduler
func (w *Window) Renderer() engine.FrameRenderer {
	return w.orch
}

// Run opens the window and blocks until quit, close or ctx cancellation
func (w *Window) Run(ctx context.Context, ctl *Controller) error {
	w.ctx = ctx
	w.ctl = ctl
	w.relayout(ctl.Scheduler().Session())
	ctl.OnRestart = func(s *engine.Session) {
		w.relayout(s)
		ebiten.SetWindowSize(w.width, w.height)
	}

	ebiten.SetWindowSize(w.width, w.height)
	ebiten.SetWindowTitle("vi-snake")
	log.Printf("[host] window %dx%d, backend %s", w.width, w.height, w.backend.Name())
	return ebiten.RunGame(w)
}

// relayout sizes the window to the session's playfield plus the score strip
func (w *Window) relayout(s *engine.Session) {
	w.width, w.height = windowSize(s.Model.Bounds, w.opts.CellSize)
	w.orch.SetLayout(render.Layout{
		CellSize: float64(w.opts.CellSize),
		OriginY:  constant.HUDHeight,
	})
}

func windowSize(b engine.Bounds, cell int) (width, height int) {
	return b.Width * cell, b.Height*cell + constant.HUDHeight
}

// Update implements ebiten.Game
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}
	now := w.opts.Time.Now()

	w.actions = pollActions(w.bindings, w.actions[:0])
	for _, a := range w.actions {
		quit, err := w.ctl.Apply(a, now)
		if err != nil {
			log.Printf("[host] %v", err)
		}
		if quit {
			return ebiten.Termination
		}
	}

	w.statFPS.Set(ebiten.ActualFPS())
	return nil
}

// Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	sched := w.ctl.Scheduler()
	w.backend.SetTarget(screen)
	sched.Frame(w.opts.Time.Now())

	ebitenutil.DebugPrintAt(screen, w.opts.HUD.Status(sched.Session()), 4, 2)

	if lines, ok := w.opts.HUD.Overlay(); ok {
		y := (w.height - len(lines)*debugGlyphHeight) / 2
		for i, line := range lines {
			x := (w.width - len(line)*debugGlyphWidth) / 2
			ebitenutil.DebugPrintAt(screen, line, x, y+i*debugGlyphHeight)
		}
	}

	if w.ctl.Debug {
		lines := w.opts.Registry.Snapshot()
		y := w.height - len(lines)*debugGlyphHeight - 2
		for i, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, 4, y+i*debugGlyphHeight)
		}
	}
}

// Layout implements ebiten.Game; the logical screen is fixed to the playfield
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.width, w.height
}
