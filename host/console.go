package host

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/render/backend"
	"github.com/lixenwraith/vi-snake/terminal"
)

// Console hosts the game on a tcell screen
// A ticker paces frames; a poller goroutine feeds key and resize events into the same select loop
type Console struct {
	opts   Options
	screen tcell.Screen
	term   *backend.Terminal
	orch   *render.Orchestrator
	ctl    *Controller

	text  tcell.Style
	field [4]int // x, y, w, h of the playfield
}

// consoleBackend draws the HUD after the layers and before the screen is shown
type consoleBackend struct {
	*backend.Terminal
	c *Console
}

// Present implements render.Presenter
func (b consoleBackend) Present() {
	b.c.drawHUD()
	b.Terminal.Present()
}

// NewConsole builds the glyph backend and orchestrator for an initialized screen
func NewConsole(screen tcell.Screen, mode terminal.ColorMode, p render.Palette, sprites *render.SpriteSet, opts Options) *Console {
	opts.defaults()
	c := &Console{
		opts:   opts,
		screen: screen,
		term:   backend.NewTerminal(screen, mode, p, nil),
		text: tcell.StyleDefault.
			Background(terminal.Color(p.Background, mode)).
			Foreground(terminal.Color(p.Text, mode)),
	}
	c.orch = render.NewOrchestrator(consoleBackend{Terminal: c.term, c: c}, render.Layout{CellSize: 1}, sprites, opts.Time.Now(), opts.Registry)
	c.orch.RegisterDefaults(opts.HeadFrameInterval)
	return c
}

// Renderer is the frame renderer to hand to the scheduler
func (c *Console) Renderer() engine.FrameRenderer {
	return c.orch
}

// Attach binds the controller and lays out its session; Run calls it
func (c *Console) Attach(ctl *Controller) {
	c.ctl = ctl
	c.relayout(ctl.Scheduler().Session())
	ctl.OnRestart = c.relayout
}

// Run blocks until quit, Ctrl-C or ctx cancellation
func (c *Console) Run(ctx context.Context, ctl *Controller) error {
	c.Attach(ctl)

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := c.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(c.opts.FrameInterval)
	defer ticker.Stop()

	log.Printf("[host] console playfield %dx%d at (%d,%d)", c.field[2], c.field[3], c.field[0], c.field[1])

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if c.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			c.Frame()
		}
	}
}

// Frame runs one scheduler frame at the host clock
func (c *Console) Frame() {
	c.ctl.Scheduler().Frame(c.opts.Time.Now())
}

// handleEvent applies one terminal event; returns true to exit
func (c *Console) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return true
		}
		a, ok := c.opts.Keymap.Terminal(ev.Key(), ev.Rune())
		if !ok {
			return false
		}
		quit, err := c.ctl.Apply(a, c.opts.Time.Now())
		if err != nil {
			log.Printf("[host] %v", err)
		}
		return quit

	case *tcell.EventResize:
		c.screen.Sync()
		c.relayout(c.ctl.Scheduler().Session())
	}
	return false
}

// relayout centres the playfield horizontally below the score row
func (c *Console) relayout(s *engine.Session) {
	sw, _ := c.screen.Size()
	b := s.Model.Bounds
	x := (sw - b.Width) / 2
	if x < 0 {
		x = 0
	}
	y := 1
	c.field = [4]int{x, y, b.Width, b.Height}
	c.term.SetPlayfield(x, y, b.Width, b.Height)
	c.orch.SetLayout(render.Layout{CellSize: 1, OriginX: float64(x), OriginY: float64(y)})
}

// drawHUD writes the score row, game-over overlay and debug metrics over the rendered frame
func (c *Console) drawHUD() {
	x, y, w, h := c.field[0], c.field[1], c.field[2], c.field[3]
	hud := c.opts.HUD

	c.drawText(x, y-1, hud.Status(c.ctl.Scheduler().Session()))

	if lines, ok := hud.Overlay(); ok {
		top := y + (h-len(lines))/2
		for i, line := range lines {
			c.drawText(x+(w-runewidth.StringWidth(line))/2, top+i, line)
		}
	}

	if c.ctl.Debug {
		for i, line := range c.opts.Registry.Snapshot() {
			c.drawText(x, y+h+1+i, line)
		}
	}
}

// drawText writes s left to right, advancing by display width
func (c *Console) drawText(x, y int, s string) {
	if x < 0 {
		x = 0
	}
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, c.text)
		x += runewidth.RuneWidth(r)
	}
}
