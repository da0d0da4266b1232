package host

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/asset"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
	"github.com/lixenwraith/vi-snake/terminal"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestConsole(t *testing.T) (*Console, *testRig, tcell.SimulationScreen) {
	t.Helper()
	screen := newSimScreen(t, 40, 12)

	p := render.DefaultPalette
	set := asset.NewSet()
	if err := asset.NewLoader("", 4, p).Load(context.Background(), set); err != nil {
		t.Fatalf("load sprites: %v", err)
	}

	mock := engine.NewMockTimeProvider(testEpoch)
	hud := &HUD{}
	c := NewConsole(screen, terminal.ColorMode256, p, set.SpriteSet(), Options{HUD: hud, Time: mock})

	rig := newTestRig(t, mock, hud, c.Renderer(), nil)
	c.Attach(rig.ctl)
	return c, rig, screen
}

func runeAt(screen tcell.Screen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestConsoleFrameDrawsPlayfieldAndHUD(t *testing.T) {
	c, rig, screen := newTestConsole(t)
	rig.sched.Start(rig.mock.Now())
	c.Frame()

	// 10x6 playfield centred in 40 columns, below the score row
	x0, y0 := 15, 1
	if c.field != [4]int{x0, y0, 10, 6} {
		t.Fatalf("field = %v, want [15 1 10 6]", c.field)
	}

	head := core.Point{X: 2, Y: 2}
	if got := runeAt(screen, x0+head.X, y0+head.Y); got != '▶' {
		t.Errorf("head glyph = %q, want '▶'", got)
	}
	if got := runeAt(screen, x0+7, y0+4); got != '●' {
		t.Errorf("food glyph = %q, want '●'", got)
	}
	if got := runeAt(screen, x0, y0); got != '·' {
		t.Errorf("background glyph = %q, want '·'", got)
	}

	want := "Score: 0"
	for i, r := range want {
		if got := runeAt(screen, x0+i, 0); got != r {
			t.Fatalf("HUD[%d] = %q, want %q", i, got, r)
		}
	}
}

func TestConsoleKeys(t *testing.T) {
	c, rig, _ := newTestConsole(t)
	rig.sched.Start(rig.mock.Now())

	if quit := c.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone)); quit {
		t.Fatal("'j' quit the console")
	}
	if d, ok := rig.sched.Session().Model.PendingDirection(); !ok || d != core.DirDown {
		t.Errorf("pending = %v, %v, want Down", d, ok)
	}

	c.handleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	if rig.sched.State() != engine.SchedulerPaused {
		t.Errorf("state = %v, want Paused", rig.sched.State())
	}

	if !c.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Esc did not quit")
	}
	if !c.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)) {
		t.Error("Ctrl-C did not quit")
	}
}

func TestConsoleRestartRelayouts(t *testing.T) {
	c, rig, _ := newTestConsole(t)
	rig.sched.Start(rig.mock.Now())

	c.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone))
	if c.field != [4]int{14, 1, 12, 8} {
		t.Errorf("field after restart = %v, want [14 1 12 8]", c.field)
	}
}

func TestConsoleGameOverOverlay(t *testing.T) {
	c, rig, screen := newTestConsole(t)
	rig.sched.Start(rig.mock.Now())
	rig.sched.Session().Model.End(engine.EndCollision)
	c.Frame()

	// Three overlay lines centred vertically in the six-row field
	title := "GAME OVER"
	x := 15 + (10-len(title))/2
	y := 1 + (6-3)/2
	for i, r := range title {
		if got := runeAt(screen, x+i, y); got != r {
			t.Fatalf("overlay[%d] = %q, want %q", i, got, r)
		}
	}
}

func TestConsoleRunQuits(t *testing.T) {
	c, rig, screen := newTestConsole(t)
	rig.sched.Start(rig.mock.Now())

	done := make(chan error, 1)
	go func() {
		done <- c.Run(context.Background(), rig.ctl)
	}()

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run() = %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after 'q'")
	}
}

func TestConsoleRunStopsOnCancel(t *testing.T) {
	c, rig, _ := newTestConsole(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Run(ctx, rig.ctl); err != nil {
		t.Errorf("Run() = %v, want nil", err)
	}
}
