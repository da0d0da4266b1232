package terminal

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-snake/core"
)

// ErrNotTerminal is returned when stdin or stdout is redirected
var ErrNotTerminal = errors.New("terminal host requires an interactive tty")

// IsInteractive reports whether both stdin and stdout are terminals
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Open initializes a tcell screen and registers it for crash cleanup
func Open() (tcell.Screen, ColorMode, error) {
	if !IsInteractive() {
		return nil, ColorMode256, ErrNotTerminal
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, ColorMode256, fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, ColorMode256, fmt.Errorf("init screen: %w", err)
	}

	mode := DetectColorMode()
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	core.SetCrashCleanup(screen.Fini)

	w, h := screen.Size()
	log.Printf("[terminal] %dx%d, colour mode %v", w, h, mode)
	return screen, mode, nil
}

// Close restores the terminal and clears the crash cleanup
func Close(screen tcell.Screen) {
	core.SetCrashCleanup(nil)
	screen.Fini()
}
