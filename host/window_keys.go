package host

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lixenwraith/vi-snake/input"
)

// ebitenKeys maps canonical key names to window keys
var ebitenKeys = map[string]ebiten.Key{
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"esc":   ebiten.KeyEscape,
	"enter": ebiten.KeyEnter,
	"tab":   ebiten.KeyTab,
	"f1":    ebiten.KeyF1,
	"f2":    ebiten.KeyF2,
	"f3":    ebiten.KeyF3,
	" ":     ebiten.KeySpace,
	"\\":    ebiten.KeyBackslash,

	"a": ebiten.KeyA, "b": ebiten.KeyB, "c": ebiten.KeyC, "d": ebiten.KeyD,
	"e": ebiten.KeyE, "f": ebiten.KeyF, "g": ebiten.KeyG, "h": ebiten.KeyH,
	"i": ebiten.KeyI, "j": ebiten.KeyJ, "k": ebiten.KeyK, "l": ebiten.KeyL,
	"m": ebiten.KeyM, "n": ebiten.KeyN, "o": ebiten.KeyO, "p": ebiten.KeyP,
	"q": ebiten.KeyQ, "r": ebiten.KeyR, "s": ebiten.KeyS, "t": ebiten.KeyT,
	"u": ebiten.KeyU, "v": ebiten.KeyV, "w": ebiten.KeyW, "x": ebiten.KeyX,
	"y": ebiten.KeyY, "z": ebiten.KeyZ,

	"0": ebiten.Key0, "1": ebiten.Key1, "2": ebiten.Key2, "3": ebiten.Key3,
	"4": ebiten.Key4, "5": ebiten.Key5, "6": ebiten.Key6, "7": ebiten.Key7,
	"8": ebiten.Key8, "9": ebiten.Key9,
}

// windowBinding is one polled window key
type windowBinding struct {
	key    ebiten.Key
	action input.Action
}

// windowBindings resolves a keymap to window keys in key-name order
// Names without a window key (terminal-only glyphs) are returned in missing
func windowBindings(km *input.Keymap) (bound []windowBinding, missing []string) {
	for _, name := range km.Keys() {
		k, ok := ebitenKeys[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		a, _ := km.Lookup(name)
		bound = append(bound, windowBinding{key: k, action: a})
	}
	return bound, missing
}

// pollActions collects the actions whose keys went down this ebiten update
func pollActions(bound []windowBinding, out []input.Action) []input.Action {
	for _, b := range bound {
		if inpututil.IsKeyJustPressed(b.key) {
			out = append(out, b.action)
		}
	}
	return out
}
