package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownKey is returned for a key name that no host can produce
var ErrUnknownKey = errors.New("unknown key name")

// Named keys shared by both hosts; single characters are named by themselves
var namedKeys = map[string]tcell.Key{
	"up":    tcell.KeyUp,
	"down":  tcell.KeyDown,
	"left":  tcell.KeyLeft,
	"right": tcell.KeyRight,
	"esc":   tcell.KeyEscape,
	"enter": tcell.KeyEnter,
	"tab":   tcell.KeyTab,
	"f1":    tcell.KeyF1,
	"f2":    tcell.KeyF2,
	"f3":    tcell.KeyF3,
}

// Aliases for keys written as words in config files
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// DefaultBindings returns the stock action to key-name table
func DefaultBindings() map[Action][]string {
	return map[Action][]string{
		ActionUp:      {"up", "w", "k"},
		ActionDown:    {"down", "s", "j"},
		ActionLeft:    {"left", "a", "h"},
		ActionRight:   {"right", "d", "l"},
		ActionPause:   {"p", "space"},
		ActionRestart: {"r"},
		ActionMute:    {"m"},
		ActionQuit:    {"q", "esc"},
		ActionDebug:   {"f1"},
	}
}

// Keymap resolves canonical key names to actions
type Keymap struct {
	keys  map[string]Action
	names []string // sorted keys of keys
}

// NewKeymap builds the default keymap
func NewKeymap() *Keymap {
	km, err := keymapFrom(DefaultBindings())
	if err != nil {
		panic(err) // stock table is fixed
	}
	return km
}

// ParseBindings builds a keymap from [keys] config entries layered over the defaults
// A listed action replaces all of its default keys; an empty list unbinds it
func ParseBindings(raw map[string][]string) (*Keymap, error) {
	table := DefaultBindings()
	for name, keys := range raw {
		a, err := ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("[keys] %w", err)
		}
		table[a] = keys
	}
	return keymapFrom(table)
}

func keymapFrom(table map[Action][]string) (*Keymap, error) {
	km := &Keymap{keys: make(map[string]Action, 32)}

	// Deterministic conflict detection regardless of map order
	actions := make([]Action, 0, len(table))
	for a := range table {
		actions = append(actions, a)
	}
	sort.Slice(actions, func(i, j int) bool { return actions[i] < actions[j] })

	for _, a := range actions {
		for _, raw := range table[a] {
			name, err := canonicalKey(raw)
			if err != nil {
				return nil, fmt.Errorf("[keys] %s: %w", a, err)
			}
			if prev, ok := km.keys[name]; ok && prev != a {
				return nil, fmt.Errorf("[keys] %q bound to both %s and %s", raw, prev, a)
			}
			km.keys[name] = a
		}
	}

	km.names = make([]string, 0, len(km.keys))
	for k := range km.keys {
		km.names = append(km.names, k)
	}
	sort.Strings(km.names)
	return km, nil
}

// canonicalKey normalizes a config key name to the lookup form
func canonicalKey(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "escape" {
		s = "esc"
	}
	if _, ok := namedKeys[s]; ok {
		return s, nil
	}
	if r, ok := runeAliases[s]; ok {
		return string(r), nil
	}
	if utf8.RuneCountInString(s) == 1 {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, s)
}

// Lookup returns the action bound to a canonical key name
func (km *Keymap) Lookup(name string) (Action, bool) {
	a, ok := km.keys[name]
	return a, ok
}

// Keys returns the bound key names in sorted order
func (km *Keymap) Keys() []string {
	return append([]string(nil), km.names...)
}

// Terminal maps a tcell key event to an action
func (km *Keymap) Terminal(key tcell.Key, r rune) (Action, bool) {
	if key == tcell.KeyRune {
		return km.Lookup(strings.ToLower(string(r)))
	}
	for name, k := range namedKeys {
		if k == key {
			return km.Lookup(name)
		}
	}
	return ActionNone, false
}
