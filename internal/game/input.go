package game

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"gridwalk/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// Action is the kind of a player-requested intent.
type Action uint8

const (
	ActionNone Action = iota
	ActionMove
	ActionWait
	ActionQuit
)

// Intent is one decoded player input.
type Intent struct {
	Action Action
	Dir    geom.Direction
}

// Move is shorthand for a movement intent.
func Move(d geom.Direction) Intent { return Intent{Action: ActionMove, Dir: d} }

// KeyMap maps keys to intents.
type KeyMap struct {
	keys  map[tcell.Key]Intent
	runes map[rune]Intent
}

// keyNames is tcell's key-name table inverted and lowercased: "ctrl-c",
// "up", "esc", ...
var keyNames = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// NewKeyMap builds an empty KeyMap.
func NewKeyMap() KeyMap {
	return KeyMap{keys: make(map[tcell.Key]Intent), runes: make(map[rune]Intent)}
}

// DefaultKeyMap returns vi-style movement (hjklyubn), arrow keys, '.' to
// wait and Ctrl-C, Esc or q to quit.
func DefaultKeyMap() KeyMap {
	km := NewKeyMap()
	bind := func(i Intent, names ...string) {
		for _, n := range names {
			if err := km.Bind(n, i); err != nil {
				panic(err)
			}
		}
	}
	bind(Move(geom.North), "k", "up")
	bind(Move(geom.South), "j", "down")
	bind(Move(geom.East), "l", "right")
	bind(Move(geom.West), "h", "left")
	bind(Move(geom.NorthWest), "y")
	bind(Move(geom.NorthEast), "u")
	bind(Move(geom.SouthWest), "b")
	bind(Move(geom.SouthEast), "n")
	bind(Intent{Action: ActionWait}, ".")
	bind(Intent{Action: ActionQuit}, "ctrl-c", "esc", "q")
	return km
}

// Bind maps the named key to i. A single character names that character;
// anything longer is looked up in tcell's key names ("Up", "Ctrl-C", ...),
// case-insensitively.
func (km KeyMap) Bind(name string, i Intent) error {
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		km.runes[r] = i
		return nil
	}
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("unknown key %q", name)
	}
	km.keys[k] = i
	return nil
}

// Intent decodes a key event. Unbound keys yield ActionNone.
func (km KeyMap) Intent(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			if i, ok := km.keys[tcell.KeyCtrlA+tcell.Key(r-'a')]; ok {
				return i
			}
		}
		return km.runes[r]
	}
	return km.keys[ev.Key()]
}
