package game

import (
	"testing"

	"gridwalk/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/pixil98/go-testutil"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Intent
	}{
		{"k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), Move(geom.North)},
		{"j", tcell.NewEventKey(tcell.KeyRune, 'j', tcell.ModNone), Move(geom.South)},
		{"l", tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone), Move(geom.East)},
		{"h", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), Move(geom.West)},
		{"y", tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), Move(geom.NorthWest)},
		{"u", tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), Move(geom.NorthEast)},
		{"b", tcell.NewEventKey(tcell.KeyRune, 'b', tcell.ModNone), Move(geom.SouthWest)},
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', tcell.ModNone), Move(geom.SouthEast)},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Move(geom.North)},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Move(geom.West)},
		{"wait", tcell.NewEventKey(tcell.KeyRune, '.', tcell.ModNone), Intent{Action: ActionWait}},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), Intent{Action: ActionQuit}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Intent{Action: ActionQuit}},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), Intent{}},
		{"unbound special", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), Intent{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			testutil.AssertEqual(t, "intent", km.Intent(tc.ev), tc.want)
		})
	}
}

func TestBindOverrides(t *testing.T) {
	km := DefaultKeyMap()
	if err := km.Bind("w", Move(geom.North)); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := km.Bind("Home", Intent{Action: ActionWait}); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	testutil.AssertEqual(t, "w", km.Intent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)), Move(geom.North))
	testutil.AssertEqual(t, "home", km.Intent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone)), Intent{Action: ActionWait})
}

func TestBindUnknownKey(t *testing.T) {
	err := NewKeyMap().Bind("hyper-space", Intent{Action: ActionQuit})
	testutil.AssertErrorContains(t, err, "unknown key")
}
