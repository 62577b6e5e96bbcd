package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/racecar/pkg/controls"
)

// Terminals report key presses and auto-repeats but never key releases. A
// direction counts as held until no press has been seen for HoldWindow.
// The first press of a key gets FirstHoldWindow instead, long enough to
// bridge the delay before the terminal starts auto-repeating.
const (
	HoldWindow      = 120 * time.Millisecond
	FirstHoldWindow = 500 * time.Millisecond
)

// Keys turns tcell key events into controls presses and timed releases.
type Keys struct {
	ctl      *controls.Controls
	lastSeen map[controls.Direction]time.Time
	repeated map[controls.Direction]bool
}

// NewKeys returns a key tracker that drives ctl.
func NewKeys(ctl *controls.Controls) *Keys {
	return &Keys{
		ctl:      ctl,
		lastSeen: make(map[controls.Direction]time.Time),
		repeated: make(map[controls.Direction]bool),
	}
}

// Direction maps arrow keys and WASD to a driving direction.
func Direction(ev *tcell.EventKey) (controls.Direction, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return controls.Up, true
	case tcell.KeyDown:
		return controls.Down, true
	case tcell.KeyLeft:
		return controls.Left, true
	case tcell.KeyRight:
		return controls.Right, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return controls.Up, true
		case 's', 'S':
			return controls.Down, true
		case 'a', 'A':
			return controls.Left, true
		case 'd', 'D':
			return controls.Right, true
		}
	}
	return 0, false
}

// Handle records a key event. It reports whether the key was a driving key.
func (k *Keys) Handle(ev *tcell.EventKey, now time.Time) bool {
	dir, ok := Direction(ev)
	if !ok {
		return false
	}
	if _, held := k.lastSeen[dir]; held {
		k.repeated[dir] = true
	} else {
		k.ctl.Press(dir)
	}
	k.lastSeen[dir] = now
	return true
}

// Expire releases every direction whose hold window has passed.
func (k *Keys) Expire(now time.Time) {
	for dir, seen := range k.lastSeen {
		window := FirstHoldWindow
		if k.repeated[dir] {
			window = HoldWindow
		}
		if now.Sub(seen) < window {
			continue
		}
		delete(k.lastSeen, dir)
		delete(k.repeated, dir)
		k.ctl.Release(dir)
	}
}

// Held reports whether dir is currently considered held.
func (k *Keys) Held(dir controls.Direction) bool {
	_, ok := k.lastSeen[dir]
	return ok
}
