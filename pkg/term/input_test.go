package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/racecar/pkg/controls"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want controls.Direction
		ok   bool
	}{
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), controls.Up, true},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), controls.Down, true},
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), controls.Left, true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), controls.Right, true},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), controls.Up, true},
		{"S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), controls.Down, true},
		{"a", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), controls.Left, true},
		{"d", tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone), controls.Right, true},
		{"x", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Direction(tt.ev)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("Direction = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestKeysFirstPressBridgesRepeatDelay(t *testing.T) {
	ctl := controls.New()
	keys := NewKeys(ctl)
	t0 := time.Unix(0, 0)

	keys.Handle(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), t0)
	ctl.Drain()
	if !ctl.Forward {
		t.Fatal("forward not held after press")
	}

	keys.Expire(t0.Add(FirstHoldWindow - time.Millisecond))
	ctl.Drain()
	if !ctl.Forward {
		t.Fatal("forward released before the first hold window passed")
	}

	keys.Expire(t0.Add(FirstHoldWindow))
	ctl.Drain()
	if ctl.Forward {
		t.Fatal("forward still held after the first hold window")
	}
	if keys.Held(controls.Up) {
		t.Fatal("Held(Up) after release")
	}
}

func TestKeysReleaseAfterRepeatsStop(t *testing.T) {
	ctl := controls.New()
	keys := NewKeys(ctl)
	t0 := time.Unix(0, 0)
	left := tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone)

	keys.Handle(left, t0)
	last := t0
	for i := 1; i <= 10; i++ {
		last = t0.Add(time.Duration(i) * 30 * time.Millisecond)
		keys.Handle(left, last)
		keys.Expire(last)
	}
	if n := ctl.Drain(); n != 1 {
		t.Fatalf("auto-repeat queued %d events, want a single press", n)
	}
	if !ctl.Left {
		t.Fatal("left not held during repeats")
	}

	keys.Expire(last.Add(HoldWindow - time.Millisecond))
	ctl.Drain()
	if !ctl.Left {
		t.Fatal("left released inside the hold window")
	}

	keys.Expire(last.Add(HoldWindow))
	ctl.Drain()
	if ctl.Left {
		t.Fatal("left still held after repeats stopped")
	}

	// A new press starts over with the long window.
	keys.Handle(left, last.Add(time.Second))
	keys.Expire(last.Add(time.Second + HoldWindow))
	ctl.Drain()
	if !ctl.Left {
		t.Fatal("fresh press released after the short window")
	}
}

func TestKeysIgnoresOtherKeys(t *testing.T) {
	ctl := controls.New()
	keys := NewKeys(ctl)
	if keys.Handle(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), time.Now()) {
		t.Fatal("'z' handled as a driving key")
	}
	if n := ctl.Drain(); n != 0 {
		t.Fatalf("queued %d events for a non-driving key", n)
	}
}
