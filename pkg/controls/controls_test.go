package controls

import (
	"sync"
	"testing"
)

func TestPressIsInvisibleUntilDrain(t *testing.T) {
	c := New()
	c.Press(Up)
	if c.Forward {
		t.Fatal("Forward set before Drain")
	}
	if n := c.Drain(); n != 1 {
		t.Fatalf("Drain() = %d, want 1", n)
	}
	if !c.Forward {
		t.Fatal("Forward not set after Drain")
	}
}

func TestDrainAppliesInOrder(t *testing.T) {
	c := New()
	c.Press(Left)
	c.Release(Left)
	c.Press(Right)
	c.Drain()

	if c.Left {
		t.Error("Left should be released")
	}
	if !c.Right {
		t.Error("Right should be held")
	}
	if n := c.Drain(); n != 0 {
		t.Errorf("second Drain() = %d, want 0", n)
	}
}

func TestHoldPersistsUntilRelease(t *testing.T) {
	c := New()
	c.Press(Down)
	c.Drain()
	for i := 0; i < 5; i++ {
		c.Drain()
		if !c.Backward {
			t.Fatalf("Backward dropped after %d drains", i)
		}
	}
	c.Release(Down)
	c.Drain()
	if c.Backward {
		t.Fatal("Backward still held after release")
	}
}

func TestSetAndHeld(t *testing.T) {
	c := New()
	for _, d := range []Direction{Up, Down, Left, Right} {
		c.Set(d, true)
		if !c.Held(d) {
			t.Errorf("Held(%v) = false after Set", d)
		}
	}
	c.Reset()
	for _, d := range []Direction{Up, Down, Left, Right} {
		if c.Held(d) {
			t.Errorf("Held(%v) = true after Reset", d)
		}
	}
}

func TestConcurrentPress(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Press(Up)
			}
		}()
	}
	wg.Wait()
	if n := c.Drain(); n != 800 {
		t.Fatalf("Drain() = %d, want 800", n)
	}
}

func TestDirectionString(t *testing.T) {
	if Up.String() != "up" || Right.String() != "right" || Direction(9).String() != "unknown" {
		t.Error("unexpected Direction names")
	}
}
