// Package controls tracks which driving directions are held.
//
// Key sources push press/release events from wherever they run; the game loop
// drains them once per tick so a tick always sees a consistent set of flags.
package controls

import "sync"

// Direction is one of the four logical driving commands.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Event is a single press or release of a direction.
type Event struct {
	Direction Direction
	Pressed   bool
}

// Controls holds the four flags read by the player's car.
type Controls struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool

	mu      sync.Mutex
	pending []Event
}

// New returns controls with nothing held.
func New() *Controls {
	return &Controls{}
}

// Press queues a key-down for d.
func (c *Controls) Press(d Direction) {
	c.push(Event{Direction: d, Pressed: true})
}

// Release queues a key-up for d.
func (c *Controls) Release(d Direction) {
	c.push(Event{Direction: d, Pressed: false})
}

func (c *Controls) push(ev Event) {
	c.mu.Lock()
	c.pending = append(c.pending, ev)
	c.mu.Unlock()
}

// Drain applies every queued event in arrival order and returns how many
// were applied.
func (c *Controls) Drain() int {
	c.mu.Lock()
	events := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, ev := range events {
		c.Set(ev.Direction, ev.Pressed)
	}
	return len(events)
}

// Set changes a flag immediately, bypassing the queue.
func (c *Controls) Set(d Direction, held bool) {
	switch d {
	case Up:
		c.Forward = held
	case Down:
		c.Backward = held
	case Left:
		c.Left = held
	case Right:
		c.Right = held
	}
}

// Held reports whether d is currently held.
func (c *Controls) Held(d Direction) bool {
	switch d {
	case Up:
		return c.Forward
	case Down:
		return c.Backward
	case Left:
		return c.Left
	case Right:
		return c.Right
	}
	return false
}

// Reset releases everything and discards queued events.
func (c *Controls) Reset() {
	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
	c.Forward, c.Backward, c.Left, c.Right = false, false, false, false
}
