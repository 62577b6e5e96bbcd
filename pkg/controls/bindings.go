package controls

// Binding lists the keys that drive one direction.
type Binding[K comparable] struct {
	Direction Direction
	Keys      []K
}

// Bindings turns per-key state into control events for frontends that can
// ask whether a key is down. A direction is held while any of its keys is
// down, so swapping between two keys for the same direction never drops it.
type Bindings[K comparable] struct {
	bindings []Binding[K]
	held     map[Direction]bool
}

// NewBindings returns bindings with nothing held. Directions are checked in
// the order given.
func NewBindings[K comparable](bindings ...Binding[K]) *Bindings[K] {
	return &Bindings[K]{
		bindings: bindings,
		held:     make(map[Direction]bool),
	}
}

// Poll queues a press or release on ctl for every direction whose combined
// state changed since the last poll, and returns how many were queued.
func (b *Bindings[K]) Poll(ctl *Controls, pressed func(K) bool) int {
	queued := 0
	for _, binding := range b.bindings {
		down := false
		for _, key := range binding.Keys {
			if pressed(key) {
				down = true
				break
			}
		}
		if down == b.held[binding.Direction] {
			continue
		}
		b.held[binding.Direction] = down
		if down {
			ctl.Press(binding.Direction)
		} else {
			ctl.Release(binding.Direction)
		}
		queued++
	}
	return queued
}
