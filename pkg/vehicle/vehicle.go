// Package vehicle holds the player's car and the traffic it dodges.
// Positions are rectangle centers; Bounds converts to a top-left box.
package vehicle

import "github.com/golangdaddy/racecar/pkg/geom"

// Vehicle is anything that moves once per tick and can be hit.
type Vehicle interface {
	Advance()
	Bounds() geom.Rect
}

var (
	_ Vehicle = (*Car)(nil)
	_ Vehicle = (*TrafficCar)(nil)
)
