package session

import (
	"math"

	"github.com/golangdaddy/racecar/pkg/geom"
)

// Render draws the road, the player and the traffic through c, with the
// camera translation pushed for the duration of the call.
func (s *Session) Render(c Canvas) {
	c.Save()
	defer c.Restore()
	c.Translate(0, s.cameraY)

	top, bottom := s.visibleSpan()
	if top >= bottom {
		return
	}

	rd := s.road
	c.FillRect(geom.Rect{X: rd.Left, Y: top, W: rd.Width, H: bottom - top}, RoadColor)

	// Start the dashes on a whole period from the road's top so they
	// scroll with the world instead of with the screen.
	period := 0.0
	for _, d := range LaneDash {
		period += d
	}
	dashTop := top
	if period > 0 {
		dashTop = rd.Top + math.Floor((top-rd.Top)/period)*period
	}
	for _, x := range rd.Dividers() {
		c.StrokeLine(geom.Point{X: x, Y: dashTop}, geom.Point{X: x, Y: bottom}, MarkingWidth, LaneDash, MarkingColor)
	}

	for _, border := range rd.Borders() {
		c.StrokeLine(
			geom.Point{X: border[0].X, Y: top},
			geom.Point{X: border[1].X, Y: bottom},
			MarkingWidth, nil, MarkingColor,
		)
	}

	playerColor := PlayerColor
	if s.hitLast {
		playerColor = HitColor
	}
	c.FillRect(s.player.Bounds(), playerColor)

	for _, tc := range s.fleet.Cars() {
		box := tc.Bounds()
		if box.Y > bottom || box.Y+box.H < top {
			continue
		}
		c.FillRect(box, TrafficColor)
	}
}

// visibleSpan is the world y range on screen, clipped to the road.
func (s *Session) visibleSpan() (float64, float64) {
	top := -s.cameraY
	bottom := top + s.viewHeight
	return math.Max(top, s.road.Top), math.Min(bottom, s.road.Bottom)
}
