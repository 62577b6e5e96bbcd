package vehicle

import "github.com/golangdaddy/racecar/pkg/geom"

// TrafficCar drives straight up its lane at a constant speed.
type TrafficCar struct {
	ID            int64
	Lane          int
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// Advance moves the car one tick.
func (t *TrafficCar) Advance() {
	t.Y -= t.Speed
}

// Bounds returns the car's collision box.
func (t *TrafficCar) Bounds() geom.Rect {
	return geom.RectFromCenter(t.X, t.Y, t.Width, t.Height)
}
