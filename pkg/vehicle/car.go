package vehicle

import (
	"math"

	"github.com/golangdaddy/racecar/pkg/controls"
	"github.com/golangdaddy/racecar/pkg/geom"
	"github.com/golangdaddy/racecar/pkg/road"
)

// Car is the player-controlled vehicle.
type Car struct {
	X, Y          float64
	Width, Height float64

	Speed        float64 // pixels per tick, positive is forward (up the screen)
	Acceleration float64
	Friction     float64
	MaxSpeed     float64
	LateralStep  float64 // pixels per tick while steering

	controls *controls.Controls
	road     *road.Road
}

// NewCar places a car on the road, driven by ctl.
func NewCar(x, y, width, height float64, ctl *controls.Controls, rd *road.Road) *Car {
	return &Car{
		X:            x,
		Y:            y,
		Width:        width,
		Height:       height,
		Acceleration: 0.2,
		Friction:     0.05,
		MaxSpeed:     13,
		LateralStep:  3,
		controls:     ctl,
		road:         rd,
	}
}

// Controls returns the input the car reads.
func (c *Car) Controls() *controls.Controls {
	return c.controls
}

// Advance integrates one tick of movement.
func (c *Car) Advance() {
	ctl := c.controls
	if ctl == nil {
		ctl = &controls.Controls{}
	}

	if ctl.Forward {
		c.Speed += c.Acceleration
	}
	if ctl.Backward {
		c.Speed -= c.Acceleration
	}

	// Reverse tops out at half the forward speed.
	c.Speed = geom.Clamp(c.Speed, -c.MaxSpeed/2, c.MaxSpeed)

	if c.Speed > 0 {
		c.Speed -= c.Friction
	} else if c.Speed < 0 {
		c.Speed += c.Friction
	}
	if math.Abs(c.Speed) < c.Friction {
		c.Speed = 0
	}

	if ctl.Left {
		c.X -= c.LateralStep
	}
	if ctl.Right {
		c.X += c.LateralStep
	}
	if c.road != nil {
		c.X = c.road.ClampX(c.X, c.Width/2)
	}

	c.Y -= c.Speed
}

// Bounds returns the car's collision box.
func (c *Car) Bounds() geom.Rect {
	return geom.RectFromCenter(c.X, c.Y, c.Width, c.Height)
}
