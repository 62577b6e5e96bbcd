// Package traffic spawns and tracks the cars sharing the road with the player.
package traffic

import (
	"errors"
	"math"

	"github.com/golangdaddy/racecar/pkg/vehicle"
)

// ErrFleetFull is returned by Add once the fleet is at capacity.
var ErrFleetFull = errors.New("traffic fleet full")

// Fleet is the ordered set of live traffic cars.
type Fleet struct {
	cars     []*vehicle.TrafficCar
	capacity int
}

// NewFleet creates an empty fleet. A capacity of 0 means unbounded.
func NewFleet(capacity int) *Fleet {
	return &Fleet{
		cars:     make([]*vehicle.TrafficCar, 0),
		capacity: capacity,
	}
}

// Add appends a car, keeping insertion order.
func (f *Fleet) Add(tc *vehicle.TrafficCar) error {
	if f.capacity > 0 && len(f.cars) >= f.capacity {
		return ErrFleetFull
	}
	f.cars = append(f.cars, tc)
	return nil
}

// Cars returns the live cars in insertion order. The slice is shared.
func (f *Fleet) Cars() []*vehicle.TrafficCar {
	return f.cars
}

// Len is the number of live cars.
func (f *Fleet) Len() int {
	return len(f.cars)
}

// Advance moves every car one tick.
func (f *Fleet) Advance() {
	for _, tc := range f.cars {
		tc.Advance()
	}
}

// Cull drops cars more than distance away from playerY, ahead or behind,
// and returns how many were removed. A distance <= 0 disables culling.
func (f *Fleet) Cull(playerY, distance float64) int {
	if distance <= 0 {
		return 0
	}

	kept := f.cars[:0]
	for _, tc := range f.cars {
		if math.Abs(tc.Y-playerY) <= distance {
			kept = append(kept, tc)
		}
	}
	removed := len(f.cars) - len(kept)
	for i := len(kept); i < len(f.cars); i++ {
		f.cars[i] = nil
	}
	f.cars = kept
	return removed
}

// Clear removes every car.
func (f *Fleet) Clear() {
	f.cars = f.cars[:0]
}
