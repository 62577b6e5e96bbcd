package road

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/racecar/pkg/geom"
)

// Infinity stands in for the road's unbounded length. It is finite so
// the drawing and clamping arithmetic never has to special-case it.
const Infinity = 100000

// DefaultLaneCount is used when a caller has no preference.
const DefaultLaneCount = 3

var (
	ErrInvalidConfiguration = errors.New("invalid road configuration")
	ErrInvalidLaneIndex     = errors.New("invalid lane index")
)

// Road is an endless vertical highway split into equal-width lanes.
type Road struct {
	X         float64 // centerline
	Width     float64
	LaneCount int

	Left, Right float64 // shoulders
	Top, Bottom float64
}

// New builds a road centered on centerX.
func New(centerX, width float64, laneCount int) (*Road, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: width %v", ErrInvalidConfiguration, width)
	}
	if laneCount < 1 {
		return nil, fmt.Errorf("%w: lane count %d", ErrInvalidConfiguration, laneCount)
	}

	return &Road{
		X:         centerX,
		Width:     width,
		LaneCount: laneCount,
		Left:      centerX - width/2,
		Right:     centerX + width/2,
		Top:       -Infinity,
		Bottom:    Infinity,
	}, nil
}

// LaneWidth is the width of a single lane.
func (r *Road) LaneWidth() float64 {
	return r.Width / float64(r.LaneCount)
}

// LaneCenter returns the x of the middle of lane i, counting from the left.
func (r *Road) LaneCenter(i int) (float64, error) {
	if i < 0 || i >= r.LaneCount {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidLaneIndex, i, r.LaneCount)
	}
	laneWidth := r.LaneWidth()
	return r.Left + laneWidth/2 + float64(i)*laneWidth, nil
}

// Dividers returns the x of each interior lane marking, left to right.
func (r *Road) Dividers() []float64 {
	xs := make([]float64, 0, r.LaneCount-1)
	for i := 1; i < r.LaneCount; i++ {
		xs = append(xs, geom.Lerp(r.Left, r.Right, float64(i)/float64(r.LaneCount)))
	}
	return xs
}

// Borders returns the two shoulder lines, each from top to bottom.
func (r *Road) Borders() [2][2]geom.Point {
	return [2][2]geom.Point{
		{{X: r.Left, Y: r.Top}, {X: r.Left, Y: r.Bottom}},
		{{X: r.Right, Y: r.Top}, {X: r.Right, Y: r.Bottom}},
	}
}

// ClampX keeps a vehicle of the given half-width between the shoulders.
func (r *Road) ClampX(x, halfWidth float64) float64 {
	lo, hi := r.Left+halfWidth, r.Right-halfWidth
	if lo > hi {
		return r.X
	}
	return geom.Clamp(x, lo, hi)
}
