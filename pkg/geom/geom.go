// Package geom holds the small bits of 2D math shared by the road, the
// vehicles and the renderers.
package geom

import "math"

// Point is a position in world space. Y grows downward, like the screen.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box given by its top-left corner and size.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter builds the box of a w×h rectangle centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Overlaps reports whether two boxes intersect. Touching edges do not count.
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPoint interpolates each axis between a and b.
func LerpPoint(a, b Point, t float64) Point {
	return Point{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dashes splits the segment from→to into the "on" pieces of a dash pattern.
// The pattern alternates on and off lengths starting with on; an empty
// pattern (or one without any positive length) yields the whole segment.
func Dashes(from, to Point, pattern []float64) [][2]Point {
	dx, dy := to.X-from.X, to.Y-from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return nil
	}

	period := 0.0
	for _, p := range pattern {
		if p > 0 {
			period += p
		}
	}
	if period == 0 {
		return [][2]Point{{from, to}}
	}

	ux, uy := dx/length, dy/length
	var out [][2]Point
	pos := 0.0
	for i := 0; pos < length; i++ {
		seg := pattern[i%len(pattern)]
		if seg <= 0 {
			continue
		}
		end := math.Min(pos+seg, length)
		if i%2 == 0 {
			out = append(out, [2]Point{
				{X: from.X + ux*pos, Y: from.Y + uy*pos},
				{X: from.X + ux*end, Y: from.Y + uy*end},
			})
		}
		pos = end
	}
	return out
}
