package session

import (
	"image/color"

	"github.com/golangdaddy/racecar/pkg/geom"
)

// Canvas is the drawing surface a frontend hands to Render. Coordinates are
// world pixels after the current translation.
type Canvas interface {
	Save()
	Restore()
	Translate(dx, dy float64)
	FillRect(r geom.Rect, c color.Color)
	// StrokeLine draws from→to. A nil dash draws a solid line; otherwise
	// dash alternates on and off lengths starting with on.
	StrokeLine(from, to geom.Point, width float64, dash []float64, c color.Color)
}

var (
	RoadColor    = color.RGBA{200, 200, 200, 255}
	MarkingColor = color.RGBA{255, 255, 255, 255}
	PlayerColor  = color.RGBA{100, 150, 255, 255}
	TrafficColor = color.RGBA{220, 30, 30, 255}
	HitColor     = color.RGBA{255, 200, 0, 255}
)

// LaneDash is the on/off pattern of the lane dividers.
var LaneDash = []float64{20, 20}

// MarkingWidth is the stroke width of dividers and shoulders.
const MarkingWidth = 4
