package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GaugeMaxMPH is the speed at which the gauge bar is full.
const GaugeMaxMPH = 130.0

// Scoreboard holds the values shown in the gameplay HUD.
type Scoreboard struct {
	Distance string
	SpeedMPH float64
	Hits     int64
	Traffic  int
}

// DrawScoreboard draws the distance panel in the top-left corner and the
// speedometer below it.
func DrawScoreboard(screen *ebiten.Image, sb Scoreboard) {
	x := 10.0
	y := 10.0
	width := 120.0
	height := 150.0

	// Panel background with border
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{20, 20, 30, 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 2, color.RGBA{100, 100, 120, 255}, false)

	face := text.NewGoXFace(bitmapfont.Face)

	// Distance is the headline number
	drawCentered(screen, face, "DISTANCE", x+width/2, y+10, 1, color.RGBA{200, 200, 200, 255})
	drawCentered(screen, face, sb.Distance, x+width/2, y+28, 2.5, color.RGBA{255, 200, 50, 255})

	// Speed value and label
	speedColor := color.RGBA{100, 255, 100, 255}
	switch {
	case sb.SpeedMPH < 0:
		speedColor = color.RGBA{150, 200, 255, 255}
	case sb.SpeedMPH >= 100:
		speedColor = color.RGBA{255, 100, 100, 255}
	case sb.SpeedMPH >= 60:
		speedColor = color.RGBA{255, 255, 100, 255}
	}
	drawCentered(screen, face, fmt.Sprintf("%.0f", sb.SpeedMPH), x+width/2, y+68, 2, speedColor)
	drawCentered(screen, face, "MPH", x+width/2, y+96, 1, color.RGBA{200, 200, 200, 255})

	drawSpeedGauge(screen, x+10, y+112, width-20, 10, sb.SpeedMPH)

	stats := fmt.Sprintf("HITS %d  CARS %d", sb.Hits, sb.Traffic)
	drawCentered(screen, face, stats, x+width/2, y+height-20, 1, color.RGBA{180, 180, 200, 255})
}

func drawCentered(screen *ebiten.Image, face text.Face, s string, centerX, y, scale float64, clr color.Color) {
	w := text.Advance(s, face) * scale
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(centerX-w/2, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// DrawCentered draws s in the bitmap font, scaled and centered on centerX
// with its top at y.
func DrawCentered(screen *ebiten.Image, s string, centerX, y, scale float64, clr color.Color) {
	drawCentered(screen, text.NewGoXFace(bitmapfont.Face), s, centerX, y, scale, clr)
}

// drawSpeedGauge draws a horizontal bar filled in proportion to speed.
// Reverse speed fills the bar the same way.
func drawSpeedGauge(screen *ebiten.Image, x, y, width, height, speedMPH float64) {
	speedPercent := math.Min(math.Abs(speedMPH)/GaugeMaxMPH, 1.0)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(width), float32(height), color.RGBA{40, 40, 40, 255}, false)

	filled := width * speedPercent
	if filled > 0 {
		// Green to yellow, then yellow to red
		var barColor color.RGBA
		if speedPercent < 0.5 {
			ratio := speedPercent / 0.5
			barColor = color.RGBA{uint8(100 + ratio*155), 255, 100, 255}
		} else {
			ratio := (speedPercent - 0.5) / 0.5
			barColor = color.RGBA{255, uint8(255 - ratio*155), uint8(100 - ratio*100), 255}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(filled), float32(height), barColor, false)
	}

	vector.StrokeRect(screen, float32(x), float32(y), float32(width), float32(height), 1, color.RGBA{150, 150, 150, 255}, false)
}
