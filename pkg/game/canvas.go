package game

import (
	"image/color"

	"github.com/golangdaddy/racecar/pkg/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws session geometry onto an ebiten image.
type Canvas struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
}

// NewCanvas targets dst with the world origin at (originX, originY).
func NewCanvas(dst *ebiten.Image, originX, originY float64) *Canvas {
	c := &Canvas{dst: dst}
	c.geo.Translate(originX, originY)
	return c
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.geo)
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(dx, dy float64) {
	c.geo.Translate(dx, dy)
}

func (c *Canvas) FillRect(r geom.Rect, clr color.Color) {
	x, y := c.geo.Apply(r.X, r.Y)
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(r.W), float32(r.H), clr, false)
}

func (c *Canvas) StrokeLine(from, to geom.Point, width float64, dash []float64, clr color.Color) {
	for _, seg := range geom.Dashes(from, to, dash) {
		x0, y0 := c.geo.Apply(seg[0].X, seg[0].Y)
		x1, y1 := c.geo.Apply(seg[1].X, seg[1].Y)
		vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, false)
	}
}
