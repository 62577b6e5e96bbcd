package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/racecar/pkg/geom"
)

// One terminal cell covers CellWidth×CellHeight world pixels. Cells are about
// twice as tall as they are wide, which keeps cars roughly in proportion.
const (
	CellWidth  = 5.0
	CellHeight = 10.0
)

type offset struct{ x, y float64 }

// Canvas draws world-space shapes into the cells of a tcell screen.
type Canvas struct {
	screen    tcell.Screen
	originCol int
	originRow int
	rows      int

	tx, ty float64
	stack  []offset
}

// NewCanvas returns a canvas whose world origin sits at the given cell.
// Nothing is drawn at or below row originRow+rows.
func NewCanvas(screen tcell.Screen, originCol, originRow, rows int) *Canvas {
	return &Canvas{
		screen:    screen,
		originCol: originCol,
		originRow: originRow,
		rows:      rows,
	}
}

func (c *Canvas) Save() {
	c.stack = append(c.stack, offset{c.tx, c.ty})
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.tx, c.ty = top.x, top.y
}

func (c *Canvas) Translate(dx, dy float64) {
	c.tx += dx
	c.ty += dy
}

// Cell maps a world point to the terminal cell that contains it.
func (c *Canvas) Cell(p geom.Point) (col, row int) {
	col = c.originCol + int(math.Floor((p.X+c.tx)/CellWidth))
	row = c.originRow + int(math.Floor((p.Y+c.ty)/CellHeight))
	return col, row
}

// FillRect paints the background of every cell whose centre lies in r.
func (c *Canvas) FillRect(r geom.Rect, clr color.Color) {
	style := tcell.StyleDefault.Background(tcellColor(clr))

	x0 := int(math.Round((r.X + c.tx) / CellWidth))
	x1 := int(math.Round((r.X + r.W + c.tx) / CellWidth))
	y0 := int(math.Round((r.Y + c.ty) / CellHeight))
	y1 := int(math.Round((r.Y + r.H + c.ty) / CellHeight))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.set(c.originCol+x, c.originRow+y, ' ', style, false)
		}
	}
}

// StrokeLine draws a line of box characters over whatever is already in the
// cells, keeping their background.
func (c *Canvas) StrokeLine(from, to geom.Point, width float64, dash []float64, clr color.Color) {
	fg := tcellColor(clr)
	ch := lineRune(from, to, width)

	for _, seg := range geom.Dashes(from, to, dash) {
		c.strokeSegment(seg[0], seg[1], ch, fg)
	}
}

func (c *Canvas) strokeSegment(from, to geom.Point, ch rune, fg tcell.Color) {
	dx := (to.X - from.X) / CellWidth
	dy := (to.Y - from.Y) / CellHeight
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		return
	}

	// Sample cell centres along the segment so a 20px dash covers two rows.
	for i := 0; i < steps; i++ {
		t := (float64(i) + 0.5) / float64(steps)
		col, row := c.Cell(geom.LerpPoint(from, to, t))
		c.set(col, row, ch, tcell.StyleDefault.Foreground(fg), true)
	}
}

// set writes a cell, optionally keeping the background already there.
func (c *Canvas) set(col, row int, ch rune, style tcell.Style, keepBackground bool) {
	if row < c.originRow || row >= c.originRow+c.rows {
		return
	}
	w, h := c.screen.Size()
	if col < 0 || col >= w || row < 0 || row >= h {
		return
	}
	if keepBackground {
		_, _, existing, _ := c.screen.GetContent(col, row)
		_, bg, _ := existing.Decompose()
		style = style.Background(bg)
	}
	c.screen.SetContent(col, row, ch, nil, style)
}

func lineRune(from, to geom.Point, width float64) rune {
	vertical := math.Abs(to.X-from.X) <= math.Abs(to.Y-from.Y)
	switch {
	case vertical && width > 2:
		return '┃'
	case vertical:
		return '│'
	case width > 2:
		return '━'
	default:
		return '─'
	}
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
