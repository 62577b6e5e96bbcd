package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Generator creates roadside textures. Textures wrap vertically so they can
// be tiled while the camera scrolls.
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateVerge creates the grass verge shown either side of the road.
func (g *Generator) GenerateVerge(seed int64) *ebiten.Image {
	return ebiten.NewImageFromImage(g.Verge(seed))
}

// Verge renders the verge into a plain RGBA image. The same seed always
// produces the same texture.
func (g *Generator) Verge(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	// Base grass layer
	base := color.RGBA{30, 100, 30, 255}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, base)
		}
	}

	// Speckle the grass
	for i := 0; i < g.Width*g.Height/10; i++ {
		shade := uint8(80 + rng.Intn(60))
		img.SetRGBA(rng.Intn(g.Width), rng.Intn(g.Height), color.RGBA{30, shade, 30, 255})
	}

	// Vegetation thins out and thickens again down the tile
	for y := 0; y < g.Height; y += 12 {
		density := 0.35 + 0.25*math.Sin(float64(y)*2*math.Pi/float64(g.Height))
		for x := 0; x < g.Width; x += 8 + rng.Intn(16) {
			if rng.Float64() > density {
				continue
			}
			drawX := x + rng.Intn(10) - 5
			drawY := y + rng.Intn(10) - 5
			if rng.Float64() < 0.3 {
				g.drawTree(img, drawX, drawY, rng)
			} else {
				g.drawBush(img, drawX, drawY, rng)
			}
		}
	}

	return img
}

// set plots a pixel, wrapping y and dropping anything off the sides.
func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x < 0 || x >= g.Width || g.Height == 0 {
		return
	}
	y %= g.Height
	if y < 0 {
		y += g.Height
	}
	img.SetRGBA(x, y, c)
}

// drawTree draws a pine seen from slightly above.
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 30 + rng.Intn(24)
	width := 16 + rng.Intn(12)

	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 3 + rng.Intn(3)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2+1; tx++ {
			g.set(img, x+tx, y-ty, trunkColor)
		}
	}

	leaves := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}
	for l := 0; l < 3; l++ {
		layerY := y - height/3 - l*height/4
		layerW := max(width-l*5, 5)
		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, layerY-ly, leaves)
			}
		}
	}
}

func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 4 + rng.Intn(8)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}
