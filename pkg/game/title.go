package game

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/golangdaddy/racecar/pkg/config"
	"github.com/golangdaddy/racecar/pkg/session"
	"github.com/golangdaddy/racecar/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// TitleScreen shows the game name over a demo session driven by the
// autopilot, and starts the real game on Enter or Space.
type TitleScreen struct {
	cfg     config.Config
	demo    *session.Session
	pilot   *session.Autopilot
	ticks   int
	onStart func()
}

// NewTitleScreen builds the demo. If the demo cannot be built the screen
// still works, it just shows an empty road.
func NewTitleScreen(cfg config.Config, logger *log.Logger, onStart func()) *TitleScreen {
	ts := &TitleScreen{cfg: cfg, onStart: onStart}

	demo, err := session.New(cfg, log.New(io.Discard))
	if err != nil {
		logger.Error("title demo unavailable", "err", err)
		return ts
	}
	ts.demo = demo
	ts.pilot = session.NewAutopilot(demo)
	return ts
}

// Resize keeps the demo road as tall as the window.
func (ts *TitleScreen) Resize(width, height int) {
	if ts.demo != nil {
		ts.demo.SetViewport(float64(ts.cfg.CanvasWidth), float64(height))
	}
}

// Update advances the demo and watches for the start keys.
func (ts *TitleScreen) Update() error {
	ts.ticks++
	if ts.demo != nil {
		ts.pilot.Steer(ts.demo)
		ts.demo.Tick()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ts.onStart != nil {
			ts.onStart()
		}
	}
	return nil
}

// Draw renders the demo road with the title card over it.
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(color.RGBA{15, 20, 35, 255})

	if ts.demo != nil {
		originX := float64(width-ts.cfg.CanvasWidth) / 2
		ts.demo.Render(NewCanvas(screen, originX, 0))
	}

	// Dim the demo so the text reads
	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), color.RGBA{0, 0, 0, 150}, false)

	centerX := float64(width) / 2
	top := float64(height) / 4

	ui.DrawCentered(screen, "RACECAR", centerX, top, 6, color.RGBA{255, 200, 50, 255})
	ui.DrawCentered(screen, "Dodge the Traffic", centerX, top+90, 2, color.RGBA{180, 180, 200, 255})

	// Padded to one width so the columns line up when centered
	controlsHelp := [][2]string{
		{"UP / W", "accelerate"},
		{"DOWN / S", "brake, reverse"},
		{"LEFT / A", "steer left"},
		{"RIGHT / D", "steer right"},
		{"ESC", "back to title"},
	}
	for i, c := range controlsHelp {
		line := fmt.Sprintf("%-12s%-14s", c[0], c[1])
		ui.DrawCentered(screen, line, centerX, top+150+float64(i)*18, 1, color.RGBA{200, 200, 200, 255})
	}

	tunables := fmt.Sprintf("%d LANES   TOP SPEED %.0f MPH   TRAFFIC EVERY %v",
		ts.cfg.LaneCount, ts.cfg.Player.MaxSpeed*MPHPerPixelPerTick, ts.cfg.Traffic.SpawnInterval)
	ui.DrawCentered(screen, tunables, centerX, top+260, 1, color.RGBA{120, 160, 200, 255})

	// Blink twice a second
	if (ts.ticks*2/max(ts.cfg.TPS, 1))%2 == 0 {
		ui.DrawCentered(screen, "Press ENTER or SPACE to start", centerX, float64(height)-100, 1.5, color.RGBA{150, 200, 255, 255})
	}
}
