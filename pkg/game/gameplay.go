package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/golangdaddy/racecar/pkg/background"
	"github.com/golangdaddy/racecar/pkg/config"
	"github.com/golangdaddy/racecar/pkg/controls"
	"github.com/golangdaddy/racecar/pkg/session"
	"github.com/golangdaddy/racecar/pkg/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MPHPerPixelPerTick converts the car's per-tick speed into the
// speedometer reading. At 60 TPS a top speed of 13 px/tick reads ~130 MPH.
const MPHPerPixelPerTick = 10.0

// GameplayScreen runs a session and draws it in the middle of the window.
type GameplayScreen struct {
	cfg     config.Config
	session *session.Session
	logger  *log.Logger
	keys    *controls.Bindings[ebiten.Key]

	screenWidth  int
	screenHeight int
	verge        *ebiten.Image
	vergeSeed    int64

	onQuit func() // back to the title screen
}

// NewGameplayScreen starts a fresh session.
func NewGameplayScreen(cfg config.Config, logger *log.Logger, onQuit func()) (*GameplayScreen, error) {
	s, err := session.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	gs := &GameplayScreen{
		cfg:          cfg,
		session:      s,
		keys:         newKeyBindings(),
		logger:       logger,
		screenWidth:  cfg.ScreenWidth,
		screenHeight: cfg.CanvasHeight,
		vergeSeed:    cfg.Seed,
		onQuit:       onQuit,
	}
	return gs, nil
}

// Resize follows the window height, like the playfield does.
func (gs *GameplayScreen) Resize(width, height int) {
	if width == gs.screenWidth && height == gs.screenHeight {
		return
	}
	gs.screenWidth, gs.screenHeight = width, height
	gs.session.SetViewport(float64(gs.cfg.CanvasWidth), float64(height))
	gs.verge = nil
	gs.logger.Debug("viewport resized", "width", width, "height", height)
}

// Update runs one tick of the session.
func (gs *GameplayScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		gs.logger.Info("session ended", "distance", gs.session.DistanceText(), "hits", gs.session.Hits())
		if gs.onQuit != nil {
			gs.onQuit()
		}
		return nil
	}

	gs.keys.Poll(gs.session.Controls(), ebiten.IsKeyPressed)
	gs.session.Tick()
	return nil
}

// Draw renders the verge, the playfield and the HUD.
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 100, 30, 255})

	originX := float64(gs.screenWidth-gs.cfg.CanvasWidth) / 2
	gs.drawVerge(screen, originX)

	canvas := NewCanvas(screen, originX, 0)
	gs.session.Render(canvas)

	ui.DrawScoreboard(screen, ui.Scoreboard{
		Distance: gs.session.DistanceText(),
		SpeedMPH: gs.session.Player().Speed * MPHPerPixelPerTick,
		Hits:     gs.session.Hits(),
		Traffic:  len(gs.session.Traffic()),
	})

	if gs.cfg.LogLevel == "debug" {
		p := gs.session.Player()
		msg := fmt.Sprintf("TPS %.0f FPS %.0f\nx %.1f y %.1f\ncam %.1f", ebiten.ActualTPS(), ebiten.ActualFPS(), p.X, p.Y, gs.session.CameraOffset())
		ebitenutil.DebugPrintAt(screen, msg, gs.screenWidth-110, 10)
	}
}

// drawVerge tiles the roadside texture on both sides of the playfield and
// scrolls it with the camera.
func (gs *GameplayScreen) drawVerge(screen *ebiten.Image, originX float64) {
	vergeWidth := int(originX)
	if vergeWidth <= 0 || gs.screenHeight <= 0 {
		return
	}
	if gs.verge == nil {
		gen := background.NewGenerator(vergeWidth, gs.screenHeight)
		gs.verge = gen.GenerateVerge(gs.vergeSeed)
	}

	height := float64(gs.screenHeight)
	offset := math.Mod(gs.session.CameraOffset(), height)
	if offset < 0 {
		offset += height
	}

	for _, x := range []float64{0, originX + float64(gs.cfg.CanvasWidth)} {
		for _, y := range []float64{offset - height, offset} {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(x, y)
			screen.DrawImage(gs.verge, op)
		}
	}
}
