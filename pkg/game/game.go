package game

import (
	"github.com/charmbracelet/log"
	"github.com/golangdaddy/racecar/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements the ebiten.Game interface and switches between screens.
type Game struct {
	cfg           config.Config
	logger        *log.Logger
	currentScreen Screen
	width, height int
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// resizable screens follow the window's logical size.
type resizable interface {
	Resize(width, height int)
}

// NewGame creates a new game instance on the title screen.
func NewGame(cfg config.Config, logger *log.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		logger: logger,
		width:  cfg.ScreenWidth,
		height: cfg.CanvasHeight,
	}
	g.showTitle()
	return g
}

func (g *Game) showTitle() {
	ts := NewTitleScreen(g.cfg, g.logger, g.startGameplay)
	ts.Resize(g.width, g.height)
	g.currentScreen = ts
}

// startGameplay transitions to a fresh driving session.
func (g *Game) startGameplay() {
	gs, err := NewGameplayScreen(g.cfg, g.logger, g.showTitle)
	if err != nil {
		g.logger.Error("failed to start session", "err", err)
		return
	}
	gs.Resize(g.width, g.height)
	g.currentScreen = gs
}

// Update handles game logic updates. It runs at the configured TPS no
// matter the display's refresh rate.
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout keeps the logical width fixed and follows the window height.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if outsideHeight > 0 && outsideHeight != g.height {
		g.height = outsideHeight
		if r, ok := g.currentScreen.(resizable); ok {
			r.Resize(g.width, g.height)
		}
	}
	return g.width, g.height
}
