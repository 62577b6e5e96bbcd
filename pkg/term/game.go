// Package term plays the game inside a terminal using tcell.
package term

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/racecar/pkg/config"
	"github.com/golangdaddy/racecar/pkg/session"
)

// Sound plays short effects. A nil Sound is silent.
type Sound interface {
	Hit()
}

var (
	vergeColor  = color.RGBA{30, 100, 30, 255}
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
)

// Game runs a session on a tcell screen.
type Game struct {
	screen  tcell.Screen
	cfg     config.Config
	logger  *log.Logger
	session *session.Session
	keys    *Keys
	sound   Sound

	width, height int
}

// NewGame builds a session sized to the screen. The screen must already be
// initialised. A nil logger discards output.
func NewGame(screen tcell.Screen, cfg config.Config, logger *log.Logger, sound Sound) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s, err := session.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		screen:  screen,
		cfg:     cfg,
		logger:  logger,
		session: s,
		keys:    NewKeys(s.Controls()),
		sound:   sound,
	}
	s.OnHit(func(session.Hit) {
		if g.sound != nil {
			g.sound.Hit()
		}
	})
	g.resize()
	return g, nil
}

// Session exposes the running session.
func (g *Game) Session() *session.Session { return g.session }

// playRows is the number of rows given to the road; the last row is the
// status line.
func (g *Game) playRows() int {
	return max(g.height-1, 1)
}

func (g *Game) resize() {
	g.width, g.height = g.screen.Size()
	g.session.SetViewport(float64(g.cfg.CanvasWidth), float64(g.playRows())*CellHeight)
	g.logger.Debug("terminal resized", "cols", g.width, "rows", g.height)
}

// Run advances the session at the configured tick rate until ctx is
// cancelled or the player quits.
func (g *Game) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.cfg.TickDuration())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go g.screen.ChannelEvents(events, quit)

	g.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !g.HandleEvent(ev, time.Now()) {
				g.logger.Info("session ended", "distance", g.session.DistanceText(), "hits", g.session.Hits())
				return nil
			}

		case now := <-ticker.C:
			g.Step(now)
			g.Draw()
		}
	}
}

// HandleEvent applies one terminal event. It returns false when the player
// asked to quit.
func (g *Game) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
			return false
		}
		g.keys.Handle(ev, now)

	case *tcell.EventResize:
		g.screen.Sync()
		g.resize()
	}
	return true
}

// Step releases expired keys and advances the session by one tick.
func (g *Game) Step(now time.Time) []session.Hit {
	g.keys.Expire(now)
	return g.session.Tick()
}

// Draw renders the verge, the road and the status line.
func (g *Game) Draw() {
	g.screen.Clear()

	rows := g.playRows()
	verge := tcell.StyleDefault.Background(tcellColor(vergeColor))
	for y := 0; y < rows; y++ {
		for x := 0; x < g.width; x++ {
			g.screen.SetContent(x, y, ' ', nil, verge)
		}
	}

	roadCols := int(float64(g.cfg.CanvasWidth) / CellWidth)
	originCol := (g.width - roadCols) / 2
	g.session.Render(NewCanvas(g.screen, originCol, 0, rows))

	g.drawStatus()
	g.screen.Show()
}

func (g *Game) drawStatus() {
	player := g.session.Player()
	status := fmt.Sprintf(" DIST %s  SPEED %.1f  HITS %d  CARS %d  [arrows/wasd, q to quit]",
		g.session.DistanceText(), player.Speed, g.session.Hits(), len(g.session.Traffic()))

	row := g.height - 1
	for x := 0; x < g.width; x++ {
		g.screen.SetContent(x, row, ' ', nil, statusStyle)
	}
	for i, r := range []rune(status) {
		if i >= g.width {
			break
		}
		g.screen.SetContent(i, row, r, nil, statusStyle)
	}
}
