package main

import (
	"fmt"
	"os"

	"github.com/golangdaddy/racecar/pkg/config"
	"github.com/golangdaddy/racecar/pkg/game"
	"github.com/golangdaddy/racecar/pkg/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	// The window starts at the playfield height and may be resized
	// vertically; the road follows.
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.CanvasHeight)
	ebiten.SetWindowTitle("Racecar")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	logger.Info("starting", "tps", cfg.TPS, "lanes", cfg.LaneCount)
	if err := ebiten.RunGame(game.NewGame(cfg, logger)); err != nil {
		logger.Fatal("game exited", "err", err)
	}
}
