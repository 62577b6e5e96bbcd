package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/racecar/pkg/config"
	"github.com/golangdaddy/racecar/pkg/logging"
	"github.com/golangdaddy/racecar/pkg/sound"
	"github.com/golangdaddy/racecar/pkg/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "racecar: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	// tcell owns the terminal, so logs go to a file.
	logPath := config.GetEnv("RACECAR_LOG_FILE", "racecar.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer logFile.Close()

	logger, err := logging.New(logFile, cfg.LogLevel)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialising screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Non-fatal, the game runs without sound.
	player, _ := sound.New(logger)
	defer player.Close()

	g, err := term.NewGame(screen, cfg, logger, player)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = g.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
