// Command sandterm runs the sand world inside a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"sandfall/internal/app"
	"sandfall/internal/sims/sand"
	"sandfall/internal/term"
	"sandfall/pkg/logger"
)

func main() {
	logger.Init()

	cfg := app.NewConfig()
	cfg.World.Width, cfg.World.Height = 0, 0
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg, *logPath); err != nil {
		logger.Log.WithError(err).Fatal("sandterm failed")
	}
}

func run(cfg *app.Config, logPath string) error {
	// The terminal owns stdout and stderr while the screen is up. Deferred
	// first so stderr comes back only after the screen is torn down.
	defer logger.SetOutput(os.Stderr)
	logger.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	// Unset dimensions fill the terminal, leaving one row for status.
	cols, rows := screen.Size()
	if cfg.World.Width <= 0 {
		cfg.World.Width = cols
	}
	if cfg.World.Height <= 0 {
		cfg.World.Height = 2 * (rows - 1)
	}

	world, err := sand.NewWithConfig(cfg.World)
	if err != nil {
		return err
	}
	tools, err := cfg.Tools()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	viewer := term.NewViewer(screen, world, tools, cfg.TPS)
	if err := viewer.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
