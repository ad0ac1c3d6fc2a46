//go:build ebiten

package main

import (
	"errors"
	"flag"

	"sandfall/internal/app"
	"sandfall/internal/sims/sand"
	"sandfall/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	logger.Init()

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	world, err := sand.NewWithConfig(cfg.World)
	if err != nil {
		logger.Log.WithError(err).Fatal("cannot create world")
	}
	tools, err := cfg.Tools()
	if err != nil {
		logger.Log.WithError(err).Fatal("bad tool flags")
	}

	game := app.New(world, tools, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("sandfall - " + cfg.World.Scene)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Fatal("game exited")
	}
}
