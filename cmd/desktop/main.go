package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/ghostbow/internal/asset"
	"github.com/tomz197/ghostbow/internal/config"
	"github.com/tomz197/ghostbow/internal/gui"
)

func main() {
	settings, err := config.Load(config.ConfigPath())
	if err != nil {
		log.Fatal("failed to load settings", "err", err)
	}
	logger := settings.Logger(os.Stderr, "desktop")

	app, err := gui.New(settings, asset.Default(), logger)
	if err != nil {
		logger.Fatal("failed to create app", "err", err)
	}

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Ghostbow")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(app); err != nil {
		logger.Fatal("game error", "err", err)
	}
}
