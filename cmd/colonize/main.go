//go:build ebiten

// Command colonize opens an interactive viewer for space-colonization growth.
package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"venation/internal/app"
)

func main() {
	log.SetPrefix("colonize: ")
	log.SetFlags(0)

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}

	file, err := cfg.File()
	if err != nil {
		log.Fatal(err)
	}
	engine, err := file.Build()
	if err != nil {
		log.Fatalf("build scene: %v", err)
	}

	game := app.New(cfg, engine, file)
	size := engine.Size()

	ebiten.SetWindowTitle("venation - " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUDWidth, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
