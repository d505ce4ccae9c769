package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jamiegibney/trig-visuals/internal/config"
	"github.com/jamiegibney/trig-visuals/internal/game"
)

func main() {
	configPath := flag.String("config", "", "optional YAML settings file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle("Unit Circle - Space: Run/Pause, L: Labels, V: Values, T: Arc, Esc/Q: Quit")

	g, err := game.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
