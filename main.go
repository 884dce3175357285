package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/bouncing-balls-go/internal/sim"
)

func main() {
	configPath := flag.String("config", "", "JSON config file (optional)")
	width := flag.Int("width", 800, "initial window width")
	height := flag.Int("height", 600, "initial window height")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	showHUD := flag.Bool("hud", false, "show gravity and TPS overlay")
	flag.Parse()

	cfg := sim.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = sim.LoadConfig(*configPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("starting %dx%d with %d balls, gravity %.2f, seed %d", *width, *height, cfg.MaxBalls, cfg.Gravity, *seed)

	// Initialize world with the window size
	rng := rand.New(rand.NewSource(*seed))
	world := sim.NewWorld(cfg, float64(*width), float64(*height), rng)

	// Set up Ebitengine game
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Bouncing Balls")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60) // One world step per tick

	// Run the game loop
	if err := ebiten.RunGame(NewGame(world, *showHUD)); err != nil {
		log.Fatal(err)
	}
}
