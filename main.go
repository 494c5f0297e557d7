package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/flowfield-shapes/internal/effect"
)

func main() {
	variantName := flag.String("variant", "drift", "preset: "+strings.Join(effect.VariantNames(), ", "))
	configPath := flag.String("config", "", "JSON file overriding the preset")
	width := flag.Int("width", 600, "canvas width in pixels")
	height := flag.Int("height", 600, "canvas height in pixels")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	debug := flag.Bool("debug", true, "start with the grid overlay hidden")
	tps := flag.Int("tps", 60, "ticks per second")
	gridPath := flag.String("grid", "grid.json", "file used by the S/L save and load keys")
	flag.Parse()

	variant, ok := effect.Variants[*variantName]
	if !ok {
		log.Fatalf("unknown variant %q", *variantName)
	}
	if *configPath != "" {
		var err error
		if variant, err = effect.LoadVariant(*configPath, variant); err != nil {
			log.Fatal(err)
		}
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	// Initialize simulation with the chosen preset
	sim, err := NewSimulation(*width, *height, variant, rand.New(rand.NewSource(*seed)))
	if err != nil {
		log.Fatal(err)
	}
	sim.effect.Debug = *debug
	sim.gridPath = *gridPath
	v := sim.effect.Variant()
	log.Printf("%s: %d shapes, %dx%d cells, %s bias in [%g,%g), %s edges, seed %d",
		v.Name, len(sim.effect.Shapes), sim.effect.Field.Cols, sim.effect.Field.Rows,
		v.BiasSource, v.BiasMin, v.BiasMax, sim.effect.Edges, *seed)

	// Set up Ebitengine game
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Flow Field Shapes - " + v.Name)
	ebiten.SetTPS(*tps)

	// Run the game loop
	if err := ebiten.RunGame(sim); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
