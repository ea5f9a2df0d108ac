package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"highcard-game/internal/config"
	"highcard-game/internal/game"
)

func main() {
	log.Println("Starting high card game...")

	opts, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	g := game.New(opts, rng)
	g.Run(os.Stdin, os.Stdout)
}
