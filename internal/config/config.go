// Package config loads and validates the runtime options of the game.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Mode selects which game variant the loop runs.
type Mode string

const (
	ModeGuess    Mode = "guess"    // find the high card among face-down table cards
	ModeShowdown Mode = "showdown" // deal full hands and compare hand values
)

// Bounds for the configurable counts. Values outside these ranges are
// rejected at load time, before any game state is created.
const (
	MinCardsPerHand = 3
	MaxCardsPerHand = 5
	MinPlayers      = 2
	MaxPlayers      = 5
)

// Options holds the validated runtime configuration.
type Options struct {
	CardsPerHand int           // cards dealt per hand or table, 3..5
	Players      int           // player count in showdown mode, 2..5
	Mode         Mode          // game variant
	Seed         int64         // RNG seed; 0 means time-based
	Delay        time.Duration // pacing pause between reveal phases
	ShowIndex    bool          // print column indexes under rendered hands
}

// Default returns the options used when no environment overrides are set.
func Default() Options {
	return Options{
		CardsPerHand: 3,
		Players:      3,
		Mode:         ModeGuess,
		Delay:        time.Second,
		ShowIndex:    true,
	}
}

// Load reads options from the environment (and a .env file, if present) and
// validates them.
func Load() (Options, error) {
	_ = godotenv.Load()

	opts := Default()
	opts.CardsPerHand = atoiDef(os.Getenv("HIGHCARD_CARDS"), opts.CardsPerHand)
	opts.Players = atoiDef(os.Getenv("HIGHCARD_PLAYERS"), opts.Players)
	if v := os.Getenv("HIGHCARD_MODE"); v != "" {
		opts.Mode = Mode(v)
	}
	opts.Seed = int64(atoiDef(os.Getenv("HIGHCARD_SEED"), 0))
	opts.Delay = time.Duration(atoiDef(os.Getenv("HIGHCARD_DELAY_MS"), int(opts.Delay/time.Millisecond))) * time.Millisecond
	if asBool(os.Getenv("HIGHCARD_HIDE_INDEX")) {
		opts.ShowIndex = false
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Validate checks that every configured count lies in its allowed range.
// Out-of-range values are rejected outright, never clamped.
func (o Options) Validate() error {
	if o.CardsPerHand < MinCardsPerHand || o.CardsPerHand > MaxCardsPerHand {
		return fmt.Errorf("cards per hand must be between %d and %d, got %d", MinCardsPerHand, MaxCardsPerHand, o.CardsPerHand)
	}
	if o.Players < MinPlayers || o.Players > MaxPlayers {
		return fmt.Errorf("players must be between %d and %d, got %d", MinPlayers, MaxPlayers, o.Players)
	}
	if o.Mode != ModeGuess && o.Mode != ModeShowdown {
		return fmt.Errorf("unknown mode %q (want %q or %q)", o.Mode, ModeGuess, ModeShowdown)
	}
	if o.Delay < 0 {
		return fmt.Errorf("delay must be >= 0, got %s", o.Delay)
	}
	return nil
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func asBool(s string) bool {
	switch s {
	case "1", "true", "TRUE", "yes", "on":
		return true
	}
	return false
}
