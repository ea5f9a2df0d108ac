package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"highcard-game/internal/config"
	"highcard-game/internal/shared"
)

func testOptions(mode config.Mode) config.Options {
	opts := config.Default()
	opts.Mode = mode
	opts.Delay = 0
	return opts
}

func newTestGame(t *testing.T, mode config.Mode, seed int64) *Game {
	t.Helper()
	opts := testOptions(mode)
	if err := opts.Validate(); err != nil {
		t.Fatalf("test options invalid: %v", err)
	}
	return New(opts, rand.New(rand.NewSource(seed)))
}

func TestDealHandsConsumesDeck(t *testing.T) {
	g := newTestGame(t, config.ModeShowdown, 1)

	g.DealHands()

	for i, p := range g.Players {
		if len(p.Hand) != 3 {
			t.Errorf("player %d holds %d cards, want 3", i, len(p.Hand))
		}
	}
	if g.Deck.Len() != 43 {
		t.Errorf("deck has %d cards after dealing, want 43", g.Deck.Len())
	}

	// The deck and the hands still partition the original 52 cards.
	seen := make(map[shared.Card]bool)
	for _, card := range g.Deck.Cards {
		seen[card] = true
	}
	for _, p := range g.Players {
		for _, card := range p.Hand {
			if seen[card] {
				t.Errorf("card %s appears in both deck and a hand", card)
			}
			seen[card] = true
		}
	}
	if len(seen) != 52 {
		t.Errorf("deck and hands cover %d distinct cards, want 52", len(seen))
	}
}

func TestShowdownWinnerGreatestSum(t *testing.T) {
	g := newTestGame(t, config.ModeShowdown, 42)
	g.DealHands()

	winner := g.ShowdownWinner()
	best := g.HandValue(winner)
	for i := range g.Players {
		if g.HandValue(i) > best {
			t.Errorf("player %d has value %d > declared winner's %d", i, g.HandValue(i), best)
		}
	}
}

func TestShowdownTieGoesToFirstPlayer(t *testing.T) {
	g := newTestGame(t, config.ModeShowdown, 1)

	// Equal hands: player 0 and player 2 both sum to 6+8=14, player 1 lower.
	g.Players[0].Hand = []shared.Card{
		shared.NewCard(shared.Hearts, shared.Two),    // 6
		shared.NewCard(shared.Diamonds, shared.Four), // 8
	}
	g.Players[1].Hand = []shared.Card{
		shared.NewCard(shared.Spades, shared.Two),   // 2
		shared.NewCard(shared.Spades, shared.Three), // 3
	}
	g.Players[2].Hand = []shared.Card{
		shared.NewCard(shared.Diamonds, shared.Three), // 6
		shared.NewCard(shared.Spades, shared.Eight),   // 8
	}

	if winner := g.ShowdownWinner(); winner != 0 {
		t.Errorf("ShowdownWinner() = %d, want 0 (first player reaching the max)", winner)
	}
}

func TestHighCardIndex(t *testing.T) {
	g := newTestGame(t, config.ModeGuess, 1)
	g.Table = []shared.Card{
		shared.NewCard(shared.Spades, shared.Ace),  // 11
		shared.NewCard(shared.Clubs, shared.King),  // 40
		shared.NewCard(shared.Hearts, shared.Nine), // 27
	}

	if got := g.HighCardIndex(); got != 1 {
		t.Errorf("HighCardIndex() = %d, want 1", got)
	}
}

func TestHighCardIndexTieFirst(t *testing.T) {
	g := newTestGame(t, config.ModeGuess, 1)
	g.Table = []shared.Card{
		shared.NewCard(shared.Diamonds, shared.Five), // 10
		shared.NewCard(shared.Spades, shared.Ten),    // 10
		shared.NewCard(shared.Spades, shared.Two),    // 2
	}

	if got := g.HighCardIndex(); got != 0 {
		t.Errorf("HighCardIndex() = %d, want 0 on tie", got)
	}
}

func TestChoice(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		line string
		want int
	}{
		{"2\n", 2},
		{"0\n", 0},
		{" 1 \n", 1},
		{"9\n", 2},  // over-range falls back to the last card
		{"12\n", 2}, // over-range falls back to the last card
	}
	for _, tt := range tests {
		if got := Choice(tt.line, 3, rng); got != tt.want {
			t.Errorf("Choice(%q, 3) = %d, want %d", tt.line, got, tt.want)
		}
	}

	// Blank and non-numeric input fall back to a random valid index.
	for _, line := range []string{"\n", "abc\n", "-4\n"} {
		got := Choice(line, 3, rng)
		if got < 0 || got > 2 {
			t.Errorf("Choice(%q, 3) = %d, out of range", line, got)
		}
	}
}

func TestGuessRoundFlow(t *testing.T) {
	g := newTestGame(t, config.ModeGuess, 3)

	g.DealTable()
	if len(g.Table) != 3 || g.Deck.Len() != 49 {
		t.Fatalf("table %d / deck %d after deal, want 3 / 49", len(g.Table), g.Deck.Len())
	}
	for i := range g.Table {
		if g.Faces.FaceUp(i) {
			t.Errorf("table card %d dealt face up", i)
		}
	}

	g.Toggle(1)
	if !g.Faces.FaceUp(1) || g.Faces.FaceUp(0) {
		t.Errorf("Toggle(1) left faces %v", g.Faces)
	}

	g.RevealAll()
	for i := range g.Table {
		if !g.Faces.FaceUp(i) {
			t.Errorf("card %d still face down after RevealAll", i)
		}
	}

	g.RecordRound(true)
	g.RecordRound(false)
	if g.Wins != 1 || g.Rounds != 2 {
		t.Errorf("totals = %d/%d, want 1/2", g.Wins, g.Rounds)
	}
	if got := g.String(); got != "Won 1 out of 2 games.\nCards Left 49" {
		t.Errorf("String() = %q", got)
	}
}

func TestRunGuessPlaysUntilDeckExhausted(t *testing.T) {
	g := newTestGame(t, config.ModeGuess, 5)

	// Always pick index 0; a 52-card deck covers 17 three-card rounds.
	in := strings.NewReader(strings.Repeat("0\n", 20))
	var out strings.Builder
	g.RunWith(in, &out, func(time.Duration) {})

	if g.Rounds != 17 {
		t.Errorf("played %d rounds, want 17", g.Rounds)
	}
	if g.Deck.Len() != 1 {
		t.Errorf("deck has %d cards left, want 1", g.Deck.Len())
	}
	if g.State != GameOver {
		t.Errorf("state = %s, want %s", g.State, GameOver)
	}
	if !strings.Contains(out.String(), "Sorry ran out of cards.") {
		t.Errorf("missing end-of-deck message in output")
	}
}

func TestRunShowdownEndToEnd(t *testing.T) {
	g := newTestGame(t, config.ModeShowdown, 9)

	// 3 players x 3 cards: 5 full deals consume 45 cards, 7 remain.
	in := strings.NewReader(strings.Repeat("\n", 10))
	var out strings.Builder
	g.RunWith(in, &out, func(time.Duration) {})

	if g.Rounds != 5 {
		t.Errorf("played %d rounds, want 5", g.Rounds)
	}
	if g.Deck.Len() != 7 {
		t.Errorf("deck has %d cards left, want 7", g.Deck.Len())
	}
	if !strings.Contains(out.String(), "wins the round") {
		t.Errorf("missing winner announcement in output")
	}
}
