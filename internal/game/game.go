package game

import (
	"fmt"
	"log"
	"math/rand"

	"highcard-game/internal/config"
	"highcard-game/internal/render"
	"highcard-game/internal/shared"

	"github.com/google/uuid"
)

// State represents the current phase of the game.
type State string

const (
	Dealing   State = "Dealing"   // Cards are being drawn from the deck
	Choosing  State = "Choosing"  // Waiting for the player's pick
	Revealing State = "Revealing" // Faces are being turned up
	RoundOver State = "RoundOver" // A round has been scored
	GameOver  State = "GameOver"  // The deck can no longer cover a round
)

// Game holds the state of one session: the deck, the current table or hands,
// the face-up overlay, and running win totals. The deck is shuffled once at
// construction; all later state changes are driven by the round loop.
type Game struct {
	ID      string
	Deck    *shared.Deck
	Players []*shared.Player
	Table   []shared.Card
	Faces   render.Mask
	State   State

	Wins   int
	Rounds int

	opts config.Options
	rng  *rand.Rand
}

// New initializes a game from validated options and a randomness source, and
// shuffles the deck.
func New(opts config.Options, rng *rand.Rand) *Game {
	players := make([]*shared.Player, opts.Players)
	for i := range players {
		players[i] = shared.NewPlayer(fmt.Sprintf("Player %d", i+1))
	}

	g := &Game{
		ID:      uuid.NewString(),
		Deck:    shared.NewDeck(),
		Players: players,
		State:   Dealing,
		opts:    opts,
		rng:     rng,
	}
	g.Deck.Shuffle(rng)
	log.Printf("Game %s: Created (%s mode, %d cards per hand).", g.ID, opts.Mode, opts.CardsPerHand)
	return g
}

// OutOfCards reports whether the deck can no longer cover one more table
// draw.
func (g *Game) OutOfCards() bool {
	return g.Deck.Len() < g.opts.CardsPerHand
}

// CanDealHands reports whether the deck can cover one more full deal to every
// player.
func (g *Game) CanDealHands() bool {
	return g.Deck.Len() >= g.opts.Players*g.opts.CardsPerHand
}

// DealTable draws the configured number of cards onto the table, all face
// down.
func (g *Game) DealTable() {
	g.State = Dealing
	g.Table = g.Deck.Draw(g.opts.CardsPerHand)
	g.Faces = render.NewMask(len(g.Table))
}

// DealHands deals every player a fresh hand, round-robin, and empties each
// previous hand first.
func (g *Game) DealHands() {
	g.State = Dealing
	hands := g.Deck.Deal(len(g.Players), g.opts.CardsPerHand)
	for i, p := range g.Players {
		p.Hand = hands[i]
	}
}

// HighCardIndex returns the index of the highest-value table card. Ties go to
// the earliest index.
func (g *Game) HighCardIndex() int {
	index := 0
	value := 0
	for i, card := range g.Table {
		if card.Value() > value {
			value = card.Value()
			index = i
		}
	}
	return index
}

// HandValue returns the value sum of player i's hand.
func (g *Game) HandValue(i int) int {
	return g.Players[i].HandValue()
}

// ShowdownWinner returns the index of the player with the greatest hand-value
// sum. On a tie the first player reaching the maximum wins.
func (g *Game) ShowdownWinner() int {
	winner := 0
	best := 0
	for i := range g.Players {
		if v := g.HandValue(i); v > best {
			best = v
			winner = i
		}
	}
	return winner
}

// Toggle flips the face-up state of table card i.
func (g *Game) Toggle(i int) {
	g.Faces.Toggle(i)
}

// RevealAll turns every table card face up.
func (g *Game) RevealAll() {
	g.State = Revealing
	g.Faces.RevealAll()
}

// ConcealAll turns every table card face down.
func (g *Game) ConcealAll() {
	g.Faces.ConcealAll()
}

// RecordRound updates the running totals after a round.
func (g *Game) RecordRound(won bool) {
	g.State = RoundOver
	g.Rounds++
	if won {
		g.Wins++
	}
	log.Printf("Game %s: Round %d recorded (won=%t).", g.ID, g.Rounds, won)
}

// String summarizes the session totals and remaining deck.
func (g *Game) String() string {
	return fmt.Sprintf("Won %d out of %d games.\nCards Left %d", g.Wins, g.Rounds, g.Deck.Len())
}

// Choice parses a line of user input as a zero-based card index among n
// cards. Blank or non-numeric input falls back to a random valid index;
// an over-range index falls back to the last card.
func Choice(line string, n int, rng *rand.Rand) int {
	var i int
	if _, err := fmt.Sscanf(line, "%d", &i); err != nil || i < 0 {
		return rng.Intn(n)
	}
	if i > n-1 {
		return n - 1
	}
	return i
}
