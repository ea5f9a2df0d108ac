package shared

import (
	"log"
	"math/rand"
)

// Deck represents the ordered collection of undealt cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates a standard 52-card deck. The deck is built rank-major: all
// four suits of Two, then all four suits of Three, and so on up to Ace.
func NewDeck() *Deck {
	cards := make([]Card, 0, len(Ranks)*len(Suits))
	for _, rank := range Ranks {
		for _, suit := range Suits {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return &Deck{Cards: cards}
}

// Len returns the number of undealt cards.
func (d *Deck) Len() int {
	return len(d.Cards)
}

// Shuffle randomizes the order of cards in the deck using the supplied
// randomness source, so callers control determinism.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
	log.Println("Deck shuffled.")
}

// Draw removes and returns the top n cards. A correctly operating game loop
// checks the deck size before drawing; drawing past the end is a contract
// violation.
func (d *Deck) Draw(n int) []Card {
	if n < 0 || n > len(d.Cards) {
		log.Panicf("Error: Cannot draw %d cards from a deck of %d.", n, len(d.Cards))
	}
	drawn := make([]Card, n)
	copy(drawn, d.Cards[:n])
	d.Cards = d.Cards[n:]
	return drawn
}

// Deal distributes cards round-robin, one card per player per pass, until
// every player holds cardsPerPlayer cards.
func (d *Deck) Deal(numPlayers, cardsPerPlayer int) [][]Card {
	totalCardsNeeded := numPlayers * cardsPerPlayer
	if len(d.Cards) < totalCardsNeeded {
		log.Panicf("Error: Not enough cards in deck (%d) to deal %d cards to %d players.", len(d.Cards), cardsPerPlayer, numPlayers)
	}

	dealt := make([][]Card, numPlayers)
	for i := range dealt {
		dealt[i] = make([]Card, 0, cardsPerPlayer)
	}
	for pass := 0; pass < cardsPerPlayer; pass++ {
		for i := 0; i < numPlayers; i++ {
			dealt[i] = append(dealt[i], d.Draw(1)[0])
		}
	}

	log.Printf("Dealt %d cards to %d players.", cardsPerPlayer, numPlayers)
	return dealt
}
