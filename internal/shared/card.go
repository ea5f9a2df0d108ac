package shared

import "sort"

// Suit represents the suit of a card (Spades, Diamonds, Hearts, Clubs).
type Suit int

const (
	Spades   Suit = 1
	Diamonds Suit = 2
	Hearts   Suit = 3
	Clubs    Suit = 4
)

// Suits lists every suit in ordinal order, for deck building and iteration.
var Suits = []Suit{Spades, Diamonds, Hearts, Clubs}

// suitOrdinals defines the sort order of suits. Cards are ordered by suit
// first, then by rank within the suit.
var suitOrdinals = map[Suit]int{
	Spades:   1,
	Diamonds: 2,
	Hearts:   3,
	Clubs:    4,
}

// suitWeights defines the value multiplier per suit. The table currently
// matches suitOrdinals but is kept separate: one is a sort key, the other a
// scoring weight, and the two may diverge.
var suitWeights = map[Suit]int{
	Spades:   1,
	Diamonds: 2,
	Hearts:   3,
	Clubs:    4,
}

var suitGlyphs = map[Suit]string{
	Spades:   "♠",
	Diamonds: "♦",
	Hearts:   "♥",
	Clubs:    "♣",
}

var suitNames = map[Suit]string{
	Spades:   "Spades",
	Diamonds: "Diamonds",
	Hearts:   "Hearts",
	Clubs:    "Clubs",
}

// Ordinal returns the suit's position in the card sort order.
func (s Suit) Ordinal() int {
	return suitOrdinals[s]
}

// Weight returns the suit's multiplier used when computing a card's value.
func (s Suit) Weight() int {
	return suitWeights[s]
}

// String returns the suit's symbol glyph (e.g. "♠").
func (s Suit) String() string {
	return suitGlyphs[s]
}

// Name returns the suit's full name (e.g. "Spades").
func (s Suit) Name() string {
	return suitNames[s]
}

// Red reports whether the suit is a red suit (Diamonds or Hearts).
func (s Suit) Red() bool {
	return s == Diamonds || s == Hearts
}

// Rank represents the rank of a card, ordered Two < Three < ... < King < Ace.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in ascending order, for deck building and iteration.
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// rankPoints defines the point value of each rank. Numeric ranks score their
// face value, court cards and Ten score 10, Ace scores 11.
var rankPoints = map[Rank]int{
	Two:   2,
	Three: 3,
	Four:  4,
	Five:  5,
	Six:   6,
	Seven: 7,
	Eight: 8,
	Nine:  9,
	Ten:   10,
	Jack:  10,
	Queen: 10,
	King:  10,
	Ace:   11,
}

var rankLabels = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

var rankNames = map[Rank]string{
	Two:   "Two",
	Three: "Three",
	Four:  "Four",
	Five:  "Five",
	Six:   "Six",
	Seven: "Seven",
	Eight: "Eight",
	Nine:  "Nine",
	Ten:   "Ten",
	Jack:  "Jack",
	Queen: "Queen",
	King:  "King",
	Ace:   "Ace",
}

// Points returns the rank's point value for scoring.
func (r Rank) Points() int {
	return rankPoints[r]
}

// String returns the rank's short label (e.g. "10", "K").
func (r Rank) String() string {
	return rankLabels[r]
}

// Name returns the rank's full name (e.g. "King").
func (r Rank) Name() string {
	return rankNames[r]
}

// Card represents a single card with a suit and a rank. Cards are immutable
// values; whether a card is shown face up is tracked separately by the game
// layer.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a card with the given suit and rank.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Value returns the card's score: the suit weight multiplied by the rank
// points. Identical ranks score differently depending on suit.
func (c Card) Value() int {
	return c.Suit.Weight() * c.Rank.Points()
}

// Nomenclature returns the card's long form, e.g. "Ace of Spades".
func (c Card) Nomenclature() string {
	return c.Rank.Name() + " of " + c.Suit.Name()
}

// String returns the card's short form, e.g. "A♠".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Less reports whether card a sorts before card b. Cards are ordered by suit
// ordinal first and by rank within the same suit.
func Less(a, b Card) bool {
	if a.Suit.Ordinal() != b.Suit.Ordinal() {
		return a.Suit.Ordinal() < b.Suit.Ordinal()
	}
	return a.Rank < b.Rank
}

// SortCards sorts the cards in place by the suit-then-rank order.
func SortCards(cards []Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return Less(cards[i], cards[j])
	})
}
