package shared

// Player represents one player slot and the hand of cards it holds.
type Player struct {
	Name string // Player's display name
	Hand []Card // Cards currently held by the player
}

// NewPlayer creates a new player with an empty hand.
func NewPlayer(name string) *Player {
	return &Player{
		Name: name,
		Hand: []Card{},
	}
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// SortHand sorts the player's hand in place by the suit-then-rank order.
func (p *Player) SortHand() {
	SortCards(p.Hand)
}

// HandValue returns the sum of the values of all cards in the hand.
func (p *Player) HandValue() int {
	total := 0
	for _, card := range p.Hand {
		total += card.Value()
	}
	return total
}

// HighCard returns the index of the highest-value card in the hand. Ties go
// to the earliest index. Returns -1 for an empty hand.
func (p *Player) HighCard() int {
	index := -1
	best := 0
	for i, card := range p.Hand {
		if card.Value() > best {
			best = card.Value()
			index = i
		}
	}
	return index
}
