package game

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"time"

	"highcard-game/internal/config"
	"highcard-game/internal/render"
)

// Run plays rounds until the deck is exhausted, reading picks from in and
// writing rendered hands and prompts to out. Pacing pauses come from the
// configured delay; tests replace the pause function.
func (g *Game) Run(in io.Reader, out io.Writer) {
	g.RunWith(in, out, time.Sleep)
}

// RunWith is Run with an explicit pause function.
func (g *Game) RunWith(in io.Reader, out io.Writer, pause func(time.Duration)) {
	reader := bufio.NewReader(in)
	switch g.opts.Mode {
	case config.ModeShowdown:
		g.runShowdown(reader, out, pause)
	default:
		g.runGuess(reader, out, pause)
	}
	g.State = GameOver
	fmt.Fprintln(out, "Sorry ran out of cards.")
	log.Printf("Game %s: Over after %d rounds.", g.ID, g.Rounds)
}

// runGuess is the classic variant: the table cards are dealt face down and
// the player tries to pick the high card.
func (g *Game) runGuess(reader *bufio.Reader, out io.Writer, pause func(time.Duration)) {
	opts := render.Options{ShowIndex: g.opts.ShowIndex}

	for !g.OutOfCards() {
		g.DealTable()
		winning := g.HighCardIndex()

		render.Fprint(out, g.Table, g.Faces, opts)
		fmt.Fprintln(out, "Find the High card.")
		fmt.Fprintln(out, "Press [Enter] for a random choice.")

		g.State = Choosing
		line, _ := reader.ReadString('\n')
		choice := Choice(line, len(g.Table), g.rng)

		g.Toggle(choice)
		render.Fprint(out, g.Table, g.Faces, opts)

		fmt.Fprintln(out, "Lets see the results.")
		pause(g.opts.Delay)

		g.RevealAll()
		render.Fprint(out, g.Table, g.Faces, opts)

		if choice == winning {
			fmt.Fprintln(out, "You win!!!")
		} else {
			fmt.Fprintln(out, "You lose!")
		}
		g.RecordRound(choice == winning)

		fmt.Fprintf(out, "%s\n\n\n", g)
		pause(g.opts.Delay)
	}
}

// runShowdown deals every player a full hand and compares hand-value sums.
// The first player holds the human's seat.
func (g *Game) runShowdown(reader *bufio.Reader, out io.Writer, pause func(time.Duration)) {
	for g.CanDealHands() {
		g.DealHands()

		for i, p := range g.Players {
			p.SortHand()
			high := p.Hand[p.HighCard()]
			fmt.Fprintf(out, "%s (hand value %d, high card %s):\n", p.Name, g.HandValue(i), high.Nomenclature())
			render.Fprint(out, p.Hand, nil, render.Options{})
		}

		winner := g.ShowdownWinner()
		fmt.Fprintf(out, "%s wins the round with %d points.\n", g.Players[winner].Name, g.HandValue(winner))
		g.RecordRound(winner == 0)

		fmt.Fprintf(out, "%s\n\n", g)
		pause(g.opts.Delay)

		fmt.Fprintln(out, "Press [Enter] for the next deal.")
		if _, err := reader.ReadString('\n'); err != nil {
			break
		}
	}
}
