// Package render composes fixed-width ASCII-art card faces for terminal
// display.
//
// Example output for a three-card hand:
//
//	*---------* *---------* *---------*
//	| K       | | 4       | | 8       |
//	|         | |         | |         |
//	|    ♠    | |    ♥    | |    ♣    |
//	|         | |         | |         |
//	|       K | |       4 | |       8 |
//	*---------* *---------* *---------*
package render

import (
	"fmt"
	"io"
	"strings"

	"highcard-game/internal/shared"

	"github.com/fatih/color"
)

const (
	borderRow = "*---------*"
	emptyRow  = "|         |"
	maskedRow = "|#########|"
)

// Suit glyphs are coloured the way the physical cards are printed. The color
// package suppresses escape codes under NO_COLOR or when stdout is not a
// terminal, so composed widths are stable either way.
var (
	redSuit   = color.New(color.FgRed)
	blackSuit = color.New(color.FgWhite)
)

// Options controls optional parts of the composed output.
type Options struct {
	ShowIndex bool // append a row of zero-based column indexes
}

// Mask tracks which columns of a hand are shown face up. The zero-length or
// nil mask renders every card face up; a freshly built mask renders every
// card face down.
type Mask []bool

// NewMask creates a mask of n columns, all face down.
func NewMask(n int) Mask {
	return make(Mask, n)
}

// FaceUp reports whether column i renders its face.
func (m Mask) FaceUp(i int) bool {
	if len(m) == 0 {
		return true
	}
	return m[i]
}

// Toggle flips column i between face up and face down.
func (m Mask) Toggle(i int) {
	m[i] = !m[i]
}

// RevealAll turns every column face up.
func (m Mask) RevealAll() {
	for i := range m {
		m[i] = true
	}
}

// ConcealAll turns every column face down.
func (m Mask) ConcealAll() {
	for i := range m {
		m[i] = false
	}
}

// HandLines composes the ASCII-art block for a hand. Every returned line has
// the same width; a face-down column shows the masked pattern on every
// interior row while the border rows keep their shape. An empty hand yields
// zero-width lines.
func HandLines(hand []shared.Card, mask Mask, opts Options) []string {
	lines := []string{
		repeatRow(borderRow, len(hand)),
		interiorRow(hand, mask, leftRank),
		interiorRow(hand, mask, blank),
		interiorRow(hand, mask, suitFace),
		interiorRow(hand, mask, blank),
		interiorRow(hand, mask, rightRank),
		repeatRow(borderRow, len(hand)),
	}
	if opts.ShowIndex {
		lines = append(lines, indexRow(len(hand)))
	}
	return lines
}

// Fprint writes the composed hand block to w, one line at a time.
func Fprint(w io.Writer, hand []shared.Card, mask Mask, opts Options) {
	for _, line := range HandLines(hand, mask, opts) {
		fmt.Fprintln(w, line)
	}
}

func repeatRow(cell string, n int) string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = cell
	}
	return strings.Join(cells, " ")
}

// interiorRow builds one interior line, substituting the masked pattern for
// face-down columns.
func interiorRow(hand []shared.Card, mask Mask, cell func(shared.Card) string) string {
	cells := make([]string, len(hand))
	for i, card := range hand {
		if mask.FaceUp(i) {
			cells[i] = cell(card)
		} else {
			cells[i] = maskedRow
		}
	}
	return strings.Join(cells, " ")
}

func blank(shared.Card) string {
	return emptyRow
}

// leftRank puts the rank in the top-left corner. The two-character "10" gets
// one character less trailing padding so the column width stays fixed.
func leftRank(card shared.Card) string {
	return fmt.Sprintf("| %-8s|", card.Rank)
}

// rightRank puts the rank in the bottom-right corner, mirroring leftRank.
func rightRank(card shared.Card) string {
	return fmt.Sprintf("|%8s |", card.Rank)
}

func suitFace(card shared.Card) string {
	glyph := card.Suit.String()
	if card.Suit.Red() {
		glyph = redSuit.Sprint(glyph)
	} else {
		glyph = blackSuit.Sprint(glyph)
	}
	return fmt.Sprintf("|    %s    |", glyph)
}

// indexRow centers a zero-based index under each column.
func indexRow(n int) string {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = fmt.Sprintf("     %d     ", i)
	}
	return strings.Join(cells, " ")
}
