package game

import (
	"math/rand"
	"sort"

	"cluedo-board/internal/deck"
)

// Chooser picks which matching card a disprover reveals.
// This allows us to swap out random and deterministic selection strategies.
type Chooser interface {
	Choose(cards []deck.Card) deck.Card
}

// RandomChooser implements the Chooser interface by picking an element randomly.
type RandomChooser struct {
	rand *rand.Rand
}

// NewRandomChooser creates a new random chooser.
func NewRandomChooser(rand *rand.Rand) *RandomChooser {
	return &RandomChooser{rand: rand}
}

func (r *RandomChooser) Choose(cards []deck.Card) deck.Card {
	if len(cards) == 0 {
		return deck.Card{}
	}
	return cards[r.rand.Intn(len(cards))]
}

// DeterministicChooser implements the Chooser interface by always picking the first
// card alphabetically. This is used for predictable testing.
type DeterministicChooser struct{}

func (d *DeterministicChooser) Choose(cards []deck.Card) deck.Card {
	if len(cards) == 0 {
		return deck.Card{}
	}
	sorted := append([]deck.Card(nil), cards...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })
	return sorted[0]
}
