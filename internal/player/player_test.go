package player

import (
	"testing"

	"cluedo-board/internal/board"
	"cluedo-board/internal/config"
	"cluedo-board/internal/deck"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rope    = deck.Card{Name: "Rope", Kind: config.CategoryWeapon}
	knife   = deck.Card{Name: "Knife", Kind: config.CategoryWeapon}
	plum    = deck.Card{Name: "Professor Plum", Kind: config.CategoryCharacter}
	kitchen = deck.Card{Name: "Kitchen", Kind: config.CategoryRoom}
)

func TestNewPlayer(t *testing.T) {
	p := New("Alice")

	assert.Equal(t, "Alice", p.Name())
	assert.True(t, p.IsActive())
	assert.Nil(t, p.Position())
	assert.Empty(t, p.Hand())
	_, err := uuid.Parse(p.ID())
	assert.NoError(t, err)
	assert.NotEqual(t, p.ID(), New("Alice").ID())
}

func TestHand(t *testing.T) {
	p := New("Alice")
	p.ReceiveHand([]deck.Card{rope, kitchen, plum})

	assert.Equal(t, []deck.Card{plum, rope, kitchen}, p.Hand(), "sorted by kind then name")
	assert.True(t, p.Holds(rope))
	assert.False(t, p.Holds(knife))
	assert.Equal(t, []deck.Card{kitchen, rope}, p.Matching(kitchen, knife, rope))
}

func TestKnownCardsStayOutOfTheHand(t *testing.T) {
	// GIVEN a player who is shown the Knife by Bob
	p := New("Alice")
	p.ReceiveHand([]deck.Card{rope})
	p.Learn(knife, "Bob")

	// THEN the Knife is known but not held
	from, ok := p.Knows(knife)
	require.True(t, ok)
	assert.Equal(t, "Bob", from)
	assert.False(t, p.Holds(knife))
	assert.Equal(t, []deck.Card{rope}, p.Hand())
	assert.Equal(t, []deck.Card{knife}, p.Known())
}

func TestEliminate(t *testing.T) {
	p := New("Alice")
	p.Eliminate()
	assert.False(t, p.IsActive())
	p.Eliminate()
	assert.False(t, p.IsActive())
}

func TestMoveTo(t *testing.T) {
	b := board.New()
	p := New("Alice")

	p.MoveTo(b.Room("Hall"), board.Coord{Row: 8, Col: 0})

	assert.Same(t, b.Room("Hall"), p.Position())
	assert.Equal(t, board.Coord{Row: 8, Col: 0}, p.Coord())
}
