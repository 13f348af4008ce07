package player

import (
	"cluedo-board/internal/board"
	"cluedo-board/internal/deck"

	"github.com/google/uuid"
)

// Player is the per-seat state of one participant: where they stand, the cards
// dealt to them, the cards other players have shown them, and whether they are
// still in the game.
type Player struct {
	id       string
	name     string
	position *board.Tile
	coord    board.Coord
	hand     map[deck.Card]struct{}
	known    map[deck.Card]string
	active   bool
}

// New creates an active player with an empty hand and no position.
func New(name string) *Player {
	return &Player{
		id:     uuid.New().String(),
		name:   name,
		hand:   make(map[deck.Card]struct{}),
		known:  make(map[deck.Card]string),
		active: true,
	}
}

func (p *Player) ID() string            { return p.id }
func (p *Player) Name() string          { return p.name }
func (p *Player) Position() *board.Tile { return p.position }
func (p *Player) Coord() board.Coord    { return p.coord }
func (p *Player) IsActive() bool        { return p.active }

// MoveTo places the player on a tile at the given coordinates.
func (p *Player) MoveTo(t *board.Tile, c board.Coord) {
	p.position = t
	p.coord = c
}

// Holds reports whether the card was dealt to this player.
func (p *Player) Holds(card deck.Card) bool {
	_, ok := p.hand[card]
	return ok
}

// Eliminate marks the player as out. There is no way back.
func (p *Player) Eliminate() { p.active = false }

// ReceiveHand adds dealt cards to the player's hand.
func (p *Player) ReceiveHand(cards []deck.Card) {
	for _, card := range cards {
		p.hand[card] = struct{}{}
	}
}

// Hand returns the dealt cards, sorted.
func (p *Player) Hand() []deck.Card {
	cards := make([]deck.Card, 0, len(p.hand))
	for card := range p.hand {
		cards = append(cards, card)
	}
	deck.Sort(cards)
	return cards
}

// Matching returns the cards in hand that appear in the given list, in list order.
func (p *Player) Matching(cards ...deck.Card) []deck.Card {
	var out []deck.Card
	for _, c := range cards {
		if p.Holds(c) {
			out = append(out, c)
		}
	}
	return out
}

// Learn records a card shown to this player. The card stays with its holder.
func (p *Player) Learn(card deck.Card, shownBy string) {
	p.known[card] = shownBy
}

// Knows reports whether the card has been shown to this player, and by whom.
func (p *Player) Knows(card deck.Card) (string, bool) {
	from, ok := p.known[card]
	return from, ok
}

// Known returns every card shown to this player, sorted.
func (p *Player) Known() []deck.Card {
	cards := make([]deck.Card, 0, len(p.known))
	for card := range p.known {
		cards = append(cards, card)
	}
	deck.Sort(cards)
	return cards
}
