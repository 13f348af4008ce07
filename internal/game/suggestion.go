package game

import (
	"cluedo-board/internal/deck"
	"cluedo-board/internal/player"
)

// Disproval is the outcome of a refuted suggestion.
type Disproval struct {
	Disprover *player.Player
	Card      deck.Card
}

// ResolveSuggestion walks the seats after the suggester, wrapping around, and
// returns the first player holding any suggested card together with the card
// they reveal. Later holders are never asked. It returns nil when nobody can
// refute the suggestion.
func ResolveSuggestion(players []*player.Player, suggester int, suggested []deck.Card, chooser Chooser) *Disproval {
	for i := 1; i < len(players); i++ {
		p := players[(suggester+i)%len(players)]
		if canShow := p.Matching(suggested...); len(canShow) > 0 {
			return &Disproval{Disprover: p, Card: chooser.Choose(canShow)}
		}
	}
	return nil
}
