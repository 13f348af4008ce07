package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"cluedo-board/internal/config"
)

// ErrInvalidDeal is returned when a solution and hands do not partition the deck.
var ErrInvalidDeal = errors.New("invalid deal")

// Card is an immutable card value; two cards are equal when name and kind match.
type Card struct {
	Name string
	Kind config.CardCategory
}

func (c Card) String() string { return c.Name }

// Solution is the hidden room, character and weapon withheld from the deal.
type Solution struct {
	Room      Card
	Character Card
	Weapon    Card
}

// Cards returns the solution as a slice in room, character, weapon order.
func (s Solution) Cards() []Card {
	return []Card{s.Room, s.Character, s.Weapon}
}

// Matches compares an accusation against the solution, ignoring case and
// surrounding whitespace. Every element must match.
func (s Solution) Matches(room, character, weapon string) bool {
	return sameName(s.Room.Name, room) &&
		sameName(s.Character.Name, character) &&
		sameName(s.Weapon.Name, weapon)
}

func sameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// New builds the full deck described by the configuration.
func New(cfg *config.GameConfig) []Card {
	cards := make([]Card, 0, len(cfg.AllCards))
	for _, name := range cfg.AllCards {
		cards = append(cards, Card{Name: name, Kind: cfg.CardToType[name]})
	}
	return cards
}

// Lookup finds a card of the given kind by case-insensitive name.
func Lookup(cards []Card, name string, kind config.CardCategory) (Card, bool) {
	for _, c := range cards {
		if c.Kind == kind && sameName(c.Name, name) {
			return c, true
		}
	}
	return Card{}, false
}

// Deal shuffles the deck, withholds one card of each kind as the solution
// and deals the rest round-robin.
func Deal(cards []Card, r *rand.Rand, players int) (Solution, [][]Card, error) {
	if players < 1 {
		return Solution{}, nil, errors.New("deal needs at least one player")
	}
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	r.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	var sol Solution
	picked := make(map[config.CardCategory]bool)
	var rest []Card
	for i := len(shuffled) - 1; i >= 0; i-- {
		card := shuffled[i]
		if picked[card.Kind] {
			rest = append(rest, card)
			continue
		}
		picked[card.Kind] = true
		switch card.Kind {
		case config.CategoryRoom:
			sol.Room = card
		case config.CategoryCharacter:
			sol.Character = card
		case config.CategoryWeapon:
			sol.Weapon = card
		}
	}
	if len(picked) != len(config.Categories) {
		return Solution{}, nil, errors.New("deck is missing a card category")
	}

	hands := make([][]Card, players)
	for i, card := range rest {
		hands[i%players] = append(hands[i%players], card)
	}
	for _, h := range hands {
		Sort(h)
	}
	return sol, hands, nil
}

// Validate checks that a prepared deal splits the deck: the solution holds one
// card of each kind, and every solution or hand card comes from the deck and
// is used at most once. Cards left over stay out of play.
func Validate(cards []Card, sol Solution, hands [][]Card) error {
	inDeck := make(map[Card]bool, len(cards))
	for _, c := range cards {
		inDeck[c] = true
	}
	if sol.Room.Kind != config.CategoryRoom ||
		sol.Character.Kind != config.CategoryCharacter ||
		sol.Weapon.Kind != config.CategoryWeapon {
		return fmt.Errorf("%w: solution needs one room, one character and one weapon", ErrInvalidDeal)
	}

	used := make(map[Card]string)
	claim := func(c Card, where string) error {
		if !inDeck[c] {
			return fmt.Errorf("%w: %s is not in the deck", ErrInvalidDeal, c)
		}
		if prev, ok := used[c]; ok {
			return fmt.Errorf("%w: %s is in both %s and %s", ErrInvalidDeal, c, prev, where)
		}
		used[c] = where
		return nil
	}
	for _, c := range sol.Cards() {
		if err := claim(c, "the solution"); err != nil {
			return err
		}
	}
	for i, hand := range hands {
		for _, c := range hand {
			if err := claim(c, fmt.Sprintf("hand %d", i+1)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sort orders cards by kind, then name.
func Sort(cards []Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Kind != cards[j].Kind {
			return cards[i].Kind < cards[j].Kind
		}
		return cards[i].Name < cards[j].Name
	})
}
