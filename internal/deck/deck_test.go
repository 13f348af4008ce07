package deck

import (
	"math/rand"
	"testing"

	"cluedo-board/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadCards(t *testing.T) []Card {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return New(cfg)
}

func TestNew(t *testing.T) {
	cards := loadCards(t)

	counts := make(map[config.CardCategory]int)
	for _, c := range cards {
		counts[c.Kind]++
	}
	assert.Equal(t, config.NumCharacters, counts[config.CategoryCharacter])
	assert.Equal(t, config.NumWeapons, counts[config.CategoryWeapon])
	assert.Equal(t, config.NumRooms, counts[config.CategoryRoom])
}

func TestDealPartitionsTheDeck(t *testing.T) {
	cards := loadCards(t)

	for players := 2; players <= 6; players++ {
		for seed := int64(0); seed < 25; seed++ {
			sol, hands, err := Deal(cards, rand.New(rand.NewSource(seed)), players)
			require.NoError(t, err)
			require.Len(t, hands, players)

			seen := make(map[Card]int)
			for _, c := range sol.Cards() {
				seen[c]++
			}
			assert.Equal(t, config.CategoryRoom, sol.Room.Kind)
			assert.Equal(t, config.CategoryCharacter, sol.Character.Kind)
			assert.Equal(t, config.CategoryWeapon, sol.Weapon.Kind)

			smallest, largest := len(cards), 0
			for _, h := range hands {
				for _, c := range h {
					seen[c]++
				}
				smallest = min(smallest, len(h))
				largest = max(largest, len(h))
			}

			// Every card appears exactly once across solution and hands.
			require.Len(t, seen, len(cards))
			for _, c := range cards {
				assert.Equal(t, 1, seen[c], "card %s (players=%d seed=%d)", c, players, seed)
			}
			assert.LessOrEqual(t, largest-smallest, 1, "hands are uneven")
		}
	}
}

func TestDealIsDeterministicForASeed(t *testing.T) {
	cards := loadCards(t)

	solA, handsA, err := Deal(cards, rand.New(rand.NewSource(42)), 3)
	require.NoError(t, err)
	solB, handsB, err := Deal(cards, rand.New(rand.NewSource(42)), 3)
	require.NoError(t, err)

	assert.Equal(t, solA, solB)
	assert.Equal(t, handsA, handsB)
}

func TestDealRejectsNoPlayers(t *testing.T) {
	_, _, err := Deal(loadCards(t), rand.New(rand.NewSource(1)), 0)
	assert.Error(t, err)
}

func TestSolutionMatches(t *testing.T) {
	sol := Solution{
		Room:      Card{"Kitchen", config.CategoryRoom},
		Character: Card{"Professor Plum", config.CategoryCharacter},
		Weapon:    Card{"Knife", config.CategoryWeapon},
	}

	assert.True(t, sol.Matches("kitchen", "professor plum", "knife"))
	assert.True(t, sol.Matches("KITCHEN", " Professor Plum ", "Knife"))
	assert.False(t, sol.Matches("kitchen", "professor plum", "rope"), "no partial credit")
	assert.False(t, sol.Matches("Hall", "Professor Plum", "Knife"))
}

func TestLookup(t *testing.T) {
	cards := loadCards(t)

	card, ok := Lookup(cards, "mrs. white", config.CategoryCharacter)
	require.True(t, ok)
	assert.Equal(t, Card{"Mrs. White", config.CategoryCharacter}, card)

	_, ok = Lookup(cards, "Rope", config.CategoryCharacter)
	assert.False(t, ok, "kind must match")

	_, ok = Lookup(cards, "Banana", config.CategoryWeapon)
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	cards := loadCards(t)
	find := func(name string) Card {
		for _, c := range cards {
			if c.Name == name {
				return c
			}
		}
		t.Fatalf("no card %q", name)
		return Card{}
	}
	sol := Solution{Room: find("Kitchen"), Character: find("Professor Plum"), Weapon: find("Knife")}

	t.Run("a dealt deck is valid", func(t *testing.T) {
		dealtSol, hands, err := Deal(cards, rand.New(rand.NewSource(5)), 4)
		require.NoError(t, err)
		assert.NoError(t, Validate(cards, dealtSol, hands))
	})

	t.Run("cards may stay out of play", func(t *testing.T) {
		assert.NoError(t, Validate(cards, sol, [][]Card{{find("Rope")}, nil}))
	})

	bad := map[string]struct {
		sol   Solution
		hands [][]Card
	}{
		"solution card in a hand": {sol, [][]Card{{find("Kitchen")}, nil}},
		"card dealt twice":        {sol, [][]Card{{find("Rope")}, {find("Rope")}}},
		"card not in the deck":    {sol, [][]Card{{{Name: "Banana", Kind: config.CategoryWeapon}}}},
		"solution kinds swapped": {
			Solution{Room: find("Knife"), Character: find("Professor Plum"), Weapon: find("Kitchen")}, nil,
		},
		"empty solution": {Solution{}, nil},
	}
	for name, tc := range bad {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, Validate(cards, tc.sol, tc.hands), ErrInvalidDeal)
		})
	}
}
