package game

import (
	"io"
	"math/rand"
	"testing"

	"cluedo-board/internal/config"
	"cluedo-board/internal/deck"
	"cluedo-board/internal/events"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// recorder keeps every published event for later inspection.
type recorder struct {
	events []events.Event
}

func (r *recorder) HandleEvent(e events.Event) { r.events = append(r.events, e) }

func (r *recorder) lastSnapshot(t *testing.T) events.SnapshotEvent {
	t.Helper()
	for i := len(r.events) - 1; i >= 0; i-- {
		if snap, ok := r.events[i].(events.SnapshotEvent); ok {
			return snap
		}
	}
	t.Fatal("no snapshot published")
	return events.SnapshotEvent{}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func loadConfig(t *testing.T) *config.GameConfig {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)
	return cfg
}

// card looks up a card of any kind by exact name.
func card(t *testing.T, name string) deck.Card {
	t.Helper()
	cfg := loadConfig(t)
	kind, ok := cfg.CardToType[name]
	require.True(t, ok, "no card %q", name)
	return deck.Card{Name: name, Kind: kind}
}

func cards(t *testing.T, names ...string) []deck.Card {
	t.Helper()
	out := make([]deck.Card, 0, len(names))
	for _, n := range names {
		out = append(out, card(t, n))
	}
	return out
}

func plumKnifeKitchen(t *testing.T) deck.Solution {
	return deck.Solution{
		Room:      card(t, "Kitchen"),
		Character: card(t, "Professor Plum"),
		Weapon:    card(t, "Knife"),
	}
}

// setupScriptedGame builds a game with a known solution, known hands and
// predictable dice, recording every event.
func setupScriptedGame(t *testing.T, names []string, hands [][]deck.Card, roller Roller) (*Game, *recorder) {
	t.Helper()
	rec := &recorder{}
	builder := NewBuilder(loadConfig(t), quietLogger(), rand.New(rand.NewSource(1)))
	builder.EventManager().Subscribe(rec)
	g, err := builder.
		WithPlayers(names...).
		WithRoller(roller).
		WithChooser(&DeterministicChooser{}).
		WithDeal(plumKnifeKitchen(t), hands).
		Build()
	require.NoError(t, err)
	return g, rec
}

// place puts a player on a named room or space.
func place(t *testing.T, g *Game, playerName, tileName string) {
	t.Helper()
	p, ok := g.PlayerByName(playerName)
	require.True(t, ok)
	tile := g.Board.Room(tileName)
	if tile == nil {
		tile = g.Board.Space(tileName)
	}
	require.NotNil(t, tile, "no tile %q", tileName)
	coord, err := g.Board.CoordinatesOf(tile)
	require.NoError(t, err)
	p.MoveTo(tile, coord)
}

func threeEmptyHands() [][]deck.Card { return [][]deck.Card{nil, nil, nil} }
