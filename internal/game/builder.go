package game

import (
	"errors"
	"fmt"
	"math/rand"

	"cluedo-board/internal/board"
	"cluedo-board/internal/config"
	"cluedo-board/internal/deck"
	"cluedo-board/internal/events"
	"cluedo-board/internal/player"

	"github.com/sirupsen/logrus"
)

const minPlayers = 2

// GameBuilder provides a step-by-step API for constructing a Game object.
type GameBuilder struct {
	cfg          *config.GameConfig
	eventManager *events.Manager
	log          *logrus.Logger
	rand         *rand.Rand
	names        []string
	roller       Roller
	chooser      Chooser
	solution     *deck.Solution
	hands        [][]deck.Card
}

// NewBuilder creates a new GameBuilder with its required dependencies.
func NewBuilder(cfg *config.GameConfig, logger *logrus.Logger, rand *rand.Rand) *GameBuilder {
	return &GameBuilder{
		cfg:          cfg,
		log:          logger,
		rand:         rand,
		eventManager: events.NewManager(),
	}
}

// EventManager is a public getter for the unexported field. Subscribe before
// Build to observe the deal and the first turn.
func (b *GameBuilder) EventManager() *events.Manager {
	return b.eventManager
}

// WithPlayers sets the seating order.
func (b *GameBuilder) WithPlayers(names ...string) *GameBuilder {
	b.names = append([]string(nil), names...)
	return b
}

// WithRoller replaces the dice.
func (b *GameBuilder) WithRoller(r Roller) *GameBuilder {
	b.roller = r
	return b
}

// WithChooser replaces how a disprover picks the card to reveal.
func (b *GameBuilder) WithChooser(c Chooser) *GameBuilder {
	b.chooser = c
	return b
}

// WithDeal skips the shuffle and uses a prepared solution and hands, one hand per seat.
func (b *GameBuilder) WithDeal(solution deck.Solution, hands [][]deck.Card) *GameBuilder {
	b.solution = &solution
	b.hands = hands
	return b
}

// Build constructs the Game object after all options have been configured.
func (b *GameBuilder) Build() (*Game, error) {
	if len(b.names) < minPlayers || len(b.names) > len(b.cfg.Characters) {
		return nil, fmt.Errorf("invalid number of players: %d", len(b.names))
	}
	seen := make(map[string]bool)
	for _, name := range b.names {
		if name == "" {
			return nil, errors.New("player names must not be empty")
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate player name %q", name)
		}
		seen[name] = true
	}

	if b.rand == nil {
		return nil, errors.New("a random source is required")
	}

	// 1. Build the board and check the room cards against it
	brd := board.New()
	for _, name := range b.cfg.Rooms {
		if room := brd.Room(name); room == nil || room.IsStart() {
			return nil, fmt.Errorf("room card %q has no room on the board", name)
		}
	}

	if b.roller == nil {
		b.roller = NewRandomRoller(rand.New(rand.NewSource(b.rand.Int63())))
	}
	if b.chooser == nil {
		b.chooser = NewRandomChooser(rand.New(rand.NewSource(b.rand.Int63())))
	}

	// 2. Create the Game object
	game := &Game{
		Config:       b.cfg,
		Board:        brd,
		EventManager: b.eventManager,
		cards:        deck.New(b.cfg),
		dice:         b.roller,
		chooser:      b.chooser,
		log:          b.log,
	}

	// 3. Seat the players on the Start room
	startCoord, err := brd.CoordinatesOf(brd.Start())
	if err != nil {
		return nil, err
	}
	for _, name := range b.names {
		p := player.New(name)
		p.MoveTo(brd.Start(), startCoord)
		game.Players = append(game.Players, p)
	}

	// 4. Deal the cards
	if err := b.deal(game); err != nil {
		return nil, err
	}

	b.eventManager.Publish(events.GameReadyEvent{PlayerNames: append([]string(nil), b.names...)})
	game.publishSnapshot()
	game.beginTurn()

	return game, nil
}

func (b *GameBuilder) deal(game *Game) error {
	solution, hands := b.solution, b.hands
	if solution == nil {
		sol, dealt, err := deck.Deal(game.cards, b.rand, len(game.Players))
		if err != nil {
			return err
		}
		solution, hands = &sol, dealt
	}
	if len(hands) != len(game.Players) {
		return fmt.Errorf("got %d hands for %d players", len(hands), len(game.Players))
	}
	if err := deck.Validate(game.cards, *solution, hands); err != nil {
		return err
	}
	game.solution = *solution

	for i, p := range game.Players {
		p.ReceiveHand(hands[i])
		b.log.Debugf("%s Hand: %v", p.Name(), p.Hand())
		b.eventManager.Publish(events.HandDealtEvent{PlayerName: p.Name(), Hand: p.Hand()})
	}
	b.log.Debugf("Ground Truth Initialized. Solution: %+v", game.solution)
	return nil
}
