package game

import (
	"fmt"

	"cluedo-board/internal/board"
	"cluedo-board/internal/config"
	"cluedo-board/internal/deck"
	"cluedo-board/internal/events"
	"cluedo-board/internal/player"

	"github.com/sirupsen/logrus"
)

// Phase is the state of the turn machine.
type Phase int

const (
	PhaseInProgress Phase = iota
	PhaseWon
	PhaseAllEliminated
	PhaseQuit
)

func (p Phase) String() string {
	return []string{"in progress", "won", "all eliminated", "quit"}[p]
}

// Game represents the state and rules of a single Cluedo game on the board.
// It is not safe for concurrent use; actions are applied one at a time.
type Game struct {
	Config       *config.GameConfig
	Board        *board.Board
	Players      []*player.Player
	EventManager *events.Manager
	cards        []deck.Card
	solution     deck.Solution
	turn         int
	turnCount    int
	phase        Phase
	winner       int
	roll         int
	dice         Roller
	chooser      Chooser
	log          logrus.FieldLogger
}

func (g *Game) Phase() Phase            { return g.phase }
func (g *Game) TurnIndex() int          { return g.turn }
func (g *Game) TurnNumber() int         { return g.turnCount }
func (g *Game) Solution() deck.Solution { return g.solution }

// Cards returns the full deck.
func (g *Game) Cards() []deck.Card {
	return append([]deck.Card(nil), g.cards...)
}

// CurrentPlayer returns the player whose turn it is.
func (g *Game) CurrentPlayer() *player.Player {
	return g.Players[g.turn]
}

// Winner returns the winning player, or nil unless the phase is PhaseWon.
func (g *Game) Winner() *player.Player {
	if g.phase != PhaseWon {
		return nil
	}
	return g.Players[g.winner]
}

// PlayerByName finds a seated player.
func (g *Game) PlayerByName(name string) (*player.Player, bool) {
	for _, p := range g.Players {
		if p.Name() == name {
			return p, true
		}
	}
	return nil, false
}

// Snapshot returns the current occupancy of the board.
func (g *Game) Snapshot() board.Snapshot {
	occupants := make(map[board.Coord][]string)
	for _, p := range g.Players {
		if p.Position() == nil {
			continue
		}
		occupants[p.Coord()] = append(occupants[p.Coord()], p.Name())
	}
	return g.Board.Snapshot(occupants)
}

// RollForMove rolls the current player's movement budget, or returns the
// budget already rolled this turn. The roll is kept until a move succeeds or
// the turn ends.
func (g *Game) RollForMove() (int, error) {
	if g.phase != PhaseInProgress {
		return 0, ErrGameOver
	}
	return g.movementRoll(g.CurrentPlayer()), nil
}

// Apply runs one action for the named player. Rejected actions leave the game
// unchanged unless the error is ErrNotInRoom or ErrNoSecretPassage, which end
// the turn.
func (g *Game) Apply(playerName string, action Action) (Result, error) {
	if g.phase != PhaseInProgress {
		return Result{}, ErrGameOver
	}
	p, ok := g.PlayerByName(playerName)
	if !ok {
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, playerName)
	}
	if !p.IsActive() {
		return Result{}, fmt.Errorf("%w: %s", ErrEliminatedPlayer, playerName)
	}
	if p != g.CurrentPlayer() {
		return Result{}, fmt.Errorf("%w: it is %s's turn", ErrNotYourTurn, g.CurrentPlayer().Name())
	}

	switch act := action.(type) {
	case Move:
		return g.move(p, act)
	case Suggest:
		return g.suggest(p, act)
	case Accuse:
		return g.accuse(p, act)
	case UseSecretPassage:
		return g.useSecretPassage(p)
	case Quit:
		return g.quit(p)
	default:
		return Result{}, fmt.Errorf("%w: %T", ErrUnrecognizedVerb, action)
	}
}

func (g *Game) move(p *player.Player, m Move) (Result, error) {
	log := g.log.WithField("player", p.Name())
	budget := g.movementRoll(p)
	res := Result{Roll: budget}

	dest, err := g.Board.TileAt(m.Row, m.Col)
	if err != nil {
		log.Debugf("Rejected move: %v", err)
		return res, err
	}
	if dest == nil {
		return res, fmt.Errorf("%w: (%d, %d)", ErrNoSuchTile, m.Row, m.Col)
	}
	to := board.Coord{Row: m.Row, Col: m.Col}
	from := p.Coord()
	if dist := board.Distance(from, to); dist > budget {
		log.Debugf("Rejected move to %s: %d steps, rolled %d", to, dist, budget)
		return res, fmt.Errorf("%w: %d steps with a roll of %d", ErrMoveTooFar, dist, budget)
	}

	p.MoveTo(dest, to)
	log.Debugf("Moved %s -> %s (%s)", from, to, dest.Name())
	g.EventManager.Publish(events.MovedEvent{PlayerName: p.Name(), From: from, To: to, TileName: dest.Name()})
	g.endTurn()

	res.Moved = true
	res.TurnEnded = true
	return res, nil
}

func (g *Game) suggest(p *player.Player, s Suggest) (Result, error) {
	room := p.Position()
	if room == nil || !room.IsRoom() || room.IsStart() {
		g.log.WithField("player", p.Name()).Debugf("Suggestion outside a room, turn lost")
		g.endTurn()
		return Result{TurnEnded: true}, fmt.Errorf("%w: %s", ErrNotInRoom, p.Name())
	}
	roomCard, ok := deck.Lookup(g.cards, room.Name(), config.CategoryRoom)
	if !ok {
		return Result{}, fmt.Errorf("%w: room %q", ErrUnknownCardChoice, room.Name())
	}
	character, err := g.unheldCard(p, s.Character, config.CategoryCharacter)
	if err != nil {
		return Result{}, err
	}
	weapon, err := g.unheldCard(p, s.Weapon, config.CategoryWeapon)
	if err != nil {
		return Result{}, err
	}

	suggested := []deck.Card{roomCard, character, weapon}
	g.EventManager.Publish(events.SuggestionMadeEvent{
		PlayerName: p.Name(),
		Room:       roomCard,
		Character:  character,
		Weapon:     weapon,
	})

	res := Result{TurnEnded: true}
	if d := ResolveSuggestion(g.Players, g.turn, suggested, g.chooser); d != nil {
		p.Learn(d.Card, d.Disprover.Name())
		g.log.WithField("player", p.Name()).Debugf("%s showed %s", d.Disprover.Name(), d.Card)
		g.EventManager.Publish(events.DisprovalEvent{
			SuggesterName: p.Name(),
			DisproverName: d.Disprover.Name(),
			Suggested:     suggested,
			RevealedCard:  d.Card,
		})
		res.Disproval = d
	} else {
		g.EventManager.Publish(events.NoDisprovalEvent{SuggesterName: p.Name(), Suggested: suggested})
	}
	g.endTurn()
	return res, nil
}

// unheldCard resolves a suggested name to a card of the given kind that the
// suggester does not hold.
func (g *Game) unheldCard(p *player.Player, name string, kind config.CardCategory) (deck.Card, error) {
	card, ok := deck.Lookup(g.cards, name, kind)
	if !ok {
		return deck.Card{}, fmt.Errorf("%w: %q is not one of the %s", ErrUnknownCardChoice, name, kind)
	}
	if p.Holds(card) {
		return deck.Card{}, fmt.Errorf("%w: %s is in your hand", ErrUnknownCardChoice, card)
	}
	return card, nil
}

func (g *Game) accuse(p *player.Player, a Accuse) (Result, error) {
	checks := []struct {
		name string
		kind config.CardCategory
	}{
		{a.Room, config.CategoryRoom},
		{a.Character, config.CategoryCharacter},
		{a.Weapon, config.CategoryWeapon},
	}
	for _, c := range checks {
		if _, ok := deck.Lookup(g.cards, c.name, c.kind); !ok {
			return Result{}, fmt.Errorf("%w: %q is not one of the %s", ErrUnknownCardChoice, c.name, c.kind)
		}
	}

	log := g.log.WithField("player", p.Name())
	correct := ResolveAccusation(g.solution, a.Room, a.Character, a.Weapon)
	g.EventManager.Publish(events.AccusationEvent{
		PlayerName: p.Name(),
		Room:       a.Room,
		Character:  a.Character,
		Weapon:     a.Weapon,
		IsCorrect:  correct,
	})

	if correct {
		log.Infof("Correct accusation, %s wins", p.Name())
		g.phase = PhaseWon
		g.winner = g.turn
		g.EventManager.Publish(events.GameOverEvent{Winner: p.Name(), WinnerID: p.ID(), Solution: g.solution})
		g.publishSnapshot()
		return Result{TurnEnded: true, Correct: true}, nil
	}

	log.Infof("Wrong accusation, %s is eliminated", p.Name())
	p.Eliminate()
	g.EventManager.Publish(events.PlayerEliminatedEvent{PlayerName: p.Name()})
	if g.allEliminated() {
		log.Infof("Every player has been eliminated")
		g.phase = PhaseAllEliminated
		g.EventManager.Publish(events.GameOverEvent{Solution: g.solution})
		g.publishSnapshot()
		return Result{TurnEnded: true}, nil
	}
	g.endTurn()
	return Result{TurnEnded: true}, nil
}

func (g *Game) useSecretPassage(p *player.Player) (Result, error) {
	log := g.log.WithField("player", p.Name())
	room := p.Position()
	if room == nil || !room.IsRoom() {
		log.Debugf("Secret passage outside a room, turn lost")
		g.endTurn()
		return Result{TurnEnded: true}, fmt.Errorf("%w: %s", ErrNotInRoom, p.Name())
	}
	target := room.SecretPassage()
	if target == nil {
		log.Debugf("No secret passage in %s, turn lost", room.Name())
		g.endTurn()
		return Result{TurnEnded: true}, fmt.Errorf("%w: %s", ErrNoSecretPassage, room.Name())
	}

	roll := g.rollDice(p)
	res := Result{TurnEnded: true, Roll: roll}
	used := roll%2 == 0
	if used {
		coord, err := g.Board.CoordinatesOf(target)
		if err != nil {
			return Result{}, err
		}
		p.MoveTo(target, coord)
		res.Moved = true
	}
	log.Debugf("Secret passage %s -> %s, rolled %d, used=%t", room.Name(), target.Name(), roll, used)
	g.EventManager.Publish(events.SecretPassageEvent{
		PlayerName: p.Name(),
		From:       room.Name(),
		To:         target.Name(),
		Roll:       roll,
		Used:       used,
	})
	g.endTurn()
	return res, nil
}

func (g *Game) quit(p *player.Player) (Result, error) {
	g.log.WithField("player", p.Name()).Infof("Game quit")
	g.phase = PhaseQuit
	g.EventManager.Publish(events.QuitEvent{PlayerName: p.Name()})
	return Result{Quit: true}, nil
}

func (g *Game) movementRoll(p *player.Player) int {
	if g.roll == 0 {
		g.roll = g.rollDice(p)
	}
	return g.roll
}

func (g *Game) rollDice(p *player.Player) int {
	total := g.dice.Roll()
	g.log.WithField("player", p.Name()).Debugf("Rolled %d", total)
	g.EventManager.Publish(events.DiceRolledEvent{PlayerName: p.Name(), Total: total})
	return total
}

func (g *Game) allEliminated() bool {
	for _, p := range g.Players {
		if p.IsActive() {
			return false
		}
	}
	return true
}

// endTurn publishes the board as the turn left it and passes play to the
// next seat. The rotation always advances by one; eliminated seats are then
// skipped by beginTurn.
func (g *Game) endTurn() {
	g.roll = 0
	g.publishSnapshot()
	if g.phase != PhaseInProgress {
		return
	}
	g.turn = (g.turn + 1) % len(g.Players)
	g.beginTurn()
}

func (g *Game) beginTurn() {
	for !g.Players[g.turn].IsActive() {
		g.EventManager.Publish(events.TurnSkippedEvent{PlayerName: g.Players[g.turn].Name()})
		g.turn = (g.turn + 1) % len(g.Players)
	}
	g.turnCount++
	g.EventManager.Publish(events.TurnStartEvent{TurnNumber: g.turnCount, PlayerName: g.CurrentPlayer().Name()})
}

func (g *Game) publishSnapshot() {
	g.EventManager.Publish(events.SnapshotEvent{Snapshot: g.Snapshot()})
}
