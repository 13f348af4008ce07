package events

import (
	"cluedo-board/internal/board"
	"cluedo-board/internal/deck"
)

// Event is a marker interface for all event types.
type Event interface{}

// Listener defines an interface for any component that wants to react to events.
type Listener interface {
	HandleEvent(e Event)
}

// ListenerFunc adapts a plain function to a Listener.
type ListenerFunc func(e Event)

func (f ListenerFunc) HandleEvent(e Event) { f(e) }

// Manager (or Event Bus) manages listeners and dispatches events synchronously,
// in subscription order.
type Manager struct {
	listeners []Listener
}

func NewManager() *Manager {
	return &Manager{}
}
func (em *Manager) Subscribe(l Listener) {
	em.listeners = append(em.listeners, l)
}
func (em *Manager) Publish(e Event) {
	for _, l := range em.listeners {
		l.HandleEvent(e)
	}
}

// --- Setup ---

// HandDealtEvent is published once per player after the deal.
type HandDealtEvent struct {
	PlayerName string
	Hand       []deck.Card
}

// GameReadyEvent is published once the game is built and every player stands on the Start room.
type GameReadyEvent struct {
	PlayerNames []string
}

// --- Turn flow ---

type TurnStartEvent struct {
	TurnNumber int
	PlayerName string
}

// TurnSkippedEvent marks the silent skip of an eliminated player's seat.
type TurnSkippedEvent struct {
	PlayerName string
}

type DiceRolledEvent struct {
	PlayerName string
	Total      int
}

// SnapshotEvent carries the board occupancy. It is published once at setup,
// once for every action that ends a turn and once when the game is decided.
type SnapshotEvent struct {
	Snapshot board.Snapshot
}

// --- Actions ---

type MovedEvent struct {
	PlayerName string
	From, To   board.Coord
	TileName   string
}

type SecretPassageEvent struct {
	PlayerName string
	From, To   string
	Roll       int
	Used       bool
}

type SuggestionMadeEvent struct {
	PlayerName string
	Room       deck.Card
	Character  deck.Card
	Weapon     deck.Card
}

// DisprovalEvent is published when a player refutes a suggestion. RevealedCard
// is the ground truth; only the suggester is meant to see it.
type DisprovalEvent struct {
	SuggesterName string
	DisproverName string
	Suggested     []deck.Card
	RevealedCard  deck.Card
}

type NoDisprovalEvent struct {
	SuggesterName string
	Suggested     []deck.Card
}

type AccusationEvent struct {
	PlayerName string
	Room       string
	Character  string
	Weapon     string
	IsCorrect  bool
}

type PlayerEliminatedEvent struct {
	PlayerName string
}

// GameOverEvent reveals the solution. Winner and WinnerID are empty when every
// player was eliminated.
type GameOverEvent struct {
	Winner   string
	WinnerID string
	Solution deck.Solution
}

// QuitEvent is published when a player aborts the session.
type QuitEvent struct {
	PlayerName string
}
