package game

import (
	"fmt"
	"strings"
)

// Verb names one of the actions a player can take on their turn.
type Verb int

const (
	VerbMove Verb = iota
	VerbSuggest
	VerbAccuse
	VerbSecretPassage
	VerbQuit
)

func (v Verb) String() string {
	return []string{"move", "suggest", "accuse", "secret", "quit"}[v]
}

var verbAliases = map[string]Verb{
	"move":    VerbMove,
	"m":       VerbMove,
	"suggest": VerbSuggest,
	"s":       VerbSuggest,
	"accuse":  VerbAccuse,
	"a":       VerbAccuse,
	"secret":  VerbSecretPassage,
	"passage": VerbSecretPassage,
	"p":       VerbSecretPassage,
	"quit":    VerbQuit,
	"q":       VerbQuit,
}

// ParseVerb maps user text to a Verb, case-insensitively.
func ParseVerb(s string) (Verb, error) {
	v, ok := verbAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedVerb, s)
	}
	return v, nil
}

// Action is a typed request from the player whose turn it is.
type Action interface {
	Verb() Verb
}

// Move asks to walk to the tile at Row, Col within the turn's roll.
type Move struct {
	Row, Col int
}

// Suggest names a character and weapon; the room is the suggester's own.
type Suggest struct {
	Character string
	Weapon    string
}

// Accuse names the full solution.
type Accuse struct {
	Room      string
	Character string
	Weapon    string
}

type UseSecretPassage struct{}

type Quit struct{}

func (Move) Verb() Verb             { return VerbMove }
func (Suggest) Verb() Verb          { return VerbSuggest }
func (Accuse) Verb() Verb           { return VerbAccuse }
func (UseSecretPassage) Verb() Verb { return VerbSecretPassage }
func (Quit) Verb() Verb             { return VerbQuit }

// Result describes what an accepted action did.
type Result struct {
	// TurnEnded is set once the turn has passed to the next player or the game has finished.
	TurnEnded bool
	// Roll is the dice total used by a Move or secret passage attempt.
	Roll int
	// Moved is set when the player's position changed.
	Moved bool
	// Disproval is set when a suggestion was refuted.
	Disproval *Disproval
	// Correct is set for a winning accusation.
	Correct bool
	// Quit is set when the session was aborted.
	Quit bool
}
