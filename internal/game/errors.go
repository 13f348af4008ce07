package game

import (
	"errors"

	"cluedo-board/internal/board"
)

// Rejections that leave the game untouched; the same player may try again.
var (
	ErrMalformedAction   = errors.New("malformed action")
	ErrUnrecognizedVerb  = errors.New("unrecognized action")
	ErrOutOfBounds       = board.ErrOutOfBounds
	ErrNoSuchTile        = errors.New("no tile at destination")
	ErrMoveTooFar        = errors.New("destination is further than the roll")
	ErrUnknownCardChoice = errors.New("unknown card choice")
	ErrUnknownPlayer     = errors.New("unknown player")
	ErrNotYourTurn       = errors.New("not this player's turn")
	ErrEliminatedPlayer  = errors.New("player has been eliminated")
	ErrGameOver          = errors.New("game is over")
)

// Rejections that still consume the turn. Apply returns them together with
// Result.TurnEnded set.
var (
	ErrNotInRoom       = errors.New("player is not in a room")
	ErrNoSecretPassage = errors.New("room has no secret passage")
)
