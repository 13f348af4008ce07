package game

import "cluedo-board/internal/deck"

// ResolveAccusation reports whether the named room, character and weapon are
// all in the solution. Names compare case-insensitively.
func ResolveAccusation(solution deck.Solution, room, character, weapon string) bool {
	return solution.Matches(room, character, weapon)
}
