package cli

import (
	"strings"

	"cluedo-board/internal/deck"
	"cluedo-board/internal/events"
)

// GameRenderer implements the events.Listener interface to print game state to the console.
type GameRenderer struct{}

// HandleEvent is the central dispatcher for rendering events.
func (r *GameRenderer) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.GameReadyEvent:
		assignPlayerColors(event.PlayerNames)
		C.Header.Println("--- Starting Game: everyone gathers at the Start ---")
	case events.SnapshotEvent:
		RenderSnapshot(event.Snapshot)
	case events.TurnStartEvent:
		C.Header.Printf("\n--- Turn %d: %s ---\n", event.TurnNumber, ColorizePlayer(event.PlayerName))
	case events.DiceRolledEvent:
		C.Info.Printf("%s rolled a %d.\n", ColorizePlayer(event.PlayerName), event.Total)
	case events.MovedEvent:
		C.Info.Printf("%s moved to %s %s.\n", ColorizePlayer(event.PlayerName), event.TileName, event.To)
	case events.SecretPassageEvent:
		if event.Used {
			C.Yes.Printf("%s slipped through the secret passage from the %s to the %s.\n",
				ColorizePlayer(event.PlayerName), event.From, event.To)
		} else {
			C.No.Printf("Odd roll. The passage to the %s stays shut.\n", event.To)
		}
	case events.SuggestionMadeEvent:
		C.Info.Printf("%s suggests: %s\n", ColorizePlayer(event.PlayerName),
			joinCards([]deck.Card{event.Character, event.Weapon, event.Room}))
	case events.DisprovalEvent:
		C.Info.Printf("-> %s shows a card to %s.\n", ColorizePlayer(event.DisproverName), ColorizePlayer(event.SuggesterName))
	case events.NoDisprovalEvent:
		C.Info.Println("-> No player could show a card.")
	case events.AccusationEvent:
		C.Info.Printf("%s ACCUSED %s with the %s in the %s.\n",
			ColorizePlayer(event.PlayerName), ColorizeCard(event.Character), event.Weapon, event.Room)
		if event.IsCorrect {
			C.Yes.Println("The accusation is CORRECT!")
		} else {
			C.No.Println("The accusation is INCORRECT!")
		}
	case events.PlayerEliminatedEvent:
		C.No.Printf("%s is out of the game.\n", ColorizePlayer(event.PlayerName))
	case events.GameOverEvent:
		r.renderGameResult(event)
	case events.QuitEvent:
		C.Warn.Printf("%s quit the game.\n", ColorizePlayer(event.PlayerName))
	}
}

func (r *GameRenderer) renderGameResult(event events.GameOverEvent) {
	C.Header.Println("\n--- GAME OVER ---")
	if event.Winner != "" {
		C.Yes.Printf("%s wins!\n", ColorizePlayer(event.Winner))
	} else {
		C.Warn.Println("Every detective has been eliminated.")
	}
	C.Info.Printf("The correct solution was: %s\n", joinCards([]deck.Card{
		event.Solution.Character, event.Solution.Weapon, event.Solution.Room,
	}))
}

func joinCards(cards []deck.Card) string {
	parts := make([]string, 0, len(cards))
	for _, card := range cards {
		parts = append(parts, ColorizeCard(card.Name))
	}
	return strings.Join(parts, ", ")
}
