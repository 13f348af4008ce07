package notebook

import (
	"sort"

	"cluedo-board/internal/config"
	"cluedo-board/internal/deck"
	"cluedo-board/internal/events"

	"github.com/sirupsen/logrus"
)

// CardStatus defines the knowledge state of a card.
type CardStatus int

const (
	StatusMaybe CardStatus = iota
	StatusYes
	StatusNo
)

// Solution is the column name used for the hidden envelope.
const Solution = "solution"

// Mystery tracks a disproval where the specific card shown is unknown.
type Mystery struct {
	Disprover     string
	PossibleCards map[string]struct{}
}

// Notebook is one player's detective notes. It listens to game events and
// records, for every card, who may or may not be holding it.
type Notebook struct {
	owner     string
	config    *config.GameConfig
	players   []string
	hand      map[string]struct{}
	knowledge map[string]map[string]CardStatus
	mysteries []Mystery
	log       logrus.FieldLogger
}

// New creates the notes of owner. players must be in seating order.
func New(cfg *config.GameConfig, players []string, owner string, logger logrus.FieldLogger) *Notebook {
	n := &Notebook{
		owner:     owner,
		config:    cfg,
		players:   append([]string(nil), players...),
		hand:      make(map[string]struct{}),
		knowledge: make(map[string]map[string]CardStatus),
		log:       logger.WithField("notebook", owner),
	}
	for _, card := range cfg.AllCards {
		n.knowledge[card] = make(map[string]CardStatus)
		for _, p := range n.players {
			n.knowledge[card][p] = StatusMaybe
		}
		n.knowledge[card][Solution] = StatusMaybe
	}
	return n
}

// --- Public Getters for CLI ---
func (n *Notebook) Owner() string              { return n.owner }
func (n *Notebook) Config() *config.GameConfig { return n.config }
func (n *Notebook) Players() []string          { return n.players }
func (n *Notebook) Mysteries() []Mystery       { return n.mysteries }

// Status returns what the owner knows about card being with holder, which is
// a player name or Solution.
func (n *Notebook) Status(card, holder string) CardStatus {
	return n.knowledge[card][holder]
}

// HandleEvent folds a game event into the notes.
func (n *Notebook) HandleEvent(e events.Event) {
	switch event := e.(type) {
	case events.HandDealtEvent:
		if event.PlayerName == n.owner {
			n.receiveHand(event.Hand)
		}
	case events.DisprovalEvent:
		n.processDisproval(event)
	case events.NoDisprovalEvent:
		n.processNoDisproval(event)
	default:
		return
	}
	n.runDeductionLoop()
}

// Accusation returns the solution once every category is pinned down.
func (n *Notebook) Accusation() (room, character, weapon string, ok bool) {
	found := make(map[config.CardCategory]string)
	for _, cat := range config.Categories {
		for _, card := range n.config.CardListForCategory(cat) {
			if n.knowledge[card][Solution] == StatusYes {
				found[cat] = card
				break
			}
		}
		if _, solved := found[cat]; !solved {
			return "", "", "", false
		}
	}
	return found[config.CategoryRoom], found[config.CategoryCharacter], found[config.CategoryWeapon], true
}

func (n *Notebook) receiveHand(cards []deck.Card) {
	for _, card := range cards {
		n.hand[card.Name] = struct{}{}
		n.markCardLocation(card.Name, n.owner)
	}
	// Whatever is not in hand is not ours.
	for _, card := range n.config.AllCards {
		if _, mine := n.hand[card]; !mine {
			n.markNotHeld(card, n.owner)
		}
	}
}

func (n *Notebook) processDisproval(event events.DisprovalEvent) {
	// Seats between the suggester and the disprover could not answer.
	for _, p := range n.seatsBetween(event.SuggesterName, event.DisproverName) {
		for _, card := range event.Suggested {
			n.markNotHeld(card.Name, p)
		}
	}

	switch {
	case event.SuggesterName == n.owner:
		n.markCardLocation(event.RevealedCard.Name, event.DisproverName)
	case event.DisproverName != n.owner:
		mystery := Mystery{Disprover: event.DisproverName, PossibleCards: make(map[string]struct{})}
		for _, card := range event.Suggested {
			mystery.PossibleCards[card.Name] = struct{}{}
		}
		n.mysteries = append(n.mysteries, mystery)
		n.log.Debugf("Noted that %s holds one of %v.", event.DisproverName, mapKeys(mystery.PossibleCards))
	}
}

func (n *Notebook) processNoDisproval(event events.NoDisprovalEvent) {
	for _, p := range n.players {
		if p == event.SuggesterName {
			continue
		}
		for _, card := range event.Suggested {
			n.markNotHeld(card.Name, p)
		}
	}
	if event.SuggesterName == n.owner {
		n.log.Debugf("My suggestion was not disproved! Making powerful deductions.")
		for _, card := range event.Suggested {
			if _, inHand := n.hand[card.Name]; !inHand {
				n.markCardLocation(card.Name, Solution)
			}
		}
	}
}

// seatsBetween lists the players strictly after from and before to, in turn order.
func (n *Notebook) seatsBetween(from, to string) []string {
	start := -1
	for i, p := range n.players {
		if p == from {
			start = i
			break
		}
	}
	if start < 0 {
		return nil
	}
	var out []string
	for i := 1; i < len(n.players); i++ {
		p := n.players[(start+i)%len(n.players)]
		if p == to {
			return out
		}
		out = append(out, p)
	}
	return nil
}

// --- Internal Deduction Logic ---

func (n *Notebook) runDeductionLoop() {
	for i := 0; i < 10; i++ { // Safety break
		var changed bool
		changed = n.pruneAndSolveMysteries() || changed
		changed = n.deduceSolutionByElimination() || changed
		changed = n.deduceCardLocationsByElimination() || changed
		if !changed {
			break
		}
	}
}

func (n *Notebook) locations() []string {
	return append(append([]string(nil), n.players...), Solution)
}

func (n *Notebook) markCardLocation(card, location string) bool {
	if _, isValid := n.config.CardToType[card]; !isValid {
		n.log.Errorf("markCardLocation called with unknown card '%s'", card)
		return false
	}
	if n.knowledge[card][location] == StatusYes {
		return false
	}
	n.log.Debugf("Learned that '%s' is with %s.", card, location)
	for _, loc := range n.locations() {
		n.knowledge[card][loc] = StatusNo
	}
	n.knowledge[card][location] = StatusYes
	return true
}

func (n *Notebook) markNotHeld(card, location string) bool {
	row, ok := n.knowledge[card]
	if !ok || row[location] != StatusMaybe {
		return false
	}
	row[location] = StatusNo
	return true
}

func (n *Notebook) pruneAndSolveMysteries() bool {
	var changed bool
	var remaining []Mystery
	for _, mystery := range n.mysteries {
		pruned := make(map[string]struct{})
		for card := range mystery.PossibleCards {
			if n.knowledge[card][mystery.Disprover] != StatusNo {
				pruned[card] = struct{}{}
			}
		}
		if len(pruned) < len(mystery.PossibleCards) {
			n.log.Debugf("Pruning mystery: %s's options narrowed to %v", mystery.Disprover, mapKeys(pruned))
			mystery.PossibleCards = pruned
			changed = true
		}
		if len(pruned) == 1 {
			card := mapKeys(pruned)[0]
			n.log.Debugf("Solved a mystery: %s must have shown '%s'.", mystery.Disprover, card)
			if n.markCardLocation(card, mystery.Disprover) {
				changed = true
			}
		} else if len(pruned) > 1 {
			remaining = append(remaining, mystery)
		}
	}
	if len(remaining) < len(n.mysteries) {
		changed = true
	}
	n.mysteries = remaining
	return changed
}

func (n *Notebook) deduceCardLocationsByElimination() bool {
	var changed bool
	for _, card := range n.config.AllCards {
		var maybes []string
		isKnown := false
		for _, loc := range n.locations() {
			if n.knowledge[card][loc] == StatusYes {
				isKnown = true
				break
			}
			if n.knowledge[card][loc] == StatusMaybe {
				maybes = append(maybes, loc)
			}
		}
		if !isKnown && len(maybes) == 1 {
			if n.markCardLocation(card, maybes[0]) {
				changed = true
			}
		}
	}
	return changed
}

func (n *Notebook) deduceSolutionByElimination() bool {
	var changed bool
	for _, cat := range config.Categories {
		isSolved := false
		var maybes []string
		for _, card := range n.config.CardListForCategory(cat) {
			switch n.knowledge[card][Solution] {
			case StatusYes:
				isSolved = true
			case StatusMaybe:
				maybes = append(maybes, card)
			}
		}
		if isSolved {
			// Only one card per category is in the envelope.
			for _, card := range maybes {
				changed = n.markNotHeld(card, Solution) || changed
			}
			continue
		}
		if len(maybes) == 1 {
			if n.markCardLocation(maybes[0], Solution) {
				changed = true
			}
		}
	}
	return changed
}

func mapKeys(m map[string]struct{}) []string {
	k := make([]string, 0, len(m))
	for key := range m {
		k = append(k, key)
	}
	sort.Strings(k)
	return k
}
