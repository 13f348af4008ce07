package game

import "math/rand"

// Roller produces the total of two six-sided dice.
type Roller interface {
	Roll() int
}

// RandomRoller rolls two independent uniform dice from an injected source.
type RandomRoller struct {
	rand *rand.Rand
}

// NewRandomRoller creates a new random roller.
func NewRandomRoller(rand *rand.Rand) *RandomRoller {
	return &RandomRoller{rand: rand}
}

func (r *RandomRoller) Roll() int {
	return r.rand.Intn(6) + 1 + r.rand.Intn(6) + 1
}

// FixedRoller always rolls the same total. Used for predictable testing.
type FixedRoller struct {
	Total int
}

func (f FixedRoller) Roll() int { return f.Total }

// SequenceRoller replays the given totals in order and then repeats the last one.
type SequenceRoller struct {
	Totals []int
	next   int
}

func (s *SequenceRoller) Roll() int {
	if len(s.Totals) == 0 {
		return 2
	}
	i := s.next
	if i >= len(s.Totals) {
		i = len(s.Totals) - 1
	} else {
		s.next++
	}
	return s.Totals[i]
}
