package player

import (
	"math/rand"

	"github.com/mpsalisbury/countup/pkg/cards"
	"github.com/mpsalisbury/countup/pkg/game/countup"
)

// Plays the lowest-ranked legal card, breaking rank ties at random.

func NewBasicStrategy(rng *rand.Rand) countup.Strategy {
	return &basicStrategy{rng: rng}
}

type basicStrategy struct {
	rng *rand.Rand
}

func (s *basicStrategy) Choose(hand, trick cards.Cards, _ *countup.DeckTracker) (cards.Card, bool) {
	legal := countup.LegalPlays(hand, trick)
	if len(legal) == 0 {
		return cards.Card{}, false
	}
	low := legal.Lowest().PlayValue()
	lowest := legal.Filter(func(c cards.Card) bool { return c.PlayValue() == low })
	return lowest[s.rng.Intn(len(lowest))], true
}
