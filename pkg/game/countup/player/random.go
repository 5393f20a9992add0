package player

import (
	"math/rand"

	"github.com/mpsalisbury/countup/pkg/cards"
	"github.com/mpsalisbury/countup/pkg/game/countup"
)

// Plays a uniformly random legal card.

func NewRandomStrategy(rng *rand.Rand) countup.Strategy {
	return &randomStrategy{rng: rng}
}

type randomStrategy struct {
	rng *rand.Rand
}

func (s *randomStrategy) Choose(hand, trick cards.Cards, _ *countup.DeckTracker) (cards.Card, bool) {
	legal := countup.LegalPlays(hand, trick)
	if len(legal) == 0 {
		return cards.Card{}, false
	}
	return legal[s.rng.Intn(len(legal))], true
}
