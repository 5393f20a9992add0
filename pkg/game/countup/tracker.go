package countup

import (
	"log"

	"github.com/mpsalisbury/countup/pkg/cards"
)

// DeckTracker counts how many cards of each rank remain unplayed. Each game
// owns one tracker; the game loop reports every play by every seat to it
// exactly once, so strategies sharing it see the same live counts.
type DeckTracker struct {
	remaining map[cards.Rank]int
}

func NewDeckTracker() *DeckTracker {
	remaining := make(map[cards.Rank]int, len(cards.Ranks))
	for _, r := range cards.Ranks {
		remaining[r] = len(cards.Suits)
	}
	return &DeckTracker{remaining: remaining}
}

// CardPlayed records one played card. A count driven below zero means a card
// was reported twice, which the game loop cannot legally do.
func (t *DeckTracker) CardPlayed(c cards.Card) {
	if t.remaining[c.Rank] == 0 {
		log.Fatalf("deck tracker: rank %s already exhausted", c.Rank)
	}
	t.remaining[c.Rank]--
}

func (t *DeckTracker) Remaining(r cards.Rank) int {
	return t.remaining[r]
}

// TotalRemainingPoints sums play value times remaining count over all ranks,
// an estimate of how much value is still live in the game.
func (t *DeckTracker) TotalRemainingPoints() int {
	total := 0
	for r, n := range t.remaining {
		total += r.PlayValue() * n
	}
	return total
}

// HighestLiveRank is the highest non-ace rank with cards remaining, or the
// ace if everything else is exhausted.
func (t *DeckTracker) HighestLiveRank() cards.Rank {
	for r := cards.King; r > cards.Ace; r-- {
		if t.remaining[r] > 0 {
			return r
		}
	}
	return cards.Ace
}
