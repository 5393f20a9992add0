package player

import (
	"github.com/mpsalisbury/countup/pkg/cards"
	"github.com/mpsalisbury/countup/pkg/game/countup"
)

// CleverStrategy weighs the trick against how much play value is still live
// in the deck. Cheap tricks get the lowest legal card, middling tricks the
// middle one, rich tricks the highest. The thresholds and tie-breaks are
// tuned values carried over from the original tables; do not adjust them
// without re-validating recorded games.

func NewCleverStrategy() countup.Strategy {
	return &cleverStrategy{}
}

type cleverStrategy struct{}

func (s *cleverStrategy) Choose(hand, trick cards.Cards, tracker *countup.DeckTracker) (cards.Card, bool) {
	legal := countup.LegalPlays(hand, trick)
	if len(legal) == 0 {
		return cards.Card{}, false
	}
	total := tracker.TotalRemainingPoints()
	points := 0
	for _, c := range trick {
		points += c.PlayValue()
	}

	switch {
	case float64(points) < 0.1*float64(total):
		return legal.Lowest(), true
	case float64(points) <= 0.2*float64(total):
		return middleCard(legal, tracker)
	default:
		return highestCard(legal, hand, tracker)
	}
}

// middleCard picks the legal card nearest the midpoint of the legal play
// values. An exact midpoint match plays unconditionally; a nearest match is
// withheld (pass) when it is the highest rank still live, saving it for a
// richer trick.
func middleCard(legal cards.Cards, tracker *countup.DeckTracker) (cards.Card, bool) {
	middle := (legal.Lowest().PlayValue() + legal.Highest().PlayValue()) / 2
	for _, c := range legal {
		if c.PlayValue() == middle {
			return c, true
		}
	}
	nearest := legal[0]
	for _, c := range legal[1:] {
		if absDiff(c.PlayValue(), middle) < absDiff(nearest.PlayValue(), middle) {
			nearest = c
		}
	}
	if nearest.PlayValue() == tracker.HighestLiveRank().PlayValue() {
		return cards.Card{}, false
	}
	return nearest, true
}

// highestCard plays the highest legal card, unless that card's rank is the
// highest rank still live and the hand holds at most half of what remains of
// it; then the best card of any other rank is played instead, or the turn is
// passed if none exists.
func highestCard(legal, hand cards.Cards, tracker *countup.DeckTracker) (cards.Card, bool) {
	highest := legal.Highest()
	top := tracker.HighestLiveRank()
	if highest.Rank != top || hand.CountRank(top)*2 > tracker.Remaining(top) {
		return highest, true
	}
	var second cards.Card
	found := false
	for _, c := range legal {
		if c.Rank == top {
			continue
		}
		if !found || c.PlayValue() > second.PlayValue() {
			second, found = c, true
		}
	}
	return second, found
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
