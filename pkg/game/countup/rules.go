package countup

import "github.com/mpsalisbury/countup/pkg/cards"

// LegalPlays returns the cards from hand that may legally be offered onto the
// trick. The result may be empty, in which case the seat must pass.
//
// When the trick is empty the holder of the ace of clubs must lead it; a hand
// without that card may lead anything. The ace is gone after the first round,
// so from then on any round may be led with any card.
func LegalPlays(hand, trick cards.Cards) cards.Cards {
	if len(trick) == 0 {
		if hand.ContainsCard(cards.Cac) {
			return cards.Cards{cards.Cac}
		}
		return hand.Copy()
	}
	lead := trick[len(trick)-1]
	return hand.Filter(func(c cards.Card) bool { return beats(c, lead) })
}

// beats reports whether c may follow lead: strictly higher within the same
// suit, or the same play value in a different suit.
func beats(c, lead cards.Card) bool {
	if c.Suit == lead.Suit {
		return c.PlayValue() > lead.PlayValue()
	}
	return c.PlayValue() == lead.PlayValue()
}
