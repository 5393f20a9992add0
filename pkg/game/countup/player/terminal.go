package player

import (
	"fmt"
	"strings"

	"github.com/mpsalisbury/countup/pkg/cards"
	"github.com/mpsalisbury/countup/pkg/game/countup"
)

// TerminalStrategy has the user enter plays via the terminal. The turn blocks
// until a card in the legal set is entered, or an empty line / "skip" passes.

func NewTerminalStrategy() countup.Strategy {
	return &terminalStrategy{}
}

type terminalStrategy struct{}

func (terminalStrategy) Choose(hand, trick cards.Cards, _ *countup.DeckTracker) (cards.Card, bool) {
	legal := countup.LegalPlays(hand, trick)
	fmt.Printf("Your hand: %s\n", hand.HandString())
	if len(trick) > 0 {
		fmt.Printf("Trick so far: %s\n", trick)
	}
	if len(legal) == 0 {
		fmt.Println("No legal card to play, passing.")
		return cards.Card{}, false
	}
	fmt.Printf("Legal plays: %s\n", legal)
	for {
		fmt.Printf("Enter card to play (empty or 'skip' to pass): ")
		var cs string
		fmt.Scanln(&cs)
		if cs == "" || strings.EqualFold(cs, "skip") {
			return cards.Card{}, false
		}
		card, err := cards.ParseCard(cs)
		if err != nil {
			fmt.Printf("Invalid card %s, try again\n", cs)
			continue
		}
		if !legal.ContainsCard(card) {
			fmt.Printf("Can't play card %s. Try again\n", card)
			continue
		}
		return card, true
	}
}
