package countup

import (
	"testing"

	"github.com/mpsalisbury/countup/pkg/cards"
)

func TestLegalPlays(t *testing.T) {
	tests := []struct {
		name  string
		hand  cards.Cards
		trick cards.Cards
		want  cards.Cards
	}{
		{
			name:  "Follow beats in suit or matches rank off suit",
			hand:  cards.Cards{cards.C7h, cards.C5d, cards.C9s},
			trick: cards.Cards{cards.C5h},
			want:  cards.Cards{cards.C7h, cards.C5d},
		},
		{
			name:  "Only the last trick card matters",
			hand:  cards.Cards{cards.C6h, cards.C9d},
			trick: cards.Cards{cards.C2h, cards.C9h},
			want:  cards.Cards{cards.C9d},
		},
		{
			name:  "No legal card means pass",
			hand:  cards.Cards{cards.C2h, cards.C5d},
			trick: cards.Cards{cards.Cks},
			want:  cards.Cards{},
		},
		{
			name:  "Lead with ace of clubs when held",
			hand:  cards.Cards{cards.C4h, cards.Cac, cards.Cks},
			trick: cards.Cards{},
			want:  cards.Cards{cards.Cac},
		},
		{
			name:  "Lead anything without ace of clubs",
			hand:  cards.Cards{cards.C4h, cards.Cah, cards.Cks},
			trick: cards.Cards{},
			want:  cards.Cards{cards.C4h, cards.Cah, cards.Cks},
		},
		{
			name:  "Equal rank same suit is not legal",
			hand:  cards.Cards{cards.C5h},
			trick: cards.Cards{cards.C5h},
			want:  cards.Cards{},
		},
		{
			name:  "Empty hand",
			hand:  cards.Cards{},
			trick: cards.Cards{cards.C5h},
			want:  cards.Cards{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := LegalPlays(tc.hand, tc.trick)
			if !got.Equals(tc.want) {
				t.Errorf("LegalPlays(%s | %s)=%s, want %s", tc.hand, tc.trick, got, tc.want)
			}
			for _, c := range got {
				if !tc.hand.ContainsCard(c) {
					t.Errorf("LegalPlays returned %s not present in hand %s", c, tc.hand)
				}
			}
		})
	}
}
