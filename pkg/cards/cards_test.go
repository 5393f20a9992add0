package cards

import (
	"testing"
)

func TestMakeDeck(t *testing.T) {
	deck := MakeDeck()
	if len(deck) != 52 {
		t.Fatalf("MakeDeck()=%d cards, want 52", len(deck))
	}
	seen := make(map[Card]bool)
	for _, c := range deck {
		if seen[c] {
			t.Errorf("MakeDeck() contains duplicate %s", c)
		}
		seen[c] = true
	}
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		hand  Cards
		match func(Card) bool
		want  Cards
	}{
		{
			name:  "Hearts only",
			hand:  Cards{C2c, C3h, C4s, C5d},
			match: func(c Card) bool { return c.Suit == Hearts },
			want:  Cards{C3h},
		},
		{
			name:  "High cards",
			hand:  Cards{C2c, Cjh, C4s, Cqd},
			match: func(c Card) bool { return c.PlayValue() > 10 },
			want:  Cards{Cjh, Cqd},
		},
		{
			name:  "Filter all out",
			hand:  Cards{C2c, C3h},
			match: func(c Card) bool { return false },
			want:  Cards{},
		},
		{
			name:  "Empty hand",
			hand:  Cards{},
			match: func(c Card) bool { return true },
			want:  Cards{},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.hand.Filter(tc.match)
			if !got.Equals(tc.want) {
				t.Errorf("Filter(%s)=%s, want %s", tc.hand, got, tc.want)
			}
		})
	}
}

func TestLowestHighest(t *testing.T) {
	tests := []struct {
		name        string
		hand        Cards
		wantLowest  Card
		wantHighest Card
	}{
		{
			name:        "Mixed",
			hand:        Cards{C7h, C2c, Cks, Cad},
			wantLowest:  Cad,
			wantHighest: Cks,
		},
		{
			name:        "Ace plays low",
			hand:        Cards{Cah, C2c},
			wantLowest:  Cah,
			wantHighest: C2c,
		},
		{
			name:        "Ties keep first",
			hand:        Cards{C7h, C7d, C7s},
			wantLowest:  C7h,
			wantHighest: C7h,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.hand.Lowest(); got != tc.wantLowest {
				t.Errorf("Lowest(%s)=%s, want %s", tc.hand, got, tc.wantLowest)
			}
			if got := tc.hand.Highest(); got != tc.wantHighest {
				t.Errorf("Highest(%s)=%s, want %s", tc.hand, got, tc.wantHighest)
			}
		})
	}
}

func TestRemove(t *testing.T) {
	hand := Cards{C2c, C3h, C4s}
	hand = hand.Remove(C3h)
	if !hand.Equals(Cards{C2c, C4s}) {
		t.Errorf("Remove(C3h)=%s, want %s", hand, Cards{C2c, C4s})
	}
	// Removing an absent card leaves the hand alone.
	hand = hand.Remove(Ckd)
	if !hand.Equals(Cards{C2c, C4s}) {
		t.Errorf("Remove(absent)=%s, want %s", hand, Cards{C2c, C4s})
	}
}

func TestCountRank(t *testing.T) {
	hand := Cards{Cks, Ckh, C2c, Ckd}
	if got := hand.CountRank(King); got != 3 {
		t.Errorf("CountRank(King)=%d, want 3", got)
	}
	if got := hand.CountRank(Five); got != 0 {
		t.Errorf("CountRank(Five)=%d, want 0", got)
	}
}

func TestContainsCard(t *testing.T) {
	hand := Cards{C2c, C3h}
	if !hand.ContainsCard(C3h) {
		t.Errorf("ContainsCard(C3h)=false, want true")
	}
	if hand.ContainsCard(Cks) {
		t.Errorf("ContainsCard(Cks)=true, want false")
	}
}

func TestParseCards(t *testing.T) {
	got, err := ParseCards([]string{"1C", "10S", "7H"})
	if err != nil {
		t.Fatalf("ParseCards error %v", err)
	}
	if !got.Equals(Cards{Cac, Cts, C7h}) {
		t.Errorf("ParseCards=%s, want %s", got, Cards{Cac, Cts, C7h})
	}
	if _, err := ParseCards([]string{"1C", "bogus"}); err == nil {
		t.Errorf("ParseCards with bad code expected error")
	}
}

func TestHandString(t *testing.T) {
	hand := Cards{C5h, Cac, C2s, Cks}
	want := "2S 13S   5H   1C"
	if got := hand.HandString(); got != want {
		t.Errorf("HandString()=%q, want %q", got, want)
	}
}
