package cards

// Card literals
var (
	Cas = Card{Rank: Ace, Suit: Spades}
	C2s = Card{Rank: Two, Suit: Spades}
	C3s = Card{Rank: Three, Suit: Spades}
	C4s = Card{Rank: Four, Suit: Spades}
	C5s = Card{Rank: Five, Suit: Spades}
	C6s = Card{Rank: Six, Suit: Spades}
	C7s = Card{Rank: Seven, Suit: Spades}
	C8s = Card{Rank: Eight, Suit: Spades}
	C9s = Card{Rank: Nine, Suit: Spades}
	Cts = Card{Rank: Ten, Suit: Spades}
	Cjs = Card{Rank: Jack, Suit: Spades}
	Cqs = Card{Rank: Queen, Suit: Spades}
	Cks = Card{Rank: King, Suit: Spades}
	Cah = Card{Rank: Ace, Suit: Hearts}
	C2h = Card{Rank: Two, Suit: Hearts}
	C3h = Card{Rank: Three, Suit: Hearts}
	C4h = Card{Rank: Four, Suit: Hearts}
	C5h = Card{Rank: Five, Suit: Hearts}
	C6h = Card{Rank: Six, Suit: Hearts}
	C7h = Card{Rank: Seven, Suit: Hearts}
	C8h = Card{Rank: Eight, Suit: Hearts}
	C9h = Card{Rank: Nine, Suit: Hearts}
	Cth = Card{Rank: Ten, Suit: Hearts}
	Cjh = Card{Rank: Jack, Suit: Hearts}
	Cqh = Card{Rank: Queen, Suit: Hearts}
	Ckh = Card{Rank: King, Suit: Hearts}
	Cad = Card{Rank: Ace, Suit: Diamonds}
	C2d = Card{Rank: Two, Suit: Diamonds}
	C3d = Card{Rank: Three, Suit: Diamonds}
	C4d = Card{Rank: Four, Suit: Diamonds}
	C5d = Card{Rank: Five, Suit: Diamonds}
	C6d = Card{Rank: Six, Suit: Diamonds}
	C7d = Card{Rank: Seven, Suit: Diamonds}
	C8d = Card{Rank: Eight, Suit: Diamonds}
	C9d = Card{Rank: Nine, Suit: Diamonds}
	Ctd = Card{Rank: Ten, Suit: Diamonds}
	Cjd = Card{Rank: Jack, Suit: Diamonds}
	Cqd = Card{Rank: Queen, Suit: Diamonds}
	Ckd = Card{Rank: King, Suit: Diamonds}
	Cac = Card{Rank: Ace, Suit: Clubs}
	C2c = Card{Rank: Two, Suit: Clubs}
	C3c = Card{Rank: Three, Suit: Clubs}
	C4c = Card{Rank: Four, Suit: Clubs}
	C5c = Card{Rank: Five, Suit: Clubs}
	C6c = Card{Rank: Six, Suit: Clubs}
	C7c = Card{Rank: Seven, Suit: Clubs}
	C8c = Card{Rank: Eight, Suit: Clubs}
	C9c = Card{Rank: Nine, Suit: Clubs}
	Ctc = Card{Rank: Ten, Suit: Clubs}
	Cjc = Card{Rank: Jack, Suit: Clubs}
	Cqc = Card{Rank: Queen, Suit: Clubs}
	Ckc = Card{Rank: King, Suit: Clubs}
)
