package cards

import (
	"fmt"
	"strconv"
	"strings"
)

// A card's suit.
type Suit int8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

var Suits = []Suit{
	Spades,
	Hearts,
	Diamonds,
	Clubs,
}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	}
	panic("Unknown Suit")
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToUpper(s) {
	case "S":
		return Spades, nil
	case "H":
		return Hearts, nil
	case "D":
		return Diamonds, nil
	case "C":
		return Clubs, nil
	}
	return Clubs, fmt.Errorf("no such suit '%s'", s)
}

// A card's rank. The ace plays low but scores high: PlayValue orders cards
// for following onto a trick (ace=1), ScoreValue weights them for scoring
// (ace through ten all count 10).
type Rank int8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var Ranks = []Rank{
	Ace,
	Two,
	Three,
	Four,
	Five,
	Six,
	Seven,
	Eight,
	Nine,
	Ten,
	Jack,
	Queen,
	King,
}

func (r Rank) PlayValue() int {
	return int(r)
}

func (r Rank) ScoreValue() int {
	if r == Ace || r >= Ten {
		return 10
	}
	return int(r)
}

// A rank's code is its play value in decimal: "1" for the ace, "13" for
// the king.
func (r Rank) String() string {
	return strconv.Itoa(int(r))
}

func parseRank(v string) (Rank, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 13 {
		return Ace, fmt.Errorf("no such rank '%s'", v)
	}
	return Rank(n), nil
}

type Card struct {
	Rank
	Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard reads a card code like "7H" or "10S": the play value followed by
// the suit letter.
func ParseCard(c string) (Card, error) {
	if len(c) < 2 {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	r, rerr := parseRank(c[:len(c)-1])
	s, serr := parseSuit(c[len(c)-1:])
	if rerr != nil || serr != nil {
		return Card{}, fmt.Errorf("can't parse card '%s'", c)
	}
	return Card{r, s}, nil
}

// LenientCard parses a card code without failing: an unrecognized rank code
// falls back to the ace and an unrecognized suit letter to clubs.
func LenientCard(c string) Card {
	var rankCode, suitCode string
	if len(c) > 0 {
		rankCode = c[:len(c)-1]
		suitCode = c[len(c)-1:]
	}
	r, err := parseRank(rankCode)
	if err != nil {
		r = Ace
	}
	s, err := parseSuit(suitCode)
	if err != nil {
		s = Clubs
	}
	return Card{r, s}
}

func (c1 Card) LessThan(c2 Card) bool {
	if c1.Suit == c2.Suit {
		return c1.PlayValue() < c2.PlayValue()
	}
	return c1.Suit < c2.Suit
}
