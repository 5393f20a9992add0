package countup

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mpsalisbury/countup/pkg/cards"
)

const (
	NumSeats      = 4
	numStartCards = 13
)

// Strategy decides a seat's move given its hand and the trick so far.
// Returning ok=false passes the turn. The tracker is the game's shared
// deck tracker; strategies must not mutate it.
type Strategy interface {
	Choose(hand, trick cards.Cards, tracker *DeckTracker) (cards.Card, bool)
}

type GamePhase int8

const (
	Preparing GamePhase = iota
	Playing
	Completed
)

// Reporter receives game activity for display. All methods are invoked from
// the goroutine driving the game.
type Reporter interface {
	ReportPlay(seat int, card cards.Card)
	ReportPass(seat int)
	ReportRoundCompleted(round, winner int, trick cards.Cards, scores [NumSeats]int)
	ReportGameFinished(scores [NumSeats]int, winners []int)
}

type seat struct {
	strategy Strategy
	hand     cards.Cards
	forced   []string // scripted moves not yet consumed
}

// Game runs one four-seat counting-up game to completion. Turns rotate
// strictly modulo NumSeats; a round ends when three seats pass in a row, the
// game when any hand empties.
type Game struct {
	id          string
	rng         *rand.Rand
	seats       [NumSeats]*seat
	tracker     *DeckTracker
	trick       cards.Cards
	scores      [NumSeats]int
	roundNumber int
	next        int
	skipCount   int
	phase       GamePhase
	reporter    Reporter
	gameLog     strings.Builder
}

// NewGame deals a game from cfg. Strategies are assigned to seats by index;
// reporter may be nil.
func NewGame(cfg Config, strategies [NumSeats]Strategy, reporter Reporter) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		id:          uuid.NewString(),
		rng:         rand.New(rand.NewSource(seed)),
		tracker:     NewDeckTracker(),
		roundNumber: 1,
		phase:       Preparing,
		reporter:    reporter,
	}
	for i := range g.seats {
		g.seats[i] = &seat{
			strategy: strategies[i],
			forced:   scriptedMoves(cfg.Seats[i].CardsPlayed),
		}
	}
	g.deal(cfg)
	g.next = g.seatWithCard(cards.Cac)
	g.phase = Playing
	g.logRoundHeader()
	return g
}

func scriptedMoves(codes []string) []string {
	var moves []string
	for _, code := range codes {
		if code != "" {
			moves = append(moves, code)
		}
	}
	return moves
}

// deal places any configured initial cards first, then fills each hand to
// numStartCards from the remaining pack.
func (g *Game) deal(cfg Config) {
	pack := cards.MakeDeck()
	for i, s := range g.seats {
		for _, code := range cfg.Seats[i].InitialCards {
			if len(code) <= 1 {
				continue
			}
			c := cards.LenientCard(code)
			if pack.ContainsCard(c) {
				pack = pack.Remove(c)
				s.hand = append(s.hand, c)
			}
		}
	}
	for _, s := range g.seats {
		for len(s.hand) < numStartCards {
			if len(pack) == 0 {
				return
			}
			c := pack[g.rng.Intn(len(pack))]
			pack = pack.Remove(c)
			s.hand = append(s.hand, c)
		}
		s.hand.Sort()
	}
}

func (g *Game) seatWithCard(c cards.Card) int {
	for i, s := range g.seats {
		if s.hand.ContainsCard(c) {
			return i
		}
	}
	return 0
}

// Run drives the game to completion and returns the game log.
func (g *Game) Run() string {
	for g.phase == Playing {
		g.PlayTurn()
	}
	return g.Log()
}

// PlayTurn resolves one seat's turn: a scripted move if one remains,
// otherwise the seat's strategy decision.
func (g *Game) PlayTurn() {
	if g.phase != Playing {
		return
	}
	s := g.seats[g.next]
	card, played := g.nextMove(s)
	if played {
		g.logPlay(g.next, card)
		g.skipCount = 0
		s.hand = s.hand.Remove(card)
		g.trick = append(g.trick, card)
		g.tracker.CardPlayed(card)
		if g.reporter != nil {
			g.reporter.ReportPlay(g.next, card)
		}
		if len(s.hand) == 0 {
			g.finish(g.next)
			return
		}
	} else {
		g.logPass(g.next)
		g.skipCount++
		if g.reporter != nil {
			g.reporter.ReportPass(g.next)
		}
		if g.skipCount == NumSeats-1 {
			g.finishRound()
		}
	}
	g.next = (g.next + 1) % NumSeats
}

func (g *Game) nextMove(s *seat) (cards.Card, bool) {
	for len(s.forced) > 0 {
		code := s.forced[0]
		s.forced = s.forced[1:]
		if code == "SKIP" {
			return cards.Card{}, false
		}
		c := cards.LenientCard(code)
		if !s.hand.ContainsCard(c) {
			// Scripted card already gone; treated as a pass, like an
			// out-of-sync replay in the original tables.
			return cards.Card{}, false
		}
		return c, true
	}
	return s.strategy.Choose(s.hand.Copy(), g.trick.Copy(), g.tracker)
}

// finishRound scores the trick to the last seat that played (the next seat in
// rotation after three passes) and opens a new round.
func (g *Game) finishRound() {
	winner := (g.next + 1) % NumSeats
	g.skipCount = 0
	g.scoreTrick(winner)
	g.logScores()
	if g.reporter != nil {
		g.reporter.ReportRoundCompleted(g.roundNumber, winner, g.trick, g.scores)
	}
	g.trick = nil
	g.roundNumber++
	g.logRoundHeader()
}

// finish scores the in-progress trick to the seat that emptied its hand, then
// applies the unplayed-card penalty to every seat.
func (g *Game) finish(winner int) {
	g.scoreTrick(winner)
	g.logScores()
	for i, s := range g.seats {
		for _, c := range s.hand {
			g.scores[i] -= c.ScoreValue()
		}
	}
	g.phase = Completed
	g.logEndGame()
	if g.reporter != nil {
		g.reporter.ReportGameFinished(g.scores, g.Winners())
	}
}

func (g *Game) scoreTrick(winner int) {
	for _, c := range g.trick {
		g.scores[winner] += c.ScoreValue()
	}
}

func (g *Game) Id() string {
	return g.id
}
func (g *Game) Phase() GamePhase {
	return g.phase
}
func (g *Game) RoundNumber() int {
	return g.roundNumber
}
func (g *Game) NextSeat() int {
	return g.next
}
func (g *Game) Scores() [NumSeats]int {
	return g.scores
}

// DisplayScore clamps a seat's score at zero for display; the underlying
// score may be negative after end-game penalties.
func (g *Game) DisplayScore(seat int) int {
	if g.scores[seat] < 0 {
		return 0
	}
	return g.scores[seat]
}

func (g *Game) Hand(seat int) cards.Cards {
	if seat < 0 || seat >= NumSeats {
		log.Fatalf("no seat %d", seat)
	}
	return g.seats[seat].hand.Copy()
}

func (g *Game) Trick() cards.Cards {
	return g.trick.Copy()
}

// LegalPlays is the legal set for the seat about to act, for front ends
// validating a human selection.
func (g *Game) LegalPlays() cards.Cards {
	return LegalPlays(g.seats[g.next].hand, g.trick)
}

// Winners lists the seats holding the maximum final score; ties produce
// multiple winners.
func (g *Game) Winners() []int {
	max := g.scores[0]
	for _, s := range g.scores[1:] {
		if s > max {
			max = s
		}
	}
	var winners []int
	for i, s := range g.scores {
		if s == max {
			winners = append(winners, i)
		}
	}
	return winners
}

func (g *Game) Log() string {
	return g.gameLog.String()
}

func (g *Game) logRoundHeader() {
	fmt.Fprintf(&g.gameLog, "Round%d:", g.roundNumber)
}
func (g *Game) logPlay(seat int, c cards.Card) {
	fmt.Fprintf(&g.gameLog, "P%d-%s,", seat, c)
}
func (g *Game) logPass(seat int) {
	fmt.Fprintf(&g.gameLog, "P%d-SKIP,", seat)
}
func (g *Game) logScores() {
	g.gameLog.WriteString("Score:")
	for _, s := range g.scores {
		fmt.Fprintf(&g.gameLog, "%d,", s)
	}
	g.gameLog.WriteString("\n")
}
func (g *Game) logEndGame() {
	g.gameLog.WriteString("EndGame:")
	for _, s := range g.scores {
		fmt.Fprintf(&g.gameLog, "%d,", s)
	}
	g.gameLog.WriteString("\n")
	winners := []string{}
	for _, w := range g.Winners() {
		winners = append(winners, fmt.Sprint(w))
	}
	fmt.Fprintf(&g.gameLog, "Winners:%s", strings.Join(winners, ", "))
}
