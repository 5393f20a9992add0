package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/mpsalisbury/countup/pkg/cards"
	"github.com/mpsalisbury/countup/pkg/game/countup"
	"github.com/mpsalisbury/countup/pkg/game/countup/player"
	"github.com/pterm/pterm"
)

// Plays one game with you at seat 0 and three automated seats.

var (
	configPath = flag.String("config", "", "Path to a table config JSON file")
	showLog    = flag.Bool("log", false, "Print the game log when the game ends")
	botType    = "basic"
)

func init() {
	player.AddKindFlag(&botType, "player")
}

func main() {
	flag.Parse()
	if err := runGame(); err != nil {
		log.Fatal(err)
	}
}

func runGame() error {
	var cfg countup.Config
	if *configPath != "" {
		var err error
		cfg, err = countup.LoadConfig(*configPath)
		if err != nil {
			return err
		}
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	var strategies [countup.NumSeats]countup.Strategy
	strategies[0] = player.NewTerminalStrategy()
	for i := 1; i < countup.NumSeats; i++ {
		kind := cfg.Seats[i].Kind
		if kind == "" {
			kind = botType
		}
		strategies[i] = player.FromKind(kind, rng)
	}
	g := countup.NewGame(cfg, strategies, terminalReporter{})
	g.Run()
	if *showLog {
		fmt.Printf("\nGame log:\n%s\n", g.Log())
	}
	return nil
}

type terminalReporter struct{}

func (terminalReporter) ReportPlay(seat int, card cards.Card) {
	fmt.Printf("P%d plays %s\n", seat, prettyCard(card))
}

func (terminalReporter) ReportPass(seat int) {
	fmt.Printf("P%d passes\n", seat)
}

func (terminalReporter) ReportRoundCompleted(round, winner int, trick cards.Cards, scores [countup.NumSeats]int) {
	pterm.DefaultSection.Printf("Round %d won by P%d: %s", round, winner, prettyCards(trick))
	fmt.Println(scoreLine(scores))
}

func (terminalReporter) ReportGameFinished(scores [countup.NumSeats]int, winners []int) {
	ws := make([]string, 0, len(winners))
	for _, w := range winners {
		ws = append(ws, fmt.Sprintf("P%d", w))
	}
	pterm.DefaultSection.Printf("Game over. Winners: %s", strings.Join(ws, ", "))
	fmt.Println(scoreLine(scores))
}

func scoreLine(scores [countup.NumSeats]int) string {
	parts := make([]string, 0, countup.NumSeats)
	for i, s := range scores {
		if s < 0 {
			s = 0
		}
		parts = append(parts, fmt.Sprintf("P%d[%d]", i, s))
	}
	return "Scores: " + strings.Join(parts, "  ")
}

func prettyCard(c cards.Card) string {
	var suit string
	switch c.Suit {
	case cards.Clubs:
		suit = pterm.Black("♣")
	case cards.Diamonds:
		suit = pterm.LightRed("♦")
	case cards.Hearts:
		suit = pterm.LightRed("♥")
	case cards.Spades:
		suit = pterm.Black("♠")
	}
	return c.Rank.String() + suit
}

func prettyCards(cs cards.Cards) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, prettyCard(c))
	}
	return strings.Join(parts, " ")
}
