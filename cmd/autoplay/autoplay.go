package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/mpsalisbury/countup/internal/results"
	"github.com/mpsalisbury/countup/pkg/game/countup"
	"github.com/mpsalisbury/countup/pkg/game/countup/player"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Runs automated games and tallies wins per seat. Each game owns its deck
// tracker, so games run concurrently without sharing state.

var (
	numGames   = flag.Int("n", 100, "Number of games to play")
	seatKinds  = flag.String("players", "", "Comma-separated strategy kinds for the four seats (overrides -type)")
	recordPath = flag.String("record", "", "Record finished games to this sqlite file")
	seed       = flag.Int64("seed", 0, "Base deal seed; 0 seeds from the clock")
	playerType = "random"
)

func init() {
	player.AddKindFlag(&playerType, "type")
}

func main() {
	flag.Parse()
	if err := runGames(); err != nil {
		log.Fatal(err)
	}
}

func tableKinds() ([countup.NumSeats]string, error) {
	var kinds [countup.NumSeats]string
	for i := range kinds {
		kinds[i] = playerType
	}
	if *seatKinds == "" {
		return kinds, nil
	}
	parts := strings.Split(*seatKinds, ",")
	if len(parts) != countup.NumSeats {
		return kinds, fmt.Errorf("-players needs %d kinds, got %d", countup.NumSeats, len(parts))
	}
	for i, p := range parts {
		kinds[i] = strings.TrimSpace(p)
	}
	return kinds, nil
}

func runGames() error {
	kinds, err := tableKinds()
	if err != nil {
		return err
	}
	var svc *results.Service
	if *recordPath != "" {
		svc, err = results.Open(*recordPath)
		if err != nil {
			return err
		}
		defer svc.Close()
	}

	var (
		mu   sync.Mutex
		wins = make(map[string]int)
	)
	wg := new(sync.WaitGroup)
	for i := 0; i < *numGames; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var cfg countup.Config
			if *seed != 0 {
				cfg.Seed = *seed + int64(i)
			}
			rng := rand.New(rand.NewSource(time.Now().UnixNano() + int64(i)))
			var strategies [countup.NumSeats]countup.Strategy
			for s := range strategies {
				strategies[s] = player.FromKind(kinds[s], rng)
			}
			g := countup.NewGame(cfg, strategies, nil)
			g.Run()

			mu.Lock()
			for _, w := range g.Winners() {
				wins[fmt.Sprintf("P%d %s", w, kinds[w])]++
			}
			mu.Unlock()

			if svc != nil {
				r := results.GameResult{
					ID:      g.Id(),
					Seats:   kinds,
					Scores:  g.Scores(),
					Winners: g.Winners(),
				}
				if err := svc.Record(r); err != nil {
					log.Printf("couldn't record game %s: %v", g.Id(), err)
				}
			}
		}(i)
	}
	wg.Wait()

	fmt.Printf("Wins over %d games:\n", *numGames)
	keys := maps.Keys(wins)
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Printf("  %-12s %d\n", k, wins[k])
	}
	return nil
}
