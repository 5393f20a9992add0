package player

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/mpsalisbury/countup/pkg/cards"
	"github.com/mpsalisbury/countup/pkg/game/countup"
)

func TestFromKindFallsBackToRandom(t *testing.T) {
	for _, kind := range []string{"", "bogus"} {
		s := FromKind(kind, rand.New(rand.NewSource(1)))
		hand := cards.Cards{cards.C7h, cards.C5d}
		trick := cards.Cards{cards.C5h}
		c, ok := s.Choose(hand, trick, countup.NewDeckTracker())
		if !ok {
			t.Errorf("FromKind(%q) passed with legal plays available", kind)
			continue
		}
		if !countup.LegalPlays(hand, trick).ContainsCard(c) {
			t.Errorf("FromKind(%q) played illegal card %s", kind, c)
		}
	}
}

func TestMixedStrategiesPlayFullGame(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		strategies := [countup.NumSeats]countup.Strategy{
			NewRandomStrategy(rng),
			NewBasicStrategy(rng),
			NewCleverStrategy(),
			NewBasicStrategy(rng),
		}
		g := countup.NewGame(countup.Config{Seed: seed}, strategies, nil)
		gameLog := g.Run()

		if g.Phase() != countup.Completed {
			t.Fatalf("seed %d: game did not complete", seed)
		}
		emptied := false
		for i := 0; i < countup.NumSeats; i++ {
			if len(g.Hand(i)) == 0 {
				emptied = true
			}
		}
		if !emptied {
			t.Errorf("seed %d: no seat emptied its hand", seed)
		}
		if !strings.HasPrefix(gameLog, "Round1:") {
			t.Errorf("seed %d: log %q does not start with Round1:", seed, gameLog)
		}
		if !strings.Contains(gameLog, "Winners:") {
			t.Errorf("seed %d: log has no Winners line", seed)
		}
	}
}
