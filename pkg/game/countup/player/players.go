package player

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/mpsalisbury/countup/pkg/game/countup"
)

// Kinds of players selectable from config or flags.
var Kinds = []string{"random", "basic", "clever", "human"}

// AddKindFlag registers a flag for choosing a seat's player kind.
func AddKindFlag(target *string, name string) {
	usage := fmt.Sprintf("Type of player logic to use, must be one of %v", Kinds)
	flag.Func(name, usage, func(flagValue string) error {
		for _, kind := range Kinds {
			if flagValue == kind {
				*target = flagValue
				return nil
			}
		}
		return fmt.Errorf("must be one of %v", Kinds)
	})
}

// FromKind builds the strategy for a config kind. Unrecognized or empty kinds
// fall back to random, keeping table setup mistakes out of the game itself.
func FromKind(kind string, rng *rand.Rand) countup.Strategy {
	switch kind {
	case "basic":
		return NewBasicStrategy(rng)
	case "clever":
		return NewCleverStrategy()
	case "human":
		return NewTerminalStrategy()
	default:
		return NewRandomStrategy(rng)
	}
}
