package countup

import (
	"encoding/json"
	"fmt"
	"os"
)

// SeatConfig describes one seat of the table.
type SeatConfig struct {
	// Kind selects the seat's strategy: random, basic, clever or human.
	// Unrecognized or empty kinds play random.
	Kind string `json:"kind"`
	// InitialCards are placed in this seat's hand before the random fill,
	// as card codes like "10S" or "1C".
	InitialCards []string `json:"initial_cards"`
	// CardsPlayed forces this seat's first moves in order, for replays.
	// The literal SKIP passes. Once the list is exhausted the seat's
	// strategy takes over.
	CardsPlayed []string `json:"cards_played"`
}

// Config holds the table setup for one game.
type Config struct {
	// Seed for dealing; 0 means seed from the clock.
	Seed  int64                `json:"seed"`
	Seats [NumSeats]SeatConfig `json:"players"`
}

// LoadConfig reads a table config from a JSON file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read game config: %w", err)
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal game config: %w", err)
	}
	return c, nil
}
