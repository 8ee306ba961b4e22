package scenario

import (
	"errors"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/hyeon-dev/ludo-sim/internal/ludo"
)

var (
	ErrNoPlayers      = errors.New("scenario has no players")
	ErrUnknownSeat    = errors.New("turn references a seat not in players")
	ErrRollOutOfRange = errors.New("roll must be between 1 and 6")
)

// Scenario is one scripted simulation: the participating seats and the full
// turn sequence. Dice rolls are supplied by the script, never generated.
type Scenario struct {
	Players []ludo.SeatID `yaml:"players"`
	Turns   []ludo.Turn   `yaml:"turns"`
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	sc, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return sc, nil
}

// Parse decodes a YAML scenario document and validates the input contract:
// players non-empty, drawn from the four seats, no duplicates; every turn
// addressed to a participating seat; rolls within 1..6.
func Parse(raw []byte) (*Scenario, error) {
	var doc struct {
		Players []string `yaml:"players"`
		Turns   []struct {
			Seat string `yaml:"seat"`
			Roll int    `yaml:"roll"`
		} `yaml:"turns"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(doc.Players) == 0 {
		return nil, ErrNoPlayers
	}

	sc := &Scenario{}
	seen := make(map[ludo.SeatID]bool, len(doc.Players))
	for _, p := range doc.Players {
		id, err := ludo.ParseSeatID(p)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			return nil, fmt.Errorf("seat %q: %w", id, ludo.ErrDuplicateSeat)
		}
		seen[id] = true
		sc.Players = append(sc.Players, id)
	}
	for i, t := range doc.Turns {
		id, err := ludo.ParseSeatID(t.Seat)
		if err != nil || !seen[id] {
			return nil, fmt.Errorf("turn %d (seat %q): %w", i+1, t.Seat, ErrUnknownSeat)
		}
		if t.Roll < 1 || t.Roll > 6 {
			return nil, fmt.Errorf("turn %d (roll %d): %w", i+1, t.Roll, ErrRollOutOfRange)
		}
		sc.Turns = append(sc.Turns, ludo.Turn{Seat: id, Roll: t.Roll})
	}
	return sc, nil
}
