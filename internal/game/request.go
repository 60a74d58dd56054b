package game

import (
	"bytes"
	"encoding/json"
	"fmt"

	"pokersim-server/internal/deck"
)

// PlayerEntry decodes a request's player slot: either a label string or a
// pair of hole card strings.
type PlayerEntry struct {
	PlayerConfig
}

// UnmarshalJSON accepts "name" / "????" or ["As","Kd"]
func (p *PlayerEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var ss []string
		if err := json.Unmarshal(data, &ss); err != nil {
			return err
		}
		if len(ss) != 2 {
			return fmt.Errorf("hole cards entry must have exactly 2 cards, got %d", len(ss))
		}
		cards, err := deck.ParseCards(ss)
		if err != nil {
			return err
		}
		p.PlayerConfig = PlayerConfig{Cards: cards}
		return nil
	}

	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	p.PlayerConfig = PlayerConfig{Label: label}
	return nil
}

// MarshalJSON round-trips the entry shape
func (p PlayerEntry) MarshalJSON() ([]byte, error) {
	if len(p.Cards) == 2 {
		return json.Marshal(deck.CardStrings(p.Cards))
	}
	return json.Marshal(p.Label)
}

// SimulationRequest is the JSON body the API layer accepts for a hand
// simulation. It is validated once here; the engine only ever sees the
// typed Config and Action variants.
type SimulationRequest struct {
	Antes   float64       `json:"antes"`
	Blinds  []float64     `json:"blinds"`
	MinBet  float64       `json:"min_bet"`
	Stacks  []Chips       `json:"stacks"`
	Players []PlayerEntry `json:"players"`
	Actions []Action      `json:"actions"`
	Seed    *int64        `json:"seed,omitempty"`
}

// Validate checks the request's numeric constraints
func (r *SimulationRequest) Validate() error {
	if r.Antes < 0 {
		return fmt.Errorf("antes must be non-negative, got %v", r.Antes)
	}
	if len(r.Blinds) != 0 {
		if len(r.Blinds) != 2 {
			return fmt.Errorf("blinds must be a (small, big) pair, got %d values", len(r.Blinds))
		}
		small, big := r.Blinds[0], r.Blinds[1]
		if small <= 0 || big <= 0 || small >= big {
			return fmt.Errorf("blinds must be positive with small < big, got (%v, %v)", small, big)
		}
	}
	if r.MinBet < 0 {
		return fmt.Errorf("min_bet must be positive, got %v", r.MinBet)
	}
	if len(r.Stacks) > NumSeats {
		return fmt.Errorf("at most %d stacks, got %d", NumSeats, len(r.Stacks))
	}
	if len(r.Players) > NumSeats {
		return fmt.Errorf("at most %d players, got %d", NumSeats, len(r.Players))
	}
	return nil
}

// Config converts the request into the engine's table configuration
func (r *SimulationRequest) Config() Config {
	cfg := Config{
		Antes:  int(r.Antes),
		MinBet: int(r.MinBet),
		Stacks: r.Stacks,
		Seed:   r.Seed,
	}
	if len(r.Blinds) == 2 {
		cfg.SmallBlind = int(r.Blinds[0])
		cfg.BigBlind = int(r.Blinds[1])
	}
	for _, p := range r.Players {
		cfg.Players = append(cfg.Players, p.PlayerConfig)
	}
	return cfg
}
