package game

import (
	"encoding/json"
	"fmt"

	"pokersim-server/internal/deck"
)

// ActionType identifies a scripted action variant
type ActionType string

const (
	ActionFold      ActionType = "fold"
	ActionCheck     ActionType = "check"
	ActionCall      ActionType = "call"
	ActionBet       ActionType = "bet"
	ActionRaise     ActionType = "raise"
	ActionAllIn     ActionType = "allin"
	ActionShow      ActionType = "show"
	ActionDealBoard ActionType = "deal_board"
	// ActionUnknown carries an unrecognized descriptor. The engine skips it
	// and keeps replaying, keeping forward-compatible scripts working.
	ActionUnknown ActionType = "unknown"
)

// Action is the tagged variant a JSON action descriptor maps to. Descriptors
// are validated once at the boundary so the engine never branches on raw
// strings or missing fields.
type Action struct {
	Type   ActionType
	Amount int
	// Board holds explicit cards for deal_board entries. Empty means deal
	// from the remaining deck.
	Board []deck.Card
	// Raw preserves the original type string for unknown actions
	Raw string
}

func (a Action) String() string {
	switch a.Type {
	case ActionBet, ActionRaise:
		return fmt.Sprintf("%s %d", a.Type, a.Amount)
	case ActionDealBoard:
		return fmt.Sprintf("deal_board %v", deck.CardStrings(a.Board))
	case ActionUnknown:
		return fmt.Sprintf("unknown(%s)", a.Raw)
	default:
		return string(a.Type)
	}
}

type actionDescriptor struct {
	Type      string   `json:"type"`
	Amount    *float64 `json:"amount"`
	DealBoard []string `json:"deal_board"`
}

// UnmarshalJSON maps an action descriptor onto the closed variant set
func (a *Action) UnmarshalJSON(data []byte) error {
	var d actionDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}

	if d.DealBoard != nil {
		cards, err := deck.ParseCards(d.DealBoard)
		if err != nil {
			return err
		}
		*a = Action{Type: ActionDealBoard, Board: cards}
		return nil
	}

	switch ActionType(d.Type) {
	case ActionFold, ActionCheck, ActionCall, ActionAllIn, ActionShow:
		*a = Action{Type: ActionType(d.Type)}
	case ActionBet, ActionRaise:
		if d.Amount == nil {
			return fmt.Errorf("%s action requires an amount", d.Type)
		}
		*a = Action{Type: ActionType(d.Type), Amount: int(*d.Amount)}
	default:
		*a = Action{Type: ActionUnknown, Raw: d.Type}
	}
	return nil
}

// MarshalJSON round-trips the descriptor shape
func (a Action) MarshalJSON() ([]byte, error) {
	if a.Type == ActionDealBoard {
		return json.Marshal(map[string]any{"deal_board": deck.CardStrings(a.Board)})
	}
	m := map[string]any{"type": string(a.Type)}
	if a.Type == ActionBet || a.Type == ActionRaise {
		m["amount"] = a.Amount
	}
	if a.Type == ActionUnknown {
		m["type"] = a.Raw
	}
	return json.Marshal(m)
}
