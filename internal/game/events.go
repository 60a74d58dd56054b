package game

import (
	"time"
)

// EventType identifies an audit log entry
type EventType string

const (
	EventHandStart      EventType = "hand_start"
	EventPostAnte       EventType = "post_ante"
	EventPostBlind      EventType = "post_blind"
	EventDealHole       EventType = "deal_hole"
	EventPlayerAction   EventType = "player_action"
	EventActionRejected EventType = "action_rejected"
	EventActionSkipped  EventType = "action_skipped"
	EventDealBoard      EventType = "deal_board"
	EventShowdown       EventType = "showdown"
	EventSettled        EventType = "settled"
)

// Event is one immutable audit entry. Every state transition and every
// rejected action appends one, retained on the hand for diagnostics and
// replay instead of being printed as side-channel text.
type Event struct {
	Time   time.Time `json:"time"`
	Street string    `json:"street"`
	Seat   int       `json:"seat"` // -1 when no seat is involved
	Type   EventType `json:"type"`
	Action string    `json:"action,omitempty"`
	Amount int       `json:"amount,omitempty"`
	Detail string    `json:"detail,omitempty"`
	Stacks []Chips   `json:"stacks"`
}

func (h *Hand) appendEvent(typ EventType, seat int, action string, amount int, detail string) {
	stacks := make([]Chips, NumSeats)
	for i, s := range h.Seats {
		stacks[i] = s.CurrentStack()
	}
	h.Events = append(h.Events, Event{
		Time:   h.clock.Now(),
		Street: h.Street.String(),
		Seat:   seat,
		Type:   typ,
		Action: action,
		Amount: amount,
		Detail: detail,
		Stacks: stacks,
	})
}
