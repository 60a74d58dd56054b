package game

import (
	"fmt"

	"github.com/coder/quartz"

	"pokersim-server/internal/deck"
	"pokersim-server/internal/evaluator"
)

// Dealer position is fixed at seat 0 for every simulated hand; the small
// and big blinds sit at seats 1 and 2. Single-hand simulations have no
// button rotation.
const (
	buttonSeat     = 0
	smallBlindSeat = 1
	bigBlindSeat   = 2
)

// settleOrder lists seats from earliest-acting postflop position; odd
// chips in split pots go to the first winner in this order.
var settleOrder = [NumSeats]int{1, 2, 3, 4, 5, 0}

// Hand is the aggregate for one simulated hand: deck, the six seats, pot
// ledger, board, betting state and the audit event log. It is built per
// simulation and discarded once the snapshot is produced.
type Hand struct {
	Seats    []*Seat
	Deck     *deck.Deck
	Board    []deck.Card
	Street   Street
	Ledger   *Ledger
	Betting  *BettingRound
	Actor    int // -1 when nobody owes action
	Events   []Event
	Winnings map[int]int // per-seat payout, populated at settlement

	clock quartz.Clock
}

func newHand(cfg Config, clock quartz.Clock) (*Hand, error) {
	h := &Hand{
		Seats:  make([]*Seat, NumSeats),
		Street: Preflop,
		Ledger: &Ledger{},
		Actor:  -1,
		clock:  clock,
	}

	d := deck.NewDeck(cfg.rng())
	h.Deck = d

	for i := 0; i < NumSeats; i++ {
		p := cfg.Players[i]
		stack := cfg.Stacks[i]
		seat := &Seat{
			Index:      i,
			Label:      p.Label,
			KnownCards: len(p.Cards) == 2,
			Starting:   stack,
			Stack:      stack.Amount,
			Infinite:   stack.Infinite,
			Status:     SeatActive,
		}
		// placeholder seats fill the table to six but do not play; seats
		// without chips cannot play either
		if p.SittingOut() || (!seat.Infinite && seat.Stack <= 0) {
			seat.Status = SeatSittingOut
		}
		h.Seats[i] = seat
	}

	// explicitly configured hole cards leave the deck before any random deal
	for i, p := range cfg.Players {
		if len(p.Cards) == 2 {
			if err := d.Remove(p.Cards...); err != nil {
				return nil, err
			}
			h.Seats[i].HoleCards = p.Cards
		}
	}

	minBet := cfg.MinBet
	if minBet <= 0 {
		minBet = cfg.BigBlind
	}
	h.Betting = NewBettingRound(minBet)

	h.appendEvent(EventHandStart, -1, "", 0, "")

	if err := h.postAntes(cfg.Antes); err != nil {
		return nil, err
	}
	if err := h.postBlinds(cfg.SmallBlind, cfg.BigBlind); err != nil {
		return nil, err
	}
	if err := h.dealHoleCards(); err != nil {
		return nil, err
	}

	if len(h.seatsInHand()) <= 1 {
		// nobody to contest the hand; settle immediately
		h.settle()
		return h, nil
	}

	h.Actor = h.nextOwing(bigBlindSeat + 1)
	return h, nil
}

// postAntes posts a dead ante from every seat in the hand and collects
// them straight into the pot, before blinds.
func (h *Hand) postAntes(ante int) error {
	if ante <= 0 {
		return nil
	}
	for _, s := range h.Seats {
		if !s.InHand() {
			continue
		}
		amount := ante
		if !s.Infinite && s.Stack < amount {
			amount = s.Stack
		}
		if err := h.Ledger.Post(s, amount); err != nil {
			return err
		}
		h.appendEvent(EventPostAnte, s.Index, "", amount, "")
	}
	h.Ledger.CloseStreet(h.Seats)
	return nil
}

func (h *Hand) postBlinds(smallBlind, bigBlind int) error {
	for _, blind := range []struct {
		seat   int
		amount int
		name   string
	}{
		{smallBlindSeat, smallBlind, "small blind"},
		{bigBlindSeat, bigBlind, "big blind"},
	} {
		s := h.Seats[blind.seat]
		if !s.InHand() {
			continue
		}
		amount := blind.amount
		if !s.Infinite && s.Stack < amount {
			amount = s.Stack
		}
		if err := h.Ledger.Post(s, amount); err != nil {
			return err
		}
		h.appendEvent(EventPostBlind, s.Index, blind.name, amount, "")

		// the bet to match is the nominal blind even when posted short;
		// when a blind seat sits out its blind simply never goes in
		h.Betting.CurrentBet = blind.amount
		h.Betting.ReopenBet = blind.amount
	}
	return nil
}

func (h *Hand) dealHoleCards() error {
	for _, s := range h.Seats {
		if !s.InHand() || len(s.HoleCards) == 2 {
			continue
		}
		cards, err := h.Deck.Deal(2)
		if err != nil {
			return err
		}
		s.HoleCards = cards
	}
	h.appendEvent(EventDealHole, -1, "", 0, "")
	return nil
}

// nextOwing scans seat order from the given index, wrapping, for the next
// seat that still owes action. Returns -1 when the round is closed.
func (h *Hand) nextOwing(from int) int {
	for i := 0; i < NumSeats; i++ {
		idx := (from + i) % NumSeats
		if h.Betting.Owes(h.Seats[idx]) {
			return idx
		}
	}
	return -1
}

func (h *Hand) seatsInHand() []*Seat {
	var in []*Seat
	for _, s := range h.Seats {
		if s.InHand() {
			in = append(in, s)
		}
	}
	return in
}

// Apply validates and applies one player action for the current actor.
// Script errors come back as typed errors; the hand is left at its last
// valid state.
func (h *Hand) Apply(a Action) error {
	switch a.Type {
	case ActionUnknown:
		h.appendEvent(EventActionSkipped, -1, a.Raw, 0, "unknown action type")
		return nil
	case ActionDealBoard:
		return h.DealBoard(a.Board)
	case ActionShow:
		// settlement shows every live hand with known cards on its own;
		// an explicit show is recorded and otherwise a no-op
		h.appendEvent(EventPlayerAction, h.Actor, string(ActionShow), 0, "")
		return nil
	}

	if h.Actor == -1 || h.Street >= Showdown {
		// betting round already closed; mirror the permissive source and
		// skip rather than abort
		h.appendEvent(EventActionSkipped, -1, string(a.Type), a.Amount, "no seat owes action")
		return nil
	}

	seat := h.Seats[h.Actor]
	toCall := h.Betting.ToCall(seat)

	var err error
	switch a.Type {
	case ActionFold:
		seat.Status = SeatFolded
		h.Betting.MarkActed(seat.Index)

	case ActionCheck:
		if toCall != 0 {
			err = &IllegalActionError{Seat: seat.Index, Action: "check", Constraint: fmt.Sprintf("must call %d", toCall)}
			break
		}
		h.Betting.MarkActed(seat.Index)

	case ActionCall:
		if toCall <= 0 {
			err = &IllegalActionError{Seat: seat.Index, Action: "call", Constraint: "nothing to call"}
			break
		}
		amount := toCall
		if !seat.Infinite && amount >= seat.Stack {
			amount = seat.Stack // all-in call for the remaining stack
		}
		if postErr := h.Ledger.Post(seat, amount); postErr != nil {
			return postErr
		}
		h.Betting.MarkActed(seat.Index)

	case ActionBet, ActionRaise:
		err = h.applyRaiseTo(seat, string(a.Type), a.Amount)

	case ActionAllIn:
		if seat.Infinite {
			err = &IllegalActionError{Seat: seat.Index, Action: "allin", Constraint: "infinite stacks cannot go all-in"}
			break
		}
		total := seat.Stack + seat.StreetBet
		if total > h.Betting.CurrentBet {
			err = h.applyRaiseTo(seat, "allin", total)
		} else {
			if postErr := h.Ledger.Post(seat, seat.Stack); postErr != nil {
				return postErr
			}
			h.Betting.MarkActed(seat.Index)
		}
	}

	if err != nil {
		h.appendEvent(EventActionRejected, seat.Index, string(a.Type), a.Amount, err.Error())
		return err
	}

	h.appendEvent(EventPlayerAction, seat.Index, string(a.Type), a.Amount, "")
	h.afterAction(seat.Index)
	return nil
}

// applyRaiseTo handles bet/raise/all-in-raise to a street total of amount
func (h *Hand) applyRaiseTo(seat *Seat, action string, amount int) error {
	total := seat.StreetBet + seat.Stack
	allIn := !seat.Infinite && amount == total

	if !seat.Infinite && amount > total {
		return &IllegalActionError{Seat: seat.Index, Action: action, Constraint: fmt.Sprintf("amount %d exceeds stack of %d", amount, total)}
	}
	if amount <= h.Betting.CurrentBet {
		return &IllegalActionError{Seat: seat.Index, Action: action, Constraint: fmt.Sprintf("amount %d must exceed current bet of %d", amount, h.Betting.CurrentBet)}
	}
	if amount-h.Betting.CurrentBet < h.Betting.MinRaise && !allIn {
		return &IllegalActionError{Seat: seat.Index, Action: action, Constraint: fmt.Sprintf("minimum raise is to %d", h.Betting.NextRaiseTo())}
	}

	if err := h.Ledger.Post(seat, amount-seat.StreetBet); err != nil {
		return err
	}
	h.Betting.ApplyRaise(seat.Index, amount)
	return nil
}

// afterAction advances the actor, settles fold-outs and triggers showdown
// once river betting closes.
func (h *Hand) afterAction(from int) {
	if len(h.seatsInHand()) == 1 {
		h.settle()
		return
	}

	h.Actor = h.nextOwing(from + 1)
	if h.Actor == -1 && h.Street == River && h.Betting.Closed(h.Seats) {
		h.settle()
	}
}

// DealBoard closes the current street and deals the next board cards,
// burning first. Explicit cards are validated against the remaining deck;
// an empty list deals randomly.
func (h *Hand) DealBoard(cards []deck.Card) error {
	if h.Street >= River {
		h.appendEvent(EventActionSkipped, -1, string(ActionDealBoard), 0, "board already complete")
		return nil
	}
	if h.Actor != -1 {
		return &PrematureBoardDealError{Street: h.Street, Actor: h.Actor}
	}

	want := 1
	if h.Street == Preflop {
		want = 3
	}
	if len(cards) != 0 && len(cards) != want {
		return &IllegalActionError{Seat: -1, Action: "deal_board", Constraint: fmt.Sprintf("%s deal takes %d cards, got %d", h.Street, want, len(cards))}
	}

	h.Ledger.CloseStreet(h.Seats)
	h.Betting.Reset()

	// explicit cards leave the deck before the burn so the burn card can
	// never collide with a requested board card
	var dealt []deck.Card
	if len(cards) == want {
		if err := h.Deck.Remove(cards...); err != nil {
			return err
		}
		dealt = cards
	}
	if _, err := h.Deck.Burn(); err != nil {
		return err
	}
	if dealt == nil {
		var err error
		dealt, err = h.Deck.Deal(want)
		if err != nil {
			return err
		}
	}
	h.Board = append(h.Board, dealt...)
	h.Street++

	h.appendEvent(EventDealBoard, -1, "", 0, fmt.Sprintf("%v", deck.CardStrings(dealt)))

	h.Actor = h.nextOwing(smallBlindSeat)
	if h.Actor == -1 && h.Street == River {
		// everyone is all-in or checked out of options; river closes at once
		h.settle()
	}
	return nil
}

// settle runs showdown and pushes every pot layer to its winners. Live
// hands with known cards are shown and scored; face-down hands muck.
func (h *Hand) settle() {
	h.Ledger.CloseStreet(h.Seats)
	h.Street = Showdown
	h.Actor = -1

	scores := make(map[int]evaluator.Score)
	for _, s := range h.seatsInHand() {
		if !s.KnownCards {
			continue
		}
		score := evaluator.Evaluate(s.HoleCards, h.Board)
		scores[s.Index] = score
		h.appendEvent(EventShowdown, s.Index, "", 0, score.String())
	}

	h.Winnings = h.Ledger.Settle(h.Seats, scores, settleOrder[:])
	for idx, amount := range h.Winnings {
		s := h.Seats[idx]
		if !s.Infinite {
			s.Stack += amount
		}
	}

	h.Street = Settled
	h.appendEvent(EventSettled, -1, "", h.Ledger.Total(), "")
}

// Payoff returns a seat's net chip change for the hand
func (h *Hand) Payoff(idx int) int {
	return h.Winnings[idx] - h.Seats[idx].TotalBet
}

// Complete reports whether the hand reached settlement
func (h *Hand) Complete() bool {
	return h.Street == Settled
}
