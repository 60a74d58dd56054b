package game

import (
	"strings"
	"testing"

	"pokersim-server/internal/deck"
)

func cardsOf(t *testing.T, ss ...string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(ss)
	if err != nil {
		t.Fatalf("parse cards: %v", err)
	}
	return cards
}

func seedPtr(n int64) *int64 { return &n }

func hasEvent(events []Event, typ EventType) bool {
	for _, e := range events {
		if e.Type == typ {
			return true
		}
	}
	return false
}

// Heads-up with four face-down placeholders filling the table. The
// placeholder blind seats never post, so both live seats can open with a
// check and the flop deals cleanly.
func TestHeadsUpChecksToFlop(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SmallBlind: 20,
		BigBlind:   40,
		Stacks: []Chips{
			FiniteChips(1000), FiniteChips(1000), FiniteChips(1000),
			FiniteChips(1000), FiniteChips(1000), FiniteChips(1000),
		},
		Players: []PlayerConfig{
			{Cards: cardsOf(t, "As", "Kd")},
			{Label: UnknownLabel},
			{Label: UnknownLabel},
			{Cards: cardsOf(t, "Qh", "Qs")},
			{Label: UnknownLabel},
			{Label: UnknownLabel},
		},
		Seed: seedPtr(1),
	}

	res := Simulate(cfg, []Action{
		{Type: ActionCheck},
		{Type: ActionCheck},
		{Type: ActionDealBoard, Board: cardsOf(t, "2c", "7d", "Jh")},
	})

	if res.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %s (%s)", res.Status, res.Error)
	}
	if len(res.Board) != 3 {
		t.Fatalf("expected 3 board cards, got %v", res.Board)
	}
	if hasEvent(res.Events, EventActionRejected) {
		t.Error("no action should have been rejected")
	}
}

// Seat 0 opens with a legal raise to 100; seat 1's raise to 80 sits below
// the current bet and must be rejected, aborting the replay.
func TestUnderRaiseRejected(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SmallBlind: 20,
		BigBlind:   40,
		Players: []PlayerConfig{
			{Label: "alice"}, {Label: "bob"}, {Label: "carol"},
		},
		Seed: seedPtr(2),
	}

	res := Simulate(cfg, []Action{
		{Type: ActionRaise, Amount: 100},
		{Type: ActionRaise, Amount: 80},
	})

	if res.Status != StatusError {
		t.Fatalf("expected error status, got %s", res.Status)
	}
	if !strings.Contains(res.Error, "must exceed current bet") {
		t.Errorf("unexpected error: %s", res.Error)
	}
	// last full raise was 60, so the next legal raise is to 160
	if res.MinRaise == nil || *res.MinRaise != 160 {
		t.Errorf("min raise should be to 160 after the raise to 100, got %v", res.MinRaise)
	}
	if !hasEvent(res.Events, EventActionRejected) {
		t.Error("rejected action should be in the event log")
	}
}

// Short-stacked seat 0 shoves for 50 into a hand where seats 1 and 2 put in
// 200 each. Seat 0 holds the best hand but wins only the 150 main pot; the
// 300 side pot goes to the better of seats 1 and 2.
func TestShortAllInSidePot(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SmallBlind: 20,
		BigBlind:   40,
		Stacks:     []Chips{FiniteChips(50), FiniteChips(1000), FiniteChips(1000)},
		Players: []PlayerConfig{
			{Cards: cardsOf(t, "As", "Ad")},
			{Cards: cardsOf(t, "Ks", "Kd")},
			{Cards: cardsOf(t, "2c", "7d")},
		},
		Seed: seedPtr(3),
	}

	res := Simulate(cfg, []Action{
		{Type: ActionAllIn},
		{Type: ActionRaise, Amount: 200},
		{Type: ActionCall},
		{Type: ActionDealBoard, Board: cardsOf(t, "3h", "8s", "Jc")},
		{Type: ActionCheck},
		{Type: ActionCheck},
		{Type: ActionDealBoard, Board: cardsOf(t, "5d")},
		{Type: ActionCheck},
		{Type: ActionCheck},
		{Type: ActionDealBoard, Board: cardsOf(t, "9h")},
		{Type: ActionCheck},
		{Type: ActionCheck},
	})

	if res.Status != StatusComplete {
		t.Fatalf("expected complete, got %s (%s)", res.Status, res.Error)
	}
	if res.FinalPots != 450 {
		t.Errorf("expected 450 chips in play, got %d", res.FinalPots)
	}
	// aces win 150 main for a 50 stake; kings win the 300 side pot
	if res.Payoffs[0] != 100 {
		t.Errorf("seat 0 payoff should be +100, got %d", res.Payoffs[0])
	}
	if res.Payoffs[1] != 100 {
		t.Errorf("seat 1 payoff should be +100, got %d", res.Payoffs[1])
	}
	if res.Payoffs[2] != -200 {
		t.Errorf("seat 2 payoff should be -200, got %d", res.Payoffs[2])
	}

	sum := 0
	for _, p := range res.Payoffs {
		sum += p
	}
	if sum != 0 {
		t.Errorf("payoffs must conserve chips, sum %d", sum)
	}
	if res.Stacks[0] != FiniteChips(150) {
		t.Errorf("seat 0 final stack should be 150, got %v", res.Stacks[0])
	}
}

// Everyone folds to the opening raise: the raiser collects the blinds and
// the uncalled portion of the raise comes straight back.
func TestFoldOutReturnsUncalledBet(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SmallBlind: 20,
		BigBlind:   40,
		Players: []PlayerConfig{
			{Label: "alice"}, {Label: "bob"}, {Label: "carol"},
		},
		Seed: seedPtr(4),
	}

	res := Simulate(cfg, []Action{
		{Type: ActionRaise, Amount: 100},
		{Type: ActionFold},
		{Type: ActionFold},
	})

	if res.Status != StatusComplete {
		t.Fatalf("expected complete, got %s (%s)", res.Status, res.Error)
	}
	if res.Payoffs[0] != 60 || res.Payoffs[1] != -20 || res.Payoffs[2] != -40 {
		t.Errorf("expected payoffs [60 -20 -40], got %v", res.Payoffs[:3])
	}
	if res.WinnerIndex == nil || *res.WinnerIndex != 0 {
		t.Errorf("seat 0 should be the winner, got %v", res.WinnerIndex)
	}
}

// The big blind keeps the option after limps: the street must not advance
// until it has checked or raised.
func TestBigBlindOption(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SmallBlind: 20,
		BigBlind:   40,
		Players: []PlayerConfig{
			{Label: "alice"}, {Label: "bob"}, {Label: "carol"},
		},
		Seed: seedPtr(5),
	}

	// dealing before the big blind acts is a script ordering error
	res := Simulate(cfg, []Action{
		{Type: ActionCall},
		{Type: ActionCall},
		{Type: ActionDealBoard},
	})
	if res.Status != StatusError {
		t.Fatalf("expected error status, got %s", res.Status)
	}
	if !strings.Contains(res.Error, "cannot deal board") {
		t.Errorf("unexpected error: %s", res.Error)
	}

	// with the option taken, the flop deals
	res = Simulate(cfg, []Action{
		{Type: ActionCall},
		{Type: ActionCall},
		{Type: ActionCheck},
		{Type: ActionDealBoard},
	})
	if res.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %s (%s)", res.Status, res.Error)
	}
	if len(res.Board) != 3 {
		t.Errorf("expected 3 board cards, got %v", res.Board)
	}
}

// Face-down hands all muck at showdown and the pot splits among them, so a
// checked-down hand between label-only seats is chip neutral.
func TestCheckedDownMuckSplitsPot(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SmallBlind: 20,
		BigBlind:   40,
		Players: []PlayerConfig{
			{Label: "alice"}, {Label: "bob"}, {Label: "carol"},
		},
		Seed: seedPtr(6),
	}

	checks := func(n int) []Action {
		out := make([]Action, n)
		for i := range out {
			out[i] = Action{Type: ActionCheck}
		}
		return out
	}

	actions := []Action{{Type: ActionCall}, {Type: ActionCall}, {Type: ActionCheck}}
	actions = append(actions, Action{Type: ActionDealBoard})
	actions = append(actions, checks(3)...)
	actions = append(actions, Action{Type: ActionDealBoard})
	actions = append(actions, checks(3)...)
	actions = append(actions, Action{Type: ActionDealBoard})
	actions = append(actions, checks(3)...)

	res := Simulate(cfg, actions)
	if res.Status != StatusComplete {
		t.Fatalf("expected complete, got %s (%s)", res.Status, res.Error)
	}
	for i := 0; i < 3; i++ {
		if res.Payoffs[i] != 0 {
			t.Errorf("seat %d payoff should be 0 in a mucked split, got %d", i, res.Payoffs[i])
		}
	}
	if res.WinnerIndex != nil {
		t.Errorf("no winner in an even split, got %v", *res.WinnerIndex)
	}
}

// Unknown action types are skipped without aborting the hand.
func TestUnknownActionSkipped(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SmallBlind: 20,
		BigBlind:   40,
		Players: []PlayerConfig{
			{Label: "alice"}, {Label: "bob"}, {Label: "carol"},
		},
		Seed: seedPtr(7),
	}

	res := Simulate(cfg, []Action{
		{Type: ActionUnknown, Raw: "dance"},
		{Type: ActionCall},
	})

	if res.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %s (%s)", res.Status, res.Error)
	}
	if !hasEvent(res.Events, EventActionSkipped) {
		t.Error("skipped action should be in the event log")
	}
}

// Cards never repeat within a hand: hole cards and board are pairwise
// distinct even when explicit cards mix with random deals.
func TestDealtCardsDistinct(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SmallBlind: 20,
		BigBlind:   40,
		Players: []PlayerConfig{
			{Cards: cardsOf(t, "As", "Ad")},
			{Label: "bob"},
			{Label: "carol"},
			{Label: "dave"},
		},
		Seed: seedPtr(8),
	}

	checks := func(n int) []Action {
		out := make([]Action, n)
		for i := range out {
			out[i] = Action{Type: ActionCheck}
		}
		return out
	}

	actions := []Action{
		{Type: ActionCall}, {Type: ActionCall}, {Type: ActionCall}, {Type: ActionCheck},
	}
	actions = append(actions, Action{Type: ActionDealBoard})
	actions = append(actions, checks(4)...)
	actions = append(actions, Action{Type: ActionDealBoard})
	actions = append(actions, checks(4)...)
	actions = append(actions, Action{Type: ActionDealBoard})
	actions = append(actions, checks(4)...)

	res := Simulate(cfg, actions)
	if res.Status != StatusComplete {
		t.Fatalf("expected complete, got %s (%s)", res.Status, res.Error)
	}

	seen := map[string]bool{}
	record := func(ss []string) {
		for _, s := range ss {
			if s == "" {
				continue
			}
			if seen[s] {
				t.Fatalf("card %s dealt twice", s)
			}
			seen[s] = true
		}
	}
	for _, p := range res.Players {
		if p != "" {
			record(strings.Fields(p))
		}
	}
	record(res.Board)
	if len(seen) != 4*2+5 {
		t.Errorf("expected 13 distinct dealt cards, got %d", len(seen))
	}
}

// Requesting a hole card twice is a deck integrity failure surfaced as an
// error snapshot, not a panic.
func TestDuplicateExplicitCards(t *testing.T) {
	t.Parallel()

	cfg := Config{
		SmallBlind: 20,
		BigBlind:   40,
		Players: []PlayerConfig{
			{Cards: cardsOf(t, "As", "Ad")},
			{Cards: cardsOf(t, "As", "Kd")},
		},
		Seed: seedPtr(9),
	}

	res := Simulate(cfg, nil)
	if res.Status != StatusError {
		t.Fatalf("expected error status, got %s", res.Status)
	}
	if !strings.Contains(res.Error, "already dealt") {
		t.Errorf("unexpected error: %s", res.Error)
	}
}

// Antes are dead money collected before the blinds from every seat in the
// hand, capped at a short stack.
func TestAntesCollected(t *testing.T) {
	t.Parallel()

	cfg := Config{
		Antes:      10,
		SmallBlind: 20,
		BigBlind:   40,
		Stacks:     []Chips{FiniteChips(5), FiniteChips(1000), FiniteChips(1000)},
		Players: []PlayerConfig{
			{Label: "alice"}, {Label: "bob"}, {Label: "carol"},
		},
		Seed: seedPtr(15),
	}

	res := Simulate(cfg, nil)
	if res.Status != StatusInProgress {
		t.Fatalf("expected in_progress, got %s (%s)", res.Status, res.Error)
	}
	// 5 (short ante) + 10 + 10 antes, then 20 + 40 blinds
	if res.FinalPots != 85 {
		t.Errorf("expected 85 chips in play, got %d", res.FinalPots)
	}
	if !hasEvent(res.Events, EventPostAnte) {
		t.Error("ante posting should be in the event log")
	}
	// the short seat is all-in on its ante and stays in the hand
	if res.Stacks[0] != FiniteChips(0) {
		t.Errorf("seat 0 should have anted its whole stack, got %v", res.Stacks[0])
	}
}

// An all-placeholder table settles immediately with nothing at stake.
func TestAllPlaceholdersSettles(t *testing.T) {
	t.Parallel()

	res := Simulate(Config{Seed: seedPtr(10)}, nil)
	if res.Status != StatusComplete {
		t.Fatalf("expected complete, got %s (%s)", res.Status, res.Error)
	}
	if res.WinnerIndex != nil {
		t.Errorf("no winner expected, got %v", *res.WinnerIndex)
	}
	if res.FinalPots != 0 {
		t.Errorf("no chips should be in play, got %d", res.FinalPots)
	}
}
