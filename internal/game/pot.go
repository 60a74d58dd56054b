package game

import (
	"sort"

	"pokersim-server/internal/evaluator"
)

// Pot is one layer of the pot structure: the main pot or a side pot capped
// by an all-in contribution tier.
type Pot struct {
	Amount   int
	Eligible []int // seat indexes that can win this layer
}

// Ledger tracks chip movement from stacks into the pot structure. The sum
// of all layers always equals the sum of all seat contributions.
type Ledger struct {
	streetTotal int
	potTotal    int
}

// Post moves amount from the seat's stack into the current street
// accumulator. Callers validate first; an overdraft here means the state
// machine let an illegal action through.
func (l *Ledger) Post(seat *Seat, amount int) error {
	if amount < 0 || !seat.Covers(amount) {
		return &InsufficientStackError{Seat: seat.Index, Amount: amount, Stack: seat.Stack}
	}
	if !seat.Infinite {
		seat.Stack -= amount
	}
	seat.StreetBet += amount
	seat.TotalBet += amount
	l.streetTotal += amount

	if !seat.Infinite && seat.Stack == 0 && seat.Status == SeatActive {
		seat.Status = SeatAllIn
	}
	return nil
}

// CloseStreet folds the current street's contributions into the pot
// structure and resets per-street trackers.
func (l *Ledger) CloseStreet(seats []*Seat) {
	l.potTotal += l.streetTotal
	l.streetTotal = 0
	for _, s := range seats {
		s.StreetBet = 0
	}
}

// Total returns all chips contributed so far, collected or not
func (l *Ledger) Total() int {
	return l.potTotal + l.streetTotal
}

// Pots computes the layered pot structure from hand contributions.
// Contribution tiers ascend; each layer holds the chips every seat put in
// at that tier, and only unfolded seats that reached the tier can win it.
func (l *Ledger) Pots(seats []*Seat) []Pot {
	tierSet := map[int]bool{}
	for _, s := range seats {
		if s.TotalBet > 0 {
			tierSet[s.TotalBet] = true
		}
	}
	if len(tierSet) == 0 {
		return nil
	}
	tiers := make([]int, 0, len(tierSet))
	for t := range tierSet {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)

	var pots []Pot
	prev := 0
	for _, tier := range tiers {
		pot := Pot{}
		for _, s := range seats {
			contrib := min(s.TotalBet, tier) - prev
			if contrib > 0 {
				pot.Amount += contrib
			}
			if s.InHand() && s.TotalBet >= tier {
				pot.Eligible = append(pot.Eligible, s.Index)
			}
		}
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
		prev = tier
	}

	// merge consecutive layers with identical eligibility so a simple hand
	// with no all-ins stays a single main pot
	merged := pots[:0]
	for _, pot := range pots {
		if len(merged) > 0 && sameSeats(merged[len(merged)-1].Eligible, pot.Eligible) {
			merged[len(merged)-1].Amount += pot.Amount
		} else {
			merged = append(merged, pot)
		}
	}
	return merged
}

// Settle distributes every pot layer and returns winnings per seat index.
// scores maps seat index to showdown score; seats absent from scores
// (folded or mucked) cannot win a contested layer. Ties split evenly with
// remainder chips going to the earliest seat in settleOrder.
func (l *Ledger) Settle(seats []*Seat, scores map[int]evaluator.Score, settleOrder []int) map[int]int {
	winnings := make(map[int]int)

	for _, pot := range l.Pots(seats) {
		if len(pot.Eligible) == 0 {
			continue
		}

		var winners []int
		if len(pot.Eligible) == 1 {
			winners = pot.Eligible
		} else {
			best := evaluator.Score(0)
			for _, idx := range pot.Eligible {
				score, ok := scores[idx]
				if !ok {
					continue
				}
				switch evaluator.Compare(score, best) {
				case 1:
					best = score
					winners = []int{idx}
				case 0:
					winners = append(winners, idx)
				}
			}
			// every eligible hand mucked: split the layer among them
			if len(winners) == 0 {
				winners = pot.Eligible
			}
		}

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for _, idx := range winners {
			winnings[idx] += share
		}
		if remainder > 0 {
			winnings[firstInOrder(winners, settleOrder)] += remainder
		}
	}

	return winnings
}

// firstInOrder picks the earliest-acting seat among winners
func firstInOrder(winners []int, order []int) int {
	for _, seat := range order {
		for _, w := range winners {
			if w == seat {
				return seat
			}
		}
	}
	return winners[0]
}

func sameSeats(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
