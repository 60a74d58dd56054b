package game

// Street represents the phase of the hand
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	Showdown
	Settled
)

func (s Street) String() string {
	return [...]string{"preflop", "flop", "turn", "river", "showdown", "settled"}[s]
}

// BettingRound holds the per-street betting state. A round is closed when
// every seat that can still act has acted since the last full raise and
// either matched the current bet or matched the last full-raise level
// before a short all-in bumped the bet.
type BettingRound struct {
	CurrentBet int
	// ReopenBet is the last full-raise level. A short all-in raises
	// CurrentBet without moving ReopenBet, so seats that already matched
	// ReopenBet are not obligated again.
	ReopenBet int
	MinRaise  int
	Acted     [NumSeats]bool
	BigBlind  int
}

// NewBettingRound creates betting state for a fresh street
func NewBettingRound(bigBlind int) *BettingRound {
	return &BettingRound{MinRaise: bigBlind, BigBlind: bigBlind}
}

// Reset prepares the round for a new street: no prior bettor, minimum bet
// back to the big blind.
func (br *BettingRound) Reset() {
	br.CurrentBet = 0
	br.ReopenBet = 0
	br.MinRaise = br.BigBlind
	br.Acted = [NumSeats]bool{}
}

// ToCall returns what the seat owes to match the current bet
func (br *BettingRound) ToCall(seat *Seat) int {
	return br.CurrentBet - seat.StreetBet
}

// ApplyRaise records a raise to amount. A full raise (increment >= MinRaise)
// reopens the action for everyone; a short all-in only bumps the bet that
// unacted seats must face.
func (br *BettingRound) ApplyRaise(seat int, amount int) {
	increment := amount - br.CurrentBet
	if increment >= br.MinRaise {
		br.MinRaise = increment
		br.ReopenBet = amount
		br.Acted = [NumSeats]bool{}
	}
	br.CurrentBet = amount
	br.Acted[seat] = true
}

// MarkActed records that a seat has acted since the last full raise
func (br *BettingRound) MarkActed(seat int) {
	br.Acted[seat] = true
}

// Owes reports whether the seat still has to act this street
func (br *BettingRound) Owes(seat *Seat) bool {
	if !seat.CanAct() {
		return false
	}
	if !br.Acted[seat.Index] {
		return true
	}
	// acted already: only a full raise (which cleared Acted) re-obligates
	return false
}

// Closed reports the round-closure invariant: nobody owes action
func (br *BettingRound) Closed(seats []*Seat) bool {
	for _, s := range seats {
		if br.Owes(s) {
			return false
		}
	}
	return true
}

// NextRaiseTo returns the minimum legal raise-to amount for the street
func (br *BettingRound) NextRaiseTo() int {
	if br.CurrentBet == 0 {
		return br.BigBlind
	}
	return br.CurrentBet + br.MinRaise
}
