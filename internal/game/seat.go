package game

import (
	"strings"

	"pokersim-server/internal/deck"
)

// NumSeats is fixed: the table always plays six-max
const NumSeats = 6

// UnknownLabel marks a seat whose hole cards are face down
const UnknownLabel = "????"

// SeatStatus tracks what a seat can still do in the hand
type SeatStatus int

const (
	SeatActive SeatStatus = iota
	SeatFolded
	SeatAllIn
	SeatSittingOut
)

func (s SeatStatus) String() string {
	return [...]string{"active", "folded", "all-in", "sitting-out"}[s]
}

// Seat is one of the six table positions. All six exist for the lifetime of
// a hand and are mutated by every action that touches them.
type Seat struct {
	Index      int
	Label      string
	HoleCards  []deck.Card
	KnownCards bool // explicit hole cards vs face-down placeholder
	Starting   Chips
	Stack      int
	Infinite   bool
	StreetBet  int // contribution this street
	TotalBet   int // contribution this hand
	Status     SeatStatus
}

// CanAct reports whether the seat still owes betting decisions
func (s *Seat) CanAct() bool {
	return s.Status == SeatActive
}

// InHand reports whether the seat can still win a pot
func (s *Seat) InHand() bool {
	return s.Status == SeatActive || s.Status == SeatAllIn
}

// CurrentStack returns the stack preserving the infinite sentinel
func (s *Seat) CurrentStack() Chips {
	if s.Infinite {
		return InfiniteChips()
	}
	return FiniteChips(s.Stack)
}

// Covers reports whether the seat can put amount more chips in
func (s *Seat) Covers(amount int) bool {
	return s.Infinite || s.Stack >= amount
}

// CardString renders the seat's dealt cards. Randomly dealt cards appear in
// the snapshot too; KnownCards only decides show-versus-muck at showdown.
func (s *Seat) CardString() string {
	return strings.Join(deck.CardStrings(s.HoleCards), " ")
}
