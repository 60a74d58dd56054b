package game

import "fmt"

// IllegalActionError is a script error: the requested action violates a
// betting constraint. The simulation aborts at this action; the caller can
// correct the action list and retry.
type IllegalActionError struct {
	Seat       int
	Action     string
	Constraint string
}

func (e *IllegalActionError) Error() string {
	return fmt.Sprintf("illegal %s by seat %d: %s", e.Action, e.Seat, e.Constraint)
}

// PrematureBoardDealError is a script ordering error: board cards were
// requested while a seat still owes action on the current street.
type PrematureBoardDealError struct {
	Street Street
	Actor  int
}

func (e *PrematureBoardDealError) Error() string {
	return fmt.Sprintf("cannot deal board on %s: seat %d still needs to act", e.Street, e.Actor)
}

// InsufficientStackError indicates the ledger was asked to move more chips
// than a seat holds. Actions are validated before posting, so this is an
// engine invariant violation, not a user error.
type InsufficientStackError struct {
	Seat   int
	Amount int
	Stack  int
}

func (e *InsufficientStackError) Error() string {
	return fmt.Sprintf("seat %d cannot post %d with stack %d", e.Seat, e.Amount, e.Stack)
}
