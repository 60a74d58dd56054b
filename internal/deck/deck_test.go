package deck

import (
	"errors"
	"testing"

	"pokersim-server/internal/randutil"
)

func TestNewDeckComplete(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(1))
	if d.Remaining() != 52 {
		t.Fatalf("expected 52 cards, got %d", d.Remaining())
	}

	seen := make(map[Card]bool)
	cards, err := d.Deal(52)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card %s in fresh deck", c)
		}
		seen[c] = true
	}
}

func TestDealExhausted(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(1))
	if _, err := d.Deal(50); err != nil {
		t.Fatalf("deal 50: %v", err)
	}
	if _, err := d.Deal(3); err != ErrDeckExhausted {
		t.Fatalf("expected ErrDeckExhausted, got %v", err)
	}
	// a failed deal leaves the deck untouched
	if d.Remaining() != 2 {
		t.Fatalf("expected 2 remaining, got %d", d.Remaining())
	}
	if _, err := d.Deal(2); err != nil {
		t.Fatalf("deal 2: %v", err)
	}
	if _, err := d.Burn(); err != ErrDeckExhausted {
		t.Fatalf("expected ErrDeckExhausted on empty burn, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()

	d := NewDeck(randutil.New(7))
	as := NewCard(Ace, Spades)
	kd := NewCard(King, Diamonds)

	if err := d.Remove(as, kd); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if d.Remaining() != 50 {
		t.Fatalf("expected 50 remaining, got %d", d.Remaining())
	}

	err := d.Remove(as)
	var dup *DuplicateCardError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateCardError, got %v", err)
	}
	if dup.Card != as {
		t.Fatalf("expected As in error, got %s", dup.Card)
	}

	rest, err := d.Deal(50)
	if err != nil {
		t.Fatalf("deal: %v", err)
	}
	for _, c := range rest {
		if c == as || c == kd {
			t.Fatalf("removed card %s still dealt", c)
		}
	}
}

func TestShuffleDeterminism(t *testing.T) {
	t.Parallel()

	a := NewDeck(randutil.New(42))
	b := NewDeck(randutil.New(42))
	c := NewDeck(randutil.New(43))

	ca, _ := a.Deal(52)
	cb, _ := b.Deal(52)
	cc, _ := c.Deal(52)

	diff := false
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("same seed diverged at %d: %s vs %s", i, ca[i], cb[i])
		}
		if ca[i] != cc[i] {
			diff = true
		}
	}
	if !diff {
		t.Fatal("different seeds produced the same shuffle")
	}
}
