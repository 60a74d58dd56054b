package deck

import (
	"testing"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Card
	}{
		{"As", NewCard(Ace, Spades)},
		{"as", NewCard(Ace, Spades)},
		{"Th", NewCard(Ten, Hearts)},
		{"10h", NewCard(Ten, Hearts)},
		{"2c", NewCard(Two, Clubs)},
		{"Kd", NewCard(King, Diamonds)},
		{" Qs ", NewCard(Queen, Spades)},
	}

	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		if err != nil {
			t.Fatalf("ParseCard(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCardInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "A", "1h", "Ax", "AsKd"} {
		if _, err := ParseCard(in); err == nil {
			t.Errorf("ParseCard(%q) should fail", in)
		}
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	if got := NewCard(Ace, Spades).String(); got != "As" {
		t.Errorf("expected As, got %s", got)
	}
	if got := NewCard(Ten, Diamonds).String(); got != "Td" {
		t.Errorf("expected Td, got %s", got)
	}
}

func TestCardOrdering(t *testing.T) {
	t.Parallel()

	low := NewCard(Two, Spades)
	high := NewCard(Three, Clubs)
	if !low.Less(high) {
		t.Error("2s should rank below 3c")
	}
	if high.Less(low) {
		t.Error("3c should not rank below 2s")
	}

	// same rank breaks ties by suit
	a := NewCard(Jack, Clubs)
	b := NewCard(Jack, Spades)
	if !a.Less(b) {
		t.Error("Jc should order before Js")
	}
}
