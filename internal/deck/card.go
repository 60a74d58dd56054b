package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the lowercase suit letter used in card notation ("Th", "As")
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Rank represents a card rank. Aces are high (14) but play low for the wheel.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// String returns the rank character ("2".."9", "T", "J", "Q", "K", "A")
func (r Rank) String() string {
	if r < Two || r > Ace {
		return "?"
	}
	return string(rankChars[r-Two])
}

// Card represents a playing card. It is an immutable value type; equality
// and ordering are by rank then suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns two-character notation, e.g. "As" or "Th"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Less orders cards by rank, breaking ties by suit
func (c Card) Less(other Card) bool {
	if c.Rank != other.Rank {
		return c.Rank < other.Rank
	}
	return c.Suit < other.Suit
}

// ParseCard parses two-character notation ("As", "th", "10h") into a Card.
func ParseCard(s string) (Card, error) {
	t := strings.TrimSpace(s)
	if strings.EqualFold(t, "10h") || strings.EqualFold(t, "10c") || strings.EqualFold(t, "10d") || strings.EqualFold(t, "10s") {
		t = "T" + t[2:]
	}
	if len(t) != 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}

	var rank Rank
	switch r := strings.ToUpper(t[:1]); r {
	case "T":
		rank = Ten
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "A":
		rank = Ace
	default:
		if r[0] < '2' || r[0] > '9' {
			return Card{}, fmt.Errorf("invalid card rank %q", s)
		}
		rank = Rank(r[0] - '0')
	}

	var suit Suit
	switch strings.ToLower(t[1:]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid card suit %q", s)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a list of card strings
func ParseCards(ss []string) ([]Card, error) {
	cards := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// CardStrings formats cards back into two-character notation
func CardStrings(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.String()
	}
	return out
}
