package deck

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
)

// ErrDeckExhausted is returned when a deal or burn is requested with too few
// cards remaining.
var ErrDeckExhausted = errors.New("deck exhausted")

// DuplicateCardError is returned when an explicitly requested card has
// already left the deck within the same hand.
type DuplicateCardError struct {
	Card Card
}

func (e *DuplicateCardError) Error() string {
	return fmt.Sprintf("card %s already dealt or burned", e.Card)
}

// Deck is the ordered set of cards not yet dealt or burned. It is owned by a
// single hand, shrinks monotonically, and is never replenished mid-hand.
type Deck struct {
	cards []Card
}

// NewDeck creates a standard 52-card deck shuffled with the provided source.
// Callers supply a per-hand source so identical seeds produce identical deals.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{cards: make([]Card, 0, 52)}
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	d.shuffle(rng)
	return d
}

// shuffle is Fisher-Yates over the remaining cards
func (d *Deck) shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the top n cards
func (d *Deck) Deal(n int) ([]Card, error) {
	if n > len(d.cards) {
		return nil, ErrDeckExhausted
	}
	cards := make([]Card, n)
	copy(cards, d.cards[:n])
	d.cards = d.cards[n:]
	return cards, nil
}

// Burn discards the top card
func (d *Deck) Burn() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrDeckExhausted
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, nil
}

// Remove takes the named cards out of the deck wherever they sit, for seats
// and boards configured with explicit cards. Requesting a card that already
// left the deck fails with DuplicateCardError.
func (d *Deck) Remove(cards ...Card) error {
	for _, want := range cards {
		found := -1
		for i, c := range d.cards {
			if c == want {
				found = i
				break
			}
		}
		if found == -1 {
			return &DuplicateCardError{Card: want}
		}
		d.cards = append(d.cards[:found], d.cards[found+1:]...)
	}
	return nil
}

// Remaining returns the number of cards left
func (d *Deck) Remaining() int {
	return len(d.cards)
}
