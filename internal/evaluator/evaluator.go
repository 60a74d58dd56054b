package evaluator

import (
	"sort"

	"pokersim-server/internal/deck"
)

// Category enumerates hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// String returns a human-readable category description
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Score packs a category and up to five tiebreak ranks into a single
// comparable value. Higher scores are stronger; equal scores split pots.
//
// Layout: category in bits 20-23, then five 4-bit ranks in descending
// tiebreak significance. Rank values 2-14 fit in a nibble.
type Score uint32

// Category returns the hand category encoded in the score
func (s Score) Category() Category {
	return Category(s >> 20)
}

// Compare returns 1 if a beats b, -1 if b beats a, 0 for a tie
func Compare(a, b Score) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

func (s Score) String() string {
	return s.Category().String()
}

func makeScore(cat Category, tiebreaks ...deck.Rank) Score {
	s := Score(cat) << 20
	shift := 16
	for _, r := range tiebreaks {
		if shift < 0 {
			break
		}
		s |= Score(r) << shift
		shift -= 4
	}
	return s
}

// Evaluate computes the best 5-card score available from 2 hole cards and
// 0-5 board cards. With five or more cards it considers every 5-card
// combination; with fewer it scores the partial set directly, which only
// matters for display and odds since showdown always has a full board.
func Evaluate(hole []deck.Card, board []deck.Card) Score {
	cards := make([]deck.Card, 0, 7)
	cards = append(cards, hole...)
	cards = append(cards, board...)

	if len(cards) <= 5 {
		return score5(cards)
	}

	var best Score
	combo := make([]deck.Card, 5)
	pick5(cards, combo, 0, 0, func() {
		if s := score5(combo); s > best {
			best = s
		}
	})
	return best
}

// pick5 visits every 5-card combination of cards, filling combo in place
func pick5(cards, combo []deck.Card, start, depth int, visit func()) {
	if depth == 5 {
		visit()
		return
	}
	for i := start; i <= len(cards)-(5-depth); i++ {
		combo[depth] = cards[i]
		pick5(cards, combo, i+1, depth+1, visit)
	}
}

// score5 scores up to five cards. Straights and flushes require exactly
// five cards; shorter sets can only form pair-family hands.
func score5(cards []deck.Card) Score {
	ranks := make([]deck.Rank, len(cards))
	for i, c := range cards {
		ranks[i] = c.Rank
	}

	// group ranks by multiplicity, strongest group first
	counts := map[deck.Rank]int{}
	for _, r := range ranks {
		counts[r]++
	}
	type group struct {
		rank  deck.Rank
		count int
	}
	groups := make([]group, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, group{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	tiebreaks := make([]deck.Rank, 0, 5)
	for _, g := range groups {
		tiebreaks = append(tiebreaks, g.rank)
	}

	if len(cards) == 5 {
		flush := true
		for _, c := range cards[1:] {
			if c.Suit != cards[0].Suit {
				flush = false
				break
			}
		}
		straightHigh := straightHighRank(ranks)

		switch {
		case flush && straightHigh > 0:
			return makeScore(StraightFlush, straightHigh)
		case groups[0].count == 4:
			return makeScore(FourOfAKind, tiebreaks...)
		case groups[0].count == 3 && groups[1].count == 2:
			return makeScore(FullHouse, tiebreaks...)
		case flush:
			return makeScore(Flush, tiebreaks...)
		case straightHigh > 0:
			return makeScore(Straight, straightHigh)
		}
	}

	switch {
	case len(groups) > 0 && groups[0].count == 4:
		return makeScore(FourOfAKind, tiebreaks...)
	case len(groups) > 1 && groups[0].count == 3 && groups[1].count == 2:
		return makeScore(FullHouse, tiebreaks...)
	case len(groups) > 0 && groups[0].count == 3:
		return makeScore(ThreeOfAKind, tiebreaks...)
	case len(groups) > 1 && groups[0].count == 2 && groups[1].count == 2:
		return makeScore(TwoPair, tiebreaks...)
	case len(groups) > 0 && groups[0].count == 2:
		return makeScore(Pair, tiebreaks...)
	default:
		return makeScore(HighCard, tiebreaks...)
	}
}

// straightHighRank returns the high card of a 5-card straight, 0 if none.
// The wheel (A-2-3-4-5) counts with the five as its high card.
func straightHighRank(ranks []deck.Rank) deck.Rank {
	if len(ranks) != 5 {
		return 0
	}
	sorted := make([]deck.Rank, 5)
	copy(sorted, ranks)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for i := 1; i < 5; i++ {
		if sorted[i] == sorted[i-1] {
			return 0
		}
	}

	if sorted[4]-sorted[0] == 4 {
		return sorted[4]
	}
	// wheel: ace plays low
	if sorted[4] == deck.Ace && sorted[0] == deck.Two && sorted[3] == deck.Five {
		return deck.Five
	}
	return 0
}
