package poker

import "slices"

// Category enumerates the poker hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// Categories lists every category from strongest to weakest, which is the
// order Evaluate tests them in.
var Categories = [...]Category{
	StraightFlush,
	FourOfAKind,
	FullHouse,
	Flush,
	Straight,
	ThreeOfAKind,
	TwoPair,
	OnePair,
	HighCard,
}

// String returns the human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
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

// ParseCategory returns the category with the given name.
func ParseCategory(name string) (Category, bool) {
	for _, c := range Categories {
		if c.String() == name {
			return c, true
		}
	}
	return HighCard, false
}

// rankCounts tallies how many cards of each rank the hand holds.
type rankCounts [Ace + 1]uint8

func countRanks(h Hand) rankCounts {
	var counts rankCounts
	for _, c := range h {
		counts[c.Rank]++
	}
	return counts
}

// groups returns how many distinct ranks appear exactly n times.
func (rc *rankCounts) groups(n uint8) int {
	total := 0
	for _, count := range rc {
		if count == n {
			total++
		}
	}
	return total
}

// Evaluate returns the strongest category the hand satisfies. It never
// fails for a hand produced by ParseHand and does not modify h.
func Evaluate(h Hand) Category {
	counts := countRanks(h)

	switch {
	case isStraightFlush(h):
		return StraightFlush
	case isFourOfAKind(&counts):
		return FourOfAKind
	case isFullHouse(&counts):
		return FullHouse
	case isFlush(h):
		return Flush
	case isStraight(h):
		return Straight
	case isThreeOfAKind(&counts):
		return ThreeOfAKind
	case isTwoPair(&counts):
		return TwoPair
	case isOnePair(&counts):
		return OnePair
	default:
		return HighCard
	}
}

func isStraightFlush(h Hand) bool {
	return isFlush(h) && isStraight(h)
}

func isFourOfAKind(rc *rankCounts) bool {
	return rc.groups(4) > 0
}

func isFullHouse(rc *rankCounts) bool {
	return rc.groups(3) > 0 && rc.groups(2) > 0
}

func isFlush(h Hand) bool {
	for _, c := range h[1:] {
		if c.Suit != h[0].Suit {
			return false
		}
	}
	return true
}

// isStraight sorts its own copy of the hand. Aces only count high, so
// A-2-3-4-5 is not a straight.
func isStraight(h Hand) bool {
	slices.SortFunc(h[:], func(a, b Card) int {
		return int(a.Rank) - int(b.Rank)
	})

	for i := 1; i < len(h); i++ {
		if h[i].Rank != h[i-1].Rank+1 {
			return false
		}
	}
	return true
}

func isThreeOfAKind(rc *rankCounts) bool {
	return rc.groups(3) > 0
}

func isTwoPair(rc *rankCounts) bool {
	return rc.groups(2) == 2
}

func isOnePair(rc *rankCounts) bool {
	return rc.groups(2) == 1
}

// Classify parses raw and evaluates the resulting hand.
func Classify(raw string) (Category, error) {
	h, err := ParseHand(raw)
	if err != nil {
		return HighCard, err
	}
	return Evaluate(h), nil
}

// RankHand returns the category name for raw, or the message describing why
// raw is not a valid hand.
func RankHand(raw string) string {
	category, err := Classify(raw)
	if err != nil {
		return ErrorMessage(err)
	}
	return category.String()
}
