package poker

// Suit is one of the four card suits. Suits carry no ordering.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single letter used for the suit in card tokens.
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

// Rank is a card's face value. Two is 2 and Ace is 14; Aces are always high.
type Rank uint8

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

// String returns the rank as it appears in card tokens ("10" for Ten).
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	case r == Ten:
		return "10"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card token, e.g. "Ac" or "10h".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses a single card token. The rank is one of 2-9, 10, J, Q, K
// or A and is followed by exactly one suit letter (c, d, h or s). Matching
// is case-sensitive.
func ParseCard(token string) (Card, error) {
	if len(token) < 2 {
		return Card{}, &InvalidCardError{Token: token}
	}

	rank, ok := parseRank(token[:len(token)-1])
	if !ok {
		return Card{}, &InvalidCardError{Token: token}
	}

	suit, ok := parseSuit(token[len(token)-1])
	if !ok {
		return Card{}, &InvalidCardError{Token: token}
	}

	return NewCard(rank, suit), nil
}

// MustParseCard parses a card token and panics on error (for tests)
func MustParseCard(token string) Card {
	c, err := ParseCard(token)
	if err != nil {
		panic(err)
	}
	return c
}

func parseRank(s string) (Rank, bool) {
	switch s {
	case "2":
		return Two, true
	case "3":
		return Three, true
	case "4":
		return Four, true
	case "5":
		return Five, true
	case "6":
		return Six, true
	case "7":
		return Seven, true
	case "8":
		return Eight, true
	case "9":
		return Nine, true
	case "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	case "A":
		return Ace, true
	default:
		return 0, false
	}
}

func parseSuit(c byte) (Suit, bool) {
	switch c {
	case 'c':
		return Clubs, true
	case 'd':
		return Diamonds, true
	case 'h':
		return Hearts, true
	case 's':
		return Spades, true
	default:
		return 0, false
	}
}
