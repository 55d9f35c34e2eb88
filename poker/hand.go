package poker

import "strings"

// HandSize is the number of cards in a poker hand.
const HandSize = 5

// Hand is five validated cards in the order they were given. Hand is an
// array so every assignment or call copies it; nothing the evaluator does
// can reorder the caller's cards.
type Hand [HandSize]Card

// NewHand creates a hand from five cards without validating them.
func NewHand(c1, c2, c3, c4, c5 Card) Hand {
	return Hand{c1, c2, c3, c4, c5}
}

// ParseHand splits raw on whitespace and validates the tokens. Checks run
// cheapest first so the reported error is deterministic: a wrong card count
// wins over any bad token, and the first bad token wins over duplicates.
func ParseHand(raw string) (Hand, error) {
	tokens := strings.Fields(raw)
	if len(tokens) != HandSize {
		return Hand{}, ErrWrongCardCount
	}

	var h Hand
	for i, token := range tokens {
		card, err := ParseCard(token)
		if err != nil {
			return Hand{}, err
		}
		h[i] = card
	}

	// Tokens and cards are one-to-one, so a repeated card is a repeated token.
	var seen [Ace + 1][Spades + 1]bool
	for _, c := range h {
		if seen[c.Rank][c.Suit] {
			return Hand{}, ErrDuplicateCard
		}
		seen[c.Rank][c.Suit] = true
	}

	return h, nil
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(raw string) Hand {
	h, err := ParseHand(raw)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the card tokens separated by single spaces.
func (h Hand) String() string {
	tokens := make([]string, len(h))
	for i, c := range h {
		tokens[i] = c.String()
	}
	return strings.Join(tokens, " ")
}
