package poker

import (
	"errors"
	"fmt"
)

var (
	// ErrWrongCardCount is returned when the input does not hold exactly five tokens.
	ErrWrongCardCount = errors.New("poker: hand must have 5 cards")

	// ErrDuplicateCard is returned when the same card token appears more than once.
	ErrDuplicateCard = errors.New("poker: duplicate card")
)

// InvalidCardError reports a token that is not a valid card.
type InvalidCardError struct {
	Token string
}

func (e *InvalidCardError) Error() string {
	return fmt.Sprintf("poker: invalid card %q", e.Token)
}

// ErrorMessage converts a validation error from ParseHand into the message
// shown to players. Errors that did not come from ParseHand are returned
// as-is via their Error method.
func ErrorMessage(err error) string {
	var invalid *InvalidCardError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrWrongCardCount):
		return "A poker hand must have 5 cards!"
	case errors.As(err, &invalid):
		return invalid.Token + " is not a valid card!"
	case errors.Is(err, ErrDuplicateCard):
		return "Are you trying to cheat?"
	default:
		return err.Error()
	}
}
