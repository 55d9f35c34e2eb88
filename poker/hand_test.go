package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHand(t *testing.T) {
	t.Parallel()

	h, err := ParseHand("  Kh 10d\t2s  3h\n4c ")
	require.NoError(t, err)

	want := NewHand(
		NewCard(King, Hearts),
		NewCard(Ten, Diamonds),
		NewCard(Two, Spades),
		NewCard(Three, Hearts),
		NewCard(Four, Clubs),
	)
	assert.Equal(t, want, h)
	assert.Equal(t, "Kh 10d 2s 3h 4c", h.String())
}

func TestParseHandErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		check func(t *testing.T, err error)
	}{
		{
			name:  "empty",
			input: "",
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrWrongCardCount) },
		},
		{
			name:  "four cards",
			input: "2c 3c 4c 5c",
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrWrongCardCount) },
		},
		{
			name:  "six cards",
			input: "2c 3c 4c 5c 6c 7c",
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrWrongCardCount) },
		},
		{
			name:  "count wins over invalid token",
			input: "Xx Yy",
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrWrongCardCount) },
		},
		{
			name:  "first invalid token reported",
			input: "2c Xx 4d Yy 6h",
			check: func(t *testing.T, err error) {
				var invalid *InvalidCardError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "Xx", invalid.Token)
			},
		},
		{
			name:  "invalid token wins over duplicate",
			input: "2c 2c 3d 4s 1h",
			check: func(t *testing.T, err error) {
				var invalid *InvalidCardError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, "1h", invalid.Token)
			},
		},
		{
			name:  "duplicate",
			input: "2c 2c 3d 4s 5h",
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrDuplicateCard) },
		},
		{
			name:  "duplicate not adjacent",
			input: "10h 3d 4s 5h 10h",
			check: func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrDuplicateCard) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseHand(tt.input)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestParseHandSameRankDifferentSuit(t *testing.T) {
	t.Parallel()

	_, err := ParseHand("As Ac 7d 10h 3s")
	assert.NoError(t, err)
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", ErrorMessage(nil))
	assert.Equal(t, "A poker hand must have 5 cards!", ErrorMessage(ErrWrongCardCount))
	assert.Equal(t, "Qx is not a valid card!", ErrorMessage(&InvalidCardError{Token: "Qx"}))
	assert.Equal(t, "Are you trying to cheat?", ErrorMessage(ErrDuplicateCard))
}
