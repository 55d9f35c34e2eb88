package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokerhand/internal/batch"
	"github.com/lox/pokerhand/poker"
)

func newTestModel(initial string) *Model {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel}) // Quiet logger for tests
	return NewModel(logger, initial, poker.DefaultSamples)
}

func typeKeys(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestModelRanksInitialHand(t *testing.T) {
	m := newTestModel(poker.DefaultHand)

	assert.Equal(t, poker.DefaultHand, m.Hand())
	assert.Equal(t, batch.Result{Hand: poker.DefaultHand, Category: "One Pair"}, m.Result())
	assert.Contains(t, m.View(), "One Pair")
	assert.Contains(t, m.View(), "Kh 10d 2s 3h 4c")
}

func TestModelRerankOnEdit(t *testing.T) {
	m := newTestModel(poker.DefaultHand)

	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "As Ac 7d 10h ", m.Hand())
	assert.Equal(t, "A poker hand must have 5 cards!", m.Result().Error)
	assert.Contains(t, m.View(), "A poker hand must have 5 cards!")

	typeKeys(m, "A")
	assert.Equal(t, "A is not a valid card!", m.Result().Error)

	typeKeys(m, "d")
	assert.Equal(t, "As Ac 7d 10h Ad", m.Hand())
	assert.True(t, m.Result().Valid())
	assert.Equal(t, "Three of a Kind", m.Result().Category)
}

func TestModelLoadSamples(t *testing.T) {
	m := newTestModel("")

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, poker.DefaultSamples[0], m.Hand())
	assert.Equal(t, "Straight Flush", m.Result().Category)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, poker.DefaultSamples[1], m.Hand())
	assert.Equal(t, "Four of a Kind", m.Result().Category)

	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	last := poker.DefaultSamples[len(poker.DefaultSamples)-1]
	assert.Equal(t, last, m.Hand())
	assert.Equal(t, "High Card", m.Result().Category)
}

func TestModelNoSamples(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
	m := NewModel(logger, "2c 2c 3d 4s 5h", nil)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, "2c 2c 3d 4s 5h", m.Hand())
	assert.Equal(t, "Are you trying to cheat?", m.Result().Error)
	assert.NotContains(t, m.View(), "Samples")
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(poker.DefaultHand)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelWindowSize(t *testing.T) {
	m := newTestModel(poker.DefaultHand)

	_, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Poker Hand Ranker")
}
