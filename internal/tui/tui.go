// Package tui is an interactive terminal front end that re-ranks the hand on
// every edit.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/pokerhand/internal/batch"
	"github.com/lox/pokerhand/poker"
)

// Model is the Bubble Tea model for the hand ranker.
type Model struct {
	logger *log.Logger

	input   textinput.Model
	result  batch.Result
	samples []poker.Sample
	// selected is the index of the sample last loaded, or -1.
	selected int

	width    int
	quitting bool
}

// NewModel creates a model showing initial in the input and the given samples
// below it.
func NewModel(logger *log.Logger, initial string, samples []string) *Model {
	ti := textinput.New()
	ti.Placeholder = "Enter five cards, e.g. " + poker.DefaultHand
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = PromptStyle
	ti.TextStyle = InputTextStyle
	ti.SetValue(initial)
	ti.CursorEnd()

	m := &Model{
		logger:   logger.WithPrefix("tui"),
		input:    ti,
		samples:  poker.MakeSamples(samples),
		selected: -1,
	}
	m.rerank()
	return m
}

// Hand returns the current input.
func (m *Model) Hand() string {
	return m.input.Value()
}

// Result returns the ranking of the current input.
func (m *Model) Result() batch.Result {
	return m.result
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.loadSample(1)
			return m, nil
		case "shift+tab":
			m.loadSample(-1)
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.selected = -1
		m.rerank()
	}
	return m, cmd
}

func (m *Model) loadSample(step int) {
	if len(m.samples) == 0 {
		return
	}
	n := len(m.samples)
	m.selected = ((m.selected+step)%n + n) % n
	m.input.SetValue(m.samples[m.selected].Hand)
	m.input.CursorEnd()
	m.rerank()
}

func (m *Model) rerank() {
	m.result = batch.Rank(m.input.Value())
	m.logger.Debug("Ranked hand", "hand", m.result.Hand, "category", m.result.Category, "error", m.result.Error)
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Poker Hand Ranker"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	if m.result.Valid() {
		b.WriteString(RenderResult(m.result.Category, true))
	} else {
		b.WriteString(RenderResult(m.result.Error, false))
	}
	b.WriteString("\n")

	if len(m.samples) > 0 {
		b.WriteString("\n")
		b.WriteString(PaneStyle.Render(m.renderSamples()))
		b.WriteString("\n")
	}

	b.WriteString(InfoStyle.Render("tab/shift+tab: load sample • esc: quit"))
	b.WriteString("\n")

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

func (m *Model) renderSamples() string {
	lines := make([]string, 0, len(m.samples)+1)
	lines = append(lines, InfoStyle.Render("Samples"))
	for i, s := range m.samples {
		style := SampleHandStyle
		if i == m.selected {
			style = SelectedSampleStyle
		}
		_, valid := poker.ParseCategory(s.Rank)
		lines = append(lines, style.Render(s.Hand)+" "+RenderResult(s.Rank, valid))
	}
	return strings.Join(lines, "\n")
}

// Run starts the interactive program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, logger *log.Logger, initial string, samples []string) error {
	p := tea.NewProgram(NewModel(logger, initial, samples), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session failed: %w", err)
	}
	return nil
}
