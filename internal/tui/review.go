// Package tui implements the interactive batch suggestion review screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/centsible/centsible/internal/model"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// decisionState tracks what the user chose for one suggestion.
type decisionState int

const (
	statePending decisionState = iota
	stateAccepted
	stateSkipped
)

// Decision is the outcome of reviewing one suggestion. Category holds the
// accepted category, which may differ from the suggestion when edited.
type Decision struct {
	ID       string
	Category string
	Accepted bool
}

// ReviewModel is the bubbletea model for reviewing batch suggestions.
type ReviewModel struct {
	suggestions []model.BatchSuggestion
	states      []decisionState
	categories  []string
	input       textinput.Model
	cursor      int
	width       int
	editing     bool
	done        bool
}

// NewReviewModel creates a review screen over the given suggestions.
func NewReviewModel(suggestions []model.BatchSuggestion) ReviewModel {
	states := make([]decisionState, len(suggestions))
	categories := make([]string, len(suggestions))
	for i, s := range suggestions {
		categories[i] = s.SuggestedCategory
	}

	input := textinput.New()
	input.Placeholder = "category"
	input.CharLimit = 40

	return ReviewModel{
		suggestions: suggestions,
		states:      states,
		categories:  categories,
		input:       input,
	}
}

// Init implements tea.Model.
func (m ReviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ReviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		return m.handleReviewKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// handleReviewKey handles key presses in list mode.
func (m ReviewModel) handleReviewKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "a", " ":
		if len(m.suggestions) > 0 {
			m.states[m.cursor] = stateAccepted
			m.categories[m.cursor] = m.suggestions[m.cursor].SuggestedCategory
			m = m.advance()
		}

	case "s":
		if len(m.suggestions) > 0 {
			m.states[m.cursor] = stateSkipped
			m = m.advance()
		}

	case "e":
		if len(m.suggestions) > 0 {
			m.editing = true
			m.input.SetValue(m.categories[m.cursor])
			m.input.Focus()
			return m, textinput.Blink
		}

	case "A":
		for i := range m.states {
			if m.states[i] == statePending {
				m.states[i] = stateAccepted
			}
		}

	case "enter", "q":
		m.done = true
		return m, tea.Quit

	case "ctrl+c", "esc":
		// Abort: treat everything as skipped.
		for i := range m.states {
			m.states[i] = stateSkipped
		}
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

// handleEditKey handles key presses while editing a category.
func (m ReviewModel) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		if value != "" {
			m.categories[m.cursor] = value
			m.states[m.cursor] = stateAccepted
		}
		m.editing = false
		m.input.Blur()
		m = m.advance()
		return m, nil

	case "esc":
		m.editing = false
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// advance moves the cursor to the next pending suggestion if any.
func (m ReviewModel) advance() ReviewModel {
	if m.cursor < len(m.suggestions)-1 {
		m.cursor++
	}
	return m
}

// View implements tea.Model.
func (m ReviewModel) View() string {
	if len(m.suggestions) == 0 {
		return subtleStyle.Render("No suggestions to review.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Review category suggestions"))
	b.WriteString("\n\n")

	for i, s := range m.suggestions {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		marker := pendingStyle.Render("·")
		switch m.states[i] {
		case stateAccepted:
			marker = acceptedStyle.Render("✓")
		case stateSkipped:
			marker = skippedStyle.Render("✗")
		}

		line := fmt.Sprintf("%s%s %s  %s → %s  (%.0f%%)",
			cursor, marker,
			truncate(s.Description, 36),
			s.OriginalCategory,
			m.categories[i],
			s.Confidence*100)
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.editing {
		b.WriteString("New category: " + m.input.View())
	} else {
		b.WriteString(subtleStyle.Render("a accept · s skip · e edit · A accept all · enter apply · esc abort"))
	}
	b.WriteString("\n")

	return b.String()
}

// Decisions returns the review outcome, one entry per suggestion.
func (m ReviewModel) Decisions() []Decision {
	decisions := make([]Decision, len(m.suggestions))
	for i, s := range m.suggestions {
		decisions[i] = Decision{
			ID:       s.ID,
			Category: m.categories[i],
			Accepted: m.states[i] == stateAccepted,
		}
	}
	return decisions
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit-1] + "…"
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4C9F70"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4C9F70"))
	acceptedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	skippedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	subtleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)
