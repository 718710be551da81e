// Package tui provides the full-screen suggestion review interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sichterhq/sichter/internal/cli"
	"github.com/sichterhq/sichter/internal/model"
)

// KeyMap defines the keyboard shortcuts for the review screen.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Choose key.Binding
	Ignore key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Accept: key.NewBinding(
			key.WithKeys("a", "enter"),
			key.WithHelp("a", "accept"),
		),
		Choose: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "choose category"),
		),
		Ignore: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "ignore"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type viewMode int

const (
	viewSuggestions viewMode = iota
	viewCategoryPicker
)

// decision records what the user did with one suggestion.
type decision int

const (
	decisionPending decision = iota
	decisionAccepted
	decisionIgnored
)

// Model is the bubbletea model for reviewing mined keyword suggestions.
type Model struct {
	keys        KeyMap
	suggestions []model.Suggestion
	categories  []string
	decisions   []decision
	assigned    []string

	mode           viewMode
	cursor         int
	categoryCursor int
	width          int
	height         int
	quitting       bool
}

// NewModel creates a review model over the given suggestions and the
// currently known category names.
func NewModel(suggestions []model.Suggestion, categories []string) Model {
	return Model{
		keys:        DefaultKeyMap(),
		suggestions: suggestions,
		categories:  categories,
		decisions:   make([]decision, len(suggestions)),
		assigned:    make([]string, len(suggestions)),
	}
}

// Accepted returns the suggestions the user accepted, with the
// category they ended up assigned to.
func (m Model) Accepted() []model.Suggestion {
	var accepted []model.Suggestion
	for i, s := range m.suggestions {
		if m.decisions[i] != decisionAccepted {
			continue
		}
		s.Category = m.assigned[i]
		accepted = append(accepted, s)
	}
	return accepted
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.mode == viewCategoryPicker {
			return m.updateCategoryPicker(msg)
		}
		return m.updateSuggestions(msg)
	}

	return m, nil
}

func (m Model) updateSuggestions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Accept):
		s := m.suggestions[m.cursor]
		if s.Category == model.SuggestionIgnore {
			// No suggested category, force an explicit choice.
			m.mode = viewCategoryPicker
			m.categoryCursor = 0
			return m, nil
		}
		m.decisions[m.cursor] = decisionAccepted
		m.assigned[m.cursor] = s.Category
		m.advance()

	case key.Matches(msg, m.keys.Choose):
		m.mode = viewCategoryPicker
		m.categoryCursor = 0

	case key.Matches(msg, m.keys.Ignore):
		m.decisions[m.cursor] = decisionIgnored
		m.assigned[m.cursor] = ""
		m.advance()
	}

	return m, nil
}

func (m Model) updateCategoryPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.mode = viewSuggestions

	case key.Matches(msg, m.keys.Up):
		if m.categoryCursor > 0 {
			m.categoryCursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.categoryCursor < len(m.categories)-1 {
			m.categoryCursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.decisions[m.cursor] = decisionAccepted
		m.assigned[m.cursor] = m.categories[m.categoryCursor]
		m.mode = viewSuggestions
		m.advance()
	}

	return m, nil
}

// advance moves the cursor to the next pending suggestion, or quits
// when everything has been decided.
func (m *Model) advance() {
	for i := m.cursor + 1; i < len(m.suggestions); i++ {
		if m.decisions[i] == decisionPending {
			m.cursor = i
			return
		}
	}
	for i := range m.suggestions {
		if m.decisions[i] == decisionPending {
			m.cursor = i
			return
		}
	}
	m.quitting = true
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == viewCategoryPicker {
		return m.viewCategoryPicker()
	}
	return m.viewSuggestions()
}

func (m Model) viewSuggestions() string {
	var b strings.Builder

	b.WriteString(cli.TitleStyle.Render("Keyword Suggestions"))
	b.WriteString("\n")

	for i, s := range m.suggestions {
		cursor := "  "
		if i == m.cursor {
			cursor = cli.PromptStyle.Render("> ")
		}

		status := " "
		switch m.decisions[i] {
		case decisionAccepted:
			status = cli.SuccessStyle.Render(cli.SuccessIcon)
		case decisionIgnored:
			status = cli.SubtleStyle.Render("-")
		}

		line := fmt.Sprintf("%s%s %s", cursor, status, cli.BoldStyle.Render(s.Term))
		line += cli.SubtleStyle.Render(fmt.Sprintf(" ×%d", s.Count))
		switch {
		case m.decisions[i] == decisionAccepted:
			line += cli.InfoStyle.Render(" → " + m.assigned[i])
		case s.Category != model.SuggestionIgnore:
			line += cli.SubtleStyle.Render(" (suggested: " + s.Category + ")")
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("a accept · c choose category · i ignore · j/k move · q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) viewCategoryPicker() string {
	var b strings.Builder

	s := m.suggestions[m.cursor]
	b.WriteString(cli.TitleStyle.Render("Assign category for " + s.Term))
	b.WriteString("\n")

	for i, name := range m.categories {
		cursor := "  "
		if i == m.categoryCursor {
			cursor = cli.PromptStyle.Render("> ")
		}
		b.WriteString(cursor + name)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("enter select · esc back · j/k move · q quit"))

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// ReviewSuggestions runs the full-screen review and returns the
// accepted suggestions once the user is done.
func ReviewSuggestions(ctx context.Context, suggestions []model.Suggestion, categories []string) ([]model.Suggestion, error) {
	if len(suggestions) == 0 {
		return nil, nil
	}

	program := tea.NewProgram(
		NewModel(suggestions, categories),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("running review interface: %w", err)
	}

	reviewed, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return reviewed.Accepted(), nil
}
