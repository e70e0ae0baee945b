// Package tui is a terminal rendition of the story browser.
//
// The bubbletea loop delivers one message at a time, so the root model can
// own the search state without locking: a key press that changes the input
// calls handleSearchChange, and the next View re-derives the filtered list.
package tui

import (
	"strconv"
	"strings"

	"hackerstories/models"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"
)

// Heading is the fixed title line
const Heading = "My Hacker Stories"

const separatorWidth = 48

// SearchChangedMsg sets the search text from outside the input, e.g. on startup
type SearchChangedMsg struct {
	Value string
}

// Model is the root container: it owns the stories and the search state.
// The text input only mirrors the state; it is re-synced after every change.
type Model struct {
	stories []models.Story
	state   *models.SearchState
	input   textinput.Model
	styles  Styles
}

// New creates the root model over stories, showing state's current text
func New(stories []models.Story, state *models.SearchState) Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type to filter titles"
	ti.SetValue(state.Term())
	ti.Focus()

	return Model{
		stories: stories,
		state:   state,
		input:   ti,
		styles:  NewStyles(),
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

	case SearchChangedMsg:
		m.handleSearchChange(msg.Value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// every edit goes through the root before anything else happens
	if v := m.input.Value(); v != m.state.Term() {
		m.handleSearchChange(v)
	}
	return m, cmd
}

// handleSearchChange replaces the search text and keeps the input controlled
func (m *Model) handleSearchChange(value string) {
	m.state.Set(value)
	if m.input.Value() != value {
		m.input.SetValue(value)
	}
}

// SearchTerm returns the root's current search text
func (m Model) SearchTerm() string {
	return m.state.Term()
}

// Filtered derives the visible stories for the current search text
func (m Model) Filtered() []models.Story {
	return models.SearchStories(m.stories, m.state.Term())
}

// View implements tea.Model: heading, search, separator, list
func (m Model) View() string {
	term := m.state.Term()
	filtered := models.SearchStories(m.stories, term)
	logger.Debug("TUI rendered", "term", term, "matches", len(filtered))

	var out strings.Builder

	out.WriteString(m.styles.Title.Render(Heading))
	out.WriteString("\n")

	out.WriteString(m.renderSearch(term))
	out.WriteString(m.styles.Separator.Render(strings.Repeat("─", separatorWidth)))
	out.WriteString("\n")

	for _, story := range filtered {
		_, fields := story.Split()
		out.WriteString(m.renderItem(fields))
		out.WriteString("\n")
	}

	out.WriteString("\n")
	out.WriteString(m.styles.Help.Render("esc: quit"))
	out.WriteString("\n")
	return out.String()
}

func (m Model) renderSearch(term string) string {
	var out strings.Builder
	out.WriteString(m.styles.Label.Render("Search: "))
	out.WriteString(m.input.View())
	out.WriteString("\n")
	out.WriteString(m.styles.Echo.Render("Searching for " + term))
	out.WriteString("\n")
	return out.String()
}

// renderItem is the terminal row: linked title, author, comments, points
func (m Model) renderItem(f models.StoryFields) string {
	parts := []string{
		m.styles.Link.Render(f.Title) + " " + m.styles.URL.Render("<"+f.URL+">"),
		m.styles.Meta.Render(f.Author),
		m.styles.Meta.Render(strconv.Itoa(f.NumComments) + " comments"),
		m.styles.Meta.Render(strconv.Itoa(f.Points) + " points"),
	}
	return "  " + strings.Join(parts, "  ")
}
