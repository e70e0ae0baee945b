package tui

import "github.com/charmbracelet/lipgloss"

// Styles contains all the style definitions for the terminal UI
type Styles struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Echo      lipgloss.Style
	Separator lipgloss.Style
	Link      lipgloss.Style
	URL       lipgloss.Style
	Meta      lipgloss.Style
	Help      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("166")).
			MarginBottom(1),
		Label:     lipgloss.NewStyle().Bold(true),
		Echo:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Link:      lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Underline(true),
		URL:       lipgloss.NewStyle().Faint(true),
		Meta:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Help:      lipgloss.NewStyle().Faint(true),
	}
}
