package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Content     lipgloss.Style
	Marker      lipgloss.Style
	Thumb       lipgloss.Style
	Track       lipgloss.Style
	KeyEnabled  lipgloss.Style
	KeyDisabled lipgloss.Style
	Legend      lipgloss.Style
	Prompt      lipgloss.Style
	Title       lipgloss.Style
	Section     lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Content:     lipgloss.NewStyle(),
		Marker:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Thumb:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Track:       lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		KeyEnabled:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")), // white
		KeyDisabled: lipgloss.NewStyle().Faint(true),
		Legend:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Prompt:      lipgloss.NewStyle().Faint(true),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Section: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
