package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Source        lipgloss.Style
	Confirm       lipgloss.Style
	Prompt        lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Policy        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	InfoBox       lipgloss.Style
	Focus         lipgloss.Style
	Cursor        lipgloss.Style
	Mark          lipgloss.Style
	LineNumber    lipgloss.Style
	Highlight     lipgloss.Style
	ScrollTrack   lipgloss.Style
	ScrollThumb   lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Source:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Confirm: lipgloss.NewStyle().Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Policy:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Help:    lipgloss.NewStyle().Faint(true),
		Main:    lipgloss.NewStyle().Padding(1, 2),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("241")),
		Focus:         lipgloss.NewStyle().Background(lipgloss.Color("238")).Bold(true),
		Cursor:        lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true),
		Mark:          lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		LineNumber:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Highlight:     lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		ScrollTrack:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		ScrollThumb:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
