package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Confirm     lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Help        lipgloss.Style
	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Cursor      lipgloss.Style
	Focused     lipgloss.Style
	ToolEnabled lipgloss.Style
	ToolDisable lipgloss.Style
	LampOn      lipgloss.Style
	LampOff     lipgloss.Style
	SelectionBg lipgloss.Style
	Dragging    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Confirm: lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Faint(true),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:    lipgloss.NewStyle().Faint(true),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")),
		PanelTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Cursor:      lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Focused:     lipgloss.NewStyle().Bold(true),
		ToolEnabled: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		ToolDisable: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		LampOn:      lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true), // yellow
		LampOff:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),            // gray
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("33")),
		Dragging:    lipgloss.NewStyle().Underline(true),
	}
}

// GroupColor returns a foreground style for a group color, or the plain
// style when the lamp has no group
func GroupColor(color string) lipgloss.Style {
	if color == "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
