package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// GroupView is one row of the group panel
type GroupView struct {
	Name     string
	Color    string
	Count    int
	Selected bool
	Focused  bool
}

// GroupRenderer handles rendering of the group panel
type GroupRenderer struct {
	styles *Styles
}

// NewGroupRenderer creates a new group renderer
func NewGroupRenderer(styles *Styles) *GroupRenderer {
	return &GroupRenderer{
		styles: styles,
	}
}

// RenderPanel renders the bordered group list with the cursor row
// highlighted
func (g *GroupRenderer) RenderPanel(groups []GroupView, cursor, height int) string {
	inner := PanelWidth - 2
	lines := []string{g.styles.PanelTitle.Render("Groups")}
	if len(groups) == 0 {
		lines = append(lines, g.styles.Dim.Render("none yet"))
	}
	for i, group := range groups {
		lines = append(lines, g.RenderGroupLine(group, i == cursor, inner))
	}

	innerHeight := height - 2
	if innerHeight < 1 {
		innerHeight = 1
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}
	return g.styles.Panel.
		Width(inner).
		Height(innerHeight).
		Render(strings.Join(lines, "\n"))
}

// RenderGroupLine renders a single group entry
func (g *GroupRenderer) RenderGroupLine(group GroupView, isCursor bool, width int) string {
	check := "[ ]"
	if group.Selected {
		check = "[x]"
	}
	swatch := GroupColor(group.Color).Render("■")

	name := group.Name
	nameStyle := lipgloss.NewStyle()
	if name == "" {
		name = "(unnamed)"
		nameStyle = g.styles.Dim
	}
	if group.Focused {
		nameStyle = nameStyle.Inherit(g.styles.Focused)
	}

	count := fmt.Sprintf(" (%d)", group.Count)
	// check, space, swatch, space
	room := width - 6 - len(count)
	name = truncate(name, room)

	line := fmt.Sprintf("%s %s %s%s", check, swatch, nameStyle.Render(name), g.styles.Dim.Render(count))
	if isCursor {
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		line = g.styles.Cursor.Render(line)
	}
	return line
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}
