package views

import (
	"strings"
)

// LampView is what the canvas needs to draw one lamp
type LampView struct {
	Col      int
	Row      int
	On       bool
	Selected bool
	Dragging bool
	Color    string // group color, "" when ungrouped
}

// CanvasRenderer draws lamps on a character grid
type CanvasRenderer struct {
	styles *Styles
}

// NewCanvasRenderer creates a new canvas renderer
func NewCanvasRenderer(styles *Styles) *CanvasRenderer {
	return &CanvasRenderer{styles: styles}
}

// Render draws the lamps in order, so later lamps cover earlier ones
func (c *CanvasRenderer) Render(lamps []LampView, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]string, height)
	for i := range grid {
		grid[i] = make([]string, width)
		for j := range grid[i] {
			grid[i][j] = " "
		}
	}

	for _, lamp := range lamps {
		if lamp.Row < 0 || lamp.Row >= height {
			continue
		}
		for i, cell := range c.glyph(lamp) {
			col := lamp.Col - 1 + i
			if col < 0 || col >= width {
				continue
			}
			grid[lamp.Row][col] = cell
		}
	}

	rows := make([]string, height)
	for i, row := range grid {
		rows[i] = strings.Join(row, "")
	}
	return strings.Join(rows, "\n")
}

// glyph renders the three cells of a lamp: bracket, bulb, bracket
func (c *CanvasRenderer) glyph(lamp LampView) []string {
	bracket := GroupColor(lamp.Color)
	bulb := c.styles.LampOff
	symbol := "○"
	if lamp.On {
		bulb = c.styles.LampOn
		symbol = "●"
	}
	if lamp.Selected {
		bracket = bracket.Inherit(c.styles.SelectionBg)
		bulb = bulb.Inherit(c.styles.SelectionBg)
	}
	if lamp.Dragging {
		bulb = bulb.Inherit(c.styles.Dragging)
	}
	return []string{
		bracket.Render("("),
		bulb.Render(symbol),
		bracket.Render(")"),
	}
}
