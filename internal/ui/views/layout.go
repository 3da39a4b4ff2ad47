package views

import (
	"math"

	"lampgrid/internal/domain"
)

const (
	// HeaderHeight is the title line plus the toolbar line
	HeaderHeight = 2
	// FooterHeight is the prompt, status and help lines
	FooterHeight = 3
	// PanelWidth is the group panel's outer width, borders included
	PanelWidth = 28
	// LampWidth is the number of cells a lamp glyph covers
	LampWidth = 3
	// RowScale is how many canvas units one terminal row spans. Cells are
	// about twice as tall as they are wide.
	RowScale = 2.0
)

// Layout maps terminal cells to canvas points for one window size
type Layout struct {
	Width  int
	Height int
}

// CanvasOrigin returns the terminal cell of canvas point (0, 0)
func (l Layout) CanvasOrigin() (x, y int) {
	return PanelWidth + 1, HeaderHeight
}

// CanvasSize returns the canvas size in cells
func (l Layout) CanvasSize() (w, h int) {
	ox, oy := l.CanvasOrigin()
	w = l.Width - ox
	h = l.Height - oy - FooterHeight
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return w, h
}

// InCanvas reports whether the terminal cell lies on the canvas
func (l Layout) InCanvas(x, y int) bool {
	ox, oy := l.CanvasOrigin()
	w, h := l.CanvasSize()
	return x >= ox && x < ox+w && y >= oy && y < oy+h
}

// ToCanvas converts a terminal cell to a canvas point
func (l Layout) ToCanvas(x, y int) domain.Point {
	ox, oy := l.CanvasOrigin()
	return domain.Point{X: float64(x - ox), Y: float64(y-oy) * RowScale}
}

// ToCell converts a canvas point to a cell relative to the canvas origin
func ToCell(p domain.Point) (col, row int) {
	return int(math.Round(p.X)), int(math.Round(p.Y / RowScale))
}

// GroupRowAt returns the index of the group listed at terminal cell (x, y)
func (l Layout) GroupRowAt(x, y int) (int, bool) {
	// border + title row come before the first group
	first := HeaderHeight + 2
	if x < 1 || x >= PanelWidth-1 || y < first {
		return 0, false
	}
	_, h := l.CanvasSize()
	if y >= HeaderHeight+h-1 {
		return 0, false
	}
	return y - first, true
}

// SpawnPoint returns the n-th default lamp position on a canvas w cells wide
func SpawnPoint(n, w int) domain.Point {
	const spacing = 8
	perRow := (w - LampWidth) / spacing
	if perRow < 1 {
		perRow = 1
	}
	col := 2 + (n%perRow)*spacing
	row := 1 + (n/perRow)*2
	return domain.Point{X: float64(col), Y: float64(row) * RowScale}
}
