package views

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"lampgrid/internal/domain"
)

func TestLayoutRoundTrip(t *testing.T) {
	l := Layout{Width: 100, Height: 30}
	ox, oy := l.CanvasOrigin()
	assert.Equal(t, PanelWidth+1, ox)
	assert.Equal(t, HeaderHeight, oy)

	p := l.ToCanvas(ox+7, oy+3)
	assert.Equal(t, domain.Point{X: 7, Y: 6}, p)
	col, row := ToCell(p)
	assert.Equal(t, 7, col)
	assert.Equal(t, 3, row)
}

func TestLayoutInCanvas(t *testing.T) {
	l := Layout{Width: 100, Height: 30}
	ox, oy := l.CanvasOrigin()
	w, h := l.CanvasSize()
	assert.Equal(t, 100-ox, w)
	assert.Equal(t, 30-oy-FooterHeight, h)

	assert.True(t, l.InCanvas(ox, oy))
	assert.True(t, l.InCanvas(ox+w-1, oy+h-1))
	assert.False(t, l.InCanvas(ox-1, oy))
	assert.False(t, l.InCanvas(ox, oy+h))
}

func TestLayoutTooSmall(t *testing.T) {
	w, h := Layout{Width: 10, Height: 3}.CanvasSize()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestGroupRowAt(t *testing.T) {
	l := Layout{Width: 100, Height: 30}
	idx, ok := l.GroupRowAt(2, HeaderHeight+2)
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = l.GroupRowAt(2, HeaderHeight+5)
	assert.True(t, ok)
	assert.Equal(t, 3, idx)

	_, ok = l.GroupRowAt(2, HeaderHeight+1) // title row
	assert.False(t, ok)
	_, ok = l.GroupRowAt(PanelWidth+3, HeaderHeight+2)
	assert.False(t, ok)
}

func TestSpawnPointsDistinct(t *testing.T) {
	seen := map[domain.Point]bool{}
	for n := 0; n < 30; n++ {
		p := SpawnPoint(n, 50)
		assert.False(t, seen[p], "slot %d repeats", n)
		seen[p] = true
		col, _ := ToCell(p)
		assert.Less(t, col+1, 50)
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvasRenderer(NewStyles())
	out := c.Render([]LampView{
		{Col: 1, Row: 0, On: true},
		{Col: 5, Row: 1},
		{Col: 40, Row: 0}, // clipped
	}, 10, 2)

	rows := strings.Split(out, "\n")
	assert.Len(t, rows, 2)
	assert.Contains(t, rows[0], "●")
	assert.Contains(t, rows[1], "○")
	assert.Equal(t, "", c.Render(nil, 0, 5))
}

func TestRenderGroupLine(t *testing.T) {
	g := NewGroupRenderer(NewStyles())
	line := g.RenderGroupLine(GroupView{Name: "Kitchen", Selected: true, Count: 2}, false, 26)
	assert.Contains(t, line, "[x]")
	assert.Contains(t, line, "Kitchen")
	assert.Contains(t, line, "(2)")

	line = g.RenderGroupLine(GroupView{}, false, 26)
	assert.Contains(t, line, "[ ]")
	assert.Contains(t, line, "(unnamed)")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("abc", 0))
}

func TestRenderPrompt(t *testing.T) {
	r := NewRenderer()
	out := r.Render(ViewState{Width: 80, Height: 20, InputMode: "delete-confirm", ConfirmCount: 2})
	assert.Contains(t, out, "Delete 2 groups?")
}
