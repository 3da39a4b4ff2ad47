package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ToolView is one toolbar entry
type ToolView struct {
	Key     string
	Label   string
	Enabled bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Lamps         []LampView
	Groups        []GroupView
	GroupCursor   int
	Toolbar       []ToolView
	LampCount     int
	SelectedCount int
	OnCount       int
	StatusMessage string
	InputMode     string
	Prompt        string
	TextInput     string
	ConfirmCount  int
	HelpView      string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	canvas      *CanvasRenderer
	groupRender *GroupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		canvas:      NewCanvasRenderer(styles),
		groupRender: NewGroupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	layout := Layout{Width: state.Width, Height: state.Height}
	canvasW, canvasH := layout.CanvasSize()

	lines := make([]string, 0, 4)

	// Title and toolbar
	lines = append(lines, r.styles.Title.Render("lampgrid"))
	lines = append(lines, r.renderToolbar(state.Toolbar))

	// Group panel and canvas side by side
	panel := r.groupRender.RenderPanel(state.Groups, state.GroupCursor, canvasH)
	canvas := r.canvas.Render(state.Lamps, canvasW, canvasH)
	if canvasH > 0 {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, panel, " ", canvas))
	}

	// Prompt line: text input or delete confirmation
	lines = append(lines, r.renderPrompt(state))
	lines = append(lines, r.renderStatus(state))
	lines = append(lines, r.styles.Help.Render(state.HelpView))

	return strings.Join(lines, "\n")
}

func (r *Renderer) renderToolbar(tools []ToolView) string {
	parts := make([]string, 0, len(tools))
	for _, tool := range tools {
		style := r.styles.ToolDisable
		if tool.Enabled {
			style = r.styles.ToolEnabled
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s] %s", tool.Key, tool.Label)))
	}
	return strings.Join(parts, "  ")
}

func (r *Renderer) renderPrompt(state ViewState) string {
	switch state.InputMode {
	case "delete-confirm":
		noun := "group"
		if state.ConfirmCount != 1 {
			noun = "groups"
		}
		return r.styles.Confirm.Render(fmt.Sprintf("Delete %d %s? (y/n): ", state.ConfirmCount, noun))
	case "rename group":
		return state.Prompt + state.TextInput
	}
	return ""
}

func (r *Renderer) renderStatus(state ViewState) string {
	status := fmt.Sprintf("%d lamps, %d on, %d selected", state.LampCount, state.OnCount, state.SelectedCount)
	if state.StatusMessage != "" {
		status += "  " + state.StatusMessage
	}
	return r.styles.Status.Render(status)
}
