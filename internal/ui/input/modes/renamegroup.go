package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"lampgrid/internal/ui/input/types"
)

// RenameGroupMode edits the focused group's name in the shared text field
type RenameGroupMode struct {
	field *textinput.Model
}

func NewRenameGroupMode(field *textinput.Model) *RenameGroupMode {
	return &RenameGroupMode{field: field}
}

func (m *RenameGroupMode) Name() string {
	return "rename group"
}

// Prompt is rendered by the view in front of the field
func (m *RenameGroupMode) Prompt() string {
	return "Group name: "
}

// Enter focuses the field with the focused group's current name, cursor at
// the end so typing appends
func (m *RenameGroupMode) Enter(ctx types.Context) []types.Action {
	if m.field == nil {
		return nil
	}
	m.field.Reset()
	m.field.Prompt = ""
	m.field.SetValue(ctx.FocusedGroupName())
	m.field.CursorEnd()
	m.field.Focus()
	return nil
}

func (m *RenameGroupMode) Exit(ctx types.Context) []types.Action {
	if m.field != nil {
		m.field.Blur()
		m.field.Reset()
	}
	return nil
}

// HandleKey consumes submit and cancel. Everything else is left for the
// text field.
func (m *RenameGroupMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{
			types.CancelTextAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	case "enter":
		// Any name is accepted, including an empty one
		name := ""
		if m.field != nil {
			name = m.field.Value()
		}
		return []types.Action{
			types.RenameGroupAction{NewName: name},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, false
}
