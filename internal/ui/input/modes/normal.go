package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"lampgrid/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.SelectAll):
		return []types.Action{types.SelectAllAction{}}, true

	case key.Matches(msg, m.keys.ClearSelection):
		return []types.Action{types.DeselectAllAction{}}, true

	case key.Matches(msg, m.keys.NewLamp):
		return []types.Action{types.NewLampAction{}}, true

	case key.Matches(msg, m.keys.Toggle):
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.ToggleLampsAction{}}, true

	case key.Matches(msg, m.keys.Remove):
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.RemoveLampsAction{}}, true

	case key.Matches(msg, m.keys.AddToGroup):
		return []types.Action{types.AddToGroupAction{}}, true

	case key.Matches(msg, m.keys.RemoveFromGroup):
		return []types.Action{types.RemoveFromGroupAction{}}, true

	case key.Matches(msg, m.keys.NewGroup):
		// The model switches to rename mode once the group exists
		return []types.Action{types.CreateGroupAction{}}, true

	case key.Matches(msg, m.keys.RenameGroup):
		// Rename the focused group (only if there is one)
		if ctx.SelectedGroupCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeRenameGroup}}, true

	case key.Matches(msg, m.keys.DeleteGroup):
		if ctx.SelectedGroupCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ChangeModeAction{Mode: types.ModeDeleteConfirm}}, true

	case key.Matches(msg, m.keys.ToggleGroup):
		if ctx.SelectedGroupCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleGroupAction{}}, true

	case key.Matches(msg, m.keys.CycleColor):
		if ctx.SelectedGroupCount() == 0 {
			return nil, true
		}
		return []types.Action{types.CycleColorAction{}}, true

	case key.Matches(msg, m.keys.GroupUp):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.GroupDown):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.SelectGroup):
		if ctx.GroupCount() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectGroupAction{}}, true

	case key.Matches(msg, m.keys.FocusGroup):
		if ctx.GroupCount() == 0 {
			return nil, true
		}
		return []types.Action{types.SelectGroupAction{Only: true}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	return nil, false
}
