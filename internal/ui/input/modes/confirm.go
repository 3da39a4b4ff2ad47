package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"lampgrid/internal/ui/input/types"
)

type ConfirmMode struct {
	count int
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

// Count is the number of groups awaiting confirmation
func (m *ConfirmMode) Count() int {
	return m.count
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Remember how many groups are about to go
	m.count = ctx.SelectedGroupCount()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.count = 0
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		// Cancel and return to normal mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "y", "Y":
		// Confirm deletion
		return []types.Action{
			types.DeleteGroupAction{},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true

	case "n", "N":
		// Cancel deletion
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	// Swallow everything else while the question is open
	return nil, true
}
