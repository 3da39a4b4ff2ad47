package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Lamp selection actions
type SelectAllAction struct{}

func (a SelectAllAction) Type() string { return "select_all" }

type DeselectAllAction struct{}

func (a DeselectAllAction) Type() string { return "deselect_all" }

// Group panel selection actions
type SelectGroupAction struct {
	Only bool // replace the panel selection instead of toggling
}

func (a SelectGroupAction) Type() string { return "select_group" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Lamp commands
type NewLampAction struct{}

func (a NewLampAction) Type() string { return "new_lamp" }

type ToggleLampsAction struct{}

func (a ToggleLampsAction) Type() string { return "toggle_lamps" }

type RemoveLampsAction struct{}

func (a RemoveLampsAction) Type() string { return "remove_lamps" }

type AddToGroupAction struct{}

func (a AddToGroupAction) Type() string { return "add_to_group" }

type RemoveFromGroupAction struct{}

func (a RemoveFromGroupAction) Type() string { return "remove_from_group" }

// Group commands
type CreateGroupAction struct{}

func (a CreateGroupAction) Type() string { return "create_group" }

type RenameGroupAction struct {
	NewName string
}

func (a RenameGroupAction) Type() string { return "rename_group" }

type DeleteGroupAction struct{}

func (a DeleteGroupAction) Type() string { return "delete_group" }

type ToggleGroupAction struct{}

func (a ToggleGroupAction) Type() string { return "toggle_group" }

type CycleColorAction struct{}

func (a CycleColorAction) Type() string { return "cycle_color" }

// Other
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
