package input

import (
	"lampgrid/internal/coordinator"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Coordinator *coordinator.Coordinator
	Cursor      int
}

// HasSelection returns true if any lamps are selected
func (c *ModelContext) HasSelection() bool {
	return !c.Coordinator.Selection.Empty()
}

// SelectedCount returns the number of selected lamps
func (c *ModelContext) SelectedCount() int {
	return c.Coordinator.Selection.Len()
}

// LampCount returns the number of lamps on the canvas
func (c *ModelContext) LampCount() int {
	return c.Coordinator.Lamps.Len()
}

// GroupCount returns the number of groups
func (c *ModelContext) GroupCount() int {
	return c.Coordinator.GroupStore.Len()
}

// GroupCursor returns the group panel cursor
func (c *ModelContext) GroupCursor() int {
	return c.Cursor
}

// SelectedGroupCount returns the number of groups selected in the panel
func (c *ModelContext) SelectedGroupCount() int {
	return len(c.Coordinator.GroupPanel.IDs())
}

// FocusedGroupName returns the focused group's name, or ""
func (c *ModelContext) FocusedGroupName() string {
	if g := c.Coordinator.Groups.Get(c.Coordinator.GroupPanel.Focused()); g != nil {
		return g.Name
	}
	return ""
}
