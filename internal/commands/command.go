package commands

import (
	"lampgrid/internal/domain"
	"lampgrid/internal/groups"
	"lampgrid/internal/logic"
)

// Command is a toolbar action. Commands carry the lamps or groups they act on
// explicitly instead of reading a live selection.
type Command interface {
	Name() string
	Execute(ctx *CommandContext)
}

// CommandContext provides the services commands operate on
type CommandContext struct {
	Lamps  *logic.LampRegistry
	Groups *groups.Manager
}

func (ctx *CommandContext) lampsFor(ids []domain.LampID) []*domain.Lamp {
	out := make([]*domain.Lamp, 0, len(ids))
	for _, id := range ids {
		if lamp := ctx.Lamps.Get(id); lamp != nil {
			out = append(out, lamp)
		}
	}
	return out
}

// CreateLampCommand adds a new lamp at Position
type CreateLampCommand struct {
	Position domain.Point
	Created  *domain.Lamp
}

func (c *CreateLampCommand) Name() string { return "create_lamp" }

func (c *CreateLampCommand) Execute(ctx *CommandContext) {
	c.Created = domain.NewLamp(c.Position)
	ctx.Lamps.Add(c.Created)
}

// RemoveLampsCommand removes lamps from the canvas
type RemoveLampsCommand struct {
	Lamps   []domain.LampID
	Removed int
}

func (c *RemoveLampsCommand) Name() string { return "remove_lamps" }

func (c *RemoveLampsCommand) Execute(ctx *CommandContext) {
	c.Removed = len(ctx.Lamps.Remove(c.Lamps...))
}

// ToggleCommand converges the lamps to one on/off state
type ToggleCommand struct {
	Lamps []domain.LampID
	On    bool
}

func (c *ToggleCommand) Name() string { return "toggle" }

func (c *ToggleCommand) Execute(ctx *CommandContext) {
	c.On = logic.Toggle(ctx.lampsFor(c.Lamps))
}

// ToggleGroupsCommand converges every lamp of the groups to one state
type ToggleGroupsCommand struct {
	Groups []domain.GroupID
	On     bool
}

func (c *ToggleGroupsCommand) Name() string { return "toggle_groups" }

func (c *ToggleGroupsCommand) Execute(ctx *CommandContext) {
	c.On = logic.Toggle(ctx.Groups.LampsIn(c.Groups...))
}

// AssignGroupCommand puts lamps into Group, or takes them out of any group
// when Group is empty
type AssignGroupCommand struct {
	Lamps []domain.LampID
	Group domain.GroupID
}

func (c *AssignGroupCommand) Name() string {
	if c.Group == "" {
		return "remove_from_group"
	}
	return "add_to_group"
}

func (c *AssignGroupCommand) Execute(ctx *CommandContext) {
	ctx.Groups.Assign(c.Lamps, c.Group)
}

// CreateGroupCommand appends a group with the default name and color
type CreateGroupCommand struct {
	Created *domain.Group
}

func (c *CreateGroupCommand) Name() string { return "create_group" }

func (c *CreateGroupCommand) Execute(ctx *CommandContext) {
	c.Created = ctx.Groups.Create()
}

// RenameGroupCommand overwrites a group's name
type RenameGroupCommand struct {
	Group   domain.GroupID
	NewName string
}

func (c *RenameGroupCommand) Name() string { return "rename_group" }

func (c *RenameGroupCommand) Execute(ctx *CommandContext) {
	ctx.Groups.Rename(c.Group, c.NewName)
}

// SetGroupColorCommand changes a group's color
type SetGroupColorCommand struct {
	Group domain.GroupID
	Color domain.Color
}

func (c *SetGroupColorCommand) Name() string { return "set_group_color" }

func (c *SetGroupColorCommand) Execute(ctx *CommandContext) {
	ctx.Groups.SetColor(c.Group, c.Color)
}

// DeleteGroupsCommand removes groups and detaches their lamps
type DeleteGroupsCommand struct {
	Groups  []domain.GroupID
	Removed int
}

func (c *DeleteGroupsCommand) Name() string { return "delete_groups" }

func (c *DeleteGroupsCommand) Execute(ctx *CommandContext) {
	c.Removed = len(ctx.Groups.Delete(c.Groups...))
}
