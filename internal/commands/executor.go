package commands

import (
	"github.com/rs/zerolog/log"

	"lampgrid/internal/domain"
	"lampgrid/internal/groups"
	"lampgrid/internal/logic"
)

// Executor runs commands and answers the enablement predicates toolbar
// controls use
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor
func NewExecutor(lamps *logic.LampRegistry, groupManager *groups.Manager) *Executor {
	return &Executor{
		ctx: &CommandContext{
			Lamps:  lamps,
			Groups: groupManager,
		},
	}
}

// Run executes cmd
func (e *Executor) Run(cmd Command) {
	cmd.Execute(e.ctx)
	log.Info().
		Str("command", cmd.Name()).
		Int("lamps", e.ctx.Lamps.Len()).
		Int("groups", len(e.ctx.Groups.All())).
		Msg("Command executed")
}

// CreateLamp adds a lamp at p
func (e *Executor) CreateLamp(p domain.Point) *domain.Lamp {
	cmd := &CreateLampCommand{Position: p}
	e.Run(cmd)
	return cmd.Created
}

// RemoveLamps removes the lamps and returns how many were present
func (e *Executor) RemoveLamps(ids []domain.LampID) int {
	cmd := &RemoveLampsCommand{Lamps: ids}
	e.Run(cmd)
	return cmd.Removed
}

// Toggle converges the lamps and returns the applied state
func (e *Executor) Toggle(ids []domain.LampID) bool {
	cmd := &ToggleCommand{Lamps: ids}
	e.Run(cmd)
	return cmd.On
}

// ToggleGroups converges every lamp in the groups
func (e *Executor) ToggleGroups(ids []domain.GroupID) bool {
	cmd := &ToggleGroupsCommand{Groups: ids}
	e.Run(cmd)
	return cmd.On
}

// AssignGroup sets the group of the lamps; an empty group removes them from
// their group
func (e *Executor) AssignGroup(ids []domain.LampID, group domain.GroupID) {
	e.Run(&AssignGroupCommand{Lamps: ids, Group: group})
}

// CreateGroup appends a new group
func (e *Executor) CreateGroup() *domain.Group {
	cmd := &CreateGroupCommand{}
	e.Run(cmd)
	return cmd.Created
}

// RenameGroup overwrites the group's name
func (e *Executor) RenameGroup(id domain.GroupID, name string) {
	e.Run(&RenameGroupCommand{Group: id, NewName: name})
}

// SetGroupColor changes the group's color
func (e *Executor) SetGroupColor(id domain.GroupID, color domain.Color) {
	e.Run(&SetGroupColorCommand{Group: id, Color: color})
}

// DeleteGroups removes the groups and returns how many were present
func (e *Executor) DeleteGroups(ids []domain.GroupID) int {
	cmd := &DeleteGroupsCommand{Groups: ids}
	e.Run(cmd)
	return cmd.Removed
}

// CanToggle reports whether toggle has anything to act on
func (e *Executor) CanToggle(ids []domain.LampID) bool {
	return len(e.ctx.lampsFor(ids)) > 0
}

// CanRemove reports whether remove has anything to act on
func (e *Executor) CanRemove(ids []domain.LampID) bool {
	return e.CanToggle(ids)
}

// CanAddToGroup is false without a group, without lamps, or when every lamp
// already belongs to the group
func (e *Executor) CanAddToGroup(ids []domain.LampID, group domain.GroupID) bool {
	if group == "" || e.ctx.Groups.Get(group) == nil {
		return false
	}
	lamps := e.ctx.lampsFor(ids)
	if len(lamps) == 0 {
		return false
	}
	for _, lamp := range lamps {
		if lamp.Group() != group {
			return true
		}
	}
	return false
}

// CanRemoveFromGroup is true when at least one lamp has a group
func (e *Executor) CanRemoveFromGroup(ids []domain.LampID) bool {
	for _, lamp := range e.ctx.lampsFor(ids) {
		if lamp.HasGroup() {
			return true
		}
	}
	return false
}

// CanActOnGroups reports whether a group command has any live group
func (e *Executor) CanActOnGroups(ids []domain.GroupID) bool {
	for _, id := range ids {
		if e.ctx.Groups.Get(id) != nil {
			return true
		}
	}
	return false
}
