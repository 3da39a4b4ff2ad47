package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
	"lampgrid/internal/groups"
	"lampgrid/internal/logic"
)

func newExecutor() (*Executor, *logic.LampRegistry, *logic.GroupRegistry) {
	bus := eventbus.New()
	lamps := logic.NewLampRegistry(bus)
	groupReg := logic.NewGroupRegistry()
	obs := groups.NewChangeObservable(lamps, bus)
	manager := groups.NewManager(groupReg, lamps, obs, bus, groups.Options{})
	return NewExecutor(lamps, manager), lamps, groupReg
}

func TestCreateAndRemoveLamps(t *testing.T) {
	e, lamps, _ := newExecutor()
	a := e.CreateLamp(domain.Point{X: 1, Y: 2})
	b := e.CreateLamp(domain.Point{})
	require.Equal(t, 2, lamps.Len())
	assert.Equal(t, domain.Point{X: 1, Y: 2}, a.Position())
	assert.False(t, a.IsOn())

	assert.Equal(t, 1, e.RemoveLamps([]domain.LampID{a.ID(), "ghost"}))
	assert.Equal(t, []*domain.Lamp{b}, lamps.All())
}

func TestToggleConvergence(t *testing.T) {
	e, _, _ := newExecutor()
	a := e.CreateLamp(domain.Point{})
	b := e.CreateLamp(domain.Point{})
	a.SetOn(true)
	ids := []domain.LampID{a.ID(), b.ID()}

	assert.True(t, e.Toggle(ids))
	assert.True(t, a.IsOn())
	assert.True(t, b.IsOn())

	assert.False(t, e.Toggle(ids))
	assert.False(t, a.IsOn())
	assert.False(t, b.IsOn())
}

func TestToggleGroups(t *testing.T) {
	e, _, _ := newExecutor()
	a := e.CreateLamp(domain.Point{})
	b := e.CreateLamp(domain.Point{})
	outside := e.CreateLamp(domain.Point{})
	g := e.CreateGroup()
	e.AssignGroup([]domain.LampID{a.ID(), b.ID()}, g.ID)
	b.SetOn(true)

	e.ToggleGroups([]domain.GroupID{g.ID})
	assert.True(t, a.IsOn())
	assert.True(t, b.IsOn())
	assert.False(t, outside.IsOn())
}

func TestGroupLifecycle(t *testing.T) {
	e, _, groupReg := newExecutor()
	a := e.CreateLamp(domain.Point{})
	g := e.CreateGroup()
	assert.Equal(t, domain.DefaultGroupName, g.Name)

	e.RenameGroup(g.ID, "Hall")
	e.SetGroupColor(g.ID, "#ffaa00")
	assert.Equal(t, "Hall", g.Name)
	assert.Equal(t, domain.Color("#ffaa00"), g.Color)

	e.AssignGroup([]domain.LampID{a.ID()}, g.ID)
	assert.Equal(t, 1, e.DeleteGroups([]domain.GroupID{g.ID}))
	assert.False(t, a.HasGroup())
	assert.Zero(t, groupReg.Len())
}

func TestPredicates(t *testing.T) {
	e, _, _ := newExecutor()
	a := e.CreateLamp(domain.Point{})
	b := e.CreateLamp(domain.Point{})
	g := e.CreateGroup()
	both := []domain.LampID{a.ID(), b.ID()}

	assert.False(t, e.CanToggle(nil))
	assert.False(t, e.CanRemove([]domain.LampID{"ghost"}))
	assert.True(t, e.CanToggle(both))

	assert.False(t, e.CanAddToGroup(both, ""))
	assert.False(t, e.CanAddToGroup(nil, g.ID))
	assert.True(t, e.CanAddToGroup(both, g.ID))
	assert.False(t, e.CanRemoveFromGroup(both))

	e.AssignGroup([]domain.LampID{a.ID()}, g.ID)
	assert.True(t, e.CanAddToGroup(both, g.ID), "b is not in the group yet")
	assert.True(t, e.CanRemoveFromGroup(both))

	e.AssignGroup(both, g.ID)
	assert.False(t, e.CanAddToGroup(both, g.ID), "all lamps already in group")

	assert.True(t, e.CanActOnGroups([]domain.GroupID{g.ID}))
	assert.False(t, e.CanActOnGroups([]domain.GroupID{"ghost"}))
}
