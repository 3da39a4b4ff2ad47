package groups

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
	"lampgrid/internal/logic"
)

type counter struct {
	calls   int
	sources []any
}

func (c *counter) Invalidated(source any) {
	c.calls++
	c.sources = append(c.sources, source)
}

type setup struct {
	bus     eventbus.EventBus
	lamps   *logic.LampRegistry
	groups  *logic.GroupRegistry
	obs     *ChangeObservable
	manager *Manager
}

func newSetup() *setup {
	s := &setup{bus: eventbus.New()}
	s.lamps = logic.NewLampRegistry(s.bus)
	s.groups = logic.NewGroupRegistry()
	s.obs = NewChangeObservable(s.lamps, s.bus)
	s.manager = NewManager(s.groups, s.lamps, s.obs, s.bus, Options{})
	return s
}

func (s *setup) addLamps(n int) []*domain.Lamp {
	out := make([]*domain.Lamp, n)
	for i := range out {
		out[i] = domain.NewLamp(domain.Point{X: float64(i)})
	}
	s.lamps.Add(out...)
	return out
}

// requireGroupRefsLive checks every lamp group is empty or registered
func (s *setup) requireGroupRefsLive(t *testing.T) {
	t.Helper()
	for _, lamp := range s.lamps.All() {
		if lamp.HasGroup() {
			require.True(t, s.groups.Contains(lamp.Group()), "lamp %s references deleted group", lamp.ID())
		}
	}
}

func ids(lamps ...*domain.Lamp) []domain.LampID {
	out := make([]domain.LampID, len(lamps))
	for i, l := range lamps {
		out[i] = l.ID()
	}
	return out
}

func TestCreateUsesDefaults(t *testing.T) {
	s := newSetup()
	g1 := s.manager.Create()
	g2 := s.manager.Create()

	assert.Equal(t, domain.DefaultGroupName, g1.Name)
	assert.Equal(t, domain.DefaultGroupColor, g1.Color)
	assert.Equal(t, []*domain.Group{g1, g2}, s.manager.All(), "groups are appended")
}

func TestCreateWithCustomDefaults(t *testing.T) {
	s := newSetup()
	m := NewManager(s.groups, s.lamps, s.obs, s.bus, Options{DefaultName: "Room", DefaultColor: "#ff0000"})
	g := m.Create()
	assert.Equal(t, "Room", g.Name)
	assert.Equal(t, domain.Color("#ff0000"), g.Color)
}

func TestRenameAllowsEmpty(t *testing.T) {
	s := newSetup()
	g := s.manager.Create()

	s.manager.Rename(g.ID, "Kitchen")
	assert.Equal(t, "Kitchen", g.Name)
	s.manager.Rename(g.ID, "")
	assert.Equal(t, "", g.Name)

	require.NotPanics(t, func() { s.manager.Rename("ghost", "x") })
}

func TestDeleteCascades(t *testing.T) {
	s := newSetup()
	lamps := s.addLamps(3)
	g := s.manager.Create()
	other := s.manager.Create()
	s.manager.Assign(ids(lamps[0], lamps[1]), g.ID)
	s.manager.Assign(ids(lamps[2]), other.ID)

	removed := s.manager.Delete(g.ID)
	require.Equal(t, []*domain.Group{g}, removed)
	assert.False(t, s.groups.Contains(g.ID))
	assert.False(t, lamps[0].HasGroup())
	assert.False(t, lamps[1].HasGroup())
	assert.Equal(t, other.ID, lamps[2].Group(), "lamps of other groups are untouched")
	s.requireGroupRefsLive(t)
}

func TestDeleteSnapshotsInput(t *testing.T) {
	s := newSetup()
	lamps := s.addLamps(2)
	g1 := s.manager.Create()
	g2 := s.manager.Create()
	s.manager.Assign(ids(lamps[0]), g1.ID)
	s.manager.Assign(ids(lamps[1]), g2.ID)

	live := []domain.GroupID{g1.ID, g2.ID}
	s.manager.Delete(live...)
	assert.Zero(t, s.groups.Len())
	s.requireGroupRefsLive(t)
	assert.Nil(t, s.manager.Delete(live...), "second delete is a no-op")
}

func TestAssignUnknownGroupIsNoop(t *testing.T) {
	s := newSetup()
	lamps := s.addLamps(1)
	s.manager.Assign(ids(lamps...), "ghost")
	assert.False(t, lamps[0].HasGroup())
	s.requireGroupRefsLive(t)
}

func TestAssignAndClear(t *testing.T) {
	s := newSetup()
	lamps := s.addLamps(2)
	g := s.manager.Create()

	s.manager.Assign(append(ids(lamps...), "ghost"), g.ID)
	assert.Equal(t, lamps, s.manager.LampsIn(g.ID))

	s.manager.Assign(ids(lamps[0]), "")
	assert.Equal(t, []*domain.Lamp{lamps[1]}, s.manager.LampsIn(g.ID))
}

func TestSetColor(t *testing.T) {
	s := newSetup()
	events := 0
	s.bus.Subscribe(eventbus.EventGroupsChanged, func(eventbus.DomainEvent) { events++ })
	g := s.manager.Create()

	s.manager.SetColor(g.ID, "#00ff00")
	s.manager.SetColor(g.ID, "#00ff00")
	assert.Equal(t, domain.Color("#00ff00"), g.Color)
	assert.Equal(t, 2, events, "create + one effective recolor")
}
