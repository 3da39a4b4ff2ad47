package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
)

type recordingWatcher struct {
	added   []domain.LampID
	removed []domain.LampID
	seen    func(domain.LampID) bool
	present []bool
}

func (w *recordingWatcher) LampAdded(l *domain.Lamp) { w.added = append(w.added, l.ID()) }

func (w *recordingWatcher) LampRemoved(l *domain.Lamp) {
	w.removed = append(w.removed, l.ID())
	if w.seen != nil {
		w.present = append(w.present, w.seen(l.ID()))
	}
}

func TestLampRegistryAddRemove(t *testing.T) {
	bus := eventbus.New()
	var events []domain.LampsChangedEvent
	bus.Subscribe(eventbus.EventLampsChanged, func(e eventbus.DomainEvent) {
		events = append(events, e.(domain.LampsChangedEvent))
	})

	reg := NewLampRegistry(bus)
	a := domain.NewLamp(domain.Point{})
	b := domain.NewLamp(domain.Point{X: 10})
	reg.Add(a, b, a)

	require.Equal(t, 2, reg.Len())
	assert.Equal(t, []domain.LampID{a.ID(), b.ID()}, reg.IDs())
	require.Len(t, events, 1)
	assert.Len(t, events[0].Added, 2)

	removed := reg.Remove(a.ID(), "missing")
	require.Len(t, removed, 1)
	assert.False(t, reg.Contains(a.ID()))
	assert.Equal(t, []*domain.Lamp{b}, reg.All())
	require.Len(t, events, 2)
	assert.Equal(t, []domain.LampID{a.ID()}, events[1].Removed)

	assert.Nil(t, reg.Remove("missing"), "unknown ids are a no-op")
	assert.Len(t, events, 2)
}

func TestLampRegistryWatchReplaysAndStops(t *testing.T) {
	reg := NewLampRegistry(nil)
	a := domain.NewLamp(domain.Point{})
	reg.Add(a)

	w := &recordingWatcher{}
	w.seen = reg.Contains
	unwatch := reg.Watch(w)
	assert.Equal(t, []domain.LampID{a.ID()}, w.added, "existing lamps are replayed")

	b := domain.NewLamp(domain.Point{})
	reg.Add(b)
	reg.Remove(a.ID())
	assert.Equal(t, []domain.LampID{a.ID(), b.ID()}, w.added)
	assert.Equal(t, []domain.LampID{a.ID()}, w.removed)
	assert.Equal(t, []bool{false}, w.present, "lamp is already gone when watchers hear about it")

	unwatch()
	reg.Remove(b.ID())
	assert.Len(t, w.removed, 1)
}

func TestLampRegistryInGroups(t *testing.T) {
	reg := NewLampRegistry(nil)
	groups := NewGroupRegistry()
	g1, g2 := domain.NewGroup("one", ""), domain.NewGroup("two", "")
	groups.Add(g1)
	groups.Add(g2)
	a := domain.NewLamp(domain.Point{})
	b := domain.NewLamp(domain.Point{})
	c := domain.NewLamp(domain.Point{})
	a.SetGroup(g1.ID, groups)
	b.SetGroup(g2.ID, groups)
	reg.Add(a, b, c)

	assert.Equal(t, []*domain.Lamp{a}, reg.InGroups(g1.ID))
	assert.Equal(t, []*domain.Lamp{a, b}, reg.InGroups(g1.ID, g2.ID))
	assert.Empty(t, reg.InGroups(""), "the empty group id never matches ungrouped lamps")
}

func TestGroupRegistry(t *testing.T) {
	reg := NewGroupRegistry()
	g1 := domain.NewGroup("A", domain.DefaultGroupColor)
	g2 := domain.NewGroup("B", domain.DefaultGroupColor)
	reg.Add(g1)
	reg.Add(g2)
	reg.Add(g1)

	require.Equal(t, 2, reg.Len())
	assert.Equal(t, 1, reg.IndexOf(g2.ID))

	removed := reg.Remove(g1.ID, g1.ID)
	assert.Equal(t, []*domain.Group{g1}, removed)
	assert.Equal(t, []*domain.Group{g2}, reg.All())
	assert.Equal(t, -1, reg.IndexOf(g1.ID))
	assert.Nil(t, reg.Get(g1.ID))
}
