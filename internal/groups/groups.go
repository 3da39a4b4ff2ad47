package groups

import (
	"github.com/rs/zerolog/log"

	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
	"lampgrid/internal/logic"
)

// Manager implements the group operations: create, rename, recolor, delete
// with cascade, and lamp assignment
type Manager struct {
	groups     *logic.GroupRegistry
	lamps      *logic.LampRegistry
	observable *ChangeObservable
	bus        eventbus.EventBus

	defaultName  string
	defaultColor domain.Color
}

// Options carries the defaults for new groups
type Options struct {
	DefaultName  string
	DefaultColor domain.Color
}

// NewManager creates a group manager
func NewManager(groups *logic.GroupRegistry, lamps *logic.LampRegistry, observable *ChangeObservable, bus eventbus.EventBus, opts Options) *Manager {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if opts.DefaultName == "" {
		opts.DefaultName = domain.DefaultGroupName
	}
	if opts.DefaultColor == "" {
		opts.DefaultColor = domain.DefaultGroupColor
	}
	return &Manager{
		groups:       groups,
		lamps:        lamps,
		observable:   observable,
		bus:          bus,
		defaultName:  opts.DefaultName,
		defaultColor: opts.DefaultColor,
	}
}

// Create appends a new group with the default name and color
func (m *Manager) Create() *domain.Group {
	group := domain.NewGroup(m.defaultName, m.defaultColor)
	m.groups.Add(group)

	log.Info().Str("group", string(group.ID)).Int("groups", m.groups.Len()).Msg("Group created")
	m.bus.Publish(domain.GroupsChangedEvent{})
	return group
}

// Rename overwrites the group's name. Any string is accepted, including "".
func (m *Manager) Rename(id domain.GroupID, name string) {
	group := m.groups.Get(id)
	if group == nil {
		return
	}
	group.Name = name
	m.bus.Publish(domain.GroupsChangedEvent{})
}

// SetColor changes the group's display color
func (m *Manager) SetColor(id domain.GroupID, color domain.Color) {
	group := m.groups.Get(id)
	if group == nil || group.Color == color {
		return
	}
	group.Color = color
	m.bus.Publish(domain.GroupsChangedEvent{})
}

// Delete removes the groups and detaches every lamp that referenced one of
// them. Returns the groups actually removed.
func (m *Manager) Delete(ids ...domain.GroupID) []*domain.Group {
	// Snapshot before touching the registry; ids may alias a live selection
	toRemove := make([]domain.GroupID, len(ids))
	copy(toRemove, ids)

	removed := m.groups.Remove(toRemove...)
	if len(removed) == 0 {
		return nil
	}

	removedIDs := make([]domain.GroupID, len(removed))
	for i, g := range removed {
		removedIDs[i] = g.ID
	}

	detached := 0
	m.batch(func() {
		for _, lamp := range m.lamps.InGroups(removedIDs...) {
			lamp.SetGroup("", m.groups)
			detached++
		}
	})

	log.Info().Int("removed", len(removed)).Int("detached_lamps", detached).Msg("Groups deleted")
	m.bus.Publish(domain.GroupsChangedEvent{})
	return removed
}

// Assign sets the group of every given lamp. An empty group clears it.
// Unknown lamps are skipped; an unknown group makes the call a no-op.
func (m *Manager) Assign(lampIDs []domain.LampID, group domain.GroupID) {
	if group != "" && !m.groups.Contains(group) {
		return
	}
	changed := 0
	m.batch(func() {
		for _, id := range lampIDs {
			lamp := m.lamps.Get(id)
			if lamp == nil {
				continue
			}
			if lamp.Group() != group {
				changed++
			}
			lamp.SetGroup(group, m.groups)
		}
	})
	if changed > 0 {
		log.Info().Str("group", string(group)).Int("lamps", changed).Msg("Lamps assigned")
	}
}

// LampsIn returns every lamp belonging to one of the groups
func (m *Manager) LampsIn(ids ...domain.GroupID) []*domain.Lamp {
	return m.lamps.InGroups(ids...)
}

// Get returns a group by id, or nil
func (m *Manager) Get(id domain.GroupID) *domain.Group {
	return m.groups.Get(id)
}

// All returns the groups in creation order
func (m *Manager) All() []*domain.Group {
	return m.groups.All()
}

func (m *Manager) batch(fn func()) {
	if m.observable == nil {
		fn()
		return
	}
	m.observable.Batch(fn)
}
