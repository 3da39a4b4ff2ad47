package logic

import (
	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
)

// LampRegistry exclusively owns the lamps on the canvas, in insertion order.
// It is not safe for concurrent use; the UI goroutine owns it.
type LampRegistry struct {
	bus   eventbus.EventBus
	order []domain.LampID
	lamps map[domain.LampID]*domain.Lamp

	nextWatcher int
	watchers    map[int]RegistryWatcher
	watchOrder  []int
}

// NewLampRegistry creates an empty registry
func NewLampRegistry(bus eventbus.EventBus) *LampRegistry {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &LampRegistry{
		bus:      bus,
		lamps:    make(map[domain.LampID]*domain.Lamp),
		watchers: make(map[int]RegistryWatcher),
	}
}

// Watch registers w for add/remove notifications and replays an add for every
// lamp already present. The returned function stops the notifications.
func (r *LampRegistry) Watch(w RegistryWatcher) func() {
	id := r.nextWatcher
	r.nextWatcher++
	r.watchers[id] = w
	r.watchOrder = append(r.watchOrder, id)

	for _, lamp := range r.All() {
		w.LampAdded(lamp)
	}

	return func() {
		if _, ok := r.watchers[id]; !ok {
			return
		}
		delete(r.watchers, id)
		for i, wid := range r.watchOrder {
			if wid == id {
				r.watchOrder = append(r.watchOrder[:i:i], r.watchOrder[i+1:]...)
				break
			}
		}
	}
}

func (r *LampRegistry) activeWatchers() []RegistryWatcher {
	out := make([]RegistryWatcher, 0, len(r.watchOrder))
	for _, id := range r.watchOrder {
		out = append(out, r.watchers[id])
	}
	return out
}

// Add appends lamps to the registry. Lamps already present are skipped.
func (r *LampRegistry) Add(lamps ...*domain.Lamp) {
	var added []*domain.Lamp
	for _, lamp := range lamps {
		if lamp == nil {
			continue
		}
		if _, exists := r.lamps[lamp.ID()]; exists {
			continue
		}
		r.lamps[lamp.ID()] = lamp
		r.order = append(r.order, lamp.ID())
		added = append(added, lamp)
	}
	if len(added) == 0 {
		return
	}

	for _, w := range r.activeWatchers() {
		for _, lamp := range added {
			w.LampAdded(lamp)
		}
	}

	ids := make([]domain.LampID, len(added))
	for i, lamp := range added {
		ids[i] = lamp.ID()
	}
	r.bus.Publish(domain.LampsChangedEvent{Added: ids})
}

// Remove deletes the given lamps. Unknown ids are ignored.
func (r *LampRegistry) Remove(ids ...domain.LampID) []*domain.Lamp {
	var removed []*domain.Lamp
	for _, id := range ids {
		lamp, ok := r.lamps[id]
		if !ok {
			continue
		}
		delete(r.lamps, id)
		removed = append(removed, lamp)
	}
	if len(removed) == 0 {
		return nil
	}

	kept := r.order[:0:0]
	for _, id := range r.order {
		if _, ok := r.lamps[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept

	for _, w := range r.activeWatchers() {
		for _, lamp := range removed {
			w.LampRemoved(lamp)
		}
	}

	removedIDs := make([]domain.LampID, len(removed))
	for i, lamp := range removed {
		removedIDs[i] = lamp.ID()
	}
	r.bus.Publish(domain.LampsChangedEvent{Removed: removedIDs})
	return removed
}

func (r *LampRegistry) Get(id domain.LampID) *domain.Lamp {
	return r.lamps[id]
}

func (r *LampRegistry) Contains(id domain.LampID) bool {
	_, ok := r.lamps[id]
	return ok
}

// All returns the lamps in insertion order
func (r *LampRegistry) All() []*domain.Lamp {
	out := make([]*domain.Lamp, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.lamps[id])
	}
	return out
}

// IDs returns the lamp ids in insertion order
func (r *LampRegistry) IDs() []domain.LampID {
	out := make([]domain.LampID, len(r.order))
	copy(out, r.order)
	return out
}

func (r *LampRegistry) Len() int {
	return len(r.order)
}

// InGroups returns the lamps whose group is one of groups
func (r *LampRegistry) InGroups(groups ...domain.GroupID) []*domain.Lamp {
	want := make(map[domain.GroupID]bool, len(groups))
	for _, g := range groups {
		if g != "" {
			want[g] = true
		}
	}
	var out []*domain.Lamp
	for _, lamp := range r.All() {
		if want[lamp.Group()] {
			out = append(out, lamp)
		}
	}
	return out
}

// GroupRegistry holds the groups in creation order
type GroupRegistry struct {
	order  []domain.GroupID
	groups map[domain.GroupID]*domain.Group
}

// NewGroupRegistry creates an empty group registry
func NewGroupRegistry() *GroupRegistry {
	return &GroupRegistry{
		groups: make(map[domain.GroupID]*domain.Group),
	}
}

// Add appends a group. A group already present is left in place.
func (r *GroupRegistry) Add(group *domain.Group) {
	if group == nil {
		return
	}
	if _, exists := r.groups[group.ID]; exists {
		return
	}
	r.groups[group.ID] = group
	r.order = append(r.order, group.ID)
}

// Remove deletes the given groups and returns the ones that were present
func (r *GroupRegistry) Remove(ids ...domain.GroupID) []*domain.Group {
	var removed []*domain.Group
	for _, id := range ids {
		if g, ok := r.groups[id]; ok {
			delete(r.groups, id)
			removed = append(removed, g)
		}
	}
	if len(removed) == 0 {
		return nil
	}
	kept := r.order[:0:0]
	for _, id := range r.order {
		if _, ok := r.groups[id]; ok {
			kept = append(kept, id)
		}
	}
	r.order = kept
	return removed
}

func (r *GroupRegistry) Get(id domain.GroupID) *domain.Group {
	return r.groups[id]
}

func (r *GroupRegistry) Contains(id domain.GroupID) bool {
	_, ok := r.groups[id]
	return ok
}

// All returns the groups in creation order
func (r *GroupRegistry) All() []*domain.Group {
	out := make([]*domain.Group, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.groups[id])
	}
	return out
}

func (r *GroupRegistry) Len() int {
	return len(r.order)
}

// IndexOf returns the position of a group, or -1
func (r *GroupRegistry) IndexOf(id domain.GroupID) int {
	for i, gid := range r.order {
		if gid == id {
			return i
		}
	}
	return -1
}
