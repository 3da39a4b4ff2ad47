package selection

import (
	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
	"lampgrid/internal/logic"
)

// Set is the authoritative set of selected lamps. Lamp.Selected is derived
// from it; nothing else stores selection state.
//
// Every id in the set exists in the lamp store. Ids the store does not know
// are ignored by every mutation.
type Set struct {
	ids   map[domain.LampID]struct{}
	lamps logic.LampStore
	bus   eventbus.EventBus
}

// NewSet creates an empty selection over lamps
func NewSet(lamps logic.LampStore, bus eventbus.EventBus) *Set {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Set{
		ids:   make(map[domain.LampID]struct{}),
		lamps: lamps,
		bus:   bus,
	}
}

func (s *Set) publish() {
	s.bus.Publish(domain.SelectionChangedEvent{Total: len(s.ids)})
}

// Contains reports whether id is selected
func (s *Set) Contains(id domain.LampID) bool {
	_, ok := s.ids[id]
	return ok
}

// Add selects id
func (s *Set) Add(id domain.LampID) {
	if !s.lamps.Contains(id) || s.Contains(id) {
		return
	}
	s.ids[id] = struct{}{}
	s.publish()
}

// Remove deselects id
func (s *Set) Remove(id domain.LampID) {
	if !s.Contains(id) {
		return
	}
	delete(s.ids, id)
	s.publish()
}

// ToggleMembership removes id if selected, otherwise adds it
func (s *Set) ToggleMembership(id domain.LampID) {
	if s.Contains(id) {
		s.Remove(id)
		return
	}
	s.Add(id)
}

// Clear empties the selection
func (s *Set) Clear() {
	if len(s.ids) == 0 {
		return
	}
	s.ids = make(map[domain.LampID]struct{})
	s.publish()
}

// SetAll replaces the selection with ids, dropping any the store does not know
func (s *Set) SetAll(ids []domain.LampID) {
	next := make(map[domain.LampID]struct{}, len(ids))
	for _, id := range ids {
		if s.lamps.Contains(id) {
			next[id] = struct{}{}
		}
	}
	if sameMembers(s.ids, next) {
		return
	}
	s.ids = next
	s.publish()
}

// SelectOnly replaces the selection with id alone. An unknown id leaves the
// selection untouched.
func (s *Set) SelectOnly(id domain.LampID) {
	if !s.lamps.Contains(id) {
		return
	}
	s.SetAll([]domain.LampID{id})
}

// IDs returns the selected ids in lamp store order
func (s *Set) IDs() []domain.LampID {
	var out []domain.LampID
	for _, id := range s.lamps.IDs() {
		if s.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// Lamps returns the selected lamps in lamp store order
func (s *Set) Lamps() []*domain.Lamp {
	var out []*domain.Lamp
	for _, lamp := range s.lamps.All() {
		if s.Contains(lamp.ID()) {
			out = append(out, lamp)
		}
	}
	return out
}

func (s *Set) Len() int { return len(s.ids) }

func (s *Set) Empty() bool { return len(s.ids) == 0 }

// LampAdded binds the lamp's derived selected flag to this set
func (s *Set) LampAdded(lamp *domain.Lamp) {
	lamp.AttachSelection(s)
}

// LampRemoved unbinds the lamp and drops it from the selection
func (s *Set) LampRemoved(lamp *domain.Lamp) {
	lamp.AttachSelection(nil)
	s.Remove(lamp.ID())
}

func sameMembers(a, b map[domain.LampID]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}
