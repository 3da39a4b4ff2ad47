package logic

import "lampgrid/internal/domain"

// LampStore provides access to the lamp registry
type LampStore interface {
	Get(id domain.LampID) *domain.Lamp
	Contains(id domain.LampID) bool
	All() []*domain.Lamp
	IDs() []domain.LampID
	Len() int
}

// GroupStore provides access to the group registry
type GroupStore interface {
	Get(id domain.GroupID) *domain.Group
	Contains(id domain.GroupID) bool
	All() []*domain.Group
	Len() int
}

// RegistryWatcher is told about lamps entering and leaving the registry.
// LampRemoved runs after the lamp is gone from the registry.
type RegistryWatcher interface {
	LampAdded(lamp *domain.Lamp)
	LampRemoved(lamp *domain.Lamp)
}
