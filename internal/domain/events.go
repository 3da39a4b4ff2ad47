package domain

// EventType represents the topic of a domain event
type EventType string

// Event types. Every event is an invalidation signal: receivers re-query
// state instead of trusting a payload.
const (
	EventSelectionChanged       EventType = "SelectionChanged"
	EventGroupMembershipChanged EventType = "GroupMembershipChanged"
	EventLampsChanged           EventType = "LampsChanged"
	EventGroupsChanged          EventType = "GroupsChanged"
	EventDragChanged            EventType = "DragChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted after any selection mutation that changed
// membership
type SelectionChangedEvent struct {
	Total int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// GroupMembershipChangedEvent is emitted when some lamp's group changed
type GroupMembershipChangedEvent struct{}

func (e GroupMembershipChangedEvent) Type() EventType { return EventGroupMembershipChanged }

// LampsChangedEvent is emitted when lamps were added or removed
type LampsChangedEvent struct {
	Added   []LampID
	Removed []LampID
}

func (e LampsChangedEvent) Type() EventType { return EventLampsChanged }

// GroupsChangedEvent is emitted when groups were added, removed, renamed or
// recolored
type GroupsChangedEvent struct{}

func (e GroupsChangedEvent) Type() EventType { return EventGroupsChanged }

// DragChangedEvent is emitted when a drag starts or ends
type DragChangedEvent struct {
	Lamp     LampID // empty when the drag ended
	Dragging bool
}

func (e DragChangedEvent) Type() EventType { return EventDragChanged }
