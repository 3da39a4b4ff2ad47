package domain

import "github.com/google/uuid"

// LampID identifies a lamp for its whole lifetime
type LampID string

// GroupID identifies a group; the zero value means "no group"
type GroupID string

// NewLampID returns a fresh opaque lamp identity
func NewLampID() LampID {
	return LampID(uuid.NewString())
}

// NewGroupID returns a fresh opaque group identity
func NewGroupID() GroupID {
	return GroupID(uuid.NewString())
}

// Point is a position on the canvas
type Point struct {
	X float64
	Y float64
}

// Color is a display color in "#rrggbb" form
type Color string

// Default group values
const (
	DefaultGroupName        = "New Group"
	DefaultGroupColor Color = "#808080"
)

// Group is a named, colored bucket of lamps. It holds no reference to its
// members; membership lives on the lamp.
type Group struct {
	ID    GroupID
	Name  string
	Color Color
}

// NewGroup creates a group with a fresh identity
func NewGroup(name string, color Color) *Group {
	return &Group{
		ID:    NewGroupID(),
		Name:  name,
		Color: color,
	}
}

// SelectionView answers whether a lamp is part of the current selection
type SelectionView interface {
	Contains(id LampID) bool
}
