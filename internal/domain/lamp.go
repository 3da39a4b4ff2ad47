package domain

// Lamp is a toggleable, positionable, optionally grouped entity.
//
// Whether a lamp is selected is never stored on the lamp: Selected asks the
// selection it is attached to.
type Lamp struct {
	id       LampID
	position Point
	on       bool
	group    GroupID

	selection SelectionView

	nextSub       int
	groupWatchers map[int]func(*Lamp)
}

// NewLamp creates an unattached lamp that is off and ungrouped
func NewLamp(position Point) *Lamp {
	return &Lamp{
		id:            NewLampID(),
		position:      position,
		groupWatchers: make(map[int]func(*Lamp)),
	}
}

func (l *Lamp) ID() LampID { return l.id }

func (l *Lamp) Position() Point { return l.position }

// MoveTo sets the lamp's position
func (l *Lamp) MoveTo(p Point) {
	l.position = p
}

func (l *Lamp) IsOn() bool { return l.on }

// SetOn switches the lamp on or off
func (l *Lamp) SetOn(on bool) {
	l.on = on
}

// Group returns the lamp's group id, empty when ungrouped
func (l *Lamp) Group() GroupID { return l.group }

// HasGroup reports whether the lamp belongs to any group
func (l *Lamp) HasGroup() bool { return l.group != "" }

// GroupLookup reports whether a group is registered
type GroupLookup interface {
	Contains(id GroupID) bool
}

// SetGroup changes the lamp's group and notifies group watchers if the value
// actually changed. A non-empty group must be known to groups, otherwise the
// lamp is left alone and SetGroup returns false.
func (l *Lamp) SetGroup(group GroupID, groups GroupLookup) bool {
	if group != "" && (groups == nil || !groups.Contains(group)) {
		return false
	}
	if l.group == group {
		return true
	}
	l.group = group

	// Copy so a watcher may unsubscribe while being notified
	watchers := make([]func(*Lamp), 0, len(l.groupWatchers))
	for _, w := range l.groupWatchers {
		watchers = append(watchers, w)
	}
	for _, w := range watchers {
		w(l)
	}
	return true
}

// OnGroupChange registers fn to run after every group change. The returned
// function removes the registration.
func (l *Lamp) OnGroupChange(fn func(*Lamp)) func() {
	id := l.nextSub
	l.nextSub++
	l.groupWatchers[id] = fn
	return func() {
		delete(l.groupWatchers, id)
	}
}

// GroupWatcherCount returns the number of live group-change registrations
func (l *Lamp) GroupWatcherCount() int {
	return len(l.groupWatchers)
}

// Selected is derived: true only while the lamp is attached to a selection
// that contains it
func (l *Lamp) Selected() bool {
	return l.selection != nil && l.selection.Contains(l.id)
}

// AttachSelection binds the derived selected flag to a selection view.
// Passing nil detaches it.
func (l *Lamp) AttachSelection(sel SelectionView) {
	l.selection = sel
}
