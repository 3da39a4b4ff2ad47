package groups

import (
	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
	"lampgrid/internal/logic"
)

// InvalidationListener is told that something changed, not what.
// Implementations must be comparable (usually a pointer) because listeners
// are kept as a set.
type InvalidationListener interface {
	Invalidated(source any)
}

// ChangeObservable watches the lamp registry and fires one invalidation
// whenever any watched lamp's group changes. Lamps are subscribed when they
// enter the registry and unsubscribed when they leave it.
type ChangeObservable struct {
	bus       eventbus.EventBus
	listeners []InvalidationListener
	subs      map[domain.LampID]func()
	unwatch   func()

	batchDepth int
	pending    bool
}

// NewChangeObservable starts watching lamps, including those already present
func NewChangeObservable(lamps *logic.LampRegistry, bus eventbus.EventBus) *ChangeObservable {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	o := &ChangeObservable{
		bus:  bus,
		subs: make(map[domain.LampID]func()),
	}
	o.unwatch = lamps.Watch(o)
	return o
}

// LampAdded subscribes to the lamp's group changes
func (o *ChangeObservable) LampAdded(lamp *domain.Lamp) {
	if _, ok := o.subs[lamp.ID()]; ok {
		return
	}
	o.subs[lamp.ID()] = lamp.OnGroupChange(o.lampChanged)
}

// LampRemoved drops the lamp's subscription
func (o *ChangeObservable) LampRemoved(lamp *domain.Lamp) {
	if unsub, ok := o.subs[lamp.ID()]; ok {
		unsub()
		delete(o.subs, lamp.ID())
	}
}

func (o *ChangeObservable) lampChanged(*domain.Lamp) {
	if o.batchDepth > 0 {
		o.pending = true
		return
	}
	o.fire()
}

func (o *ChangeObservable) fire() {
	listeners := make([]InvalidationListener, len(o.listeners))
	copy(listeners, o.listeners)
	for _, l := range listeners {
		l.Invalidated(o)
	}
	o.bus.Publish(domain.GroupMembershipChangedEvent{})
}

// AddListener registers l; adding the same listener twice is a no-op
func (o *ChangeObservable) AddListener(l InvalidationListener) {
	for _, existing := range o.listeners {
		if existing == l {
			return
		}
	}
	o.listeners = append(o.listeners, l)
}

// RemoveListener unregisters l
func (o *ChangeObservable) RemoveListener(l InvalidationListener) {
	for i, existing := range o.listeners {
		if existing == l {
			o.listeners = append(o.listeners[:i:i], o.listeners[i+1:]...)
			return
		}
	}
}

// Batch runs fn and coalesces every group change it causes into a single
// invalidation fired after fn returns
func (o *ChangeObservable) Batch(fn func()) {
	o.batchDepth++
	defer func() {
		o.batchDepth--
		if o.batchDepth == 0 && o.pending {
			o.pending = false
			o.fire()
		}
	}()
	fn()
}

// Close stops watching the registry and every lamp
func (o *ChangeObservable) Close() {
	if o.unwatch != nil {
		o.unwatch()
		o.unwatch = nil
	}
	for id, unsub := range o.subs {
		unsub()
		delete(o.subs, id)
	}
}

// ListenerCount returns the number of registered listeners
func (o *ChangeObservable) ListenerCount() int { return len(o.listeners) }

// WatchedCount returns the number of lamps currently subscribed
func (o *ChangeObservable) WatchedCount() int { return len(o.subs) }
