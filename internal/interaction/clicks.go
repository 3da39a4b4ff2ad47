package interaction

import (
	"time"

	"lampgrid/internal/domain"
)

// DefaultDoubleClickInterval is the longest gap between two clicks that still
// counts as a double click
const DefaultDoubleClickInterval = 400 * time.Millisecond

// ClickTracker turns press/release pairs into click events. A press followed
// by any movement before the release is a drag, not a click. Consecutive
// clicks on the same target within the interval raise ClickCount.
type ClickTracker struct {
	interval time.Duration
	now      func() time.Time

	pressed  bool
	moved    bool
	press    PointerEvent
	lastAt   time.Time
	lastHit  domain.LampID
	lastBtn  Button
	count    int
	hasClick bool
}

// NewClickTracker creates a tracker; a zero interval uses the default
func NewClickTracker(interval time.Duration) *ClickTracker {
	if interval <= 0 {
		interval = DefaultDoubleClickInterval
	}
	return &ClickTracker{interval: interval, now: time.Now}
}

// Press starts a potential click
func (t *ClickTracker) Press(ev PointerEvent) {
	t.pressed = true
	t.moved = false
	t.press = ev
}

// Move marks the gesture as a drag once the pointer leaves the press point
func (t *ClickTracker) Move(ev PointerEvent) {
	if t.pressed && ev.Position != t.press.Position {
		t.moved = true
	}
}

// Release ends the gesture and returns the click it completed, if any
func (t *ClickTracker) Release(ev PointerEvent) (PointerEvent, bool) {
	if !t.pressed {
		return PointerEvent{}, false
	}
	t.pressed = false
	if t.moved || ev.Target != t.press.Target {
		t.hasClick = false
		return PointerEvent{}, false
	}
	if ev.Button != ButtonNone && ev.Button != t.press.Button {
		return PointerEvent{}, false
	}

	now := t.now()
	if t.hasClick && t.lastHit == t.press.Target && t.lastBtn == t.press.Button && now.Sub(t.lastAt) <= t.interval {
		t.count++
	} else {
		t.count = 1
	}
	t.hasClick = true
	t.lastAt = now
	t.lastHit = t.press.Target
	t.lastBtn = t.press.Button

	return PointerEvent{
		Kind:       PointerClick,
		Button:     t.press.Button,
		ClickCount: t.count,
		Target:     t.press.Target,
		Modifiers:  ev.Modifiers,
		Position:   ev.Position,
	}, true
}

// Reset forgets any gesture in progress
func (t *ClickTracker) Reset() {
	t.pressed = false
	t.moved = false
	t.hasClick = false
	t.count = 0
}
