package interaction

import "lampgrid/internal/domain"

// Button identifies the pointer button of an event
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
	ButtonOther
)

func (b Button) String() string {
	switch b {
	case ButtonPrimary:
		return "primary"
	case ButtonSecondary:
		return "secondary"
	case ButtonOther:
		return "other"
	default:
		return "none"
	}
}

// Modifiers are the modifier keys held during an event
type Modifiers struct {
	Control bool
	Shift   bool
}

// PointerKind is the phase of a pointer event
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMove
	PointerRelease
	PointerClick
)

func (k PointerKind) String() string {
	switch k {
	case PointerPress:
		return "press"
	case PointerMove:
		return "move"
	case PointerRelease:
		return "release"
	case PointerClick:
		return "click"
	default:
		return "unknown"
	}
}

// PointerEvent is one pointer input. Target is empty when the pointer is over
// bare canvas.
type PointerEvent struct {
	Kind       PointerKind
	Button     Button
	ClickCount int
	Target     domain.LampID
	Modifiers  Modifiers
	Position   domain.Point
}

// KeyEvent is a key press with its modifiers. Code is the lower-case key
// name, e.g. "a".
type KeyEvent struct {
	Code      string
	Modifiers Modifiers
}

// State is the drag state machine's state
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	if s == StateDragging {
		return "dragging"
	}
	return "idle"
}
