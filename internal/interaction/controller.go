package interaction

import (
	"time"

	"github.com/rs/zerolog/log"

	"lampgrid/internal/domain"
	"lampgrid/internal/eventbus"
	"lampgrid/internal/logic"
	"lampgrid/internal/selection"
)

// DefaultSelectAllKey is the key that, with Control, selects every lamp and,
// with Control and Shift, clears the selection
const DefaultSelectAllKey = "a"

// Controller turns pointer and keyboard input into selection changes and
// lamp moves. It owns the single drag: at most one lamp is dragged, held as
// one optional id rather than a set.
type Controller struct {
	lamps     logic.LampStore
	selection *selection.Set
	bus       eventbus.EventBus
	clicks    *ClickTracker

	selectAllKey string
	dragging     domain.LampID
}

// Options configures a Controller
type Options struct {
	SelectAllKey        string
	DoubleClickInterval time.Duration
}

// NewController creates an idle controller
func NewController(lamps logic.LampStore, sel *selection.Set, bus eventbus.EventBus, opts Options) *Controller {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if opts.SelectAllKey == "" {
		opts.SelectAllKey = DefaultSelectAllKey
	}
	return &Controller{
		lamps:        lamps,
		selection:    sel,
		bus:          bus,
		clicks:       NewClickTracker(opts.DoubleClickInterval),
		selectAllKey: opts.SelectAllKey,
	}
}

// State returns the drag state
func (c *Controller) State() State {
	if c.dragging != "" {
		return StateDragging
	}
	return StateIdle
}

// Dragging returns the dragged lamp, if any
func (c *Controller) Dragging() (domain.LampID, bool) {
	return c.dragging, c.dragging != ""
}

// Feed handles a raw press, move or release and then, if the gesture
// completed a click, the synthesized click. It returns whether any of the
// events was consumed.
func (c *Controller) Feed(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerPress:
		c.clicks.Press(ev)
		return c.HandlePointer(ev)
	case PointerMove:
		c.clicks.Move(ev)
		return c.HandlePointer(ev)
	case PointerRelease:
		consumed := c.HandlePointer(ev)
		if click, ok := c.clicks.Release(ev); ok {
			consumed = c.HandlePointer(click) || consumed
		}
		return consumed
	default:
		return c.HandlePointer(ev)
	}
}

// HandlePointer applies one pointer event and reports whether it was consumed
func (c *Controller) HandlePointer(ev PointerEvent) bool {
	switch ev.Kind {
	case PointerPress:
		return c.press(ev)
	case PointerMove:
		return c.move(ev)
	case PointerRelease:
		return c.release(ev)
	case PointerClick:
		return c.click(ev)
	}
	return false
}

func (c *Controller) press(ev PointerEvent) bool {
	if c.dragging != "" {
		// a second press while dragging is ignored
		return false
	}
	if ev.Button != ButtonPrimary || ev.Target == "" || !c.lamps.Contains(ev.Target) {
		return false
	}
	c.dragging = ev.Target
	log.Debug().Str("lamp", string(ev.Target)).Msg("Drag started")
	c.bus.Publish(domain.DragChangedEvent{Lamp: ev.Target, Dragging: true})
	return true
}

func (c *Controller) move(ev PointerEvent) bool {
	if c.dragging == "" {
		return false
	}
	lamp := c.lamps.Get(c.dragging)
	if lamp == nil {
		c.CancelDrag()
		return false
	}
	lamp.MoveTo(ev.Position)
	return true
}

func (c *Controller) release(ev PointerEvent) bool {
	if ev.Button != ButtonPrimary || c.dragging == "" {
		return false
	}
	c.endDrag()
	return true
}

func (c *Controller) click(ev PointerEvent) bool {
	if ev.Target != "" {
		lamp := c.lamps.Get(ev.Target)
		if lamp == nil {
			// the lamp went away between press and click
			return false
		}
		if ev.Button == ButtonPrimary {
			switch {
			case ev.ClickCount == 2:
				logic.Toggle([]*domain.Lamp{lamp})
				log.Debug().Str("lamp", string(lamp.ID())).Bool("on", lamp.IsOn()).Msg("Lamp toggled by double click")
			case ev.Modifiers.Control:
				c.selection.ToggleMembership(lamp.ID())
			default:
				c.selection.SelectOnly(lamp.ID())
			}
			return true
		}
	}
	c.selection.Clear()
	return true
}

// HandleKey applies the select-all and clear-selection combos. Clear wins
// when both Control and Shift are held.
func (c *Controller) HandleKey(ev KeyEvent) bool {
	if ev.Code != c.selectAllKey || !ev.Modifiers.Control {
		return false
	}
	if ev.Modifiers.Shift {
		c.selection.Clear()
	} else {
		c.selection.SetAll(c.lamps.IDs())
	}
	return true
}

// CancelDrag returns to idle and forgets any pending click. Position
// updates already applied stay.
func (c *Controller) CancelDrag() {
	c.clicks.Reset()
	if c.dragging == "" {
		return
	}
	c.endDrag()
}

func (c *Controller) endDrag() {
	id := c.dragging
	c.dragging = ""
	log.Debug().Str("lamp", string(id)).Msg("Drag ended")
	c.bus.Publish(domain.DragChangedEvent{})
}

// LampAdded is part of logic.RegistryWatcher
func (c *Controller) LampAdded(*domain.Lamp) {}

// LampRemoved cancels the drag if the dragged lamp was removed
func (c *Controller) LampRemoved(lamp *domain.Lamp) {
	if c.dragging == lamp.ID() {
		c.CancelDrag()
	}
}
