package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"lampgrid/internal/domain"
	"lampgrid/internal/interaction"
	"lampgrid/internal/ui/views"
)

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	layout := m.layout()
	if m.reduceGroupPanelMouse(msg, layout) {
		return nil
	}
	m.reduceCanvasMouse(msg, layout)
	return nil
}

// pointerButton maps a terminal mouse button to a pointer button. Wheel
// events have no pointer meaning.
func pointerButton(b tea.MouseButton) (interaction.Button, bool) {
	switch b {
	case tea.MouseButtonNone:
		return interaction.ButtonNone, true
	case tea.MouseButtonLeft:
		return interaction.ButtonPrimary, true
	case tea.MouseButtonRight:
		return interaction.ButtonSecondary, true
	case tea.MouseButtonMiddle, tea.MouseButtonBackward, tea.MouseButtonForward:
		return interaction.ButtonOther, true
	default:
		return interaction.ButtonNone, false
	}
}

func modifiers(msg tea.MouseMsg) interaction.Modifiers {
	return interaction.Modifiers{Control: msg.Ctrl, Shift: msg.Shift}
}

func (m *Model) reduceGroupPanelMouse(msg tea.MouseMsg, layout views.Layout) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	if m.coord.Controller.State() != interaction.StateIdle {
		return false
	}
	index, ok := layout.GroupRowAt(msg.X, msg.Y)
	if !ok {
		return false
	}
	groups := m.coord.AllGroups()
	if index >= len(groups) {
		return true
	}
	id := groups[index].ID
	if msg.Ctrl {
		m.coord.GroupPanel.Toggle(id)
	} else {
		m.coord.GroupPanel.SelectOnly(id)
	}
	m.groupCursor = index
	m.refreshToolbar()
	return true
}

func (m *Model) reduceCanvasMouse(msg tea.MouseMsg, layout views.Layout) bool {
	button, ok := pointerButton(msg.Button)
	if !ok {
		return false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if !layout.InCanvas(msg.X, msg.Y) {
			return false
		}
		p := layout.ToCanvas(msg.X, msg.Y)
		m.trackPointer(p)
		m.pressed = button
		return m.coord.Controller.Feed(interaction.PointerEvent{
			Kind:      interaction.PointerPress,
			Button:    button,
			Target:    m.targetAt(p),
			Modifiers: modifiers(msg),
			Position:  p,
		})

	case tea.MouseActionMotion:
		if m.pressed == interaction.ButtonNone {
			return false
		}
		p := m.clampToCanvas(layout, msg.X, msg.Y)
		m.trackPointer(p)
		return m.coord.Controller.Feed(interaction.PointerEvent{
			Kind:      interaction.PointerMove,
			Button:    m.pressed,
			Modifiers: modifiers(msg),
			Position:  p,
		})

	case tea.MouseActionRelease:
		// Some terminals do not report which button was released
		if button == interaction.ButtonNone {
			button = m.pressed
		}
		m.pressed = interaction.ButtonNone
		if button == interaction.ButtonNone {
			return false
		}
		p := m.clampToCanvas(layout, msg.X, msg.Y)
		var target domain.LampID
		if layout.InCanvas(msg.X, msg.Y) {
			target = m.targetAt(p)
		}
		return m.coord.Controller.Feed(interaction.PointerEvent{
			Kind:      interaction.PointerRelease,
			Button:    button,
			Target:    target,
			Modifiers: modifiers(msg),
			Position:  p,
		})
	}
	return false
}

// abandonGesture drops the pressed button and any drag in progress
func (m *Model) abandonGesture() {
	m.pressed = interaction.ButtonNone
	m.coord.Controller.CancelDrag()
}

func (m *Model) targetAt(p domain.Point) domain.LampID {
	if lamp := m.coord.LampAt(p); lamp != nil {
		return lamp.ID()
	}
	return ""
}

func (m *Model) trackPointer(p domain.Point) {
	m.pointer = p
	m.hasPointer = true
}

// clampToCanvas converts a cell to a canvas point, pinned to the canvas
// edges so a dragged lamp stays visible
func (m *Model) clampToCanvas(layout views.Layout, x, y int) domain.Point {
	ox, oy := layout.CanvasOrigin()
	w, h := layout.CanvasSize()
	x = clamp(x, ox, ox+w-1)
	y = clamp(y, oy, oy+h-1)
	return layout.ToCanvas(x, y)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
