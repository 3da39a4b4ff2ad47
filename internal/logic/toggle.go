package logic

import "lampgrid/internal/domain"

// Toggle converges lamps to one uniform state: if every lamp is on they all
// go off, otherwise they all go on. It returns the state that was applied.
// An empty set is left alone and reports false.
func Toggle(lamps []*domain.Lamp) bool {
	if len(lamps) == 0 {
		return false
	}

	allOn := true
	for _, lamp := range lamps {
		if !lamp.IsOn() {
			allOn = false
			break
		}
	}

	newState := !allOn
	for _, lamp := range lamps {
		lamp.SetOn(newState)
	}
	return newState
}
