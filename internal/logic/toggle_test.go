package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lampgrid/internal/domain"
)

func lampsWithState(states ...bool) []*domain.Lamp {
	out := make([]*domain.Lamp, len(states))
	for i, on := range states {
		out[i] = domain.NewLamp(domain.Point{})
		out[i].SetOn(on)
	}
	return out
}

func states(lamps []*domain.Lamp) []bool {
	out := make([]bool, len(lamps))
	for i, l := range lamps {
		out[i] = l.IsOn()
	}
	return out
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name     string
		initial  []bool
		expected []bool
	}{
		{name: "mixed/converges_on", initial: []bool{true, false}, expected: []bool{true, true}},
		{name: "all_on/turns_off", initial: []bool{true, true, true}, expected: []bool{false, false, false}},
		{name: "all_off/turns_on", initial: []bool{false, false}, expected: []bool{true, true}},
		{name: "single_on", initial: []bool{true}, expected: []bool{false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lamps := lampsWithState(tt.initial...)
			Toggle(lamps)
			assert.Equal(t, tt.expected, states(lamps))
		})
	}
}

func TestToggleOscillatesOnceUniform(t *testing.T) {
	lamps := lampsWithState(true, false)

	assert.True(t, Toggle(lamps))
	assert.Equal(t, []bool{true, true}, states(lamps))
	assert.False(t, Toggle(lamps))
	assert.Equal(t, []bool{false, false}, states(lamps))
	assert.True(t, Toggle(lamps))
}

func TestToggleEmpty(t *testing.T) {
	assert.False(t, Toggle(nil))
}

func TestLampAt(t *testing.T) {
	a := domain.NewLamp(domain.Point{X: 0, Y: 0})
	b := domain.NewLamp(domain.Point{X: 1, Y: 0})
	lamps := []*domain.Lamp{a, b}

	assert.Same(t, b, LampAt(lamps, domain.Point{X: 0.5}, 2), "topmost lamp wins")
	assert.Same(t, a, LampAt(lamps, domain.Point{X: -1.5}, 2))
	assert.Nil(t, LampAt(lamps, domain.Point{X: 10, Y: 10}, 2))
}
