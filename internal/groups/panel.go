package groups

import (
	"lampgrid/internal/domain"
	"lampgrid/internal/logic"
)

// PanelSelection is the multi-selection of the group list. The focused group
// is the one most recently selected; single-group commands act on it.
type PanelSelection struct {
	groups   logic.GroupStore
	selected map[domain.GroupID]bool
	focused  domain.GroupID
}

// NewPanelSelection creates an empty group selection
func NewPanelSelection(groups logic.GroupStore) *PanelSelection {
	return &PanelSelection{
		groups:   groups,
		selected: make(map[domain.GroupID]bool),
	}
}

// SelectOnly makes id the only selected group
func (p *PanelSelection) SelectOnly(id domain.GroupID) {
	if !p.groups.Contains(id) {
		return
	}
	p.selected = map[domain.GroupID]bool{id: true}
	p.focused = id
}

// Toggle flips id's membership
func (p *PanelSelection) Toggle(id domain.GroupID) {
	if !p.groups.Contains(id) {
		return
	}
	if p.selected[id] {
		delete(p.selected, id)
		if p.focused == id {
			p.focused = p.lastSelected()
		}
		return
	}
	p.selected[id] = true
	p.focused = id
}

// Clear deselects every group
func (p *PanelSelection) Clear() {
	p.selected = make(map[domain.GroupID]bool)
	p.focused = ""
}

// Contains reports whether id is selected
func (p *PanelSelection) Contains(id domain.GroupID) bool {
	return p.selected[id]
}

// IDs returns the selected groups in registry order
func (p *PanelSelection) IDs() []domain.GroupID {
	var out []domain.GroupID
	for _, g := range p.groups.All() {
		if p.selected[g.ID] {
			out = append(out, g.ID)
		}
	}
	return out
}

// Focused returns the most recently selected group, or ""
func (p *PanelSelection) Focused() domain.GroupID {
	return p.focused
}

// Prune drops groups that no longer exist
func (p *PanelSelection) Prune() {
	for id := range p.selected {
		if !p.groups.Contains(id) {
			delete(p.selected, id)
		}
	}
	if p.focused != "" && !p.selected[p.focused] {
		p.focused = p.lastSelected()
	}
}

func (p *PanelSelection) lastSelected() domain.GroupID {
	ids := p.IDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[len(ids)-1]
}
