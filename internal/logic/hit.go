package logic

import "lampgrid/internal/domain"

// LampAt returns the topmost lamp whose hit circle contains p, or nil.
// Later lamps are drawn above earlier ones, so the search runs backwards.
func LampAt(lamps []*domain.Lamp, p domain.Point, radius float64) *domain.Lamp {
	for i := len(lamps) - 1; i >= 0; i-- {
		c := lamps[i].Position()
		dx := p.X - c.X
		dy := p.Y - c.Y
		if dx*dx+dy*dy <= radius*radius {
			return lamps[i]
		}
	}
	return nil
}
