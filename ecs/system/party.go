package system

import (
	"github.com/yumeututucosmology/RPG-sub000/ecs"
	"github.com/yumeututucosmology/RPG-sub000/ecs/component"
)

// PartySystem reads the party gestures and reassigns intent sources before
// any actor moves.
type PartySystem struct{}

func NewPartySystem() *PartySystem {
	return &PartySystem{}
}

func (p *PartySystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.PartyComponent.Kind(), func(_ ecs.Entity, pc *component.Party) {
		if pc.Party != nil {
			pc.Party.Update(dt)
		}
	})
}
