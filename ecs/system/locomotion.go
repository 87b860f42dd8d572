package system

import (
	"github.com/yumeututucosmology/RPG-sub000/ecs"
	"github.com/yumeututucosmology/RPG-sub000/ecs/component"
	"github.com/yumeututucosmology/RPG-sub000/locomotion"
)

// LocomotionSystem steps every actor. The active party member goes first
// and its partner second, so a follower reads where its leader is this tick.
type LocomotionSystem struct {
	order []*locomotion.Controller
}

func NewLocomotionSystem() *LocomotionSystem {
	return &LocomotionSystem{}
}

func (l *LocomotionSystem) Update(w *ecs.World, dt float64) {
	l.order = l.order[:0]

	var first, second *locomotion.Controller
	if _, pc, ok := ecs.First(w, component.PartyComponent.Kind()); ok && pc.Party != nil {
		first, second = pc.Party.Active(), pc.Party.Partner()
		l.order = append(l.order, first, second)
	}

	ecs.ForEach(w, component.ActorComponent.Kind(), func(_ ecs.Entity, a *component.Actor) {
		if a.Controller == nil || a.Controller == first || a.Controller == second {
			return
		}
		l.order = append(l.order, a.Controller)
	})

	for _, c := range l.order {
		c.Update(dt)
	}
}
