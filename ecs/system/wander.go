package system

import (
	"github.com/yumeututucosmology/RPG-sub000/ecs"
	"github.com/yumeututucosmology/RPG-sub000/ecs/component"
)

type WanderSystem struct{}

func NewWanderSystem() *WanderSystem {
	return &WanderSystem{}
}

func (s *WanderSystem) Update(w *ecs.World, dt float64) {
	ecs.ForEach(w, component.WandererComponent.Kind(), func(_ ecs.Entity, wc *component.Wanderer) {
		if wc.Wanderer != nil {
			wc.Wanderer.Update(dt)
		}
	})
}
