package system

import (
	"github.com/yumeututucosmology/RPG-sub000/ecs"
	"github.com/yumeututucosmology/RPG-sub000/ecs/component"
	"go.uber.org/zap"
)

// SEPlayer is the audio backend.
type SEPlayer interface {
	PlaySE(name string) error
}

// SoundEmitter queues sound effects for one entity. It satisfies
// locomotion.Sounds.
type SoundEmitter struct {
	world  *ecs.World
	entity ecs.Entity
}

func NewSoundEmitter(w *ecs.World, e ecs.Entity) *SoundEmitter {
	return &SoundEmitter{world: w, entity: e}
}

func (s *SoundEmitter) PlaySE(name string) {
	s.world.Events().Push(ecs.Event{
		Type:   ecs.EventSound,
		Entity: s.entity,
		Data:   component.SoundEvent{Name: name},
	})
}

// AudioSystem drains queued sound events at the end of the tick. Each name
// plays at most once per tick.
type AudioSystem struct {
	player SEPlayer
	log    *zap.Logger
	played map[string]bool
}

func NewAudioSystem(player SEPlayer, log *zap.Logger) *AudioSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &AudioSystem{player: player, log: log, played: map[string]bool{}}
}

func (a *AudioSystem) Update(w *ecs.World, _ float64) {
	clear(a.played)
	var rest []ecs.Event
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventSound {
			rest = append(rest, evt)
			continue
		}
		se, ok := evt.Data.(component.SoundEvent)
		if !ok || a.played[se.Name] {
			continue
		}
		a.played[se.Name] = true
		if a.player == nil {
			continue
		}
		if err := a.player.PlaySE(se.Name); err != nil {
			a.log.Debug("audio: play failed", zap.String("se", se.Name), zap.Error(err))
		}
	}
	for _, evt := range rest {
		w.Events().Push(evt)
	}
}
