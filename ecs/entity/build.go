package entity

import (
	"errors"
	"fmt"
	"image/color"
	"math/rand"

	"github.com/yumeututucosmology/RPG-sub000/ai"
	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/ecs"
	"github.com/yumeututucosmology/RPG-sub000/ecs/component"
	"github.com/yumeututucosmology/RPG-sub000/ecs/system"
	"github.com/yumeututucosmology/RPG-sub000/input"
	"github.com/yumeututucosmology/RPG-sub000/levels"
	"github.com/yumeututucosmology/RPG-sub000/locomotion"
	"github.com/yumeututucosmology/RPG-sub000/party"
	"github.com/yumeututucosmology/RPG-sub000/prefabs"
	"github.com/yumeututucosmology/RPG-sub000/stage"
	"go.uber.org/zap"
)

var (
	ErrNoStage = errors.New("entity: stage is required")
	ErrNoCast  = errors.New("entity: cast is required")
)

// Deps is everything the builders share. Tuning values are held by pointer
// so a hot reload that overwrites them reaches every actor.
type Deps struct {
	Stage  *stage.Stage
	Tuning *prefabs.TuningSpec
	Cast   *prefabs.CastSpec
	Input  *input.State
	Rand   *rand.Rand
	Log    *zap.Logger

	// LoadScript resolves an NPC script name. Nil disables scripts.
	LoadScript func(name string) ([]byte, error)
}

func (d *Deps) check() error {
	if d.Stage == nil {
		return ErrNoStage
	}
	if d.Cast == nil {
		return ErrNoCast
	}
	if d.Tuning == nil {
		t := prefabs.DefaultTuningSpec()
		d.Tuning = &t
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(1))
	}
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return nil
}

// BuildLevel populates w with the party and every NPC of lvl.
func BuildLevel(w *ecs.World, lvl *levels.Level, deps *Deps) error {
	if lvl == nil {
		return stage.ErrNilLevel
	}
	if _, err := BuildParty(w, lvl, deps); err != nil {
		return err
	}
	for _, npc := range lvl.NPCs {
		if _, err := NewWanderer(w, npc, deps); err != nil {
			return err
		}
	}
	return nil
}

// BuildParty creates both party members and the singleton that manages
// them. Members missing a start point in the level start beside the spawn.
func BuildParty(w *ecs.World, lvl *levels.Level, deps *Deps) (ecs.Entity, error) {
	if err := deps.check(); err != nil {
		return 0, err
	}
	if len(deps.Cast.Party) != 2 {
		return 0, fmt.Errorf("entity: party needs 2 members, got %d", len(deps.Cast.Party))
	}

	var members [2]*locomotion.Controller
	for slot, spec := range deps.Cast.Party {
		start := deps.Stage.Spawn.Add(common.Vec3{X: float64(slot)})
		if slot < len(lvl.Party) {
			start = stage.PointVec(lvl.Party[slot])
		}
		_, ctrl, err := NewPartyMember(w, spec, slot, start, deps)
		if err != nil {
			return 0, err
		}
		members[slot] = ctrl
	}

	p := party.New(deps.Input, members[0], members[1], &deps.Tuning.Party, &deps.Tuning.Follower, deps.Log)
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.PartyComponent.Kind(), &component.Party{Party: p}); err != nil {
		return 0, fmt.Errorf("entity: party: %w", err)
	}
	return e, nil
}

// NewPartyMember creates one player character. Its intent source is set by
// the party on construction.
func NewPartyMember(w *ecs.World, spec prefabs.ActorSpec, slot int, start common.Vec3, deps *Deps) (ecs.Entity, *locomotion.Controller, error) {
	if err := deps.check(); err != nil {
		return 0, nil, err
	}
	e := ecs.CreateEntity(w)
	transform := &component.Transform{Position: start}
	weapon := &component.Weapon{}

	ctrl := locomotion.NewController(deps.Stage, &deps.Tuning.Locomotion, start, nil, locomotion.Options{
		Name:   spec.Name,
		Proxy:  transform,
		Prop:   weapon,
		Sounds: system.NewSoundEmitter(w, e),
		Logger: deps.Log,
	})

	err := errors.Join(
		ecs.Add(w, e, component.TransformComponent.Kind(), transform),
		ecs.Add(w, e, component.WeaponComponent.Kind(), weapon),
		ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{Controller: ctrl}),
		ecs.Add(w, e, component.PartyMemberComponent.Kind(), &component.PartyMember{Slot: slot}),
		ecs.Add(w, e, component.AppearanceComponent.Kind(), appearance(spec, nil)),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("entity: party member %s: %w", spec.Name, err)
	}
	return e, ctrl, nil
}

// NewWanderer creates a background NPC. A script that fails to load or
// compile leaves the NPC on random decisions.
func NewWanderer(w *ecs.World, npc levels.NPC, deps *Deps) (ecs.Entity, error) {
	if err := deps.check(); err != nil {
		return 0, err
	}

	tuning := &deps.Tuning.Wander
	if npc.Radius > 0 && npc.Radius != tuning.HomeRadius {
		own := *tuning
		own.HomeRadius = npc.Radius
		tuning = &own
	}

	var decider ai.Decider = ai.NewRandomDecider(deps.Rand, tuning)
	if npc.Script != "" && deps.LoadScript != nil {
		if d, err := scriptDecider(npc, tuning, deps); err != nil {
			deps.Log.Warn("npc script unavailable, using random decisions",
				zap.String("npc", npc.Name), zap.String("script", npc.Script), zap.Error(err))
		} else {
			decider = d
		}
	}

	spec := deps.Cast.NPC
	if npc.Name != "" {
		spec.Name = npc.Name
	}
	var override color.Color
	if npc.Color != "" {
		c, err := prefabs.ParseColor(npc.Color)
		if err != nil {
			return 0, fmt.Errorf("entity: npc %s: %w", npc.Name, err)
		}
		override = c
	}

	e := ecs.CreateEntity(w)
	transform := &component.Transform{}
	wanderer := ai.NewWanderer(spec.Name, deps.Stage, tuning, stage.PointVec(npc.Home), decider, transform)

	err := errors.Join(
		ecs.Add(w, e, component.TransformComponent.Kind(), transform),
		ecs.Add(w, e, component.WandererComponent.Kind(), &component.Wanderer{Wanderer: wanderer}),
		ecs.Add(w, e, component.AppearanceComponent.Kind(), appearance(spec, override)),
	)
	if err != nil {
		return 0, fmt.Errorf("entity: npc %s: %w", spec.Name, err)
	}
	return e, nil
}

func scriptDecider(npc levels.NPC, tuning *ai.WanderTuning, deps *Deps) (ai.Decider, error) {
	src, err := deps.LoadScript(npc.Script)
	if err != nil {
		return nil, err
	}
	return ai.NewScriptDecider(npc.Script, src, deps.Rand, tuning, deps.Log)
}

func appearance(spec prefabs.ActorSpec, override color.Color) *component.Appearance {
	a := &component.Appearance{Label: spec.Name, Color: color.White, Size: spec.Size}
	if spec.Color != nil && spec.Color.Color != nil {
		a.Color = spec.Color.Color
	}
	if override != nil {
		a.Color = override
	}
	if a.Size <= 0 {
		a.Size = 0.8
	}
	return a
}

