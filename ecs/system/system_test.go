package system

import (
	"errors"
	"testing"

	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/ecs"
	"github.com/yumeututucosmology/RPG-sub000/ecs/component"
	"github.com/yumeututucosmology/RPG-sub000/input"
	"github.com/yumeututucosmology/RPG-sub000/locomotion"
	"github.com/yumeututucosmology/RPG-sub000/party"
	"github.com/yumeututucosmology/RPG-sub000/stage"
)

type fakePlayer struct {
	played []string
	err    error
}

func (f *fakePlayer) PlaySE(name string) error {
	f.played = append(f.played, name)
	return f.err
}

func TestAudioSystemPlaysEachSoundOncePerTick(t *testing.T) {
	w := ecs.NewWorld()
	a := NewSoundEmitter(w, ecs.CreateEntity(w))
	b := NewSoundEmitter(w, ecs.CreateEntity(w))
	player := &fakePlayer{err: errors.New("device busy")}
	sys := NewAudioSystem(player, nil)

	a.PlaySE(locomotion.SEFootstep)
	b.PlaySE(locomotion.SEFootstep)
	b.PlaySE(locomotion.SEJump)
	w.Events().Push(ecs.Event{Type: "other"})

	sys.Update(w, 1.0/60)

	if len(player.played) != 2 || player.played[0] != locomotion.SEFootstep || player.played[1] != locomotion.SEJump {
		t.Fatalf("played = %v", player.played)
	}
	if w.Events().Len() != 1 {
		t.Fatalf("non-sound events should stay queued, have %d", w.Events().Len())
	}

	// The next tick may play the same name again.
	w.Events().Drain()
	a.PlaySE(locomotion.SEFootstep)
	sys.Update(w, 1.0/60)
	if len(player.played) != 3 {
		t.Fatalf("expected footstep to replay on a new tick, played = %v", player.played)
	}
}

type scriptedPoller struct {
	press []input.Key
}

func (p *scriptedPoller) Poll(st *input.State) {
	for _, k := range p.press {
		st.Press(k)
	}
	p.press = nil
}

func TestInputSystemRotatesBeforePolling(t *testing.T) {
	st := input.NewState(nil)
	poller := &scriptedPoller{press: []input.Key{input.KeyD}}
	sys := NewInputSystem(st, poller)
	w := ecs.NewWorld()

	sys.Update(w, 1.0/60)
	if !st.IsJustPressed(input.ActionMoveRight) {
		t.Fatalf("press should be visible as an edge on its own tick")
	}

	sys.Update(w, 1.0/60)
	if st.IsJustPressed(input.ActionMoveRight) || !st.IsDown(input.ActionMoveRight) {
		t.Fatalf("held key should be down without an edge on the next tick")
	}
}

type recorder struct {
	order *[]string
}

func (r recorder) Intent(self *locomotion.Controller, _ float64) locomotion.Intent {
	*r.order = append(*r.order, self.Name())
	return locomotion.Intent{}
}

func TestLocomotionSystemUpdatesActiveMemberFirst(t *testing.T) {
	st := stage.New()
	st.AddObstacle(0, 0, 50, 50, 0)
	w := ecs.NewWorld()

	newActor := func(name string, x float64) *locomotion.Controller {
		c := locomotion.NewController(st, nil, common.Vec3{X: x}, nil, locomotion.Options{Name: name})
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.ActorComponent.Kind(), &component.Actor{Controller: c}); err != nil {
			t.Fatalf("add actor: %v", err)
		}
		return c
	}
	// Registration order deliberately differs from update order.
	bystander := newActor("bystander", -3)
	partner := newActor("partner", 1)
	active := newActor("active", 0)

	p := party.New(nil, active, partner, nil, nil, nil)
	if err := ecs.Add(w, ecs.CreateEntity(w), component.PartyComponent.Kind(), &component.Party{Party: p}); err != nil {
		t.Fatalf("add party: %v", err)
	}

	var order []string
	for _, c := range []*locomotion.Controller{bystander, partner, active} {
		c.SetSource(recorder{order: &order})
	}

	NewLocomotionSystem().Update(w, 1.0/60)

	want := []string{"active", "partner", "bystander"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}
