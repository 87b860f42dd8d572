package party

import (
	"testing"
	"time"

	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/input"
	"github.com/yumeututucosmology/RPG-sub000/locomotion"
	"github.com/yumeututucosmology/RPG-sub000/stage"
)

const tick = 1.0 / 60

type harness struct {
	now   time.Time
	in    *input.State
	party *Party
	a, b  *locomotion.Controller
}

func newHarness(t *testing.T, st *stage.Stage, a, b common.Vec3) *harness {
	t.Helper()
	h := &harness{now: time.Unix(1000, 0)}
	h.in = input.NewState(nil, input.WithClock(func() time.Time { return h.now }))
	tuning := locomotion.DefaultTuning()
	h.a = locomotion.NewController(st, &tuning, a, nil, locomotion.Options{Name: "a"})
	h.b = locomotion.NewController(st, &tuning, b, nil, locomotion.Options{Name: "b"})
	h.party = New(h.in, h.a, h.b, nil, nil, nil)
	return h
}

// step runs one frame in the host's order.
func (h *harness) step(press, release []input.Key) {
	h.in.Rotate()
	for _, k := range release {
		h.in.Release(k)
	}
	for _, k := range press {
		h.in.Press(k)
	}
	h.party.Update(tick)
	h.party.Active().Update(tick)
	h.party.Partner().Update(tick)
	h.now = h.now.Add(time.Second / 60)
}

func (h *harness) run(n int) {
	for i := 0; i < n; i++ {
		h.step(nil, nil)
	}
}

func flat() *stage.Stage {
	s := stage.New()
	s.AddObstacle(0, 0, 100, 100, 0)
	return s
}

func TestHoldTogglesSeparation(t *testing.T) {
	h := newHarness(t, flat(), common.Vec3{}, common.Vec3{X: 1})

	if c, _ := h.party.Control(h.b); c != Following {
		t.Fatalf("partner should start following, got %v", c)
	}

	h.step([]input.Key{input.KeyQ}, nil)
	h.run(20)
	if h.party.Mode() != Together {
		t.Fatalf("short hold toggled: %v", h.party.Mode())
	}
	h.run(30)
	if h.party.Mode() != Separating {
		t.Fatalf("expected separating after a long hold, got %v", h.party.Mode())
	}

	// Keep holding: one hold toggles once.
	h.run(180)
	if h.party.Mode() != Separated {
		t.Fatalf("expected separated, got %v", h.party.Mode())
	}
	if c, _ := h.party.Control(h.b); c != Holding {
		t.Fatalf("partner should hold position, got %v", c)
	}

	// The active member walks away; the partner stays put.
	before := h.b.State().Position
	h.step([]input.Key{input.KeyD}, []input.Key{input.KeyQ})
	h.run(60)
	if h.b.State().Position != before {
		t.Fatalf("separated partner moved: %+v -> %+v", before, h.b.State().Position)
	}
	if h.a.State().Position.X < 3 {
		t.Fatalf("active member did not move: %+v", h.a.State().Position)
	}
}

func TestRejoinWalksBack(t *testing.T) {
	h := newHarness(t, flat(), common.Vec3{}, common.Vec3{X: 1})
	h.party.setMode(Separated, 0)
	h.party.assign()

	h.step([]input.Key{input.KeyD}, nil)
	h.run(120)
	h.step(nil, []input.Key{input.KeyD})

	h.step([]input.Key{input.KeyQ}, nil)
	h.run(40)
	if h.party.Mode() != Rejoining {
		t.Fatalf("expected rejoining, got %v", h.party.Mode())
	}
	if c, _ := h.party.Control(h.b); c != Following {
		t.Fatalf("rejoining partner should follow, got %v", c)
	}

	h.step(nil, []input.Key{input.KeyQ})
	for i := 0; i < 300 && h.party.Mode() == Rejoining; i++ {
		h.step(nil, nil)
	}
	if h.party.Mode() != Together {
		t.Fatalf("expected to rejoin, got %v", h.party.Mode())
	}
	if d := common.PlanarDistance(h.a.State().Position, h.b.State().Position); d > 1.5 {
		t.Fatalf("rejoined at distance %v", d)
	}
}

func TestRejoinTimeoutTeleports(t *testing.T) {
	st := flat()
	// The partner is boxed in by walls it cannot step over.
	st.AddObstacle(10, -2, 6, 1, 4)
	st.AddObstacle(10, 2, 6, 1, 4)
	st.AddObstacle(7.5, 0, 1, 5, 4)
	h := newHarness(t, st, common.Vec3{}, common.Vec3{X: 10})
	h.party.setMode(Separated, 0)
	h.party.assign()

	h.step([]input.Key{input.KeyQ}, nil)
	h.run(40)
	if h.party.Mode() != Rejoining {
		t.Fatalf("expected rejoining, got %v", h.party.Mode())
	}
	h.step(nil, []input.Key{input.KeyQ})

	for i := 0; i < 400 && h.party.Mode() == Rejoining; i++ {
		h.step(nil, nil)
	}
	if h.party.Mode() != Together {
		t.Fatalf("rejoin never finished: %v", h.party.Mode())
	}
	if d := common.PlanarDistance(h.a.State().Position, h.b.State().Position); d > 0.5 {
		t.Fatalf("partner should have been brought to the leader, distance %v", d)
	}
}

func TestSwitchCharacter(t *testing.T) {
	h := newHarness(t, flat(), common.Vec3{}, common.Vec3{X: 1})

	h.step([]input.Key{input.KeyTab}, nil)
	if h.party.Active() != h.b || h.party.Partner() != h.a {
		t.Fatalf("switch did not swap the active member")
	}
	if c, _ := h.party.Control(h.b); c != PlayerControlled {
		t.Fatalf("new active member should be player controlled, got %v", c)
	}
	if c, _ := h.party.Control(h.a); c != Following {
		t.Fatalf("old active member should follow, got %v", c)
	}

	// Holding Tab does not switch again.
	h.run(10)
	if h.party.Active() != h.b {
		t.Fatalf("held switch key toggled again")
	}
}

func TestRejoinTimeoutTeleportEndsPartnerTick(t *testing.T) {
	h := newHarness(t, flat(), common.Vec3{}, common.Vec3{X: 20})
	h.party.setMode(Separated, 0)
	h.party.assign()
	h.step([]input.Key{input.KeyD}, nil)

	// Time runs out on the next tick while the leader keeps walking.
	h.party.setMode(Rejoining, tick/2)
	h.party.assign()
	before := h.a.State().Position
	h.step(nil, nil)

	if h.party.Mode() != Together {
		t.Fatalf("expected together after the timeout, got %v", h.party.Mode())
	}
	lead := h.a.State().Position
	if lead == before {
		t.Fatalf("leader should have moved during the timeout tick")
	}
	want := lead
	want.Y += h.b.Tuning().RespawnOffsetY
	s := h.b.State()
	if s.Position != want {
		t.Fatalf("partner at %+v, want %+v above the leader's new position", s.Position, want)
	}
	if s.Velocity != (common.Vec3{}) {
		t.Fatalf("partner should end the teleport tick at rest, velocity %+v", s.Velocity)
	}
}
