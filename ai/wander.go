package ai

import (
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/locomotion"
	"github.com/yumeututucosmology/RPG-sub000/stage"
)

type Mode int

const (
	ModeIdle Mode = iota
	ModeWalk
)

func (m Mode) String() string {
	if m == ModeWalk {
		return "walk"
	}
	return "idle"
}

func ParseMode(s string) (Mode, bool) {
	switch s {
	case "idle":
		return ModeIdle, true
	case "walk":
		return ModeWalk, true
	}
	return ModeIdle, false
}

type WanderTuning struct {
	HomeRadius float64 `yaml:"home_radius"`
	Speed      float64 `yaml:"speed"`
	IdleMin    float64 `yaml:"idle_min"`
	IdleMax    float64 `yaml:"idle_max"`
	WalkMin    float64 `yaml:"walk_min"`
	WalkMax    float64 `yaml:"walk_max"`
	StepUp     float64 `yaml:"step_up"`
}

func DefaultWanderTuning() WanderTuning {
	return WanderTuning{
		HomeRadius: 4,
		Speed:      1.5,
		IdleMin:    1,
		IdleMax:    3,
		WalkMin:    1,
		WalkMax:    2.5,
		StepUp:     0.35,
	}
}

// WanderState is separate from locomotion state: wanderers have no
// gravity, dash or attack.
type WanderState struct {
	Mode      Mode
	Timer     float64
	Direction cp.Vector
}

// Decision is the next leg of a wander cycle. Heading is radians from
// forward (-Z), matching actor yaw.
type Decision struct {
	Mode     Mode
	Duration float64
	Heading  float64
}

type Decider interface {
	Decide(prev Mode) Decision
}

// RandomDecider alternates idle and walk with uniform durations and headings.
type RandomDecider struct {
	rng    *rand.Rand
	tuning *WanderTuning
}

func NewRandomDecider(rng *rand.Rand, tuning *WanderTuning) *RandomDecider {
	return &RandomDecider{rng: rng, tuning: tuning}
}

func (d *RandomDecider) Decide(prev Mode) Decision {
	t := d.tuning
	if prev == ModeIdle {
		return Decision{
			Mode:     ModeWalk,
			Duration: common.Lerp(t.WalkMin, t.WalkMax, d.rng.Float64()),
			Heading:  d.rng.Float64() * 2 * math.Pi,
		}
	}
	return Decision{
		Mode:     ModeIdle,
		Duration: common.Lerp(t.IdleMin, t.IdleMax, d.rng.Float64()),
	}
}

const minLeg = 0.1

// Wanderer moves a background NPC around its home point. Its height follows
// the ground directly.
type Wanderer struct {
	name    string
	stage   *stage.Stage
	tuning  *WanderTuning
	decider Decider
	proxy   locomotion.Proxy

	home  common.Vec3
	pos   common.Vec3
	yaw   float64
	state WanderState
}

func NewWanderer(name string, st *stage.Stage, tuning *WanderTuning, home common.Vec3, decider Decider, proxy locomotion.Proxy) *Wanderer {
	if h := st.GroundHeight(home.X, home.Z); stage.HasGround(h) {
		home.Y = h
	}
	w := &Wanderer{
		name:    name,
		stage:   st,
		tuning:  tuning,
		decider: decider,
		proxy:   proxy,
		home:    home,
		pos:     home,
	}
	if w.proxy != nil {
		w.proxy.SetPose(w.pos, w.yaw)
	}
	return w
}

func (w *Wanderer) Name() string          { return w.name }
func (w *Wanderer) Position() common.Vec3 { return w.pos }
func (w *Wanderer) Home() common.Vec3     { return w.home }
func (w *Wanderer) State() WanderState    { return w.state }

func (w *Wanderer) Update(dt float64) {
	if dt <= 0 {
		return
	}
	w.state.Timer -= dt
	if w.state.Timer <= 0 {
		w.apply(w.decider.Decide(w.state.Mode))
	}

	if w.state.Mode == ModeWalk {
		w.walk(dt)
	}
	if w.proxy != nil {
		w.proxy.SetPose(w.pos, w.yaw)
	}
}

func (w *Wanderer) apply(d Decision) {
	w.state.Mode = d.Mode
	w.state.Timer = math.Max(d.Duration, minLeg)
	w.state.Direction = cp.Vector{}
	if d.Mode == ModeWalk {
		w.state.Direction = cp.Vector{X: math.Sin(d.Heading), Y: -math.Cos(d.Heading)}
		w.yaw = d.Heading
	}
}

// walk takes one step. Leaving the home radius or the ground, or a height
// change above StepUp, ends the leg early.
func (w *Wanderer) walk(dt float64) {
	t := w.tuning
	next := w.pos.Planar().Add(w.state.Direction.Mult(t.Speed * dt))
	h := w.stage.GroundHeight(next.X, next.Y)
	if next.Distance(w.home.Planar()) > t.HomeRadius || !stage.HasGround(h) || math.Abs(h-w.pos.Y) > t.StepUp {
		w.state.Mode = ModeIdle
		w.state.Direction = cp.Vector{}
		return
	}
	w.pos = common.Vec3{X: next.X, Y: h, Z: next.Y}
}
