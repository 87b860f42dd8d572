package party

import (
	"math"
	"time"

	"github.com/yumeututucosmology/RPG-sub000/ai"
	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/input"
	"github.com/yumeututucosmology/RPG-sub000/locomotion"
	"go.uber.org/zap"
)

type Mode int

const (
	Together Mode = iota
	Separating
	Separated
	Rejoining
)

func (m Mode) String() string {
	switch m {
	case Separating:
		return "separating"
	case Separated:
		return "separated"
	case Rejoining:
		return "rejoining"
	}
	return "together"
}

type Tuning struct {
	HoldToToggle   float64 `yaml:"hold_to_toggle"`
	TransitionTime float64 `yaml:"transition_time"`
	RejoinTimeout  float64 `yaml:"rejoin_timeout"`
}

func DefaultTuning() Tuning {
	return Tuning{
		HoldToToggle:   0.6,
		TransitionTime: 0.4,
		RejoinTimeout:  3,
	}
}

// Control is the tagged variant that picks a member's intent source.
type Control int

const (
	PlayerControlled Control = iota
	Following
	Holding
)

func (c Control) String() string {
	switch c {
	case Following:
		return "following"
	case Holding:
		return "holding"
	}
	return "player"
}

type member struct {
	actor    *locomotion.Controller
	player   *locomotion.Player
	follower *ai.Follower
	control  Control
}

// Party is the two-member leader/follower pair with its separation mode.
type Party struct {
	input  *input.State
	tuning *Tuning
	follow *ai.FollowerTuning
	log    *zap.Logger

	members [2]*member
	active  int
	mode    Mode
	timer   float64
}

func New(in *input.State, a, b *locomotion.Controller, tuning *Tuning, follow *ai.FollowerTuning, log *zap.Logger) *Party {
	if tuning == nil {
		t := DefaultTuning()
		tuning = &t
	}
	if follow == nil {
		t := ai.DefaultFollowerTuning()
		follow = &t
	}
	if log == nil {
		log = zap.NewNop()
	}
	p := &Party{input: in, tuning: tuning, follow: follow, log: log}
	actors := [2]*locomotion.Controller{a, b}
	for i, actor := range actors {
		p.members[i] = &member{
			actor:    actor,
			player:   locomotion.NewPlayer(in),
			follower: ai.NewFollower(actors[1-i], follow),
		}
	}
	p.assign()
	return p
}

func (p *Party) Mode() Mode { return p.mode }

// Active is the member the player drives. It updates before Partner.
func (p *Party) Active() *locomotion.Controller { return p.members[p.active].actor }

func (p *Party) Partner() *locomotion.Controller { return p.members[1-p.active].actor }

// Control reports how actor is currently driven.
func (p *Party) Control(actor *locomotion.Controller) (Control, bool) {
	for _, m := range p.members {
		if m.actor == actor {
			return m.control, true
		}
	}
	return 0, false
}

func (p *Party) Update(dt float64) {
	if dt <= 0 {
		return
	}
	if p.input != nil {
		p.handleSwitch()
		p.handleSeparate()
	}
	p.advance(dt)
	p.assign()
}

func (p *Party) handleSwitch() {
	if !p.input.IsJustPressed(input.ActionSwitchCharacter) {
		return
	}
	p.input.ConsumeAction(input.ActionSwitchCharacter)
	p.active = 1 - p.active
	for _, m := range p.members {
		m.player.Reset()
		m.follower.Reset()
	}
	p.log.Debug("party: switched character", zap.String("active", p.Active().Name()))
}

// handleSeparate toggles on a long hold. The action is consumed so one hold
// toggles once; it re-arms when the key is pressed again.
func (p *Party) handleSeparate() {
	if p.mode != Together && p.mode != Separated {
		return
	}
	hold := time.Duration(p.tuning.HoldToToggle * float64(time.Second))
	if p.input.HoldDuration(input.ActionSeparate) < hold || !p.input.IsDown(input.ActionSeparate) {
		return
	}
	p.input.ConsumeAction(input.ActionSeparate)

	if p.mode == Together {
		p.setMode(Separating, p.tuning.TransitionTime)
		return
	}
	p.members[1-p.active].follower.Reset()
	p.setMode(Rejoining, p.tuning.RejoinTimeout)
}

func (p *Party) advance(dt float64) {
	switch p.mode {
	case Separating:
		p.timer -= dt
		if p.timer <= 0 {
			p.setMode(Separated, 0)
		}
	case Rejoining:
		p.timer -= dt
		if p.partnerNear() {
			p.setMode(Together, 0)
			return
		}
		if p.timer <= 0 {
			// The partner follows in Together mode, so the teleport runs
			// in its own update, after the active member has moved.
			p.members[1-p.active].follower.Recall()
			p.setMode(Together, 0)
		}
	}
}

func (p *Party) partnerNear() bool {
	a, b := p.Active().State(), p.Partner().State()
	return common.PlanarDistance(a.Position, b.Position) <= p.follow.NearDistance &&
		math.Abs(a.Position.Y-b.Position.Y) <= p.follow.JumpHeight
}

func (p *Party) setMode(m Mode, timer float64) {
	p.log.Debug("party: mode change",
		zap.Stringer("from", p.mode),
		zap.Stringer("to", m))
	p.mode = m
	p.timer = timer
}

func (p *Party) assign() {
	for i, m := range p.members {
		switch {
		case i == p.active:
			m.control = PlayerControlled
			m.actor.SetSource(m.player)
		case p.mode == Together || p.mode == Rejoining:
			m.control = Following
			m.actor.SetSource(m.follower)
		default:
			m.control = Holding
			m.actor.SetSource(locomotion.Idle{})
		}
	}
}
