package ai

import (
	"math"

	"github.com/yumeututucosmology/RPG-sub000/locomotion"
)

type FollowerTuning struct {
	// Beyond either limit the grace timer runs; when it passes
	// RecoveryGrace the follower is put back next to the leader.
	RecoveryDistance float64 `yaml:"recovery_distance"`
	RecoveryHeight   float64 `yaml:"recovery_height"`
	RecoveryGrace    float64 `yaml:"recovery_grace"`

	NearDistance float64 `yaml:"near_distance"`
	FarDistance  float64 `yaml:"far_distance"`

	JumpHeight float64 `yaml:"jump_height"`
	JumpDelay  float64 `yaml:"jump_delay"`
}

func DefaultFollowerTuning() FollowerTuning {
	return FollowerTuning{
		RecoveryDistance: 15,
		RecoveryHeight:   6,
		RecoveryGrace:    2,
		NearDistance:     1.5,
		FarDistance:      5,
		JumpHeight:       0.5,
		JumpDelay:        0.25,
	}
}

// Follower synthesizes intent that seeks a leader. It reads the leader's
// state as of the leader's own update this tick.
type Follower struct {
	leader *locomotion.Controller
	tuning *FollowerTuning

	recovery float64
	jumpWait float64
	recall   bool
}

func NewFollower(leader *locomotion.Controller, tuning *FollowerTuning) *Follower {
	if tuning == nil {
		t := DefaultFollowerTuning()
		tuning = &t
	}
	return &Follower{leader: leader, tuning: tuning}
}

func (f *Follower) Leader() *locomotion.Controller { return f.leader }

// RecoveryTimer is the time spent out of range so far.
func (f *Follower) RecoveryTimer() float64 { return f.recovery }

func (f *Follower) Intent(self *locomotion.Controller, dt float64) locomotion.Intent {
	if f.leader == nil || f.leader == self {
		return locomotion.Intent{}
	}
	t := f.tuning
	me := self.State()
	lead := f.leader.State()

	if f.recall {
		f.recall = false
		f.recovery = 0
		f.jumpWait = 0
		self.RespawnAt(f.leader)
		return locomotion.Intent{}
	}

	toLeader := lead.Position.Planar().Sub(me.Position.Planar())
	dist := toLeader.Length()
	dy := lead.Position.Y - me.Position.Y

	if dist > t.RecoveryDistance || math.Abs(dy) > t.RecoveryHeight {
		f.recovery += dt
		if f.recovery > t.RecoveryGrace {
			self.RespawnAt(f.leader)
			f.recovery = 0
			f.jumpWait = 0
			return locomotion.Intent{}
		}
	} else {
		f.recovery = 0
	}

	var intent locomotion.Intent
	if dist > t.NearDistance {
		intent.Move = toLeader.Mult(1 / dist)
		intent.Dash = dist > t.FarDistance
	}

	if me.Grounded && dy > t.JumpHeight {
		f.jumpWait += dt
		if f.jumpWait >= t.JumpDelay {
			intent.Jump = true
			f.jumpWait = 0
		}
	} else {
		f.jumpWait = 0
	}
	return intent
}

// Recall makes the next Intent call put the follower next to the leader,
// using the leader's position after its own update that tick.
func (f *Follower) Recall() {
	f.recall = true
}

// Recalling reports whether a recall is still pending.
func (f *Follower) Recalling() bool { return f.recall }

// Reset clears the timers, e.g. when the follower is re-attached.
func (f *Follower) Reset() {
	f.recovery = 0
	f.jumpWait = 0
}
