package locomotion

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/input"
)

// Intent is what an actor wants to do this tick. Move is planar (X, Z) with
// length at most 1.
type Intent struct {
	Move   cp.Vector
	Dash   bool
	Jump   bool
	Attack bool
}

// IntentSource supplies intent to a controller. Player input, followers and
// idle actors all implement it, so the controller never asks what kind of
// actor it drives.
type IntentSource interface {
	Intent(self *Controller, dt float64) Intent
}

// Idle never moves.
type Idle struct{}

func (Idle) Intent(*Controller, float64) Intent {
	return Intent{}
}

var directions = [...]struct {
	action input.Action
	dir    cp.Vector
}{
	{input.ActionMoveForward, cp.Vector{X: 0, Y: -1}},
	{input.ActionMoveBack, cp.Vector{X: 0, Y: 1}},
	{input.ActionMoveLeft, cp.Vector{X: -1, Y: 0}},
	{input.ActionMoveRight, cp.Vector{X: 1, Y: 0}},
}

// Player reads intent from the shared input state. The dash gesture is a
// second just-pressed edge of the same logical direction within the dash
// window; any key bound to that direction counts.
type Player struct {
	input   *input.State
	lastTap map[input.Action]time.Time
	dashing bool
}

func NewPlayer(st *input.State) *Player {
	return &Player{input: st, lastTap: map[input.Action]time.Time{}}
}

func (p *Player) Intent(self *Controller, _ float64) Intent {
	if p == nil || p.input == nil {
		return Intent{}
	}
	window := time.Duration(self.Tuning().DashWindow * float64(time.Second))
	now := p.input.Now()

	var move cp.Vector
	held := false
	for _, d := range directions {
		if p.input.IsJustPressed(d.action) {
			if last, ok := p.lastTap[d.action]; ok && now.Sub(last) < window {
				p.dashing = true
			}
			p.lastTap[d.action] = now
		}
		if p.input.IsDown(d.action) {
			held = true
			move = move.Add(d.dir)
		}
	}
	if !held {
		p.dashing = false
	}

	return Intent{
		Move:   common.Direction(move),
		Dash:   p.dashing,
		Jump:   p.input.IsJustPressed(input.ActionJump),
		Attack: p.input.IsJustPressed(input.ActionAttack),
	}
}

// Reset forgets gesture history, e.g. when control moves to another actor.
func (p *Player) Reset() {
	clear(p.lastTap)
	p.dashing = false
}
