package system

import (
	"github.com/yumeututucosmology/RPG-sub000/ecs"
	"github.com/yumeututucosmology/RPG-sub000/input"
)

// Poller feeds raw key events into the input state.
type Poller interface {
	Poll(st *input.State)
}

// InputSystem rotates the input snapshot and then applies this tick's raw
// events. It must run first so every later edge query sees the same frame.
type InputSystem struct {
	state  *input.State
	poller Poller
}

func NewInputSystem(state *input.State, poller Poller) *InputSystem {
	return &InputSystem{state: state, poller: poller}
}

func (i *InputSystem) Update(_ *ecs.World, _ float64) {
	if i.state == nil {
		return
	}
	i.state.Rotate()
	if i.poller != nil {
		i.poller.Poll(i.state)
	}
}
