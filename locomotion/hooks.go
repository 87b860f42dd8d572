package locomotion

import "github.com/yumeututucosmology/RPG-sub000/common"

// Sound effect names passed to Sounds.PlaySE.
const (
	SEJump     = "jump"
	SELand     = "land"
	SEAttack   = "attack"
	SEDash     = "dash"
	SEFootstep = "footstep"
	SERespawn  = "respawn"
)

// Proxy is the renderable stand-in for an actor. The controller writes the
// pose every tick and never reads it back.
type Proxy interface {
	SetPose(pos common.Vec3, yaw float64)
}

// Prop is the attached attack prop.
type Prop interface {
	SetVisible(visible bool)
	SetSwing(angle float64)
}

// Sounds plays fire-and-forget sound effects.
type Sounds interface {
	PlaySE(name string)
}

type nopProxy struct{}

func (nopProxy) SetPose(common.Vec3, float64) {}

type nopProp struct{}

func (nopProp) SetVisible(bool)  {}
func (nopProp) SetSwing(float64) {}

type nopSounds struct{}

func (nopSounds) PlaySE(string) {}
