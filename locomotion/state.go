package locomotion

import "github.com/yumeututucosmology/RPG-sub000/common"

// Animation names chosen after physics each tick.
const (
	AnimIdle   = "idle"
	AnimWalk   = "walk"
	AnimDash   = "dash"
	AnimJump   = "jump"
	AnimFall   = "fall"
	AnimAttack = "attack"
)

// ActorState is owned by one Controller. Others get copies via State.
type ActorState struct {
	Position common.Vec3
	Velocity common.Vec3

	Grounded  bool
	Dashing   bool
	Attacking bool

	AttackTimer float64
	SwingAngle  float64

	// GroundHeight is the last surface seen under the actor, kept while
	// airborne.
	GroundHeight float64

	Yaw       float64
	Animation string
}
