package locomotion

import (
	"github.com/jakecoffman/cp"
	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/stage"
	"go.uber.org/zap"
)

type Options struct {
	Name   string
	Proxy  Proxy
	Prop   Prop
	Sounds Sounds
	Logger *zap.Logger
}

// Controller runs movement physics for one actor against the stage.
type Controller struct {
	name   string
	stage  *stage.Stage
	tuning *Tuning
	source IntentSource

	proxy  Proxy
	prop   Prop
	sounds Sounds
	log    *zap.Logger

	state    ActorState
	footstep float64

	// teleported is set by Respawn/RespawnAt; a teleport ends the tick.
	teleported bool
}

func NewController(st *stage.Stage, tuning *Tuning, start common.Vec3, source IntentSource, opts Options) *Controller {
	if tuning == nil {
		t := DefaultTuning()
		tuning = &t
	}
	c := &Controller{
		name:   opts.Name,
		stage:  st,
		tuning: tuning,
		source: source,
		proxy:  opts.Proxy,
		prop:   opts.Prop,
		sounds: opts.Sounds,
		log:    opts.Logger,
	}
	if c.source == nil {
		c.source = Idle{}
	}
	if c.proxy == nil {
		c.proxy = nopProxy{}
	}
	if c.prop == nil {
		c.prop = nopProp{}
	}
	if c.sounds == nil {
		c.sounds = nopSounds{}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.place(start)
	c.prop.SetVisible(false)
	c.proxy.SetPose(c.state.Position, c.state.Yaw)
	return c
}

func (c *Controller) Name() string { return c.name }

// State returns a copy of the actor state.
func (c *Controller) State() ActorState { return c.state }

func (c *Controller) Tuning() *Tuning { return c.tuning }

func (c *Controller) Source() IntentSource { return c.source }

func (c *Controller) SetSource(src IntentSource) {
	if src == nil {
		src = Idle{}
	}
	c.source = src
}

// Update advances the actor by dt seconds. dt <= 0 does nothing.
func (c *Controller) Update(dt float64) {
	if dt <= 0 {
		return
	}
	t := c.tuning
	if t.MaxDT > 0 && dt > t.MaxDT {
		dt = t.MaxDT
	}
	s := &c.state
	c.teleported = false

	c.advanceAttack(dt)

	var intent Intent
	if c.source != nil {
		intent = c.source.Intent(c, dt)
	}
	if c.teleported {
		c.bookkeeping(dt, cp.Vector{})
		return
	}
	move := intent.Move
	if l := move.Length(); l > 1 {
		move = move.Mult(1 / l)
	}
	if intent.Attack {
		c.StartAttack()
	}

	moving := move.Length() > 0
	wasDashing := s.Dashing
	s.Dashing = intent.Dash && moving
	if s.Dashing && !wasDashing {
		c.sounds.PlaySE(SEDash)
	}
	speed := t.WalkSpeed
	if s.Dashing {
		speed = t.DashSpeed
	}
	vel := move.Mult(speed)
	if s.Attacking && s.Grounded {
		vel = cp.Vector{}
	}
	s.Velocity.X, s.Velocity.Z = vel.X, vel.Y

	if intent.Jump && s.Grounded {
		s.Velocity.Y = t.JumpImpulse
		s.Grounded = false
		c.sounds.PlaySE(SEJump)
	}

	c.moveHorizontal(dt)
	c.moveVertical(dt)

	if s.Position.Y < t.FallFloor {
		c.log.Debug("actor fell out of the world",
			zap.String("actor", c.name),
			zap.Float64("x", s.Position.X),
			zap.Float64("z", s.Position.Z))
		c.Respawn()
	}

	c.bookkeeping(dt, move)
}

func (c *Controller) advanceAttack(dt float64) {
	s := &c.state
	if !s.Attacking {
		return
	}
	t := c.tuning
	s.AttackTimer += dt
	if t.AttackDuration <= 0 || s.AttackTimer >= t.AttackDuration {
		s.Attacking = false
		s.AttackTimer = 0
		s.SwingAngle = 0
		c.prop.SetVisible(false)
		return
	}
	s.SwingAngle = common.Lerp(t.SwingStart, t.SwingEnd, s.AttackTimer/t.AttackDuration)
	c.prop.SetSwing(s.SwingAngle)
}

// StartAttack begins a swing. It refuses while one is in progress.
func (c *Controller) StartAttack() bool {
	s := &c.state
	if s.Attacking {
		return false
	}
	s.Attacking = true
	s.AttackTimer = 0
	s.SwingAngle = c.tuning.SwingStart
	c.prop.SetSwing(s.SwingAngle)
	c.prop.SetVisible(true)
	c.sounds.PlaySE(SEAttack)
	return true
}

func (c *Controller) horizontalProbe() stage.Probe {
	return stage.Probe{HalfExtent: c.tuning.Radius, Inset: c.tuning.HorizontalSkin}
}

func (c *Controller) verticalProbe() stage.Probe {
	return stage.Probe{HalfExtent: c.tuning.Radius, Inset: c.tuning.VerticalInset}
}

// moveHorizontal sweeps X then Z. A blocked axis stops for the tick.
func (c *Controller) moveHorizontal(dt float64) {
	s := &c.state
	t := c.tuning
	probe := c.horizontalProbe()
	ceiling := s.Position.Y + t.StepUp

	pos := s.Position.Planar()
	pos, blocked := c.stage.SweepAxis(pos, s.Velocity.X*dt, stage.AxisX, probe, t.MaxSubStep, ceiling)
	if blocked {
		s.Velocity.X = 0
	}
	pos, blocked = c.stage.SweepAxis(pos, s.Velocity.Z*dt, stage.AxisZ, probe, t.MaxSubStep, ceiling)
	if blocked {
		s.Velocity.Z = 0
	}
	s.Position = s.Position.WithPlanar(pos)
}

func (c *Controller) moveVertical(dt float64) {
	s := &c.state
	t := c.tuning

	surface := c.stage.MaxHeight(s.Position.Planar(), c.verticalProbe())
	if stage.HasGround(surface) {
		s.GroundHeight = surface
	}

	gap := s.Position.Y - surface
	if s.Grounded && s.Velocity.Y <= 0 && gap >= -t.StepUp && gap <= t.SnapBand {
		s.Position.Y = surface
		s.Velocity.Y = 0
		return
	}

	prevY := s.Position.Y
	s.Velocity.Y -= t.Gravity * dt
	s.Position.Y += s.Velocity.Y * dt

	if s.Velocity.Y <= 0 && prevY >= surface-t.StepUp && s.Position.Y <= surface+t.SnapBand {
		if !s.Grounded {
			c.sounds.PlaySE(SELand)
		}
		s.Position.Y = surface
		s.Velocity.Y = 0
		s.Grounded = true
		return
	}
	s.Grounded = false
}

func (c *Controller) bookkeeping(dt float64, move cp.Vector) {
	s := &c.state
	moving := move.Length() > 0
	if moving {
		s.Yaw = common.Yaw(move)
	}

	switch {
	case s.Attacking:
		s.Animation = AnimAttack
	case !s.Grounded && s.Velocity.Y > 0:
		s.Animation = AnimJump
	case !s.Grounded:
		s.Animation = AnimFall
	case s.Dashing && moving:
		s.Animation = AnimDash
	case moving:
		s.Animation = AnimWalk
	default:
		s.Animation = AnimIdle
	}

	if s.Grounded && moving && !s.Attacking {
		c.footstep += dt
		interval := c.tuning.FootstepInterval
		if s.Dashing {
			interval /= 2
		}
		if interval > 0 && c.footstep >= interval {
			c.footstep = 0
			c.sounds.PlaySE(SEFootstep)
		}
	} else {
		c.footstep = 0
	}

	c.proxy.SetPose(s.Position, s.Yaw)
}

// Respawn teleports to the stage's fixed respawn point at rest.
func (c *Controller) Respawn() {
	c.reset(c.stage.Spawn)
}

// RespawnAt teleports above other's current position at rest.
func (c *Controller) RespawnAt(other *Controller) {
	if other == nil {
		c.Respawn()
		return
	}
	pos := other.state.Position
	pos.Y += c.tuning.RespawnOffsetY
	c.log.Debug("actor respawned at partner",
		zap.String("actor", c.name),
		zap.String("partner", other.name))
	c.reset(pos)
}

func (c *Controller) reset(pos common.Vec3) {
	s := &c.state
	s.Position = pos
	s.Velocity = common.Vec3{}
	s.Grounded = false
	s.Dashing = false
	c.footstep = 0
	c.teleported = true
	c.sounds.PlaySE(SERespawn)
	c.proxy.SetPose(s.Position, s.Yaw)
}

// place puts a new actor at start, grounded if it starts on a surface.
func (c *Controller) place(start common.Vec3) {
	s := &c.state
	s.Position = start
	s.Animation = AnimIdle
	s.GroundHeight = stage.NoGround
	surface := c.stage.MaxHeight(start.Planar(), c.verticalProbe())
	if !stage.HasGround(surface) {
		return
	}
	s.GroundHeight = surface
	if gap := start.Y - surface; gap >= 0 && gap <= c.tuning.SnapBand {
		s.Position.Y = surface
		s.Grounded = true
	}
}
