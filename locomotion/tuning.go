package locomotion

// Tuning holds the shared movement constants. Distances are world units,
// times are seconds. Controllers keep a pointer, so a hot reload that
// overwrites the value takes effect on the next tick.
type Tuning struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	WalkSpeed   float64 `yaml:"walk_speed"`
	DashSpeed   float64 `yaml:"dash_speed"`
	DashWindow  float64 `yaml:"dash_window"`

	AttackDuration float64 `yaml:"attack_duration"`
	SwingStart     float64 `yaml:"swing_start"`
	SwingEnd       float64 `yaml:"swing_end"`

	// Radius is the half-size of the square footprint.
	Radius float64 `yaml:"radius"`
	// HorizontalSkin insets the probes used by the horizontal sweep.
	HorizontalSkin float64 `yaml:"horizontal_skin"`
	// VerticalInset insets the probes that pick the surface under the actor.
	// Keep it larger than HorizontalSkin so the surface probes stay inside
	// the area the sweep has cleared.
	VerticalInset float64 `yaml:"vertical_inset"`
	StepUp        float64 `yaml:"step_up"`
	SnapBand      float64 `yaml:"snap_band"`
	MaxSubStep    float64 `yaml:"max_sub_step"`

	FallFloor      float64 `yaml:"fall_floor"`
	RespawnOffsetY float64 `yaml:"respawn_offset_y"`
	MaxDT          float64 `yaml:"max_dt"`

	FootstepInterval float64 `yaml:"footstep_interval"`
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:     25,
		JumpImpulse: 8,
		WalkSpeed:   4,
		DashSpeed:   8,
		DashWindow:  0.25,

		AttackDuration: 0.35,
		SwingStart:     -1.2,
		SwingEnd:       1.2,

		Radius:         0.4,
		HorizontalSkin: 0.02,
		VerticalInset:  0.1,
		StepUp:         0.35,
		SnapBand:       0.25,
		MaxSubStep:     0.1,

		FallFloor:      -20,
		RespawnOffsetY: 2,
		MaxDT:          0.05,

		FootstepInterval: 0.35,
	}
}
