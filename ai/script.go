package ai

import (
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"go.uber.org/zap"
)

// ScriptDecider asks a tengo script for the next wander leg. The script
// sees mode, the tuning ranges and two uniform rolls in [0,1), and must set
// next_mode, duration and heading. Any runtime failure falls back to the
// random decider for that decision.
type ScriptDecider struct {
	name     string
	compiled *tengo.Compiled
	rng      *rand.Rand
	tuning   *WanderTuning
	fallback *RandomDecider
	log      *zap.Logger
	failed   bool
}

func NewScriptDecider(name string, src []byte, rng *rand.Rand, tuning *WanderTuning, log *zap.Logger) (*ScriptDecider, error) {
	if log == nil {
		log = zap.NewNop()
	}
	script := tengo.NewScript(src)
	for _, v := range []string{"idle_min", "idle_max", "walk_min", "walk_max", "roll_duration", "roll_heading"} {
		_ = script.Add(v, 0.0)
	}
	_ = script.Add("mode", ModeIdle.String())
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("ai: compile %s: %w", name, err)
	}
	return &ScriptDecider{
		name:     name,
		compiled: compiled,
		rng:      rng,
		tuning:   tuning,
		fallback: NewRandomDecider(rng, tuning),
		log:      log,
	}, nil
}

func (d *ScriptDecider) Decide(prev Mode) Decision {
	dec, err := d.run(prev)
	if err != nil {
		if !d.failed {
			d.log.Warn("wander script failed, using random decisions",
				zap.String("script", d.name), zap.Error(err))
			d.failed = true
		}
		return d.fallback.Decide(prev)
	}
	return dec
}

func (d *ScriptDecider) run(prev Mode) (Decision, error) {
	t := d.tuning
	inputs := map[string]any{
		"mode":          prev.String(),
		"idle_min":      t.IdleMin,
		"idle_max":      t.IdleMax,
		"walk_min":      t.WalkMin,
		"walk_max":      t.WalkMax,
		"roll_duration": d.rng.Float64(),
		"roll_heading":  d.rng.Float64(),
	}
	for k, v := range inputs {
		if err := d.compiled.Set(k, v); err != nil {
			return Decision{}, err
		}
	}
	if err := d.compiled.Run(); err != nil {
		return Decision{}, err
	}

	for _, out := range []string{"next_mode", "duration", "heading"} {
		if !d.compiled.IsDefined(out) {
			return Decision{}, fmt.Errorf("script did not define %s", out)
		}
	}
	mode, ok := ParseMode(d.compiled.Get("next_mode").String())
	if !ok {
		return Decision{}, fmt.Errorf("unknown mode %q", d.compiled.Get("next_mode").String())
	}
	return Decision{
		Mode:     mode,
		Duration: d.compiled.Get("duration").Float(),
		Heading:  d.compiled.Get("heading").Float(),
	}, nil
}
