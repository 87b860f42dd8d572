package stage

import (
	"math"

	"github.com/jakecoffman/cp"
)

type Axis int

const (
	AxisX Axis = iota
	AxisZ
)

// Probe is the sample cluster around an actor: the four footprint corners
// pulled in by Inset, plus the centre.
type Probe struct {
	HalfExtent float64
	Inset      float64
}

func (p Probe) Points(c cp.Vector) [5]cp.Vector {
	r := math.Max(p.HalfExtent-p.Inset, 0)
	return [5]cp.Vector{
		c,
		{X: c.X - r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y - r},
		{X: c.X - r, Y: c.Y + r},
		{X: c.X + r, Y: c.Y + r},
	}
}

// MaxHeight is the highest ground under any probe point, or NoGround.
func (s *Stage) MaxHeight(c cp.Vector, p Probe) float64 {
	h := NoGround
	for _, pt := range p.Points(c) {
		h = math.Max(h, s.GroundHeight(pt.X, pt.Y))
	}
	return h
}

// SweepAxis moves start by delta along one axis in equal sub-steps no longer
// than maxStep. A sub-step is accepted while MaxHeight stays at or below
// ceiling; the first rejected sub-step ends the sweep with blocked=true and
// the last accepted position.
func (s *Stage) SweepAxis(start cp.Vector, delta float64, axis Axis, p Probe, maxStep, ceiling float64) (pos cp.Vector, blocked bool) {
	pos = start
	if delta == 0 {
		return pos, false
	}
	steps := 1
	if maxStep > 0 {
		steps = int(math.Ceil(math.Abs(delta) / maxStep))
	}
	step := delta / float64(steps)
	for i := 0; i < steps; i++ {
		next := pos
		if axis == AxisX {
			next.X += step
		} else {
			next.Y += step
		}
		if s.MaxHeight(next, p) > ceiling {
			return pos, true
		}
		pos = next
	}
	return pos, false
}
