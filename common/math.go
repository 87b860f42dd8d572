package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Vec3 is a world-space point or velocity. Y is up, forward is -Z.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Planar projects onto the ground plane as a cp.Vector (X, Z).
func (v Vec3) Planar() cp.Vector {
	return cp.Vector{X: v.X, Y: v.Z}
}

// WithPlanar replaces X and Z, keeping Y.
func (v Vec3) WithPlanar(p cp.Vector) Vec3 {
	return Vec3{X: p.X, Y: v.Y, Z: p.Y}
}

func PlanarDistance(a, b Vec3) float64 {
	return a.Planar().Distance(b.Planar())
}

// Direction normalizes v, returning the zero vector for zero input.
// cp.Vector.Normalize yields NaN there.
func Direction(v cp.Vector) cp.Vector {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}
	}
	return v.Mult(1 / l)
}

// Yaw is the heading of a planar direction, 0 facing forward (-Z).
func Yaw(dir cp.Vector) float64 {
	return math.Atan2(dir.X, -dir.Y)
}
