package stage

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/yumeututucosmology/RPG-sub000/common"
)

// NoGround is returned by GroundHeight when no block covers the point.
// Negative infinity keeps max-of-heights and step-up comparisons free of
// special cases.
var NoGround = math.Inf(-1)

// HasGround reports whether h is a real surface height.
func HasGround(h float64) bool {
	return !math.IsInf(h, -1)
}

// ColliderBlock is an axis-aligned prism from y=0 up to Height. Its footprint
// is stored as a cp.BB with X on L/R and Z on B/T.
type ColliderBlock struct {
	Footprint cp.BB
	Height    float64
}

// Contains reports whether (x, z) lies in the footprint, boundaries included.
func (b ColliderBlock) Contains(x, z float64) bool {
	return b.Footprint.ContainsVect(cp.Vector{X: x, Y: z})
}

// Stage is the immutable height field every actor collides against.
type Stage struct {
	blocks []ColliderBlock

	// Spawn is the fixed respawn point used after a fall-through.
	Spawn common.Vec3
}

func New() *Stage {
	return &Stage{}
}

// AddObstacle appends a block centred on (x, z). Overlaps are allowed; the
// higher block wins in GroundHeight.
func (s *Stage) AddObstacle(x, z, width, depth, height float64) {
	hw, hd := width/2, depth/2
	s.blocks = append(s.blocks, ColliderBlock{
		Footprint: cp.BB{L: x - hw, B: z - hd, R: x + hw, T: z + hd},
		Height:    height,
	})
}

// Blocks returns the blocks in insertion order.
func (s *Stage) Blocks() []ColliderBlock {
	if s == nil {
		return nil
	}
	return s.blocks
}

// GroundHeight is the maximum height of all blocks containing (x, z), or
// NoGround. Linear in the number of blocks.
func (s *Stage) GroundHeight(x, z float64) float64 {
	h := NoGround
	if s == nil {
		return h
	}
	for _, b := range s.blocks {
		if b.Height > h && b.Contains(x, z) {
			h = b.Height
		}
	}
	return h
}

// Bounds returns the union of all footprints. ok is false for an empty stage.
func (s *Stage) Bounds() (bb cp.BB, ok bool) {
	if s == nil || len(s.blocks) == 0 {
		return cp.BB{}, false
	}
	bb = s.blocks[0].Footprint
	for _, b := range s.blocks[1:] {
		bb.L = math.Min(bb.L, b.Footprint.L)
		bb.B = math.Min(bb.B, b.Footprint.B)
		bb.R = math.Max(bb.R, b.Footprint.R)
		bb.T = math.Max(bb.T, b.Footprint.T)
	}
	return bb, true
}
