package stage

import (
	"errors"
	"fmt"

	"github.com/yumeututucosmology/RPG-sub000/common"
	"github.com/yumeututucosmology/RPG-sub000/levels"
)

var ErrNilLevel = errors.New("stage: nil level")

// FromLevel builds the stage once from level data.
func FromLevel(lvl *levels.Level) (*Stage, error) {
	if lvl == nil {
		return nil, ErrNilLevel
	}
	s := New()
	for i, b := range lvl.Blocks {
		if b.Width <= 0 || b.Depth <= 0 {
			return nil, fmt.Errorf("stage: block %d in %q: footprint %gx%g", i, lvl.Name, b.Width, b.Depth)
		}
		s.AddObstacle(b.X, b.Z, b.Width, b.Depth, b.Height)
	}
	s.Spawn = PointVec(lvl.Spawn)
	return s, nil
}

func PointVec(p levels.Point) common.Vec3 {
	return common.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}
