package component

import "github.com/yumeututucosmology/RPG-sub000/common"

// Transform is the render proxy pose. Gameplay writes it every tick and
// never reads it back.
type Transform struct {
	Position common.Vec3
	Yaw      float64
}

func (t *Transform) SetPose(pos common.Vec3, yaw float64) {
	t.Position = pos
	t.Yaw = yaw
}

var TransformComponent = NewComponent[Transform]()
