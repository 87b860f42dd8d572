package component

import "github.com/yumeututucosmology/RPG-sub000/ai"

type Wanderer struct {
	Wanderer *ai.Wanderer
}

var WandererComponent = NewComponent[Wanderer]()
