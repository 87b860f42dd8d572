package component

import "github.com/yumeututucosmology/RPG-sub000/locomotion"

// Actor is an entity driven by a locomotion controller.
type Actor struct {
	Controller *locomotion.Controller
}

var ActorComponent = NewComponent[Actor]()
