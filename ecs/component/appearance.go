package component

import "image/color"

type Appearance struct {
	Label string
	Color color.Color
	Size  float64
}

var AppearanceComponent = NewComponent[Appearance]()
