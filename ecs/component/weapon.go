package component

// Weapon is the attack prop attached to an actor.
type Weapon struct {
	Visible bool
	Swing   float64
}

func (w *Weapon) SetVisible(v bool) {
	w.Visible = v
}

func (w *Weapon) SetSwing(angle float64) {
	w.Swing = angle
}

var WeaponComponent = NewComponent[Weapon]()
