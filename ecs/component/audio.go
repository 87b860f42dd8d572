package component

// SoundEvent is the payload of an ecs.EventSound event.
type SoundEvent struct {
	Name string
}
