package input

import "sort"

// Key is the canonical physical key identifier, named like DOM key codes
// ("KeyW", "ArrowUp", "Space"). Host key events are translated to it once.
type Key string

const (
	KeyW          Key = "KeyW"
	KeyA          Key = "KeyA"
	KeyS          Key = "KeyS"
	KeyD          Key = "KeyD"
	KeyJ          Key = "KeyJ"
	KeyQ          Key = "KeyQ"
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySpace      Key = "Space"
	KeyTab        Key = "Tab"
	KeyEscape     Key = "Escape"
)

// Action is a logical game action. Several keys may map to one action.
type Action string

const (
	ActionMoveForward     Action = "move_forward"
	ActionMoveBack        Action = "move_back"
	ActionMoveLeft        Action = "move_left"
	ActionMoveRight       Action = "move_right"
	ActionJump            Action = "jump"
	ActionAttack          Action = "attack"
	ActionSwitchCharacter Action = "switch_character"
	ActionSeparate        Action = "separate"
	ActionPause           Action = "pause"
)

var actions = []Action{
	ActionMoveForward,
	ActionMoveBack,
	ActionMoveLeft,
	ActionMoveRight,
	ActionJump,
	ActionAttack,
	ActionSwitchCharacter,
	ActionSeparate,
	ActionPause,
}

// Actions lists every known action.
func Actions() []Action {
	return append([]Action(nil), actions...)
}

func IsAction(a Action) bool {
	for _, known := range actions {
		if known == a {
			return true
		}
	}
	return false
}

// Mapping binds physical keys to actions.
type Mapping map[Key]Action

func DefaultMapping() Mapping {
	return Mapping{
		KeyW:          ActionMoveForward,
		KeyArrowUp:    ActionMoveForward,
		KeyS:          ActionMoveBack,
		KeyArrowDown:  ActionMoveBack,
		KeyA:          ActionMoveLeft,
		KeyArrowLeft:  ActionMoveLeft,
		KeyD:          ActionMoveRight,
		KeyArrowRight: ActionMoveRight,
		KeySpace:      ActionJump,
		KeyJ:          ActionAttack,
		KeyTab:        ActionSwitchCharacter,
		KeyQ:          ActionSeparate,
		KeyEscape:     ActionPause,
	}
}

func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, a := range m {
		out[k] = a
	}
	return out
}

// Keys returns the keys bound to action, sorted.
func (m Mapping) Keys(action Action) []Key {
	var keys []Key
	for k, a := range m {
		if a == action {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
