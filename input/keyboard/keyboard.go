// Package keyboard feeds ebiten key edges into an input.State.
package keyboard

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yumeututucosmology/RPG-sub000/input"
)

var keyNames = map[ebiten.Key]input.Key{
	ebiten.KeyA: "KeyA", ebiten.KeyB: "KeyB", ebiten.KeyC: "KeyC", ebiten.KeyD: "KeyD",
	ebiten.KeyE: "KeyE", ebiten.KeyF: "KeyF", ebiten.KeyG: "KeyG", ebiten.KeyH: "KeyH",
	ebiten.KeyI: "KeyI", ebiten.KeyJ: "KeyJ", ebiten.KeyK: "KeyK", ebiten.KeyL: "KeyL",
	ebiten.KeyM: "KeyM", ebiten.KeyN: "KeyN", ebiten.KeyO: "KeyO", ebiten.KeyP: "KeyP",
	ebiten.KeyQ: "KeyQ", ebiten.KeyR: "KeyR", ebiten.KeyS: "KeyS", ebiten.KeyT: "KeyT",
	ebiten.KeyU: "KeyU", ebiten.KeyV: "KeyV", ebiten.KeyW: "KeyW", ebiten.KeyX: "KeyX",
	ebiten.KeyY: "KeyY", ebiten.KeyZ: "KeyZ",

	ebiten.KeyDigit0: "Digit0", ebiten.KeyDigit1: "Digit1", ebiten.KeyDigit2: "Digit2",
	ebiten.KeyDigit3: "Digit3", ebiten.KeyDigit4: "Digit4", ebiten.KeyDigit5: "Digit5",
	ebiten.KeyDigit6: "Digit6", ebiten.KeyDigit7: "Digit7", ebiten.KeyDigit8: "Digit8",
	ebiten.KeyDigit9: "Digit9",

	ebiten.KeyArrowUp:      input.KeyArrowUp,
	ebiten.KeyArrowDown:    input.KeyArrowDown,
	ebiten.KeyArrowLeft:    input.KeyArrowLeft,
	ebiten.KeyArrowRight:   input.KeyArrowRight,
	ebiten.KeySpace:        input.KeySpace,
	ebiten.KeyTab:          input.KeyTab,
	ebiten.KeyEscape:       input.KeyEscape,
	ebiten.KeyEnter:        "Enter",
	ebiten.KeyShiftLeft:    "ShiftLeft",
	ebiten.KeyShiftRight:   "ShiftRight",
	ebiten.KeyControlLeft:  "ControlLeft",
	ebiten.KeyControlRight: "ControlRight",
}

// Name translates an ebiten key. ok is false for keys the game ignores.
func Name(k ebiten.Key) (input.Key, bool) {
	name, ok := keyNames[k]
	return name, ok
}

// Source polls ebiten once per tick, after State.Rotate.
type Source struct {
	keys    []ebiten.Key
	focused bool
}

func NewSource() *Source {
	return &Source{focused: true}
}

func (s *Source) Poll(st *input.State) {
	if st == nil {
		return
	}

	// Keys held across a focus loss never report a release.
	focused := ebiten.IsFocused()
	if !focused && s.focused {
		st.ReleaseAll()
	}
	s.focused = focused

	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if name, ok := keyNames[k]; ok {
			st.Release(name)
		}
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if name, ok := keyNames[k]; ok {
			st.Press(name)
		}
	}
}
