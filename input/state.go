package input

import (
	"fmt"
	"time"
)

// State is the double-buffered input frame. The game owns one State and
// passes it by reference; Rotate runs exactly once per tick, before that
// tick's Press and Release events.
type State struct {
	mapping Mapping
	store   Store
	now     func() time.Time

	current   map[Key]bool
	previous  map[Key]bool
	pressedAt map[Key]time.Time
}

type Option func(*State)

// WithClock replaces time.Now, for deterministic hold and dash timing.
func WithClock(now func() time.Time) Option {
	return func(s *State) {
		if now != nil {
			s.now = now
		}
	}
}

// NewState loads the persisted mapping from store, falling back to the
// defaults silently. A nil store disables persistence.
func NewState(store Store, opts ...Option) *State {
	s := &State{
		store:     store,
		now:       time.Now,
		current:   map[Key]bool{},
		previous:  map[Key]bool{},
		pressedAt: map[Key]time.Time{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.mapping = loadMapping(store)
	return s
}

func (s *State) Now() time.Time {
	return s.now()
}

// Rotate copies the current snapshot into previous.
func (s *State) Rotate() {
	clear(s.previous)
	for k, down := range s.current {
		if down {
			s.previous[k] = true
		}
	}
}

// Press marks key down. The press time is recorded only on the up-to-down
// transition, so key repeat does not restart holds.
func (s *State) Press(key Key) {
	if s.current[key] {
		return
	}
	s.current[key] = true
	s.pressedAt[key] = s.now()
}

func (s *State) Release(key Key) {
	delete(s.current, key)
	delete(s.pressedAt, key)
}

// ReleaseAll drops every held key, e.g. when the window loses focus.
func (s *State) ReleaseAll() {
	clear(s.current)
	clear(s.pressedAt)
}

func (s *State) KeyDown(key Key) bool {
	return s.current[key]
}

func (s *State) IsDown(action Action) bool {
	for k, a := range s.mapping {
		if a == action && s.current[k] {
			return true
		}
	}
	return false
}

func (s *State) IsJustPressed(action Action) bool {
	for k, a := range s.mapping {
		if a == action && s.current[k] && !s.previous[k] {
			return true
		}
	}
	return false
}

func (s *State) IsJustReleased(action Action) bool {
	for k, a := range s.mapping {
		if a == action && !s.current[k] && s.previous[k] {
			return true
		}
	}
	return false
}

// HoldDuration measures from the earliest press among the held keys bound to
// action. Zero when the action is up.
func (s *State) HoldDuration(action Action) time.Duration {
	var earliest time.Time
	for k, a := range s.mapping {
		if a != action || !s.current[k] {
			continue
		}
		at := s.pressedAt[k]
		if earliest.IsZero() || at.Before(earliest) {
			earliest = at
		}
	}
	if earliest.IsZero() {
		return 0
	}
	return s.now().Sub(earliest)
}

// ConsumeAction clears every key bound to action so no other listener sees
// it this tick. The keys stay up until physically pressed again.
func (s *State) ConsumeAction(action Action) {
	for k, a := range s.mapping {
		if a != action {
			continue
		}
		delete(s.current, k)
		delete(s.previous, k)
		delete(s.pressedAt, k)
	}
}

// Mapping returns a copy of the active bindings.
func (s *State) Mapping() Mapping {
	return s.mapping.Clone()
}

// Rebind points key at action and persists the mapping.
func (s *State) Rebind(key Key, action Action) error {
	if !IsAction(action) {
		return fmt.Errorf("input: rebind %s: unknown action %q", key, action)
	}
	s.mapping[key] = action
	return s.save()
}

// Unbind removes key from the mapping and persists it.
func (s *State) Unbind(key Key) error {
	delete(s.mapping, key)
	return s.save()
}

func (s *State) ResetToDefault() error {
	s.mapping = DefaultMapping()
	return s.save()
}

func (s *State) save() error {
	if s.store == nil {
		return nil
	}
	data, err := EncodeMapping(s.mapping)
	if err != nil {
		return err
	}
	return s.store.Save(BindingsKey, data)
}
