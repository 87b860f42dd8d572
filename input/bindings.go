package input

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var errEmptyMapping = errors.New("input: no usable bindings")

type bindingsFile struct {
	Bindings map[string]string `toml:"bindings"`
}

// EncodeMapping renders the mapping as a flat TOML table of key = "action".
func EncodeMapping(m Mapping) ([]byte, error) {
	f := bindingsFile{Bindings: make(map[string]string, len(m))}
	for k, a := range m {
		f.Bindings[string(k)] = string(a)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(f); err != nil {
		return nil, fmt.Errorf("input: encode bindings: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeMapping parses a stored table. Entries naming unknown actions are
// dropped; a table with nothing usable is an error.
func DecodeMapping(data []byte) (Mapping, error) {
	var f bindingsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("input: decode bindings: %w", err)
	}
	m := make(Mapping, len(f.Bindings))
	for k, a := range f.Bindings {
		if k == "" || !IsAction(Action(a)) {
			continue
		}
		m[Key(k)] = Action(a)
	}
	if len(m) == 0 {
		return nil, errEmptyMapping
	}
	return m, nil
}

// loadMapping returns the stored mapping, or the defaults on any failure.
func loadMapping(store Store) Mapping {
	if store == nil {
		return DefaultMapping()
	}
	data, err := store.Load(BindingsKey)
	if err != nil {
		return DefaultMapping()
	}
	m, err := DecodeMapping(data)
	if err != nil {
		return DefaultMapping()
	}
	return m
}
