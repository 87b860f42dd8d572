package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is a stage layout. Blocks include the base ground (height 0).
type Level struct {
	Name   string  `json:"name"`
	Blocks []Block `json:"blocks"`
	Spawn  Point   `json:"spawn"`
	Party  []Point `json:"party"`
	NPCs   []NPC   `json:"npcs,omitempty"`
}

// Block is a footprint centred on (X, Z).
type Block struct {
	X      float64 `json:"x"`
	Z      float64 `json:"z"`
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type NPC struct {
	Name   string  `json:"name"`
	Home   Point   `json:"home"`
	Radius float64 `json:"radius,omitempty"`
	Color  string  `json:"color,omitempty"`
	Script string  `json:"script,omitempty"`
}

// LoadLevelFromFS loads an embedded level; the .json suffix is optional.
func LoadLevelFromFS(name string) (*Level, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return decode(data)
}

// LoadLevelFile loads a level from disk.
func LoadLevelFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	return &lvl, nil
}
