package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window     WindowConfig     `toml:"window"`
	Logging    LoggingConfig    `toml:"logging"`
	Simulation SimulationConfig `toml:"simulation"`
	Storage    StorageConfig    `toml:"storage"`
	Level      LevelConfig      `toml:"level"`
}

type WindowConfig struct {
	Title     string `toml:"title"`
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Resizable bool   `toml:"resizable"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type SimulationConfig struct {
	MaxDT float64 `toml:"max_dt"` // seconds; 0 keeps the tuning value
	Seed  int64   `toml:"seed"`   // NPC decisions; 0 seeds from the clock
}

type StorageConfig struct {
	Dir string `toml:"dir"` // key bindings live here
}

type LevelConfig struct {
	Name string `toml:"name"`
}

// Load overlays the file at path on the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Simulation.MaxDT < 0 {
		return nil, fmt.Errorf("config %s: simulation.max_dt must not be negative", path)
	}
	return cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return defaults()
}

func defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     "party courtyard",
			Width:     1280,
			Height:    720,
			Resizable: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Storage: StorageConfig{
			Dir: "save",
		},
		Level: LevelConfig{
			Name: "courtyard",
		},
	}
}
