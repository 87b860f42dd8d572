package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/yumeututucosmology/RPG-sub000/ai"
	"github.com/yumeututucosmology/RPG-sub000/locomotion"
	"github.com/yumeututucosmology/RPG-sub000/party"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const (
	TuningFile = "tuning.yaml"
	CastFile   = "cast.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// TuningSpec groups every gameplay tunable. Keys missing from the file keep
// their defaults.
type TuningSpec struct {
	Locomotion locomotion.Tuning `yaml:"locomotion"`
	Follower   ai.FollowerTuning `yaml:"follower"`
	Wander     ai.WanderTuning   `yaml:"wander"`
	Party      party.Tuning      `yaml:"party"`
}

func DefaultTuningSpec() TuningSpec {
	return TuningSpec{
		Locomotion: locomotion.DefaultTuning(),
		Follower:   ai.DefaultFollowerTuning(),
		Wander:     ai.DefaultWanderTuning(),
		Party:      party.DefaultTuning(),
	}
}

func LoadTuningSpec() (*TuningSpec, error) {
	data, err := Load(TuningFile)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", TuningFile, err)
	}
	return ParseTuningSpec(data)
}

func ParseTuningSpec(data []byte) (*TuningSpec, error) {
	spec := DefaultTuningSpec()
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", TuningFile, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *TuningSpec) Validate() error {
	l := s.Locomotion
	positive := map[string]float64{
		"locomotion.gravity":      l.Gravity,
		"locomotion.walk_speed":   l.WalkSpeed,
		"locomotion.dash_speed":   l.DashSpeed,
		"locomotion.radius":       l.Radius,
		"locomotion.max_sub_step": l.MaxSubStep,
		"locomotion.max_dt":       l.MaxDT,
		"wander.home_radius":      s.Wander.HomeRadius,
		"party.hold_to_toggle":    s.Party.HoldToToggle,
	}
	for name, v := range positive {
		if v <= 0 {
			return fmt.Errorf("prefabs: %s must be positive, got %g", name, v)
		}
	}
	if l.HorizontalSkin >= l.Radius || l.VerticalInset >= l.Radius {
		return fmt.Errorf("prefabs: probe insets must be smaller than radius %g", l.Radius)
	}
	if l.VerticalInset < l.HorizontalSkin {
		return fmt.Errorf("prefabs: vertical_inset %g must not be smaller than horizontal_skin %g", l.VerticalInset, l.HorizontalSkin)
	}
	if s.Follower.NearDistance >= s.Follower.RecoveryDistance {
		return fmt.Errorf("prefabs: follower near_distance must be below recovery_distance")
	}
	return nil
}

type CastSpec struct {
	Party  []ActorSpec `yaml:"party"`
	NPC    ActorSpec   `yaml:"npc"`
	Sounds []AudioSpec `yaml:"sounds"`
}

type ActorSpec struct {
	Name  string     `yaml:"name"`
	Color *YAMLColor `yaml:"color"`
	Size  float64    `yaml:"size"`
}

type AudioSpec struct {
	Name      string  `yaml:"name"`
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Volume    float64 `yaml:"volume"`
}

func LoadCastSpec() (*CastSpec, error) {
	spec, err := LoadSpec[CastSpec](CastFile)
	if err != nil {
		return nil, err
	}
	if len(spec.Party) != 2 {
		return nil, fmt.Errorf("prefabs: %s: party needs exactly 2 members, got %d", CastFile, len(spec.Party))
	}
	return &spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = parsed
	return nil
}

// ParseColor resolves an SVG colour name or a "#rrggbb[aa]" literal.
func ParseColor(value string) (color.Color, error) {
	if named, ok := colornames.Map[strings.ToLower(value)]; ok {
		return named, nil
	}

	s := strings.TrimPrefix(value, "#")
	if len(s) != 6 && len(s) != 8 {
		return nil, fmt.Errorf("invalid color format: %s", value)
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return nil, err
		}
		rgba[i] = uint8(v)
	}

	return color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}, nil
}
