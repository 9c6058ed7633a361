package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	PlayerSpecFile = "player.yaml"
	WorldSpecFile  = "world.yaml"
)

var ErrBadTuning = errors.New("prefabs: invalid tuning")

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

// PlayerSpec is the body's size and movement tuning. Velocities are in
// pixels per tick.
type PlayerSpec struct {
	Name             string  `yaml:"name"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	MoveSpeed        float64 `yaml:"move_speed"`
	JumpPower        float64 `yaml:"jump_power"`
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	CeilingBounce    float64 `yaml:"ceiling_bounce"`
}

func (s *PlayerSpec) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: player size %vx%v", ErrBadTuning, s.Width, s.Height)
	}
	if s.Gravity <= 0 || s.TerminalVelocity <= 0 {
		return fmt.Errorf("%w: gravity %v, terminal velocity %v", ErrBadTuning, s.Gravity, s.TerminalVelocity)
	}
	if s.MoveSpeed < 0 || s.JumpPower < 0 {
		return fmt.Errorf("%w: negative speed", ErrBadTuning)
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec](PlayerSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", PlayerSpecFile, err)
	}
	return &spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// WorldSpec holds level-independent tuning: how far below the level the
// body may fall, how spawn points are derived and the render palette.
type WorldSpec struct {
	FallTolerance    float64     `yaml:"fall_tolerance"`
	SpawnOffset      PointSpec   `yaml:"spawn_offset"`
	DefaultSpawn     PointSpec   `yaml:"default_spawn"`
	GroundSampleStep float64     `yaml:"ground_sample_step"`
	Palette          PaletteSpec `yaml:"palette"`
	Tones            []ToneSpec  `yaml:"tones"`
}

func (s *WorldSpec) Validate() error {
	if s.FallTolerance < 0 {
		return fmt.Errorf("%w: fall tolerance %v", ErrBadTuning, s.FallTolerance)
	}
	if s.GroundSampleStep <= 0 {
		return fmt.Errorf("%w: ground sample step %v", ErrBadTuning, s.GroundSampleStep)
	}
	return nil
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec](WorldSpecFile)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", WorldSpecFile, err)
	}
	return &spec, nil
}

// PaletteSpec colours the render feed. Missing entries fall back to the
// renderer's defaults.
type PaletteSpec struct {
	Background *YAMLColor `yaml:"background"`
	Platform   *YAMLColor `yaml:"platform"`
	Moving     *YAMLColor `yaml:"moving"`
	Outline    *YAMLColor `yaml:"outline"`
	Wall       *YAMLColor `yaml:"wall"`
	Hazard     *YAMLColor `yaml:"hazard"`
	Lava       *YAMLColor `yaml:"lava"`
	Finish     *YAMLColor `yaml:"finish"`
	Player     *YAMLColor `yaml:"player"`
}

// ToneSpec is a short synthesized cue played for a game event.
type ToneSpec struct {
	Event     string  `yaml:"event"`
	Frequency float64 `yaml:"frequency"`
	Millis    int     `yaml:"millis"`
	Volume    float64 `yaml:"volume"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the colour, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
