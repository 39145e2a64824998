package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

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

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

func (s SizeSpec) valid() bool {
	return s.Width > 0 && s.Height > 0
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerSpec struct {
	Name              string   `yaml:"name"`
	MoveSpeed         float64  `yaml:"move_speed"`
	JumpVelocity      float64  `yaml:"jump_velocity"`
	SwimThrust        float64  `yaml:"swim_thrust"`
	WaterGravityScale float64  `yaml:"water_gravity_scale"`
	SwimHoldSpeed     float64  `yaml:"swim_hold_speed"`
	WaterDrag         float64  `yaml:"water_drag"`
	Collider          SizeSpec `yaml:"collider"`
}

func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:              "player",
		MoveSpeed:         300,
		JumpVelocity:      650,
		SwimThrust:        420,
		WaterGravityScale: 0.35,
		SwimHoldSpeed:     120,
		WaterDrag:         4.0,
		Collider:          SizeSpec{Width: 64, Height: 64},
	}
}

func (s PlayerSpec) Validate() error {
	switch {
	case s.MoveSpeed <= 0:
		return fmt.Errorf("%w: player move_speed must be positive", ErrInvalidSpec)
	case s.JumpVelocity <= 0:
		return fmt.Errorf("%w: player jump_velocity must be positive", ErrInvalidSpec)
	case s.WaterGravityScale < 0:
		return fmt.Errorf("%w: player water_gravity_scale is negative", ErrInvalidSpec)
	case s.WaterDrag < 0 || s.SwimThrust < 0 || s.SwimHoldSpeed < 0:
		return fmt.Errorf("%w: player swim tunables must not be negative", ErrInvalidSpec)
	case !s.Collider.valid():
		return fmt.Errorf("%w: player collider must have a positive size", ErrInvalidSpec)
	}
	return nil
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("player.yaml: %w", err)
	}
	return &spec, nil
}

type CoinSpec struct {
	SizeSpec `yaml:",inline"`
	Value    int `yaml:"value"`
}

// PaletteSpec colors the debug renderer. Unset entries keep their default.
type PaletteSpec struct {
	Sky    *YAMLColor `yaml:"sky"`
	Water  *YAMLColor `yaml:"water"`
	Block  *YAMLColor `yaml:"block"`
	Pipe   *YAMLColor `yaml:"pipe"`
	Flag   *YAMLColor `yaml:"flag"`
	Coin   *YAMLColor `yaml:"coin"`
	Player *YAMLColor `yaml:"player"`
	Hazard *YAMLColor `yaml:"hazard"`
}

// WorldSpec sizes everything a level builder places.
type WorldSpec struct {
	TileSize float64     `yaml:"tile_size"`
	Pipe     SizeSpec    `yaml:"pipe"`
	Flag     SizeSpec    `yaml:"flag"`
	Coin     CoinSpec    `yaml:"coin"`
	Start    PointSpec   `yaml:"start"`
	Palette  PaletteSpec `yaml:"palette"`
}

func DefaultWorldSpec() WorldSpec {
	return WorldSpec{
		TileSize: 50,
		Pipe:     SizeSpec{Width: 100, Height: 100},
		Flag:     SizeSpec{Width: 50, Height: 50},
		Coin:     CoinSpec{SizeSpec: SizeSpec{Width: 30, Height: 30}, Value: 10},
		Start:    PointSpec{X: 128, Y: 256},
	}
}

func (s WorldSpec) Validate() error {
	switch {
	case s.TileSize <= 0:
		return fmt.Errorf("%w: world tile_size must be positive", ErrInvalidSpec)
	case !s.Pipe.valid() || !s.Flag.valid() || !s.Coin.valid():
		return fmt.Errorf("%w: world pipe, flag and coin need positive sizes", ErrInvalidSpec)
	case s.Coin.Value < 0:
		return fmt.Errorf("%w: world coin value is negative", ErrInvalidSpec)
	}
	return nil
}

func LoadWorldSpec() (*WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("world.yaml: %w", err)
	}
	return &spec, nil
}

type TransitionSpec struct {
	FadeOut float64    `yaml:"fade_out"`
	FadeIn  float64    `yaml:"fade_in"`
	Ease    string     `yaml:"ease"`
	Color   *YAMLColor `yaml:"color"`
}

func DefaultTransitionSpec() TransitionSpec {
	return TransitionSpec{FadeOut: 0.5, FadeIn: 0.5, Ease: "linear"}
}

func (s TransitionSpec) Validate() error {
	if s.FadeOut <= 0 || s.FadeIn <= 0 {
		return fmt.Errorf("%w: transition durations must be positive", ErrInvalidSpec)
	}
	return nil
}

func LoadTransitionSpec() (*TransitionSpec, error) {
	spec, err := LoadSpec[TransitionSpec]("transition.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("transition.yaml: %w", err)
	}
	return &spec, nil
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

// Or returns the parsed color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}
