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
	Radius float64 `yaml:"radius"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PlayerSpec struct {
	Name              string    `yaml:"name"`
	Texture           string    `yaml:"texture"`
	MaxHealth         int       `yaml:"max_health"`
	Speed             float64   `yaml:"speed"`
	InvulnerabilityMs int64     `yaml:"invulnerability_ms"`
	Size              SizeSpec  `yaml:"size"`
	Spawn             PointSpec `yaml:"spawn"`
}

type EnemySpec struct {
	Kind            string   `yaml:"kind"`
	Texture         string   `yaml:"texture"`
	Health          int      `yaml:"health"`
	Speed           float64  `yaml:"speed"`
	ShootCooldownMs int64    `yaml:"shoot_cooldown_ms"`
	Size            SizeSpec `yaml:"size"`
}

type EnemiesSpec struct {
	Enemies []EnemySpec `yaml:"enemies"`
}

// Find returns the stats for an enemy kind name.
func (s EnemiesSpec) Find(kind string) (EnemySpec, bool) {
	for _, e := range s.Enemies {
		if strings.EqualFold(e.Kind, kind) {
			return e, true
		}
	}
	return EnemySpec{}, false
}

type ProjectileSpec struct {
	Speed    float64           `yaml:"speed"`
	Damage   int               `yaml:"damage"`
	Size     SizeSpec          `yaml:"size"`
	Textures map[string]string `yaml:"textures"`
}

// TextureFor returns the shot texture for an owner kind name.
func (s ProjectileSpec) TextureFor(kind string) string {
	if t, ok := s.Textures[strings.ToLower(kind)]; ok {
		return t
	}
	return "shot"
}

type RosterEntrySpec struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

type ObstaclesSpec struct {
	Count   int      `yaml:"count"`
	Texture string   `yaml:"texture"`
	Size    SizeSpec `yaml:"size"`
}

type DoorSpec struct {
	Position PointSpec `yaml:"position"`
	Size     SizeSpec  `yaml:"size"`
}

type CoinSpec struct {
	SparkleMs int64    `yaml:"sparkle_ms"`
	Texture   string   `yaml:"texture"`
	Size      SizeSpec `yaml:"size"`
}

type RoomSpec struct {
	Name          string            `yaml:"name"`
	Width         float64           `yaml:"width"`
	Height        float64           `yaml:"height"`
	WallThickness float64           `yaml:"wall_thickness"`
	Margin        float64           `yaml:"margin"`
	Obstacles     ObstaclesSpec     `yaml:"obstacles"`
	Door          DoorSpec          `yaml:"door"`
	Roster        []RosterEntrySpec `yaml:"roster"`
	RosterScript  string            `yaml:"roster_script"`
	Coin          CoinSpec          `yaml:"coin"`
}

// GameSpec bundles every prefab the gameplay core reads.
type GameSpec struct {
	Player     PlayerSpec
	Enemies    EnemiesSpec
	Projectile ProjectileSpec
	Room       RoomSpec
	Palette    PaletteSpec
}

// SpecFiles lists the prefab files LoadGameSpec reads, for the watcher.
var SpecFiles = []string{"player.yaml", "enemies.yaml", "projectile.yaml", "room.yaml", "palette.yaml"}

func LoadGameSpec() (*GameSpec, error) {
	var (
		spec GameSpec
		err  error
	)
	if spec.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if spec.Enemies, err = LoadSpec[EnemiesSpec]("enemies.yaml"); err != nil {
		return nil, err
	}
	if spec.Projectile, err = LoadSpec[ProjectileSpec]("projectile.yaml"); err != nil {
		return nil, err
	}
	if spec.Room, err = LoadSpec[RoomSpec]("room.yaml"); err != nil {
		return nil, err
	}
	if spec.Palette, err = LoadSpec[PaletteSpec]("palette.yaml"); err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate rejects specs the core cannot run with. Roster kinds must name a
// known enemy spec.
func (s *GameSpec) Validate() error {
	if s.Player.MaxHealth <= 0 {
		return fmt.Errorf("%w: player max_health must be positive", ErrInvalidSpec)
	}
	if s.Player.InvulnerabilityMs < 0 {
		return fmt.Errorf("%w: player invulnerability_ms must not be negative", ErrInvalidSpec)
	}
	if s.Room.Width <= 2*s.Room.Margin || s.Room.Height <= 2*s.Room.Margin {
		return fmt.Errorf("%w: room %q is smaller than its margins", ErrInvalidSpec, s.Room.Name)
	}
	if s.Room.Obstacles.Count < 0 {
		return fmt.Errorf("%w: obstacle count must not be negative", ErrInvalidSpec)
	}
	if s.Projectile.Speed <= 0 {
		return fmt.Errorf("%w: projectile speed must be positive", ErrInvalidSpec)
	}
	for _, e := range s.Enemies.Enemies {
		if e.Health <= 0 || e.Speed < 0 || e.ShootCooldownMs < 0 {
			return fmt.Errorf("%w: enemy %q has invalid stats", ErrInvalidSpec, e.Kind)
		}
	}
	for i, r := range s.Room.Roster {
		if _, ok := s.Enemies.Find(r.Kind); !ok {
			return fmt.Errorf("%w: roster entry %d has unknown kind %q", ErrInvalidSpec, i, r.Kind)
		}
	}
	return nil
}

// PaletteSpec maps texture names to flat colors for the renderer.
type PaletteSpec struct {
	Background *YAMLColor            `yaml:"background"`
	Textures   map[string]*YAMLColor `yaml:"textures"`
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
