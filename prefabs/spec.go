package prefabs

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
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

type WeaponTableSpec struct {
	Weapons []WeaponSpec `yaml:"weapons"`
}

type WeaponSpec struct {
	ID          int       `yaml:"id"`
	Name        string    `yaml:"name"`
	Behavior    string    `yaml:"behavior"`
	Damage      float64   `yaml:"damage"`
	Cooldown    float64   `yaml:"cooldown"`
	Color       YAMLColor `yaml:"color"`
	ModelColor  YAMLColor `yaml:"model_color"`
	Size        float64   `yaml:"size"`
	Speed       float64   `yaml:"speed"`
	Spread      float64   `yaml:"spread"`
	Range       float64   `yaml:"range"`
	BlastRadius float64   `yaml:"blast_radius"`
	Gravity     float64   `yaml:"gravity"`
	Sound       string    `yaml:"sound"`
}

type ArchetypeTableSpec struct {
	Archetypes []ArchetypeSpec `yaml:"archetypes"`
}

type ArchetypeSpec struct {
	ID              string    `yaml:"id"`
	Behavior        string    `yaml:"behavior"`
	HP              float64   `yaml:"hp"`
	Speed           float64   `yaml:"speed"`
	AttackRange     float64   `yaml:"attack_range"`
	Damage          float64   `yaml:"damage"`
	AttackRate      float64   `yaml:"attack_rate"`
	SpawnWeight     float64   `yaml:"spawn_weight"`
	Score           int       `yaml:"score"`
	Radius          float64   `yaml:"radius"`
	Color           YAMLColor `yaml:"color"`
	ProjectileSpeed float64   `yaml:"projectile_speed"`
	ProjectileSize  float64   `yaml:"projectile_size"`
	BarHeight       float64   `yaml:"bar_height"`
}

type PlayerSpec struct {
	MaxHP        float64      `yaml:"max_hp"`
	Spawn        Vec3Spec     `yaml:"spawn"`
	MoveSpeed    float64      `yaml:"move_speed"`
	ImpulseScale float64      `yaml:"impulse_scale"`
	Damping      float64      `yaml:"damping"`
	Gravity      float64      `yaml:"gravity"`
	JumpSpeed    float64      `yaml:"jump_speed"`
	EyeHeight    float64      `yaml:"eye_height"`
	LowHealth    float64      `yaml:"low_health"`
	Settings     SettingsSpec `yaml:"settings"`
	Combat       CombatSpec   `yaml:"combat"`
}

type SettingsSpec struct {
	Sensitivity         RangeSpec `yaml:"sensitivity"`
	MoveSpeedMultiplier RangeSpec `yaml:"move_speed_multiplier"`
}

// RangeSpec bounds a runtime-adjustable setting.
type RangeSpec struct {
	Default float64 `yaml:"default"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
}

// Clamp bounds v to [Min, Max]. An unset range leaves v alone.
func (r RangeSpec) Clamp(v float64) float64 {
	if r.Max <= r.Min {
		return v
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

type CombatSpec struct {
	MeleeReach         float64 `yaml:"melee_reach"`
	HoldFactor         float64 `yaml:"hold_factor"`
	ShotHitPadding     float64 `yaml:"shot_hit_padding"`
	PlayerShotRange    float64 `yaml:"player_shot_range"`
	EnemyShotHitRadius float64 `yaml:"enemy_shot_hit_radius"`
	EnemyShotRange     float64 `yaml:"enemy_shot_range"`
	EnemyShotLift      float64 `yaml:"enemy_shot_lift"`
	MuzzleOffset       float64 `yaml:"muzzle_offset"`
	RecoilOffset       float64 `yaml:"recoil_offset"`
	RecoilMs           float64 `yaml:"recoil_ms"`
	MuzzleFlashMs      float64 `yaml:"muzzle_flash_ms"`
	BeamMs             float64 `yaml:"beam_ms"`
	BeamLength         float64 `yaml:"beam_length"`
	HitFlashMs         float64 `yaml:"hit_flash_ms"`
	DamageFlashMs      float64 `yaml:"damage_flash_ms"`
}

type LevelSpec struct {
	FloorSize     float64       `yaml:"floor_size"`
	WallHeight    float64       `yaml:"wall_height"`
	WallThickness float64       `yaml:"wall_thickness"`
	Obstacles     ObstaclesSpec `yaml:"obstacles"`
	Particles     ParticleSpec  `yaml:"particles"`
	MaxDelta      float64       `yaml:"max_delta"`
}

type ObstaclesSpec struct {
	Attempts    int      `yaml:"attempts"`
	Spread      float64  `yaml:"spread"`
	ClearRadius float64  `yaml:"clear_radius"`
	SizeMin     Vec3Spec `yaml:"size_min"`
	SizeMax     Vec3Spec `yaml:"size_max"`
}

type ParticleSpec struct {
	MaxSpeed            float64 `yaml:"max_speed"`
	LifeDecay           float64 `yaml:"life_decay"`
	ScaleDecay          float64 `yaml:"scale_decay"`
	NormalizeScaleDecay bool    `yaml:"normalize_scale_decay"`
	ImpactCount         int     `yaml:"impact_count"`
	DeathCount          int     `yaml:"death_count"`
	ExplosionCount      int     `yaml:"explosion_count"`
}

type SpawnerSpec struct {
	IntervalMs   float64 `yaml:"interval_ms"`
	Cap          int     `yaml:"cap"`
	MinDistance  float64 `yaml:"min_distance"`
	MaxDistance  float64 `yaml:"max_distance"`
	HeightOffset float64 `yaml:"height_offset"`
	Director     string  `yaml:"director"`
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

type YAMLColor struct {
	color.NRGBA
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

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// MarshalYAML writes the colour back in #rrggbbaa form.
func (c YAMLColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A), nil
}
