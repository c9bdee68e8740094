package prefabs

import (
	"errors"
	"fmt"
	"math"

	"github.com/milk9111/fpsarena/ecs/component"
)

var ErrInvalidCatalog = errors.New("prefabs: invalid catalog")

// Weapon slots every catalog must define.
var requiredWeapons = []component.WeaponID{1, 2, 3}

// Catalog is the immutable set of definition tables the simulation reads.
// A hot reload builds a fresh Catalog and swaps the pointer.
type Catalog struct {
	Weapons    map[component.WeaponID]*component.WeaponDef
	Archetypes []*component.Archetype
	Player     PlayerSpec
	Level      LevelSpec
	Spawner    SpawnerSpec
}

// LoadCatalog reads every table (disk override first, embedded fallback) and
// validates the result.
func LoadCatalog() (*Catalog, error) {
	weapons, err := LoadSpec[WeaponTableSpec]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	archetypes, err := LoadSpec[ArchetypeTableSpec]("enemies.yaml")
	if err != nil {
		return nil, err
	}
	player, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	level, err := LoadSpec[LevelSpec]("level.yaml")
	if err != nil {
		return nil, err
	}
	spawner, err := LoadSpec[SpawnerSpec]("spawner.yaml")
	if err != nil {
		return nil, err
	}
	return BuildCatalog(weapons, archetypes, player, level, spawner)
}

// MustLoadCatalog is LoadCatalog for callers that cannot run without tables.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

// BuildCatalog converts decoded specs into runtime definitions.
func BuildCatalog(weapons WeaponTableSpec, archetypes ArchetypeTableSpec, player PlayerSpec, level LevelSpec, spawner SpawnerSpec) (*Catalog, error) {
	c := &Catalog{
		Weapons: make(map[component.WeaponID]*component.WeaponDef, len(weapons.Weapons)),
		Player:  player,
		Level:   level,
		Spawner: spawner,
	}

	for _, ws := range weapons.Weapons {
		behavior, err := component.ParseWeaponBehavior(ws.Behavior)
		if err != nil {
			return nil, fmt.Errorf("%w: weapon %d: %w", ErrInvalidCatalog, ws.ID, err)
		}
		id := component.WeaponID(ws.ID)
		if _, dup := c.Weapons[id]; dup {
			return nil, fmt.Errorf("%w: duplicate weapon id %d", ErrInvalidCatalog, ws.ID)
		}
		c.Weapons[id] = &component.WeaponDef{
			ID:          id,
			Name:        ws.Name,
			Damage:      ws.Damage,
			Cooldown:    ws.Cooldown,
			Behavior:    behavior,
			Color:       ws.Color.NRGBA,
			ModelColor:  ws.ModelColor.NRGBA,
			Size:        ws.Size,
			Speed:       ws.Speed,
			Spread:      ws.Spread,
			Range:       ws.Range,
			BlastRadius: ws.BlastRadius,
			Gravity:     ws.Gravity,
			Sound:       ws.Sound,
		}
	}

	seen := make(map[component.ArchetypeID]bool, len(archetypes.Archetypes))
	for _, as := range archetypes.Archetypes {
		behavior, err := component.ParseEnemyBehavior(as.Behavior)
		if err != nil {
			return nil, fmt.Errorf("%w: archetype %s: %w", ErrInvalidCatalog, as.ID, err)
		}
		id := component.ArchetypeID(as.ID)
		if seen[id] {
			return nil, fmt.Errorf("%w: duplicate archetype %s", ErrInvalidCatalog, as.ID)
		}
		seen[id] = true
		barHeight := as.BarHeight
		if barHeight == 0 {
			barHeight = as.Radius + 0.6
		}
		c.Archetypes = append(c.Archetypes, &component.Archetype{
			ID:              id,
			HP:              as.HP,
			Speed:           as.Speed,
			AttackRange:     as.AttackRange,
			Damage:          as.Damage,
			AttackRate:      as.AttackRate,
			Behavior:        behavior,
			SpawnWeight:     as.SpawnWeight,
			Score:           as.Score,
			Radius:          as.Radius,
			Color:           as.Color.NRGBA,
			ProjectileSpeed: as.ProjectileSpeed,
			ProjectileSize:  as.ProjectileSize,
			BarHeight:       barHeight,
		})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the invariants the simulation relies on.
func (c *Catalog) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: nil catalog", ErrInvalidCatalog)
	}
	for _, id := range requiredWeapons {
		def, ok := c.Weapons[id]
		if !ok {
			return fmt.Errorf("%w: missing weapon slot %d", ErrInvalidCatalog, id)
		}
		if def.Cooldown < 0 || def.Damage < 0 {
			return fmt.Errorf("%w: weapon %d has negative damage or cooldown", ErrInvalidCatalog, id)
		}
		switch def.Behavior {
		case component.Hitscan:
			if def.Range <= 0 {
				return fmt.Errorf("%w: hitscan weapon %d needs a range", ErrInvalidCatalog, id)
			}
		case component.ProjectileShot:
			if def.Speed <= 0 {
				return fmt.Errorf("%w: projectile weapon %d needs a speed", ErrInvalidCatalog, id)
			}
		case component.Explosive:
			if def.Speed <= 0 || def.BlastRadius <= 0 {
				return fmt.Errorf("%w: explosive weapon %d needs speed and blast radius", ErrInvalidCatalog, id)
			}
		}
	}
	if len(c.Archetypes) == 0 {
		return fmt.Errorf("%w: no archetypes", ErrInvalidCatalog)
	}
	total := 0.0
	for _, a := range c.Archetypes {
		if a.HP <= 0 || a.Radius <= 0 {
			return fmt.Errorf("%w: archetype %s needs positive hp and radius", ErrInvalidCatalog, a.ID)
		}
		if a.SpawnWeight < 0 || math.IsNaN(a.SpawnWeight) {
			return fmt.Errorf("%w: archetype %s has a bad spawn weight", ErrInvalidCatalog, a.ID)
		}
		if a.Behavior != component.Melee && a.ProjectileSpeed <= 0 {
			return fmt.Errorf("%w: %s archetype %s needs a projectile speed", ErrInvalidCatalog, a.Behavior, a.ID)
		}
		total += a.SpawnWeight
	}
	if total <= 0 {
		return fmt.Errorf("%w: spawn weights sum to zero", ErrInvalidCatalog)
	}
	if c.Player.MaxHP <= 0 {
		return fmt.Errorf("%w: player max_hp must be positive", ErrInvalidCatalog)
	}
	if c.Spawner.IntervalMs <= 0 || c.Spawner.MaxDistance < c.Spawner.MinDistance {
		return fmt.Errorf("%w: bad spawner timing or distances", ErrInvalidCatalog)
	}
	return nil
}

// Weapon returns the definition for a slot. Asking for a slot the catalog
// does not define is a programming error.
func (c *Catalog) Weapon(id component.WeaponID) *component.WeaponDef {
	def, ok := c.Weapons[id]
	if !ok {
		panic(fmt.Sprintf("prefabs: unknown weapon id %d", id))
	}
	return def
}

// HasWeapon reports whether a slot is defined.
func (c *Catalog) HasWeapon(id component.WeaponID) bool {
	_, ok := c.Weapons[id]
	return ok
}

// Archetype returns the template for an id and panics for unknown ids.
func (c *Catalog) Archetype(id component.ArchetypeID) *component.Archetype {
	for _, a := range c.Archetypes {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("prefabs: unknown archetype %q", id))
}
