package component

import "fmt"

// WeaponBehavior selects how a weapon resolves a shot.
type WeaponBehavior int

const (
	Hitscan WeaponBehavior = iota + 1
	ProjectileShot
	Explosive
)

func (b WeaponBehavior) String() string {
	switch b {
	case Hitscan:
		return "hitscan"
	case ProjectileShot:
		return "projectile"
	case Explosive:
		return "explosive"
	default:
		return fmt.Sprintf("WeaponBehavior(%d)", int(b))
	}
}

// ParseWeaponBehavior maps the table name of a behavior to its value.
func ParseWeaponBehavior(s string) (WeaponBehavior, error) {
	switch s {
	case "hitscan":
		return Hitscan, nil
	case "projectile":
		return ProjectileShot, nil
	case "explosive":
		return Explosive, nil
	}
	return 0, fmt.Errorf("unknown weapon behavior %q", s)
}

// EnemyBehavior selects how an archetype attacks.
type EnemyBehavior int

const (
	Melee EnemyBehavior = iota + 1
	Ranged
	Heavy
)

func (b EnemyBehavior) String() string {
	switch b {
	case Melee:
		return "melee"
	case Ranged:
		return "ranged"
	case Heavy:
		return "heavy"
	default:
		return fmt.Sprintf("EnemyBehavior(%d)", int(b))
	}
}

func ParseEnemyBehavior(s string) (EnemyBehavior, error) {
	switch s {
	case "melee":
		return Melee, nil
	case "ranged":
		return Ranged, nil
	case "heavy":
		return Heavy, nil
	}
	return 0, fmt.Errorf("unknown enemy behavior %q", s)
}

// Side tells which team fired a projectile.
type Side int

const (
	PlayerSide Side = iota + 1
	EnemySide
)
