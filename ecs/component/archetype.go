package component

import "image/color"

// ArchetypeID names an enemy template (DRONE, GRUNT, MECH).
type ArchetypeID string

// Archetype is an immutable enemy template.
type Archetype struct {
	ID              ArchetypeID
	HP              float64
	Speed           float64
	AttackRange     float64
	Damage          float64
	AttackRate      float64 // ms between attacks
	Behavior        EnemyBehavior
	SpawnWeight     float64
	Score           int
	Radius          float64
	Color           color.NRGBA
	ProjectileSpeed float64
	ProjectileSize  float64
	BarHeight       float64
}
