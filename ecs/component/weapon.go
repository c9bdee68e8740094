package component

import "image/color"

// WeaponID identifies a weapon slot (1..3).
type WeaponID int

// WeaponDef is one row of the immutable weapon table.
type WeaponDef struct {
	ID          WeaponID
	Name        string
	Damage      float64
	Cooldown    float64 // ms
	Behavior    WeaponBehavior
	Color       color.NRGBA
	ModelColor  color.NRGBA
	Size        float64
	Speed       float64
	Spread      float64
	Range       float64
	BlastRadius float64
	Gravity     float64
	Sound       string
}
