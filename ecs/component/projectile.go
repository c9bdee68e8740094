package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Projectile is a simulated shot from either side.
type Projectile struct {
	Owner       Side
	Behavior    WeaponBehavior
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Gravity     float64
	Damage      float64
	BlastRadius float64
	Size        float64
	Color       color.NRGBA
	Active      bool
	Exploded    bool
}
