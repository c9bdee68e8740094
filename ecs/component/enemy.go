package component

import "github.com/go-gl/mathgl/mgl64"

// Enemy is the logic half of an enemy; its visual is addressed by entity id.
type Enemy struct {
	Tag        string
	Archetype  *Archetype
	Position   mgl64.Vec3
	Yaw        float64
	Pitch      float64
	HP         float64
	MaxHP      float64
	LastAttack float64 // ms
	// Flashing is set while the white hit flash is showing.
	Flashing bool
}

// HealthFraction is hp/maxHp clamped to [0, 1].
func (e *Enemy) HealthFraction() float64 {
	if e == nil || e.MaxHP <= 0 {
		return 0
	}
	f := e.HP / e.MaxHP
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
