package component

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Player is the single player resource. Velocity is camera-local: X strafe
// (positive right), Y vertical, Z forward (positive ahead).
type Player struct {
	HP       float64
	MaxHP    float64
	Score    int
	Weapon   WeaponID
	LastShot float64 // ms, -Inf until the first shot

	Position mgl64.Vec3
	Yaw      float64
	Pitch    float64
	Velocity mgl64.Vec3
	Grounded bool
}

// NewPlayer returns a player at spawn with full health and the first weapon.
func NewPlayer(maxHP float64, spawn mgl64.Vec3) *Player {
	return &Player{
		HP:       maxHP,
		MaxHP:    maxHP,
		Weapon:   1,
		LastShot: math.Inf(-1),
		Position: spawn,
	}
}

// Alive reports whether the player still has health.
func (p *Player) Alive() bool {
	return p != nil && p.HP > 0
}
