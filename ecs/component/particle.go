package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// Particle is a short-lived debris cube from an impact or explosion.
type Particle struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
	Life     float64
	Scale    float64
	Color    color.NRGBA
}
