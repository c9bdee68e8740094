package component

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

type RenderKind int

const (
	RenderEnemy RenderKind = iota + 1
	RenderObstacle
	RenderPlayerShot
	RenderEnemyShot
	RenderParticle
	RenderBeam
	RenderMuzzleFlash
)

// Renderable describes a visual the core asks the visual layer to create.
type Renderable struct {
	Kind     RenderKind
	Position mgl64.Vec3
	End      mgl64.Vec3 // beams only
	Size     mgl64.Vec3
	Color    color.NRGBA
	// Archetype and BarHeight are set for enemies so the visual layer can pick a
	// mesh and attach the health bar.
	Archetype ArchetypeID
	BarHeight float64
	Shape     ObstacleShape
}
