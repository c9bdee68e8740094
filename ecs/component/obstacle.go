package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

type ObstacleShape int

const (
	ShapeBox ObstacleShape = iota
	ShapeCylinder
	ShapeWall
)

// Obstacle is static world geometry. Footprint is the XZ extent (L/R on X,
// B/T on Z); MinY/MaxY bound it vertically.
type Obstacle struct {
	Shape     ObstacleShape
	Footprint cp.BB
	MinY      float64
	MaxY      float64
}

// NewObstacle builds an obstacle from a center and full size.
func NewObstacle(shape ObstacleShape, center, size mgl64.Vec3) Obstacle {
	hx, hy, hz := size.X()/2, size.Y()/2, size.Z()/2
	return Obstacle{
		Shape:     shape,
		Footprint: cp.NewBBForExtents(cp.Vector{X: center.X(), Y: center.Z()}, hx, hz),
		MinY:      center.Y() - hy,
		MaxY:      center.Y() + hy,
	}
}

func (o Obstacle) Min() mgl64.Vec3 {
	return mgl64.Vec3{o.Footprint.L, o.MinY, o.Footprint.B}
}

func (o Obstacle) Max() mgl64.Vec3 {
	return mgl64.Vec3{o.Footprint.R, o.MaxY, o.Footprint.T}
}

// Overlaps reports an inclusive AABB overlap.
func (o Obstacle) Overlaps(other Obstacle) bool {
	return o.Footprint.Intersects(other.Footprint) && o.MinY <= other.MaxY && other.MinY <= o.MaxY
}
