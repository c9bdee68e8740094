package system

import (
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

var (
	wallColor     = color.NRGBA{R: 0x22, G: 0x22, B: 0x33, A: 0xff}
	obstacleColor = color.NRGBA{R: 0x44, G: 0x44, B: 0x55, A: 0xff}
)

// GenerateLevel builds the boundary walls and the random obstacle field.
// Obstacles never change after this call.
func GenerateLevel(env *Env, w *ecs.World) int {
	if env == nil || w == nil {
		return 0
	}
	spec := env.Catalog.Level
	limit := spec.FloorSize / 2
	h := spec.WallHeight
	t := spec.WallThickness

	walls := []struct{ center, size mgl64.Vec3 }{
		{mgl64.Vec3{0, h / 2, -limit - t/2}, mgl64.Vec3{spec.FloorSize + 2*t, h, t}},
		{mgl64.Vec3{0, h / 2, limit + t/2}, mgl64.Vec3{spec.FloorSize + 2*t, h, t}},
		{mgl64.Vec3{-limit - t/2, h / 2, 0}, mgl64.Vec3{t, h, spec.FloorSize}},
		{mgl64.Vec3{limit + t/2, h / 2, 0}, mgl64.Vec3{t, h, spec.FloorSize}},
	}
	for _, wall := range walls {
		addObstacle(env, w, component.ShapeWall, wall.center, wall.size, wallColor)
	}

	ob := spec.Obstacles
	lo, hi := ob.SizeMin.Vec3(), ob.SizeMax.Vec3()
	placed := 0
	for i := 0; i < ob.Attempts; i++ {
		shape := component.ShapeBox
		if env.Rand.IntN(2) == 1 {
			shape = component.ShapeCylinder
		}
		size := mgl64.Vec3{
			lo.X() + env.Rand.Float64()*(hi.X()-lo.X()),
			lo.Y() + env.Rand.Float64()*(hi.Y()-lo.Y()),
			lo.Z() + env.Rand.Float64()*(hi.Z()-lo.Z()),
		}
		x := (env.Rand.Float64() - 0.5) * ob.Spread
		z := (env.Rand.Float64() - 0.5) * ob.Spread
		if InClearZone(x, z, ob.ClearRadius) {
			continue
		}
		addObstacle(env, w, shape, mgl64.Vec3{x, size.Y() / 2, z}, size, obstacleColor)
		placed++
	}

	slog.Info("level generated", "system", "level", "obstacles", placed, "walls", len(walls))
	return placed + len(walls)
}

// InClearZone reports whether a point falls in the square kept free around
// the spawn.
func InClearZone(x, z, clear float64) bool {
	return x > -clear && x < clear && z > -clear && z < clear
}

func addObstacle(env *Env, w *ecs.World, shape component.ObstacleShape, center, size mgl64.Vec3, c color.NRGBA) ecs.Entity {
	e := w.CreateEntity()
	w.Obstacles().Set(e.ID, component.NewObstacle(shape, center, size))
	env.Visual.Spawn(e, component.Renderable{
		Kind:     component.RenderObstacle,
		Position: center,
		Size:     size,
		Color:    c,
		Shape:    shape,
	})
	return e
}
