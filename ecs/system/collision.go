package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

// Player collision box relative to the eye position.
const (
	playerHalfWidth = 0.5
	playerBelowEye  = 1.5
	playerAboveEye  = 0.5
)

// PlayerBox is the player's world AABB for an eye position.
func PlayerBox(pos mgl64.Vec3) component.Obstacle {
	return component.Obstacle{
		Footprint: cp.NewBBForExtents(cp.Vector{X: pos.X(), Y: pos.Z()}, playerHalfWidth, playerHalfWidth),
		MinY:      pos.Y() - playerBelowEye,
		MaxY:      pos.Y() + playerAboveEye,
	}
}

// CheckPlayerCollision reports whether the player box at pos overlaps any
// obstacle. It has no side effects.
func CheckPlayerCollision(w *ecs.World, pos mgl64.Vec3) bool {
	if w == nil {
		return false
	}
	box := PlayerBox(pos)
	for _, o := range w.Obstacles().Values() {
		if box.Overlaps(o) {
			return true
		}
	}
	return false
}

type HitKind int

const (
	HitNone HitKind = iota
	HitEnemy
	HitWorld
)

// RayHit is the nearest intersection along a ray.
type RayHit struct {
	Kind     HitKind
	Entity   ecs.Entity
	Point    mgl64.Vec3
	Distance float64
}

// RaycastEnemies returns the nearest enemy sphere along the ray. Range is not
// applied here.
func RaycastEnemies(w *ecs.World, origin, dir mgl64.Vec3) RayHit {
	best := RayHit{Distance: math.Inf(1)}
	ecs.Each(w, w.Enemies(), func(e ecs.Entity, enemy *component.Enemy) {
		if enemy == nil || enemy.Archetype == nil {
			return
		}
		t, ok := raySphere(origin, dir, enemy.Position, enemy.Archetype.Radius)
		if !ok || t >= best.Distance {
			return
		}
		best = RayHit{Kind: HitEnemy, Entity: e, Distance: t}
	})
	if best.Kind == HitNone {
		return RayHit{}
	}
	best.Point = origin.Add(dir.Mul(best.Distance))
	return best
}

// RaycastWorld returns the nearest static geometry hit: the floor plane inside
// the level bounds and every obstacle box.
func RaycastWorld(w *ecs.World, origin, dir mgl64.Vec3, floorSize float64) RayHit {
	best := RayHit{Distance: math.Inf(1)}

	if dir.Y() < 0 && origin.Y() >= 0 {
		t := -origin.Y() / dir.Y()
		p := origin.Add(dir.Mul(t))
		half := floorSize / 2
		if math.Abs(p.X()) <= half && math.Abs(p.Z()) <= half {
			best = RayHit{Kind: HitWorld, Distance: t}
		}
	}

	for _, o := range w.Obstacles().Values() {
		t, ok := rayAABB(origin, dir, o.Min(), o.Max())
		if ok && t < best.Distance {
			best = RayHit{Kind: HitWorld, Distance: t}
		}
	}

	if best.Kind == HitNone {
		return RayHit{}
	}
	best.Point = origin.Add(dir.Mul(best.Distance))
	return best
}

// ResolveHitscan fires an instant ray. The nearest enemy on the ray takes the
// damage when it is within the weapon's range; a ray that crosses no enemy
// may instead leave an impact on world geometry within range. An enemy out
// of range ends the shot with no impact. Walls do not shield enemies.
func ResolveHitscan(env *Env, w *ecs.World, origin, dir mgl64.Vec3, def *component.WeaponDef) RayHit {
	if env == nil || w == nil || def == nil {
		return RayHit{}
	}
	dir = common.Normalize(dir)
	if dir.Len() == 0 {
		return RayHit{}
	}

	if hit := RaycastEnemies(w, origin, dir); hit.Kind == HitEnemy {
		if hit.Distance >= def.Range {
			return RayHit{}
		}
		DamageEnemy(env, w, hit.Entity, def.Damage)
		Impact(env, w, hit.Point, def.Color)
		return hit
	}

	if hit := RaycastWorld(w, origin, dir, env.Catalog.Level.FloorSize); hit.Kind == HitWorld && hit.Distance < def.Range {
		Impact(env, w, hit.Point, def.Color)
		return hit
	}
	return RayHit{}
}

// rayAABB is the slab test for a unit ray against a box. It returns the entry
// distance, or 0 when the origin is inside.
func rayAABB(origin, dir, lo, hi mgl64.Vec3) (float64, bool) {
	tmin := 0.0
	tmax := math.Inf(1)

	for i := 0; i < 3; i++ {
		if dir[i] != 0 {
			inv := 1.0 / dir[i]
			t1 := (lo[i] - origin[i]) * inv
			t2 := (hi[i] - origin[i]) * inv
			if t1 > t2 {
				t1, t2 = t2, t1
			}
			tmin = math.Max(tmin, t1)
			tmax = math.Min(tmax, t2)
		} else if origin[i] < lo[i] || origin[i] > hi[i] {
			return 0, false
		}
	}

	if tmax >= tmin {
		return tmin, true
	}
	return 0, false
}

// raySphere returns the first non-negative distance at which a unit ray meets
// a sphere.
func raySphere(origin, dir, center mgl64.Vec3, r float64) (float64, bool) {
	if r <= 0 {
		return 0, false
	}
	oc := origin.Sub(center)
	b := oc.Dot(dir)
	c := oc.Dot(oc) - r*r
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}
