package system

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

var (
	rangedShotColor = color.NRGBA{R: 0xff, G: 0xaa, A: 0xff}
	heavyShotColor  = color.NRGBA{R: 0xff, A: 0xff}
)

// EnemySystem steers every enemy toward the player and runs its attack.
type EnemySystem struct {
	env *Env
}

func NewEnemySystem(env *Env) *EnemySystem {
	return &EnemySystem{env: env}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if s == nil || w == nil || w.Player() == nil {
		return
	}
	dt := w.Delta()
	now := w.Now()
	target := w.Player().Position
	combat := s.env.combat()

	ecs.Each(w, w.Enemies(), func(e ecs.Entity, enemy *component.Enemy) {
		if enemy == nil || enemy.Archetype == nil {
			return
		}
		a := enemy.Archetype

		enemy.Yaw, enemy.Pitch = common.LookAngles(enemy.Position, target)
		dist := common.Distance(enemy.Position, target)

		hold := a.Behavior != component.Melee && dist < combat.HoldFactor*a.AttackRange
		if !hold {
			dir := common.Normalize(target.Sub(enemy.Position))
			enemy.Position = enemy.Position.Add(dir.Mul(a.Speed * dt))
		}
		s.env.Visual.Move(e, enemy.Position, enemy.Yaw, enemy.Pitch, 1)

		if now-enemy.LastAttack <= a.AttackRate || dist >= a.AttackRange {
			return
		}

		switch a.Behavior {
		case component.Melee:
			if dist < combat.MeleeReach {
				TakeDamage(s.env, w, a.Damage)
				enemy.LastAttack = now
			}
		case component.Ranged:
			s.fire(w, enemy, target, rangedShotColor)
			enemy.LastAttack = now
		case component.Heavy:
			s.fire(w, enemy, target, heavyShotColor)
			enemy.LastAttack = now
		default:
			panic(fmt.Sprintf("ai: unhandled behavior %s", a.Behavior))
		}
	})
}

// fire launches an enemy shot from just above the enemy toward where the
// player is now. There is no lead.
func (s *EnemySystem) fire(w *ecs.World, enemy *component.Enemy, target mgl64.Vec3, c color.NRGBA) ecs.Entity {
	a := enemy.Archetype
	dir := common.Normalize(target.Sub(enemy.Position))
	pos := enemy.Position.Add(mgl64.Vec3{0, s.env.combat().EnemyShotLift, 0})

	e := w.CreateEntity()
	w.EnemyProjectiles().Set(e.ID, &component.Projectile{
		Owner:    component.EnemySide,
		Position: pos,
		Velocity: dir.Mul(a.ProjectileSpeed),
		Damage:   a.Damage,
		Size:     a.ProjectileSize,
		Color:    c,
		Active:   true,
	})
	s.env.Visual.Spawn(e, component.Renderable{
		Kind:     component.RenderEnemyShot,
		Position: pos,
		Size:     mgl64.Vec3{a.ProjectileSize, a.ProjectileSize, a.ProjectileSize},
		Color:    c,
	})
	return e
}
