package system

import (
	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

// ProjectileSystem advances both sides' shots and resolves their hits.
type ProjectileSystem struct {
	env *Env
}

func NewProjectileSystem(env *Env) *ProjectileSystem {
	return &ProjectileSystem{env: env}
}

func (s *ProjectileSystem) Update(w *ecs.World) {
	if s == nil || w == nil || w.Player() == nil {
		return
	}
	s.updatePlayerShots(w)
	s.updateEnemyShots(w)
}

func (s *ProjectileSystem) updatePlayerShots(w *ecs.World) {
	dt := w.Delta()
	combat := s.env.combat()
	player := w.Player()

	ecs.Each(w, w.PlayerProjectiles(), func(e ecs.Entity, p *component.Projectile) {
		if p == nil || !p.Active {
			return
		}

		if p.Gravity != 0 {
			p.Velocity[1] -= p.Gravity * dt
		}
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		s.env.Visual.Move(e, p.Position, 0, 0, 1)

		hit := p.Position.Y() < 0
		if !hit {
			if target, ok := s.firstEnemyWithin(w, p, combat.ShotHitPadding); ok {
				hit = true
				if p.Behavior == component.Explosive {
					Explode(s.env, w, p.Position, p.Damage, p.BlastRadius, p.Color)
					p.Exploded = true
				} else {
					DamageEnemy(s.env, w, target, p.Damage)
					Impact(s.env, w, p.Position, p.Color)
				}
			}
		}

		if !hit && common.Distance(p.Position, player.Position) <= combat.PlayerShotRange {
			return
		}

		if p.Behavior == component.Explosive && !p.Exploded {
			Explode(s.env, w, p.Position, p.Damage, p.BlastRadius, p.Color)
			p.Exploded = true
		}
		p.Active = false
		s.env.Visual.Remove(e)
		w.DestroyEntity(e)
	})
}

func (s *ProjectileSystem) firstEnemyWithin(w *ecs.World, p *component.Projectile, padding float64) (ecs.Entity, bool) {
	for _, e := range ecs.Snapshot(w, w.Enemies()) {
		enemy, ok := w.Enemies().Get(e.ID)
		if !ok || enemy == nil || enemy.Archetype == nil {
			continue
		}
		if common.Distance(p.Position, enemy.Position) < enemy.Archetype.Radius+padding {
			return e, true
		}
	}
	return ecs.Entity{}, false
}

func (s *ProjectileSystem) updateEnemyShots(w *ecs.World) {
	dt := w.Delta()
	combat := s.env.combat()
	player := w.Player()

	ecs.Each(w, w.EnemyProjectiles(), func(e ecs.Entity, p *component.Projectile) {
		if p == nil || !p.Active {
			return
		}

		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		s.env.Visual.Move(e, p.Position, 0, 0, 1)

		d := common.Distance(p.Position, player.Position)
		switch {
		case d < combat.EnemyShotHitRadius:
			TakeDamage(s.env, w, p.Damage)
		case p.Position.Y() < 0 || d > combat.EnemyShotRange:
		default:
			return
		}

		p.Active = false
		s.env.Visual.Remove(e)
		w.DestroyEntity(e)
	})
}
