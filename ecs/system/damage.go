package system

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

const particleSize = 0.3

// DamageEnemy applies damage to one enemy. Health is clamped to [0, max]; an
// enemy that reaches zero is removed in this call and its score awarded
// once. It reports whether the enemy died. Stale handles are ignored.
func DamageEnemy(env *Env, w *ecs.World, e ecs.Entity, amount float64) bool {
	if env == nil || !w.IsAlive(e) {
		return false
	}
	enemy, ok := w.Enemies().Get(e.ID)
	if !ok || enemy == nil {
		return false
	}

	enemy.HP = common.Clamp(enemy.HP-amount, 0, enemy.MaxHP)

	env.Visual.SetEmissive(e, FlashColor)
	enemy.Flashing = true
	w.Effects().Schedule(ecs.Effect{Kind: ecs.EffectRevertFlash, Target: e, ExpiresAt: w.Now() + env.combat().HitFlashMs})

	frac := enemy.HealthFraction()
	env.Visual.SetHealthBar(e, frac, common.HealthColor(frac))

	killed := enemy.HP <= 0
	env.UI.HitMarker(killed)
	w.Events().Push(ecs.Event{Kind: ecs.EventEnemyDamaged, Entity: e, Amount: amount})

	if !killed {
		return false
	}

	Burst(env, w, enemy.Position, enemy.Archetype.Color, env.Catalog.Level.Particles.DeathCount)
	env.Visual.Remove(e)
	w.DestroyEntity(e)

	p := w.Player()
	p.Score += enemy.Archetype.Score
	env.UI.SetScore(p.Score)
	w.Events().Push(ecs.Event{Kind: ecs.EventEnemyKilled, Entity: e, Amount: float64(enemy.Archetype.Score), Data: enemy.Archetype.ID})
	slog.Debug("enemy killed", "system", "combat", "tag", enemy.Tag, "archetype", enemy.Archetype.ID, "score", p.Score)
	return true
}

// TakeDamage hurts the player. Reaching zero health ends the run exactly
// once; after that every call is a no-op until the loop resets.
func TakeDamage(env *Env, w *ecs.World, amount float64) {
	if env == nil || w == nil {
		return
	}
	session := w.Session()
	p := w.Player()
	if session.GameOver || p == nil {
		return
	}

	p.HP = common.Clamp(p.HP-amount, 0, p.MaxHP)
	play(env.Audio, SoundHurt)
	env.UI.SetHealth(p.HP, p.MaxHP)
	env.UI.DamageFlash(true)
	w.Effects().Schedule(ecs.Effect{Kind: ecs.EffectDamageFlashOff, ExpiresAt: w.Now() + env.combat().DamageFlashMs})
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDamaged, Amount: amount})

	if p.HP > 0 {
		return
	}

	session.GameOver = true
	session.Active = false
	env.Audio.Stop(SoundMusic)
	env.Audio.Stop(SoundFootsteps)
	env.UI.SetMissionStatus(fmt.Sprintf("MISSION FAILED - SCORE: %d", p.Score))
	env.UI.SetPaused(true, true)
	w.Events().Push(ecs.Event{Kind: ecs.EventGameOver, Amount: float64(p.Score)})
	slog.Info("game over", "system", "combat", "score", p.Score)
}

// BlastDamage is the linear falloff for an enemy at distance d from an
// explosion. It is zero at and beyond the radius.
func BlastDamage(damage, d, radius float64) float64 {
	if radius <= 0 || d >= radius {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return damage * (1 - d/radius)
}

// Explode spawns the explosion burst and applies falloff damage to every
// enemy inside the radius, including one struck directly.
func Explode(env *Env, w *ecs.World, pos mgl64.Vec3, damage, radius float64, c color.NRGBA) {
	if env == nil || w == nil {
		return
	}
	Burst(env, w, pos, c, env.Catalog.Level.Particles.ExplosionCount)
	w.Events().Push(ecs.Event{Kind: ecs.EventExplosion, Amount: damage, Data: pos})

	ecs.Each(w, w.Enemies(), func(e ecs.Entity, enemy *component.Enemy) {
		d := common.Distance(enemy.Position, pos)
		if d < radius {
			DamageEnemy(env, w, e, BlastDamage(damage, d, radius))
		}
	})
}

// Impact is the small debris puff for a bullet or beam hit.
func Impact(env *Env, w *ecs.World, pos mgl64.Vec3, c color.NRGBA) {
	if env == nil {
		return
	}
	Burst(env, w, pos, c, env.Catalog.Level.Particles.ImpactCount)
}

// Burst spawns count particles flying in random directions.
func Burst(env *Env, w *ecs.World, pos mgl64.Vec3, c color.NRGBA, count int) {
	if env == nil || w == nil {
		return
	}
	maxSpeed := env.Catalog.Level.Particles.MaxSpeed
	for i := 0; i < count; i++ {
		dir := common.Normalize(mgl64.Vec3{
			env.Rand.Float64() - 0.5,
			env.Rand.Float64() - 0.5,
			env.Rand.Float64() - 0.5,
		})
		e := w.CreateEntity()
		w.Particles().Set(e.ID, &component.Particle{
			Position: pos,
			Velocity: dir.Mul(env.Rand.Float64() * maxSpeed),
			Life:     1,
			Scale:    1,
			Color:    c,
		})
		env.Visual.Spawn(e, component.Renderable{
			Kind:     component.RenderParticle,
			Position: pos,
			Size:     mgl64.Vec3{particleSize, particleSize, particleSize},
			Color:    c,
		})
	}
}
