package system

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

const (
	muzzleFlashSize = 0.4
	beamStartOffset = 0.5
)

// WeaponSystem fires the active weapon. A shot is accepted only once the
// weapon's cooldown has elapsed since the last accepted shot.
type WeaponSystem struct {
	env *Env
}

func NewWeaponSystem(env *Env) *WeaponSystem {
	return &WeaponSystem{env: env}
}

// Shoot fires the active weapon at the world clock. A rejected shot changes
// nothing and returns false.
func (s *WeaponSystem) Shoot(w *ecs.World) bool {
	if s == nil || w == nil || w.Player() == nil {
		return false
	}
	p := w.Player()
	def := s.env.Catalog.Weapon(p.Weapon)
	now := w.Now()
	if now-p.LastShot < def.Cooldown {
		return false
	}
	p.LastShot = now

	combat := s.env.combat()
	play(s.env.Audio, def.Sound)

	s.env.Visual.Recoil(combat.RecoilOffset)
	w.Effects().Schedule(ecs.Effect{Kind: ecs.EffectRecoilReset, ExpiresAt: now + combat.RecoilMs})

	dir := common.ViewDirection(p.Yaw, p.Pitch)

	flash := w.CreateEntity()
	s.env.Visual.Spawn(flash, component.Renderable{
		Kind:     component.RenderMuzzleFlash,
		Position: p.Position.Add(dir),
		Size:     mgl64.Vec3{muzzleFlashSize, muzzleFlashSize, muzzleFlashSize},
		Color:    def.Color,
	})
	w.Effects().Schedule(ecs.Effect{Kind: ecs.EffectRemove, Target: flash, ExpiresAt: now + combat.MuzzleFlashMs})

	switch def.Behavior {
	case component.Hitscan:
		beam := w.CreateEntity()
		s.env.Visual.Spawn(beam, component.Renderable{
			Kind:     component.RenderBeam,
			Position: p.Position.Add(dir.Mul(beamStartOffset)),
			End:      p.Position.Add(dir.Mul(combat.BeamLength)),
			Color:    def.Color,
		})
		w.Effects().Schedule(ecs.Effect{Kind: ecs.EffectRemove, Target: beam, ExpiresAt: now + combat.BeamMs})
		ResolveHitscan(s.env, w, p.Position, dir, def)
	case component.ProjectileShot:
		s.spawnShot(w, def, p.Position, dir, 0, 0)
	case component.Explosive:
		s.spawnShot(w, def, p.Position, dir, def.BlastRadius, def.Gravity)
	default:
		panic(fmt.Sprintf("weapon: unhandled behavior %s", def.Behavior))
	}

	w.Events().Push(ecs.Event{Kind: ecs.EventWeaponFired, Amount: float64(def.ID), Data: def.Behavior})
	return true
}

func (s *WeaponSystem) spawnShot(w *ecs.World, def *component.WeaponDef, eye, dir mgl64.Vec3, blast, gravity float64) ecs.Entity {
	pos := eye.Add(dir.Mul(s.env.combat().MuzzleOffset))
	e := w.CreateEntity()
	w.PlayerProjectiles().Set(e.ID, &component.Projectile{
		Owner:       component.PlayerSide,
		Behavior:    def.Behavior,
		Position:    pos,
		Velocity:    dir.Mul(def.Speed),
		Gravity:     gravity,
		Damage:      def.Damage,
		BlastRadius: blast,
		Size:        def.Size,
		Color:       def.Color,
		Active:      true,
	})
	s.env.Visual.Spawn(e, component.Renderable{
		Kind:     component.RenderPlayerShot,
		Position: pos,
		Size:     mgl64.Vec3{def.Size, def.Size, def.Size},
		Color:    def.Color,
	})
	return e
}

// SelectWeapon makes id the active weapon and swaps the view model. The
// cooldown clock is left alone. Unknown ids panic.
func (s *WeaponSystem) SelectWeapon(w *ecs.World, id component.WeaponID) {
	if s == nil || w == nil || w.Player() == nil {
		return
	}
	def := s.env.Catalog.Weapon(id)
	w.Player().Weapon = id
	s.env.Visual.SetWeaponModel(def)
	s.env.UI.SetWeaponSlot(id)
}
