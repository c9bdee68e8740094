package system

import (
	"math"

	"github.com/milk9111/fpsarena/ecs"
)

// EffectSystem applies timed side effects once they are due. It runs every
// frame, paused or not, and every effect re-checks that its target is still
// alive before touching a visual.
type EffectSystem struct {
	env *Env
}

func NewEffectSystem(env *Env) *EffectSystem {
	return &EffectSystem{env: env}
}

func (s *EffectSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, fx := range w.Effects().Expire(w.Now()) {
		s.apply(w, fx)
	}
}

// Flush applies every pending effect immediately.
func (s *EffectSystem) Flush(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	for _, fx := range w.Effects().Expire(math.Inf(1)) {
		s.apply(w, fx)
	}
}

func (s *EffectSystem) apply(w *ecs.World, fx ecs.Effect) {
	switch fx.Kind {
	case ecs.EffectRemove:
		if !w.IsAlive(fx.Target) {
			return
		}
		s.env.Visual.Remove(fx.Target)
		w.DestroyEntity(fx.Target)
	case ecs.EffectRevertFlash:
		if !w.IsAlive(fx.Target) {
			return
		}
		enemy, ok := w.Enemies().Get(fx.Target.ID)
		if !ok || enemy == nil {
			return
		}
		enemy.Flashing = false
		s.env.Visual.SetEmissive(fx.Target, EmissiveRest)
	case ecs.EffectRecoilReset:
		s.env.Visual.Recoil(0)
	case ecs.EffectDamageFlashOff:
		s.env.UI.DamageFlash(false)
	}
}
