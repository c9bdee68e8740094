package system

import (
	"math"

	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

// ParticleSystem integrates debris and removes it when its life runs out.
type ParticleSystem struct {
	env *Env
}

func NewParticleSystem(env *Env) *ParticleSystem {
	return &ParticleSystem{env: env}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	dt := w.Delta()
	spec := s.env.Catalog.Level.Particles
	decay := ScaleDecay(spec.ScaleDecay, dt, spec.NormalizeScaleDecay)

	ecs.Each(w, w.Particles(), func(e ecs.Entity, p *component.Particle) {
		if p == nil {
			return
		}
		p.Position = p.Position.Add(p.Velocity.Mul(dt))
		p.Life -= spec.LifeDecay * dt
		p.Scale *= decay

		if p.Life <= 0 {
			s.env.Visual.Remove(e)
			w.DestroyEntity(e)
			return
		}
		s.env.Visual.Move(e, p.Position, 0, 0, p.Scale)
	})
}

// ScaleDecay returns the per-frame scale factor. By default the factor is
// applied once per frame regardless of dt; normalized mode treats it as the
// factor for a 60 Hz frame.
func ScaleDecay(factor, dt float64, normalized bool) float64 {
	if !normalized {
		return factor
	}
	return math.Pow(factor, dt*60)
}
