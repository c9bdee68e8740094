package system

import (
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

// SpawnSystem is the fixed-interval spawner. Its timer follows the world
// clock, not the frame count, and keeps ticking while the game is paused;
// a tick only spawns when the game is running and the population is under
// the cap.
type SpawnSystem struct {
	env      *Env
	director *Director
	nextAt   float64
	started  bool
}

func NewSpawnSystem(env *Env) *SpawnSystem {
	s := &SpawnSystem{env: env}
	s.ReloadDirector()
	return s
}

// ReloadDirector (re)compiles the director script named in the spawner table.
// A broken script is logged and the base weights are used.
func (s *SpawnSystem) ReloadDirector() {
	if s == nil {
		return
	}
	s.director = nil
	path := s.env.Catalog.Spawner.Director
	if path == "" {
		return
	}
	d, err := LoadDirector(path)
	if err != nil {
		slog.Warn("director disabled", "system", "spawn", "err", err)
		return
	}
	s.director = d
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	spec := s.env.Catalog.Spawner
	now := w.Now()
	if !s.started {
		s.started = true
		s.nextAt = now + spec.IntervalMs
		return
	}

	// Drop ticks missed during a long stall instead of replaying all of them.
	if behind := now - s.nextAt; behind > float64(spec.Cap)*spec.IntervalMs {
		s.nextAt = now - math.Mod(behind, spec.IntervalMs)
	}

	for now >= s.nextAt {
		s.nextAt += spec.IntervalMs
		if !w.Session().Simulating() || w.Enemies().Len() >= spec.Cap {
			continue
		}
		s.Spawn(w)
	}
}

// Spawn places one weighted-random enemy on a ring around the player.
func (s *SpawnSystem) Spawn(w *ecs.World) ecs.Entity {
	if s == nil || w == nil || w.Player() == nil {
		return ecs.Entity{}
	}
	spec := s.env.Catalog.Spawner
	archetypes := s.env.Catalog.Archetypes
	a := archetypes[PickArchetype(s.weights(w), s.env.Rand.Float64())]

	angle := s.env.Rand.Float64() * 2 * math.Pi
	dist := spec.MinDistance + s.env.Rand.Float64()*(spec.MaxDistance-spec.MinDistance)
	origin := w.Player().Position
	pos := mgl64.Vec3{
		origin.X() + math.Cos(angle)*dist,
		a.Radius + spec.HeightOffset,
		origin.Z() + math.Sin(angle)*dist,
	}

	e := w.CreateEntity()
	enemy := &component.Enemy{
		Tag:        uuid.NewString(),
		Archetype:  a,
		Position:   pos,
		HP:         a.HP,
		MaxHP:      a.HP,
		LastAttack: common.Never,
	}
	w.Enemies().Set(e.ID, enemy)

	d := a.Radius * 2
	s.env.Visual.Spawn(e, component.Renderable{
		Kind:      component.RenderEnemy,
		Position:  pos,
		Size:      mgl64.Vec3{d, d, d},
		Color:     a.Color,
		Archetype: a.ID,
		BarHeight: a.BarHeight,
	})
	s.env.Visual.SetHealthBar(e, 1, common.HealthColor(1))
	w.Events().Push(ecs.Event{Kind: ecs.EventEnemySpawned, Entity: e, Data: a.ID})
	slog.Debug("enemy spawned", "system", "spawn", "tag", enemy.Tag, "archetype", a.ID)
	return e
}

func (s *SpawnSystem) weights(w *ecs.World) []float64 {
	archetypes := s.env.Catalog.Archetypes
	if s.director != nil {
		elapsed := (w.Now() - w.Session().StartedAt) / 1000
		weights, err := s.director.Weights(archetypes, w.Player().Score, elapsed)
		if err == nil {
			return weights
		}
		slog.Warn("director failed, using base weights", "system", "spawn", "err", err)
	}
	weights := make([]float64, len(archetypes))
	for i, a := range archetypes {
		weights[i] = a.SpawnWeight
	}
	return weights
}

// Reset restarts the interval timer on the next update.
func (s *SpawnSystem) Reset() {
	if s == nil {
		return
	}
	s.started = false
}

// PickArchetype maps roll in [0, 1) onto the cumulative weights and returns
// the chosen index. Zero weights are never picked unless every weight is
// zero, in which case the first index is returned. Bucket edges are only
// exact when the weights sum without rounding, so tables use whole numbers.
func PickArchetype(weights []float64, roll float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0
	}
	target := roll * total
	acc := 0.0
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		last = i
		if target < acc {
			return i
		}
	}
	return last
}
