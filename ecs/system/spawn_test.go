package system

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

func TestPickArchetype(t *testing.T) {
	weights := []float64{60, 30, 10}
	cases := []struct {
		roll float64
		want int
	}{
		{0, 0},
		{0.59, 0},
		{0.6, 1},
		{0.89, 1},
		{0.9, 2},
		{0.999, 2},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, PickArchetype(weights, tc.roll), "roll %v", tc.roll)
	}

	require.Equal(t, 2, PickArchetype([]float64{0, 0, 1}, 0))
	require.Equal(t, 0, PickArchetype([]float64{0, 0, 0}, 0.5))
	require.Equal(t, 1, PickArchetype([]float64{-1, 2}, 0.3), "negative weights are ignored")
}

func TestPickArchetypeCatalogEdges(t *testing.T) {
	env := newTestEnv(t)
	spawner := NewSpawnSystem(env)
	weights := spawner.weights(newTestWorld())
	ids := func(roll float64) component.ArchetypeID {
		return env.Catalog.Archetypes[PickArchetype(weights, roll)].ID
	}

	require.Equal(t, component.ArchetypeID("DRONE"), ids(0.5999))
	require.Equal(t, component.ArchetypeID("GRUNT"), ids(0.6))
	require.Equal(t, component.ArchetypeID("GRUNT"), ids(0.8999))
	require.Equal(t, component.ArchetypeID("MECH"), ids(0.9))
}

func TestPickArchetypeDistribution(t *testing.T) {
	env := newTestEnv(t)
	weights := []float64{60, 30, 10}
	counts := make([]int, 3)
	const n = 20000
	for i := 0; i < n; i++ {
		counts[PickArchetype(weights, env.Rand.Float64())]++
	}
	for i, w := range weights {
		require.InDelta(t, w/100, float64(counts[i])/n, 0.02)
	}
}

func TestSpawnPlacement(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	w.Player().Position = mgl64.Vec3{50, 2, -20}
	spawner := NewSpawnSystem(env)

	for i := 0; i < 200; i++ {
		e := spawner.Spawn(w)
		enemy, ok := w.Enemies().Get(e.ID)
		require.True(t, ok)

		a := enemy.Archetype
		require.Equal(t, a.HP, enemy.HP)
		require.Equal(t, a.HP, enemy.MaxHP)
		require.Equal(t, common.Never, enemy.LastAttack)
		require.NotEmpty(t, enemy.Tag)
		require.InDelta(t, a.Radius+1, enemy.Position.Y(), 1e-12)

		flat := enemy.Position.Sub(w.Player().Position)
		flat[1] = 0
		require.GreaterOrEqual(t, flat.Len(), 30-1e-9)
		require.LessOrEqual(t, flat.Len(), 80+1e-9)
	}
	require.Equal(t, 200, countEvents(w.Events().Drain(), ecs.EventEnemySpawned))
}

func TestSpawnTimer(t *testing.T) {
	env := newTestEnv(t)

	t.Run("interval", func(t *testing.T) {
		w := newTestWorld()
		spawner := NewSpawnSystem(env)
		steps := []struct {
			now  float64
			want int
		}{
			{0, 0},
			{1499, 0},
			{1500, 1},
			{2000, 1},
			{3000, 2},
			{6000, 4}, // catches up ticks missed between frames
		}
		for _, s := range steps {
			w.Advance(s.now, 0.016)
			spawner.Update(w)
			require.Equal(t, s.want, w.Enemies().Len(), "at t=%v", s.now)
		}
	})

	t.Run("paused_ticks_do_not_spawn", func(t *testing.T) {
		w := newTestWorld()
		spawner := NewSpawnSystem(env)
		w.Advance(0, 0)
		spawner.Update(w)

		w.Session().Active = false
		w.Advance(4500, 0.016)
		spawner.Update(w)
		require.Zero(t, w.Enemies().Len())

		// The timer kept running while paused: the next tick is at 6000.
		w.Session().Active = true
		w.Advance(5999, 0.016)
		spawner.Update(w)
		require.Zero(t, w.Enemies().Len())
		w.Advance(6000, 0.016)
		spawner.Update(w)
		require.Equal(t, 1, w.Enemies().Len())
	})

	t.Run("game_over_blocks_spawns", func(t *testing.T) {
		w := newTestWorld()
		spawner := NewSpawnSystem(env)
		w.Advance(0, 0)
		spawner.Update(w)
		w.Session().GameOver = true
		w.Advance(1500, 0.016)
		spawner.Update(w)
		require.Zero(t, w.Enemies().Len())
	})

	t.Run("cap", func(t *testing.T) {
		w := newTestWorld()
		spawner := NewSpawnSystem(env)
		for i := 0; i < 20; i++ {
			addEnemy(env, w, "DRONE", mgl64.Vec3{float64(i), 2, -40})
		}
		w.Advance(0, 0)
		spawner.Update(w)
		w.Advance(1500, 0.016)
		spawner.Update(w)
		require.Equal(t, 20, w.Enemies().Len())
	})

	t.Run("long_stall_is_bounded", func(t *testing.T) {
		w := newTestWorld()
		spawner := NewSpawnSystem(env)
		w.Advance(0, 0)
		spawner.Update(w)
		w.Advance(1e9, 0.016)
		spawner.Update(w)
		require.Equal(t, 1, w.Enemies().Len())
	})
}

func TestSpawnRenderable(t *testing.T) {
	env := newTestEnv(t)
	rec := &recordingVisual{}
	env.Visual = rec
	w := newTestWorld()

	e := NewSpawnSystem(env).Spawn(w)
	require.Len(t, rec.spawned, 1)
	r := rec.spawned[e]
	enemy, _ := w.Enemies().Get(e.ID)
	require.Equal(t, component.RenderEnemy, r.Kind)
	require.Equal(t, enemy.Archetype.ID, r.Archetype)
	require.Equal(t, enemy.Archetype.BarHeight, r.BarHeight)
	require.Equal(t, 1.0, rec.bars[e])
}

// recordingVisual keeps the last state per entity.
type recordingVisual struct {
	NopVisual
	spawned map[ecs.Entity]component.Renderable
	bars    map[ecs.Entity]float64
	removed []ecs.Entity
}

func (r *recordingVisual) Spawn(e ecs.Entity, rr component.Renderable) {
	if r.spawned == nil {
		r.spawned = map[ecs.Entity]component.Renderable{}
	}
	r.spawned[e] = rr
}

func (r *recordingVisual) SetHealthBar(e ecs.Entity, fraction float64, _ color.Color) {
	if r.bars == nil {
		r.bars = map[ecs.Entity]float64{}
	}
	r.bars[e] = fraction
}

func (r *recordingVisual) Remove(e ecs.Entity) {
	r.removed = append(r.removed, e)
}
