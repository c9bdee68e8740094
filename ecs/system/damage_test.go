package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/system/mocks"
)

func TestDamageEnemyKillsOnce(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	e := addEnemy(env, w, "GRUNT", mgl64.Vec3{0, 2, -20})

	require.False(t, DamageEnemy(env, w, e, 60))
	require.Equal(t, 40.0, enemyHP(t, w, e))
	require.Zero(t, w.Player().Score)

	require.True(t, DamageEnemy(env, w, e, 60))
	require.False(t, w.IsAlive(e))
	require.Zero(t, w.Enemies().Len(), "removed in the same step")
	require.Equal(t, 100, w.Player().Score)
	require.Equal(t, env.Catalog.Level.Particles.DeathCount, w.Particles().Len())

	// A stale handle is ignored and never scores again.
	require.False(t, DamageEnemy(env, w, e, 60))
	require.Equal(t, 100, w.Player().Score)

	events := w.Events().Drain()
	require.Equal(t, 1, countEvents(events, ecs.EventEnemyKilled))
	require.Equal(t, 2, countEvents(events, ecs.EventEnemyDamaged))
}

func TestDamageEnemyCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	visual := mocks.NewMockVisualLayer(ctrl)
	ui := mocks.NewMockUILayer(ctrl)
	env := NewEnv(loadCatalog(t), 1, visual, nil, ui)
	w := newTestWorld()
	e := addEnemy(env, w, "DRONE", mgl64.Vec3{0, 2, -20})

	visual.EXPECT().SetEmissive(e, FlashColor)
	visual.EXPECT().SetHealthBar(e, 0.5, gomock.Any())
	ui.EXPECT().HitMarker(false)
	DamageEnemy(env, w, e, 20)

	visual.EXPECT().SetEmissive(e, FlashColor)
	visual.EXPECT().SetHealthBar(e, 0.0, gomock.Any())
	ui.EXPECT().HitMarker(true)
	visual.EXPECT().Spawn(gomock.Any(), gomock.Any()).Times(env.Catalog.Level.Particles.DeathCount)
	visual.EXPECT().Remove(e)
	ui.EXPECT().SetScore(50)
	DamageEnemy(env, w, e, 25)
}

func TestEnemyHealthClampProperty(t *testing.T) {
	env := newTestEnv(t)

	rapid.Check(t, func(t *rapid.T) {
		w := newTestWorld()
		e := addEnemy(env, w, "MECH", mgl64.Vec3{0, 2, -20})
		hits := rapid.SliceOfN(rapid.Float64Range(-200, 200), 1, 20).Draw(t, "hits")

		for _, amount := range hits {
			killed := DamageEnemy(env, w, e, amount)
			enemy, ok := w.Enemies().Get(e.ID)
			if killed {
				if ok || w.IsAlive(e) {
					t.Fatalf("killed enemy still registered")
				}
				if w.Player().Score != 300 {
					t.Fatalf("score %d after kill", w.Player().Score)
				}
				return
			}
			if !ok {
				t.Fatalf("living enemy missing")
			}
			if enemy.HP <= 0 || enemy.HP > enemy.MaxHP {
				t.Fatalf("hp %v outside (0, %v]", enemy.HP, enemy.MaxHP)
			}
		}
	})
}

func TestTakeDamageGameOverOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	ui := mocks.NewMockUILayer(ctrl)
	audio := mocks.NewMockAudioLayer(ctrl)
	env := NewEnv(loadCatalog(t), 1, nil, audio, ui)
	w := newTestWorld()
	w.Player().HP = 25
	w.Player().Score = 450

	audio.EXPECT().Play(SoundHurt).Return(nil)
	audio.EXPECT().Stop(SoundMusic)
	audio.EXPECT().Stop(SoundFootsteps)
	ui.EXPECT().SetHealth(0.0, 100.0)
	ui.EXPECT().DamageFlash(true)
	ui.EXPECT().SetMissionStatus("MISSION FAILED - SCORE: 450").Times(1)
	ui.EXPECT().SetPaused(true, true).Times(1)

	TakeDamage(env, w, 30)
	require.Equal(t, 0.0, w.Player().HP)
	require.True(t, w.Session().GameOver)
	require.False(t, w.Session().Active)

	// Further hits are no-ops: no more collaborator calls, no state change.
	TakeDamage(env, w, 30)
	TakeDamage(env, w, -50)
	require.Equal(t, 0.0, w.Player().HP)
	require.Equal(t, 1, countEvents(w.Events().Drain(), ecs.EventGameOver))
}

func TestPlayerHealthClampProperty(t *testing.T) {
	env := newTestEnv(t)

	rapid.Check(t, func(t *rapid.T) {
		w := newTestWorld()
		hits := rapid.SliceOfN(rapid.Float64Range(-50, 80), 1, 30).Draw(t, "hits")
		overs := 0
		for _, amount := range hits {
			TakeDamage(env, w, amount)
			hp := w.Player().HP
			if hp < 0 || hp > w.Player().MaxHP {
				t.Fatalf("player hp %v out of range", hp)
			}
			if hp == 0 && !w.Session().GameOver {
				t.Fatalf("zero hp without game over")
			}
		}
		for _, evt := range w.Events().Drain() {
			if evt.Kind == ecs.EventGameOver {
				overs++
			}
		}
		if overs > 1 {
			t.Fatalf("game over fired %d times", overs)
		}
	})
}

func TestBlastDamage(t *testing.T) {
	cases := []struct {
		name   string
		damage float64
		d      float64
		radius float64
		want   float64
	}{
		{"center", 120, 0, 10, 120},
		{"half", 120, 5, 10, 60},
		{"edge", 120, 10, 10, 0},
		{"outside", 120, 12, 10, 0},
		{"no_radius", 120, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, BlastDamage(tc.damage, tc.d, tc.radius), 1e-9)
		})
	}

	rapid.Check(t, func(t *rapid.T) {
		damage := rapid.Float64Range(0, 1000).Draw(t, "damage")
		radius := rapid.Float64Range(0.1, 50).Draw(t, "radius")
		d := rapid.Float64Range(0, 100).Draw(t, "d")
		got := BlastDamage(damage, d, radius)
		if d >= radius && got != 0 {
			t.Fatalf("damage %v outside the radius", got)
		}
		if got < 0 || got > damage {
			t.Fatalf("damage %v outside [0, %v]", got, damage)
		}
	})
}

func TestExplodeAppliesFalloffOnce(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	center := mgl64.Vec3{0, 3.5, -30}
	direct := addEnemy(env, w, "MECH", center)
	mid := addEnemy(env, w, "MECH", center.Add(mgl64.Vec3{5, 0, 0}))
	edge := addEnemy(env, w, "MECH", center.Add(mgl64.Vec3{0, 0, 10}))

	rocket := env.Catalog.Weapon(3)
	Explode(env, w, center, rocket.Damage, rocket.BlastRadius, rocket.Color)

	require.Equal(t, 180.0, enemyHP(t, w, direct), "full damage exactly once at distance 0")
	require.InDelta(t, 240, enemyHP(t, w, mid), 1e-9)
	require.Equal(t, 300.0, enemyHP(t, w, edge))
	require.Equal(t, env.Catalog.Level.Particles.ExplosionCount, w.Particles().Len())
}
