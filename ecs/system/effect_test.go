package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/system/mocks"
)

func TestHitFlashReverts(t *testing.T) {
	ctrl := gomock.NewController(t)
	visual := mocks.NewMockVisualLayer(ctrl)
	env := NewEnv(loadCatalog(t), 1, visual, nil, nil)
	w := newTestWorld()
	e := addEnemy(env, w, "MECH", mgl64.Vec3{0, 2, -20})
	effects := NewEffectSystem(env)

	visual.EXPECT().SetEmissive(e, FlashColor)
	visual.EXPECT().SetHealthBar(e, gomock.Any(), gomock.Any())
	w.Advance(1000, 0.016)
	DamageEnemy(env, w, e, 10)

	enemy, _ := w.Enemies().Get(e.ID)
	require.True(t, enemy.Flashing)

	w.Advance(1049, 0.016)
	effects.Update(w)
	require.True(t, enemy.Flashing, "not due yet")

	visual.EXPECT().SetEmissive(e, EmissiveRest)
	w.Advance(1050, 0.016)
	effects.Update(w)
	require.False(t, enemy.Flashing)
	require.Zero(t, w.Effects().Len())
}

func TestHitFlashSkipsDeadTargets(t *testing.T) {
	cases := []struct {
		name    string
		recycle bool
	}{
		{"destroyed", false},
		{"id_recycled", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			visual := mocks.NewMockVisualLayer(ctrl)
			env := NewEnv(loadCatalog(t), 1, visual, nil, nil)
			w := newTestWorld()
			e := addEnemy(env, w, "MECH", mgl64.Vec3{0, 2, -20})

			visual.EXPECT().SetEmissive(e, FlashColor)
			visual.EXPECT().SetHealthBar(e, gomock.Any(), gomock.Any())
			w.Advance(1000, 0.016)
			DamageEnemy(env, w, e, 10)
			require.True(t, w.DestroyEntity(e))

			if tc.recycle {
				fresh := addEnemy(env, w, "GRUNT", mgl64.Vec3{5, 2, -20})
				require.Equal(t, e.ID, fresh.ID)
				require.NotEqual(t, e.Gen, fresh.Gen)
			}

			// The strict mock fails on any SetEmissive(EmissiveRest) call.
			w.Advance(1100, 0.016)
			NewEffectSystem(env).Update(w)
			require.Zero(t, w.Effects().Len())
		})
	}
}

func TestTransientVisualsExpire(t *testing.T) {
	env := newTestEnv(t)
	rec := &recordingVisual{}
	env.Visual = rec
	w := newTestWorld()
	effects := NewEffectSystem(env)

	w.Advance(0, 0.016)
	weapons := NewWeaponSystem(env)
	weapons.SelectWeapon(w, 2)
	require.True(t, weapons.Shoot(w)) // laser: muzzle flash and beam
	require.Equal(t, 3, w.Effects().Len())
	live := w.EntityCount()

	w.Advance(60, 0.016)
	effects.Update(w)
	require.Len(t, rec.removed, 2, "muzzle flash and beam")
	require.Equal(t, live-2, w.EntityCount())
	for _, e := range rec.removed {
		require.False(t, w.IsAlive(e))
	}
}

func TestEffectFlush(t *testing.T) {
	ctrl := gomock.NewController(t)
	visual := mocks.NewMockVisualLayer(ctrl)
	ui := mocks.NewMockUILayer(ctrl)
	env := NewEnv(loadCatalog(t), 1, visual, nil, ui)
	w := newTestWorld()
	flash := w.CreateEntity()

	w.Effects().Schedule(ecs.Effect{Kind: ecs.EffectRemove, Target: flash, ExpiresAt: 5000})
	w.Effects().Schedule(ecs.Effect{Kind: ecs.EffectRecoilReset, ExpiresAt: 6000})
	w.Effects().Schedule(ecs.Effect{Kind: ecs.EffectDamageFlashOff, ExpiresAt: 7000})

	visual.EXPECT().Remove(flash)
	visual.EXPECT().Recoil(0.0)
	ui.EXPECT().DamageFlash(false)

	w.Advance(0, 0)
	NewEffectSystem(env).Flush(w)
	require.Zero(t, w.Effects().Len())
	require.False(t, w.IsAlive(flash))
}

func TestEffectsRunWhilePaused(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	e := addEnemy(env, w, "MECH", mgl64.Vec3{0, 2, -20})
	w.Advance(0, 0.016)
	DamageEnemy(env, w, e, 10)
	w.Session().Active = false

	w.Advance(500, 0.016)
	NewEffectSystem(env).Update(w)
	enemy, _ := w.Enemies().Get(e.ID)
	require.False(t, enemy.Flashing)
}
