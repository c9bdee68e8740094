package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fpsarena/ecs/component"
)

func TestEnemySteering(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name      string
		archetype component.ArchetypeID
		start     mgl64.Vec3
		wantMoved float64
	}{
		{"drone_advances", "DRONE", mgl64.Vec3{0, 2, -40}, 10 * 0.1},
		{"grunt_advances_from_afar", "GRUNT", mgl64.Vec3{0, 2, -40}, 4 * 0.1},
		{"grunt_holds_inside_band", "GRUNT", mgl64.Vec3{0, 2, -20}, 0},
		{"mech_holds_inside_band", "MECH", mgl64.Vec3{0, 2, -30}, 0},
		{"mech_advances_outside_band", "MECH", mgl64.Vec3{0, 2, -36}, 1.5 * 0.1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			e := addEnemy(env, w, tc.archetype, tc.start)
			w.Advance(0, 0.1)
			// Keep attacks out of the picture.
			enemy, _ := w.Enemies().Get(e.ID)
			enemy.LastAttack = 0

			NewEnemySystem(env).Update(w)

			require.InDelta(t, tc.wantMoved, tc.start.Sub(enemy.Position).Len(), 1e-9)
			require.InDelta(t, math.Pi, math.Abs(enemy.Yaw), 1e-9, "faces +Z toward the player at the origin")
		})
	}
}

func TestEnemyFacesPlayer(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	e := addEnemy(env, w, "GRUNT", mgl64.Vec3{10, 2, 0})
	w.Advance(0, 0)

	NewEnemySystem(env).Update(w)

	enemy, _ := w.Enemies().Get(e.ID)
	require.InDelta(t, math.Pi/2, enemy.Yaw, 1e-9)
	require.InDelta(t, 0, enemy.Pitch, 1e-9)
}

func TestMeleeAttack(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name    string
		start   mgl64.Vec3
		wantHP  float64
		attacks bool
	}{
		{"within_reach", mgl64.Vec3{0, 2, -1.5}, 90, true},
		{"outside_attack_range", mgl64.Vec3{0, 2, -5}, 100, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			e := addEnemy(env, w, "DRONE", tc.start)
			w.Advance(5000, 0.001)

			NewEnemySystem(env).Update(w)

			enemy, _ := w.Enemies().Get(e.ID)
			require.Equal(t, tc.wantHP, w.Player().HP)
			require.Equal(t, tc.attacks, enemy.LastAttack == 5000)
			require.Zero(t, w.EnemyProjectiles().Len(), "melee never shoots")
		})
	}
}

func TestMeleeAttackRate(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	addEnemy(env, w, "DRONE", mgl64.Vec3{0, 2, -1.5})
	ai := NewEnemySystem(env)

	for _, step := range []struct {
		now    float64
		wantHP float64
	}{
		{0, 90},    // first attack is never gated
		{500, 90},  // within the 1000ms rate
		{1000, 90}, // gate is strict
		{1001, 80},
	} {
		w.Advance(step.now, 0)
		ai.Update(w)
		require.Equal(t, step.wantHP, w.Player().HP, "at t=%v", step.now)
	}
}

func TestRangedAttack(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name      string
		archetype component.ArchetypeID
		start     mgl64.Vec3
		speed     float64
		damage    float64
	}{
		{"grunt", "GRUNT", mgl64.Vec3{0, 2, -20}, 40, 15},
		{"mech", "MECH", mgl64.Vec3{0, 2, -30}, 20, 40},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld()
			addEnemy(env, w, tc.archetype, tc.start)
			ai := NewEnemySystem(env)

			w.Advance(100, 0.016)
			ai.Update(w)
			require.Equal(t, 1, w.EnemyProjectiles().Len())

			shot := w.EnemyProjectiles().Values()[0]
			require.Equal(t, component.EnemySide, shot.Owner)
			require.Equal(t, tc.damage, shot.Damage)
			require.InDelta(t, tc.speed, shot.Velocity.Len(), 1e-9)
			require.InDelta(t, 2.5, shot.Position.Y(), 1e-9, "launched from above the enemy")
			require.Greater(t, shot.Velocity.Z(), 0.0, "aimed at the player")

			// Still inside the attack rate: no second shot.
			w.Advance(200, 0.016)
			ai.Update(w)
			require.Equal(t, 1, w.EnemyProjectiles().Len())
			require.Equal(t, 100.0, w.Player().HP)
		})
	}
}
