package system

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/milk9111/fpsarena/ecs/component"
	"github.com/milk9111/fpsarena/ecs/system/mocks"
)

func TestMoveDirection(t *testing.T) {
	cases := []struct {
		name                           string
		forward, backward, left, right bool
		want                           mgl64.Vec2
	}{
		{"idle", false, false, false, false, mgl64.Vec2{0, 0}},
		{"forward", true, false, false, false, mgl64.Vec2{0, 1}},
		{"cancelled", true, true, false, false, mgl64.Vec2{0, 0}},
		{"strafe_left", false, false, true, false, mgl64.Vec2{-1, 0}},
		{"diagonal", true, false, false, true, mgl64.Vec2{math.Sqrt2 / 2, math.Sqrt2 / 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MoveDirection(tc.forward, tc.backward, tc.left, tc.right)
			require.InDelta(t, tc.want.X(), got.X(), 1e-12)
			require.InDelta(t, tc.want.Y(), got.Y(), 1e-12)
		})
	}
}

func TestMovementForwardImpulse(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	w.SetInput(component.Input{Forward: true})
	w.Advance(16, 0.016)

	NewMovementSystem(env).Update(w)

	p := w.Player()
	// 18 * 1 * 0.016 * 50 after damping the zero velocity.
	require.InDelta(t, 14.4, p.Velocity.Z(), 1e-9)
	require.InDelta(t, -14.4*0.016, p.Position.Z(), 1e-9)
	require.InDelta(t, 0, p.Position.X(), 1e-9)
	require.Equal(t, 2.0, p.Position.Y())
	require.True(t, p.Grounded)
}

func TestMovementSpeedMultiplier(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	w.Settings().MoveSpeedMultiplier = 2
	w.SetInput(component.Input{Right: true})
	w.Advance(16, 0.016)

	NewMovementSystem(env).Update(w)
	require.InDelta(t, 28.8, w.Player().Velocity.X(), 1e-9)
	require.Greater(t, w.Player().Position.X(), 0.0, "yaw 0 strafes toward +X")
}

func TestMovementCollisionRevertsAxis(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	// Wall in front spanning z[-2.5,-1.5].
	o := w.CreateEntity()
	w.Obstacles().Set(o.ID, component.NewObstacle(component.ShapeWall, mgl64.Vec3{0, 5, -2}, mgl64.Vec3{2, 10, 1}))

	p := w.Player()
	p.Velocity = mgl64.Vec3{5, 0, 100}
	w.Advance(16, 0.016)

	NewMovementSystem(env).Update(w)

	require.Zero(t, p.Velocity.Z(), "blocked axis loses its velocity")
	require.Zero(t, p.Position.Z())
	require.InDelta(t, 4.2, p.Velocity.X(), 1e-9, "the free axis keeps moving")
	require.InDelta(t, 4.2*0.016, p.Position.X(), 1e-9)
}

func TestMovementGravityAndFloor(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	p := w.Player()
	p.Position = mgl64.Vec3{0, 10, 0}
	p.Grounded = false
	movement := NewMovementSystem(env)

	w.Advance(16, 0.1)
	movement.Update(w)
	require.InDelta(t, -5, p.Velocity.Y(), 1e-9)
	require.InDelta(t, 9.5, p.Position.Y(), 1e-9)
	require.False(t, p.Grounded)

	for i := 0; i < 20; i++ {
		movement.Update(w)
	}
	require.Equal(t, 2.0, p.Position.Y())
	require.Zero(t, p.Velocity.Y())
	require.True(t, p.Grounded)
}

func TestJump(t *testing.T) {
	ctrl := gomock.NewController(t)
	audio := mocks.NewMockAudioLayer(ctrl)
	env := NewEnv(loadCatalog(t), 1, nil, audio, nil)
	movement := NewMovementSystem(env)

	t.Run("grounded", func(t *testing.T) {
		w := newTestWorld()
		audio.EXPECT().Play(SoundJump).Return(nil)

		require.True(t, movement.Jump(w))
		require.Equal(t, 18.0, w.Player().Velocity.Y())
		require.False(t, w.Player().Grounded)
	})

	t.Run("airborne_is_noop", func(t *testing.T) {
		w := newTestWorld()
		w.Player().Grounded = false
		w.Player().Velocity[1] = -3

		require.False(t, movement.Jump(w))
		require.Equal(t, -3.0, w.Player().Velocity.Y())
		require.False(t, w.Player().Grounded)
	})
}

func TestLook(t *testing.T) {
	env := newTestEnv(t)
	w := newTestWorld()
	movement := NewMovementSystem(env)

	w.Settings().Sensitivity = 2
	movement.Look(w, 100, 50)
	require.InDelta(t, -0.4, w.Player().Yaw, 1e-12)
	require.InDelta(t, -0.2, w.Player().Pitch, 1e-12)

	movement.Look(w, 0, -1e6)
	require.Less(t, w.Player().Pitch, math.Pi/2)
	require.Greater(t, w.Player().Pitch, 1.5)
}
