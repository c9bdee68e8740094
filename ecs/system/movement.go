package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
)

// LookScale converts pointer deltas to radians at sensitivity 1.
const LookScale = 0.002

// MovementSystem integrates the player: damped horizontal velocity, gravity,
// axis-by-axis collision against obstacles and the floor clamp.
type MovementSystem struct {
	env *Env
}

func NewMovementSystem(env *Env) *MovementSystem {
	return &MovementSystem{env: env}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if s == nil || w == nil || w.Player() == nil {
		return
	}
	p := w.Player()
	in := w.Input()
	spec := s.env.Catalog.Player
	dt := w.Delta()

	p.Velocity[0] -= p.Velocity[0] * spec.Damping * dt
	p.Velocity[2] -= p.Velocity[2] * spec.Damping * dt
	p.Velocity[1] -= spec.Gravity * dt

	dir := MoveDirection(in.Forward, in.Backward, in.Left, in.Right)
	impulse := spec.MoveSpeed * w.Settings().MoveSpeedMultiplier * dt * spec.ImpulseScale
	if in.Forward || in.Backward {
		p.Velocity[2] += dir.Y() * impulse
	}
	if in.Left || in.Right {
		p.Velocity[0] += dir.X() * impulse
	}

	// Strafe first, then forward. Each axis is reverted on its own.
	step := common.Right(p.Yaw).Mul(p.Velocity.X() * dt)
	if next := p.Position.Add(step); CheckPlayerCollision(w, next) {
		p.Velocity[0] = 0
	} else {
		p.Position = next
	}

	step = common.Forward(p.Yaw).Mul(p.Velocity.Z() * dt)
	if next := p.Position.Add(step); CheckPlayerCollision(w, next) {
		p.Velocity[2] = 0
	} else {
		p.Position = next
	}

	p.Position[1] += p.Velocity.Y() * dt
	if p.Position.Y() < spec.EyeHeight {
		p.Position[1] = spec.EyeHeight
		p.Velocity[1] = 0
		p.Grounded = true
	}

	s.env.Visual.SetCamera(p.Position, p.Yaw, p.Pitch)
}

// MoveDirection is the normalized (strafe, forward) input vector.
func MoveDirection(forward, backward, left, right bool) mgl64.Vec2 {
	v := mgl64.Vec2{boolAxis(right) - boolAxis(left), boolAxis(forward) - boolAxis(backward)}
	if l := v.Len(); l > 0 {
		return v.Mul(1 / l)
	}
	return v
}

func boolAxis(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// Jump launches the player when grounded and reports whether it did.
func (s *MovementSystem) Jump(w *ecs.World) bool {
	if s == nil || w == nil || w.Player() == nil {
		return false
	}
	p := w.Player()
	if !p.Grounded {
		return false
	}
	p.Velocity[1] += s.env.Catalog.Player.JumpSpeed
	p.Grounded = false
	play(s.env.Audio, SoundJump)
	return true
}

// Look turns the camera by pointer deltas scaled by the sensitivity setting.
// Pitch stops just short of straight up and down.
func (s *MovementSystem) Look(w *ecs.World, dx, dy float64) {
	if s == nil || w == nil || w.Player() == nil {
		return
	}
	p := w.Player()
	k := LookScale * w.Settings().Sensitivity
	p.Yaw -= dx * k
	p.Pitch = common.Clamp(p.Pitch-dy*k, -math.Pi/2+0.01, math.Pi/2-0.01)
	s.env.Visual.SetCamera(p.Position, p.Yaw, p.Pitch)
}
