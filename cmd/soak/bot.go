package main

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
	"github.com/milk9111/fpsarena/ecs/system"
	"github.com/milk9111/fpsarena/game"
)

// bot drives a loop the way a player would: it turns toward the nearest
// enemy, fires whenever it is roughly on target, strafes and hops, and
// rotates through the weapons.
type bot struct {
	rng *rand.Rand

	strafeLeft  bool
	strafeUntil float64
	nextJump    float64
	nextSwap    float64
}

func newBot(seed uint64) *bot {
	return &bot{rng: rand.New(rand.NewPCG(seed, seed^0x5eed))}
}

// Input returns the next frame of input for l at time now (ms).
func (b *bot) Input(l *game.Loop, now float64) component.Input {
	w := l.World()
	p := w.Player()
	in := component.Input{PointerLocked: true, Forward: true}

	if now >= b.strafeUntil {
		b.strafeLeft = b.rng.IntN(2) == 0
		b.strafeUntil = now + 500 + b.rng.Float64()*1500
	}
	in.Left = b.strafeLeft
	in.Right = !b.strafeLeft

	if now >= b.nextJump {
		in.Jump = true
		b.nextJump = now + 1000 + b.rng.Float64()*3000
	}
	if now >= b.nextSwap {
		in.SelectWeapon = component.WeaponID(1 + b.rng.IntN(3))
		b.nextSwap = now + 4000 + b.rng.Float64()*4000
	}

	target, ok := nearestEnemy(w, p.Position)
	if !ok {
		return in
	}
	in.Forward = common.Distance(p.Position, target) > 15

	yaw, pitch := common.LookAngles(p.Position, target)
	dyaw := wrapAngle(yaw - p.Yaw)
	dpitch := pitch - p.Pitch
	k := system.LookScale * w.Settings().Sensitivity
	if k > 0 {
		in.LookDX = -dyaw / k
		in.LookDY = -dpitch / k
	}
	in.Fire = math.Abs(dyaw) < 0.2
	return in
}

func nearestEnemy(w *ecs.World, from mgl64.Vec3) (mgl64.Vec3, bool) {
	best := math.Inf(1)
	var target mgl64.Vec3
	ecs.Each(w, w.Enemies(), func(_ ecs.Entity, e *component.Enemy) {
		if d := common.Distance(from, e.Position); d < best {
			best = d
			target = e.Position
		}
	})
	return target, !math.IsInf(best, 1)
}

func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
