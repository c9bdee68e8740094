package game

import (
	"log/slog"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
	"github.com/milk9111/fpsarena/ecs/system"
	"github.com/milk9111/fpsarena/prefabs"
)

// Options configures a Loop. A nil Catalog loads the default tables and nil
// collaborators are replaced by no-op implementations.
type Options struct {
	Catalog *prefabs.Catalog
	Seed    uint64
	Visual  system.VisualLayer
	Audio   system.AudioLayer
	UI      system.UILayer
}

// Loop owns the simulation state and steps it one frame at a time. It is not
// safe for concurrent use; independent loops share nothing.
type Loop struct {
	env   *system.Env
	world *ecs.World

	movement  *system.MovementSystem
	weapons   *system.WeaponSystem
	spawner   *system.SpawnSystem
	effects   *system.EffectSystem
	scheduler *ecs.Scheduler

	lastNow   float64
	stepped   bool
	locked    bool
	footsteps bool
}

func New(opts Options) *Loop {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = prefabs.MustLoadCatalog()
	}
	env := system.NewEnv(catalog, opts.Seed, opts.Visual, opts.Audio, opts.UI)

	l := &Loop{env: env}
	l.movement = system.NewMovementSystem(env)
	l.weapons = system.NewWeaponSystem(env)
	l.spawner = system.NewSpawnSystem(env)
	l.effects = system.NewEffectSystem(env)
	l.scheduler = ecs.NewScheduler(
		l.movement,
		system.NewEnemySystem(env),
		system.NewProjectileSystem(env),
		system.NewParticleSystem(env),
	)

	spec := catalog.Player
	l.world = ecs.NewWorld(component.NewPlayer(spec.MaxHP, spec.Spawn.Vec3()))
	l.world.Player().Grounded = true
	*l.world.Settings() = component.Settings{
		Sensitivity:         spec.Settings.Sensitivity.Default,
		MoveSpeedMultiplier: spec.Settings.MoveSpeedMultiplier.Default,
	}

	obstacles := system.GenerateLevel(env, l.world)
	l.refreshUI()
	slog.Info("loop ready", "system", "game", "seed", opts.Seed, "obstacles", obstacles)
	return l
}

func (l *Loop) World() *ecs.World {
	return l.world
}

func (l *Loop) Env() *system.Env {
	return l.env
}

// Catalog returns the definition tables in use.
func (l *Loop) Catalog() *prefabs.Catalog {
	return l.env.Catalog
}

// Step advances the simulation to now (ms) with the input sampled for this
// frame and returns the gameplay events the frame produced.
func (l *Loop) Step(now float64, in component.Input) []ecs.Event {
	dt := 0.0
	if l.stepped {
		dt = common.Clamp((now-l.lastNow)/1000, 0, l.env.Catalog.Level.MaxDelta)
	}
	l.lastNow = now
	l.stepped = true

	w := l.world
	w.Advance(now, dt)
	w.SetInput(in)

	if in.PointerLocked != l.locked {
		if in.PointerLocked {
			l.Lock()
		} else {
			l.Unlock()
		}
	}

	if w.Session().Simulating() {
		l.handleInput(in)
	}

	l.spawner.Update(w)

	if w.Session().Simulating() {
		l.scheduler.Update(w)
		l.updateFootsteps(in)
	}

	l.effects.Update(w)
	return w.Events().Drain()
}

func (l *Loop) handleInput(in component.Input) {
	w := l.world
	if in.LookDX != 0 || in.LookDY != 0 {
		l.movement.Look(w, in.LookDX, in.LookDY)
	}
	if in.SelectWeapon != 0 && l.env.Catalog.HasWeapon(in.SelectWeapon) {
		l.weapons.SelectWeapon(w, in.SelectWeapon)
	}
	if in.Jump {
		l.movement.Jump(w)
	}
	if in.Fire {
		l.weapons.Shoot(w)
	}
}

func (l *Loop) updateFootsteps(in component.Input) {
	walking := in.Moving() && l.world.Player().Grounded
	switch {
	case walking && !l.footsteps:
		if err := l.env.Audio.Loop(system.SoundFootsteps); err != nil {
			slog.Warn("audio loop failed", "system", "game", "sound", system.SoundFootsteps, "err", err)
		}
		l.footsteps = true
	case !walking && l.footsteps:
		l.env.Audio.Stop(system.SoundFootsteps)
		l.footsteps = false
	}
}

// Lock is the pointer-lock transition: the session becomes active and the
// music loops. It is ignored once the game is over.
func (l *Loop) Lock() {
	l.locked = true
	session := l.world.Session()
	if session.GameOver {
		return
	}
	if !session.Started {
		session.Started = true
		session.StartedAt = l.world.Now()
	}
	session.Active = true
	if err := l.env.Audio.Loop(system.SoundMusic); err != nil {
		slog.Warn("audio loop failed", "system", "game", "sound", system.SoundMusic, "err", err)
	}
	l.env.UI.SetPaused(false, false)
	slog.Debug("pointer locked", "system", "game")
}

// Unlock pauses a running session. After game over the menu is already up
// and nothing changes.
func (l *Loop) Unlock() {
	l.locked = false
	session := l.world.Session()
	if session.GameOver || !session.Active {
		return
	}
	session.Active = false
	l.env.Audio.Pause(system.SoundMusic)
	l.env.Audio.Pause(system.SoundFootsteps)
	l.footsteps = false
	l.env.UI.SetPaused(true, false)
	slog.Debug("pointer unlocked", "system", "game")
}

// Paused reports whether a started session is waiting for the pointer.
func (l *Loop) Paused() bool {
	s := l.world.Session()
	return s.Started && !s.Active && !s.GameOver
}

func (l *Loop) GameOver() bool {
	return l.world.Session().GameOver
}

// Reset starts a fresh run: pending effects are applied, every enemy,
// projectile and particle is removed together with its visual, and the
// player returns to spawn with default health, score and weapon. The level
// and the settings are kept. The session waits for the next pointer lock.
func (l *Loop) Reset() {
	w := l.world
	l.effects.Flush(w)

	var doomed []ecs.Entity
	doomed = append(doomed, ecs.Snapshot(w, w.Enemies())...)
	doomed = append(doomed, ecs.Snapshot(w, w.PlayerProjectiles())...)
	doomed = append(doomed, ecs.Snapshot(w, w.EnemyProjectiles())...)
	doomed = append(doomed, ecs.Snapshot(w, w.Particles())...)
	for _, e := range doomed {
		l.env.Visual.Remove(e)
		w.DestroyEntity(e)
	}
	w.Effects().Clear()
	w.Events().Drain()

	spec := l.env.Catalog.Player
	p := component.NewPlayer(spec.MaxHP, spec.Spawn.Vec3())
	p.Grounded = true
	w.SetPlayer(p)

	*w.Session() = component.Session{}
	l.locked = false
	if l.footsteps {
		l.env.Audio.Stop(system.SoundFootsteps)
		l.footsteps = false
	}
	l.spawner.Reset()
	l.refreshUI()
	slog.Info("run reset", "system", "game", "removed", len(doomed))
}

func (l *Loop) refreshUI() {
	p := l.world.Player()
	l.env.Visual.SetWeaponModel(l.env.Catalog.Weapon(p.Weapon))
	l.env.Visual.SetCamera(p.Position, p.Yaw, p.Pitch)
	l.env.UI.SetHealth(p.HP, p.MaxHP)
	l.env.UI.SetScore(p.Score)
	l.env.UI.SetWeaponSlot(p.Weapon)
	l.env.UI.SetMissionStatus("")
	l.env.UI.DamageFlash(false)
}

// SetCatalog swaps the definition tables after a hot reload. Enemies already
// spawned keep their archetype; new spawns and shots use the new tables.
func (l *Loop) SetCatalog(c *prefabs.Catalog) {
	if c == nil {
		return
	}
	l.env.Catalog = c
	l.spawner.ReloadDirector()
	l.SetSensitivity(l.world.Settings().Sensitivity)
	l.SetMoveSpeedMultiplier(l.world.Settings().MoveSpeedMultiplier)
	l.env.Visual.SetWeaponModel(c.Weapon(l.world.Player().Weapon))
	slog.Info("catalog swapped", "system", "game", "weapons", len(c.Weapons), "archetypes", len(c.Archetypes))
}

// ReloadDirector recompiles the spawn director script.
func (l *Loop) ReloadDirector() {
	l.spawner.ReloadDirector()
}

func (l *Loop) Settings() component.Settings {
	return *l.world.Settings()
}

// SetSensitivity stores v clamped to the configured range and returns the
// stored value.
func (l *Loop) SetSensitivity(v float64) float64 {
	v = l.env.Catalog.Player.Settings.Sensitivity.Clamp(v)
	l.world.Settings().Sensitivity = v
	return v
}

func (l *Loop) SetMoveSpeedMultiplier(v float64) float64 {
	v = l.env.Catalog.Player.Settings.MoveSpeedMultiplier.Clamp(v)
	l.world.Settings().MoveSpeedMultiplier = v
	return v
}

// AdjustSensitivity moves the sensitivity by steps increments.
func (l *Loop) AdjustSensitivity(steps int) float64 {
	r := l.env.Catalog.Player.Settings.Sensitivity
	return l.SetSensitivity(l.world.Settings().Sensitivity + float64(steps)*r.Step)
}

func (l *Loop) AdjustMoveSpeedMultiplier(steps int) float64 {
	r := l.env.Catalog.Player.Settings.MoveSpeedMultiplier
	return l.SetMoveSpeedMultiplier(l.world.Settings().MoveSpeedMultiplier + float64(steps)*r.Step)
}
