package ecs

import "github.com/milk9111/fpsarena/ecs/component"

// World is the Entity Registry: entity lifetimes, one sparse set per entity
// kind, the player and session resources, pending effects and the frame clock.
type World struct {
	entities entityStore
	events   EventQueue
	effects  EffectList

	player   *component.Player
	session  component.Session
	input    component.Input
	settings component.Settings

	enemies     *SparseSet[*component.Enemy]
	playerShots *SparseSet[*component.Projectile]
	enemyShots  *SparseSet[*component.Projectile]
	particles   *SparseSet[*component.Particle]
	obstacles   *SparseSet[component.Obstacle]

	now   float64
	delta float64
	frame uint64
}

// NewWorld creates an empty world with the given player and default settings.
func NewWorld(player *component.Player) *World {
	return &World{
		player:      player,
		settings:    component.Settings{Sensitivity: 1, MoveSpeedMultiplier: 1},
		enemies:     &SparseSet[*component.Enemy]{},
		playerShots: &SparseSet[*component.Projectile]{},
		enemyShots:  &SparseSet[*component.Projectile]{},
		particles:   &SparseSet[*component.Particle]{},
		obstacles:   &SparseSet[component.Obstacle]{},
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and drops every component it owned. It
// returns false for stale or already destroyed handles.
func (w *World) DestroyEntity(e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	w.enemies.Remove(e.ID)
	w.playerShots.Remove(e.ID)
	w.enemyShots.Remove(e.ID)
	w.particles.Remove(e.ID)
	w.obstacles.Remove(e.ID)
	return true
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Handle returns the live handle for a dense id taken from a sparse set.
func (w *World) Handle(id int) (Entity, bool) {
	if w == nil {
		return Entity{}, false
	}
	return w.entities.handle(id)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	if w == nil {
		return 0
	}
	return w.entities.count
}

func (w *World) Player() *component.Player {
	if w == nil {
		return nil
	}
	return w.player
}

// SetPlayer replaces the player resource.
func (w *World) SetPlayer(p *component.Player) {
	if w == nil {
		return
	}
	w.player = p
}

func (w *World) Enemies() *SparseSet[*component.Enemy] {
	if w == nil {
		return nil
	}
	return w.enemies
}

func (w *World) PlayerProjectiles() *SparseSet[*component.Projectile] {
	if w == nil {
		return nil
	}
	return w.playerShots
}

func (w *World) EnemyProjectiles() *SparseSet[*component.Projectile] {
	if w == nil {
		return nil
	}
	return w.enemyShots
}

func (w *World) Particles() *SparseSet[*component.Particle] {
	if w == nil {
		return nil
	}
	return w.particles
}

func (w *World) Obstacles() *SparseSet[component.Obstacle] {
	if w == nil {
		return nil
	}
	return w.obstacles
}

// Session returns the game-state resource.
func (w *World) Session() *component.Session {
	if w == nil {
		return nil
	}
	return &w.session
}

// Input returns the input sampled for the current frame.
func (w *World) Input() component.Input {
	if w == nil {
		return component.Input{}
	}
	return w.input
}

// SetInput stores the input for the current frame.
func (w *World) SetInput(in component.Input) {
	if w == nil {
		return
	}
	w.input = in
}

func (w *World) Settings() *component.Settings {
	if w == nil {
		return nil
	}
	return &w.settings
}

// Effects returns the pending timed effects.
func (w *World) Effects() *EffectList {
	if w == nil {
		return nil
	}
	return &w.effects
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Advance moves the frame clock. now is in milliseconds, delta in seconds.
func (w *World) Advance(now, delta float64) {
	if w == nil {
		return
	}
	w.now = now
	w.delta = delta
	w.frame++
}

// Now returns the current frame timestamp in milliseconds.
func (w *World) Now() float64 {
	if w == nil {
		return 0
	}
	return w.now
}

// Delta returns the current frame step in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.delta
}

func (w *World) Frame() uint64 {
	if w == nil {
		return 0
	}
	return w.frame
}
