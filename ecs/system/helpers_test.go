package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
	"github.com/milk9111/fpsarena/prefabs"
)

func loadCatalog(t testing.TB) *prefabs.Catalog {
	t.Helper()
	c, err := prefabs.LoadCatalog()
	require.NoError(t, err)
	return c
}

func newTestEnv(t testing.TB) *Env {
	t.Helper()
	return NewEnv(loadCatalog(t), 1, nil, nil, nil)
}

// newTestWorld returns a running session with the player standing at spawn,
// looking down -Z.
func newTestWorld() *ecs.World {
	w := ecs.NewWorld(component.NewPlayer(100, mgl64.Vec3{0, 2, 0}))
	w.Player().Grounded = true
	w.Session().Active = true
	w.Session().Started = true
	return w
}

func addEnemy(env *Env, w *ecs.World, id component.ArchetypeID, pos mgl64.Vec3) ecs.Entity {
	a := env.Catalog.Archetype(id)
	e := w.CreateEntity()
	w.Enemies().Set(e.ID, &component.Enemy{
		Tag:        "test-" + string(id),
		Archetype:  a,
		Position:   pos,
		HP:         a.HP,
		MaxHP:      a.HP,
		LastAttack: common.Never,
	})
	return e
}

func enemyHP(t testing.TB, w *ecs.World, e ecs.Entity) float64 {
	t.Helper()
	enemy, ok := w.Enemies().Get(e.ID)
	require.True(t, ok, "enemy %s missing", e)
	return enemy.HP
}

func countEvents(events []ecs.Event, kind ecs.EventKind) int {
	n := 0
	for _, evt := range events {
		if evt.Kind == kind {
			n++
		}
	}
	return n
}
