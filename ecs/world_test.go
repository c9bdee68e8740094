package ecs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fpsarena/ecs/component"
)

func newTestWorld() *World {
	return NewWorld(component.NewPlayer(100, mgl64.Vec3{0, 2, 0}))
}

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := newTestWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, w.CreateEntity())
			}
			if w.EntityCount() != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, w.EntityCount())
			}
			if c.destroyIndex >= 0 {
				e := ents[c.destroyIndex]
				if !w.DestroyEntity(e) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if w.IsAlive(e) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if w.DestroyEntity(e) {
					t.Fatalf("second DestroyEntity should return false")
				}
			}
		})
	}
}

func TestWorldRecycledIDsAreNotAlive(t *testing.T) {
	w := newTestWorld()
	old := w.CreateEntity()
	w.DestroyEntity(old)

	fresh := w.CreateEntity()
	if fresh.ID != old.ID {
		t.Fatalf("expected id reuse, got %d and %d", old.ID, fresh.ID)
	}
	if fresh.Gen == old.Gen {
		t.Fatalf("recycled id kept generation %d", old.Gen)
	}
	if w.IsAlive(old) {
		t.Fatalf("stale handle %s reported alive", old)
	}
	if !w.IsAlive(fresh) {
		t.Fatalf("fresh handle %s should be alive", fresh)
	}
	if h, ok := w.Handle(fresh.ID); !ok || h != fresh {
		t.Fatalf("Handle(%d) = %v,%v", fresh.ID, h, ok)
	}
}

func TestWorldDestroyDropsComponents(t *testing.T) {
	w := newTestWorld()

	tests := []struct {
		name  string
		add   func(e Entity)
		count func() int
	}{
		{
			name:  "enemy",
			add:   func(e Entity) { w.Enemies().Set(e.ID, &component.Enemy{HP: 10, MaxHP: 10}) },
			count: func() int { return w.Enemies().Len() },
		},
		{
			name:  "player_shot",
			add:   func(e Entity) { w.PlayerProjectiles().Set(e.ID, &component.Projectile{Active: true}) },
			count: func() int { return w.PlayerProjectiles().Len() },
		},
		{
			name:  "enemy_shot",
			add:   func(e Entity) { w.EnemyProjectiles().Set(e.ID, &component.Projectile{Active: true}) },
			count: func() int { return w.EnemyProjectiles().Len() },
		},
		{
			name:  "particle",
			add:   func(e Entity) { w.Particles().Set(e.ID, &component.Particle{Life: 1}) },
			count: func() int { return w.Particles().Len() },
		},
		{
			name:  "obstacle",
			add:   func(e Entity) { w.Obstacles().Set(e.ID, component.Obstacle{}) },
			count: func() int { return w.Obstacles().Len() },
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := w.CreateEntity()
			tc.add(e)
			if tc.count() != 1 {
				t.Fatalf("expected 1 component, got %d", tc.count())
			}
			w.DestroyEntity(e)
			if tc.count() != 0 {
				t.Fatalf("expected component to be dropped, got %d", tc.count())
			}
		})
	}
}

func TestEachToleratesDestruction(t *testing.T) {
	w := newTestWorld()
	var ents []Entity
	for i := 0; i < 5; i++ {
		e := w.CreateEntity()
		w.Enemies().Set(e.ID, &component.Enemy{HP: float64(i + 1)})
		ents = append(ents, e)
	}

	visited := 0
	Each(w, w.Enemies(), func(e Entity, _ *component.Enemy) {
		visited++
		// Destroy a later entity and recycle its id into a new enemy; the
		// replacement must not be visited under the old handle.
		if e == ents[0] {
			w.DestroyEntity(ents[3])
			n := w.CreateEntity()
			w.Enemies().Set(n.ID, &component.Enemy{HP: 99})
		}
	})

	if visited != 4 {
		t.Fatalf("expected 4 visits, got %d", visited)
	}
	if w.Enemies().Len() != 5 {
		t.Fatalf("expected 5 enemies after recycle, got %d", w.Enemies().Len())
	}
}

func TestSparseSetRemoveSwapsLast(t *testing.T) {
	var s SparseSet[string]
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(3, "c")

	if !s.Remove(1) {
		t.Fatalf("Remove(1) should succeed")
	}
	if s.Has(1) || s.Len() != 2 {
		t.Fatalf("unexpected state after remove: len=%d", s.Len())
	}
	for id, want := range map[int]string{2: "b", 3: "c"} {
		if got, ok := s.Get(id); !ok || got != want {
			t.Fatalf("Get(%d) = %q,%v", id, got, ok)
		}
	}
	if s.Remove(1) {
		t.Fatalf("double Remove should fail")
	}
}

func TestEffectListExpire(t *testing.T) {
	var l EffectList
	l.Schedule(Effect{Kind: EffectRemove, ExpiresAt: 50})
	l.Schedule(Effect{Kind: EffectRecoilReset, ExpiresAt: 100})
	l.Schedule(Effect{Kind: EffectRevertFlash, ExpiresAt: 40})

	cases := []struct {
		now  float64
		want []EffectKind
		left int
	}{
		{10, nil, 3},
		{50, []EffectKind{EffectRemove, EffectRevertFlash}, 1},
		{100, []EffectKind{EffectRecoilReset}, 0},
		{500, nil, 0},
	}
	for _, c := range cases {
		due := l.Expire(c.now)
		if len(due) != len(c.want) {
			t.Fatalf("now=%v: expected %d due, got %d", c.now, len(c.want), len(due))
		}
		for i, e := range due {
			if e.Kind != c.want[i] {
				t.Fatalf("now=%v: due[%d]=%s want %s", c.now, i, e.Kind, c.want[i])
			}
		}
		if l.Len() != c.left {
			t.Fatalf("now=%v: expected %d pending, got %d", c.now, c.left, l.Len())
		}
	}
}

func TestEventQueueDrain(t *testing.T) {
	w := newTestWorld()
	w.Events().Push(Event{Kind: EventEnemyKilled, Amount: 50})
	w.Events().Push(Event{Kind: EventGameOver})

	got := w.Events().Drain()
	if len(got) != 2 || got[0].Kind != EventEnemyKilled || got[1].Kind != EventGameOver {
		t.Fatalf("unexpected events %+v", got)
	}
	if w.Events().Len() != 0 || w.Events().Drain() != nil {
		t.Fatalf("queue should be empty after drain")
	}
}

func TestNilWorldIsSafe(t *testing.T) {
	var w *World
	if w.IsAlive(Entity{ID: 1}) || w.EntityCount() != 0 || w.Player() != nil {
		t.Fatalf("nil world should report nothing")
	}
	if w.DestroyEntity(Entity{ID: 1}) {
		t.Fatalf("nil world destroy should fail")
	}
	w.Advance(1, 1)
	if w.Now() != 0 || w.Frame() != 0 {
		t.Fatalf("nil world clock should stay zero")
	}
}
