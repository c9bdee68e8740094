package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"

	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

func TestRadarProject(t *testing.T) {
	tests := []struct {
		name  string
		yaw   float64
		point mgl64.Vec3
		wantX float64
		wantY float64
	}{
		{name: "ahead_is_up", point: mgl64.Vec3{0, 5, -10}, wantX: 100, wantY: 60},
		{name: "right_is_right", point: mgl64.Vec3{10, 0, 0}, wantX: 140, wantY: 100},
		{name: "behind_is_down", point: mgl64.Vec3{0, 0, 5}, wantX: 100, wantY: 120},
		{name: "turned_left", yaw: math.Pi / 2, point: mgl64.Vec3{-10, 0, 0}, wantX: 100, wantY: 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRadar()
			r.SetCamera(mgl64.Vec3{0, 2, 0}, tc.yaw, 0)
			x, y := r.Project(tc.point, 200, 200)
			if math.Abs(x-tc.wantX) > 1e-9 || math.Abs(y-tc.wantY) > 1e-9 {
				t.Fatalf("got (%v, %v), want (%v, %v)", x, y, tc.wantX, tc.wantY)
			}
		})
	}
}

func TestRadarLifecycle(t *testing.T) {
	r := NewRadar()
	a := ecs.Entity{ID: 1}
	b := ecs.Entity{ID: 2}
	stale := ecs.Entity{ID: 1, Gen: 1}

	r.Spawn(a, component.Renderable{Kind: component.RenderEnemy, Size: mgl64.Vec3{2, 2, 2}})
	r.Spawn(b, component.Renderable{Kind: component.RenderParticle})
	if r.Len() != 2 {
		t.Fatalf("expected 2 visuals, got %d", r.Len())
	}

	// Calls for handles the radar never saw are ignored.
	r.Move(stale, mgl64.Vec3{9, 9, 9}, 0, 0, 1)
	r.SetHealthBar(stale, 0.5, colornames.Red)
	r.Remove(stale)
	if r.Len() != 2 || r.Has(stale) {
		t.Fatalf("stale handle touched the radar")
	}

	r.Move(a, mgl64.Vec3{1, 2, 3}, 0.5, 0, 1)
	r.SetHealthBar(a, 1.7, colornames.Green)
	v := r.visuals[a]
	if v.Position != (mgl64.Vec3{1, 2, 3}) || v.yaw != 0.5 {
		t.Fatalf("move not applied: %+v", v)
	}
	if !v.hasBar || v.bar != 1 {
		t.Fatalf("expected clamped bar, got %v", v.bar)
	}

	r.Remove(a)
	if r.Has(a) || r.Len() != 1 || len(r.order) != 1 {
		t.Fatalf("remove left state behind")
	}
}
