package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

const (
	defaultZoom  = 4.0
	barWidth     = 14.0
	barThickness = 3.0
	minDotRadius = 1.5
	recoilPixels = 120.0
)

type visual struct {
	component.Renderable
	yaw      float64
	scale    float64
	emissive color.Color
	bar      float64
	barColor color.Color
	hasBar   bool
}

// Radar is a top-down view of the arena centred on the camera, with the
// camera's forward direction pointing up the screen. It implements the
// visual layer: every renderable is keyed by its entity and calls for unknown
// entities are ignored.
type Radar struct {
	visuals map[ecs.Entity]*visual
	order   []ecs.Entity

	camPos   mgl64.Vec3
	camYaw   float64
	camPitch float64

	weapon *component.WeaponDef
	recoil float64

	// Zoom is the number of pixels per world unit.
	Zoom float64
}

func NewRadar() *Radar {
	return &Radar{
		visuals: make(map[ecs.Entity]*visual),
		Zoom:    defaultZoom,
	}
}

func (r *Radar) Spawn(e ecs.Entity, rr component.Renderable) {
	if r == nil {
		return
	}
	if _, ok := r.visuals[e]; !ok {
		r.order = append(r.order, e)
	}
	r.visuals[e] = &visual{Renderable: rr, scale: 1}
}

func (r *Radar) Move(e ecs.Entity, pos mgl64.Vec3, yaw, _, scale float64) {
	v, ok := r.visuals[e]
	if !ok {
		return
	}
	v.Position = pos
	v.yaw = yaw
	v.scale = scale
}

func (r *Radar) Remove(e ecs.Entity) {
	if _, ok := r.visuals[e]; !ok {
		return
	}
	delete(r.visuals, e)
	for i, id := range r.order {
		if id == e {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

func (r *Radar) SetEmissive(e ecs.Entity, c color.Color) {
	if v, ok := r.visuals[e]; ok {
		v.emissive = c
	}
}

func (r *Radar) SetHealthBar(e ecs.Entity, fraction float64, c color.Color) {
	if v, ok := r.visuals[e]; ok {
		v.bar = common.Clamp(fraction, 0, 1)
		v.barColor = c
		v.hasBar = true
	}
}

func (r *Radar) SetWeaponModel(def *component.WeaponDef) {
	r.weapon = def
}

func (r *Radar) Recoil(offset float64) {
	r.recoil = offset
}

func (r *Radar) SetCamera(pos mgl64.Vec3, yaw, pitch float64) {
	r.camPos = pos
	r.camYaw = yaw
	r.camPitch = pitch
}

// Len returns the number of live visuals.
func (r *Radar) Len() int {
	return len(r.visuals)
}

// Has reports whether e has a visual.
func (r *Radar) Has(e ecs.Entity) bool {
	_, ok := r.visuals[e]
	return ok
}

// Project maps a world position to screen coordinates for a view of the
// given size. Points ahead of the camera land above the centre.
func (r *Radar) Project(p mgl64.Vec3, width, height float64) (x, y float64) {
	d := p.Sub(r.camPos)
	side := d.Dot(common.Right(r.camYaw))
	ahead := d.Dot(common.Forward(r.camYaw))
	return width/2 + side*r.Zoom, height/2 - ahead*r.Zoom
}

func (r *Radar) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	screen.Fill(colornames.Black)

	// Obstacles first so everything else draws on top.
	for _, e := range r.order {
		if v := r.visuals[e]; v.Kind == component.RenderObstacle {
			r.drawObstacle(screen, v, w, h)
		}
	}
	for _, e := range r.order {
		v := r.visuals[e]
		switch v.Kind {
		case component.RenderObstacle:
		case component.RenderEnemy:
			r.drawEnemy(screen, v, w, h)
		case component.RenderBeam:
			x0, y0 := r.Project(v.Position, w, h)
			x1, y1 := r.Project(v.End, w, h)
			vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, v.Color, true)
		default:
			x, y := r.Project(v.Position, w, h)
			radius := math.Max(minDotRadius, v.Size.X()/2*v.scale*r.Zoom)
			vector.FillCircle(screen, float32(x), float32(y), float32(radius), v.Color, true)
		}
	}

	r.drawPlayer(screen, w, h)
	r.drawWeapon(screen, w, h)
}

func (r *Radar) drawObstacle(screen *ebiten.Image, v *visual, w, h float64) {
	hx, hz := v.Size.X()/2, v.Size.Z()/2
	if v.Shape == component.ShapeCylinder {
		x, y := r.Project(v.Position, w, h)
		vector.StrokeCircle(screen, float32(x), float32(y), float32(hx*r.Zoom), 1, colornames.Slategray, true)
		return
	}
	corners := [4]mgl64.Vec3{
		v.Position.Add(mgl64.Vec3{-hx, 0, -hz}),
		v.Position.Add(mgl64.Vec3{hx, 0, -hz}),
		v.Position.Add(mgl64.Vec3{hx, 0, hz}),
		v.Position.Add(mgl64.Vec3{-hx, 0, hz}),
	}
	c := colornames.Slategray
	if v.Shape == component.ShapeWall {
		c = colornames.Steelblue
	}
	for i := range corners {
		x0, y0 := r.Project(corners[i], w, h)
		x1, y1 := r.Project(corners[(i+1)%4], w, h)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, c, true)
	}
}

func (r *Radar) drawEnemy(screen *ebiten.Image, v *visual, w, h float64) {
	x, y := r.Project(v.Position, w, h)
	radius := math.Max(minDotRadius*2, v.Size.X()/2*r.Zoom)
	vector.FillCircle(screen, float32(x), float32(y), float32(radius), v.Color, true)
	if v.emissive != nil {
		vector.StrokeCircle(screen, float32(x), float32(y), float32(radius+1), 2, v.emissive, true)
	}

	// Facing tick relative to the camera's up direction.
	rel := v.yaw - r.camYaw
	fx, fy := -math.Sin(rel), -math.Cos(rel)
	vector.StrokeLine(screen, float32(x), float32(y), float32(x+fx*radius*1.6), float32(y+fy*radius*1.6), 1, colornames.White, true)

	if !v.hasBar {
		return
	}
	top := float32(y - radius - 6)
	left := float32(x - barWidth/2)
	vector.FillRect(screen, left, top, barWidth, barThickness, colornames.Dimgray, false)
	vector.FillRect(screen, left, top, float32(barWidth*v.bar), barThickness, v.barColor, false)
}

func (r *Radar) drawPlayer(screen *ebiten.Image, w, h float64) {
	cx, cy := float32(w/2), float32(h/2)
	vector.FillCircle(screen, cx, cy, 4, colornames.Limegreen, true)
	vector.StrokeLine(screen, cx, cy, cx, cy-12, 2, colornames.Limegreen, true)
}

// drawWeapon shows the view model as a block in the lower right corner that
// kicks down while the recoil is applied.
func (r *Radar) drawWeapon(screen *ebiten.Image, w, h float64) {
	if r.weapon == nil {
		return
	}
	bw, bh := float32(70), float32(110)
	x := float32(w) - bw - 60
	y := float32(h) - bh + float32(r.recoil*recoilPixels)
	vector.FillRect(screen, x, y, bw, bh, r.weapon.ModelColor, false)
	vector.StrokeRect(screen, x, y, bw, bh, 2, r.weapon.Color, false)
}
