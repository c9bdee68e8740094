package common

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Never is the timestamp used for "has not happened yet" so that the first
// cooldown check always passes.
var Never = math.Inf(-1)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Normalize returns v scaled to unit length, or the zero vector when v has no
// length. mgl64's Normalize divides by zero in that case.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Distance is the euclidean distance between two points.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// Forward returns the horizontal forward vector for a yaw angle. Yaw 0 looks
// down -Z.
func Forward(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{-math.Sin(yaw), 0, -math.Cos(yaw)}
}

// Right returns the horizontal right vector for a yaw angle.
func Right(yaw float64) mgl64.Vec3 {
	return mgl64.Vec3{math.Cos(yaw), 0, -math.Sin(yaw)}
}

// ViewDirection returns the unit look direction for yaw and pitch.
func ViewDirection(yaw, pitch float64) mgl64.Vec3 {
	cp := math.Cos(pitch)
	return mgl64.Vec3{-math.Sin(yaw) * cp, math.Sin(pitch), -math.Cos(yaw) * cp}
}

// LookAngles returns the yaw and pitch that point from one position to another.
func LookAngles(from, to mgl64.Vec3) (yaw, pitch float64) {
	d := to.Sub(from)
	horiz := math.Hypot(d.X(), d.Z())
	yaw = math.Atan2(-d.X(), -d.Z())
	pitch = math.Atan2(d.Y(), horiz)
	return yaw, pitch
}

// HealthColor maps a health fraction onto the green -> yellow -> red ramp
// (hue fraction*0.3 turns, full saturation, half lightness).
func HealthColor(fraction float64) color.Color {
	f := Clamp(fraction, 0, 1)
	c := colorful.Hsl(f*0.3*360, 1, 0.5).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}
