package system

import (
	"image/color"
	"log/slog"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

//go:generate go tool mockgen -destination=./mocks/ports_mock.go -package=mocks . VisualLayer,AudioLayer,UILayer

// VisualLayer owns every renderable. Visuals are addressed by the entity that
// owns them; calls for entities the layer does not know must be ignored.
type VisualLayer interface {
	Spawn(e ecs.Entity, r component.Renderable)
	Move(e ecs.Entity, pos mgl64.Vec3, yaw, pitch, scale float64)
	Remove(e ecs.Entity)
	SetEmissive(e ecs.Entity, c color.Color)
	SetHealthBar(e ecs.Entity, fraction float64, c color.Color)
	SetWeaponModel(def *component.WeaponDef)
	Recoil(offset float64)
	SetCamera(pos mgl64.Vec3, yaw, pitch float64)
}

// AudioLayer plays named sounds. Errors are reported but never stop the
// simulation.
type AudioLayer interface {
	Play(name string) error
	Loop(name string) error
	Pause(name string)
	Stop(name string)
}

// UILayer is the HUD and menu overlay.
type UILayer interface {
	SetScore(score int)
	SetHealth(hp, max float64)
	HitMarker(kill bool)
	DamageFlash(on bool)
	SetMissionStatus(text string)
	SetWeaponSlot(id component.WeaponID)
	SetPaused(paused, gameOver bool)
}

// Sound names used outside the weapon table.
const (
	SoundJump      = "jump"
	SoundHurt      = "hurt"
	SoundFootsteps = "footsteps"
	SoundMusic     = "bgm"
)

// Emissive colours for the enemy hit flash.
var (
	FlashColor   = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	EmissiveRest = color.NRGBA{R: 0x22, A: 0xff}
)

func play(audio AudioLayer, name string) {
	if audio == nil || name == "" {
		return
	}
	if err := audio.Play(name); err != nil {
		slog.Warn("audio play failed", "system", "audio", "sound", name, "err", err)
	}
}

func loop(audio AudioLayer, name string) {
	if audio == nil || name == "" {
		return
	}
	if err := audio.Loop(name); err != nil {
		slog.Warn("audio loop failed", "system", "audio", "sound", name, "err", err)
	}
}

// NopVisual discards every call.
type NopVisual struct{}

func (NopVisual) Spawn(ecs.Entity, component.Renderable)                 {}
func (NopVisual) Move(ecs.Entity, mgl64.Vec3, float64, float64, float64) {}
func (NopVisual) Remove(ecs.Entity)                                      {}
func (NopVisual) SetEmissive(ecs.Entity, color.Color)                    {}
func (NopVisual) SetHealthBar(ecs.Entity, float64, color.Color)          {}
func (NopVisual) SetWeaponModel(*component.WeaponDef)                    {}
func (NopVisual) Recoil(float64)                                         {}
func (NopVisual) SetCamera(mgl64.Vec3, float64, float64)                 {}

type NopAudio struct{}

func (NopAudio) Play(string) error { return nil }
func (NopAudio) Loop(string) error { return nil }
func (NopAudio) Pause(string)      {}
func (NopAudio) Stop(string)       {}

type NopUI struct{}

func (NopUI) SetScore(int)                     {}
func (NopUI) SetHealth(float64, float64)       {}
func (NopUI) HitMarker(bool)                   {}
func (NopUI) DamageFlash(bool)                 {}
func (NopUI) SetMissionStatus(string)          {}
func (NopUI) SetWeaponSlot(component.WeaponID) {}
func (NopUI) SetPaused(bool, bool)             {}
