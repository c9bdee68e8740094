package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs/component"
)

const (
	hitMarkerFrames = 12
	hudMargin       = 20
	healthBarWidth  = 240
	healthBarHeight = 16
)

// HUD is the heads-up overlay. It only stores what the simulation reports
// and draws it; it never reads the world.
type HUD struct {
	face ebtext.Face

	score     int
	hp, maxHP float64
	lowHealth float64
	slot      component.WeaponID
	names     map[component.WeaponID]string
	hitFrames int
	hitKill   bool
	flash     bool
	mission   string
	paused    bool
	gameOver  bool
	settings  string
}

func NewHUD(lowHealth float64, weapons map[component.WeaponID]*component.WeaponDef) *HUD {
	h := &HUD{
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
		lowHealth: lowHealth,
		slot:      1,
	}
	h.SetWeaponNames(weapons)
	return h
}

// SetWeaponNames refreshes the slot labels after a catalog swap.
func (h *HUD) SetWeaponNames(weapons map[component.WeaponID]*component.WeaponDef) {
	h.names = make(map[component.WeaponID]string, len(weapons))
	for id, def := range weapons {
		h.names[id] = def.Name
	}
}

func (h *HUD) SetScore(score int) { h.score = score }

func (h *HUD) SetHealth(hp, maxHP float64) { h.hp, h.maxHP = hp, maxHP }

func (h *HUD) DamageFlash(on bool) { h.flash = on }

func (h *HUD) SetMissionStatus(text string) { h.mission = text }

func (h *HUD) SetWeaponSlot(id component.WeaponID) { h.slot = id }

func (h *HUD) HitMarker(kill bool) {
	h.hitFrames = hitMarkerFrames
	h.hitKill = kill
}

func (h *HUD) SetPaused(paused, gameOver bool) {
	h.paused = paused
	h.gameOver = gameOver
}

func (h *HUD) Paused() bool   { return h.paused }
func (h *HUD) GameOver() bool { return h.gameOver }

func (h *HUD) MissionStatus() string { return h.mission }

// SetSettingsLine shows the current runtime settings in the corner.
func (h *HUD) SetSettingsLine(s component.Settings) {
	h.settings = fmt.Sprintf("SENS %.1f  [ ]    SPEED %.1fx  - =", s.Sensitivity, s.MoveSpeedMultiplier)
}

// Update ages the frame-based markers.
func (h *HUD) Update() {
	if h.hitFrames > 0 {
		h.hitFrames--
	}
}

func (h *HUD) Draw(screen *ebiten.Image) {
	w := float32(common.BaseWidth)
	hh := float32(common.BaseHeight)

	if h.flash {
		vector.FillRect(screen, 0, 0, w, hh, color.NRGBA{R: 0xff, A: 0x50}, false)
	}

	h.drawCrosshair(screen, w/2, hh/2)
	h.drawHealth(screen, hh)
	h.text(screen, fmt.Sprintf("SCORE: %d", h.score), hudMargin, hudMargin, colornames.White)
	h.drawSlots(screen, hh)
	if h.settings != "" {
		h.text(screen, h.settings, hudMargin, float64(hh)-hudMargin, colornames.Gray)
	}
	if h.mission != "" {
		h.text(screen, h.mission, float64(w)/2-float64(len(h.mission))*3.5, float64(hh)/2-60, colornames.Red)
	}
}

func (h *HUD) drawCrosshair(screen *ebiten.Image, cx, cy float32) {
	vector.StrokeLine(screen, cx-8, cy, cx+8, cy, 1, colornames.White, false)
	vector.StrokeLine(screen, cx, cy-8, cx, cy+8, 1, colornames.White, false)
	if h.hitFrames == 0 {
		return
	}
	c := color.Color(colornames.White)
	if h.hitKill {
		c = colornames.Red
	}
	const in, out = 6, 14
	vector.StrokeLine(screen, cx-out, cy-out, cx-in, cy-in, 2, c, true)
	vector.StrokeLine(screen, cx+out, cy-out, cx+in, cy-in, 2, c, true)
	vector.StrokeLine(screen, cx-out, cy+out, cx-in, cy+in, 2, c, true)
	vector.StrokeLine(screen, cx+out, cy+out, cx+in, cy+in, 2, c, true)
}

func (h *HUD) drawHealth(screen *ebiten.Image, screenH float32) {
	x := float32(hudMargin)
	y := screenH - hudMargin - 40
	vector.FillRect(screen, x, y, healthBarWidth, healthBarHeight, colornames.Dimgray, false)
	frac := 0.0
	if h.maxHP > 0 {
		frac = common.Clamp(h.hp/h.maxHP, 0, 1)
	}
	c := color.Color(colornames.Limegreen)
	if h.hp < h.lowHealth {
		c = colornames.Red
	}
	vector.FillRect(screen, x, y, float32(frac)*healthBarWidth, healthBarHeight, c, false)
	h.text(screen, fmt.Sprintf("HP %.0f", h.hp), float64(x)+4, float64(y)+2, colornames.White)
}

func (h *HUD) drawSlots(screen *ebiten.Image, screenH float32) {
	x := float64(common.BaseWidth) - 420
	y := float64(screenH) - hudMargin - 40
	for id := component.WeaponID(1); id <= 3; id++ {
		c := color.Color(colornames.Gray)
		if id == h.slot {
			c = colornames.Yellow
		}
		label := fmt.Sprintf("%d %s", id, h.names[id])
		vector.StrokeRect(screen, float32(x)-4, float32(y)-2, 100, 18, 1, c, false)
		h.text(screen, label, x, y, c)
		x += 110
	}
}

func (h *HUD) text(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	ebtext.Draw(screen, s, h.face, op)
}
