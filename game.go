package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/fpsarena/assets"
	"github.com/milk9111/fpsarena/common"
	"github.com/milk9111/fpsarena/ecs/render"
	"github.com/milk9111/fpsarena/ecs/system"
	"github.com/milk9111/fpsarena/game"
	"github.com/milk9111/fpsarena/prefabs"
)

type Game struct {
	frames int
	debug  bool
	start  time.Time

	loop    *game.Loop
	radar   *render.Radar
	hud     *HUD
	menu    *Menu
	input   *Input
	mixer   *assets.Mixer
	watcher *prefabs.Watcher

	captured    bool
	clipboardOK bool
	quitting    bool
}

type GameOptions struct {
	Debug       bool
	Seed        uint64
	Watch       bool
	Sensitivity float64
	Speed       float64
}

func NewGame(opts GameOptions) (*Game, error) {
	catalog, err := prefabs.LoadCatalog()
	if err != nil {
		return nil, err
	}

	g := &Game{
		debug: opts.Debug,
		start: time.Now(),
		radar: render.NewRadar(),
		hud:   NewHUD(catalog.Player.LowHealth, catalog.Weapons),
		input: NewInput(),
	}

	var audioLayer system.AudioLayer
	if table, err := assets.LoadSoundTable(); err != nil {
		slog.Warn("sound table unavailable", "system", "audio", "err", err)
	} else if mixer, err := assets.NewMixer(assets.Context(), table); err != nil {
		slog.Warn("audio disabled", "system", "audio", "err", err)
	} else {
		g.mixer = mixer
		audioLayer = mixer
	}

	g.loop = game.New(game.Options{
		Catalog: catalog,
		Seed:    opts.Seed,
		Visual:  g.radar,
		Audio:   audioLayer,
		UI:      g.hud,
	})
	if opts.Sensitivity > 0 {
		g.loop.SetSensitivity(opts.Sensitivity)
	}
	if opts.Speed > 0 {
		g.loop.SetMoveSpeedMultiplier(opts.Speed)
	}
	g.hud.SetSettingsLine(g.loop.Settings())
	g.menu = NewMenu(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
		if err != nil {
			slog.Warn("hot reload disabled", "system", "prefabs", "err", err)
		} else {
			g.watcher = w
			slog.Info("watching prefabs", "system", "prefabs", "dir", prefabs.Dir)
		}
	}

	if err := clipboard.Init(); err != nil {
		slog.Warn("clipboard unavailable", "system", "game", "err", err)
	} else {
		g.clipboardOK = true
	}
	return g, nil
}

func (g *Game) Update() error {
	g.frames++
	if g.quitting {
		return ebiten.Termination
	}

	g.reload()
	g.handleKeys()

	if g.captured && !ebiten.IsFocused() {
		g.release()
	}

	in := g.input.Sample(g.captured, g.loop.World().Player().Weapon)
	now := float64(time.Since(g.start).Microseconds()) / 1000
	g.loop.Step(now, in)
	g.hud.Update()

	if g.loop.GameOver() && g.captured {
		g.release()
	}
	if g.menuVisible() {
		s := g.loop.World().Session()
		g.menu.Show(s.Started, s.GameOver, g.hud.MissionStatus())
		g.menu.UI.Update()
	}
	return nil
}

func (g *Game) handleKeys() {
	if g.captured && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.release()
	}

	settingsChanged := true
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.loop.AdjustSensitivity(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.loop.AdjustSensitivity(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.loop.AdjustMoveSpeedMultiplier(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.loop.AdjustMoveSpeedMultiplier(1)
	default:
		settingsChanged = false
	}
	if settingsChanged {
		g.hud.SetSettingsLine(g.loop.Settings())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) && g.mixer != nil {
		g.mixer.SetMuted(!g.mixer.Muted())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.copySnapshot()
	}
}

// reload applies prefab edits picked up by the watcher.
func (g *Game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		slog.Warn("watcher error", "system", "prefabs", "err", err)
	default:
	}

	tables, scripts := false, false
	for _, c := range g.watcher.Poll() {
		switch c.Kind {
		case prefabs.TableChanged:
			tables = true
		case prefabs.ScriptChanged:
			scripts = true
		}
	}
	if tables {
		catalog, err := prefabs.LoadCatalog()
		if err != nil {
			slog.Warn("catalog reload rejected", "system", "prefabs", "err", err)
		} else {
			g.loop.SetCatalog(catalog)
			g.hud.SetWeaponNames(catalog.Weapons)
			g.hud.SetSettingsLine(g.loop.Settings())
		}
	}
	if scripts && !tables {
		g.loop.ReloadDirector()
	}
}

func (g *Game) copySnapshot() {
	data, err := g.loop.MarshalSnapshot()
	if err != nil {
		slog.Warn("snapshot failed", "system", "game", "err", err)
		return
	}
	if !g.clipboardOK {
		slog.Info("snapshot", "system", "game", "yaml", string(data))
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	slog.Info("snapshot copied", "system", "game", "bytes", len(data))
}

func (g *Game) menuVisible() bool {
	return !g.captured || g.loop.GameOver()
}

// capture grabs the cursor. The loop sees the lock on the next Step.
func (g *Game) capture() {
	if g.loop.GameOver() {
		return
	}
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	g.captured = true
}

func (g *Game) release() {
	ebiten.SetCursorMode(ebiten.CursorModeVisible)
	g.captured = false
}

func (g *Game) restart() {
	g.loop.Reset()
	g.hud.SetSettingsLine(g.loop.Settings())
	g.capture()
}

func (g *Game) quit() {
	g.quitting = true
}

func (g *Game) Close() {
	if err := g.watcher.Close(); err != nil {
		slog.Warn("watcher close", "system", "prefabs", "err", err)
	}
	if g.mixer != nil {
		if err := g.mixer.Close(); err != nil {
			slog.Warn("mixer close", "system", "audio", "err", err)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.radar.Draw(screen)
	g.hud.Draw(screen)
	if g.menuVisible() {
		g.menu.UI.Draw(screen)
	}

	if g.debug {
		w := g.loop.World()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    Entities: %d    Effects: %d",
			g.frames, ebiten.ActualFPS(), w.EntityCount(), w.Effects().Len()))
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
