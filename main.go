package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	seed := flag.Uint64("seed", 1, "seed for level generation and spawns")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn, error")
	watch := flag.Bool("watch", false, "hot reload prefab tables and scripts from ./prefabs")
	sensitivity := flag.Float64("sensitivity", 0, "initial mouse sensitivity (0 keeps the prefab default)")
	speed := flag.Float64("speed", 0, "initial move speed multiplier (0 keeps the prefab default)")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelInfo
	}
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	w, h := ebiten.Monitor().Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("fpsarena")

	game, err := NewGame(GameOptions{
		Debug:       *debug,
		Seed:        *seed,
		Watch:       *watch,
		Sensitivity: *sensitivity,
		Speed:       *speed,
	})
	if err != nil {
		slog.Error("startup failed", "err", err)
		os.Exit(1)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "err", err)
		game.Close()
		os.Exit(1)
	}
}
