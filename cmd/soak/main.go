// Command soak runs seeded headless sessions with a scripted bot and reports
// per-session stats. Every session owns its own loop; nothing is shared.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/game"
	"github.com/milk9111/fpsarena/prefabs"
)

type config struct {
	Sessions int
	Seed     uint64
	// Duration is simulated time per session.
	Duration time.Duration
	FPS      int
	// Director optionally names a spawn director script.
	Director string
}

// Stats summarises one session.
type Stats struct {
	RunID      string
	Seed       uint64
	Frames     int
	Survived   time.Duration
	Score      int
	Shots      int
	Kills      int
	Spawned    int
	Explosions int
	DamageIn   float64
	DamageOut  float64
	GameOver   bool
	MaxEntity  int
}

func main() {
	var cfg config
	flag.IntVar(&cfg.Sessions, "n", 8, "number of concurrent sessions")
	flag.Uint64Var(&cfg.Seed, "seed", 1, "seed of the first session; session i uses seed+i")
	flag.DurationVar(&cfg.Duration, "duration", 2*time.Minute, "simulated time per session")
	flag.IntVar(&cfg.FPS, "fps", 60, "simulated frames per second")
	flag.StringVar(&cfg.Director, "director", "", "spawn director script, e.g. scripts/director.tengo")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := run(ctx, cfg)
	if err != nil {
		slog.Error("soak failed", "system", "soak", "err", err)
		os.Exit(1)
	}
	for _, s := range results {
		fmt.Printf("%s seed=%d frames=%d survived=%s score=%d shots=%d kills=%d spawned=%d explosions=%d dmg_in=%.0f dmg_out=%.0f game_over=%t max_entities=%d\n",
			s.RunID, s.Seed, s.Frames, s.Survived, s.Score, s.Shots, s.Kills, s.Spawned, s.Explosions, s.DamageIn, s.DamageOut, s.GameOver, s.MaxEntity)
	}
}

// run executes cfg.Sessions sessions concurrently. Results are ordered by
// session index.
func run(ctx context.Context, cfg config) ([]Stats, error) {
	if cfg.Sessions <= 0 || cfg.FPS <= 0 || cfg.Duration <= 0 {
		return nil, errors.New("soak: sessions, fps and duration must be positive")
	}

	results := make([]Stats, cfg.Sessions)
	eg, ctx := errgroup.WithContext(ctx)
	for i := range cfg.Sessions {
		seed := cfg.Seed + uint64(i)
		eg.Go(func() error {
			catalog, err := prefabs.LoadCatalog()
			if err != nil {
				return fmt.Errorf("soak: session %d: %w", i, err)
			}
			if cfg.Director != "" {
				catalog.Spawner.Director = cfg.Director
			}
			s, err := session(ctx, game.New(game.Options{Catalog: catalog, Seed: seed}), seed, cfg)
			if err != nil {
				return err
			}
			results[i] = s
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// session drives one loop at a fixed frame rate until the simulated duration
// elapses or the player dies.
func session(ctx context.Context, l *game.Loop, seed uint64, cfg config) (Stats, error) {
	stats := Stats{RunID: uuid.NewString(), Seed: seed}
	log := slog.With("system", "soak", "run", stats.RunID, "seed", seed)
	log.Info("session started")

	b := newBot(seed)
	frameMS := 1000 / float64(cfg.FPS)
	total := float64(cfg.Duration.Milliseconds())

	var now float64
	for now = 0; now <= total; now += frameMS {
		if stats.Frames%600 == 0 {
			if err := ctx.Err(); err != nil {
				return stats, err
			}
		}
		for _, evt := range l.Step(now, b.Input(l, now)) {
			stats.record(evt)
		}
		stats.Frames++
		stats.MaxEntity = max(stats.MaxEntity, l.World().EntityCount())
		if l.GameOver() {
			break
		}
	}

	stats.Survived = time.Duration(min(now, total) * float64(time.Millisecond))
	stats.Score = l.World().Player().Score
	stats.GameOver = l.GameOver()
	log.Info("session finished", "frames", stats.Frames, "score", stats.Score, "game_over", stats.GameOver)
	return stats, nil
}

func (s *Stats) record(evt ecs.Event) {
	switch evt.Kind {
	case ecs.EventWeaponFired:
		s.Shots++
	case ecs.EventEnemyKilled:
		s.Kills++
	case ecs.EventEnemySpawned:
		s.Spawned++
	case ecs.EventExplosion:
		s.Explosions++
	case ecs.EventPlayerDamaged:
		s.DamageIn += evt.Amount
	case ecs.EventEnemyDamaged:
		s.DamageOut += evt.Amount
	}
}
