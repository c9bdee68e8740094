package game

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/fpsarena/ecs"
	"github.com/milk9111/fpsarena/ecs/component"
)

// Snapshot is a readable dump of the simulation state for debugging.
type Snapshot struct {
	Now      float64            `yaml:"now_ms"`
	Frame    uint64             `yaml:"frame"`
	Session  SessionState       `yaml:"session"`
	Player   PlayerState        `yaml:"player"`
	Enemies  []EnemyState       `yaml:"enemies"`
	Shots    ShotCounts         `yaml:"shots"`
	Settings component.Settings `yaml:"settings"`
	Pending  int                `yaml:"pending_effects"`
}

type SessionState struct {
	Active   bool `yaml:"active"`
	GameOver bool `yaml:"game_over"`
	Started  bool `yaml:"started"`
}

type PlayerState struct {
	HP       float64    `yaml:"hp"`
	Score    int        `yaml:"score"`
	Weapon   string     `yaml:"weapon"`
	Position [3]float64 `yaml:"position,flow"`
	Yaw      float64    `yaml:"yaw"`
	Pitch    float64    `yaml:"pitch"`
	Grounded bool       `yaml:"grounded"`
}

type EnemyState struct {
	Tag       string     `yaml:"tag"`
	Archetype string     `yaml:"archetype"`
	HP        float64    `yaml:"hp"`
	Position  [3]float64 `yaml:"position,flow"`
}

type ShotCounts struct {
	Player    int `yaml:"player"`
	Enemy     int `yaml:"enemy"`
	Particles int `yaml:"particles"`
}

// Snapshot captures the current state.
func (l *Loop) Snapshot() Snapshot {
	w := l.world
	p := w.Player()
	s := w.Session()
	snap := Snapshot{
		Now:   w.Now(),
		Frame: w.Frame(),
		Session: SessionState{
			Active:   s.Active,
			GameOver: s.GameOver,
			Started:  s.Started,
		},
		Player: PlayerState{
			HP:       p.HP,
			Score:    p.Score,
			Weapon:   l.env.Catalog.Weapon(p.Weapon).Name,
			Position: p.Position,
			Yaw:      p.Yaw,
			Pitch:    p.Pitch,
			Grounded: p.Grounded,
		},
		Shots: ShotCounts{
			Player:    w.PlayerProjectiles().Len(),
			Enemy:     w.EnemyProjectiles().Len(),
			Particles: w.Particles().Len(),
		},
		Settings: *w.Settings(),
		Pending:  w.Effects().Len(),
	}
	ecs.Each(w, w.Enemies(), func(_ ecs.Entity, enemy *component.Enemy) {
		snap.Enemies = append(snap.Enemies, EnemyState{
			Tag:       enemy.Tag,
			Archetype: string(enemy.Archetype.ID),
			HP:        enemy.HP,
			Position:  enemy.Position,
		})
	})
	return snap
}

// MarshalSnapshot renders the current state as YAML.
func (l *Loop) MarshalSnapshot() ([]byte, error) {
	data, err := yaml.Marshal(l.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("game: marshal snapshot: %w", err)
	}
	return data, nil
}
