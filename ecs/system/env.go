package system

import (
	"math/rand/v2"

	"github.com/milk9111/fpsarena/prefabs"
)

// Env is what every system shares: the collaborators, the definition tables
// and the random source. Systems keep the pointer, so swapping Catalog after a
// hot reload reaches all of them at once.
type Env struct {
	Visual  VisualLayer
	Audio   AudioLayer
	UI      UILayer
	Catalog *prefabs.Catalog
	Rand    *rand.Rand
}

// NewEnv fills missing collaborators with no-op implementations and seeds a
// PCG source.
func NewEnv(catalog *prefabs.Catalog, seed uint64, visual VisualLayer, audio AudioLayer, ui UILayer) *Env {
	if visual == nil {
		visual = NopVisual{}
	}
	if audio == nil {
		audio = NopAudio{}
	}
	if ui == nil {
		ui = NopUI{}
	}
	return &Env{
		Visual:  visual,
		Audio:   audio,
		UI:      ui,
		Catalog: catalog,
		Rand:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (e *Env) combat() *prefabs.CombatSpec {
	return &e.Catalog.Player.Combat
}
