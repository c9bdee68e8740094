package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/fpsarena/ecs/component"
	"github.com/milk9111/fpsarena/prefabs"
)

// Director runs a tengo script that rescales archetype spawn weights. The
// script sees `score`, `elapsed` (seconds) and `weights` (id -> weight) and
// leaves the adjusted map in `weights`.
type Director struct {
	path     string
	compiled *tengo.Compiled
}

// LoadDirector compiles the named script from the prefab scripts.
func LoadDirector(path string) (*Director, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("director: empty script path")
	}
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("director: load %s: %w", path, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	if err := declare(script, "score", 0.0); err != nil {
		return nil, err
	}
	if err := declare(script, "elapsed", 0.0); err != nil {
		return nil, err
	}
	if err := declare(script, "weights", map[string]any{}); err != nil {
		return nil, err
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("director: compile %s: %w", path, err)
	}
	return &Director{path: path, compiled: compiled}, nil
}

// declare adds a script global the director sets before every run.
func declare(script *tengo.Script, name string, value any) error {
	if err := script.Add(name, value); err != nil {
		return fmt.Errorf("director: declare %s: %w", name, err)
	}
	return nil
}

func (d *Director) Path() string {
	if d == nil {
		return ""
	}
	return d.path
}

// Weights returns the script's adjusted weights, one per archetype, in the
// same order. Entries the script drops or makes negative fall back to zero.
func (d *Director) Weights(archetypes []*component.Archetype, score int, elapsed float64) ([]float64, error) {
	if d == nil || d.compiled == nil {
		return nil, fmt.Errorf("director: not loaded")
	}

	in := make(map[string]any, len(archetypes))
	for _, a := range archetypes {
		in[string(a.ID)] = a.SpawnWeight
	}
	if err := d.compiled.Set("score", float64(score)); err != nil {
		return nil, err
	}
	if err := d.compiled.Set("elapsed", elapsed); err != nil {
		return nil, err
	}
	if err := d.compiled.Set("weights", in); err != nil {
		return nil, err
	}
	if err := d.compiled.Run(); err != nil {
		return nil, fmt.Errorf("director: run %s: %w", d.path, err)
	}

	out := d.compiled.Get("weights").Map()
	weights := make([]float64, len(archetypes))
	for i, a := range archetypes {
		weights[i] = numberValue(out[string(a.ID)])
	}
	return weights, nil
}

func numberValue(v any) float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case int64:
		f = float64(n)
	case int:
		f = float64(n)
	}
	if f < 0 {
		return 0
	}
	return f
}
