package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var assetsFS embed.FS

// Dir is the on-disk override directory for sound tables.
var Dir = "assets"

// LoadFile reads an asset, preferring a copy in Dir over the embedded one.
func LoadFile(name string) ([]byte, error) {
	clean := filepath.ToSlash(filepath.Clean(name))
	if data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return assetsFS.ReadFile(clean)
}

// LoadSoundTable reads and validates sounds.yaml.
func LoadSoundTable() (SoundTable, error) {
	data, err := LoadFile("sounds.yaml")
	if err != nil {
		return SoundTable{}, fmt.Errorf("assets: read sounds.yaml: %w", err)
	}
	var table SoundTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return SoundTable{}, fmt.Errorf("assets: parse sounds.yaml: %w", err)
	}
	if err := table.Validate(); err != nil {
		return SoundTable{}, err
	}
	return table, nil
}
