package prefabs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Default tables and director scripts ship inside the binary.
//
//go:embed *.yaml scripts/*.tengo
var defaults embed.FS

// Dir is the on-disk override directory. A file there with the same relative
// path shadows the embedded copy, which is what hot reload edits.
var Dir = "prefabs"

// Load reads a definition table, e.g. "weapons.yaml" or "prefabs/weapons.yaml".
func Load(name string) ([]byte, error) {
	return read(relative(name))
}

// LoadScript reads a director script. Bare names resolve under scripts/.
func LoadScript(name string) ([]byte, error) {
	rel := relative(name)
	if rel != "" && !strings.HasPrefix(rel, "scripts/") {
		rel = path.Join("scripts", rel)
	}
	return read(rel)
}

// Overridden reports whether name is shadowed by a file under Dir.
func Overridden(name string) bool {
	rel := relative(name)
	if rel == "" {
		return false
	}
	info, err := os.Stat(filepath.Join(Dir, filepath.FromSlash(rel)))
	return err == nil && !info.IsDir()
}

func read(rel string) ([]byte, error) {
	if rel == "" {
		return nil, errors.New("prefabs: empty path")
	}
	data, err := os.ReadFile(filepath.Join(Dir, filepath.FromSlash(rel)))
	switch {
	case err == nil:
		return data, nil
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("prefabs: read override %s: %w", rel, err)
	}
	return defaults.ReadFile(rel)
}

// relative strips a leading prefabs/ so callers may pass repo-relative paths.
func relative(name string) string {
	if name == "" {
		return ""
	}
	s := path.Clean(filepath.ToSlash(name))
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		s = after
	}
	return s
}
