// Package project reads the parts of a package.json the toolkit needs:
// the project's identity and its declared dependencies.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

const manifestName = "package.json"

// PackageJSON is the subset of package.json pmx consumes.
type PackageJSON struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Private         bool              `json:"private"`
}

// Path returns the package.json path for the given project directory.
func Path(dir string) string {
	return filepath.Join(dir, manifestName)
}

// Load reads and parses <dir>/package.json.
func Load(dir string) (*PackageJSON, error) {
	data, err := os.ReadFile(Path(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no %s found in %s", manifestName, dir)
		}
		return nil, fmt.Errorf("read %s: %w", manifestName, err)
	}

	var p PackageJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse %s: %w", manifestName, err)
	}
	return &p, nil
}

// Exists reports whether dir contains a package.json.
func Exists(dir string) bool {
	_, err := os.Stat(Path(dir))
	return err == nil
}

// DependencyNames returns the names of all declared dependencies,
// production first, each group sorted.
func (p *PackageJSON) DependencyNames() []string {
	names := sortedKeys(p.Dependencies)
	return append(names, sortedKeys(p.DevDependencies)...)
}

// IsDev reports whether name is declared under devDependencies.
func (p *PackageJSON) IsDev(name string) bool {
	_, ok := p.DevDependencies[name]
	return ok
}

// SpecOf returns the declared version range for name, or "".
func (p *PackageJSON) SpecOf(name string) string {
	if v, ok := p.Dependencies[name]; ok {
		return v
	}
	return p.DevDependencies[name]
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
