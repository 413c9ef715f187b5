package project

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

const sample = `{
  "name": "demo-app",
  "version": "2.1.0",
  "private": true,
  "dependencies": {"react": "^18.0.0", "lodash": "^4.17.21"},
  "devDependencies": {"vitest": "^1.2.0"}
}`

// TestLoadParsesFields verifies all consumed fields are read.
func TestLoadParsesFields(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sample)

	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if p.Name != "demo-app" || p.Version != "2.1.0" || !p.Private {
		t.Errorf("Load() = %+v", p)
	}
	if len(p.Dependencies) != 2 || len(p.DevDependencies) != 1 {
		t.Errorf("dependency counts = %d/%d, want 2/1", len(p.Dependencies), len(p.DevDependencies))
	}
}

// TestLoadMissingFile verifies a helpful error when package.json is absent.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatal("Load() on empty dir returned nil error")
	}
}

// TestLoadInvalidJSON verifies parse errors are fatal, not swallowed.
func TestLoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "{not json")

	if _, err := Load(dir); err == nil {
		t.Fatal("Load() with invalid JSON returned nil error")
	}
}

// TestExists verifies presence detection.
func TestExists(t *testing.T) {
	dir := t.TempDir()
	if Exists(dir) {
		t.Error("Exists() = true for empty dir")
	}
	writeManifest(t, dir, sample)
	if !Exists(dir) {
		t.Error("Exists() = false after writing package.json")
	}
}

// TestDependencyNames verifies ordering: production deps sorted, then dev
// deps sorted.
func TestDependencyNames(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sample)

	p, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"lodash", "react", "vitest"}
	if got := p.DependencyNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("DependencyNames() = %v, want %v", got, want)
	}
}

// TestIsDevAndSpecOf verifies group membership and version lookup.
func TestIsDevAndSpecOf(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sample)

	p, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsDev("vitest") || p.IsDev("react") {
		t.Error("IsDev() misclassified a dependency")
	}
	if got := p.SpecOf("react"); got != "^18.0.0" {
		t.Errorf("SpecOf(react) = %q", got)
	}
	if got := p.SpecOf("vitest"); got != "^1.2.0" {
		t.Errorf("SpecOf(vitest) = %q", got)
	}
	if got := p.SpecOf("nope"); got != "" {
		t.Errorf("SpecOf(nope) = %q, want empty", got)
	}
}
