// Package testutil provides test fixtures for hookctl tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lanternworks/hookctl/internal/config"
)

// Project is a throwaway project directory for tests.
type Project struct {
	T     *testing.T
	Root  string
	Paths *config.Paths
}

// NewProject creates an empty project under t.TempDir().
func NewProject(t *testing.T) *Project {
	t.Helper()

	root := t.TempDir()
	paths, err := config.NewPaths(root)
	if err != nil {
		t.Fatalf("failed to build paths: %v", err)
	}

	return &Project{T: t, Root: root, Paths: paths}
}

// WriteFile writes a file relative to the project root, creating parent
// directories as needed.
func (p *Project) WriteFile(rel, content string) {
	p.T.Helper()

	path := filepath.Join(p.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		p.T.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		p.T.Fatalf("failed to write %s: %v", rel, err)
	}
}

// Mkdir creates a directory relative to the project root.
func (p *Project) Mkdir(rel string) {
	p.T.Helper()

	if err := os.MkdirAll(filepath.Join(p.Root, rel), 0755); err != nil {
		p.T.Fatalf("failed to create directory %s: %v", rel, err)
	}
}
