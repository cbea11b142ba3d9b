package tracker

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/lanternworks/hookctl/internal/logging"
)

// Area is the coarse project region an edited file belongs to.
type Area string

const (
	AreaBackend  Area = "backend"
	AreaFrontend Area = "frontend"
	AreaTests    Area = "tests"
	AreaScripts  Area = "scripts"
	AreaDatabase Area = "database"
	AreaRoot     Area = "root"
	AreaUnknown  Area = "unknown"
)

// areaByDirectory maps a path's first segment to its area. Matching is
// case-sensitive: "Backend/" is not "backend/".
var areaByDirectory = map[string]Area{
	"backend":    AreaBackend,
	"server":     AreaBackend,
	"api":        AreaBackend,
	"src":        AreaBackend,
	"app":        AreaBackend,
	"frontend":   AreaFrontend,
	"client":     AreaFrontend,
	"web":        AreaFrontend,
	"ui":         AreaFrontend,
	"tests":      AreaTests,
	"test":       AreaTests,
	"scripts":    AreaScripts,
	"tools":      AreaScripts,
	"bin":        AreaScripts,
	"database":   AreaDatabase,
	"migrations": AreaDatabase,
	"alembic":    AreaDatabase,
}

// artifactGlobs match paths the tracker never records: caches and build
// output. User overrides can extend the list.
var artifactGlobs = []string{
	"**/__pycache__/**",
	"**/node_modules/**",
	"**/.git/**",
	"**/dist/**",
	"**/build/**",
	"**/.venv/**",
	"**/venv/**",
}

// ShouldTrack reports whether edits to the given relative path are worth
// recording. Markdown files and build/cache artifacts are rejected before
// classification ever runs.
func ShouldTrack(relPath string, extraGlobs []string) bool {
	ext := strings.ToLower(filepath.Ext(relPath))
	if ext == ".md" || ext == ".markdown" {
		return false
	}

	slashed := filepath.ToSlash(relPath)
	for _, pattern := range append(append([]string{}, artifactGlobs...), extraGlobs...) {
		matched, err := doublestar.Match(pattern, slashed)
		if err != nil {
			logging.Debug("invalid artifact glob", "pattern", pattern, "error", err)
			continue
		}
		if matched {
			return false
		}
	}
	return true
}

// Classify maps a path relative to the project root to its area. A path
// with no directory separator is "root"; an unrecognized first segment is
// "unknown".
func Classify(relPath string) Area {
	slashed := filepath.ToSlash(relPath)
	idx := strings.Index(slashed, "/")
	if idx < 0 {
		return AreaRoot
	}

	if area, ok := areaByDirectory[slashed[:idx]]; ok {
		return area
	}
	return AreaUnknown
}
