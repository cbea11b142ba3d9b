package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lanternworks/hookctl/internal/logging"
)

// Overrides extends the built-in detection catalogues from
// {ProjectRoot}/.claude/hookctl.yaml. All fields are optional.
type Overrides struct {
	// Technologies maps extra dependency keywords to technology tags,
	// merged over the built-in table.
	Technologies map[string][]string `yaml:"technologies"`

	// ArtifactGlobs lists extra glob patterns whose matches the tracker
	// ignores, in addition to the built-in cache/build markers.
	ArtifactGlobs []string `yaml:"artifactGlobs"`
}

// LoadOverrides reads the overrides file. A missing or malformed file yields
// empty overrides; analysis never fails because of a bad overrides file.
func LoadOverrides(path string) *Overrides {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Debug("overrides file unreadable", "path", path, "error", err)
		}
		return &Overrides{}
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		logging.Debug("overrides file malformed", "path", path, "error", err)
		return &Overrides{}
	}

	return &o
}
