package analyzer

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lanternworks/hookctl/internal/logging"
)

// Every reader in this file is best-effort: a missing or malformed manifest
// contributes nothing, and the failure is only visible at debug level.
// Partial project metadata must never abort analysis.

// packageJSON is the subset of package.json we care about.
type packageJSON struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// parsePackageJSON extracts dependency names from package.json content.
func parsePackageJSON(data []byte) []string {
	var pkg packageJSON
	if err := json.Unmarshal(data, &pkg); err != nil {
		logging.Debug("package.json unparseable", "error", err)
		return nil
	}

	deps := make([]string, 0, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		deps = append(deps, name)
	}
	for name := range pkg.DevDependencies {
		deps = append(deps, name)
	}
	return deps
}

// pyProject is the subset of pyproject.toml we care about.
type pyProject struct {
	Project struct {
		Dependencies []string `toml:"dependencies"`
	} `toml:"project"`
	Tool struct {
		Poetry struct {
			Dependencies    map[string]toml.Primitive `toml:"dependencies"`
			DevDependencies map[string]toml.Primitive `toml:"dev-dependencies"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// pyDepsArrayRegex recovers the PEP 621 dependencies array from pyproject
// content that fails full TOML parsing.
var pyDepsArrayRegex = regexp.MustCompile(`(?s)dependencies\s*=\s*\[(.*?)\]`)

// pyDepEntryRegex pulls quoted entries out of the recovered array body.
var pyDepEntryRegex = regexp.MustCompile(`["']([^"']+)["']`)

// parsePyProject extracts dependency names from pyproject.toml content.
// It prefers a real TOML parse (PEP 621 project.dependencies plus poetry
// sections) and falls back to regex extraction when the file is malformed.
func parsePyProject(data []byte) []string {
	var py pyProject
	if _, err := toml.Decode(string(data), &py); err == nil {
		var deps []string
		for _, spec := range py.Project.Dependencies {
			if name := stripVersionSpecifier(spec); name != "" {
				deps = append(deps, name)
			}
		}
		for name := range py.Tool.Poetry.Dependencies {
			if name != "python" {
				deps = append(deps, name)
			}
		}
		for name := range py.Tool.Poetry.DevDependencies {
			deps = append(deps, name)
		}
		if len(deps) > 0 {
			return deps
		}
	} else {
		logging.Debug("pyproject.toml unparseable, falling back to regex", "error", err)
	}

	m := pyDepsArrayRegex.FindSubmatch(data)
	if m == nil {
		return nil
	}

	var deps []string
	for _, entry := range pyDepEntryRegex.FindAllSubmatch(m[1], -1) {
		if name := stripVersionSpecifier(string(entry[1])); name != "" {
			deps = append(deps, name)
		}
	}
	return deps
}

// parseRequirements extracts dependency names from requirements.txt content:
// one dependency per line, comment lines skipped.
func parseRequirements(data []byte) []string {
	var deps []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if name := stripVersionSpecifier(line); name != "" {
			deps = append(deps, name)
		}
	}
	return deps
}

// stripVersionSpecifier cuts a dependency spec at the first version
// operator character, so "pandas>=2.0" and "flask~=3.0" both yield the
// bare package name.
func stripVersionSpecifier(spec string) string {
	if i := strings.IndexAny(spec, ">=<~"); i >= 0 {
		spec = spec[:i]
	}
	// Extras markers like "uvicorn[standard]" are not part of the name.
	if i := strings.Index(spec, "["); i >= 0 {
		spec = spec[:i]
	}
	return strings.TrimSpace(spec)
}
