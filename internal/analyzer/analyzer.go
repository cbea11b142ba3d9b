package analyzer

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/lanternworks/hookctl/internal/config"
	"github.com/lanternworks/hookctl/internal/logging"
)

// readmeExcerptLimit bounds how much of the README is kept as context.
const readmeExcerptLimit = 2000

// depCacheDir is excluded from the top-level directory listing.
const depCacheDir = "node_modules"

// Analysis holds everything detected about a project. All slices are
// sorted, deduplicated sets.
type Analysis struct {
	Dependencies   []string
	Directories    []string
	ReadmeExcerpt  string
	ExistingSkills []string
	Technologies   []string
	ProjectTypes   []ProjectType
}

// HasProjectType reports whether the analysis detected the given type.
func (a *Analysis) HasProjectType(pt ProjectType) bool {
	for _, t := range a.ProjectTypes {
		if t == pt {
			return true
		}
	}
	return false
}

// Analyzer scans a project directory for dependency manifests, layout,
// and existing skill definitions.
type Analyzer struct {
	paths     *config.Paths
	overrides *config.Overrides
}

// New creates an analyzer for the given project layout.
func New(paths *config.Paths) *Analyzer {
	return &Analyzer{
		paths:     paths,
		overrides: config.LoadOverrides(paths.OverridesPath),
	}
}

// Analyze scans the project and derives technologies and project types.
// Every read is independently best-effort; missing or malformed inputs
// contribute nothing and never fail the scan.
func (a *Analyzer) Analyze() *Analysis {
	logging.Debug("analyzing project", "path", a.paths.ProjectRoot)

	deps := make(map[string]bool)
	for _, name := range parsePackageJSON(a.readFile("package.json")) {
		deps[name] = true
	}
	for _, name := range parsePyProject(a.readFile("pyproject.toml")) {
		deps[name] = true
	}
	for _, name := range parseRequirements(a.readFile("requirements.txt")) {
		deps[name] = true
	}

	analysis := &Analysis{
		Dependencies:   sortedKeys(deps),
		Directories:    a.listDirectories(),
		ReadmeExcerpt:  a.readmeExcerpt(),
		ExistingSkills: a.listExistingSkills(),
	}

	tags := detectTechnologies(analysis.Dependencies, a.overrides.Technologies)
	analysis.Technologies = sortedKeys(tags)

	types := inferProjectTypes(analysis.Directories, tags)
	analysis.ProjectTypes = sortedTypes(types)

	logging.Debug("project analysis complete",
		"dependencies", len(analysis.Dependencies),
		"technologies", analysis.Technologies,
		"projectTypes", analysis.ProjectTypes,
	)

	return analysis
}

func (a *Analyzer) readFile(name string) []byte {
	data, err := os.ReadFile(filepath.Join(a.paths.ProjectRoot, name))
	if err != nil {
		return nil
	}
	return data
}

// listDirectories returns the immediate subdirectories of the project root,
// excluding hidden directories and the dependency cache.
func (a *Analyzer) listDirectories() []string {
	entries, err := os.ReadDir(a.paths.ProjectRoot)
	if err != nil {
		logging.Debug("project root unreadable", "error", err)
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || name == depCacheDir {
			continue
		}
		dirs = append(dirs, name)
	}
	sort.Strings(dirs)
	return dirs
}

// readmeExcerpt returns up to the first 2000 characters of the README.
func (a *Analyzer) readmeExcerpt() string {
	for _, name := range []string{"README.md", "README"} {
		data := a.readFile(name)
		if data == nil {
			continue
		}
		return truncateRunes(string(data), readmeExcerptLimit)
	}
	return ""
}

// truncateRunes cuts s to at most limit characters, never mid-rune.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// listExistingSkills returns the names of skill definitions already present
// in the skills directory, excluding the skill-rules document itself.
func (a *Analyzer) listExistingSkills() []string {
	entries, err := os.ReadDir(a.paths.SkillsDir)
	if err != nil {
		return nil
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		name := entry.Name()
		switch {
		case strings.HasSuffix(name, ".md"):
			name = strings.TrimSuffix(name, ".md")
		case strings.HasSuffix(name, ".json"):
			name = strings.TrimSuffix(name, ".json")
		default:
			// Skill directories count too: a directory per skill with its
			// own SKILL.md is the other layout the assistant supports.
			if !entry.IsDir() {
				continue
			}
		}
		if name == "skill-rules" {
			continue
		}
		seen[name] = true
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedTypes(set map[ProjectType]bool) []ProjectType {
	types := make([]ProjectType, 0, len(set))
	for t := range set {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
