package skillrules

import (
	"sort"
	"strings"

	"github.com/lanternworks/hookctl/internal/analyzer"
	"github.com/lanternworks/hookctl/internal/logging"
)

// Slug converts a project type or skill name to its document key:
// lower-cased, spaces replaced with hyphens.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// expectedNames returns the slugified names the document should cover for
// an analysis: every supported detected project type plus every existing
// skill definition.
func expectedNames(analysis *analyzer.Analysis) []string {
	seen := make(map[string]bool)
	var names []string

	for _, pt := range templateOrder {
		if _, ok := typeTemplates[pt]; ok && analysis.HasProjectType(pt) {
			name := Slug(string(pt))
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	for _, skill := range analysis.ExistingSkills {
		name := Slug(skill)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	return names
}

// NeedsUpdate reports whether the document is stale for the analysis.
// A nil document (missing or unparseable on disk) always needs an update.
// Otherwise the document is stale iff some expected name is absent from
// its key set. The check is one-directional: extra keys never make a
// document stale, so rules are only ever added, never deleted.
func NeedsUpdate(analysis *analyzer.Analysis, doc *Document) bool {
	if doc == nil {
		return true
	}

	for _, name := range expectedNames(analysis) {
		if _, ok := doc.Skills[name]; !ok {
			logging.Debug("skill rules stale", "missing", name)
			return true
		}
	}
	return false
}

// MissingNames returns the expected names absent from the document, for
// reporting. A nil document is missing everything.
func MissingNames(analysis *analyzer.Analysis, doc *Document) []string {
	var missing []string
	for _, name := range expectedNames(analysis) {
		if doc == nil {
			missing = append(missing, name)
			continue
		}
		if _, ok := doc.Skills[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Generate builds a fresh document for the analysis. Each supported
// detected project type gets its fixed template; each existing skill not
// already covered gets a generic custom placeholder whose single keyword
// is the name with hyphens restored to spaces.
func Generate(analysis *analyzer.Analysis) *Document {
	doc := &Document{
		Version: DocumentVersion,
		Skills:  make(map[string]Rule),
	}

	for _, pt := range templateOrder {
		tmpl, ok := typeTemplates[pt]
		if !ok || !analysis.HasProjectType(pt) {
			continue
		}
		doc.Skills[Slug(string(pt))] = tmpl
	}

	for _, skill := range analysis.ExistingSkills {
		name := Slug(skill)
		if _, ok := doc.Skills[name]; ok {
			continue
		}
		doc.Skills[name] = Rule{
			Type:        RuleTypeCustom,
			Enforcement: EnforcementSuggest,
			Priority:    PriorityMedium,
			Description: "Custom skill: " + skill,
			PromptTriggers: PromptTriggers{
				Keywords:       []string{strings.ReplaceAll(name, "-", " ")},
				IntentPatterns: []string{},
			},
		}
	}

	logging.Debug("generated skill rules", "skills", doc.Names())
	return doc
}

func sortedRuleNames(skills map[string]Rule) []string {
	names := make([]string, 0, len(skills))
	for name := range skills {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
