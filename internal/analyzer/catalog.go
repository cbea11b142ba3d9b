package analyzer

import "strings"

// ProjectType is a coarse classification of what a project contains.
// A project usually has more than one.
type ProjectType string

const (
	ProjectTypeFrontend      ProjectType = "Frontend"
	ProjectTypeBackend       ProjectType = "Backend"
	ProjectTypeTesting       ProjectType = "Testing"
	ProjectTypeDataScience   ProjectType = "Data Science"
	ProjectTypeDocumentation ProjectType = "Documentation"
)

// technologyCatalog maps dependency-name keywords to technology tags.
// Matching is substring-based over the lower-cased dependency name, so
// "react-dom" hits the "react" row. A single dependency may hit several rows.
var technologyCatalog = map[string][]string{
	"react":        {"React", "Frontend", "UI"},
	"vue":          {"Vue", "Frontend", "UI"},
	"angular":      {"Angular", "Frontend", "UI"},
	"svelte":       {"Svelte", "Frontend", "UI"},
	"next":         {"Next.js", "React", "Frontend"},
	"tailwind":     {"Tailwind", "UI", "Frontend"},
	"express":      {"Express", "Backend", "API"},
	"fastify":      {"Fastify", "Backend", "API"},
	"fastapi":      {"FastAPI", "Backend", "API", "Python"},
	"flask":        {"Flask", "Backend", "API", "Python"},
	"django":       {"Django", "Backend", "Python"},
	"sqlalchemy":   {"SQLAlchemy", "Backend", "Database"},
	"prisma":       {"Prisma", "Backend", "Database"},
	"pandas":       {"Pandas", "Data Science", "Python"},
	"numpy":        {"NumPy", "Data Science", "Python"},
	"scikit-learn": {"ML", "Data Science", "Python"},
	"tensorflow":   {"TensorFlow", "ML", "Data Science"},
	"torch":        {"PyTorch", "ML", "Data Science"},
	"jest":         {"Jest", "Testing"},
	"vitest":       {"Vitest", "Testing"},
	"pytest":       {"Pytest", "Testing"},
	"cypress":      {"Cypress", "Testing", "E2E"},
	"playwright":   {"Playwright", "Testing", "E2E"},
	"typescript":   {"TypeScript"},
}

// directoryCatalog maps directory-name keywords to project types.
// Matching is substring-based over the lower-cased directory name, so
// "backend-service" hits the "backend" row.
var directoryCatalog = map[string]ProjectType{
	"backend":       ProjectTypeBackend,
	"server":        ProjectTypeBackend,
	"api":           ProjectTypeBackend,
	"frontend":      ProjectTypeFrontend,
	"client":        ProjectTypeFrontend,
	"web":           ProjectTypeFrontend,
	"test":          ProjectTypeTesting,
	"notebooks":     ProjectTypeDataScience,
	"data":          ProjectTypeDataScience,
	"docs":          ProjectTypeDocumentation,
	"documentation": ProjectTypeDocumentation,
}

// uiTags are technology tags whose presence implies a Frontend project.
var uiTags = map[string]bool{
	"React":    true,
	"Vue":      true,
	"Angular":  true,
	"Svelte":   true,
	"UI":       true,
	"Frontend": true,
}

// dataTags are technology tags whose presence implies a Data Science project.
var dataTags = map[string]bool{
	"ML":           true,
	"Data Science": true,
	"Pandas":       true,
	"NumPy":        true,
	"TensorFlow":   true,
	"PyTorch":      true,
}

// detectTechnologies returns the technology tags triggered by a dependency
// set. extra rows (from user overrides) are consulted after the built-in
// catalog; an unknown dependency simply contributes nothing.
func detectTechnologies(deps []string, extra map[string][]string) map[string]bool {
	tags := make(map[string]bool)
	for _, dep := range deps {
		lower := strings.ToLower(dep)
		for keyword, mapped := range technologyCatalog {
			if strings.Contains(lower, keyword) {
				for _, tag := range mapped {
					tags[tag] = true
				}
			}
		}
		for keyword, mapped := range extra {
			if strings.Contains(lower, strings.ToLower(keyword)) {
				for _, tag := range mapped {
					tags[tag] = true
				}
			}
		}
	}
	return tags
}

// inferProjectTypes derives project types from directory names and
// technology tags. Both sources contribute independently.
func inferProjectTypes(dirs []string, tags map[string]bool) map[ProjectType]bool {
	types := make(map[ProjectType]bool)

	for _, dir := range dirs {
		lower := strings.ToLower(dir)
		for keyword, pt := range directoryCatalog {
			if strings.Contains(lower, keyword) {
				types[pt] = true
			}
		}
	}

	for tag := range tags {
		if uiTags[tag] {
			types[ProjectTypeFrontend] = true
		}
		if dataTags[tag] {
			types[ProjectTypeDataScience] = true
		}
	}
	if tags["Backend"] || tags["API"] {
		types[ProjectTypeBackend] = true
	}
	if tags["Testing"] {
		types[ProjectTypeTesting] = true
	}

	return types
}
