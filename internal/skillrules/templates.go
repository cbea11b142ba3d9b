package skillrules

import "github.com/lanternworks/hookctl/internal/analyzer"

// typeTemplates holds the fixed rule emitted for each supported project
// type. The enforcement/priority/keyword sets are part of the on-disk
// contract and must not drift between regenerations.
var typeTemplates = map[analyzer.ProjectType]Rule{
	analyzer.ProjectTypeFrontend: {
		Type:        RuleTypeDomain,
		Enforcement: EnforcementRecommend,
		Priority:    PriorityHigh,
		Description: "Frontend development: components, layout, and styling",
		PromptTriggers: PromptTriggers{
			Keywords: []string{"ui", "component", "frontend", "interface", "design", "layout", "styling"},
			IntentPatterns: []string{
				`(?i)\b(create|build|add|update)\b.*\b(component|page|view|screen)\b`,
				`(?i)\b(style|restyle|theme)\b.*\b(ui|interface|layout)\b`,
			},
		},
	},
	analyzer.ProjectTypeBackend: {
		Type:        RuleTypeDomain,
		Enforcement: EnforcementRecommend,
		Priority:    PriorityHigh,
		Description: "Backend development: APIs, services, and data models",
		PromptTriggers: PromptTriggers{
			Keywords: []string{"api", "backend", "server", "endpoint", "database", "query", "model"},
			IntentPatterns: []string{
				`(?i)\b(create|build|add|expose)\b.*\b(endpoint|route|api|service)\b`,
				`(?i)\b(write|optimize|fix)\b.*\b(query|migration|schema)\b`,
			},
		},
	},
	analyzer.ProjectTypeTesting: {
		Type:        RuleTypeQuality,
		Enforcement: EnforcementSuggest,
		Priority:    PriorityMedium,
		Description: "Testing: unit, integration, and end-to-end coverage",
		PromptTriggers: PromptTriggers{
			Keywords: []string{"test", "testing", "spec", "unit test", "integration test", "e2e"},
			IntentPatterns: []string{
				`(?i)\b(write|add|fix)\b.*\btests?\b`,
				`(?i)\bcoverage\b`,
			},
		},
	},
	analyzer.ProjectTypeDataScience: {
		Type:        RuleTypeDomain,
		Enforcement: EnforcementRecommend,
		Priority:    PriorityHigh,
		Description: "Data science: analysis, visualization, and model training",
		PromptTriggers: PromptTriggers{
			Keywords: []string{"data", "analysis", "visualization", "model", "training", "ml", "ai"},
			IntentPatterns: []string{
				`(?i)\b(analyze|visualize|plot)\b.*\b(data|dataset|results?)\b`,
				`(?i)\b(train|tune|evaluate)\b.*\bmodel\b`,
			},
		},
	},
}

// templateOrder fixes the emission order for supported project types so
// generation is deterministic.
var templateOrder = []analyzer.ProjectType{
	analyzer.ProjectTypeFrontend,
	analyzer.ProjectTypeBackend,
	analyzer.ProjectTypeTesting,
	analyzer.ProjectTypeDataScience,
}
