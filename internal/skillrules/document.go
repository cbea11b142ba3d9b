package skillrules

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lanternworks/hookctl/internal/logging"
)

// DocumentVersion is the format version written by this generator.
const DocumentVersion = "1.0.0"

// Rule kinds.
const (
	RuleTypeDomain  = "domain"
	RuleTypeQuality = "quality"
	RuleTypeCustom  = "custom"
)

// Enforcement levels.
const (
	EnforcementCritical  = "critical"
	EnforcementRecommend = "recommend"
	EnforcementSuggest   = "suggest"
)

// Priority levels.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// PromptTriggers describes when a skill should activate: keyword hits in
// the prompt, or intent regexes matched against it.
type PromptTriggers struct {
	Keywords       []string `json:"keywords"`
	IntentPatterns []string `json:"intentPatterns"`
}

// Rule is a named skill activation record. Identity is the map key it is
// stored under; rules are never mutated in place, only replaced wholesale
// when the document is regenerated.
type Rule struct {
	Type           string         `json:"type"`
	Enforcement    string         `json:"enforcement"`
	Priority       string         `json:"priority"`
	Description    string         `json:"description"`
	PromptTriggers PromptTriggers `json:"promptTriggers"`
}

// Document is the persisted skill-rules artifact.
type Document struct {
	Version string          `json:"version"`
	Skills  map[string]Rule `json:"skills"`
}

// Load reads a document from disk. A missing or malformed file returns nil:
// callers treat both as "no document", which makes the staleness check
// report an update. Parse failures never surface as hard errors.
func Load(path string) *Document {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Debug("skill-rules document unparseable", "path", path, "error", err)
		return nil
	}
	if doc.Skills == nil {
		logging.Debug("skill-rules document missing skills map", "path", path)
		return nil
	}

	return &doc
}

// Save writes the document as indented JSON, creating parent directories
// as needed.
func (d *Document) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create skills directory: %w", err)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal skill rules: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write skill rules: %w", err)
	}

	return nil
}

// Names returns the sorted skill names in the document.
func (d *Document) Names() []string {
	return sortedRuleNames(d.Skills)
}
