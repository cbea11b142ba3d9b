package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lanternworks/hookctl/internal/skillrules"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()

	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func resetSkillsFlags() {
	skillsYes = false
	skillsCheck = false
	skillsHook = false
}

func TestSkillsSetup_FirstRunWritesUnattended(t *testing.T) {
	resetSkillsFlags()
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.0"}}`)

	if err := skillsSetup([]string{root}); err != nil {
		t.Fatal(err)
	}

	doc := skillrules.Load(filepath.Join(root, ".claude", "skills", "skill-rules.json"))
	if doc == nil {
		t.Fatal("expected skill-rules.json to be written on first run")
	}
	if _, ok := doc.Skills["frontend"]; !ok {
		t.Errorf("expected frontend rule, got %v", doc.Names())
	}
}

func TestSkillsSetup_FreshDocumentUntouched(t *testing.T) {
	resetSkillsFlags()
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.0"}}`)

	if err := skillsSetup([]string{root}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(root, ".claude", "skills", "skill-rules.json")
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	// Second run sees a fresh document and must not rewrite it.
	if err := skillsSetup([]string{root}); err != nil {
		t.Fatal(err)
	}
	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("fresh document must not be rewritten")
	}
}

func TestSkillsSetup_CheckDoesNotWrite(t *testing.T) {
	resetSkillsFlags()
	skillsCheck = true
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.0"}}`)
	// A stale document: empty skills map.
	writeFile(t, root, ".claude/skills/skill-rules.json", `{"version": "1.0.0", "skills": {}}`)

	if err := skillsSetup([]string{root}); err != nil {
		t.Fatal(err)
	}

	doc := skillrules.Load(filepath.Join(root, ".claude", "skills", "skill-rules.json"))
	if doc == nil || len(doc.Skills) != 0 {
		t.Error("--check must not modify the document")
	}
}

func TestSkillsSetup_CheckFirstRunDoesNotWrite(t *testing.T) {
	resetSkillsFlags()
	skillsCheck = true
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.0"}}`)

	if err := skillsSetup([]string{root}); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(root, ".claude", "skills", "skill-rules.json")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("--check must not write the document on a first run")
	}
}

func TestSkillsSetup_HookFirstRunWritesUnattended(t *testing.T) {
	resetSkillsFlags()
	skillsHook = true
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.0"}}`)

	if err := skillsSetup([]string{root}); err != nil {
		t.Fatal(err)
	}

	doc := skillrules.Load(filepath.Join(root, ".claude", "skills", "skill-rules.json"))
	if doc == nil {
		t.Fatal("hook mode still performs first-time setup")
	}
}

func TestSkillsSetup_HookStaleOnlyReports(t *testing.T) {
	resetSkillsFlags()
	skillsHook = true
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.0"}}`)
	writeFile(t, root, ".claude/skills/skill-rules.json", `{"version": "1.0.0", "skills": {}}`)

	if err := skillsSetup([]string{root}); err != nil {
		t.Fatal(err)
	}

	doc := skillrules.Load(filepath.Join(root, ".claude", "skills", "skill-rules.json"))
	if doc == nil || len(doc.Skills) != 0 {
		t.Error("hook mode must not overwrite an existing document")
	}
}

func TestSkillsSetup_YesOverwritesStale(t *testing.T) {
	resetSkillsFlags()
	skillsYes = true
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.0"}}`)
	writeFile(t, root, ".claude/skills/skill-rules.json", `{"version": "1.0.0", "skills": {}}`)

	if err := skillsSetup([]string{root}); err != nil {
		t.Fatal(err)
	}

	doc := skillrules.Load(filepath.Join(root, ".claude", "skills", "skill-rules.json"))
	if doc == nil {
		t.Fatal("expected document after --yes regeneration")
	}
	if _, ok := doc.Skills["frontend"]; !ok {
		t.Errorf("expected frontend rule after regeneration, got %v", doc.Names())
	}
}

func TestSkillsSetup_MalformedDocumentTreatedAsFirstRun(t *testing.T) {
	resetSkillsFlags()
	root := t.TempDir()
	writeFile(t, root, "package.json", `{"dependencies": {"react": "^18.0"}}`)
	writeFile(t, root, ".claude/skills/skill-rules.json", "{corrupt")

	// A document that fails to parse counts as absent, so setup rewrites
	// it without prompting.
	if err := skillsSetup([]string{root}); err != nil {
		t.Fatal(err)
	}

	doc := skillrules.Load(filepath.Join(root, ".claude", "skills", "skill-rules.json"))
	if doc == nil {
		t.Fatal("expected regenerated document over a corrupt one")
	}
}
