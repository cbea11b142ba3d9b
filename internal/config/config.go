package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	securejoin "github.com/cyphar/filepath-securejoin"
)

const (
	// ClaudeDirName is the assistant configuration directory inside a project.
	ClaudeDirName = ".claude"

	// SkillRulesFileName is the persisted skill-rules document.
	SkillRulesFileName = "skill-rules.json"

	// OverridesFileName is the optional user overrides file.
	OverridesFileName = "hookctl.yaml"
)

// sessionIDRegex validates session identifiers supplied by the hook host.
// IDs must start with a letter or digit, followed by letters, digits,
// underscores, or hyphens. Maximum length is 128 characters.
var sessionIDRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]{0,127}$`)

// ValidateSessionID checks if a session id is safe to use as a directory name.
// Valid ids:
//   - Start with a letter or digit
//   - Contain only letters, digits, underscores, or hyphens
//   - Are between 1 and 128 characters long
//   - Do not contain path separators or special characters
func ValidateSessionID(id string) error {
	if id == "" {
		return fmt.Errorf("session id cannot be empty")
	}

	if !sessionIDRegex.MatchString(id) {
		return fmt.Errorf("invalid session id %q: must start with a letter or digit, contain only letters, digits, underscores, or hyphens, and be at most 128 characters", id)
	}

	return nil
}

// Paths holds the resolved filesystem layout for one project.
type Paths struct {
	// ProjectRoot is the directory being analyzed/tracked.
	ProjectRoot string

	// ClaudeDir is {ProjectRoot}/.claude.
	ClaudeDir string

	// SkillsDir holds existing skill definitions ({ClaudeDir}/skills).
	SkillsDir string

	// SkillRulesPath is the persisted skill-rules document
	// ({SkillsDir}/skill-rules.json).
	SkillRulesPath string

	// SessionsDir holds per-session tracker state ({ClaudeDir}/cache/sessions).
	SessionsDir string

	// OverridesPath is the optional hookctl.yaml overrides file.
	OverridesPath string
}

// NewPaths builds the path layout for a project root.
// The root is made absolute so assembled shell commands survive a cd.
func NewPaths(projectRoot string) (*Paths, error) {
	abs, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid project root: %w", err)
	}

	claudeDir := filepath.Join(abs, ClaudeDirName)
	skillsDir := filepath.Join(claudeDir, "skills")

	return &Paths{
		ProjectRoot:    abs,
		ClaudeDir:      claudeDir,
		SkillsDir:      skillsDir,
		SkillRulesPath: filepath.Join(skillsDir, SkillRulesFileName),
		SessionsDir:    filepath.Join(claudeDir, "cache", "sessions"),
		OverridesPath:  filepath.Join(claudeDir, OverridesFileName),
	}, nil
}

// DefaultPaths returns the layout rooted at the current working directory.
func DefaultPaths() *Paths {
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	p, err := NewPaths(cwd)
	if err != nil {
		// Getwd already gave us something usable; fall back verbatim.
		return &Paths{ProjectRoot: cwd}
	}
	return p
}

// SessionDir returns the state directory for a session id, validating the id
// and refusing joins that would escape the sessions directory.
func (p *Paths) SessionDir(sessionID string) (string, error) {
	if err := ValidateSessionID(sessionID); err != nil {
		return "", err
	}
	return securejoin.SecureJoin(p.SessionsDir, sessionID)
}

// AreaDir resolves a project subdirectory by name, refusing joins that would
// escape the project root. An empty name resolves to the root itself.
func (p *Paths) AreaDir(name string) (string, error) {
	if name == "" {
		return p.ProjectRoot, nil
	}
	return securejoin.SecureJoin(p.ProjectRoot, name)
}
