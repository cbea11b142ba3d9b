// Package config provides the filesystem layout and user overrides for hookctl.
//
// # Paths
//
// All hookctl state lives under the project's .claude directory:
//
//	{root}/.claude/skills/                 existing skill definitions
//	{root}/.claude/skills/skill-rules.json persisted skill-rules document
//	{root}/.claude/cache/sessions/{id}/    per-session tracker state
//	{root}/.claude/hookctl.yaml            optional user overrides
//
// Session ids come from the hook host and are validated before being used
// as directory names; joins are performed with filepath-securejoin so a
// hostile id or area name can never escape the project tree.
//
// # Overrides
//
// hookctl.yaml can extend the built-in detection catalogues:
//
//	technologies:
//	  htmx: [Frontend, UI]
//	artifactGlobs:
//	  - "**/.venv/**"
package config
