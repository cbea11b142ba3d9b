// Package skillrules generates and persists the skill-rules document.
//
// The document maps skill names to activation rules (keywords and intent
// regexes with enforcement and priority levels) and is the only artifact
// hookctl persists across sessions:
//
//	{root}/.claude/skills/skill-rules.json
//
// Lifecycle: Load at session start, NeedsUpdate against a fresh analysis,
// Generate + Save when an update should proceed. The staleness check is
// add-only — a document is stale only when it is missing a name, never
// for carrying extra ones, so hand-added rules survive until the next
// regeneration replaces the document wholesale.
//
// Whether a regeneration proceeds is the caller's decision: first-time
// setup writes unattended, while overwriting an existing stale document
// requires explicit confirmation.
package skillrules
