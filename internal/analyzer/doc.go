// Package analyzer provides project analysis for skill-rule generation.
//
// The Analyzer examines a project root to collect:
//   - Dependency names from package.json, pyproject.toml, and requirements.txt
//   - Top-level directory names (hidden and cache directories excluded)
//   - A README excerpt for context
//   - Existing skill definitions under .claude/skills
//
// From the dependency set it detects technology tags via a fixed
// substring-keyword catalog ("react-dom" hits the "react" row and yields
// React, Frontend, UI), and from directories plus tags it infers coarse
// project types (Frontend, Backend, Testing, Data Science, Documentation).
//
// Usage:
//
//	paths, _ := config.NewPaths("/path/to/project")
//	analysis := analyzer.New(paths).Analyze()
//
// Every input read is best-effort: a missing or malformed manifest yields
// an empty contribution and is logged at debug level. Analysis itself
// never fails.
package analyzer
