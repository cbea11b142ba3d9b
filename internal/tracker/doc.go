// Package tracker records file edits reported by the hook host and derives
// the tooling commands relevant to the edited area.
//
// # Classification
//
// An edited path is classified by its first segment into a fixed area
// enumeration (backend, frontend, tests, scripts, database), "root" for
// top-level files, and "unknown" otherwise. Matching is case-sensitive.
// Markdown files and build/cache artifacts are rejected before
// classification and produce no records at all.
//
// # Command detection
//
// For a classified area, the area's manifest (pyproject.toml or
// package.json; the project root's for "root") is scanned for marker
// strings, each mapping to a fixed command template parameterized only by
// the resolved directory: ruff yields format and check-with-autofix, pytest
// a test run (with a PYTHONPATH prefix for backend areas inside a uv
// workspace), mypy a type check, black a format only when ruff is absent,
// a [build-system] table a build, and a main.py next to a fastapi/uvicorn
// marker a dev server. Node areas get script runs via the package manager
// the lockfile implies.
//
// # Persistence
//
// Results accumulate in the per-session store (see package session):
// detection is re-run on every event and merged sorted-unique, so tracking
// the same file twice changes nothing.
//
// No failure here surfaces to the hook host; missing files and unmatched
// areas simply yield zero commands.
package tracker
