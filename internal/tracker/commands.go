package tracker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/lanternworks/hookctl/internal/config"
	"github.com/lanternworks/hookctl/internal/logging"
)

// Command is one tool invocation detected for an area.
type Command struct {
	Area  Area
	Tool  string
	Shell string
}

// Line renders the command in the session file format.
func (c Command) Line() string {
	return fmt.Sprintf("%s:%s:%s", c.Area, c.Tool, c.Shell)
}

// DetectCommands inspects the area's manifest and assembles the shell
// commands that would invoke each detected tool. Missing directories,
// unreadable manifests, and unknown areas all yield zero commands; nothing
// here surfaces an error to the caller.
func DetectCommands(paths *config.Paths, area Area) []Command {
	if area == AreaUnknown {
		return nil
	}

	dirName := string(area)
	if area == AreaRoot {
		dirName = ""
	}
	dir, err := paths.AreaDir(dirName)
	if err != nil {
		logging.Debug("area directory rejected", "area", area, "error", err)
		return nil
	}

	var cmds []Command
	cmds = append(cmds, detectPythonCommands(paths, area, dir)...)
	cmds = append(cmds, detectNodeCommands(area, dir)...)
	return dedupeCommands(cmds)
}

// detectPythonCommands scans the area's pyproject.toml for known tool
// markers. Commands run through uv so the area's own environment is used.
func detectPythonCommands(paths *config.Paths, area Area, dir string) []Command {
	manifest := readTextFile(filepath.Join(dir, "pyproject.toml"))
	if manifest == "" {
		return nil
	}

	cd := "cd " + shellquote.Join(dir) + " && "
	var cmds []Command

	hasRuff := strings.Contains(manifest, "ruff")
	if hasRuff {
		cmds = append(cmds,
			Command{Area: area, Tool: "ruff", Shell: cd + "uv run ruff format ."},
			Command{Area: area, Tool: "ruff", Shell: cd + "uv run ruff check --fix ."},
		)
	}

	if strings.Contains(manifest, "pytest") {
		shell := cd + "uv run pytest"
		// A backend area inside a uv workspace needs the workspace root on
		// PYTHONPATH for cross-package imports; the root manifest is the
		// signal that such a workspace exists.
		if area == AreaBackend && readTextFile(filepath.Join(paths.ProjectRoot, "pyproject.toml")) != "" {
			shell = cd + "PYTHONPATH=" + shellquote.Join(paths.ProjectRoot) + " uv run pytest"
		}
		cmds = append(cmds, Command{Area: area, Tool: "pytest", Shell: shell})
	}

	if strings.Contains(manifest, "mypy") {
		cmds = append(cmds, Command{Area: area, Tool: "mypy", Shell: cd + "uv run mypy ."})
	}

	// black is the fallback formatter; ruff supersedes it when both appear.
	if strings.Contains(manifest, "black") && !hasRuff {
		cmds = append(cmds, Command{Area: area, Tool: "black", Shell: cd + "uv run black ."})
	}

	if strings.Contains(manifest, "[build-system]") {
		cmds = append(cmds, Command{Area: area, Tool: "build", Shell: cd + "uv build"})
	}

	if fileExists(filepath.Join(dir, "main.py")) &&
		(strings.Contains(manifest, "fastapi") || strings.Contains(manifest, "uvicorn")) {
		cmds = append(cmds, Command{Area: area, Tool: "uvicorn", Shell: cd + "uv run uvicorn main:app --reload"})
	}

	return cmds
}

// detectNodeCommands scans the area's package.json for runnable scripts.
// The package manager is picked from the lockfile present.
func detectNodeCommands(area Area, dir string) []Command {
	manifest := readTextFile(filepath.Join(dir, "package.json"))
	if manifest == "" {
		return nil
	}

	runner := "npm"
	switch {
	case fileExists(filepath.Join(dir, "pnpm-lock.yaml")):
		runner = "pnpm"
	case fileExists(filepath.Join(dir, "yarn.lock")):
		runner = "yarn"
	case fileExists(filepath.Join(dir, "bun.lockb")):
		runner = "bun"
	}

	cd := "cd " + shellquote.Join(dir) + " && "
	var cmds []Command

	if strings.Contains(manifest, `"test"`) {
		cmds = append(cmds, Command{Area: area, Tool: runner, Shell: cd + runner + " run test"})
	}
	if strings.Contains(manifest, `"build"`) {
		cmds = append(cmds, Command{Area: area, Tool: runner, Shell: cd + runner + " run build"})
	}
	if strings.Contains(manifest, `"dev"`) {
		cmds = append(cmds, Command{Area: area, Tool: runner, Shell: cd + runner + " run dev"})
	}

	return cmds
}

func dedupeCommands(cmds []Command) []Command {
	seen := make(map[string]bool)
	var out []Command
	for _, c := range cmds {
		line := c.Line()
		if seen[line] {
			continue
		}
		seen[line] = true
		out = append(out, c)
	}
	return out
}

func readTextFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
