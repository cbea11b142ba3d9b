package tracker

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/lanternworks/hookctl/internal/config"
	"github.com/lanternworks/hookctl/internal/hookio"
	"github.com/lanternworks/hookctl/internal/logging"
	"github.com/lanternworks/hookctl/internal/session"
)

// Result describes what one tracked event produced.
type Result struct {
	Tracked  bool
	Area     Area
	RelPath  string
	Commands []Command
}

// Track processes one file-edit event: classifies the file, records it in
// the session cache, and merges the area's detected commands. A nil result
// with nil error means the event was not trackable (wrong tool, markdown,
// artifact path).
func Track(paths *config.Paths, event *hookio.Event) (*Result, error) {
	if !event.IsFileEdit() {
		logging.Debug("ignoring non-edit tool", "tool", event.ToolName)
		return nil, nil
	}

	relPath := relativize(paths.ProjectRoot, event.ToolInput.FilePath)

	overrides := config.LoadOverrides(paths.OverridesPath)
	if !ShouldTrack(relPath, overrides.ArtifactGlobs) {
		logging.Debug("ignoring untracked path", "path", relPath)
		return nil, nil
	}

	area := Classify(relPath)

	store, err := session.NewStore(paths, event.SessionID)
	if err != nil {
		return nil, err
	}

	if err := store.RecordEdit(session.Edit{
		Timestamp: time.Now(),
		FilePath:  relPath,
		Area:      string(area),
	}); err != nil {
		return nil, err
	}
	if err := store.RecordArea(string(area)); err != nil {
		return nil, err
	}

	cmds := DetectCommands(paths, area)
	lines := make([]string, 0, len(cmds))
	for _, c := range cmds {
		lines = append(lines, c.Line())
	}
	if err := store.MergeCommands(lines); err != nil {
		return nil, err
	}

	logging.Debug("tracked edit", "path", relPath, "area", area, "commands", len(cmds))

	return &Result{
		Tracked:  true,
		Area:     area,
		RelPath:  relPath,
		Commands: cmds,
	}, nil
}

// relativize makes an absolute file path relative to the project root.
// Paths outside the root (or already relative) are returned as given.
func relativize(root, path string) string {
	if !filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}
