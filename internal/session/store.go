// Package session persists per-session tracker state.
//
// Each hook-host session gets a directory under the project's session
// cache keyed by its validated session id, holding three small files:
//
//	edited-files.log   append-only "timestamp:filePath:area" lines
//	affected-areas.txt one area name per line, deduplicated
//	commands.txt       "area:tool:command" lines, kept sorted-unique
//
// Appends are not guarded by a lock; overlapping hook invocations can
// interleave, but the sort-unique rewrite of commands.txt is idempotent
// once both writers finish, so the final state converges.
package session

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/lanternworks/hookctl/internal/config"
	"github.com/lanternworks/hookctl/internal/logging"
)

const (
	editedFilesName   = "edited-files.log"
	affectedAreasName = "affected-areas.txt"
	commandsName      = "commands.txt"
)

// Edit is one recorded file modification.
type Edit struct {
	Timestamp time.Time
	FilePath  string
	Area      string
}

// Store reads and writes the state files for one session.
type Store struct {
	dir string
}

// NewStore opens (creating if needed) the state directory for a session.
// The id is validated before being used as a directory name.
func NewStore(paths *config.Paths, sessionID string) (*Store, error) {
	dir, err := paths.SessionDir(sessionID)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the session state directory.
func (s *Store) Dir() string {
	return s.dir
}

// RecordEdit appends an edited-file record to the session log.
func (s *Store) RecordEdit(e Edit) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	line := fmt.Sprintf("%s:%s:%s\n", e.Timestamp.Format(time.RFC3339), e.FilePath, e.Area)
	return s.appendLine(editedFilesName, line)
}

// RecordArea adds an area to the affected-areas file if not already present.
func (s *Store) RecordArea(area string) error {
	existing, err := s.readLines(affectedAreasName)
	if err != nil {
		return err
	}
	for _, line := range existing {
		if line == area {
			return nil
		}
	}
	return s.appendLine(affectedAreasName, area+"\n")
}

// MergeCommands merges new command lines into the commands file, rewriting
// it sorted and deduplicated. Running the same merge twice yields the same
// final file.
func (s *Store) MergeCommands(lines []string) error {
	existing, err := s.readLines(commandsName)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, line := range existing {
		seen[line] = true
	}
	for _, line := range lines {
		if line != "" {
			seen[line] = true
		}
	}

	merged := make([]string, 0, len(seen))
	for line := range seen {
		merged = append(merged, line)
	}
	sort.Strings(merged)

	var sb strings.Builder
	for _, line := range merged {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	path := filepath.Join(s.dir, commandsName)
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write commands file: %w", err)
	}
	return nil
}

// Edits reads the edited-file records in order. Malformed lines are skipped.
func (s *Store) Edits() ([]Edit, error) {
	lines, err := s.readLines(editedFilesName)
	if err != nil {
		return nil, err
	}

	var edits []Edit
	for _, line := range lines {
		edit, ok := parseEditLine(line)
		if !ok {
			logging.Debug("skipping malformed edit record", "line", line)
			continue
		}
		edits = append(edits, edit)
	}
	return edits, nil
}

// parseEditLine splits "timestamp:filePath:area". The timestamp is RFC3339
// (which contains colons), so the timestamp boundary is found by parse
// attempts over colon-delimited prefixes; the area is the suffix after the
// last colon.
func parseEditLine(line string) (Edit, bool) {
	last := strings.LastIndex(line, ":")
	if last < 0 {
		return Edit{}, false
	}
	area := line[last+1:]
	rest := line[:last]

	for i := 0; i < len(rest); i++ {
		if rest[i] != ':' {
			continue
		}
		ts, err := time.Parse(time.RFC3339, rest[:i])
		if err != nil {
			continue
		}
		path := rest[i+1:]
		if path == "" || area == "" {
			return Edit{}, false
		}
		return Edit{Timestamp: ts, FilePath: path, Area: area}, true
	}
	return Edit{}, false
}

// Areas reads the affected-areas list.
func (s *Store) Areas() ([]string, error) {
	return s.readLines(affectedAreasName)
}

// Commands reads the merged command lines.
func (s *Store) Commands() ([]string, error) {
	return s.readLines(commandsName)
}

func (s *Store) appendLine(name, line string) error {
	path := filepath.Join(s.dir, name)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("failed to append to %s: %w", name, err)
	}
	return nil
}

func (s *Store) readLines(name string) ([]string, error) {
	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return lines, fmt.Errorf("error reading %s: %w", name, err)
	}
	return lines, nil
}
