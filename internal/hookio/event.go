// Package hookio decodes events delivered by the assistant hook host.
//
// The host writes a single JSON object to the hook's stdin. Only the
// fields hookctl consumes are modeled; the full transport contract is
// owned by the host.
package hookio

import (
	"encoding/json"
	"io"

	"github.com/lanternworks/hookctl/internal/errors"
)

// Event is one PostToolUse notification from the hook host.
type Event struct {
	ToolName  string    `json:"tool_name"`
	ToolInput ToolInput `json:"tool_input"`
	SessionID string    `json:"session_id"`
}

// ToolInput carries the tool parameters we care about.
type ToolInput struct {
	FilePath string `json:"file_path"`
}

// fileEditTools are the tool names whose invocations modify a file.
var fileEditTools = map[string]bool{
	"Write":        true,
	"Edit":         true,
	"MultiEdit":    true,
	"NotebookEdit": true,
}

// ReadEvent decodes one event from r.
func ReadEvent(r io.Reader) (*Event, error) {
	var event Event
	if err := json.NewDecoder(r).Decode(&event); err != nil {
		return nil, errors.EventError("failed to decode hook event", err)
	}
	return &event, nil
}

// IsFileEdit reports whether the event represents a file modification worth
// tracking. Events from other tools are ignored without error.
func (e *Event) IsFileEdit() bool {
	return fileEditTools[e.ToolName] && e.ToolInput.FilePath != ""
}
