package hookio

import (
	"strings"
	"testing"
)

func TestReadEvent(t *testing.T) {
	input := `{
		"tool_name": "Edit",
		"tool_input": {"file_path": "backend/app/main.py"},
		"session_id": "sess-42"
	}`

	event, err := ReadEvent(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	if event.ToolName != "Edit" {
		t.Errorf("expected tool Edit, got %s", event.ToolName)
	}
	if event.ToolInput.FilePath != "backend/app/main.py" {
		t.Errorf("unexpected file path: %s", event.ToolInput.FilePath)
	}
	if event.SessionID != "sess-42" {
		t.Errorf("unexpected session id: %s", event.SessionID)
	}
	if !event.IsFileEdit() {
		t.Error("Edit with a file path should be a file edit")
	}
}

func TestReadEvent_Malformed(t *testing.T) {
	if _, err := ReadEvent(strings.NewReader("{not json")); err == nil {
		t.Error("expected error for malformed event")
	}
	if _, err := ReadEvent(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

func TestIsFileEdit(t *testing.T) {
	tests := []struct {
		tool     string
		filePath string
		want     bool
	}{
		{"Write", "a.py", true},
		{"Edit", "a.py", true},
		{"MultiEdit", "a.py", true},
		{"NotebookEdit", "a.ipynb", true},
		{"Bash", "", false},
		{"Read", "a.py", false},
		{"Edit", "", false},
	}

	for _, tt := range tests {
		e := &Event{ToolName: tt.tool, ToolInput: ToolInput{FilePath: tt.filePath}}
		if got := e.IsFileEdit(); got != tt.want {
			t.Errorf("IsFileEdit(%s, %q) = %v, want %v", tt.tool, tt.filePath, got, tt.want)
		}
	}
}
