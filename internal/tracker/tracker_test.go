package tracker

import (
	"path/filepath"
	"testing"

	"github.com/lanternworks/hookctl/internal/hookio"
	"github.com/lanternworks/hookctl/internal/session"
	"github.com/lanternworks/hookctl/internal/testutil"
)

func editEvent(sessionID, filePath string) *hookio.Event {
	return &hookio.Event{
		ToolName:  "Edit",
		ToolInput: hookio.ToolInput{FilePath: filePath},
		SessionID: sessionID,
	}
}

func TestTrack_BackendEdit(t *testing.T) {
	p := testutil.NewProject(t)
	p.WriteFile("backend/pyproject.toml", `[project]
dependencies = ["pytest"]
`)
	p.WriteFile("backend/app/main.py", "app = None\n")

	result, err := Track(p.Paths, editEvent("sess-1", filepath.Join(p.Root, "backend/app/main.py")))
	if err != nil {
		t.Fatal(err)
	}
	if result == nil || !result.Tracked {
		t.Fatal("expected edit to be tracked")
	}
	if result.Area != AreaBackend {
		t.Errorf("expected area backend, got %s", result.Area)
	}
	if result.RelPath != "backend/app/main.py" {
		t.Errorf("expected relative path, got %s", result.RelPath)
	}

	store, err := session.NewStore(p.Paths, "sess-1")
	if err != nil {
		t.Fatal(err)
	}

	edits, err := store.Edits()
	if err != nil {
		t.Fatal(err)
	}
	if len(edits) != 1 || edits[0].Area != "backend" {
		t.Errorf("unexpected edits: %+v", edits)
	}

	areas, err := store.Areas()
	if err != nil {
		t.Fatal(err)
	}
	if len(areas) != 1 || areas[0] != "backend" {
		t.Errorf("unexpected areas: %v", areas)
	}

	cmds, err := store.Commands()
	if err != nil {
		t.Fatal(err)
	}
	want := "backend:pytest:cd " + p.Root + "/backend && uv run pytest"
	if len(cmds) != 1 || cmds[0] != want {
		t.Errorf("expected %q, got %v", want, cmds)
	}
}

func TestTrack_IdempotentAccumulation(t *testing.T) {
	p := testutil.NewProject(t)
	p.WriteFile("backend/pyproject.toml", `[project]
dependencies = ["pytest"]
`)

	event := editEvent("sess-1", filepath.Join(p.Root, "backend/app/main.py"))
	for i := 0; i < 2; i++ {
		if _, err := Track(p.Paths, event); err != nil {
			t.Fatal(err)
		}
	}

	store, err := session.NewStore(p.Paths, "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	cmds, err := store.Commands()
	if err != nil {
		t.Fatal(err)
	}
	if len(cmds) != 1 {
		t.Errorf("expected each command line exactly once, got %v", cmds)
	}
}

func TestTrack_MarkdownIgnored(t *testing.T) {
	p := testutil.NewProject(t)

	result, err := Track(p.Paths, editEvent("sess-1", filepath.Join(p.Root, "report.md")))
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Errorf("markdown edit must produce no records, got %+v", result)
	}

	// No session state should exist at all.
	store, err := session.NewStore(p.Paths, "sess-1")
	if err != nil {
		t.Fatal(err)
	}
	edits, _ := store.Edits()
	if len(edits) != 0 {
		t.Errorf("markdown edit produced records: %+v", edits)
	}
}

func TestTrack_ArtifactIgnored(t *testing.T) {
	p := testutil.NewProject(t)

	result, err := Track(p.Paths, editEvent("sess-1", filepath.Join(p.Root, "backend/__pycache__/m.pyc")))
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Errorf("artifact edit must produce no records, got %+v", result)
	}
}

func TestTrack_NonEditToolIgnored(t *testing.T) {
	p := testutil.NewProject(t)

	event := &hookio.Event{ToolName: "Bash", SessionID: "sess-1"}
	result, err := Track(p.Paths, event)
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Errorf("non-edit tool must produce no records, got %+v", result)
	}
}

func TestTrack_RootFile(t *testing.T) {
	p := testutil.NewProject(t)
	p.WriteFile("pyproject.toml", `[project]
dependencies = ["pytest"]
`)

	result, err := Track(p.Paths, editEvent("sess-1", filepath.Join(p.Root, "setup.py")))
	if err != nil {
		t.Fatal(err)
	}
	if result == nil || result.Area != AreaRoot {
		t.Fatalf("expected root area, got %+v", result)
	}
	if len(result.Commands) != 1 || result.Commands[0].Tool != "pytest" {
		t.Errorf("expected root pytest command, got %+v", result.Commands)
	}
}

func TestTrack_InvalidSessionID(t *testing.T) {
	p := testutil.NewProject(t)

	_, err := Track(p.Paths, editEvent("../evil", filepath.Join(p.Root, "src/a.py")))
	if err == nil {
		t.Error("expected error for traversal session id")
	}
}
