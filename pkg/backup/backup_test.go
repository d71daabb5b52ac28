package backup

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eisenkit/eisen/pkg/archive"
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/task"
)

func TestExportImportRoundTrip(t *testing.T) {
	active := []task.Task{task.New(quadrant.Q1, "active")}
	archivedTasks := []archive.Task{archive.NewTask(task.New(quadrant.Q2, "archived"))}
	projects := []project.Project{project.New("Project", "desc")}
	archivedProjects := []archive.Project{archive.NewProject(project.New("Old project", ""))}

	doc := Export(active, archivedTasks, projects, archivedProjects)
	if doc.Version != Version {
		t.Fatalf("expected version %q, got %q", Version, doc.Version)
	}
	if doc.ExportedAt.IsZero() {
		t.Fatal("expected exportedAt stamped")
	}

	payload, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	got, err := Import(payload)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(got.ActiveTasks) != 1 || got.ActiveTasks[0].ID != active[0].ID {
		t.Fatal("active tasks did not survive the round trip")
	}
	if len(got.ArchivedTasks) != 1 || got.ArchivedTasks[0].ArchivedAt.IsZero() {
		t.Fatal("archived tasks did not survive the round trip")
	}
	if len(got.Projects) != 1 || got.Projects[0].Name != "Project" {
		t.Fatal("projects did not survive the round trip")
	}
	if len(got.ArchivedProjects) != 1 {
		t.Fatal("archived projects did not survive the round trip")
	}
}

func TestExportNormalizesNilCollections(t *testing.T) {
	doc := Export(nil, nil, nil, nil)
	payload, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	// Nil slices would serialize as null and break older readers.
	if strings.Contains(string(payload), "null") {
		t.Fatalf("export contains null collections:\n%s", payload)
	}
}

func TestImportLegacyActiveTasksShape(t *testing.T) {
	payload := `{
	  "activeTasks": [{"id": "t1", "text": "legacy", "quadrant": "q1", "completed": false, "createdAt": "2024-01-02T03:04:05Z"}],
	  "archivedTasks": []
	}`

	doc, err := Import([]byte(payload))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(doc.ActiveTasks) != 1 || doc.ActiveTasks[0].ID != "t1" {
		t.Fatal("expected legacy active task imported")
	}
	if doc.Projects == nil || len(doc.Projects) != 0 {
		t.Fatal("expected empty, non-nil projects")
	}
	if doc.Version != Version {
		t.Fatalf("missing version should default to %q, got %q", Version, doc.Version)
	}
}

func TestImportOldestTasksShape(t *testing.T) {
	payload := `{"tasks": [{"id": "t1", "text": "ancient", "quadrant": "q4", "completed": true, "createdAt": "2023-06-01T00:00:00Z"}]}`

	doc, err := Import([]byte(payload))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if len(doc.ActiveTasks) != 1 || doc.ActiveTasks[0].Text != "ancient" {
		t.Fatal("expected oldest-shape task imported")
	}
	if len(doc.ArchivedTasks) != 0 || len(doc.Projects) != 0 {
		t.Fatal("oldest shape has no archive or projects")
	}
}

func TestImportMalformed(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"not json", `not json at all`},
		{"empty object", `{}`},
		{"wrong type", `{"activeTasks": "not-an-array"}`},
		{"null tasks", `{"activeTasks": null, "archivedTasks": []}`},
		{"legacy wrong type", `{"tasks": 42}`},
		{"legacy null tasks", `{"tasks": null}`},
		{"array root", `[1, 2, 3]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Import([]byte(tc.payload))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestImportKeepsDeclaredVersion(t *testing.T) {
	payload := `{"version": "1.1", "activeTasks": []}`
	doc, err := Import([]byte(payload))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if doc.Version != "1.1" {
		t.Fatalf("expected declared version kept, got %q", doc.Version)
	}
}

func TestMarshalOmitsEmptyArchivedProjects(t *testing.T) {
	doc := Export(nil, nil, nil, nil)
	payload, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if _, ok := raw["archivedProjects"]; ok {
		t.Fatal("empty archivedProjects should be omitted for older readers")
	}
	for _, key := range []string{"version", "exportedAt", "projects", "activeTasks", "archivedTasks"} {
		if _, ok := raw[key]; !ok {
			t.Fatalf("expected key %q in export", key)
		}
	}
}

func TestDefaultFilename(t *testing.T) {
	now := time.Date(2026, time.March, 9, 15, 0, 0, 0, time.UTC)
	if got := DefaultFilename(now); got != "eisen-backup-2026-03-09.json" {
		t.Fatalf("unexpected filename %q", got)
	}
}
