// Package backup implements the versioned export/import document. Import
// is tolerant of the two legacy document shapes but rejects structurally
// corrupt payloads outright, so a caller can tell "corrupt file" from
// "valid but empty".
package backup

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/eisenkit/eisen/pkg/archive"
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/task"
)

// Version is the current export document version.
const Version = "1.2"

// ErrMalformed marks an import payload that cannot be trusted. It is
// distinct from validation no-ops: the caller should warn about
// corruption rather than silently wiping data.
var ErrMalformed = errors.New("backup: malformed document")

// Document is the on-disk export shape. ArchivedProjects was added after
// 1.2 shipped; it stays optional so older exports import cleanly.
type Document struct {
	Version          string            `json:"version"`
	ExportedAt       task.Timestamp    `json:"exportedAt"`
	Projects         []project.Project `json:"projects"`
	ActiveTasks      []task.Task       `json:"activeTasks"`
	ArchivedTasks    []archive.Task    `json:"archivedTasks"`
	ArchivedProjects []archive.Project `json:"archivedProjects,omitempty"`
}

// Export builds the document for the given collections.
func Export(tasks []task.Task, archivedTasks []archive.Task, projects []project.Project, archivedProjects []archive.Project) Document {
	return Document{
		Version:          Version,
		ExportedAt:       task.Now(),
		Projects:         emptyIfNil(projects),
		ActiveTasks:      emptyIfNil(tasks),
		ArchivedTasks:    emptyIfNil(archivedTasks),
		ArchivedProjects: emptyIfNil(archivedProjects),
	}
}

// Marshal renders the document as indented JSON.
func Marshal(doc Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// DefaultFilename names an export file for the given day.
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("eisen-backup-%s.json", now.Format("2006-01-02"))
}

// Import parses an export document. Accepted shapes, newest first:
//
//   - {version, exportedAt, projects, activeTasks, archivedTasks[, archivedProjects]}
//   - {activeTasks, archivedTasks}  (pre-projects)
//   - {tasks}                       (oldest, tasks only)
//
// A payload whose primary task array is missing or not an array returns
// ErrMalformed.
func Import(data []byte) (*Document, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	doc := &Document{
		Projects:         []project.Project{},
		ActiveTasks:      []task.Task{},
		ArchivedTasks:    []archive.Task{},
		ArchivedProjects: []archive.Project{},
	}

	switch {
	case raw["activeTasks"] != nil:
		if err := json.Unmarshal(raw["activeTasks"], &doc.ActiveTasks); err != nil {
			return nil, fmt.Errorf("%w: activeTasks: %v", ErrMalformed, err)
		}
		// A JSON null decodes to a nil slice without error. The primary
		// task field has to be an actual array or the document is corrupt.
		if doc.ActiveTasks == nil {
			return nil, fmt.Errorf("%w: activeTasks is not an array", ErrMalformed)
		}
		if raw["archivedTasks"] != nil {
			if err := json.Unmarshal(raw["archivedTasks"], &doc.ArchivedTasks); err != nil {
				return nil, fmt.Errorf("%w: archivedTasks: %v", ErrMalformed, err)
			}
		}
		if raw["projects"] != nil {
			if err := json.Unmarshal(raw["projects"], &doc.Projects); err != nil {
				return nil, fmt.Errorf("%w: projects: %v", ErrMalformed, err)
			}
		}
		if raw["archivedProjects"] != nil {
			if err := json.Unmarshal(raw["archivedProjects"], &doc.ArchivedProjects); err != nil {
				return nil, fmt.Errorf("%w: archivedProjects: %v", ErrMalformed, err)
			}
		}
	case raw["tasks"] != nil:
		// Oldest shape: a bare task list, no archive and no projects.
		if err := json.Unmarshal(raw["tasks"], &doc.ActiveTasks); err != nil {
			return nil, fmt.Errorf("%w: tasks: %v", ErrMalformed, err)
		}
		if doc.ActiveTasks == nil {
			return nil, fmt.Errorf("%w: tasks is not an array", ErrMalformed)
		}
	default:
		return nil, fmt.Errorf("%w: no task collection found", ErrMalformed)
	}

	if raw["version"] != nil {
		_ = json.Unmarshal(raw["version"], &doc.Version)
	}
	if doc.Version == "" {
		doc.Version = Version
	}

	if doc.ArchivedTasks == nil {
		doc.ArchivedTasks = []archive.Task{}
	}
	if doc.Projects == nil {
		doc.Projects = []project.Project{}
	}
	if doc.ArchivedProjects == nil {
		doc.ArchivedProjects = []archive.Project{}
	}
	return doc, nil
}

type collections interface {
	task.Task | archive.Task | project.Project | archive.Project
}

func emptyIfNil[T collections](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
