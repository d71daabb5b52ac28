package project

import (
	"strings"

	"github.com/google/uuid"

	"github.com/eisenkit/eisen/pkg/task"
)

// Status is the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// Project groups planned tasks. Tasks point back at a project by ID only;
// deleting a project cascades at the dispatch layer, so nothing here holds
// live task references.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	CreatedAt   task.Timestamp  `json:"createdAt"`
	Status      Status          `json:"status"`
	CompletedAt *task.Timestamp `json:"completedAt,omitempty"`
}

func New(name, description string) Project {
	return Project{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
		CreatedAt:   task.Now(),
		Status:      StatusActive,
	}
}

func (p Project) Clone() Project {
	out := p
	if p.CompletedAt != nil {
		ts := *p.CompletedAt
		out.CompletedAt = &ts
	}
	return out
}

func CloneAll(projects []Project) []Project {
	if projects == nil {
		return nil
	}
	out := make([]Project, len(projects))
	for i, p := range projects {
		out[i] = p.Clone()
	}
	return out
}

// Find looks a project up by id. Lookup only; a missing project is not an
// error because task project references are weak.
func Find(projects []Project, id string) (Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Updates carries mutable project fields for a shallow-merge update.
type Updates struct {
	Name        *string
	Description *string
	Status      *Status
}
