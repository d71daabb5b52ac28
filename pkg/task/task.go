package task

import (
	"strings"

	"github.com/google/uuid"

	"github.com/eisenkit/eisen/pkg/quadrant"
)

// Task is a single matrix entry. The ID is assigned at creation and never
// changes; an empty Quadrant means the task is planned against a project
// but not yet promoted into the matrix.
type Task struct {
	ID          string            `json:"id"`
	Text        string            `json:"text"`
	Quadrant    quadrant.Quadrant `json:"quadrant,omitempty"`
	Completed   bool              `json:"completed"`
	CreatedAt   Timestamp         `json:"createdAt"`
	CompletedAt *Timestamp        `json:"completedAt,omitempty"`
	DueDate     *Date             `json:"dueDate,omitempty"`
	Subtasks    []Subtask         `json:"subtasks,omitempty"`
	ProjectID   string            `json:"projectId,omitempty"`
}

type Subtask struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

func New(q quadrant.Quadrant, text string) Task {
	return Task{
		ID:        uuid.NewString(),
		Text:      strings.TrimSpace(text),
		Quadrant:  q,
		CreatedAt: Now(),
		Subtasks:  []Subtask{},
	}
}

func NewSubtask(text string) Subtask {
	return Subtask{
		ID:   uuid.NewString(),
		Text: strings.TrimSpace(text),
	}
}

// Clone returns a copy whose subtask slice does not alias the receiver's.
func (t Task) Clone() Task {
	out := t
	if t.CompletedAt != nil {
		ts := *t.CompletedAt
		out.CompletedAt = &ts
	}
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.Subtasks != nil {
		out.Subtasks = append([]Subtask(nil), t.Subtasks...)
	}
	return out
}

// CloneAll deep-copies a collection.
func CloneAll(tasks []Task) []Task {
	if tasks == nil {
		return nil
	}
	out := make([]Task, len(tasks))
	for i, t := range tasks {
		out[i] = t.Clone()
	}
	return out
}

// Find returns the index of the task with the given id, or -1.
func Find(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Updates carries the mutable task fields for a shallow-merge update. Nil
// fields are left untouched.
type Updates struct {
	Text      *string
	Quadrant  *quadrant.Quadrant
	Completed *bool
	DueDate   *Date
	ClearDue  bool
	ProjectID *string
}
