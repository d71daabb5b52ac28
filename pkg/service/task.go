package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/archive"
	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/store"
	"github.com/eisenkit/eisen/pkg/task"
)

// TaskService transforms the active task collection. Mutating calls
// return a fresh collection and write it through to persistence; the
// input slice is never modified.
type TaskService struct {
	Persistence store.Persistence
	Archive     *ArchiveService
	Log         *zap.Logger
}

// LoadTasks reads the active task document. found is false when the
// document has never been written, which lets the caller decide whether
// to seed sample data.
func (s *TaskService) LoadTasks() (tasks []task.Task, found bool, err error) {
	tasks = []task.Task{}
	if s.Persistence == nil {
		return tasks, false, nil
	}
	found, err = s.Persistence.Load(store.KeyTasks, &tasks)
	if err != nil {
		return []task.Task{}, false, err
	}
	return tasks, found, nil
}

// AddTask appends a new task. Blank text (after trimming) is a validation
// rejection: the input collection comes back unchanged alongside
// ErrEmptyText and nothing is persisted.
func (s *TaskService) AddTask(tasks []task.Task, q quadrant.Quadrant, text string, due *task.Date, projectID string) ([]task.Task, error) {
	if strings.TrimSpace(text) == "" {
		return tasks, ErrEmptyText
	}
	t := task.New(q, text)
	if due != nil {
		d := *due
		t.DueDate = &d
	}
	t.ProjectID = projectID

	updated := append(task.CloneAll(tasks), t)
	s.persistTasks(updated)
	return updated, nil
}

// UpdateTask shallow-merges updates into the matching task. A completed
// transition stamps or clears CompletedAt at the moment of the change.
// Unknown ids are a no-op.
func (s *TaskService) UpdateTask(tasks []task.Task, id string, u task.Updates) []task.Task {
	idx := task.Find(tasks, id)
	if idx < 0 {
		return tasks
	}

	updated := task.CloneAll(tasks)
	t := &updated[idx]

	if u.Text != nil && strings.TrimSpace(*u.Text) != "" {
		t.Text = strings.TrimSpace(*u.Text)
	}
	if u.Quadrant != nil && u.Quadrant.Valid() {
		// Promotion only: a placed task never goes back to planned.
		t.Quadrant = *u.Quadrant
	}
	if u.DueDate != nil {
		d := *u.DueDate
		t.DueDate = &d
	}
	if u.ClearDue {
		t.DueDate = nil
	}
	if u.ProjectID != nil {
		t.ProjectID = *u.ProjectID
	}
	if u.Completed != nil && *u.Completed != t.Completed {
		t.Completed = *u.Completed
		if t.Completed {
			ts := task.Now()
			t.CompletedAt = &ts
		} else {
			t.CompletedAt = nil
		}
	}

	s.persistTasks(updated)
	return updated
}

// DeleteTask removes the matching task; absent ids are a no-op, so the
// call is idempotent.
func (s *TaskService) DeleteTask(tasks []task.Task, id string) []task.Task {
	idx := task.Find(tasks, id)
	if idx < 0 {
		return tasks
	}
	updated := make([]task.Task, 0, len(tasks)-1)
	for _, t := range tasks {
		if t.ID != id {
			updated = append(updated, t.Clone())
		}
	}
	s.persistTasks(updated)
	return updated
}

// ArchiveTask moves one task from the active collection into the archive
// and returns both resulting collections. The snapshot and timestamp are
// the archive service's business; this side removes the task from the
// active list. An unknown id returns the input and a nil archive.
func (s *TaskService) ArchiveTask(tasks []task.Task, id string) ([]task.Task, []archive.Task) {
	idx := task.Find(tasks, id)
	if idx < 0 {
		return tasks, nil
	}
	archived := s.Archive.ArchiveTask(tasks[idx])
	return s.DeleteTask(tasks, id), archived
}

// DeleteTasksByProjectID cascade-deletes every task referencing the
// project, so no active task is left with a dangling project id.
func (s *TaskService) DeleteTasksByProjectID(tasks []task.Task, projectID string) []task.Task {
	if projectID == "" {
		return tasks
	}
	updated := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.ProjectID != projectID {
			updated = append(updated, t.Clone())
		}
	}
	if len(updated) == len(tasks) {
		return tasks
	}
	s.persistTasks(updated)
	return updated
}

// AddSubtask appends a subtask to the parent task and additionally
// returns the created subtask so a caller can render an incremental
// append instead of a full redraw.
func (s *TaskService) AddSubtask(tasks []task.Task, taskID, text string) ([]task.Task, *task.Subtask, error) {
	if strings.TrimSpace(text) == "" {
		return tasks, nil, ErrEmptyText
	}
	idx := task.Find(tasks, taskID)
	if idx < 0 {
		return tasks, nil, nil
	}
	sub := task.NewSubtask(text)
	updated := task.CloneAll(tasks)
	updated[idx].Subtasks = append(updated[idx].Subtasks, sub)
	s.persistTasks(updated)
	return updated, &sub, nil
}

// SubtaskUpdates carries the mutable subtask fields.
type SubtaskUpdates struct {
	Text      *string
	Completed *bool
}

func (s *TaskService) UpdateSubtask(tasks []task.Task, taskID, subtaskID string, u SubtaskUpdates) []task.Task {
	idx := task.Find(tasks, taskID)
	if idx < 0 {
		return tasks
	}
	sub := findSubtask(tasks[idx].Subtasks, subtaskID)
	if sub < 0 {
		return tasks
	}
	updated := task.CloneAll(tasks)
	st := &updated[idx].Subtasks[sub]
	if u.Text != nil && strings.TrimSpace(*u.Text) != "" {
		st.Text = strings.TrimSpace(*u.Text)
	}
	if u.Completed != nil {
		st.Completed = *u.Completed
	}
	s.persistTasks(updated)
	return updated
}

func (s *TaskService) DeleteSubtask(tasks []task.Task, taskID, subtaskID string) []task.Task {
	idx := task.Find(tasks, taskID)
	if idx < 0 {
		return tasks
	}
	if findSubtask(tasks[idx].Subtasks, subtaskID) < 0 {
		return tasks
	}
	updated := task.CloneAll(tasks)
	kept := make([]task.Subtask, 0, len(updated[idx].Subtasks)-1)
	for _, st := range updated[idx].Subtasks {
		if st.ID != subtaskID {
			kept = append(kept, st)
		}
	}
	updated[idx].Subtasks = kept
	s.persistTasks(updated)
	return updated
}

// SampleTasks seeds a brand-new database so the first render is not an
// empty matrix.
func (s *TaskService) SampleTasks() []task.Task {
	samples := []task.Task{
		task.New(quadrant.Q1, "Finish the report for tomorrow's meeting"),
		task.New(quadrant.Q2, "Plan next year's vacation"),
		task.New(quadrant.Q3, "Reply to non-urgent email"),
	}
	s.persistTasks(samples)
	return samples
}

// ReplaceTasks swaps the whole document, used by import.
func (s *TaskService) ReplaceTasks(tasks []task.Task) []task.Task {
	updated := task.CloneAll(tasks)
	if updated == nil {
		updated = []task.Task{}
	}
	s.persistTasks(updated)
	return updated
}

func (s *TaskService) persistTasks(tasks []task.Task) {
	persist(s.Persistence, s.Log, store.KeyTasks, tasks)
}

func findSubtask(subs []task.Subtask, id string) int {
	for i, st := range subs {
		if st.ID == id {
			return i
		}
	}
	return -1
}
