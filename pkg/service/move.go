package service

import (
	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/task"
)

// MoveRequest is a drag-and-drop gesture already resolved to ids by the
// presentation layer. TargetID may be empty when the drop landed on a
// quadrant rather than on a sibling task.
type MoveRequest struct {
	DraggedID   string
	TargetID    string
	NewQuadrant quadrant.Quadrant
}

// MoveTask produces the new total order of the collection for a move
// gesture. The collection is one flat list whose relative order encodes
// the render order inside each quadrant's filtered view, so reinsertion
// happens against the flat list regardless of quadrant boundaries:
//
//  1. an unknown DraggedID returns the input unchanged;
//  2. the dragged task is removed and its quadrant set to NewQuadrant;
//  3. a TargetID still present after removal means "insert immediately
//     before that task";
//  4. otherwise the dragged task is appended at the end.
//
// Dropping a task onto itself falls out of step 3: the target was just
// removed, so the insert degenerates to an append. Single pass, O(n).
func (s *TaskService) MoveTask(tasks []task.Task, req MoveRequest) []task.Task {
	from := task.Find(tasks, req.DraggedID)
	if from < 0 {
		return tasks
	}

	dragged := tasks[from].Clone()
	dragged.Quadrant = req.NewQuadrant

	remaining := make([]task.Task, 0, len(tasks))
	for i, t := range tasks {
		if i != from {
			remaining = append(remaining, t.Clone())
		}
	}

	insertAt := len(remaining)
	if req.TargetID != "" {
		if at := task.Find(remaining, req.TargetID); at >= 0 {
			insertAt = at
		}
	}

	updated := make([]task.Task, 0, len(tasks))
	updated = append(updated, remaining[:insertAt]...)
	updated = append(updated, dragged)
	updated = append(updated, remaining[insertAt:]...)

	s.persistTasks(updated)
	return updated
}
