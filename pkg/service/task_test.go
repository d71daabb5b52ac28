package service

import (
	"errors"
	"testing"

	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/store"
	"github.com/eisenkit/eisen/pkg/task"
)

func newTaskService(p store.Persistence) *TaskService {
	return &TaskService{Persistence: p, Archive: &ArchiveService{Persistence: p}}
}

func TestAddTask(t *testing.T) {
	p := newMemoryPersistence()
	svc := newTaskService(p)

	tasks, err := svc.AddTask(nil, quadrant.Q1, "write the report", nil, "")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID == "" {
		t.Fatal("expected generated id")
	}
	if tasks[0].Quadrant != quadrant.Q1 {
		t.Fatalf("expected q1, got %q", tasks[0].Quadrant)
	}
	if tasks[0].Completed {
		t.Fatal("new task should not be completed")
	}
	if tasks[0].CreatedAt.IsZero() {
		t.Fatal("expected createdAt to be stamped")
	}

	tasks, err = svc.AddTask(tasks, quadrant.Q2, "plan the offsite", nil, "")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID == tasks[1].ID {
		t.Fatal("expected unique ids")
	}
	if len(p.saves) != 2 {
		t.Fatalf("expected 2 writes, got %d", len(p.saves))
	}
	if p.saves[0] != store.KeyTasks {
		t.Fatalf("expected write to %q, got %q", store.KeyTasks, p.saves[0])
	}
}

func TestAddTaskRejectsBlankText(t *testing.T) {
	p := newMemoryPersistence()
	svc := newTaskService(p)

	input := []task.Task{task.New(quadrant.Q1, "existing")}
	for _, text := range []string{"", "   ", "\t\n"} {
		got, err := svc.AddTask(input, quadrant.Q1, text, nil, "")
		if !errors.Is(err, ErrEmptyText) {
			t.Fatalf("text %q: expected ErrEmptyText, got %v", text, err)
		}
		if len(got) != len(input) || got[0].ID != input[0].ID {
			t.Fatalf("text %q: expected input unchanged", text)
		}
	}
	if len(p.saves) != 0 {
		t.Fatalf("rejected add should not persist, got %d writes", len(p.saves))
	}
}

func TestAddTaskDoesNotMutateInput(t *testing.T) {
	svc := newTaskService(newMemoryPersistence())

	input := []task.Task{task.New(quadrant.Q1, "a")}
	updated, err := svc.AddTask(input, quadrant.Q2, "b", nil, "")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	updated[0].Text = "mutated"
	if input[0].Text != "a" {
		t.Fatal("input collection was mutated")
	}
}

func TestUpdateTaskCompletionStampsTimestamp(t *testing.T) {
	svc := newTaskService(newMemoryPersistence())
	tasks := []task.Task{task.New(quadrant.Q1, "finish")}

	done := true
	tasks = svc.UpdateTask(tasks, tasks[0].ID, task.Updates{Completed: &done})
	if !tasks[0].Completed {
		t.Fatal("expected task completed")
	}
	if tasks[0].CompletedAt == nil || tasks[0].CompletedAt.IsZero() {
		t.Fatal("expected completedAt stamped")
	}

	undone := false
	tasks = svc.UpdateTask(tasks, tasks[0].ID, task.Updates{Completed: &undone})
	if tasks[0].Completed {
		t.Fatal("expected task reopened")
	}
	if tasks[0].CompletedAt != nil {
		t.Fatal("expected completedAt cleared")
	}
}

func TestUpdateTaskCompletionNoOpKeepsTimestamp(t *testing.T) {
	svc := newTaskService(newMemoryPersistence())
	tasks := []task.Task{task.New(quadrant.Q1, "finish")}

	done := true
	tasks = svc.UpdateTask(tasks, tasks[0].ID, task.Updates{Completed: &done})
	first := *tasks[0].CompletedAt

	// Completing an already-completed task must not restamp.
	tasks = svc.UpdateTask(tasks, tasks[0].ID, task.Updates{Completed: &done})
	if !tasks[0].CompletedAt.Equal(first.Time) {
		t.Fatal("completedAt changed on a no-op completion")
	}
}

func TestUpdateTaskQuadrantPromotionOnly(t *testing.T) {
	svc := newTaskService(newMemoryPersistence())
	tasks := []task.Task{task.New(quadrant.None, "planned work")}

	q := quadrant.Q3
	tasks = svc.UpdateTask(tasks, tasks[0].ID, task.Updates{Quadrant: &q})
	if tasks[0].Quadrant != quadrant.Q3 {
		t.Fatalf("expected q3, got %q", tasks[0].Quadrant)
	}

	back := quadrant.None
	tasks = svc.UpdateTask(tasks, tasks[0].ID, task.Updates{Quadrant: &back})
	if tasks[0].Quadrant != quadrant.Q3 {
		t.Fatal("placed task must not go back to planned")
	}
}

func TestUpdateTaskUnknownIDIsNoOp(t *testing.T) {
	p := newMemoryPersistence()
	svc := newTaskService(p)
	tasks := []task.Task{task.New(quadrant.Q1, "keep me")}

	text := "changed"
	got := svc.UpdateTask(tasks, "nope", task.Updates{Text: &text})
	if len(got) != 1 || got[0].Text != "keep me" {
		t.Fatal("expected input unchanged for unknown id")
	}
	if len(p.saves) != 0 {
		t.Fatal("no-op update should not persist")
	}
}

func TestUpdateTaskDueDate(t *testing.T) {
	svc := newTaskService(newMemoryPersistence())
	tasks := []task.Task{task.New(quadrant.Q2, "dentist")}

	due, err := task.ParseDate("2026-09-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	tasks = svc.UpdateTask(tasks, tasks[0].ID, task.Updates{DueDate: &due})
	if tasks[0].DueDate == nil || tasks[0].DueDate.String() != "2026-09-15" {
		t.Fatalf("expected due date set, got %v", tasks[0].DueDate)
	}

	tasks = svc.UpdateTask(tasks, tasks[0].ID, task.Updates{ClearDue: true})
	if tasks[0].DueDate != nil {
		t.Fatal("expected due date cleared")
	}
}

func TestDeleteTaskIdempotent(t *testing.T) {
	p := newMemoryPersistence()
	svc := newTaskService(p)
	tasks := []task.Task{
		task.New(quadrant.Q1, "a"),
		task.New(quadrant.Q2, "b"),
	}
	id := tasks[0].ID

	tasks = svc.DeleteTask(tasks, id)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	again := svc.DeleteTask(tasks, id)
	if len(again) != 1 {
		t.Fatalf("second delete changed the collection: %d tasks", len(again))
	}
	if len(p.saves) != 1 {
		t.Fatalf("expected 1 write, got %d", len(p.saves))
	}
}

func TestDeleteTasksByProjectID(t *testing.T) {
	svc := newTaskService(newMemoryPersistence())

	a := task.New(quadrant.Q1, "a")
	a.ProjectID = "p1"
	b := task.New(quadrant.Q2, "b")
	c := task.New(quadrant.None, "c")
	c.ProjectID = "p1"

	got := svc.DeleteTasksByProjectID([]task.Task{a, b, c}, "p1")
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("expected only unrelated task to survive, got %d", len(got))
	}

	// No member tasks means no write and no change.
	same := svc.DeleteTasksByProjectID(got, "p9")
	if len(same) != 1 {
		t.Fatal("cascade with no members changed the collection")
	}
}

func TestSubtaskLifecycle(t *testing.T) {
	svc := newTaskService(newMemoryPersistence())
	tasks := []task.Task{task.New(quadrant.Q1, "parent")}
	id := tasks[0].ID

	tasks, sub, err := svc.AddSubtask(tasks, id, "step one")
	if err != nil {
		t.Fatalf("AddSubtask failed: %v", err)
	}
	if sub == nil || sub.ID == "" {
		t.Fatal("expected created subtask returned")
	}
	if len(tasks[0].Subtasks) != 1 {
		t.Fatalf("expected 1 subtask, got %d", len(tasks[0].Subtasks))
	}

	done := true
	tasks = svc.UpdateSubtask(tasks, id, sub.ID, SubtaskUpdates{Completed: &done})
	if !tasks[0].Subtasks[0].Completed {
		t.Fatal("expected subtask completed")
	}

	tasks = svc.DeleteSubtask(tasks, id, sub.ID)
	if len(tasks[0].Subtasks) != 0 {
		t.Fatalf("expected 0 subtasks, got %d", len(tasks[0].Subtasks))
	}
}

func TestAddSubtaskRejectsBlankText(t *testing.T) {
	svc := newTaskService(newMemoryPersistence())
	tasks := []task.Task{task.New(quadrant.Q1, "parent")}

	_, sub, err := svc.AddSubtask(tasks, tasks[0].ID, "  ")
	if !errors.Is(err, ErrEmptyText) {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
	if sub != nil {
		t.Fatal("expected no subtask created")
	}
}

func TestLoadTasksReportsFound(t *testing.T) {
	p := newMemoryPersistence()
	svc := newTaskService(p)

	_, found, err := svc.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks failed: %v", err)
	}
	if found {
		t.Fatal("fresh store should report found=false")
	}

	// An explicitly emptied document is found, so samples are not reseeded.
	if err := p.Save(store.KeyTasks, []task.Task{}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	tasks, found, err := svc.LoadTasks()
	if err != nil {
		t.Fatalf("LoadTasks failed: %v", err)
	}
	if !found {
		t.Fatal("written empty document should report found=true")
	}
	if len(tasks) != 0 {
		t.Fatalf("expected empty collection, got %d", len(tasks))
	}
}

func TestPersistFailureKeepsInMemoryResult(t *testing.T) {
	p := newMemoryPersistence()
	p.failed = true
	svc := newTaskService(p)

	tasks, err := svc.AddTask(nil, quadrant.Q1, "still added", nil, "")
	if err != nil {
		t.Fatalf("AddTask failed: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatal("in-memory transform must proceed despite persist failure")
	}
}
