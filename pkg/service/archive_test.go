package service

import (
	"testing"

	"github.com/eisenkit/eisen/pkg/archive"
	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/store"
	"github.com/eisenkit/eisen/pkg/task"
)

func TestArchiveAndRestoreRoundTrip(t *testing.T) {
	p := newMemoryPersistence()
	svc := &ArchiveService{Persistence: p}

	original := task.New(quadrant.Q1, "old work")
	done := true
	original.Completed = done
	ts := task.Now()
	original.CompletedAt = &ts

	archived := svc.ArchiveTask(original)
	if len(archived) != 1 {
		t.Fatalf("expected 1 archived task, got %d", len(archived))
	}
	if archived[0].ArchivedAt.IsZero() {
		t.Fatal("expected archivedAt stamped")
	}
	if archived[0].ID != original.ID {
		t.Fatal("archive snapshot should keep the task id")
	}

	restored, remaining := svc.RestoreTask(archived, original.ID)
	if restored == nil {
		t.Fatal("expected restored task")
	}
	if len(remaining) != 0 {
		t.Fatalf("expected empty archive after restore, got %d", len(remaining))
	}
	if restored.ID != original.ID || restored.Text != original.Text {
		t.Fatal("restore lost task identity")
	}
	if !restored.Completed || restored.CompletedAt == nil {
		t.Fatal("restore must keep completion state intact")
	}
}

func TestRestoreTaskUnknownID(t *testing.T) {
	svc := &ArchiveService{Persistence: newMemoryPersistence()}
	archived := []archive.Task{archive.NewTask(task.New(quadrant.Q2, "keep"))}

	restored, remaining := svc.RestoreTask(archived, "ghost")
	if restored != nil {
		t.Fatal("expected nil for unknown id")
	}
	if len(remaining) != 1 {
		t.Fatal("archive changed for unknown id")
	}
}

func TestArchiveServiceAccumulates(t *testing.T) {
	p := newMemoryPersistence()
	svc := &ArchiveService{Persistence: p}

	svc.ArchiveTask(task.New(quadrant.Q1, "first"))
	archived := svc.ArchiveTask(task.New(quadrant.Q2, "second"))
	if len(archived) != 2 {
		t.Fatalf("expected 2 archived tasks, got %d", len(archived))
	}

	// The document survived each write.
	loaded, err := svc.LoadArchivedTasks()
	if err != nil {
		t.Fatalf("LoadArchivedTasks failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 loaded, got %d", len(loaded))
	}
	if p.saves[len(p.saves)-1] != store.KeyArchivedTasks {
		t.Fatalf("expected write to %q", store.KeyArchivedTasks)
	}
}

func TestDeleteTaskPermanently(t *testing.T) {
	svc := &ArchiveService{Persistence: newMemoryPersistence()}
	a := archive.NewTask(task.New(quadrant.Q1, "a"))
	b := archive.NewTask(task.New(quadrant.Q2, "b"))
	archived := []archive.Task{a, b}

	got := svc.DeleteTaskPermanently(archived, a.ID)
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("expected only b to survive, got %d", len(got))
	}

	again := svc.DeleteTaskPermanently(got, a.ID)
	if len(again) != 1 {
		t.Fatal("purge is idempotent for unknown ids")
	}
}

func TestTaskServiceArchiveTaskMovesBothCollections(t *testing.T) {
	p := newMemoryPersistence()
	svc := newTaskService(p)
	tasks := []task.Task{
		task.New(quadrant.Q1, "stay"),
		task.New(quadrant.Q1, "go"),
	}

	active, archived := svc.ArchiveTask(tasks, tasks[1].ID)
	if len(active) != 1 || active[0].Text != "stay" {
		t.Fatalf("expected archived task removed from active, got %d", len(active))
	}
	if len(archived) != 1 || archived[0].Text != "go" {
		t.Fatal("expected task snapshot in the returned archive")
	}

	// Both documents were written through.
	loaded, err := svc.Archive.LoadArchivedTasks()
	if err != nil {
		t.Fatalf("LoadArchivedTasks failed: %v", err)
	}
	if len(loaded) != 1 || loaded[0].Text != "go" {
		t.Fatal("expected task snapshot in the archive document")
	}
}

func TestTaskServiceArchiveTaskUnknownID(t *testing.T) {
	svc := newTaskService(newMemoryPersistence())
	tasks := []task.Task{task.New(quadrant.Q1, "stay")}

	active, archived := svc.ArchiveTask(tasks, "ghost")
	if len(active) != 1 {
		t.Fatal("unknown id changed the active collection")
	}
	if archived != nil {
		t.Fatal("unknown id should not touch the archive")
	}
}
