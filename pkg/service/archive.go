package service

import (
	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/archive"
	"github.com/eisenkit/eisen/pkg/store"
	"github.com/eisenkit/eisen/pkg/task"
)

// ArchiveService owns the archived-task collection. It loads and saves
// its own document so the task service never has to juggle both
// collections in one call.
type ArchiveService struct {
	Persistence store.Persistence
	Log         *zap.Logger
}

func (s *ArchiveService) LoadArchivedTasks() ([]archive.Task, error) {
	archived := []archive.Task{}
	if s.Persistence == nil {
		return archived, nil
	}
	if _, err := s.Persistence.Load(store.KeyArchivedTasks, &archived); err != nil {
		return []archive.Task{}, err
	}
	return archived, nil
}

// ArchiveTask snapshots the task with an archival timestamp and appends
// it to the archive document.
func (s *ArchiveService) ArchiveTask(t task.Task) []archive.Task {
	archived, err := s.LoadArchivedTasks()
	if err != nil {
		logger(s.Log).Warn("archive load failed, starting from empty",
			zap.Error(err))
		archived = []archive.Task{}
	}
	updated := append(archive.CloneTasks(archived), archive.NewTask(t))
	s.persistArchive(updated)
	return updated
}

// RestoreTask removes the task from the archive and returns it with the
// archival timestamp stripped. The caller is responsible for appending
// the restored task to the active collection; this keeps each service
// bound to exactly one document.
func (s *ArchiveService) RestoreTask(archived []archive.Task, id string) (restored *task.Task, updated []archive.Task) {
	idx := archive.FindTask(archived, id)
	if idx < 0 {
		return nil, archived
	}
	t := archived[idx].Task.Clone()
	updated = make([]archive.Task, 0, len(archived)-1)
	for _, a := range archived {
		if a.ID != id {
			updated = append(updated, a.Clone())
		}
	}
	s.persistArchive(updated)
	return &t, updated
}

// DeleteTaskPermanently removes the task from the archive for good.
// Absent ids are already satisfied.
func (s *ArchiveService) DeleteTaskPermanently(archived []archive.Task, id string) []archive.Task {
	idx := archive.FindTask(archived, id)
	if idx < 0 {
		return archived
	}
	updated := make([]archive.Task, 0, len(archived)-1)
	for _, a := range archived {
		if a.ID != id {
			updated = append(updated, a.Clone())
		}
	}
	s.persistArchive(updated)
	return updated
}

// ReplaceArchivedTasks swaps the whole document, used by import.
func (s *ArchiveService) ReplaceArchivedTasks(archived []archive.Task) []archive.Task {
	updated := archive.CloneTasks(archived)
	if updated == nil {
		updated = []archive.Task{}
	}
	s.persistArchive(updated)
	return updated
}

func (s *ArchiveService) persistArchive(archived []archive.Task) {
	persist(s.Persistence, s.Log, store.KeyArchivedTasks, archived)
}
