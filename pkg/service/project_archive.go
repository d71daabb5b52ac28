package service

import (
	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/archive"
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/store"
)

// ProjectArchiveService owns the archived-project collection, the project
// analog of ArchiveService.
type ProjectArchiveService struct {
	Persistence store.Persistence
	Log         *zap.Logger
}

func (s *ProjectArchiveService) LoadArchivedProjects() ([]archive.Project, error) {
	archived := []archive.Project{}
	if s.Persistence == nil {
		return archived, nil
	}
	if _, err := s.Persistence.Load(store.KeyArchivedProjects, &archived); err != nil {
		return []archive.Project{}, err
	}
	return archived, nil
}

// ArchiveProject snapshots the project with an archival timestamp. The
// snapshot is marked archived so a restored-then-inspected record never
// claims to be live.
func (s *ProjectArchiveService) ArchiveProject(p project.Project) []archive.Project {
	archived, err := s.LoadArchivedProjects()
	if err != nil {
		logger(s.Log).Warn("project archive load failed, starting from empty",
			zap.Error(err))
		archived = []archive.Project{}
	}
	snapshot := p.Clone()
	snapshot.Status = project.StatusArchived
	updated := append(archive.CloneProjects(archived), archive.NewProject(snapshot))
	s.persistArchive(updated)
	return updated
}

// RestoreProject removes the project from the archive and returns it
// with ArchivedAt stripped. A project that was archived while completed
// comes back completed; otherwise it comes back active.
func (s *ProjectArchiveService) RestoreProject(archived []archive.Project, id string) (restored *project.Project, updated []archive.Project) {
	idx := archive.FindProject(archived, id)
	if idx < 0 {
		return nil, archived
	}
	p := archived[idx].Project.Clone()
	if p.Status == project.StatusArchived {
		if p.CompletedAt != nil {
			p.Status = project.StatusCompleted
		} else {
			p.Status = project.StatusActive
		}
	}
	updated = make([]archive.Project, 0, len(archived)-1)
	for _, a := range archived {
		if a.ID != id {
			updated = append(updated, a.Clone())
		}
	}
	s.persistArchive(updated)
	return &p, updated
}

func (s *ProjectArchiveService) DeleteProjectPermanently(archived []archive.Project, id string) []archive.Project {
	idx := archive.FindProject(archived, id)
	if idx < 0 {
		return archived
	}
	updated := make([]archive.Project, 0, len(archived)-1)
	for _, a := range archived {
		if a.ID != id {
			updated = append(updated, a.Clone())
		}
	}
	s.persistArchive(updated)
	return updated
}

// ReplaceArchivedProjects swaps the whole document, used by import.
func (s *ProjectArchiveService) ReplaceArchivedProjects(archived []archive.Project) []archive.Project {
	updated := archive.CloneProjects(archived)
	if updated == nil {
		updated = []archive.Project{}
	}
	s.persistArchive(updated)
	return updated
}

func (s *ProjectArchiveService) persistArchive(archived []archive.Project) {
	persist(s.Persistence, s.Log, store.KeyArchivedProjects, archived)
}
