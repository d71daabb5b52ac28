package service

import (
	"strings"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/store"
	"github.com/eisenkit/eisen/pkg/task"
)

// ProjectService transforms the project collection, mirroring the task
// service contract.
type ProjectService struct {
	Persistence store.Persistence
	Log         *zap.Logger
}

func (s *ProjectService) LoadProjects() ([]project.Project, error) {
	projects := []project.Project{}
	if s.Persistence == nil {
		return projects, nil
	}
	if _, err := s.Persistence.Load(store.KeyProjects, &projects); err != nil {
		return []project.Project{}, err
	}
	return projects, nil
}

// AddProject appends a new project. A blank name is a validation
// rejection, same contract as AddTask.
func (s *ProjectService) AddProject(projects []project.Project, name, description string) ([]project.Project, error) {
	if strings.TrimSpace(name) == "" {
		return projects, ErrEmptyName
	}
	updated := append(project.CloneAll(projects), project.New(name, description))
	s.persistProjects(updated)
	return updated, nil
}

// UpdateProject shallow-merges updates. Status changes keep CompletedAt
// in lockstep: moving to completed stamps it, reactivating a completed
// project clears it. Unknown ids are a no-op.
func (s *ProjectService) UpdateProject(projects []project.Project, id string, u project.Updates) []project.Project {
	idx := -1
	for i, p := range projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return projects
	}

	updated := project.CloneAll(projects)
	p := &updated[idx]

	if u.Name != nil && strings.TrimSpace(*u.Name) != "" {
		p.Name = strings.TrimSpace(*u.Name)
	}
	if u.Description != nil {
		p.Description = strings.TrimSpace(*u.Description)
	}
	if u.Status != nil && *u.Status != p.Status {
		prev := p.Status
		p.Status = *u.Status
		switch {
		case p.Status == project.StatusCompleted:
			ts := task.Now()
			p.CompletedAt = &ts
		case prev == project.StatusCompleted && p.Status == project.StatusActive:
			p.CompletedAt = nil
		}
	}

	s.persistProjects(updated)
	return updated
}

// DeleteProject removes the project. Cascading the deletion of the
// project's tasks is the dispatcher's job; this service only knows its
// own collection.
func (s *ProjectService) DeleteProject(projects []project.Project, id string) []project.Project {
	found := false
	updated := make([]project.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID == id {
			found = true
			continue
		}
		updated = append(updated, p.Clone())
	}
	if !found {
		return projects
	}
	s.persistProjects(updated)
	return updated
}

// ReplaceProjects swaps the whole document, used by import.
func (s *ProjectService) ReplaceProjects(projects []project.Project) []project.Project {
	updated := project.CloneAll(projects)
	if updated == nil {
		updated = []project.Project{}
	}
	s.persistProjects(updated)
	return updated
}

func (s *ProjectService) persistProjects(projects []project.Project) {
	persist(s.Persistence, s.Log, store.KeyProjects, projects)
}
