// Package state holds the canonical in-memory snapshot of the
// application: every entity collection plus the view-routing fields. The
// Store is the single owner of that data; services hand back fresh
// collections and the dispatcher merges them in here.
package state

import (
	"sync"

	"github.com/eisenkit/eisen/pkg/archive"
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/task"
)

// View selects which top-level view is active.
type View string

const (
	ViewMatrix   View = "matrix"
	ViewProjects View = "projects"
)

// MatrixMode selects how the matrix view lays out quadrants.
type MatrixMode string

const (
	ModeGrid    MatrixMode = "grid"
	ModeColumns MatrixMode = "columns"
)

// Snapshot is a full copy of the application state. Snapshots returned by
// GetState are safe to read forever; they never observe later mutations.
type Snapshot struct {
	ActiveView       View
	Tasks            []task.Task
	ArchivedTasks    []archive.Task
	Projects         []project.Project
	ArchivedProjects []archive.Project
	DraggedTaskID    string
	MatrixViewMode   MatrixMode
	ViewingProjectID string
}

// Partial is a shallow-merge patch for SetState. Nil fields are left
// untouched; a set field replaces the corresponding snapshot field
// wholesale.
type Partial struct {
	ActiveView       *View
	Tasks            *[]task.Task
	ArchivedTasks    *[]archive.Task
	Projects         *[]project.Project
	ArchivedProjects *[]archive.Project
	DraggedTaskID    *string
	MatrixViewMode   *MatrixMode
	ViewingProjectID *string
}

// Store is an explicitly constructed state container. It guards its
// snapshot with a RWMutex so long-running views (watch) can read while a
// dispatch is in flight, and notifies subscribers synchronously on every
// SetState.
type Store struct {
	mu        sync.RWMutex
	current   Snapshot
	listeners []func()
}

// New creates a store seeded with the given snapshot. Zero routing fields
// get their defaults so a fresh store always renders something sensible.
func New(initial Snapshot) *Store {
	if initial.ActiveView == "" {
		initial.ActiveView = ViewMatrix
	}
	if initial.MatrixViewMode == "" {
		initial.MatrixViewMode = ModeGrid
	}
	return &Store{current: clone(initial)}
}

// GetState returns a copy of the current state.
func (s *Store) GetState() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.current)
}

// SetState merges the partial into the current state and then invokes
// every subscriber, synchronously and in registration order. Subscribers
// take no arguments and re-read via GetState. An empty partial merges
// nothing but still notifies.
func (s *Store) SetState(p Partial) {
	s.mu.Lock()
	if p.ActiveView != nil {
		s.current.ActiveView = *p.ActiveView
	}
	if p.Tasks != nil {
		s.current.Tasks = task.CloneAll(*p.Tasks)
	}
	if p.ArchivedTasks != nil {
		s.current.ArchivedTasks = archive.CloneTasks(*p.ArchivedTasks)
	}
	if p.Projects != nil {
		s.current.Projects = project.CloneAll(*p.Projects)
	}
	if p.ArchivedProjects != nil {
		s.current.ArchivedProjects = archive.CloneProjects(*p.ArchivedProjects)
	}
	if p.DraggedTaskID != nil {
		s.current.DraggedTaskID = *p.DraggedTaskID
	}
	if p.MatrixViewMode != nil {
		s.current.MatrixViewMode = *p.MatrixViewMode
	}
	if p.ViewingProjectID != nil {
		s.current.ViewingProjectID = *p.ViewingProjectID
	}
	listeners := s.listeners
	s.mu.Unlock()

	for _, listener := range listeners {
		listener()
	}
}

// Subscribe registers a listener invoked after every SetState. There is no
// unsubscribe; listeners live for the process.
func (s *Store) Subscribe(listener func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, listener)
}

func clone(in Snapshot) Snapshot {
	out := in
	out.Tasks = task.CloneAll(in.Tasks)
	out.ArchivedTasks = archive.CloneTasks(in.ArchivedTasks)
	out.Projects = project.CloneAll(in.Projects)
	out.ArchivedProjects = archive.CloneProjects(in.ArchivedProjects)
	return out
}

// Helpers for building Partial values without temporary variables at every
// call site.

func ViewOf(v View) *View             { return &v }
func ModeOf(m MatrixMode) *MatrixMode { return &m }
func StringOf(v string) *string       { return &v }

func TasksOf(t []task.Task) *[]task.Task { return &t }

func ArchivedOf(a []archive.Task) *[]archive.Task {
	return &a
}
func ProjectsOf(p []project.Project) *[]project.Project {
	return &p
}
func ArchivedProjectsOf(a []archive.Project) *[]archive.Project {
	return &a
}
