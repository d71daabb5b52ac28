// Package archive holds the snapshot wrappers for soft-deleted tasks and
// projects. An archived record is the entity verbatim plus the moment it
// left the active collection.
package archive

import (
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/task"
)

type Task struct {
	task.Task
	ArchivedAt task.Timestamp `json:"archivedAt"`
}

type Project struct {
	project.Project
	ArchivedAt task.Timestamp `json:"archivedAt"`
}

func NewTask(t task.Task) Task {
	return Task{Task: t.Clone(), ArchivedAt: task.Now()}
}

func NewProject(p project.Project) Project {
	return Project{Project: p.Clone(), ArchivedAt: task.Now()}
}

func (a Task) Clone() Task {
	return Task{Task: a.Task.Clone(), ArchivedAt: a.ArchivedAt}
}

func (a Project) Clone() Project {
	return Project{Project: a.Project.Clone(), ArchivedAt: a.ArchivedAt}
}

func CloneTasks(in []Task) []Task {
	if in == nil {
		return nil
	}
	out := make([]Task, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

func CloneProjects(in []Project) []Project {
	if in == nil {
		return nil
	}
	out := make([]Project, len(in))
	for i, a := range in {
		out[i] = a.Clone()
	}
	return out
}

func FindTask(in []Task, id string) int {
	for i, a := range in {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func FindProject(in []Project, id string) int {
	for i, a := range in {
		if a.ID == id {
			return i
		}
	}
	return -1
}
