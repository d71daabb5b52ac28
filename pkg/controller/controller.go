// Package controller maps commands to state transitions. Dispatch is the
// single synchronous entry point: it invokes the matching entity service
// (pure transform plus write-through persist) and merges the result into
// the state store, which then notifies its subscribers. One command runs
// to completion before the next begins; nothing here yields mid-mutation.
package controller

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/backup"
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/service"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
	"github.com/eisenkit/eisen/pkg/task"
)

// Dispatcher wires the services to the state store. Construct one per
// store; nothing here is global.
type Dispatcher struct {
	Store          *state.Store
	Tasks          *service.TaskService
	Projects       *service.ProjectService
	TaskArchive    *service.ArchiveService
	ProjectArchive *service.ProjectArchiveService

	Log *zap.Logger
}

// New builds a dispatcher and the service set over the given persistence
// and store.
func New(st *state.Store, p store.Persistence, log *zap.Logger) *Dispatcher {
	taskArchive := &service.ArchiveService{Persistence: p, Log: log}
	return &Dispatcher{
		Store:          st,
		Tasks:          &service.TaskService{Persistence: p, Archive: taskArchive, Log: log},
		Projects:       &service.ProjectService{Persistence: p, Log: log},
		TaskArchive:    taskArchive,
		ProjectArchive: &service.ProjectArchiveService{Persistence: p, Log: log},
		Log:            log,
	}
}

// Dispatch executes one command. Validation failures and malformed
// import payloads come back as errors with no state change; missing ids
// are benign no-ops. Persistence failures never surface here - the
// services log them and the in-memory merge proceeds.
func (d *Dispatcher) Dispatch(cmd Command) error {
	d.log().Debug("dispatch", zap.String("command", cmd.CommandName()))

	switch c := cmd.(type) {
	case Init:
		return d.init()

	case SaveNewTask:
		s := d.Store.GetState()
		updated, err := d.Tasks.AddTask(s.Tasks, c.Quadrant, c.Text, c.DueDate, c.ProjectID)
		if err != nil {
			return err
		}
		d.Store.SetState(state.Partial{Tasks: state.TasksOf(updated)})

	case UpdateTask:
		s := d.Store.GetState()
		updated := d.Tasks.UpdateTask(s.Tasks, c.TaskID, c.Updates)
		d.Store.SetState(state.Partial{Tasks: state.TasksOf(updated)})

	case ToggleComplete:
		s := d.Store.GetState()
		idx := task.Find(s.Tasks, c.TaskID)
		if idx < 0 {
			return nil
		}
		completed := !s.Tasks[idx].Completed
		updated := d.Tasks.UpdateTask(s.Tasks, c.TaskID, task.Updates{Completed: &completed})
		d.Store.SetState(state.Partial{Tasks: state.TasksOf(updated)})

	case DeleteTask:
		s := d.Store.GetState()
		updated := d.Tasks.DeleteTask(s.Tasks, c.TaskID)
		d.Store.SetState(state.Partial{Tasks: state.TasksOf(updated)})

	case ArchiveTask:
		s := d.Store.GetState()
		updated, archived := d.Tasks.ArchiveTask(s.Tasks, c.TaskID)
		if archived == nil {
			return nil
		}
		d.Store.SetState(state.Partial{
			Tasks:         state.TasksOf(updated),
			ArchivedTasks: state.ArchivedOf(archived),
		})

	case RestoreTask:
		s := d.Store.GetState()
		restored, archived := d.TaskArchive.RestoreTask(s.ArchivedTasks, c.TaskID)
		if restored == nil {
			return nil
		}
		updated := d.Tasks.ReplaceTasks(append(task.CloneAll(s.Tasks), *restored))
		d.Store.SetState(state.Partial{
			Tasks:         state.TasksOf(updated),
			ArchivedTasks: state.ArchivedOf(archived),
		})

	case DeleteTaskPermanently:
		s := d.Store.GetState()
		archived := d.TaskArchive.DeleteTaskPermanently(s.ArchivedTasks, c.TaskID)
		d.Store.SetState(state.Partial{ArchivedTasks: state.ArchivedOf(archived)})

	case DragStart:
		d.Store.SetState(state.Partial{DraggedTaskID: state.StringOf(c.TaskID)})

	case Drop:
		s := d.Store.GetState()
		if s.DraggedTaskID == "" {
			return nil
		}
		updated := d.Tasks.MoveTask(s.Tasks, service.MoveRequest{
			DraggedID:   s.DraggedTaskID,
			TargetID:    c.TargetID,
			NewQuadrant: c.NewQuadrant,
		})
		d.Store.SetState(state.Partial{
			Tasks:         state.TasksOf(updated),
			DraggedTaskID: state.StringOf(""),
		})

	case MoveTask:
		s := d.Store.GetState()
		updated := d.Tasks.MoveTask(s.Tasks, c.Move)
		d.Store.SetState(state.Partial{Tasks: state.TasksOf(updated)})

	case AddSubtask:
		s := d.Store.GetState()
		updated, _, err := d.Tasks.AddSubtask(s.Tasks, c.TaskID, c.Text)
		if err != nil {
			return err
		}
		d.Store.SetState(state.Partial{Tasks: state.TasksOf(updated)})

	case UpdateSubtask:
		s := d.Store.GetState()
		updated := d.Tasks.UpdateSubtask(s.Tasks, c.TaskID, c.SubtaskID, c.Updates)
		d.Store.SetState(state.Partial{Tasks: state.TasksOf(updated)})

	case DeleteSubtask:
		s := d.Store.GetState()
		updated := d.Tasks.DeleteSubtask(s.Tasks, c.TaskID, c.SubtaskID)
		d.Store.SetState(state.Partial{Tasks: state.TasksOf(updated)})

	case SaveNewProject:
		s := d.Store.GetState()
		updated, err := d.Projects.AddProject(s.Projects, c.Name, c.Description)
		if err != nil {
			return err
		}
		d.Store.SetState(state.Partial{Projects: state.ProjectsOf(updated)})

	case UpdateProject:
		s := d.Store.GetState()
		updated := d.Projects.UpdateProject(s.Projects, c.ProjectID, c.Updates)
		d.Store.SetState(state.Partial{Projects: state.ProjectsOf(updated)})

	case CompleteProject:
		return d.setProjectStatus(c.ProjectID, project.StatusCompleted)

	case ReactivateProject:
		return d.setProjectStatus(c.ProjectID, project.StatusActive)

	case DeleteProject:
		s := d.Store.GetState()
		remaining := d.Tasks.DeleteTasksByProjectID(s.Tasks, c.ProjectID)
		updated := d.Projects.DeleteProject(s.Projects, c.ProjectID)
		d.Store.SetState(state.Partial{
			Tasks:    state.TasksOf(remaining),
			Projects: state.ProjectsOf(updated),
		})

	case ArchiveProject:
		s := d.Store.GetState()
		p, ok := project.Find(s.Projects, c.ProjectID)
		if !ok {
			return nil
		}
		archived := d.ProjectArchive.ArchiveProject(p)
		updated := d.Projects.DeleteProject(s.Projects, c.ProjectID)
		d.Store.SetState(state.Partial{
			Projects:         state.ProjectsOf(updated),
			ArchivedProjects: state.ArchivedProjectsOf(archived),
		})

	case RestoreProject:
		s := d.Store.GetState()
		restored, archived := d.ProjectArchive.RestoreProject(s.ArchivedProjects, c.ProjectID)
		if restored == nil {
			return nil
		}
		updated := d.Projects.ReplaceProjects(append(project.CloneAll(s.Projects), *restored))
		d.Store.SetState(state.Partial{
			Projects:         state.ProjectsOf(updated),
			ArchivedProjects: state.ArchivedProjectsOf(archived),
		})

	case DeleteProjectPermanently:
		s := d.Store.GetState()
		archived := d.ProjectArchive.DeleteProjectPermanently(s.ArchivedProjects, c.ProjectID)
		d.Store.SetState(state.Partial{ArchivedProjects: state.ArchivedProjectsOf(archived)})

	case ShowView:
		d.Store.SetState(state.Partial{ActiveView: state.ViewOf(c.View)})

	case SetMatrixViewMode:
		d.Store.SetState(state.Partial{MatrixViewMode: state.ModeOf(c.Mode)})

	case ViewProject:
		d.Store.SetState(state.Partial{ViewingProjectID: state.StringOf(c.ProjectID)})

	case ImportData:
		return d.importData(c.Payload)

	default:
		return fmt.Errorf("controller: unknown command %T", cmd)
	}

	return nil
}

func (d *Dispatcher) init() error {
	tasks, found, err := d.Tasks.LoadTasks()
	if err != nil {
		return fmt.Errorf("controller: load tasks: %w", err)
	}
	if !found {
		tasks = d.Tasks.SampleTasks()
	}
	archivedTasks, err := d.TaskArchive.LoadArchivedTasks()
	if err != nil {
		return fmt.Errorf("controller: load archived tasks: %w", err)
	}
	projects, err := d.Projects.LoadProjects()
	if err != nil {
		return fmt.Errorf("controller: load projects: %w", err)
	}
	archivedProjects, err := d.ProjectArchive.LoadArchivedProjects()
	if err != nil {
		return fmt.Errorf("controller: load archived projects: %w", err)
	}
	d.Store.SetState(state.Partial{
		Tasks:            state.TasksOf(tasks),
		ArchivedTasks:    state.ArchivedOf(archivedTasks),
		Projects:         state.ProjectsOf(projects),
		ArchivedProjects: state.ArchivedProjectsOf(archivedProjects),
	})
	return nil
}

func (d *Dispatcher) setProjectStatus(id string, status project.Status) error {
	s := d.Store.GetState()
	updated := d.Projects.UpdateProject(s.Projects, id, project.Updates{Status: &status})
	d.Store.SetState(state.Partial{Projects: state.ProjectsOf(updated)})
	return nil
}

func (d *Dispatcher) importData(payload []byte) error {
	doc, err := backup.Import(payload)
	if err != nil {
		return err
	}
	tasks := d.Tasks.ReplaceTasks(doc.ActiveTasks)
	archivedTasks := d.TaskArchive.ReplaceArchivedTasks(doc.ArchivedTasks)
	projects := d.Projects.ReplaceProjects(doc.Projects)
	archivedProjects := d.ProjectArchive.ReplaceArchivedProjects(doc.ArchivedProjects)
	d.Store.SetState(state.Partial{
		Tasks:            state.TasksOf(tasks),
		ArchivedTasks:    state.ArchivedOf(archivedTasks),
		Projects:         state.ProjectsOf(projects),
		ArchivedProjects: state.ArchivedProjectsOf(archivedProjects),
	})
	d.log().Info("import complete",
		zap.Int("tasks", len(tasks)),
		zap.Int("archivedTasks", len(archivedTasks)),
		zap.Int("projects", len(projects)),
		zap.Int("archivedProjects", len(archivedProjects)))
	return nil
}

// Export snapshots the current four collections into a backup document.
func (d *Dispatcher) Export() backup.Document {
	s := d.Store.GetState()
	return backup.Export(s.Tasks, s.ArchivedTasks, s.Projects, s.ArchivedProjects)
}

func (d *Dispatcher) log() *zap.Logger {
	if d.Log == nil {
		return zap.NewNop()
	}
	return d.Log
}
