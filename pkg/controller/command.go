package controller

import (
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/service"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/task"
)

// Command is the closed set of state transitions the dispatcher accepts.
// Every UI gesture becomes one of these values and flows through
// Dispatcher.Dispatch, which gives a single choke point for logging and
// an exhaustive switch instead of an open-ended bag of callbacks.
type Command interface {
	// CommandName identifies the command in logs.
	CommandName() string

	isCommand()
}

// Init loads every collection from persistence into the store. A missing
// task document (first run) is seeded with sample tasks.
type Init struct{}

// Task commands.

type SaveNewTask struct {
	Quadrant  quadrant.Quadrant
	Text      string
	DueDate   *task.Date
	ProjectID string
}

type UpdateTask struct {
	TaskID  string
	Updates task.Updates
}

type ToggleComplete struct {
	TaskID string
}

type DeleteTask struct {
	TaskID string
}

type ArchiveTask struct {
	TaskID string
}

type RestoreTask struct {
	TaskID string
}

type DeleteTaskPermanently struct {
	TaskID string
}

// Drag-and-drop. DragStart records the dragged task so the drop can be
// resolved later; Drop carries the already-resolved target.

type DragStart struct {
	TaskID string
}

type Drop struct {
	TargetID    string
	NewQuadrant quadrant.Quadrant
}

// MoveTask is the fully resolved move gesture, used when the caller
// already knows the dragged id (the CLI) rather than relying on the
// DragStart/Drop pair.
type MoveTask struct {
	Move service.MoveRequest
}

// Subtask commands.

type AddSubtask struct {
	TaskID string
	Text   string
}

type UpdateSubtask struct {
	TaskID    string
	SubtaskID string
	Updates   service.SubtaskUpdates
}

type DeleteSubtask struct {
	TaskID    string
	SubtaskID string
}

// Project commands.

type SaveNewProject struct {
	Name        string
	Description string
}

type UpdateProject struct {
	ProjectID string
	Updates   project.Updates
}

type CompleteProject struct {
	ProjectID string
}

type ReactivateProject struct {
	ProjectID string
}

// DeleteProject cascades: every active task referencing the project is
// deleted along with it.
type DeleteProject struct {
	ProjectID string
}

type ArchiveProject struct {
	ProjectID string
}

type RestoreProject struct {
	ProjectID string
}

type DeleteProjectPermanently struct {
	ProjectID string
}

// View-routing commands.

type ShowView struct {
	View state.View
}

type SetMatrixViewMode struct {
	Mode state.MatrixMode
}

type ViewProject struct {
	ProjectID string
}

// ImportData replaces all four collections wholesale from an export
// document payload.
type ImportData struct {
	Payload []byte
}

func (Init) CommandName() string                     { return "init" }
func (SaveNewTask) CommandName() string              { return "save-new-task" }
func (UpdateTask) CommandName() string               { return "update-task" }
func (ToggleComplete) CommandName() string           { return "toggle-complete" }
func (DeleteTask) CommandName() string               { return "delete-task" }
func (ArchiveTask) CommandName() string              { return "archive-task" }
func (RestoreTask) CommandName() string              { return "restore-task" }
func (DeleteTaskPermanently) CommandName() string    { return "delete-task-permanently" }
func (DragStart) CommandName() string                { return "drag-start" }
func (Drop) CommandName() string                     { return "drop" }
func (MoveTask) CommandName() string                 { return "move-task" }
func (AddSubtask) CommandName() string               { return "add-subtask" }
func (UpdateSubtask) CommandName() string            { return "update-subtask" }
func (DeleteSubtask) CommandName() string            { return "delete-subtask" }
func (SaveNewProject) CommandName() string           { return "save-new-project" }
func (UpdateProject) CommandName() string            { return "update-project" }
func (CompleteProject) CommandName() string          { return "complete-project" }
func (ReactivateProject) CommandName() string        { return "reactivate-project" }
func (DeleteProject) CommandName() string            { return "delete-project" }
func (ArchiveProject) CommandName() string           { return "archive-project" }
func (RestoreProject) CommandName() string           { return "restore-project" }
func (DeleteProjectPermanently) CommandName() string { return "delete-project-permanently" }
func (ShowView) CommandName() string                 { return "show-view" }
func (SetMatrixViewMode) CommandName() string        { return "set-matrix-view-mode" }
func (ViewProject) CommandName() string              { return "view-project" }
func (ImportData) CommandName() string               { return "import-data" }

func (Init) isCommand()                     {}
func (SaveNewTask) isCommand()              {}
func (UpdateTask) isCommand()               {}
func (ToggleComplete) isCommand()           {}
func (DeleteTask) isCommand()               {}
func (ArchiveTask) isCommand()              {}
func (RestoreTask) isCommand()              {}
func (DeleteTaskPermanently) isCommand()    {}
func (DragStart) isCommand()                {}
func (Drop) isCommand()                     {}
func (MoveTask) isCommand()                 {}
func (AddSubtask) isCommand()               {}
func (UpdateSubtask) isCommand()            {}
func (DeleteSubtask) isCommand()            {}
func (SaveNewProject) isCommand()           {}
func (UpdateProject) isCommand()            {}
func (CompleteProject) isCommand()          {}
func (ReactivateProject) isCommand()        {}
func (DeleteProject) isCommand()            {}
func (ArchiveProject) isCommand()           {}
func (RestoreProject) isCommand()           {}
func (DeleteProjectPermanently) isCommand() {}
func (ShowView) isCommand()                 {}
func (SetMatrixViewMode) isCommand()        {}
func (ViewProject) isCommand()              {}
func (ImportData) isCommand()               {}
