// Package add provides the runner logic for creating tasks.
package add

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/printers"
	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
	"github.com/eisenkit/eisen/pkg/task"
)

// Add creates a new task in the given quadrant (or planned against a
// project when no quadrant is set).
type Add struct {
	Quadrant  quadrant.Quadrant
	Text      string
	DueDate   *task.Date
	ProjectID string
	ShowID    bool

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}
	if n.Quadrant.Planned() && n.ProjectID == "" {
		return errors.New("a task without a quadrant needs --project")
	}

	st := state.New(state.Snapshot{})
	d := controller.New(st, n.Persistence, n.Log)
	if err := d.Dispatch(controller.Init{}); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	st.Subscribe(func() {
		s := st.GetState()
		pp.NewLine()
		pp.Matrix(s.Tasks, s.MatrixViewMode)
	})

	return d.Dispatch(controller.SaveNewTask{
		Quadrant:  n.Quadrant,
		Text:      n.Text,
		DueDate:   n.DueDate,
		ProjectID: n.ProjectID,
	})
}
