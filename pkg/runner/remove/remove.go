// Package remove provides the runner logic for deleting tasks and
// subtasks from the active collection.
package remove

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/printers"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
)

type Remove struct {
	ID        string
	SubtaskID string

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}

	st := state.New(state.Snapshot{})
	d := controller.New(st, n.Persistence, n.Log)
	if err := d.Dispatch(controller.Init{}); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	st.Subscribe(func() {
		s := st.GetState()
		pp.NewLine()
		pp.Matrix(s.Tasks, s.MatrixViewMode)
	})

	if n.SubtaskID != "" {
		return d.Dispatch(controller.DeleteSubtask{TaskID: n.ID, SubtaskID: n.SubtaskID})
	}
	return d.Dispatch(controller.DeleteTask{TaskID: n.ID})
}
