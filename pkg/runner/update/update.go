// Package update provides the runner logic for editing task fields,
// including promoting a planned task into the matrix.
package update

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/printers"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
	"github.com/eisenkit/eisen/pkg/task"
)

type Update struct {
	ID      string
	Updates task.Updates

	// Subtask edits ride along when SubtaskID is set.
	SubtaskID      string
	SubtaskText    string
	SubtaskDone    *bool
	AddSubtaskText string

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Update) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not update, no persistence")
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

	switch {
	case n.AddSubtaskText != "":
		return d.Dispatch(controller.AddSubtask{TaskID: n.ID, Text: n.AddSubtaskText})
	case n.SubtaskID != "":
		u := controller.UpdateSubtask{TaskID: n.ID, SubtaskID: n.SubtaskID}
		if n.SubtaskText != "" {
			text := n.SubtaskText
			u.Updates.Text = &text
		}
		u.Updates.Completed = n.SubtaskDone
		return d.Dispatch(u)
	default:
		return d.Dispatch(controller.UpdateTask{TaskID: n.ID, Updates: n.Updates})
	}
}
