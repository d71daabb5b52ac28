// Package complete provides the runner logic for toggling task
// completion.
package complete

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/printers"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
)

// Complete flips the completion checkbox on a task: completing stamps
// the completion time, reopening clears it.
type Complete struct {
	ID string

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
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

	return d.Dispatch(controller.ToggleComplete{TaskID: n.ID})
}
