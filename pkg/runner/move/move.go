// Package move provides the runner logic for the reorder gesture: the
// CLI stand-in for drag and drop, with the target already resolved to an
// id.
package move

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/printers"
	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/service"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
)

// Move drops DraggedID into Quadrant, in front of Before when set,
// appended at the end otherwise.
type Move struct {
	DraggedID string
	Before    string
	Quadrant  quadrant.Quadrant

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Move) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not move, no persistence")
	}
	if !n.Quadrant.Valid() {
		return errors.New("move requires a destination quadrant")
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

	// The gesture arrives fully resolved on the command line, so there
	// is no DragStart/Drop pair to replay: dispatch the one-shot move.
	return d.Dispatch(controller.MoveTask{Move: service.MoveRequest{
		DraggedID:   n.DraggedID,
		TargetID:    n.Before,
		NewQuadrant: n.Quadrant,
	}})
}
