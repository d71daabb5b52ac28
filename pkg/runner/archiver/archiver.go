// Package archiver provides the runner logic for the task archive:
// archiving completed tasks, restoring them, and purging them for good.
package archiver

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/printers"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
)

type Action int

const (
	Archive Action = iota
	Restore
	Purge
)

type Archiver struct {
	Action Action
	ID     string

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Archiver) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not archive, no persistence")
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
		pp.ArchivedTasks(s.ArchivedTasks)
	})

	switch n.Action {
	case Restore:
		return d.Dispatch(controller.RestoreTask{TaskID: n.ID})
	case Purge:
		return d.Dispatch(controller.DeleteTaskPermanently{TaskID: n.ID})
	default:
		return d.Dispatch(controller.ArchiveTask{TaskID: n.ID})
	}
}
