// Package watch provides the long-running view: it re-renders the matrix
// whenever the database changes on disk and runs the due-today checker in
// the background.
package watch

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/notify"
	"github.com/eisenkit/eisen/pkg/printers"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
	"github.com/eisenkit/eisen/pkg/task"
)

type Watch struct {
	Mode     state.MatrixMode
	Interval time.Duration
	ShowID   bool

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not watch, no persistence")
	}
	watcher, ok := n.Persistence.(store.Watcher)
	if !ok {
		return errors.New("this persistence backend can not watch for changes")
	}

	st := state.New(state.Snapshot{MatrixViewMode: n.Mode})
	d := controller.New(st, n.Persistence, n.Log)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	st.Subscribe(func() {
		s := st.GetState()
		pp.NewLine()
		pp.Matrix(s.Tasks, s.MatrixViewMode)
	})

	if err := d.Dispatch(controller.Init{}); err != nil {
		return err
	}

	events, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	checker := &notify.Checker{
		Tasks:    func() []task.Task { return st.GetState().Tasks },
		Sink:     printers.Toast{},
		Interval: n.Interval,
	}
	go checker.Start(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			// Another process wrote the database: re-read everything
			// and let the store notification redraw. Last write wins;
			// there is no merge.
			if err := d.Dispatch(controller.Init{}); err != nil {
				return err
			}
		}
	}
}
