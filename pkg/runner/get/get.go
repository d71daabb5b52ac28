// Package get provides the runner logic for rendering the matrix,
// project, and archive views.
package get

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/printers"
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
)

// Get renders the requested view of the current state.
type Get struct {
	View      state.View
	Mode      state.MatrixMode
	Archived  bool
	ProjectID string
	ShowID    bool

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	st := state.New(state.Snapshot{
		ActiveView:       n.View,
		MatrixViewMode:   n.Mode,
		ViewingProjectID: n.ProjectID,
	})
	d := controller.New(st, n.Persistence, n.Log)

	// The render subscription is the whole command: Init merges the
	// loaded collections into the store, the store notifies, and the
	// listener draws whichever view is active.
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	st.Subscribe(func() {
		s := st.GetState()
		pp.NewLine()
		render(&pp, s, n.Archived)
	})

	return d.Dispatch(controller.Init{})
}

func render(pp *printers.PrettyPrint, s state.Snapshot, archived bool) {
	if archived {
		pp.ArchivedTasks(s.ArchivedTasks)
		pp.ArchivedProjects(s.ArchivedProjects)
		return
	}
	switch s.ActiveView {
	case state.ViewProjects:
		if s.ViewingProjectID != "" {
			if p, ok := project.Find(s.Projects, s.ViewingProjectID); ok {
				pp.ProjectDetail(p, s.Tasks)
				return
			}
			fmt.Println("project not found")
			return
		}
		pp.Projects(s.Projects, s.Tasks)
	default:
		pp.Matrix(s.Tasks, s.MatrixViewMode)
	}
}
