// Package projects provides the runner logic for the project family of
// commands.
package projects

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/printers"
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
)

type Action int

const (
	List Action = iota
	Detail
	Add
	Complete
	Reactivate
	Archive
	Restore
	Delete
	Purge
)

type Projects struct {
	Action      Action
	ID          string
	Name        string
	Description string
	ShowID      bool

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Projects) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not manage projects, no persistence")
	}

	st := state.New(state.Snapshot{ActiveView: state.ViewProjects})
	d := controller.New(st, n.Persistence, n.Log)
	if err := d.Dispatch(controller.Init{}); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	st.Subscribe(func() {
		s := st.GetState()
		pp.NewLine()
		if s.ViewingProjectID != "" {
			if p, ok := project.Find(s.Projects, s.ViewingProjectID); ok {
				pp.ProjectDetail(p, s.Tasks)
				return
			}
		}
		pp.Projects(s.Projects, s.Tasks)
	})

	switch n.Action {
	case List:
		s := st.GetState()
		pp.NewLine()
		pp.Projects(s.Projects, s.Tasks)
		return nil
	case Detail:
		return d.Dispatch(controller.ViewProject{ProjectID: n.ID})
	case Add:
		return d.Dispatch(controller.SaveNewProject{Name: n.Name, Description: n.Description})
	case Complete:
		return d.Dispatch(controller.CompleteProject{ProjectID: n.ID})
	case Reactivate:
		return d.Dispatch(controller.ReactivateProject{ProjectID: n.ID})
	case Archive:
		return d.Dispatch(controller.ArchiveProject{ProjectID: n.ID})
	case Restore:
		return d.Dispatch(controller.RestoreProject{ProjectID: n.ID})
	case Delete:
		return d.Dispatch(controller.DeleteProject{ProjectID: n.ID})
	case Purge:
		return d.Dispatch(controller.DeleteProjectPermanently{ProjectID: n.ID})
	}
	return nil
}
