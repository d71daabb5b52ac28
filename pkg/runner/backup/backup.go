// Package backup provides the runner logic for exporting and importing
// the whole database as a single JSON document.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/eisenkit/eisen/pkg/backup"
	"github.com/eisenkit/eisen/pkg/controller"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/store"
)

// Export writes the four collections to a backup file.
type Export struct {
	Path string

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	st := state.New(state.Snapshot{})
	d := controller.New(st, n.Persistence, n.Log)
	if err := d.Dispatch(controller.Init{}); err != nil {
		return err
	}

	doc := d.Export()
	data, err := backup.Marshal(doc)
	if err != nil {
		return err
	}

	path := n.Path
	if path == "" {
		path = backup.DefaultFilename(time.Now())
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}

	fmt.Printf("exported %d tasks, %d archived tasks, %d projects to %s\n",
		len(doc.ActiveTasks), len(doc.ArchivedTasks), len(doc.Projects), path)
	return nil
}

// Import replaces all four collections from a backup file.
type Import struct {
	Path string

	Persistence store.Persistence
	Log         *zap.Logger
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	st := state.New(state.Snapshot{})
	d := controller.New(st, n.Persistence, n.Log)
	if err := d.Dispatch(controller.Init{}); err != nil {
		return err
	}

	if err := d.Dispatch(controller.ImportData{Payload: data}); err != nil {
		if errors.Is(err, backup.ErrMalformed) {
			return fmt.Errorf("the selected file is invalid or corrupt: %w", err)
		}
		return err
	}

	s := st.GetState()
	fmt.Printf("imported %d tasks, %d archived tasks, %d projects\n",
		len(s.Tasks), len(s.ArchivedTasks), len(s.Projects))
	return nil
}
