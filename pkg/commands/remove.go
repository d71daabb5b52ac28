package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/commands/options"
	"github.com/eisenkit/eisen/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var subtaskID string

	cmd := &cobra.Command{
		Use:     "delete <task id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task from the active collection",
		Example: `
eisen delete <task id>
eisen delete <task id> --subtask <subtask id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a task id")
			}
			io.ID = args[0]
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			p, log, err := boot()
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:          io.ID,
				SubtaskID:   subtaskID,
				Persistence: p,
				Log:         log,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&subtaskID, "subtask", "", "Delete only this subtask.")

	topLevel.AddCommand(cmd)
}
