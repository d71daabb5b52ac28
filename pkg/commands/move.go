package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/commands/options"
	"github.com/eisenkit/eisen/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	var before string

	cmd := &cobra.Command{
		Use:   "move <task id>",
		Short: "Move a task to a quadrant, optionally in front of another task",
		Long: "Move reorders the flat task list the way a drag and drop would: " +
			"the task leaves its current position, takes on the destination " +
			"quadrant, and lands in front of --before or at the end of the list.",
		Example: `
eisen move <task id> -q q2
eisen move <task id> -q q2 --before <other task id>
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
			q, err := to.ResolveQuadrant()
			if err != nil {
				return err
			}
			s := move.Move{
				DraggedID:   io.ID,
				Before:      before,
				Quadrant:    q,
				Persistence: p,
				Log:         log,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&before, "before", "", "Task id to insert in front of.")
	options.AddQuadrantArg(cmd, to)

	topLevel.AddCommand(cmd)
}
