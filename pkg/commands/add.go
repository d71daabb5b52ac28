package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/commands/options"
	"github.com/eisenkit/eisen/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task to the matrix",
		Example: `
eisen add "Finish the report" -q q1 --due 2026-09-01
eisen add "Draft the launch plan" -p <project id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the task text")
			}
			to.Text = strings.Join(args, " ")
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
			due, err := to.ResolveDue()
			if err != nil {
				return err
			}
			s := add.Add{
				Quadrant:    q,
				Text:        to.Text,
				DueDate:     due,
				ProjectID:   to.Project,
				ShowID:      io.ShowID,
				Persistence: p,
				Log:         log,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddQuadrantArg(cmd, to)
	options.AddTaskArgs(cmd, to)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
