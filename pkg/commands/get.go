package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/commands/options"
	"github.com/eisenkit/eisen/pkg/runner/get"
	"github.com/eisenkit/eisen/pkg/state"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:     "get",
		Aliases: []string{"matrix", "ls"},
		Short:   "Render the matrix",
		Example: `
eisen get
eisen get --columns
eisen get --archived
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, log, err := boot()
			if err != nil {
				return err
			}
			s := get.Get{
				View:        state.ViewMatrix,
				Mode:        vo.Mode(),
				Archived:    vo.Archived,
				ShowID:      io.ShowID,
				Persistence: p,
				Log:         log,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
