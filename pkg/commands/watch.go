package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/commands/options"
	"github.com/eisenkit/eisen/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	vo := &options.ViewOptions{}
	var every time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the matrix on screen, re-rendering on change",
		Long: "Watch redraws the matrix whenever another eisen process writes " +
			"the database and raises a toast for incomplete tasks due today.",
		Example: `
eisen watch
eisen watch --columns --every 5m
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, log, err := boot()
			if err != nil {
				return err
			}
			s := watch.Watch{
				Mode:        vo.Mode(),
				Interval:    every,
				ShowID:      io.ShowID,
				Persistence: p,
				Log:         log,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().DurationVar(&every, "every", 0,
		"Due-date check interval (default 20m).")
	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
