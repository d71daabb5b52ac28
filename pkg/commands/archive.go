package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/commands/options"
	"github.com/eisenkit/eisen/pkg/runner/archiver"
)

func addArchive(topLevel *cobra.Command) {
	addArchiveAction(topLevel, &cobra.Command{
		Use:   "archive <task id>",
		Short: "Move a completed task into the archive",
		Example: `
eisen archive <task id>
`,
	}, archiver.Archive)

	addArchiveAction(topLevel, &cobra.Command{
		Use:   "restore <task id>",
		Short: "Restore an archived task to the active collection",
		Example: `
eisen restore <task id>
`,
	}, archiver.Restore)

	addArchiveAction(topLevel, &cobra.Command{
		Use:   "purge <task id>",
		Short: "Permanently delete an archived task",
		Example: `
eisen purge <task id>
`,
	}, archiver.Purge)
}

func addArchiveAction(topLevel *cobra.Command, cmd *cobra.Command, action archiver.Action) {
	io := &options.IDOptions{}

	cmd.Args = func(_ *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("requires a task id")
		}
		io.ID = args[0]
		return nil
	}
	cmd.RunE = func(_ *cobra.Command, _ []string) error {
		p, log, err := boot()
		if err != nil {
			return err
		}
		s := archiver.Archiver{
			Action:      action,
			ID:          io.ID,
			Persistence: p,
			Log:         log,
		}
		err = s.Do(context.Background())
		return oo.HandleError(err)
	}

	topLevel.AddCommand(cmd)
}
