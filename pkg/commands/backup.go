package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/runner/backup"
)

func addBackup(topLevel *cobra.Command) {
	exportCmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export every collection to a JSON backup file",
		Example: `
eisen export
eisen export my-backup.json
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, log, err := boot()
			if err != nil {
				return err
			}
			s := backup.Export{
				Persistence: p,
				Log:         log,
			}
			if len(args) > 0 {
				s.Path = args[0]
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	topLevel.AddCommand(exportCmd)

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace every collection from a JSON backup file",
		Long: "Import replaces all tasks, archived tasks, projects, and archived " +
			"projects with the contents of the backup file. Current data is " +
			"overwritten; a corrupt file leaves everything untouched.",
		Example: `
eisen import my-backup.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a backup file")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, log, err := boot()
			if err != nil {
				return err
			}
			s := backup.Import{
				Path:        args[0],
				Persistence: p,
				Log:         log,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}
	topLevel.AddCommand(importCmd)
}
