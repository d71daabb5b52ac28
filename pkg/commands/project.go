package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/commands/options"
	"github.com/eisenkit/eisen/pkg/runner/projects"
)

func addProject(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "Manage projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addProjectAdd(cmd)
	addProjectGet(cmd)
	addProjectAction(cmd, "complete", "Mark a project completed", projects.Complete)
	addProjectAction(cmd, "reactivate", "Reactivate a completed project", projects.Reactivate)
	addProjectAction(cmd, "archive", "Move a project into the archive", projects.Archive)
	addProjectAction(cmd, "restore", "Restore an archived project", projects.Restore)
	addProjectAction(cmd, "delete", "Delete a project and its tasks", projects.Delete)
	addProjectAction(cmd, "purge", "Permanently delete an archived project", projects.Purge)

	topLevel.AddCommand(cmd)
}

func addProjectAdd(topLevel *cobra.Command) {
	var description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a project",
		Example: `
eisen project add "Q3 launch" --description "Everything for the launch"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a project name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, log, err := boot()
			if err != nil {
				return err
			}
			s := projects.Projects{
				Action:      projects.Add,
				Name:        strings.Join(args, " "),
				Description: description,
				Persistence: p,
				Log:         log,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description.")

	topLevel.AddCommand(cmd)
}

func addProjectGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "get [project id]",
		Aliases: []string{"ls"},
		Short:   "List projects, or show one project's tasks",
		Example: `
eisen project get
eisen project get <project id>
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, log, err := boot()
			if err != nil {
				return err
			}
			s := projects.Projects{
				Action:      projects.List,
				ShowID:      io.ShowID,
				Persistence: p,
				Log:         log,
			}
			if len(args) > 0 {
				s.Action = projects.Detail
				s.ID = args[0]
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addProjectAction(topLevel *cobra.Command, verb, short string, action projects.Action) {
	cmd := &cobra.Command{
		Use:   verb + " <project id>",
		Short: short,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a project id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, log, err := boot()
			if err != nil {
				return err
			}
			s := projects.Projects{
				Action:      action,
				ID:          args[0],
				Persistence: p,
				Log:         log,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
