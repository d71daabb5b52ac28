package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/commands/options"
	"github.com/eisenkit/eisen/pkg/runner/update"
	"github.com/eisenkit/eisen/pkg/task"
)

func addUpdate(topLevel *cobra.Command) {
	to := &options.TaskOptions{}
	io := &options.IDOptions{}
	var (
		text       string
		clearDue   bool
		subtaskID  string
		subText    string
		subDone    bool
		subReopen  bool
		addSubtask string
	)

	cmd := &cobra.Command{
		Use:   "update <task id>",
		Short: "Edit a task, promote it into a quadrant, or manage subtasks",
		Example: `
eisen update <task id> --text "New wording"
eisen update <task id> -q q2
eisen update <task id> --add-subtask "First step"
eisen update <task id> --subtask <subtask id> --subtask-done
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

			u := task.Updates{ClearDue: clearDue}
			if text != "" {
				u.Text = &text
			}
			if to.Quadrant != "" {
				q, err := to.ResolveQuadrant()
				if err != nil {
					return err
				}
				u.Quadrant = &q
			}
			due, err := to.ResolveDue()
			if err != nil {
				return err
			}
			u.DueDate = due

			s := update.Update{
				ID:             io.ID,
				Updates:        u,
				SubtaskID:      subtaskID,
				SubtaskText:    subText,
				AddSubtaskText: addSubtask,
				Persistence:    p,
				Log:            log,
			}
			if subDone {
				done := true
				s.SubtaskDone = &done
			}
			if subReopen {
				done := false
				s.SubtaskDone = &done
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "New task text.")
	cmd.Flags().BoolVar(&clearDue, "clear-due", false, "Remove the due date.")
	cmd.Flags().StringVar(&subtaskID, "subtask", "", "Subtask id to edit.")
	cmd.Flags().StringVar(&subText, "subtask-text", "", "New subtask text.")
	cmd.Flags().BoolVar(&subDone, "subtask-done", false, "Mark the subtask complete.")
	cmd.Flags().BoolVar(&subReopen, "subtask-reopen", false, "Mark the subtask incomplete.")
	cmd.Flags().StringVar(&addSubtask, "add-subtask", "", "Append a new subtask.")
	options.AddQuadrantArg(cmd, to)
	options.AddTaskArgs(cmd, to)

	topLevel.AddCommand(cmd)
}
