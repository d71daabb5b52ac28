package options

import (
	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/task"
)

// TaskOptions captures the task field flags shared by add and update.
type TaskOptions struct {
	Quadrant string
	Due      string
	Project  string
	Text     string
}

func AddQuadrantArg(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Quadrant, "quadrant", "q", "",
		"Quadrant for the task: q1/do, q2/schedule, q3/delegate, q4/eliminate.")
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVar(&o.Due, "due", "",
		"Due date as YYYY-MM-DD.")
	cmd.Flags().StringVarP(&o.Project, "project", "p", "",
		"Project id the task belongs to.")
}

// ResolveQuadrant parses the quadrant flag, empty meaning planned.
func (o *TaskOptions) ResolveQuadrant() (quadrant.Quadrant, error) {
	return quadrant.ForAlias(o.Quadrant)
}

// ResolveDue parses the due flag into a Date, nil when unset.
func (o *TaskOptions) ResolveDue() (*task.Date, error) {
	if o.Due == "" {
		return nil, nil
	}
	d, err := task.ParseDate(o.Due)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
