package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/eisenkit/eisen/pkg/logging"
	"github.com/eisenkit/eisen/pkg/store"
)

var (
	oo      = &base.OutputOptions{}
	verbose bool
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "eisen",
		Short: base.Wrap80("An Eisenhower matrix task manager on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log every dispatched command.")

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addComplete(topLevel)
	addUpdate(topLevel)
	addDelete(topLevel)
	addMove(topLevel)
	addArchive(topLevel)
	addProject(topLevel)
	addBackup(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

// boot loads persistence and the logger for a command run.
func boot() (store.Persistence, *zap.Logger, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(verbose)
	if err != nil {
		return nil, nil, err
	}
	return p, log, nil
}
