package options

import (
	"github.com/spf13/cobra"

	"github.com/eisenkit/eisen/pkg/state"
)

// ViewOptions captures the matrix layout and archive selection flags.
type ViewOptions struct {
	Columns  bool
	Archived bool
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().BoolVar(&o.Columns, "columns", false,
		"Render the matrix as one table instead of quadrant blocks.")
	cmd.Flags().BoolVar(&o.Archived, "archived", false,
		"Show the archive instead of the active collections.")
}

func (o *ViewOptions) Mode() state.MatrixMode {
	if o.Columns {
		return state.ModeColumns
	}
	return state.ModeGrid
}
