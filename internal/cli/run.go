package cli

import (
	"lifeview/internal/app"

	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the interactive window",
		Long: `Open a window showing the board.

Keys: space pauses, n steps while paused, r reseeds, c clears, h toggles the
status panel, + and - change the tick interval, q quits. Requires a build
with -tags ebiten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(opts.Config, opts.Logger())
		},
	}
}
