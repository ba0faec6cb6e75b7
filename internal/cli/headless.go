package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lifeview/internal/app"
	"lifeview/pkg/sims/life"

	"github.com/spf13/cobra"
)

// NewHeadlessCommand creates the headless command.
func NewHeadlessCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "headless",
		Short: "Run generations without a window and write a PNG",
		Long: `Advance the board --generations times at the configured interval,
rendering to an in-memory image, and write the final frame to --output.

Example:
  life headless --pattern glider-gun --generations 300 --output gun.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			res, err := app.RunHeadless(ctx, opts.Config, opts.Logger())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "board %dx%d, generation %d, population %d, wrote %s\n",
				opts.Config.Rows, opts.Config.Cols, res.Generation, res.Population, res.Output)
			return nil
		},
	}
}

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "patterns",
		Short: "List the built-in patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range life.PatternNames() {
				p, err := life.PatternByName(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %dx%d\n", name, p.Rows, p.Cols)
			}
			return nil
		},
	}
}
