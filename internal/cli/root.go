package cli

import (
	"fmt"
	"log/slog"

	"lifeview/internal/app"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	ConfigPath string
	Config     *app.Config

	logger *slog.Logger
}

// Logger returns the logger configured by the root command.
func (o *RootOptions) Logger() *slog.Logger {
	if o.logger == nil {
		return slog.Default()
	}
	return o.logger
}

// NewRootCommand creates the root command of the life CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{Config: app.NewConfig()})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life viewer",
		Long: `Simulate Conway's Game of Life on a bounded board.

The board is painted incrementally: only cells whose state changed since the
previous frame are redrawn. Drag with the right mouse button or with one or
more fingers to pan the board.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if opts.ConfigPath == "" {
				return nil
			}
			return loadConfig(opts, cmd.Flags())
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML config file")
	opts.Config.Bind(cmd.PersistentFlags())

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewHeadlessCommand(opts))
	cmd.AddCommand(NewPatternsCommand())

	return cmd
}

// loadConfig applies the config file, then re-applies flags given on the
// command line so they take precedence over the file.
func loadConfig(opts *RootOptions, fs *pflag.FlagSet) error {
	explicit := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		explicit[f.Name] = f.Value.String()
	})

	if err := opts.Config.LoadFile(opts.ConfigPath); err != nil {
		return err
	}
	for name, value := range explicit {
		if err := fs.Set(name, value); err != nil {
			return fmt.Errorf("reapply --%s: %w", name, err)
		}
	}
	opts.Logger().Debug("config loaded", "path", opts.ConfigPath)
	return nil
}
