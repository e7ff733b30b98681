// Package command wires the seqkit library packages into cobra subcommands.
package command

import (
	"context"
	"io"

	"github.com/katalvlaran/seqkit/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Env carries what subcommands share once the root flags are parsed.
type Env struct {
	Config *config.Config
	Logger *logrus.Logger
}

// Root builds the seqkit command tree.
func Root() *cobra.Command {
	return newRoot(&Env{})
}

// Execute runs the command tree with args and returns the process exit code.
// A failure is logged to stderr with the logger configured by the root flags,
// or with a default text logger when the configuration itself was invalid.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	env := &Env{}
	root := newRoot(env)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	log := env.Logger
	if log == nil {
		log = (&config.Config{LogLevel: config.DefaultLogLevel, LogFormat: config.DefaultLogFormat}).NewLogger(stderr)
	}
	log.WithError(err).Error("failed to execute root command")

	return 1
}

func newRoot(env *Env) *cobra.Command {
	var level, format string

	root := &cobra.Command{
		Use:           "seqkit",
		Short:         "Sorted-queue merge and longest increasing subsequence tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(level, format)
			if err != nil {
				return errors.Wrap(err, "seqkit : failed to load config")
			}
			env.Config = cfg
			env.Logger = cfg.NewLogger(cmd.ErrOrStderr())

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&level, "log-level", "", "log level (trace|debug|info|warn|error); env "+config.EnvLogLevel)
	flags.StringVar(&format, "log-format", "", "log format (text|json); env "+config.EnvLogFormat)

	root.AddCommand(
		Merge{Env: env}.Command(),
		LIS{Env: env}.Command(),
	)

	return root
}
