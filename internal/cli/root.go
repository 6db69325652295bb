// Package cli contains the command-line interface of hnstat, powered by the
// cobra library. It defines the root command, the query subcommands and the
// serve command.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"hn-stat/internal/app"
	"hn-stat/internal/shared/configs"
	"hn-stat/internal/shared/loggers"
	"hn-stat/internal/shared/svcerrors"
)

// rootOptions holds the values of the root command's persistent flags and
// the state every subcommand derives from them.
type rootOptions struct {
	configPath string
	logLevel   string
	output     string

	config *configs.Config
	logger loggers.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree
// so tests can run commands side by side.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "hnstat",
		Short: "Count distinct and popular requests in a timestamped request log.",
		Long: `Count distinct and popular requests in a timestamped request log.
Each log line holds an unsigned timestamp followed by a request token.
Queries select the lines whose timestamp falls within [--from, --to].`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c",
		"", "Path to a YAML configuration file.")
	rootCmd.PersistentFlags().StringVarP(&opts.logLevel, "log-level", "l",
		"", "Log level, overrides log.level from the configuration.")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o",
		outputPlain, "Output format: plain, table or json.")

	rootCmd.AddCommand(newDistinctCmd(opts), newTopCmd(opts), newServeCmd(opts))
	return rootCmd
}

// init loads the configuration and builds the logger. Logs go to stderr so
// stdout only carries query results.
func (o *rootOptions) init(cmd *cobra.Command) error {
	if err := validateOutput(o.output); err != nil {
		return err
	}

	config, err := configs.LoadConfig(o.configPath)
	if err != nil {
		return err
	}
	if o.logLevel != "" {
		config.Log.Level = o.logLevel
	}

	logger, err := app.NewLogger(config, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	o.config = config
	o.logger = logger
	return nil
}

// Execute is the entry point of the CLI, called by main.go.
//
// The command context is canceled on SIGINT or SIGTERM so that a running
// server shuts down gracefully.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", errorDetail(err))
	}
	return err
}

// errorDetail renders service errors with their cause, since the CLI user is
// also the operator.
func errorDetail(err error) string {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr.Detail()
	}
	return err.Error()
}
