// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sirseerhq/github-activity/internal/activity"
	"github.com/sirseerhq/github-activity/internal/config"
	activityerrors "github.com/sirseerhq/github-activity/internal/errors"
	"github.com/sirseerhq/github-activity/internal/giterror"
	"github.com/sirseerhq/github-activity/internal/github"
	"github.com/sirseerhq/github-activity/internal/logging"
	"github.com/sirseerhq/github-activity/internal/output"
	"github.com/sirseerhq/github-activity/internal/username"
	"github.com/sirseerhq/github-activity/internal/version"
)

// app carries the collaborators of one invocation.
type app struct {
	stdout  io.Writer
	logFile *os.File

	// client overrides the REST client built from configuration.
	client github.Client

	// user is set once the username argument has been validated.
	user username.Username
}

func newApp(stdout io.Writer, logFile *os.File) *app {
	return &app{stdout: stdout, logFile: logFile}
}

// flagValues holds the parsed command-line flags.
type flagValues struct {
	configPath string
	logLevel   string
}

func registerFlags(fs *pflag.FlagSet, v *flagValues) {
	fs.StringVar(&v.configPath, "config", "", "Path to config file (default: .github-activity.yaml or ~/.github-activity/config.yaml)")
	fs.StringVar(&v.logLevel, "log-level", "", "Diagnostic log level on stderr: debug, info, warn, error (overrides config and "+config.EnvLogLevel+")")
}

func (a *app) newRootCommand() *cobra.Command {
	var flags flagValues

	cmd := &cobra.Command{
		Use:   "github-activity <username>",
		Short: "Show the recent public activity of a GitHub user",
		Long: `Fetch the public event feed of a GitHub user and print one line per event.

Supported events are pushes, opened issues, issue comments, opened pull
requests, pull request reviews and stars. Other events are skipped.

No authentication is used, so GitHub's unauthenticated rate limit applies.`,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, flags)
		},
	}

	registerFlags(cmd.Flags(), &flags)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stdout)

	return cmd
}

// run validates the username, loads configuration and prints the activity.
func (a *app) run(cmd *cobra.Command, args []string, flags flagValues) error {
	user, err := username.Validate(args)
	if err != nil {
		return err
	}
	a.user = user

	cfg, err := config.LoadConfig(flags.configPath)
	if err != nil {
		return &configError{err: err}
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return &configError{err: err}
	}

	logger, err := logging.New(cfg.Logging, a.logFile)
	if err != nil {
		return &configError{err: err}
	}
	defer func() { _ = logger.Sync() }()

	client := a.client
	if client == nil {
		client = github.NewRESTClient(cfg.GitHub.APIEndpoint,
			github.WithLogger(logger),
			github.WithTimeout(cfg.GitHub.Timeout),
		)
	}

	logger.Debug("fetching activity",
		zap.String("user", user.String()),
		zap.String("endpoint", cfg.GitHub.APIEndpoint),
		zap.String("version", version.Version),
	)

	writer := output.NewWriter(cmd.OutOrStdout())
	defer writer.Close()

	_, err = activity.NewRunner(client, writer, logger).Run(cmd.Context(), user)
	return err
}

// execute runs the command with args and returns the process exit code.
// Every message the user sees, errors included, is written to stdout.
func (a *app) execute(ctx context.Context, args []string) int {
	cmd := a.newRootCommand()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if interrupted(ctx, err) {
		fmt.Fprintln(a.stdout, "\nProgram interrupted by user")
		return 0
	}
	if err == nil {
		return 0
	}

	inspector := giterror.NewErrorChainInspector(giterror.NewInspector())
	for _, line := range describeError(err, a.user, inspector) {
		fmt.Fprintln(a.stdout, line)
	}
	return mapErrorToExitCode(err)
}

// interrupted reports whether the run was stopped by a signal. Any failure
// after the signal arrived is reported as an interruption.
func interrupted(ctx context.Context, err error) bool {
	return errors.Is(err, activityerrors.ErrInterrupted) || ctx.Err() != nil
}
