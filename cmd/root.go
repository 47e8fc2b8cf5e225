// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package cmd wires the command line to the scheduler.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	goversion "github.com/caarlos0/go-version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/retr0h/repeat/internal/config"
)

// Execute runs repeat with the process arguments and exits with the
// resulting status. This is called by main.main().
func Execute(
	info goversion.Info,
) {
	// SIGINT and SIGQUIT are caught, not ignored: an ignored disposition
	// would be inherited by every child.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGQUIT)
	code := Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr, info)
	stop()

	os.Exit(code)
}

// Run parses args, runs the loop and returns the process exit status. The
// child inherits stdin, stdout and stderr; logs go to stderr.
func Run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	info goversion.Info,
) int {
	var code int

	rootCmd := newRootCmd(stdin, stdout, stderr, info, &code)
	// A nil slice makes cobra fall back to os.Args.
	rootCmd.SetArgs(append([]string{}, args...))

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(stderr, "repeat: %s\n", err)
		_, _ = fmt.Fprintln(stderr, "Try 'repeat --help' for more information.")

		return 1
	}

	return code
}

func newRootCmd(
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	info goversion.Info,
	code *int,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "repeat [flags] command [args...]",
		Short: "Repeatedly run a command.",
		Long: `Repeatedly run a command, optionally pacing launches with a fixed
interval or a cron schedule, and stopping after a number of runs or on
the first failure or success.

The command is run through /bin/sh -c with its arguments joined by single
spaces, unless --noshell is given. Options are read up to the first
argument that is not an option; everything after belongs to the command.

Every option can also be set with a REPEAT_ environment variable, e.g.
REPEAT_INTERVAL=5s or REPEAT_TIMES=3.

https://github.com/retr0h/repeat
`,
		Example: `  repeat -i 1 -t 5 date
  repeat -p -i 0.5 -- curl -sf http://localhost:8080/health
  repeat -e -x make test
  repeat -c '*/5 * * * *' ./backup.sh`,
		Args:          cobra.ArbitraryArgs,
		Version:       info.String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd, args)
			if err != nil {
				return err
			}

			*code = runLoop(cmd.Context(), cfg, stdin, stdout, stderr)

			return nil
		},
	}

	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	addFlags(rootCmd.Flags())

	return rootCmd
}

func addFlags(
	flags *pflag.FlagSet,
) {
	// The first argument that is not an option starts the command.
	flags.SetInterspersed(false)

	flags.StringP("interval", "i", "", "Interval between runs in seconds, with an optional d, h, m or s suffix")
	flags.StringP("times", "t", "", "Number of times to run the command (0 runs forever)")
	flags.BoolP("untilerr", "e", false, "Stop when the command exits non-zero")
	flags.BoolP("untilsuccess", "s", false, "Stop when the command exits zero")
	flags.BoolP("precise", "p", false, "Measure the interval from launch to launch")
	flags.BoolP("noshell", "x", false, "Run the command directly instead of through /bin/sh")
	flags.StringP("cron", "c", "", "Launch on a cron schedule instead of an interval")
	flags.BoolP("debug", "d", false, "Enable debug logging and print the resolved configuration")
	flags.BoolP("json", "j", false, "Write logs as JSON")
	flags.Bool("trace", false, "Write one trace span per run to stderr")
}

// resolve binds the flags and the REPEAT_* environment into a fresh viper
// instance and resolves them into a RunConfig.
func resolve(
	cmd *cobra.Command,
	args []string,
) (config.RunConfig, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix("repeat")
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return config.RunConfig{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	var flags config.Flags
	if err := v.Unmarshal(&flags); err != nil {
		return config.RunConfig{}, fmt.Errorf("%w: %w", config.ErrUsage, err)
	}

	return flags.Resolve(args)
}
