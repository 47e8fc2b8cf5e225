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

package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/retr0h/repeat/internal/cli"
	"github.com/retr0h/repeat/internal/config"
	"github.com/retr0h/repeat/internal/exec"
	"github.com/retr0h/repeat/internal/provider/command"
	"github.com/retr0h/repeat/internal/scheduler"
	"github.com/retr0h/repeat/internal/telemetry"
)

const serviceName = "repeat"

// initTracer is the tracer setup used by runLoop (injectable for testing).
var initTracer = telemetry.InitTracer

// runLoop builds the component graph for cfg and runs the scheduler.
func runLoop(
	ctx context.Context,
	cfg config.RunConfig,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) int {
	logger := newLogger(cfg, stderr)

	if cfg.Debug {
		printConfig(stderr, cfg)
	}

	shutdown, err := initTracer(ctx, serviceName, telemetry.TracingConfig{
		Enabled: cfg.Trace,
		Writer:  stderr,
	})
	if err != nil {
		logger.Error("failed to initialize tracer", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			logger.Warn("failed to shut down tracer", slog.String("error", err.Error()))
		}
	}()

	execManager := exec.New(logger, exec.WithStdio(stdin, stdout, stderr))
	provider := command.New(logger, execManager)

	return scheduler.New(logger, provider).Run(ctx, cfg)
}

// newLogger returns the session logger. Logs always go to stderr so the
// child's stdout is left untouched.
func newLogger(
	cfg config.RunConfig,
	w io.Writer,
) *slog.Logger {
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.JSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
			NoColor:    !isTerminal(w),
		})
	}

	handler = telemetry.NewTraceHandler(handler)

	return slog.New(handler).With(
		slog.String("session_id", uuid.NewString()),
		slog.String("host", cli.Hostname()),
	)
}

func isTerminal(
	w io.Writer,
) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

func printConfig(
	w io.Writer,
	cfg config.RunConfig,
) {
	shell := command.ShellPath
	if cfg.NoShell {
		shell = "none"
	}
	cron := cfg.Cron
	if cron == "" {
		cron = "none"
	}

	cli.PrintHeader(w, "repeat configuration")
	cli.PrintKV(w, "command", cfg.Command)
	cli.PrintKV(w, "mode", string(cfg.Mode()), "shell", shell)
	cli.PrintKV(w, "interval", cfg.Interval.String(), "times", strconv.Itoa(cfg.Times))
	cli.PrintKV(w, "untilerr", strconv.FormatBool(cfg.UntilError),
		"untilsuccess", strconv.FormatBool(cfg.UntilSuccess))
	cli.PrintKV(w, "cron", cron)
}
