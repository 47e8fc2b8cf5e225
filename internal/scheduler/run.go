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

package scheduler

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/retr0h/repeat/internal/config"
	"github.com/retr0h/repeat/internal/exec"
	"github.com/retr0h/repeat/internal/provider/command"
	"github.com/retr0h/repeat/internal/telemetry"
)

// Run launches the configured command until a stop rule fires and returns
// the process exit code. It never kills a running child; cancelling ctx
// stops the loop at the next pacing point or before the next launch, with
// exit code 0.
func (s *Scheduler) Run(
	ctx context.Context,
	cfg config.RunConfig,
) int {
	st := &state{
		remaining: cfg.Times,
		next:      s.clock.Now(),
	}

	mode := cfg.Mode()
	if mode == config.ModeCron {
		schedule, err := config.ParseCron(cfg.Cron)
		if err != nil {
			s.logger.Error("invalid schedule", slog.String("error", err.Error()))
			return 1
		}
		st.schedule = schedule
	}

	s.logger.Debug(
		"starting",
		slog.String("mode", string(mode)),
		slog.Duration("interval", cfg.Interval),
		slog.Int("times", cfg.Times),
		slog.Bool("shell", !cfg.NoShell),
	)

	for iteration := 1; ; iteration++ {
		if ctx.Err() != nil {
			s.logger.Info("interrupted, not launching", slog.Int("iteration", iteration))
			return 0
		}

		if mode == config.ModePrecise {
			st.next = st.next.Add(cfg.Interval)
		}

		itCtx := telemetry.WithIteration(ctx, iteration)
		outcome, err := s.invoke(itCtx, cfg, iteration)
		if err != nil {
			s.logger.ErrorContext(itCtx, "launch failed", slog.String("error", err.Error()))
			return 1
		}

		if code, stop := st.classify(cfg, outcome); stop {
			s.logger.DebugContext(itCtx, "stopping", slog.Int("exit_code", code))
			return code
		}

		if err := s.pace(itCtx, cfg, mode, st); err != nil {
			s.logger.InfoContext(itCtx, "interrupted while waiting")
			return 0
		}
	}
}

// invoke launches one child inside a span.
func (s *Scheduler) invoke(
	ctx context.Context,
	cfg config.RunConfig,
	iteration int,
) (*exec.Outcome, error) {
	ctx, span := s.tracer.Start(
		ctx,
		"repeat.invocation",
		trace.WithAttributes(attribute.Int("repeat.iteration", iteration)),
	)
	defer span.End()

	var (
		outcome *exec.Outcome
		err     error
	)
	if cfg.NoShell {
		outcome, err = s.provider.Exec(command.ExecParams{
			Command: cfg.Args[0],
			Args:    cfg.Args[1:],
		})
	} else {
		outcome, err = s.provider.Shell(command.ShellParams{
			Command: cfg.Command,
		})
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	if outcome == nil {
		err = errors.New("command returned no outcome")
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}

	span.SetAttributes(
		attribute.Int("repeat.pid", outcome.Pid),
		attribute.Int("repeat.exit_code", outcome.ExitCode),
		attribute.String("repeat.kind", outcome.Kind.String()),
	)
	if outcome.Kind == exec.Signaled {
		span.SetAttributes(attribute.String("repeat.signal", outcome.Signal.String()))
	}

	attrs := []any{
		slog.Int("pid", outcome.Pid),
		slog.String("kind", outcome.Kind.String()),
		slog.Int("exit_code", outcome.ExitCode),
		slog.Duration("duration", outcome.Duration),
	}
	if outcome.Kind == exec.Signaled {
		attrs = append(attrs, slog.String("signal", outcome.Signal.String()))
	}
	s.logger.DebugContext(ctx, "invocation finished", attrs...)

	return outcome, nil
}

// classify applies the stop rules in precedence order and reports whether
// the loop should end and with which exit code.
func (st *state) classify(
	cfg config.RunConfig,
	outcome *exec.Outcome,
) (int, bool) {
	switch {
	case outcome.Interrupted():
		return 0, true
	case outcome.ExitCode != 0 && cfg.UntilError:
		return outcome.ExitCode, true
	case outcome.ExitCode == 0 && cfg.UntilSuccess:
		return 0, true
	}

	if cfg.Times > 0 {
		st.remaining--
		if st.remaining <= 0 {
			return outcome.ExitCode, true
		}
	}

	return 0, false
}

// pace sleeps until the next launch is due.
func (s *Scheduler) pace(
	ctx context.Context,
	cfg config.RunConfig,
	mode config.Mode,
	st *state,
) error {
	switch mode {
	case config.ModeNone:
		return ctx.Err()
	case config.ModeWaitBetween:
		st.next = s.clock.Now().Add(cfg.Interval)
	case config.ModeCron:
		st.next = st.schedule.Next(s.clock.Now())
	}

	s.logger.DebugContext(ctx, "waiting", slog.Time("next", st.next))

	return sleepUntil(ctx, s.clock, st.next)
}
