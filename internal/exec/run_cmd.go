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

package exec

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"
	"time"
)

// RunCmd executes the provided command with the child attached to the
// configured stdio. There is no timeout: the call blocks until the child
// terminates. Only start and wait failures are returned as errors.
func (e *Exec) RunCmd(
	name string,
	args []string,
) (*Outcome, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	start := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start command: %w", err)
	}

	err := cmd.Wait()
	duration := time.Since(start)

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to wait for command: %w", err)
	}

	outcome := outcomeFromState(cmd.ProcessState, duration)

	e.logger.Debug(
		"exec",
		slog.String("command", strings.Join(cmd.Args, " ")),
		slog.Int("pid", outcome.Pid),
		slog.String("kind", outcome.Kind.String()),
		slog.Int("exit_code", outcome.ExitCode),
		slog.Duration("duration", outcome.Duration),
	)

	return outcome, nil
}

func outcomeFromState(
	state *os.ProcessState,
	duration time.Duration,
) *Outcome {
	outcome := &Outcome{
		Kind:     Exited,
		ExitCode: state.ExitCode(),
		Pid:      state.Pid(),
		Duration: duration,
	}

	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		outcome.Kind = Signaled
		outcome.Signal = ws.Signal()
		outcome.ExitCode = 128 + int(ws.Signal())
	}

	return outcome
}
