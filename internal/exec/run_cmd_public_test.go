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

package exec_test

import (
	"bytes"
	"log/slog"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/repeat/internal/exec"
)

type RunCmdPublicTestSuite struct {
	suite.Suite

	logger *slog.Logger
}

func (suite *RunCmdPublicTestSuite) SetupTest() {
	suite.logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func (suite *RunCmdPublicTestSuite) TestRunCmd() {
	tests := []struct {
		name            string
		command         string
		args            []string
		expectError     bool
		errorContains   string
		validateOutcome func(*exec.Outcome, string)
	}{
		{
			name:    "successful command writes to inherited stdout",
			command: "echo",
			args:    []string{"hello"},
			validateOutcome: func(o *exec.Outcome, stdout string) {
				suite.Equal("hello\n", stdout)
				suite.Equal(exec.Exited, o.Kind)
				suite.Equal(0, o.ExitCode)
				suite.Positive(o.Pid)
				suite.GreaterOrEqual(o.Duration.Nanoseconds(), int64(0))
			},
		},
		{
			name:    "command with non-zero exit code",
			command: "/bin/sh",
			args:    []string{"-c", "exit 42"},
			validateOutcome: func(o *exec.Outcome, _ string) {
				suite.Equal(exec.Exited, o.Kind)
				suite.Equal(42, o.ExitCode)
				suite.False(o.Interrupted())
			},
		},
		{
			name:    "command terminated by SIGTERM",
			command: "/bin/sh",
			args:    []string{"-c", "kill -TERM $$"},
			validateOutcome: func(o *exec.Outcome, _ string) {
				suite.Equal(exec.Signaled, o.Kind)
				suite.Equal(syscall.SIGTERM, o.Signal)
				suite.Equal(143, o.ExitCode)
				suite.False(o.Interrupted())
			},
		},
		{
			name:    "command terminated by SIGKILL",
			command: "/bin/sh",
			args:    []string{"-c", "kill -KILL $$"},
			validateOutcome: func(o *exec.Outcome, _ string) {
				suite.Equal(exec.Signaled, o.Kind)
				suite.Equal(syscall.SIGKILL, o.Signal)
				suite.Equal(137, o.ExitCode)
			},
		},
		{
			name:          "command not found",
			command:       "nonexistent-command-xyz",
			args:          []string{},
			expectError:   true,
			errorContains: "failed to start command",
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			var stdout, stderr bytes.Buffer
			em := exec.New(suite.logger, exec.WithStdio(nil, &stdout, &stderr))

			outcome, err := em.RunCmd(tc.command, tc.args)

			if tc.expectError {
				suite.Require().Error(err)
				suite.Require().Contains(err.Error(), tc.errorContains)
				suite.Nil(outcome)
			} else {
				suite.Require().NoError(err)
				suite.Require().NotNil(outcome)
				if tc.validateOutcome != nil {
					tc.validateOutcome(outcome, stdout.String())
				}
			}
		})
	}
}

func (suite *RunCmdPublicTestSuite) TestInterrupted() {
	tests := []struct {
		name    string
		outcome exec.Outcome
		want    bool
	}{
		{
			name:    "when killed by SIGINT",
			outcome: exec.Outcome{Kind: exec.Signaled, Signal: syscall.SIGINT, ExitCode: 130},
			want:    true,
		},
		{
			name:    "when killed by SIGQUIT",
			outcome: exec.Outcome{Kind: exec.Signaled, Signal: syscall.SIGQUIT, ExitCode: 131},
			want:    true,
		},
		{
			name:    "when killed by SIGTERM",
			outcome: exec.Outcome{Kind: exec.Signaled, Signal: syscall.SIGTERM, ExitCode: 143},
			want:    false,
		},
		{
			name:    "when exited with 130",
			outcome: exec.Outcome{Kind: exec.Exited, ExitCode: 130},
			want:    false,
		},
	}

	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.Equal(tc.want, tc.outcome.Interrupted())
		})
	}
}

func (suite *RunCmdPublicTestSuite) TestKindString() {
	suite.Equal("exited", exec.Exited.String())
	suite.Equal("signaled", exec.Signaled.String())
	suite.Equal("kind(7)", exec.Kind(7).String())
}

func TestRunCmdPublicTestSuite(t *testing.T) {
	suite.Run(t, new(RunCmdPublicTestSuite))
}
