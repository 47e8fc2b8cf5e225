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

package command_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/retr0h/repeat/internal/exec"
	execMocks "github.com/retr0h/repeat/internal/exec/mocks"
	"github.com/retr0h/repeat/internal/provider/command"
)

type ShellPublicTestSuite struct {
	suite.Suite

	mockCtrl    *gomock.Controller
	mockExecMgr *execMocks.MockManager
	sut         *command.Executor
}

func (s *ShellPublicTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockExecMgr = execMocks.NewMockManager(s.mockCtrl)
	s.sut = command.New(slog.Default(), s.mockExecMgr)
}

func (s *ShellPublicTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ShellPublicTestSuite) TestShell() {
	tests := []struct {
		name          string
		params        command.ShellParams
		mockOutcome   *exec.Outcome
		mockError     error
		expectError   bool
		errorContains string
		validate      func(*exec.Outcome)
	}{
		{
			name: "successful shell command",
			params: command.ShellParams{
				Command: "echo hello | tr a-z A-Z",
			},
			mockOutcome: &exec.Outcome{
				Kind:     exec.Exited,
				ExitCode: 0,
			},
			validate: func(o *exec.Outcome) {
				s.Equal(0, o.ExitCode)
			},
		},
		{
			name: "shell command with non-zero exit code",
			params: command.ShellParams{
				Command: "exit 2",
			},
			mockOutcome: &exec.Outcome{
				Kind:     exec.Exited,
				ExitCode: 2,
			},
			validate: func(o *exec.Outcome) {
				s.Equal(2, o.ExitCode)
			},
		},
		{
			name: "shell execution error",
			params: command.ShellParams{
				Command: "bad command",
			},
			mockError:     errors.New("shell failed"),
			expectError:   true,
			errorContains: "shell execution failed",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.mockExecMgr.EXPECT().
				RunCmd(
					command.ShellPath,
					[]string{"-c", tt.params.Command},
				).
				Return(tt.mockOutcome, tt.mockError)

			outcome, err := s.sut.Shell(tt.params)

			if tt.expectError {
				s.Error(err)
				s.Contains(err.Error(), tt.errorContains)
				s.Nil(outcome)
			} else {
				s.NoError(err)
				s.NotNil(outcome)
				if tt.validate != nil {
					tt.validate(outcome)
				}
			}
		})
	}
}

func TestShellPublicTestSuite(t *testing.T) {
	suite.Run(t, new(ShellPublicTestSuite))
}
