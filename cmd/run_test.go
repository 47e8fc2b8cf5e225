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
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/retr0h/repeat/internal/config"
	"github.com/retr0h/repeat/internal/telemetry"
)

type RunTestSuite struct {
	suite.Suite

	ctx context.Context
}

func (s *RunTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *RunTestSuite) TestRunLoop() {
	tests := []struct {
		name       string
		initFn     func(context.Context, string, telemetry.TracingConfig) (func(context.Context) error, error)
		wantCode   int
		wantStdout string
		wantStderr []string
	}{
		{
			name: "when the tracer cannot be initialized nothing is launched",
			initFn: func(
				context.Context,
				string,
				telemetry.TracingConfig,
			) (func(context.Context) error, error) {
				return nil, errors.New("exporter unavailable")
			},
			wantCode:   1,
			wantStderr: []string{"failed to initialize tracer", "exporter unavailable"},
		},
		{
			name: "when the tracer shutdown fails the run still succeeds",
			initFn: func(
				context.Context,
				string,
				telemetry.TracingConfig,
			) (func(context.Context) error, error) {
				return func(context.Context) error { return errors.New("flush failed") }, nil
			},
			wantCode:   0,
			wantStdout: "ran\n",
			wantStderr: []string{"failed to shut down tracer", "flush failed"},
		},
		{
			name:       "when the tracer initializes the command runs",
			initFn:     telemetry.InitTracer,
			wantCode:   0,
			wantStdout: "ran\n",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			original := initTracer
			defer func() { initTracer = original }()
			initTracer = tt.initFn

			cfg := config.RunConfig{
				Times:   1,
				Args:    []string{"echo", "ran"},
				Command: "echo ran",
			}
			var stdout, stderr bytes.Buffer

			code := runLoop(s.ctx, cfg, strings.NewReader(""), &stdout, &stderr)

			s.Equal(tt.wantCode, code)
			s.Equal(tt.wantStdout, stdout.String())
			for _, want := range tt.wantStderr {
				s.Contains(stderr.String(), want)
			}
		})
	}
}

func TestRunTestSuite(t *testing.T) {
	suite.Run(t, new(RunTestSuite))
}
