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

// Package exec spawns child processes and reports how they terminated.
package exec

import (
	"io"
	"log/slog"
	"os"
)

// Option configures an Exec.
type Option func(*Exec)

// WithStdio overrides the streams handed to the child. By default the child
// inherits the parent's stdin, stdout and stderr.
func WithStdio(
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
) Option {
	return func(e *Exec) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// New factory to create a new Exec instance.
func New(
	logger *slog.Logger,
	opts ...Option,
) *Exec {
	e := &Exec{
		logger: logger,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}
