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

package command

import (
	"github.com/retr0h/repeat/internal/exec"
)

// Provider implements the methods to launch the repeated command.
type Provider interface {
	// Exec executes a command directly without a shell.
	Exec(params ExecParams) (*exec.Outcome, error)
	// Shell executes a command through /bin/sh -c.
	Shell(params ShellParams) (*exec.Outcome, error)
}

// ExecParams contains parameters for direct command execution.
type ExecParams struct {
	// Command is the executable name or path, resolved through PATH.
	Command string
	// Args are the command arguments.
	Args []string
}

// ShellParams contains parameters for shell command execution.
type ShellParams struct {
	// Command is the full shell command string.
	Command string
}
