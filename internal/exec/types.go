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
	"fmt"
	"io"
	"log/slog"
	"syscall"
	"time"
)

// Manager spawns a command and blocks until it terminates.
type Manager interface {
	// RunCmd starts name with args attached to the manager's stdio and
	// waits for it. The error is non-nil only when the process could not be
	// started or waited on; a non-zero exit is reported through the Outcome.
	RunCmd(name string, args []string) (*Outcome, error)
}

// Exec runs commands on the local host, one at a time.
type Exec struct {
	logger *slog.Logger

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Kind tags how a child process terminated.
type Kind int

const (
	// Exited means the child returned an exit status.
	Exited Kind = iota
	// Signaled means the child was terminated by a signal.
	Signaled
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case Exited:
		return "exited"
	case Signaled:
		return "signaled"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome describes a terminated child process.
type Outcome struct {
	// Kind is Exited or Signaled.
	Kind Kind
	// ExitCode is the exit status. For Signaled it is 128 plus the
	// signal number, as a shell would report it.
	ExitCode int
	// Signal is the terminating signal; only valid for Signaled.
	Signal syscall.Signal
	// Pid is the process id the child ran as.
	Pid int
	// Duration is the wall time between start and reap.
	Duration time.Duration
}

// Interrupted reports whether the child was killed by SIGINT or SIGQUIT,
// i.e. the user asked it to stop from the terminal.
func (o *Outcome) Interrupted() bool {
	return o.Kind == Signaled &&
		(o.Signal == syscall.SIGINT || o.Signal == syscall.SIGQUIT)
}
