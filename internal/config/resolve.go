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

package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/retr0h/repeat/internal/validation"
)

// Resolve turns the raw flags plus the positional command into a validated
// RunConfig. Every error wraps ErrUsage.
func (f Flags) Resolve(
	args []string,
) (RunConfig, error) {
	if len(args) == 0 {
		return RunConfig{}, fmt.Errorf("%w: a command is required", ErrUsage)
	}

	interval := f.Interval
	if interval == "" {
		interval = "0"
	}
	d, err := ParseInterval(interval)
	if err != nil {
		return RunConfig{}, err
	}

	times, err := parseTimes(f.Times)
	if err != nil {
		return RunConfig{}, err
	}

	cfg := RunConfig{
		Interval:     d,
		Times:        times,
		UntilError:   f.UntilError,
		UntilSuccess: f.UntilSuccess,
		Precise:      f.Precise,
		NoShell:      f.NoShell,
		Cron:         strings.TrimSpace(f.Cron),
		Args:         append([]string(nil), args...),
		Command:      JoinCommand(args),
		Debug:        f.Debug,
		JSON:         f.JSON,
		Trace:        f.Trace,
	}

	if err := Validate(&cfg); err != nil {
		return RunConfig{}, err
	}

	return cfg, nil
}

// JoinCommand concatenates the command and its arguments with exactly one
// space per boundary. No quoting or escaping is applied: an argument that
// contains spaces is re-split by the shell.
func JoinCommand(
	args []string,
) string {
	return strings.Join(args, " ")
}

// Validate checks the invariants of a RunConfig.
func Validate(
	cfg *RunConfig,
) error {
	if msg, ok := validation.Struct(cfg); !ok {
		return fmt.Errorf("%w: %s", ErrUsage, msg)
	}

	return nil
}

func parseTimes(
	raw string,
) (int, error) {
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: times %q is out of range", ErrUsage, raw)
		}

		return 0, fmt.Errorf("%w: invalid times %q", ErrUsage, raw)
	}

	if n < 0 {
		return 0, fmt.Errorf("%w: times %q must not be negative", ErrUsage, raw)
	}

	return n, nil
}
