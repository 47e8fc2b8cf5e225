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

// Package config holds the resolved, immutable run configuration.
package config

import (
	"time"
)

// Mode is the pacing discipline derived from a RunConfig.
type Mode string

const (
	// ModeNone re-launches immediately; no interval and no cron schedule.
	ModeNone Mode = "none"
	// ModeWaitBetween measures the interval from the end of one run to the
	// start of the next.
	ModeWaitBetween Mode = "wait-between"
	// ModePrecise measures the interval from a fixed start time.
	ModePrecise Mode = "precise"
	// ModeCron launches on a calendar schedule.
	ModeCron Mode = "cron"
)

// RunConfig represents everything the scheduler needs to run. It is built
// once by Flags.Resolve and passed around by value.
type RunConfig struct {
	// Interval between invocations. Zero disables pacing.
	Interval time.Duration `validate:"gte=0s,excluded_with=Cron"`
	// Times bounds the number of invocations; zero means unbounded.
	Times int `validate:"gte=0"`
	// UntilError stops the loop on the first non-zero exit.
	UntilError bool
	// UntilSuccess stops the loop on the first zero exit.
	UntilSuccess bool
	// Precise selects drift-corrected scheduling.
	Precise bool `validate:"excluded_with=Cron"`
	// NoShell runs Args directly instead of through /bin/sh -c.
	NoShell bool
	// Cron is an optional cron expression used instead of Interval.
	Cron string `validate:"omitempty,cron_spec"`
	// Args is the command and its arguments as given on the command line.
	Args []string `validate:"min=1"`
	// Command is Args joined by single spaces, handed to the shell.
	Command string

	// Debug enables debug logging and the resolved-config dump.
	Debug bool
	// JSON selects JSON log output.
	JSON bool
	// Trace emits one span per invocation.
	Trace bool
}

// Mode reports the pacing discipline.
func (c RunConfig) Mode() Mode {
	switch {
	case c.Cron != "":
		return ModeCron
	case c.Interval == 0:
		return ModeNone
	case c.Precise:
		return ModePrecise
	default:
		return ModeWaitBetween
	}
}

// Flags is the raw, string-typed view of the command line (and REPEAT_*
// environment) as unmarshalled by viper.
type Flags struct {
	Interval     string `mapstructure:"interval"`
	Times        string `mapstructure:"times"`
	UntilError   bool   `mapstructure:"untilerr"`
	UntilSuccess bool   `mapstructure:"untilsuccess"`
	Precise      bool   `mapstructure:"precise"`
	NoShell      bool   `mapstructure:"noshell"`
	Cron         string `mapstructure:"cron"`
	Debug        bool   `mapstructure:"debug"`
	JSON         bool   `mapstructure:"json"`
	Trace        bool   `mapstructure:"trace"`
}
