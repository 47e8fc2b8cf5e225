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

// Package scheduler runs the repeat loop: launch, classify, pace.
package scheduler

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/retr0h/repeat/internal/provider/command"
)

// TracerName identifies spans emitted by the scheduler.
const TracerName = "github.com/retr0h/repeat/internal/scheduler"

// WithClock replaces the wall clock, used by tests.
func WithClock(
	clock Clock,
) Option {
	return func(s *Scheduler) {
		s.clock = clock
	}
}

// WithTracer replaces the global tracer.
func WithTracer(
	tracer trace.Tracer,
) Option {
	return func(s *Scheduler) {
		s.tracer = tracer
	}
}

// New factory to create a new Scheduler instance.
func New(
	logger *slog.Logger,
	provider command.Provider,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		logger:   logger,
		provider: provider,
		clock:    realClock{},
		tracer:   otel.Tracer(TracerName),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
