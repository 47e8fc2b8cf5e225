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
	"fmt"
	"math"
	"strconv"
	"time"
)

// unitSeconds maps the single-letter interval suffixes to seconds.
var unitSeconds = map[byte]float64{
	'd': 86400,
	'h': 3600,
	'm': 60,
	's': 1,
}

// ParseInterval parses a floating-point number of seconds with an optional
// single trailing unit letter (d, h, m or s), e.g. "2h", "1.5m", "0.25".
// The result is rounded to the nearest nanosecond.
func ParseInterval(
	raw string,
) (time.Duration, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: interval must not be empty", ErrUsage)
	}

	number := raw
	multiplier := 1.0
	last := raw[len(raw)-1]
	if last < '0' || last > '9' {
		m, ok := unitSeconds[last]
		if !ok && last != '.' {
			return 0, fmt.Errorf(
				"%w: bad unit for interval %q - must be one of d, h, m, or s",
				ErrUsage,
				raw,
			)
		}
		if ok {
			number = raw[:len(raw)-1]
			multiplier = m
		}
	}

	value, err := strconv.ParseFloat(number, 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: invalid interval %q", ErrUsage, raw)
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: interval %q must not be negative", ErrUsage, raw)
	}

	// float64(math.MaxInt64) is exactly 2^63, one past the largest Duration.
	ns := math.Round(value * multiplier * float64(time.Second))
	if ns >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: interval %q is too large", ErrUsage, raw)
	}

	return time.Duration(ns), nil
}
