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

// Package cli holds terminal helpers shared by the commands.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors for terminal UI rendering.
var (
	Purple = lipgloss.Color("99")
	Gray   = lipgloss.Color("245")
	Teal   = lipgloss.Color("#06ffa5")
)

// Reusable inline styles for compact key-value output.
var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(Purple)
	valueStyle = lipgloss.NewStyle().Foreground(Teal)

	// DimStyle is a muted style for secondary text.
	DimStyle = lipgloss.NewStyle().Foreground(Gray)
)

// KVMinColWidth is the minimum visual width for each key-value column.
const KVMinColWidth = 20

// PrintKV writes key-value pairs on a single indented line to w, padding
// every column to the widest pair. Nothing is written for an empty or odd
// list.
func PrintKV(
	w io.Writer,
	pairs ...string,
) {
	if len(pairs)%2 != 0 || len(pairs) == 0 {
		return
	}

	rendered := make([]string, 0, len(pairs)/2)
	maxWidth := KVMinColWidth
	for i := 0; i < len(pairs); i += 2 {
		pair := labelStyle.Render(pairs[i]+":") + " " + valueStyle.Render(pairs[i+1])
		rendered = append(rendered, pair)
		if w := lipgloss.Width(pair); w > maxWidth {
			maxWidth = w
		}
	}

	var line strings.Builder
	line.WriteString("  ")
	for i, pair := range rendered {
		line.WriteString(pair)
		if i < len(rendered)-1 {
			pad := maxWidth - lipgloss.Width(pair) + 4
			line.WriteString(strings.Repeat(" ", pad))
		}
	}
	_, _ = fmt.Fprintln(w, line.String())
}

// PrintHeader writes a dimmed section title to w.
func PrintHeader(
	w io.Writer,
	title string,
) {
	_, _ = fmt.Fprintln(w, DimStyle.Render(title))
}
