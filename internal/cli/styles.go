// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Styling for table and detail output.
//
// Colors are disabled for non-TTY output and when NO_COLOR is set.

package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// styles holds the lipgloss styles for one output stream.
type styles struct {
	enabled bool
	header  lipgloss.Style
	label   lipgloss.Style
}

func newStyles(w io.Writer) styles {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(w) {
		return styles{}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		enabled: true,
		header:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")), // Cyan
		label:   r.NewStyle().Foreground(lipgloss.Color("245")),           // Light gray
	}
}

// render applies style only when colors are enabled.
func (s styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
