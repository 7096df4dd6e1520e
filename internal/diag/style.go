// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diag

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode selects when severity labels are colored.
type ColorMode string

const (
	// ColorAuto colors labels only when the writer is a terminal and
	// NO_COLOR is unset.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors labels regardless of the writer.
	ColorAlways ColorMode = "always"
	// ColorNever never colors labels.
	ColorNever ColorMode = "never"
)

// labelStyles renders the leading severity word of a line. A zero value
// renders plain text.
type labelStyles struct {
	enabled bool
	err     lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
}

func newLabelStyles(w io.Writer, mode ColorMode) labelStyles {
	var profile termenv.Profile
	switch mode {
	case ColorAlways:
		profile = termenv.ANSI256
	case ColorAuto, "":
		if os.Getenv("NO_COLOR") != "" || !isTerminal(w) {
			return labelStyles{}
		}
		profile = termenv.NewOutput(w).EnvColorProfile()
		if profile == termenv.Ascii {
			return labelStyles{}
		}
	default:
		return labelStyles{}
	}

	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return labelStyles{
		enabled: true,
		err:     r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
		warning: r.NewStyle().Foreground(lipgloss.Color("214")),            // Yellow/Orange
		info:    r.NewStyle().Foreground(lipgloss.Color("75")),             // Blue
	}
}

func (s labelStyles) render(sev Severity) string {
	label := sev.Label()
	if !s.enabled {
		return label
	}
	switch sev {
	case SeverityError:
		return s.err.Render(label)
	case SeverityWarning:
		return s.warning.Render(label)
	default:
		return s.info.Render(label)
	}
}

// isTerminal reports whether w is a file attached to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
