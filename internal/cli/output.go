// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// JSONResponse is the envelope written for --output json.
type JSONResponse struct {
	Command string `json:"command"`
	Data    any    `json:"data"`
}

// printer handles table or JSON output.
type printer struct {
	format  string
	command string
	w       io.Writer
	styles  styles
}

func newPrinter(cmd *cobra.Command, w io.Writer) *printer {
	return &printer{
		format:  outputFormat(cmd),
		command: cmd.Name(),
		w:       w,
		styles:  newStyles(w),
	}
}

// isJSON reports whether results should be written with json.
func (p *printer) isJSON() bool {
	return p.format == "json"
}

// json writes v inside a JSONResponse as indented JSON.
func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(JSONResponse{Command: p.command, Data: v})
}

// line writes s followed by a newline.
func (p *printer) line(s string) {
	_, _ = fmt.Fprintln(p.w, s)
}

// table writes header and rows in aligned columns. Column widths are
// measured in terminal cells so wide characters line up.
func (p *printer) table(header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, col := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(col))
			}
		}
	}

	p.line(p.styles.render(p.styles.header, formatRow(header, widths)))
	for _, row := range rows {
		p.line(formatRow(row, widths))
	}
}

func formatRow(cols []string, widths []int) string {
	var b strings.Builder
	for i, col := range cols {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == len(cols)-1 || i >= len(widths) {
			b.WriteString(col)
			continue
		}
		b.WriteString(runewidth.FillRight(col, widths[i]))
	}
	return b.String()
}

// kv prints a key-value detail view.
func (p *printer) kv(pairs [][2]string) {
	width := 0
	for _, pair := range pairs {
		width = max(width, runewidth.StringWidth(pair[0])+1)
	}
	for _, pair := range pairs {
		label := runewidth.FillRight(pair[0]+":", width)
		p.line(p.styles.render(p.styles.label, label) + "  " + pair[1])
	}
}
