// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/leptutil/internal/strutil"
)

// ReplaceResult is the result of the replace command.
type ReplaceResult struct {
	Result string `json:"result"`
	Found  bool   `json:"found"`
	Count  int    `json:"count"`
	Next   int    `json:"next,omitempty"`
}

func newTokenizeCmd(app *App) *cobra.Command {
	var seps string

	cmd := &cobra.Command{
		Use:   "tokenize <text>",
		Short: "Split text into tokens, skipping empty fields",
		Example: `  leptutil tokenize "a,b,,c" --seps ,
  leptutil tokenize -o json "one two  three"`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens := strutil.Tokens(args[0], seps)
			app.diag.InfoInt("tokens found", "tokenize", len(tokens))

			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				if tokens == nil {
					tokens = []string{}
				}
				return p.json(tokens)
			}
			rows := make([][]string, len(tokens))
			for i, tok := range tokens {
				rows[i] = []string{strconv.Itoa(i), tok}
			}
			p.table([]string{"INDEX", "TOKEN"}, rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&seps, "seps", " \t\n", "separator characters")
	return cmd
}

func newRemoveCharsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove-chars <text> <chars>",
		Short: "Remove every occurrence of the given characters",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			result := strutil.RemoveChars(args[0], args[1])
			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(result)
			}
			p.line(result)
			return nil
		},
	}
}

func newReplaceCmd(app *App) *cobra.Command {
	var (
		all bool
		loc int
	)

	cmd := &cobra.Command{
		Use:   "replace <text> <old> <new>",
		Short: "Replace the first occurrence of a substring, or all with --all",
		Example: `  leptutil replace "one two one" one 1 --loc 1
  leptutil replace --all "a.b.c" . ""`,
		Args: usageArgs(cobra.ExactArgs(3)),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, sub1, sub2 := args[0], args[1], args[2]
			if all && cmd.Flags().Changed("loc") {
				return usageErrorf("--loc cannot be combined with --all")
			}

			res := ReplaceResult{Result: src}
			if all {
				dest, count, err := strutil.ReplaceEachSubstr(src, sub1, sub2)
				if err != nil {
					return err
				}
				if count > 0 {
					res = ReplaceResult{Result: dest, Found: true, Count: count}
				}
				app.diag.InfoInt("substrings replaced", "replace", count)
			} else {
				dest, next, found, err := strutil.ReplaceSubstr(src, sub1, sub2, loc)
				if err != nil {
					return err
				}
				if found {
					res = ReplaceResult{Result: dest, Found: true, Count: 1, Next: next}
					app.diag.InfoInt("next search offset", "replace", next)
				} else {
					app.diag.Warning("substring not found", "replace")
				}
			}

			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(res)
			}
			p.line(res.Result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "replace every occurrence")
	cmd.Flags().IntVar(&loc, "loc", 0, "byte offset where the search starts")
	return cmd
}
