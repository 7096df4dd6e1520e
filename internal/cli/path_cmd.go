// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/jeranaias/leptutil/internal/pathutil"
)

// PathParts is the result of split-dir and split-ext.
type PathParts struct {
	Head string `json:"head"`
	Tail string `json:"tail"`
}

func newSplitDirCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "split-dir <path>",
		Short: "Split a path into directory and tail",
		Example: `  leptutil split-dir /usr/local/lib/libfoo.so
  leptutil split-dir -o json photo.png`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, tail := pathutil.SplitAtDirectory(args[0])
			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(PathParts{Head: dir, Tail: tail})
			}
			p.kv([][2]string{{"Dir", dir}, {"Tail", tail}})
			return nil
		},
	}
}

func newSplitExtCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "split-ext <path>",
		Short: "Split a path at the extension of its last component",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, ext := pathutil.SplitAtExtension(args[0])
			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(PathParts{Head: base, Tail: ext})
			}
			p.kv([][2]string{{"Base", base}, {"Ext", ext}})
			return nil
		},
	}
}

func newJoinPathCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "join-path <dir> <name>",
		Short: "Join a directory and a file name",
		Args:  usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := pathutil.GenPathname(args[0], args[1])
			if err != nil {
				return err
			}
			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(path)
			}
			p.line(path)
			return nil
		},
	}
}
