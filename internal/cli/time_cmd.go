// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/leptutil/internal/fileio"
	"github.com/jeranaias/leptutil/internal/timer"
)

// TimeResult is the result of the time command.
type TimeResult struct {
	Source  string  `json:"source"`
	Repeats int     `json:"repeats"`
	Bytes   int     `json:"bytes"`
	Seconds float64 `json:"seconds"`
}

func newTimeCmd(app *App) *cobra.Command {
	var (
		repeat int
		source string
	)

	cmd := &cobra.Command{
		Use:   "time <file>",
		Short: "Measure the time taken to read a file repeatedly",
		Example: `  leptutil time --repeat 100 page.pnm
  leptutil time --source wall big.tif`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if repeat < 1 {
				return usageErrorf("invalid --repeat %d, must be at least 1", repeat)
			}
			if !cmd.Flags().Changed("source") {
				source = app.cfg.Timer.Source
			}
			src, err := timer.ParseSource(source)
			if err != nil {
				return &UsageError{Err: err}
			}

			var size int
			t := timer.Start(src)
			for i := 0; i < repeat; i++ {
				data, err := fileio.ReadFile(args[0])
				if err != nil {
					return err
				}
				size = len(data)
			}
			res := TimeResult{Source: source, Repeats: repeat, Bytes: size, Seconds: t.Stop()}
			app.diag.InfoFloat("elapsed time (sec)", "time", float32(res.Seconds))

			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(res)
			}
			p.kv([][2]string{
				{"Source", res.Source},
				{"Repeats", strconv.Itoa(res.Repeats)},
				{"Bytes", strconv.Itoa(res.Bytes)},
				{"Elapsed", fmt.Sprintf("%7.3f sec", res.Seconds)},
			})
			return nil
		},
	}

	cmd.Flags().IntVarP(&repeat, "repeat", "n", 1, "number of reads")
	cmd.Flags().StringVar(&source, "source", "cpu", "clock: cpu or wall (default from config)")
	return cmd
}
