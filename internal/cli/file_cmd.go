// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/leptutil/internal/bytesutil"
	"github.com/jeranaias/leptutil/internal/fileio"
	"github.com/jeranaias/leptutil/internal/owned"
	"github.com/jeranaias/leptutil/internal/strutil"
)

// FileInfo is the result of cat --size and write.
type FileInfo struct {
	Path  string `json:"path"`
	Bytes int64  `json:"bytes"`
}

func newCatCmd(app *App) *cobra.Command {
	var sizeOnly bool

	cmd := &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a file, falling back to its bare name in the working directory",
		Example: `  leptutil cat /archive/scans/page1.pnm
  leptutil cat --size page1.pnm`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := fileio.OpenReadStream(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			if sizeOnly {
				n, err := fileio.NBytes(f)
				if err != nil {
					return err
				}
				p := newPrinter(cmd, app.Stdout)
				if p.isJSON() {
					return p.json(FileInfo{Path: f.Name(), Bytes: n})
				}
				p.line(strconv.FormatInt(n, 10))
				return nil
			}

			data, err := fileio.ReadStream(f)
			if err != nil {
				return err
			}
			app.diag.InfoInt("bytes read", "cat", len(data))
			_, err = app.Stdout.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&sizeOnly, "size", false, "print the size in bytes instead of the contents")
	return cmd
}

func newWriteCmd(app *App) *cobra.Command {
	var (
		appendMode bool
		text       string
	)

	cmd := &cobra.Command{
		Use:   "write <file>",
		Short: "Write stdin, or --text plus a newline, to a file",
		Example: `  echo hello | leptutil write out.txt
  leptutil write --append --text "one more line" out.txt`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			if cmd.Flags().Changed("text") {
				data = []byte(strutil.Join(text, "\n"))
			} else {
				var err error
				if data, err = readAll(app.Stdin); err != nil {
					return err
				}
			}

			mode := fileio.ModeWrite
			if appendMode {
				mode = fileio.ModeAppend
			}
			opts, err := app.cfg.WriteOptions()
			if err != nil {
				return err
			}
			if err := fileio.WriteFileWithOptions(args[0], mode, data, opts); err != nil {
				return err
			}
			app.diag.InfoInt("bytes written", "write", len(data))

			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(FileInfo{Path: args[0], Bytes: int64(len(data))})
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&appendMode, "append", "a", false, "append instead of replacing the file")
	cmd.Flags().StringVar(&text, "text", "", "write this text followed by a newline instead of stdin")
	return cmd
}

// readAll reads r to EOF, doubling the buffer as it fills.
func readAll(r io.Reader) ([]byte, error) {
	const initialSize = 4096

	h := owned.New(make([]byte, initialSize))
	n := 0
	for {
		buf, _ := h.Get()
		if n == len(buf) {
			grown, err := bytesutil.ReallocNew(h, n, 2*len(buf))
			if err != nil {
				return nil, err
			}
			h.Replace(grown)
			buf = grown
		}

		m, err := r.Read(buf[n:])
		n += m
		if errors.Is(err, io.EOF) {
			buf, _ = h.Take()
			return buf[:n], nil
		}
		if err != nil {
			return nil, err
		}
	}
}
