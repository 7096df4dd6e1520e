// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jeranaias/leptutil/internal/bytesutil"
	"github.com/jeranaias/leptutil/internal/diag"
	"github.com/jeranaias/leptutil/internal/endian"
	"github.com/jeranaias/leptutil/internal/fileio"
)

// SwapResult is the result of the swap command.
type SwapResult struct {
	Bits      int    `json:"bits"`
	HostOrder string `json:"host_order"`
	Target    string `json:"target"`
	Input     string `json:"input"`
	Output    string `json:"output"`
}

func newFindCmd(app *App) *cobra.Command {
	var isHex bool

	cmd := &cobra.Command{
		Use:   "find <file> <sequence>",
		Short: "Print every offset of a byte sequence in a file",
		Example: `  leptutil find page.pnm P5
  leptutil find --hex image.tif 49492a00`,
		Args: usageArgs(cobra.ExactArgs(2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq := []byte(args[1])
			if isHex {
				decoded, err := hex.DecodeString(args[1])
				if err != nil {
					return usageErrorf("invalid hex sequence '%s': %v", args[1], err)
				}
				seq = decoded
			}
			if len(seq) == 0 {
				return usageErrorf("sequence must not be empty")
			}

			data, err := fileio.ReadFile(args[0])
			if err != nil {
				return err
			}
			offsets := findAll(data, seq)
			if len(offsets) == 0 {
				return diag.Errorf("find", diag.ErrNotFound, "sequence not found in %s", args[0])
			}
			app.diag.InfoInt("matches", "find", len(offsets))

			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(offsets)
			}
			for _, off := range offsets {
				p.line(strconv.Itoa(off))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&isHex, "hex", false, "sequence is given as hex digits")
	return cmd
}

// findAll returns the offsets of every occurrence of seq in data,
// including overlapping ones.
func findAll(data, seq []byte) []int {
	var offsets []int
	for start := 0; start < len(data); {
		off, found := bytesutil.FindSequence(data[start:], seq)
		if !found {
			break
		}
		offsets = append(offsets, start+off)
		start += off + 1
	}
	return offsets
}

func newSwapCmd(app *App) *cobra.Command {
	var (
		bits int
		to   string
	)

	cmd := &cobra.Command{
		Use:   "swap <value>",
		Short: "Convert a 16 or 32 bit value to big or little endian order",
		Example: `  leptutil swap 0x1234
  leptutil swap --bits 32 --to little 0x11223344`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bits != 16 && bits != 32 {
				return usageErrorf("invalid --bits %d, must be 16 or 32", bits)
			}
			if to != "big" && to != "little" {
				return usageErrorf("invalid --to '%s', must be one of: big, little", to)
			}
			v, err := strconv.ParseUint(args[0], 0, bits)
			if err != nil {
				return usageErrorf("invalid %d-bit value '%s'", bits, args[0])
			}

			res := SwapResult{Bits: bits, HostOrder: hostOrder(), Target: to}
			if bits == 16 {
				out := uint16(v)
				if to == "big" {
					out = endian.ConvertOnBigEnd16(out)
				} else {
					out = endian.ConvertOnLittleEnd16(out)
				}
				res.Input, res.Output = fmt.Sprintf("0x%04x", v), fmt.Sprintf("0x%04x", out)
			} else {
				out := uint32(v)
				if to == "big" {
					out = endian.ConvertOnBigEnd32(out)
				} else {
					out = endian.ConvertOnLittleEnd32(out)
				}
				res.Input, res.Output = fmt.Sprintf("0x%08x", v), fmt.Sprintf("0x%08x", out)
			}

			p := newPrinter(cmd, app.Stdout)
			if p.isJSON() {
				return p.json(res)
			}
			p.kv([][2]string{
				{"Host order", res.HostOrder},
				{"Target", res.Target},
				{"Input", res.Input},
				{"Output", res.Output},
			})
			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 16, "value width: 16 or 32")
	cmd.Flags().StringVar(&to, "to", "big", "target byte order: big or little")
	return cmd
}

func hostOrder() string {
	if endian.HostBigEndian {
		return "big"
	}
	return "little"
}
