// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bytesutil

import (
	"github.com/jeranaias/leptutil/internal/diag"
	"github.com/jeranaias/leptutil/internal/owned"
)

// FindSequence returns the offset of the first occurrence of seq in data.
// data and seq may contain zero bytes. When seq is absent, empty or longer
// than data, found is false and offset is 0.
func FindSequence(data, seq []byte) (offset int, found bool) {
	seqlen := len(seq)
	if seqlen == 0 {
		return 0, false
	}
	// Last start position that leaves room for the whole sequence; a
	// non-positive bound means nothing is scanned.
	lastpos := len(data) - seqlen + 1
	for i := 0; i < lastpos; i++ {
		if data[i] != seq[0] {
			continue
		}
		j := 1
		for j < seqlen && data[i+j] == seq[j] {
			j++
		}
		if j == seqlen {
			return i, true
		}
	}
	return 0, false
}

// ReallocNew moves the block held by h into a new zero-filled block of
// newsize bytes, copying min(oldsize, newsize) bytes, and returns it.
// oldsize is clamped to the length of the held block.
//
// h is always empty on return:
//   - newsize <= 0 releases the held block and returns nil
//   - an empty h just returns a zero-filled block
func ReallocNew(h *owned.Handle[[]byte], oldsize, newsize int) ([]byte, error) {
	if h == nil {
		return nil, diag.Errorf("bytesutil.ReallocNew", diag.ErrNotDefined, "input data not defined")
	}

	old, ok := h.Take()
	if newsize <= 0 {
		return nil, nil
	}

	newdata := make([]byte, newsize)
	if !ok {
		return newdata, nil
	}
	n := min(oldsize, newsize, len(old))
	if n > 0 {
		copy(newdata, old[:n])
	}
	return newdata, nil
}
