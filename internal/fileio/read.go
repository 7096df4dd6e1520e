// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fileio

import (
	"io"
	"os"

	"github.com/jeranaias/leptutil/internal/diag"
	"github.com/jeranaias/leptutil/internal/pathutil"
)

// ReadFile returns the whole content of the named file. See ReadStream
// for the layout of the returned slice.
func ReadFile(fname string) ([]byte, error) {
	const procName = "fileio.ReadFile"

	if fname == "" {
		return nil, diag.Errorf(procName, diag.ErrNotDefined, "fname not defined")
	}
	f, err := os.Open(fname)
	if err != nil {
		return nil, diag.Errorf(procName, err, "file stream not opened")
	}
	defer f.Close()

	return ReadStream(f)
}

// ReadStream reads r from its beginning to its end, whatever the current
// position. The returned slice has length equal to the stream size and one
// extra byte of capacity holding a zero, so data[:len(data)+1] is a
// terminated array. Reading an empty stream is not an error.
func ReadStream(r io.ReadSeeker) ([]byte, error) {
	const procName = "fileio.ReadStream"

	if r == nil {
		return nil, diag.Errorf(procName, diag.ErrNotDefined, "stream not defined")
	}
	n, err := NBytes(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, diag.Errorf(procName, err, "stream not rewound")
	}

	data := make([]byte, n+1)
	if _, err := io.ReadFull(r, data[:n]); err != nil {
		return nil, diag.Errorf(procName, err, "read of %d bytes failed", n)
	}
	return data[:n], nil
}

// NBytes returns the size of s. The current position is restored before
// returning.
func NBytes(s io.Seeker) (int64, error) {
	const procName = "fileio.NBytes"

	if s == nil {
		return 0, diag.Errorf(procName, diag.ErrNotDefined, "stream not open")
	}
	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, diag.Errorf(procName, err, "position not read")
	}
	end, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, diag.Errorf(procName, err, "seek to end failed")
	}
	if _, err := s.Seek(pos, io.SeekStart); err != nil {
		return 0, diag.Errorf(procName, err, "position not restored")
	}
	return end, nil
}

// OpenReadStream opens filename for reading. If that fails, the directory
// part is stripped and the bare name is tried in the working directory.
func OpenReadStream(filename string) (*os.File, error) {
	const procName = "fileio.OpenReadStream"

	if filename == "" {
		return nil, diag.Errorf(procName, diag.ErrNotDefined, "filename not defined")
	}
	if f, err := os.Open(filename); err == nil {
		return f, nil
	}

	_, tail := pathutil.SplitAtDirectory(filename)
	if tail != "" && tail != filename {
		if f, err := os.Open(tail); err == nil {
			return f, nil
		}
	}
	return nil, diag.Errorf(procName, diag.ErrNotFound, "file not found: %s", filename)
}
