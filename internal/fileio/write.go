// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fileio

import (
	"os"

	"github.com/jeranaias/leptutil/internal/diag"
)

// Write modes accepted by WriteFile.
const (
	ModeWrite  = "w"
	ModeAppend = "a"
)

// WriteOptions sets the permissions used when files or directories are
// created.
type WriteOptions struct {
	FilePerm os.FileMode
	DirPerm  os.FileMode
}

// DefaultWriteOptions are used by WriteFile.
var DefaultWriteOptions = WriteOptions{FilePerm: 0644, DirPerm: 0755}

// WriteFile writes data to filename. mode is "w" to replace the file or
// "a" to append to it; anything else is rejected, as is empty data.
func WriteFile(filename, mode string, data []byte) error {
	return WriteFileWithOptions(filename, mode, data, DefaultWriteOptions)
}

// WriteFileWithOptions is WriteFile with explicit permissions.
func WriteFileWithOptions(filename, mode string, data []byte, opts WriteOptions) error {
	const procName = "fileio.WriteFile"

	if filename == "" {
		return diag.Errorf(procName, diag.ErrNotDefined, "filename not defined")
	}
	if mode == "" {
		return diag.Errorf(procName, diag.ErrNotDefined, "operation not defined")
	}
	if len(data) == 0 {
		return diag.Errorf(procName, diag.ErrInvalidArg, "nbytes must be > 0")
	}

	switch mode {
	case ModeWrite:
		if err := AtomicWriteFileWithDir(filename, data, opts.FilePerm, opts.DirPerm); err != nil {
			return diag.Errorf(procName, err, "stream not written")
		}
		return nil
	case ModeAppend:
		return appendFile(filename, data, opts.FilePerm)
	default:
		return diag.Errorf(procName, diag.ErrInvalidArg, "operation '%s' not one of {'w','a'}", mode)
	}
}

func appendFile(filename string, data []byte, perm os.FileMode) error {
	const procName = "fileio.WriteFile"

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_APPEND|os.O_CREATE, perm)
	if err != nil {
		return diag.Errorf(procName, err, "stream not opened")
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return diag.Errorf(procName, err, "write of %d bytes failed", len(data))
	}
	if err := f.Close(); err != nil {
		return diag.Errorf(procName, err, "stream not closed")
	}
	return nil
}
