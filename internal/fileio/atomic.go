// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package fileio

import (
	"fmt"
	"os"
	"path/filepath"
)

// AtomicWriteFile replaces path with data so that readers see either the
// previous contents or all of data, never a prefix. WriteFile in mode "w"
// and the config writer both go through here.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	return AtomicWriteFileWithDir(path, data, perm, DefaultWriteOptions.DirPerm)
}

// AtomicWriteFileWithDir is AtomicWriteFile with the permissions used for
// any parent directories it has to create.
func AtomicWriteFileWithDir(path string, data []byte, filePerm, dirPerm os.FileMode) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	// The staging file must share a filesystem with target for the rename.
	staged, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("failed to stage %s: %w", target, err)
	}
	if err := commitStaged(staged, target, data, filePerm); err != nil {
		_ = staged.Close()
		_ = os.Remove(staged.Name())
		return err
	}
	return nil
}

// commitStaged fills f with data, flushes it to disk and renames it over
// target. f is closed on success.
func commitStaged(f *os.File, target string, data []byte, perm os.FileMode) error {
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", f.Name(), err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("failed to sync %s: %w", f.Name(), err)
	}
	// Windows refuses to rename an open file.
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", f.Name(), err)
	}
	if err := os.Chmod(f.Name(), perm); err != nil {
		return fmt.Errorf("failed to set mode on %s: %w", f.Name(), err)
	}
	if err := os.Rename(f.Name(), target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}
	return nil
}
