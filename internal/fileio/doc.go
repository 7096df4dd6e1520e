// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package fileio reads whole files into memory and writes memory to files.
//
// # Key Functions
//
// Reading:
//   - ReadFile, ReadStream: whole content, zero byte after the end
//   - NBytes: stream size without moving the read position
//   - OpenReadStream: open a path, falling back to its bare name in the
//     working directory
//
// Writing:
//   - WriteFile: "w" (atomic replace) or "a" (append)
//   - AtomicWriteFile: crash-safe replace with fsync
//
// # Usage
//
//	data, err := fileio.ReadFile("page.pnm")
//	err = fileio.WriteFile("out.bin", "a", data)
package fileio
