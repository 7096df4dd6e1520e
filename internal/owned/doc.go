// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package owned provides a single-owner handle for values that a callee
// may replace or release on the caller's behalf.
//
// A Handle holds at most one value. Replace drops the previous value as
// part of the assignment, so overwriting never leaks the old one, and Take
// moves the value out while clearing the handle:
//
//	var h owned.Handle[[]byte]
//	h.Replace(make([]byte, 64))
//	buf, ok := h.Take() // h is now empty
package owned
