// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package endian converts 16 and 32 bit values between host order and a
// fixed byte order, typically around file I/O:
//
//   - data read from a file is converted to host order
//   - data about to be written is converted to the file's order
//
// ConvertOnBigEnd* produce the big-endian representation and
// ConvertOnLittleEnd* the little-endian one, whatever the host. On a
// given host one pair swaps bytes and the other is the identity, chosen
// at build time from the target architecture.
package endian
