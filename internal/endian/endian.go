// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package endian

import "golang.org/x/sys/cpu"

// HostBigEndian reports whether the build target stores the most
// significant byte first.
const HostBigEndian = cpu.IsBigEndian

// Swap16 reverses the two bytes of v.
func Swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

// Swap32 reverses the four bytes of v.
func Swap32(v uint32) uint32 {
	return v<<24 | (v<<8)&0x00ff0000 | (v>>8)&0x0000ff00 | v>>24
}

// ConvertOnBigEnd16 converts between host order and big-endian.
func ConvertOnBigEnd16(v uint16) uint16 {
	if HostBigEndian {
		return v
	}
	return Swap16(v)
}

// ConvertOnLittleEnd16 converts between host order and little-endian.
func ConvertOnLittleEnd16(v uint16) uint16 {
	if HostBigEndian {
		return Swap16(v)
	}
	return v
}

// ConvertOnBigEnd32 converts between host order and big-endian.
func ConvertOnBigEnd32(v uint32) uint32 {
	if HostBigEndian {
		return v
	}
	return Swap32(v)
}

// ConvertOnLittleEnd32 converts between host order and little-endian.
func ConvertOnLittleEnd32(v uint32) uint32 {
	if HostBigEndian {
		return Swap32(v)
	}
	return v
}
