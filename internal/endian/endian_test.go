// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// hostBytes16 returns the in-memory bytes of v on this host.
func hostBytes16(v uint16) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v)), 2)
}

func hostBytes32(v uint32) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&v)), 4)
}

func TestHostBigEndianMatchesMemoryLayout(t *testing.T) {
	b := hostBytes16(0x0102)
	assert.Equal(t, b[0] == 0x01, HostBigEndian)
}

func TestSwap(t *testing.T) {
	assert.Equal(t, uint16(0x3412), Swap16(0x1234))
	assert.Equal(t, uint32(0x78563412), Swap32(0x12345678))
	assert.Equal(t, uint32(0xff0000ff), Swap32(0xff0000ff))
}

func TestConvertOnBigEnd_ProducesBigEndianBytes(t *testing.T) {
	values16 := []uint16{0, 1, 0x1234, 0xff00, 0xffff}
	for _, v := range values16 {
		want := make([]byte, 2)
		binary.BigEndian.PutUint16(want, v)
		assert.Equal(t, want, append([]byte(nil), hostBytes16(ConvertOnBigEnd16(v))...))

		binary.LittleEndian.PutUint16(want, v)
		assert.Equal(t, want, append([]byte(nil), hostBytes16(ConvertOnLittleEnd16(v))...))
	}

	values32 := []uint32{0, 1, 0x12345678, 0xdeadbeef, 0xffffffff}
	for _, v := range values32 {
		want := make([]byte, 4)
		binary.BigEndian.PutUint32(want, v)
		assert.Equal(t, want, append([]byte(nil), hostBytes32(ConvertOnBigEnd32(v))...))

		binary.LittleEndian.PutUint32(want, v)
		assert.Equal(t, want, append([]byte(nil), hostBytes32(ConvertOnLittleEnd32(v))...))
	}
}

// Each conversion is its own inverse; composing the big and little
// variants always yields the byte swap, whatever the host order.
func TestConvert_Inverses(t *testing.T) {
	for _, v := range []uint16{0, 0x00ff, 0x1234, 0xabcd} {
		assert.Equal(t, Swap16(v), ConvertOnBigEnd16(ConvertOnLittleEnd16(v)))
		assert.Equal(t, v, ConvertOnBigEnd16(ConvertOnBigEnd16(v)))
		assert.Equal(t, v, ConvertOnLittleEnd16(ConvertOnLittleEnd16(v)))
	}
	for _, v := range []uint32{0, 0x000000ff, 0x12345678, 0xcafebabe} {
		assert.Equal(t, Swap32(v), ConvertOnBigEnd32(ConvertOnLittleEnd32(v)))
		assert.Equal(t, v, ConvertOnLittleEnd32(ConvertOnLittleEnd32(v)))
	}
}
