// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package strutil

import (
	"strings"
	"unicode/utf8"

	"github.com/jeranaias/leptutil/internal/diag"
	"github.com/jeranaias/leptutil/internal/owned"
)

// New returns a copy of src that shares no storage with it.
func New(src string) string {
	return strings.Clone(src)
}

// Replace releases any string held by h and stores a copy of src.
func Replace(h *owned.Handle[string], src string) error {
	if h == nil {
		return diag.Errorf("strutil.Replace", diag.ErrNotDefined, "dest handle not defined")
	}
	h.Replace(strings.Clone(src))
	return nil
}

// ReplaceOpt is Replace for an optional source: a nil src clears h.
func ReplaceOpt(h *owned.Handle[string], src *string) error {
	if h == nil {
		return diag.Errorf("strutil.ReplaceOpt", diag.ErrNotDefined, "dest handle not defined")
	}
	if src == nil {
		h.Release()
		return nil
	}
	h.Replace(strings.Clone(*src))
	return nil
}

// Join returns a newly allocated src1 + src2. Either may be empty.
func Join(src1, src2 string) string {
	var b strings.Builder
	b.Grow(len(src1) + len(src2))
	b.WriteString(src1)
	b.WriteString(src2)
	return b.String()
}

// RemoveChars returns src with every rune that appears in remchars
// removed. Kept bytes are copied unchanged, including invalid UTF-8.
func RemoveChars(src, remchars string) string {
	if remchars == "" {
		return strings.Clone(src)
	}
	var b strings.Builder
	b.Grow(len(src))
	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])
		if r == utf8.RuneError && size <= 1 {
			if !containsInvalidByte(remchars, src[i]) {
				b.WriteByte(src[i])
			}
		} else if !strings.Contains(remchars, src[i:i+size]) {
			b.WriteString(src[i : i+size])
		}
		i += size
	}
	return b.String()
}

// containsInvalidByte reports whether c appears in s as a byte that is not
// part of a valid UTF-8 encoding.
func containsInvalidByte(s string, c byte) bool {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 && s[i] == c {
			return true
		}
		i += size
	}
	return false
}
