// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package strutil

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/leptutil/internal/diag"
	"github.com/jeranaias/leptutil/internal/owned"
)

// =============================================================================
// COPY AND JOIN TESTS
// =============================================================================

func TestNew_DoesNotAlias(t *testing.T) {
	src := string([]byte("hello world"))
	dst := New(src)

	require.Equal(t, src, dst)
	assert.NotSame(t, unsafe.StringData(src), unsafe.StringData(dst))

	// Mutating a byte copy of the result leaves src untouched.
	b := []byte(dst)
	b[0] = 'J'
	assert.Equal(t, "hello world", src)
}

func TestReplace_ReleasesPrevious(t *testing.T) {
	var h owned.Handle[string]
	require.NoError(t, Replace(&h, "first"))
	require.NoError(t, Replace(&h, "second"))

	v, ok := h.Get()
	require.True(t, ok)
	assert.Equal(t, "second", v)

	require.NoError(t, ReplaceOpt(&h, nil))
	assert.False(t, h.Valid())

	s := "third"
	require.NoError(t, ReplaceOpt(&h, &s))
	v, _ = h.Get()
	assert.Equal(t, "third", v)

	require.ErrorIs(t, Replace(nil, "x"), diag.ErrNotDefined)
	require.ErrorIs(t, ReplaceOpt(nil, &s), diag.ErrNotDefined)
}

func TestJoin(t *testing.T) {
	testCases := []struct {
		a, b     string
		expected string
	}{
		{"foo", "bar", "foobar"},
		{"", "bar", "bar"},
		{"foo", "", "foo"},
		{"", "", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.a+"+"+tc.b, func(t *testing.T) {
			assert.Equal(t, tc.expected, Join(tc.a, tc.b))
		})
	}
}

// =============================================================================
// TOKENIZER TESTS
// =============================================================================

func TestTokenizer_SkipsEmptyFields(t *testing.T) {
	src := "a,b,,c"
	orig := string([]byte(src))
	tok := NewTokenizer(src, ",")

	for _, want := range []string{"a", "b", "c"} {
		got, ok := tok.Next()
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, orig, src)
	}

	got, ok := tok.Next()
	assert.False(t, ok)
	assert.Equal(t, "", got)

	// Exhausted tokenizers stay exhausted.
	_, ok = tok.Next()
	assert.False(t, ok)
}

func TestTokens(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		seps     string
		expected []string
	}{
		{"leading and trailing seps", "  one two  three ", " ", []string{"one", "two", "three"}},
		{"multiple seps", "k=v;x=y", "=;", []string{"k", "v", "x", "y"}},
		{"only seps", ",,,", ",", nil},
		{"empty", "", ",", nil},
		{"no seps", "abc", "", []string{"abc"}},
		{"utf8 sep", "日本·語", "·", []string{"日本", "語"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokens(tc.src, tc.seps))
		})
	}
}

func TestTokenizer_RemainingAndEarlyBreak(t *testing.T) {
	tok := NewTokenizer("a b c", " ")
	for s := range tok.All() {
		assert.Equal(t, "a", s)
		break
	}
	assert.Equal(t, " b c", tok.Remaining())

	next, ok := tok.Next()
	require.True(t, ok)
	assert.Equal(t, "b", next)
}

// =============================================================================
// FIND AND REPLACE TESTS
// =============================================================================

func TestRemoveChars(t *testing.T) {
	testCases := []struct {
		name     string
		src, rem string
		expected string
	}{
		{"ascii", "hello world", "lo", "he wrd"},
		{"no removal set", "abc", "", "abc"},
		{"empty src", "", "abc", ""},
		{"punctuation", "a-b_c", "-_", "abc"},
		{"multibyte", "naïve", "ï", "nave"},
		{"invalid utf8 kept", "a\xffb", "x", "a\xffb"},
		{"invalid utf8 removed", "a\xffb\xfe", "\xff", "ab\xfe"},
		{"replacement char", "a\xffb\uFFFD", "\uFFFD", "a\xffb"},
		{"stray lead byte", "a\xefb", "\uFFFD", "a\xefb"},
		{"invalid set keeps replacement char", "a\uFFFDb", "\xff", "a\uFFFDb"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, RemoveChars(tc.src, tc.rem))
		})
	}
}

func TestReplaceSubstr_Chaining(t *testing.T) {
	dest, next, found, err := ReplaceSubstr("abcabc", "b", "", 0)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "acabc", dest)
	assert.Equal(t, 1, next)

	dest, next, found, err = ReplaceSubstr(dest, "b", "", next)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "acac", dest)
	assert.Equal(t, 3, next)

	dest, next, found, err = ReplaceSubstr(dest, "b", "", next)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "", dest)
	assert.Equal(t, 3, next)
}

func TestReplaceSubstr_Offsets(t *testing.T) {
	dest, next, found, err := ReplaceSubstr("one two one", "one", "1", 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "one two 1", dest)
	assert.Equal(t, 9, next)

	// Same sub1 and sub2 still yields a new string.
	dest, _, found, err = ReplaceSubstr("xx", "x", "x", 0)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "xx", dest)
}

func TestReplaceSubstr_InvalidArgs(t *testing.T) {
	_, _, _, err := ReplaceSubstr("abc", "", "x", 0)
	require.ErrorIs(t, err, diag.ErrInvalidArg)

	_, _, _, err = ReplaceSubstr("abc", "a", "x", 4)
	require.ErrorIs(t, err, diag.ErrInvalidArg)

	_, _, _, err = ReplaceSubstr("abc", "a", "x", -1)
	require.ErrorIs(t, err, diag.ErrInvalidArg)

	// loc == len(src) is a valid, empty search window.
	_, _, found, err := ReplaceSubstr("abc", "a", "x", 3)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReplaceEachSubstr(t *testing.T) {
	testCases := []struct {
		name      string
		src       string
		sub1      string
		sub2      string
		expected  string
		wantCount int
	}{
		{"dash", "aXaXa", "X", "-", "a-a-a", 2},
		{"remove", "a.b.c.", ".", "", "abc", 3},
		{"grow", "ab", "b", "bb", "abb", 1},
		{"self containing", "aaa", "a", "aa", "aaaaaa", 3},
		{"none", "abc", "z", "y", "", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, count, err := ReplaceEachSubstr(tc.src, tc.sub1, tc.sub2)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.wantCount, count)
		})
	}

	_, _, err := ReplaceEachSubstr("abc", "", "x")
	require.ErrorIs(t, err, diag.ErrInvalidArg)
}
