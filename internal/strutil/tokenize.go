// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package strutil

import (
	"iter"
	"strings"
	"unicode/utf8"
)

// Tokenizer splits a string into runs of non-separator runes. Unlike
// strtok it never writes to the source, and each token is a fresh copy.
// Empty fields between adjacent separators are skipped.
//
// The cursor lives in the Tokenizer, so independent Tokenizers over the
// same source do not affect each other.
type Tokenizer struct {
	src  string
	seps string
	pos  int // byte offset where the next scan starts
}

// NewTokenizer returns a Tokenizer over src splitting on any rune in seps.
// With an empty seps the whole source is a single token.
func NewTokenizer(src, seps string) *Tokenizer {
	return &Tokenizer{src: src, seps: seps}
}

// Next returns the next token, or false once no non-separator runes
// remain.
func (t *Tokenizer) Next() (string, bool) {
	i := t.skip(t.pos, true)
	if i >= len(t.src) {
		t.pos = len(t.src)
		return "", false
	}
	end := t.skip(i, false)
	t.pos = end
	return strings.Clone(t.src[i:end]), true
}

// Remaining returns the unscanned part of the source, starting at the
// resume cursor.
func (t *Tokenizer) Remaining() string {
	return t.src[t.pos:]
}

// All yields the remaining tokens in order.
func (t *Tokenizer) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			tok, ok := t.Next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// skip advances from i over separators (seps == true) or over token
// runes (seps == false) and returns the first offset that differs.
func (t *Tokenizer) skip(i int, seps bool) int {
	for i < len(t.src) {
		r, size := utf8.DecodeRuneInString(t.src[i:])
		if strings.ContainsRune(t.seps, r) != seps {
			break
		}
		i += size
	}
	return i
}

// Tokens returns every token of src split on seps.
func Tokens(src, seps string) []string {
	var out []string
	for tok := range NewTokenizer(src, seps).All() {
		out = append(out, tok)
	}
	return out
}
