// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package strutil provides safe string copy, join, tokenize and
// find/replace helpers.
//
// Every function returns a new string; inputs are never modified and
// results never share storage with them.
//
// # Key Functions
//
// Copy and ownership:
//   - New: independent copy of a string
//   - Replace, ReplaceOpt: store a copy in an owned.Handle, releasing the old value
//   - Join: concatenation where either side may be empty
//
// Tokenizing:
//   - Tokenizer: non-destructive strtok replacement with a resume cursor
//   - Tokens: all tokens at once
//
// Find and replace:
//   - RemoveChars: drop every rune found in a removal set
//   - ReplaceSubstr: replace the first match at or after an offset
//   - ReplaceEachSubstr: replace every match and count them
//
// # Usage
//
//	tok := strutil.NewTokenizer("a,b,,c", ",")
//	for tok := range tok.All() {
//	    fmt.Println(tok) // a, b, c
//	}
//
//	out, n, err := strutil.ReplaceEachSubstr("aXaXa", "X", "-") // "a-a-a", 2
package strutil
