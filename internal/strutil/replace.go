// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package strutil

import (
	"strings"

	"github.com/jeranaias/leptutil/internal/diag"
)

// ReplaceSubstr replaces the first occurrence of sub1 at or after byte
// offset loc with sub2 (which may be empty).
//
// next is the offset just past the inserted sub2, suitable as loc for a
// following call. When sub1 is not found, dest is empty, found is false
// and next equals loc.
func ReplaceSubstr(src, sub1, sub2 string, loc int) (dest string, next int, found bool, err error) {
	const procName = "strutil.ReplaceSubstr"

	if sub1 == "" {
		return "", loc, false, diag.Errorf(procName, diag.ErrInvalidArg, "sub1 not defined")
	}
	if loc < 0 || loc > len(src) {
		return "", loc, false, diag.Errorf(procName, diag.ErrInvalidArg,
			"loc %d outside [0, %d]", loc, len(src))
	}

	idx := strings.Index(src[loc:], sub1)
	if idx < 0 {
		return "", loc, false, nil
	}
	npre := loc + idx

	var b strings.Builder
	b.Grow(len(src) - len(sub1) + len(sub2))
	b.WriteString(src[:npre])
	b.WriteString(sub2)
	b.WriteString(src[npre+len(sub1):])
	return b.String(), npre + len(sub2), true, nil
}

// ReplaceEachSubstr replaces every occurrence of sub1 with sub2 and
// reports how many substitutions were made. Matches are searched after
// each inserted sub2, so a sub2 containing sub1 does not loop. With no
// occurrence dest is empty and count is 0.
func ReplaceEachSubstr(src, sub1, sub2 string) (dest string, count int, err error) {
	loc := 0
	curr := src
	for {
		next, nloc, found, err := ReplaceSubstr(curr, sub1, sub2, loc)
		if err != nil {
			return "", 0, err
		}
		if !found {
			break
		}
		curr, loc = next, nloc
		count++
	}
	if count == 0 {
		return "", 0, nil
	}
	return curr, count, nil
}
