// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package pathutil

import (
	"strings"

	"github.com/jeranaias/leptutil/internal/diag"
)

// Separator is the directory separator used by every function here.
const Separator = '/'

// SplitAtDirectory splits pathname after its last separator. dir keeps
// the trailing separator and is empty when there is none; tail is the
// rest, which is empty when pathname ends in a separator.
func SplitAtDirectory(pathname string) (dir, tail string) {
	i := strings.LastIndexByte(pathname, Separator)
	if i < 0 {
		return "", strings.Clone(pathname)
	}
	return strings.Clone(pathname[:i+1]), strings.Clone(pathname[i+1:])
}

// SplitAtExtension splits pathname at the last '.' of its tail, ignoring
// dots in directory components. ext includes the dot. Without a dot in
// the tail, base is pathname and ext is empty.
func SplitAtExtension(pathname string) (base, ext string) {
	dir, tail := SplitAtDirectory(pathname)
	i := strings.LastIndexByte(tail, '.')
	if i < 0 {
		return strings.Clone(pathname), ""
	}
	return dir + tail[:i], tail[i:]
}

// GenPathname joins dir and fname, inserting a separator only when dir
// does not already end with one.
func GenPathname(dir, fname string) (string, error) {
	const procName = "pathutil.GenPathname"

	if dir == "" {
		return "", diag.Errorf(procName, diag.ErrNotDefined, "dir not defined")
	}
	if fname == "" {
		return "", diag.Errorf(procName, diag.ErrNotDefined, "fname not defined")
	}

	var b strings.Builder
	b.Grow(len(dir) + len(fname) + 1)
	b.WriteString(dir)
	if dir[len(dir)-1] != Separator {
		b.WriteByte(Separator)
	}
	b.WriteString(fname)
	return b.String(), nil
}
