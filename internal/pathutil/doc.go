// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pathutil splits and joins path names.
//
// All decisions are lexical: the filesystem is never consulted and '/'
// is the only separator, so results are the same on every platform.
//
//	/usr/tmp/abc      -> dir: /usr/tmp/   tail: abc
//	/usr/tmp/         -> dir: /usr/tmp/   tail: ""
//	/usr/tmp          -> dir: /usr/       tail: tmp
//	/usr/tmp/abc.jpg  -> base: /usr/tmp/abc   ext: .jpg
//	/usr/tmp.jpg/     -> base: /usr/tmp.jpg/  ext: ""
package pathutil
