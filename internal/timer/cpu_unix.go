// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package timer

import (
	"time"

	"golang.org/x/sys/unix"
)

// userCPUTime returns the user CPU time consumed by this process.
func userCPUTime() time.Duration {
	var rusage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &rusage); err != nil {
		return 0
	}
	return time.Duration(rusage.Utime.Nano())
}
