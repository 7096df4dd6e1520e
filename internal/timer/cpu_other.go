// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

//go:build !aix && !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris && !windows

package timer

import "time"

// processStart anchors the wall-clock fallback.
var processStart = time.Now()

// userCPUTime falls back to wall time where no process accounting exists.
func userCPUTime() time.Duration {
	return time.Since(processStart)
}
