// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timer measures elapsed time between two points.
//
// Each measurement is an independent Timer value, so nested or concurrent
// measurements never disturb each other:
//
//	t := timer.StartCPU()
//	...
//	fmt.Fprintf(os.Stderr, "Elapsed time = %7.3f sec\n", t.Stop())
//
// CPU() reads the user CPU time of the process: getrusage on unix systems
// and GetProcessTimes on Windows, chosen at build time. Wall() reads a
// wall clock and accepts an injected time function for tests.
package timer
