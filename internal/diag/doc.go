// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package diag emits error, warning and info diagnostics in a fixed
// one-line format and defines the error type returned by every fallible
// routine in leptutil.
//
// # Line Format
//
//	Error in <proc>: <msg>
//	Warning in <proc>: <msg>
//	Info in <proc>: <msg>
//
// The numeric variants (WarningInt, InfoInt, InfoInt2, InfoFloat,
// InfoFloat2) append the values in brackets after the literal message:
//
//	Info in scanner: pages processed [12, 40]
//
// The message is never used as a format template, so percent signs in
// caller text are printed as-is.
//
// # Sentinels
//
// Error helpers return a caller-chosen value so they can be used directly
// in return statements:
//
//	if n < 0 {
//	    return e.ErrorInt("count must be >= 0", procName, 1)
//	}
//
// # Errors
//
// Library routines return *Error values that wrap one of ErrNotDefined,
// ErrInvalidArg or ErrNotFound. The command-line boundary prints them with
// Emitter.Report, which produces the same "Error in" line.
package diag
