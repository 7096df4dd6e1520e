// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diag

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by *Error. Match them with errors.Is.
var (
	// ErrNotDefined reports a required input that was not supplied.
	ErrNotDefined = errors.New("not defined")
	// ErrInvalidArg reports an input outside the accepted range or set.
	ErrInvalidArg = errors.New("invalid argument")
	// ErrNotFound reports a file or item that could not be located.
	ErrNotFound = errors.New("not found")
)

// Error is a failure raised by a named routine.
type Error struct {
	Proc string // Routine that failed (e.g., "fileio.WriteFile")
	Msg  string // Human-readable reason
	Err  error  // Underlying cause (sentinel or I/O error)
}

// Errorf builds an *Error for proc wrapping cause, formatting the message
// from format and args.
func Errorf(proc string, cause error, format string, args ...any) *Error {
	return &Error{Proc: proc, Msg: fmt.Sprintf(format, args...), Err: cause}
}

func (e *Error) Error() string {
	return e.Proc + ": " + e.Detail()
}

// Detail returns the message without the routine prefix. Causes other
// than the package sentinels are appended after a colon.
func (e *Error) Detail() string {
	if e.Err == nil || isSentinel(e.Err) {
		return e.Msg
	}
	return e.Msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func isSentinel(err error) bool {
	return err == ErrNotDefined || err == ErrInvalidArg || err == ErrNotFound
}
