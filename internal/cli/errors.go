// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// errors.go - Error types and exit codes for leptutil commands.
//
// Commands always return errors and never print them; Run reports the
// error once as a diagnostic line and picks the exit code here.

package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// =============================================================================
// EXIT CODES
// =============================================================================

const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0
	// ExitGeneralError indicates a failed operation
	ExitGeneralError = 1
	// ExitUsageError indicates invalid command usage or arguments
	ExitUsageError = 2
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// UsageError marks an error caused by the command line itself.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// usageErrorf is fmt.Errorf for command line mistakes.
func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// usageArgs wraps a positional argument validator so its failures are
// usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return &UsageError{Err: err}
		}
		return nil
	}
}

// GetExitCode determines the exit code for an error returned by a command.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return ExitUsageError
	}

	// cobra reports unknown subcommands with a plain error.
	if strings.HasPrefix(err.Error(), "unknown command") {
		return ExitUsageError
	}

	return ExitGeneralError
}
