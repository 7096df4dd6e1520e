// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the leptutil command tree.
//
// Every utility package is reachable from a subcommand so the helpers can be
// scripted and inspected by hand. Failures are printed as diagnostic lines
// on stderr and mapped to exit codes by GetExitCode.
//
// # Usage
//
//	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
//
// # Commands Overview
//
// Paths and strings:
//   - split-dir, split-ext, join-path
//   - tokenize, remove-chars, replace
//
// Bytes and files:
//   - find, swap
//   - cat, write, time
//
// Configuration:
//   - config path|show|get|set|init
//
// Table output can be switched to JSON with --output json.
package cli
