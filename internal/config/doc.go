// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for leptutil.
//
// Configuration is a TOML file with sensible defaults, environment variable
// overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - DiagnosticsConfig: Severity threshold, color and rate limit for diagnostics
//   - FilesConfig: Permissions for files and directories created by writes
//   - TimerConfig: Clock used by the time command
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (LEPTUTIL_*)
//   - $LEPTUTIL_CONFIG, or ~/.leptutil/config.toml
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	emitter := diag.New(cfg.EmitterOptions(os.Stderr))
package config
