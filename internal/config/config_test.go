// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jeranaias/leptutil/internal/diag"
)

// clearEnv isolates a test from LEPTUTIL_* variables set by the caller.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvConfigPath, "LEPTUTIL_SEVERITY", "LEPTUTIL_COLOR", "LEPTUTIL_RATE_LIMIT"} {
		t.Setenv(k, "")
	}
}

// TestConfig_Default tests default configuration values.
func TestConfig_Default(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.Diagnostics.Severity != "warning" {
		t.Errorf("Expected default severity 'warning', got '%s'", cfg.Diagnostics.Severity)
	}
	if cfg.Timer.Source != "cpu" {
		t.Errorf("Expected default timer source 'cpu', got '%s'", cfg.Timer.Source)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

// TestConfig_Validate tests configuration validation.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		field   string
		wantErr bool
	}{
		{name: "valid default config", mutate: func(c *Config) {}},
		{name: "invalid severity", mutate: func(c *Config) { c.Diagnostics.Severity = "loud" }, field: "diagnostics.severity", wantErr: true},
		{name: "invalid color", mutate: func(c *Config) { c.Diagnostics.Color = "rainbow" }, field: "diagnostics.color", wantErr: true},
		{name: "negative rate limit", mutate: func(c *Config) { c.Diagnostics.RateLimit = -1 }, field: "diagnostics.rate_limit", wantErr: true},
		{name: "zero burst", mutate: func(c *Config) { c.Diagnostics.Burst = 0 }, field: "diagnostics.burst", wantErr: true},
		{name: "non-octal file mode", mutate: func(c *Config) { c.Files.FileMode = "0999" }, field: "files.file_mode", wantErr: true},
		{name: "oversized dir mode", mutate: func(c *Config) { c.Files.DirMode = "01777" }, field: "files.dir_mode", wantErr: true},
		{name: "invalid timer source", mutate: func(c *Config) { c.Timer.Source = "gpu" }, field: "timer.source", wantErr: true},
		{name: "uppercase values", mutate: func(c *Config) { c.Diagnostics.Color = "NEVER"; c.Timer.Source = "Wall" }},
		{name: "0o prefix", mutate: func(c *Config) { c.Files.FileMode = "0o600" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			var verrs ValidateErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error type = %T, want ValidateErrors", err)
			}
			if len(verrs) != 1 || verrs[0].Field != tt.field {
				t.Errorf("Validate() fields = %v, want [%s]", verrs, tt.field)
			}
		})
	}
}

// TestLoadFromPath_MissingFileUsesDefaults tests loading without a file.
func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.Diagnostics.Burst != Default().Diagnostics.Burst {
		t.Errorf("Burst = %d, want default", cfg.Diagnostics.Burst)
	}
}

// TestLoadFromPath_PartialFile tests that unset keys keep their defaults.
func TestLoadFromPath_PartialFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[diagnostics]\nseverity = \"warning\"\nrate_limit = 5.0\n\n[timer]\nsource = \"wall\"\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.Diagnostics.Severity != "warning" {
		t.Errorf("Severity = %q, want warning", cfg.Diagnostics.Severity)
	}
	if cfg.Diagnostics.RateLimit != 5 {
		t.Errorf("RateLimit = %v, want 5", cfg.Diagnostics.RateLimit)
	}
	if cfg.Diagnostics.Color != "auto" {
		t.Errorf("Color = %q, want default auto", cfg.Diagnostics.Color)
	}
	if cfg.Files.FileMode != "0644" {
		t.Errorf("FileMode = %q, want default 0644", cfg.Files.FileMode)
	}
	if cfg.Timer.Source != "wall" {
		t.Errorf("Source = %q, want wall", cfg.Timer.Source)
	}
}

// TestLoadFromPath_Rejects tests malformed and invalid files.
func TestLoadFromPath_Rejects(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name    string
		content string
	}{
		{"syntax error", "[diagnostics\nseverity = \"info\"\n"},
		{"unknown key", "[diagnostics]\nverbosity = 3\n"},
		{"invalid value", "[timer]\nsource = \"sundial\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadFromPath(path); err == nil {
				t.Error("LoadFromPath() should fail")
			}
		})
	}
}

// TestLoad_EnvOverrides tests LEPTUTIL_* overrides and LEPTUTIL_CONFIG.
func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(path, []byte("[diagnostics]\nseverity = \"error\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfigPath, path)
	t.Setenv("LEPTUTIL_COLOR", "never")
	t.Setenv("LEPTUTIL_RATE_LIMIT", "2.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Diagnostics.Severity != "error" {
		t.Errorf("Severity = %q, want error from file", cfg.Diagnostics.Severity)
	}
	if cfg.Diagnostics.Color != "never" {
		t.Errorf("Color = %q, want never from env", cfg.Diagnostics.Color)
	}
	if cfg.Diagnostics.RateLimit != 2.5 {
		t.Errorf("RateLimit = %v, want 2.5 from env", cfg.Diagnostics.RateLimit)
	}

	t.Setenv("LEPTUTIL_SEVERITY", "none")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Diagnostics.Severity != "none" {
		t.Errorf("Severity = %q, want none from env", cfg.Diagnostics.Severity)
	}
}

// TestSaveTOML_RoundTrip tests that a saved config loads back unchanged.
func TestSaveTOML_RoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Diagnostics.Severity = "warning"
	cfg.Diagnostics.Burst = 3
	cfg.Files.DirMode = "0700"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# leptutil configuration file") {
		t.Errorf("missing header in saved config:\n%s", data)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *loaded, *cfg)
	}
}

// TestConfig_GetSet tests Get and Set methods with dot notation.
func TestConfig_GetSet(t *testing.T) {
	cfg := Default()

	val, err := cfg.Get("diagnostics.severity")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if val != "warning" {
		t.Errorf("Get('diagnostics.severity') = %v, want 'warning'", val)
	}

	if err := cfg.Set("timer.source", "wall"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if cfg.Timer.Source != "wall" {
		t.Errorf("Timer.Source after Set = %q, want wall", cfg.Timer.Source)
	}

	if err := cfg.Set("diagnostics.rate_limit", "7.5"); err != nil {
		t.Fatalf("Set() float error = %v", err)
	}
	if cfg.Diagnostics.RateLimit != 7.5 {
		t.Errorf("RateLimit after Set = %v, want 7.5", cfg.Diagnostics.RateLimit)
	}

	if err := cfg.Set("diagnostics.burst", "many"); err == nil {
		t.Error("Set() with non-integer burst should fail")
	}
	if err := cfg.Set("diagnostics", "x"); err == nil {
		t.Error("Set() on a section should fail")
	}
	if _, err := cfg.Get("invalid.key"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Get() with invalid key error = %v, want ErrUnknownKey", err)
	}
	if err := cfg.Set("", "x"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Set() with empty key error = %v, want ErrUnknownKey", err)
	}
	if _, err := cfg.Get("version.minor"); err == nil {
		t.Error("Get() through a non-struct should return error")
	}

	for _, key := range GetAllKeys() {
		if _, err := cfg.Get(key); err != nil {
			t.Errorf("Get(%q) error = %v", key, err)
		}
	}
}

// TestConfig_DerivedSettings tests the options handed to other packages.
func TestConfig_DerivedSettings(t *testing.T) {
	cfg := Default()
	cfg.Diagnostics.Severity = "warning"
	cfg.Diagnostics.Color = "NEVER"
	cfg.Files.FileMode = "0600"
	cfg.Files.DirMode = "0700"

	var buf bytes.Buffer
	opts := cfg.EmitterOptions(&buf)
	if opts.Severity != diag.SeverityWarning {
		t.Errorf("Severity = %v, want warning", opts.Severity)
	}
	if opts.Color != diag.ColorNever {
		t.Errorf("Color = %q, want never", opts.Color)
	}

	wo, err := cfg.WriteOptions()
	if err != nil {
		t.Fatalf("WriteOptions() error = %v", err)
	}
	if wo.FilePerm != 0600 || wo.DirPerm != 0700 {
		t.Errorf("WriteOptions() = %+v", wo)
	}

	if _, err := cfg.TimerSource(); err != nil {
		t.Errorf("TimerSource() error = %v", err)
	}
}

// TestConfig_Clone tests that Clone creates an independent copy.
func TestConfig_Clone(t *testing.T) {
	original := Default()
	clone := original.Clone()
	clone.Timer.Source = "wall"

	if original.Timer.Source != "cpu" {
		t.Error("Clone should create an independent copy")
	}
	if !strings.Contains(original.String(), "[diagnostics]") {
		t.Errorf("String() should render TOML sections:\n%s", original.String())
	}
}
