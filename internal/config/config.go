// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/leptutil/internal/diag"
	"github.com/jeranaias/leptutil/internal/fileio"
	"github.com/jeranaias/leptutil/internal/timer"
)

// EnvConfigPath names the variable that overrides the config file location.
const EnvConfigPath = "LEPTUTIL_CONFIG"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete leptutil configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Diagnostic output
	Diagnostics DiagnosticsConfig `toml:"diagnostics" json:"diagnostics"`

	// File creation
	Files FilesConfig `toml:"files" json:"files"`

	// Elapsed-time measurement
	Timer TimerConfig `toml:"timer" json:"timer"`
}

// DiagnosticsConfig controls how diagnostic lines are printed.
type DiagnosticsConfig struct {
	// Severity is the lowest severity printed: info, warning, error or none.
	Severity string `toml:"severity" json:"severity"`

	// Color is auto, always or never.
	Color string `toml:"color" json:"color"`

	// RateLimit caps warning and info lines per second. 0 disables it.
	RateLimit float64 `toml:"rate_limit" json:"rate_limit"`

	// Burst is the number of lines allowed at once under the rate limit.
	Burst int `toml:"burst" json:"burst"`
}

// FilesConfig holds permissions as octal strings such as "0644".
type FilesConfig struct {
	FileMode string `toml:"file_mode" json:"file_mode"`
	DirMode  string `toml:"dir_mode" json:"dir_mode"`
}

// TimerConfig selects the clock: cpu or wall.
type TimerConfig struct {
	Source string `toml:"source" json:"source"`
}

// Default returns a new Config with default values.
func Default() *Config {
	return &Config{
		Version: "1",
		Diagnostics: DiagnosticsConfig{
			Severity:  "warning",
			Color:     string(diag.ColorAuto),
			RateLimit: 0,
			Burst:     10,
		},
		Files: FilesConfig{
			FileMode: "0644",
			DirMode:  "0755",
		},
		Timer: TimerConfig{
			Source: "cpu",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the leptutil configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".leptutil"), nil
}

// ConfigPath returns the config file path, honoring LEPTUTIL_CONFIG.
func ConfigPath() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads the config file if it exists, otherwise the defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		cfg := Default()
		cfg.ApplyEnvOverrides()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid config: %w", err)
		}
		return cfg, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads configuration from path with full validation. A
// missing file yields the defaults.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to stat config %s: %w", path, statErr)
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes the TOML file at path into cfg. Keys missing from the
// file keep their current values.
func LoadTOML(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to ConfigPath.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes the configuration to path atomically.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# leptutil configuration file")
	fmt.Fprintln(&buf, "# Generated by leptutil - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := fileio.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if _, err := diag.ParseSeverity(c.Diagnostics.Severity); err != nil {
		errs = append(errs, ValidationError{
			Field:   "diagnostics.severity",
			Message: fmt.Sprintf("invalid severity '%s', must be one of: info, warning, error, none", c.Diagnostics.Severity),
		})
	}

	validColors := map[string]bool{"auto": true, "always": true, "never": true}
	if !validColors[strings.ToLower(c.Diagnostics.Color)] {
		errs = append(errs, ValidationError{
			Field:   "diagnostics.color",
			Message: fmt.Sprintf("invalid color '%s', must be one of: auto, always, never", c.Diagnostics.Color),
		})
	}

	if c.Diagnostics.RateLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "diagnostics.rate_limit",
			Message: "must be non-negative",
		})
	}
	if c.Diagnostics.Burst < 1 {
		errs = append(errs, ValidationError{
			Field:   "diagnostics.burst",
			Message: fmt.Sprintf("must be at least 1, got %d", c.Diagnostics.Burst),
		})
	}

	if _, err := parsePerm(c.Files.FileMode); err != nil {
		errs = append(errs, ValidationError{Field: "files.file_mode", Message: err.Error()})
	}
	if _, err := parsePerm(c.Files.DirMode); err != nil {
		errs = append(errs, ValidationError{Field: "files.dir_mode", Message: err.Error()})
	}

	validSources := map[string]bool{"cpu": true, "wall": true}
	if !validSources[strings.ToLower(c.Timer.Source)] {
		errs = append(errs, ValidationError{
			Field:   "timer.source",
			Message: fmt.Sprintf("invalid source '%s', must be one of: cpu, wall", c.Timer.Source),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetDefaults fills empty fields with their default values.
func (c *Config) SetDefaults() {
	defaults := Default()

	if c.Version == "" {
		c.Version = defaults.Version
	}
	if c.Diagnostics.Severity == "" {
		c.Diagnostics.Severity = defaults.Diagnostics.Severity
	}
	if c.Diagnostics.Color == "" {
		c.Diagnostics.Color = defaults.Diagnostics.Color
	}
	if c.Diagnostics.Burst == 0 {
		c.Diagnostics.Burst = defaults.Diagnostics.Burst
	}
	if c.Files.FileMode == "" {
		c.Files.FileMode = defaults.Files.FileMode
	}
	if c.Files.DirMode == "" {
		c.Files.DirMode = defaults.Files.DirMode
	}
	if c.Timer.Source == "" {
		c.Timer.Source = defaults.Timer.Source
	}
}

// ApplyEnvOverrides applies environment variable overrides.
//
// Supported variables:
//   - LEPTUTIL_SEVERITY: overrides diagnostics.severity
//   - LEPTUTIL_COLOR: overrides diagnostics.color
//   - LEPTUTIL_RATE_LIMIT: overrides diagnostics.rate_limit
func (c *Config) ApplyEnvOverrides() {
	if sev := os.Getenv("LEPTUTIL_SEVERITY"); sev != "" {
		c.Diagnostics.Severity = sev
	}

	if color := os.Getenv("LEPTUTIL_COLOR"); color != "" {
		c.Diagnostics.Color = color
	}

	// An unparsable rate is ignored rather than failing the whole load.
	if limit := os.Getenv("LEPTUTIL_RATE_LIMIT"); limit != "" {
		if v, err := strconv.ParseFloat(limit, 64); err == nil {
			c.Diagnostics.RateLimit = v
		}
	}
}

// =============================================================================
// DERIVED SETTINGS
// =============================================================================

// EmitterOptions returns diagnostic options writing to w. Call after
// Validate; invalid values fall back to the defaults.
func (c *Config) EmitterOptions(w io.Writer) diag.Options {
	sev, err := diag.ParseSeverity(c.Diagnostics.Severity)
	if err != nil {
		sev = diag.SeverityInfo
	}
	return diag.Options{
		Writer:    w,
		Severity:  sev,
		Color:     diag.ColorMode(strings.ToLower(c.Diagnostics.Color)),
		RateLimit: c.Diagnostics.RateLimit,
		Burst:     c.Diagnostics.Burst,
	}
}

// WriteOptions returns the permissions for fileio writes.
func (c *Config) WriteOptions() (fileio.WriteOptions, error) {
	filePerm, err := parsePerm(c.Files.FileMode)
	if err != nil {
		return fileio.WriteOptions{}, fmt.Errorf("files.file_mode: %w", err)
	}
	dirPerm, err := parsePerm(c.Files.DirMode)
	if err != nil {
		return fileio.WriteOptions{}, fmt.Errorf("files.dir_mode: %w", err)
	}
	return fileio.WriteOptions{FilePerm: filePerm, DirPerm: dirPerm}, nil
}

// TimerSource returns the configured clock.
func (c *Config) TimerSource() (timer.Source, error) {
	return timer.ParseSource(c.Timer.Source)
}

// parsePerm parses an octal permission string.
func parsePerm(s string) (os.FileMode, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "0o"), 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid permission '%s', must be octal such as 0644", s)
	}
	if v > 0o777 {
		return 0, fmt.Errorf("invalid permission '%s', must not exceed 0777", s)
	}
	return os.FileMode(v), nil
}

// =============================================================================
// GET/SET HELPERS (DOT NOTATION)
// =============================================================================

// Get retrieves a configuration value using dot notation (e.g., "diagnostics.severity").
func (c *Config) Get(key string) (interface{}, error) {
	field, err := c.lookup(key)
	if err != nil {
		return nil, err
	}
	return field.Interface(), nil
}

// Set sets a configuration value using dot notation (e.g., "timer.source").
func (c *Config) Set(key string, value interface{}) error {
	field, err := c.lookup(key)
	if err != nil {
		return err
	}
	if field.Kind() == reflect.Struct {
		return fmt.Errorf("cannot set section: %s", key)
	}
	if !field.CanSet() {
		return fmt.Errorf("cannot set field: %s", key)
	}
	return setFieldValue(field, value)
}

// ErrUnknownKey is returned by Get and Set for a key that names no setting.
var ErrUnknownKey = errors.New("unknown config key")

// lookup walks the dotted key to a field of c.
func (c *Config) lookup(key string) (reflect.Value, error) {
	if key == "" {
		return reflect.Value{}, fmt.Errorf("%w: empty key", ErrUnknownKey)
	}
	parts := strings.Split(key, ".")

	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		if i > 0 && v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("field '%s' is not a struct", strings.Join(parts[:i], "."))
		}
		fieldName := normalizeFieldName(part)
		field := v.FieldByNameFunc(func(name string) bool {
			return strings.EqualFold(name, fieldName)
		})
		if !field.IsValid() {
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return v, nil
}

// normalizeFieldName converts a snake_case or kebab-case name to its Go field equivalent.
func normalizeFieldName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})

	var result strings.Builder
	for _, part := range parts {
		result.WriteString(strings.ToUpper(part[:1]))
		result.WriteString(strings.ToLower(part[1:]))
	}
	return result.String()
}

// setFieldValue sets a reflect.Value from an interface{} value with type conversion.
func setFieldValue(field reflect.Value, value interface{}) error {
	if strVal, ok := value.(string); ok {
		switch field.Kind() {
		case reflect.String:
			field.SetString(strVal)
			return nil
		case reflect.Int, reflect.Int64:
			intVal, err := strconv.ParseInt(strVal, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid integer value: %w", err)
			}
			field.SetInt(intVal)
			return nil
		case reflect.Float64:
			floatVal, err := strconv.ParseFloat(strVal, 64)
			if err != nil {
				return fmt.Errorf("invalid float value: %w", err)
			}
			field.SetFloat(floatVal)
			return nil
		}
	}

	val := reflect.ValueOf(value)
	if !val.IsValid() {
		return fmt.Errorf("cannot assign nil to %s", field.Type())
	}
	if val.Type().AssignableTo(field.Type()) {
		field.Set(val)
		return nil
	}
	if val.Type().ConvertibleTo(field.Type()) && val.Kind() != reflect.String {
		field.Set(val.Convert(field.Type()))
		return nil
	}

	return fmt.Errorf("cannot assign %T to %s", value, field.Type())
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// GetAllKeys returns all configuration keys in dot notation.
func GetAllKeys() []string {
	return []string{
		"version",
		"diagnostics.severity",
		"diagnostics.color",
		"diagnostics.rate_limit",
		"diagnostics.burst",
		"files.file_mode",
		"files.dir_mode",
		"timer.source",
	}
}

// Clone returns an independent copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("<config: %v>", err)
	}
	return buf.String()
}
