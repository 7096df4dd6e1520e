// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package diag

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// =============================================================================
// SEVERITY
// =============================================================================

// Severity orders diagnostics. An Emitter prints every diagnostic at or
// above its threshold.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
	// SeverityNone suppresses all output.
	SeverityNone
)

// Label returns the leading word of a diagnostic line.
func (s Severity) Label() string {
	switch s {
	case SeverityInfo:
		return "Info"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	default:
		return "None"
	}
}

// ParseSeverity maps "info", "warning", "error" or "none" to a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info", "":
		return SeverityInfo, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "error":
		return SeverityError, nil
	case "none", "off":
		return SeverityNone, nil
	}
	return SeverityInfo, Errorf("diag.ParseSeverity", ErrInvalidArg,
		"invalid severity '%s', must be one of: info, warning, error, none", s)
}

func (s Severity) slogLevel() slog.Level {
	switch s {
	case SeverityError:
		return slog.LevelError
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// =============================================================================
// EMITTER
// =============================================================================

// Options configures an Emitter. The zero value writes every diagnostic to
// os.Stderr without color or rate limiting.
type Options struct {
	// Writer receives the lines. Nil means os.Stderr.
	Writer io.Writer
	// Severity is the lowest severity printed.
	Severity Severity
	// Color selects label coloring. Empty means ColorNever.
	Color ColorMode
	// RateLimit caps warnings and info per second; 0 disables the limit.
	// Errors are never rate limited.
	RateLimit float64
	// Burst is the limiter bucket size. Values below 1 become 1.
	Burst int
	// Logger, when set, receives a structured copy of every printed line.
	Logger *slog.Logger
}

// Emitter writes diagnostics. It is safe for concurrent use; lines from
// different goroutines never interleave.
type Emitter struct {
	mu      sync.Mutex
	w       io.Writer
	min     Severity
	styles  labelStyles
	limiter *rate.Limiter
	logger  *slog.Logger
	dropped uint64
}

// New returns an Emitter configured by opts.
func New(opts Options) *Emitter {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	color := opts.Color
	if color == "" {
		color = ColorNever
	}
	e := &Emitter{
		w:      w,
		min:    opts.Severity,
		styles: newLabelStyles(w, color),
		logger: opts.Logger,
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		e.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return e
}

// Stderr returns a plain Emitter on os.Stderr that prints everything.
func Stderr() *Emitter {
	return New(Options{})
}

// Discard returns an Emitter that prints nothing.
func Discard() *Emitter {
	return New(Options{Writer: io.Discard, Severity: SeverityNone})
}

// Default returns e if non-nil, otherwise a discarding Emitter.
func Default(e *Emitter) *Emitter {
	if e != nil {
		return e
	}
	return Discard()
}

// Dropped returns the number of warnings and info lines discarded by the
// rate limiter.
func (e *Emitter) Dropped() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dropped
}

// emit prints one line. values are already formatted.
func (e *Emitter) emit(sev Severity, proc, msg string, values ...string) {
	if sev < e.min || e.min == SeverityNone {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if sev < SeverityError && e.limiter != nil && !e.limiter.Allow() {
		e.dropped++
		return
	}

	var b strings.Builder
	b.WriteString(e.styles.render(sev))
	b.WriteString(" in ")
	b.WriteString(proc)
	b.WriteString(": ")
	b.WriteString(msg)
	if len(values) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(values, ", "))
		b.WriteString("]")
	}
	b.WriteByte('\n')
	_, _ = io.WriteString(e.w, b.String())

	if e.logger != nil {
		attrs := []any{slog.String("proc", proc)}
		if len(values) > 0 {
			attrs = append(attrs, slog.Any("values", values))
		}
		e.logger.Log(context.Background(), sev.slogLevel(), msg, attrs...)
	}
}

// checkArgs reports an undefined msg or proc as an error of its own.
func (e *Emitter) checkArgs(routine, msg, proc string) bool {
	if msg == "" || proc == "" {
		e.emit(SeverityError, "diag", "msg or procname not defined in "+routine)
		return false
	}
	return true
}

func formatInt(v int) string {
	return strconv.Itoa(v)
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', 6, 32)
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrorInt prints an error and returns ival (typically 1).
func (e *Emitter) ErrorInt(msg, proc string, ival int) int {
	if e.checkArgs("ErrorInt", msg, proc) {
		e.emit(SeverityError, proc, msg)
	}
	return ival
}

// ErrorFloat prints an error and returns fval.
func (e *Emitter) ErrorFloat(msg, proc string, fval float32) float32 {
	if e.checkArgs("ErrorFloat", msg, proc) {
		e.emit(SeverityError, proc, msg)
	}
	return fval
}

// ErrorVal prints an error on e and returns val, typically nil or a zero
// value of the caller's return type.
func ErrorVal[T any](e *Emitter, msg, proc string, val T) T {
	if e.checkArgs("ErrorVal", msg, proc) {
		e.emit(SeverityError, proc, msg)
	}
	return val
}

// ErrorVoid prints an error.
func (e *Emitter) ErrorVoid(msg, proc string) {
	if e.checkArgs("ErrorVoid", msg, proc) {
		e.emit(SeverityError, proc, msg)
	}
}

// Report prints err as an error line. A *Error anywhere in the chain
// supplies the routine name; otherwise proc is used.
func (e *Emitter) Report(proc string, err error) {
	if err == nil {
		return
	}
	var de *Error
	if errors.As(err, &de) && de.Proc != "" {
		e.emit(SeverityError, de.Proc, de.Detail())
		return
	}
	if proc == "" {
		proc = "leptutil"
	}
	e.emit(SeverityError, proc, err.Error())
}

// =============================================================================
// WARNINGS AND INFO
// =============================================================================

// Warning prints a warning.
func (e *Emitter) Warning(msg, proc string) {
	if e.checkArgs("Warning", msg, proc) {
		e.emit(SeverityWarning, proc, msg)
	}
}

// WarningInt prints a warning with one integer value.
func (e *Emitter) WarningInt(msg, proc string, ival int) {
	if e.checkArgs("WarningInt", msg, proc) {
		e.emit(SeverityWarning, proc, msg, formatInt(ival))
	}
}

// Info prints an informational line.
func (e *Emitter) Info(msg, proc string) {
	if e.checkArgs("Info", msg, proc) {
		e.emit(SeverityInfo, proc, msg)
	}
}

// InfoInt prints an informational line with one integer value.
func (e *Emitter) InfoInt(msg, proc string, ival int) {
	if e.checkArgs("InfoInt", msg, proc) {
		e.emit(SeverityInfo, proc, msg, formatInt(ival))
	}
}

// InfoInt2 prints an informational line with two integer values.
func (e *Emitter) InfoInt2(msg, proc string, ival1, ival2 int) {
	if e.checkArgs("InfoInt2", msg, proc) {
		e.emit(SeverityInfo, proc, msg, formatInt(ival1), formatInt(ival2))
	}
}

// InfoFloat prints an informational line with one float value.
func (e *Emitter) InfoFloat(msg, proc string, fval float32) {
	if e.checkArgs("InfoFloat", msg, proc) {
		e.emit(SeverityInfo, proc, msg, formatFloat(fval))
	}
}

// InfoFloat2 prints an informational line with two float values.
func (e *Emitter) InfoFloat2(msg, proc string, fval1, fval2 float32) {
	if e.checkArgs("InfoFloat2", msg, proc) {
		e.emit(SeverityInfo, proc, msg, formatFloat(fval1), formatFloat(fval2))
	}
}
