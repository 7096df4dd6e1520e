// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timer

import (
	"strings"
	"time"

	"github.com/jeranaias/leptutil/internal/diag"
)

// Source produces monotonically non-decreasing readings. The difference
// between two readings is the time elapsed between them.
type Source interface {
	Read() time.Duration
}

// SourceFunc adapts a function to a Source.
type SourceFunc func() time.Duration

func (f SourceFunc) Read() time.Duration { return f() }

// CPU returns the source measuring user CPU time of the current process.
func CPU() Source {
	return SourceFunc(userCPUTime)
}

// Wall returns a wall-clock source. A nil now uses time.Now.
func Wall(now func() time.Time) Source {
	if now == nil {
		now = time.Now
	}
	origin := now()
	return SourceFunc(func() time.Duration {
		return now().Sub(origin)
	})
}

// ParseSource maps "cpu" or "wall" to a Source.
func ParseSource(name string) (Source, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "cpu", "":
		return CPU(), nil
	case "wall":
		return Wall(nil), nil
	}
	return nil, diag.Errorf("timer.ParseSource", diag.ErrInvalidArg,
		"invalid timer source '%s', must be one of: cpu, wall", name)
}

// Timer is one measurement. It is owned by the caller that started it.
type Timer struct {
	src     Source
	start   time.Duration
	stopped bool
	total   time.Duration
}

// Start begins a measurement on src. A nil src uses CPU().
func Start(src Source) *Timer {
	if src == nil {
		src = CPU()
	}
	return &Timer{src: src, start: src.Read()}
}

// StartCPU begins a user CPU time measurement.
func StartCPU() *Timer {
	return Start(CPU())
}

// Elapsed returns the time since Start, or the measured total once the
// timer has been stopped.
func (t *Timer) Elapsed() time.Duration {
	if t.stopped {
		return t.total
	}
	return t.src.Read() - t.start
}

// Stop ends the measurement and returns the elapsed time in seconds.
// Later calls return the same value.
func (t *Timer) Stop() float64 {
	if !t.stopped {
		t.total = t.src.Read() - t.start
		t.stopped = true
	}
	return t.total.Seconds()
}
