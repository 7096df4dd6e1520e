// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timer

import (
	"crypto/sha256"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/leptutil/internal/diag"
)

// fakeSource is a Source advanced by hand.
type fakeSource struct {
	now time.Duration
}

func (f *fakeSource) Read() time.Duration { return f.now }

func TestTimer_StartStop(t *testing.T) {
	src := &fakeSource{now: 5 * time.Second}
	tm := Start(src)

	src.now += 1500 * time.Millisecond
	assert.Equal(t, 1500*time.Millisecond, tm.Elapsed())

	src.now += 500 * time.Millisecond
	assert.InDelta(t, 2.0, tm.Stop(), 1e-9)

	// Stopped timers keep their total.
	src.now += time.Hour
	assert.InDelta(t, 2.0, tm.Stop(), 1e-9)
	assert.Equal(t, 2*time.Second, tm.Elapsed())
}

func TestTimer_IndependentMeasurements(t *testing.T) {
	src := &fakeSource{}
	outer := Start(src)
	src.now += time.Second
	inner := Start(src)
	src.now += time.Second

	assert.InDelta(t, 1.0, inner.Stop(), 1e-9)
	assert.InDelta(t, 2.0, outer.Stop(), 1e-9)
}

func TestWall_UsesInjectedClock(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	current := base
	src := Wall(func() time.Time { return current })

	tm := Start(src)
	current = base.Add(250 * time.Millisecond)
	assert.InDelta(t, 0.25, tm.Stop(), 1e-9)
}

func TestCPU_AdvancesUnderLoad(t *testing.T) {
	tm := StartCPU()
	sum := [32]byte{}
	deadline := time.Now().Add(50 * time.Millisecond)
	for time.Now().Before(deadline) {
		sum = sha256.Sum256(sum[:])
	}
	elapsed := tm.Stop()
	assert.GreaterOrEqual(t, elapsed, 0.0)
	assert.Less(t, elapsed, 60.0)
}

func TestStart_NilUsesCPU(t *testing.T) {
	tm := Start(nil)
	require.NotNil(t, tm)
	assert.GreaterOrEqual(t, tm.Elapsed(), time.Duration(0))
}

func TestParseSource(t *testing.T) {
	for _, name := range []string{"cpu", "CPU", "wall", ""} {
		src, err := ParseSource(name)
		require.NoError(t, err, name)
		assert.NotNil(t, src)
	}
	_, err := ParseSource("gpu")
	require.ErrorIs(t, err, diag.ErrInvalidArg)
}
