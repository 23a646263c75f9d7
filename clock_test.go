package main

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeClockStateMachine(t *testing.T) {
	var ticks atomic.Int64
	clk := NewScopeClock(200, func(time.Time) { ticks.Add(1) })

	assert.False(t, clk.Running())

	clk.Start()
	assert.True(t, clk.Running())

	// Starting again must not spin up a second loop.
	clk.Start()
	assert.True(t, clk.Running())

	time.Sleep(60 * time.Millisecond)
	require.Greater(t, ticks.Load(), int64(1), "clock should tick at the display cadence")

	clk.Stop()
	assert.False(t, clk.Running())
	clk.Stop() // idempotent

	// Allow any in-flight frame to drain, then verify no more arrive.
	time.Sleep(20 * time.Millisecond)
	seen := ticks.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, seen, ticks.Load(), "stopped clock must not tick")

	// The clock is restartable.
	clk.Start()
	time.Sleep(30 * time.Millisecond)
	assert.Greater(t, ticks.Load(), seen)
	clk.Stop()
}

func TestScopeClockImmediateFirstTick(t *testing.T) {
	var ticks atomic.Int64
	clk := NewScopeClock(1, func(time.Time) { ticks.Add(1) }) // 1Hz: only the primer fires

	clk.Start()
	defer clk.Stop()

	assert.Eventually(t, func() bool { return ticks.Load() == 1 },
		200*time.Millisecond, 5*time.Millisecond,
		"starting the clock paints one frame without waiting a full cadence")
}

func TestScopeClockResetStart(t *testing.T) {
	clk := NewScopeClock(60, func(time.Time) {})

	first := clk.ProcessStart()
	time.Sleep(5 * time.Millisecond)
	clk.ResetStart()
	assert.True(t, clk.ProcessStart().After(first))
}

func TestScopeClockSetRefreshRate(t *testing.T) {
	clk := NewScopeClock(60, func(time.Time) {})
	assert.Equal(t, time.Second/60, clk.Cadence())

	clk.SetRefreshRate(30)
	assert.Equal(t, time.Second/30, clk.Cadence())

	clk.SetRefreshRate(0) // ignored
	assert.Equal(t, time.Second/30, clk.Cadence())
}
