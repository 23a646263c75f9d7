package main

import (
	"sync"
	"time"
)

// The ScopeClock drives the whole render pipeline.  It owns the process
// start time (the fixed reference the waveform phase is computed from) and
// a background goroutine that invokes the tick callback at the display
// cadence.  Each tick fully completes before the next one is scheduled, so
// the generator output and both drawing surfaces always see the same
// instantaneous clock value within a frame.
//
// The clock is a two state machine: idle and running.  Starting it moves
// idle -> running and fires one tick immediately so a freshly configured
// view paints without waiting a frame.  Stop moves running -> idle, is
// idempotent, and guarantees no further frame is pending once the
// goroutine has seen its stop signal.

const (
	clockIdle = iota
	clockRunning
)

type ScopeClock struct {
	mu           sync.Mutex
	state        int
	stop         chan struct{}
	processStart time.Time
	cadence      time.Duration
	tick         func(now time.Time)
}

// NewScopeClock builds an idle clock.  The tick callback does one frame of
// work: generate samples, update the chart, update the ruler.
func NewScopeClock(refreshHz int, tick func(now time.Time)) *ScopeClock {
	return &ScopeClock{
		state:        clockIdle,
		processStart: time.Now(),
		cadence:      time.Second / time.Duration(refreshHz),
		tick:         tick,
	}
}

// Start moves the clock to running.  Starting an already running clock is
// a no-op, so duplicate loops can't accumulate.
func (clk *ScopeClock) Start() {
	clk.mu.Lock()
	defer clk.mu.Unlock()
	if clk.state == clockRunning {
		return
	}
	clk.state = clockRunning
	clk.stop = make(chan struct{})
	go clk.run(clk.stop)
}

// Stop moves the clock to idle and cancels the pending frame.  Safe to
// call any number of times.
func (clk *ScopeClock) Stop() {
	clk.mu.Lock()
	defer clk.mu.Unlock()
	if clk.state != clockRunning {
		return
	}
	clk.state = clockIdle
	close(clk.stop)
	clk.stop = nil
}

func (clk *ScopeClock) Running() bool {
	clk.mu.Lock()
	defer clk.mu.Unlock()
	return clk.state == clockRunning
}

// ResetStart re-fixes the process start time.  Done on reconfiguration but
// not on pause/resume or resize, so the wave phase survives both.
func (clk *ScopeClock) ResetStart() {
	clk.mu.Lock()
	clk.processStart = time.Now()
	clk.mu.Unlock()
}

func (clk *ScopeClock) ProcessStart() time.Time {
	clk.mu.Lock()
	defer clk.mu.Unlock()
	return clk.processStart
}

func (clk *ScopeClock) Elapsed() time.Duration {
	return time.Since(clk.ProcessStart())
}

// SetRefreshRate adjusts the cadence of the running loop.  Takes effect on
// the next frame.
func (clk *ScopeClock) SetRefreshRate(hz int) {
	if hz <= 0 {
		return
	}
	clk.mu.Lock()
	clk.cadence = time.Second / time.Duration(hz)
	clk.mu.Unlock()
}

func (clk *ScopeClock) Cadence() time.Duration {
	clk.mu.Lock()
	defer clk.mu.Unlock()
	return clk.cadence
}

func (clk *ScopeClock) run(stop chan struct{}) {
	clk.tick(time.Now())
	for {
		select {
		case <-stop:
			return
		case <-time.After(clk.Cadence()):
			clk.tick(time.Now())
		}
	}
}
