package main

import (
	"strconv"
	"time"
)

const (
	sampleStepMs   = 20     // simulated time between generated samples
	valueCeiling   = 10.0   // generated values are clamped to [-valueCeiling, valueCeiling]
	tickCycleMs    = 2000   // one major-tick scroll cycle of the time ruler
	majorTickCount = 7      // major ticks considered per frame; the last is usually clipped
	minDensity     = 0
	maxDensity     = 6
)

var (
	timeWindowChoices = []int{5000, 10000, 30000, 60000} // milliseconds
	amplitudeChoices  = []float64{2, 4, 6, 8, 10}
)

// ScopeConfig holds everything the user can change about a single scope
// view.  It is owned by the ControlBar and only ever read by the other
// components; any change means the whole render pipeline gets torn down
// and rebuilt with the new values.
type ScopeConfig struct {
	TimeWindowMs  int     // trailing duration shown, in milliseconds
	Amplitude     float64 // peak magnitude of the generated sine
	ShowXSubScale bool
	ShowYSubScale bool
	XScaleDensity int // sub-ticks on the time ruler, 0..6
	YScaleDensity int // minor gridlines on the value axis, 0..6
}

func DefaultScopeConfig() ScopeConfig {
	return ScopeConfig{
		TimeWindowMs:  10000,
		Amplitude:     10,
		ShowXSubScale: false,
		ShowYSubScale: false,
		XScaleDensity: 3,
		YScaleDensity: 3,
	}
}

func (c ScopeConfig) TimeWindow() time.Duration {
	return time.Duration(c.TimeWindowMs) * time.Millisecond
}

func clampDensity(d int) int {
	if d < minDensity {
		return minDensity
	}
	if d > maxDensity {
		return maxDensity
	}
	return d
}

// parseDensity interprets the text of a density entry.  An empty string is
// a transient zero (so the user can clear the field while typing) and
// anything non-numeric is reported as not-ok so the caller can ignore it.
// The returned value is already clamped.
func parseDensity(text string) (int, bool) {
	if text == "" {
		return 0, true
	}
	value, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return clampDensity(value), true
}
