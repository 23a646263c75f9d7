package main

import (
	"math"
	"time"
)

// Sample is a single point of the generated waveform.
type Sample struct {
	Timestamp time.Time
	Value     float64
}

// GenerateSamples produces the full window of waveform samples for one
// frame: offsets from -window up to 0 seconds in fixed 20ms steps, where
// offset 0 is "now".  Offsets that predate the start of the pipeline are
// skipped rather than fabricated, so during the first few seconds the trace
// grows in from the right edge.  The wave has a fixed 2 second period and
// its phase advances with elapsed time, which is what makes it scroll.
func GenerateSamples(now, processStart time.Time, windowMs int, amplitude float64) []Sample {
	elapsed := now.Sub(processStart).Seconds()
	steps := windowMs / sampleStepMs

	samples := make([]Sample, 0, steps+1)
	for i := 0; i <= steps; i++ {
		offsetMs := (i - steps) * sampleStepMs
		t := float64(offsetMs) / 1000.0
		if t < -elapsed {
			continue
		}
		value := amplitude * math.Sin(2.0*math.Pi*(t+elapsed)/2.0)
		if value > valueCeiling {
			value = valueCeiling
		} else if value < -valueCeiling {
			value = -valueCeiling
		}
		samples = append(samples, Sample{
			Timestamp: now.Add(time.Duration(offsetMs) * time.Millisecond),
			Value:     value,
		})
	}
	return samples
}
