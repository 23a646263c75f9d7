package main

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinorGridLines(t *testing.T) {
	lines := minorGridLines(1)
	require.Len(t, lines, 4) // one between each pair of majors
	assert.Equal(t, -7.5, lines[0].Value)
	assert.True(t, lines[0].IsMinor)

	lines = minorGridLines(4)
	require.Len(t, lines, 16)
	assert.Equal(t, -9.0, lines[0].Value)
	assert.Equal(t, -8.0, lines[1].Value)
}

func TestChartViewRendersFrame(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cv := NewChartView(DefaultScopeConfig())
	cv.Resize(fyne.NewSize(400, 200))

	start := time.Now().Add(-20 * time.Second)
	now := time.Now()
	samples := GenerateSamples(now, start, 10000, 10)
	cv.SetData(samples, now.Add(-10*time.Second), now)

	cv.render()
	require.NotNil(t, cv.img.Image, "a frame must be rastered")
	bounds := cv.img.Image.Bounds()
	assert.Equal(t, 400, bounds.Dx())
	assert.Equal(t, 200, bounds.Dy())
	assert.Greater(t, cv.LastDrawTime, time.Duration(0))
}

func TestChartViewSkipsDegenerateFrames(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cv := NewChartView(DefaultScopeConfig())

	// Zero size: nothing to draw on yet.
	now := time.Now()
	cv.SetData(GenerateSamples(now, now.Add(-time.Minute), 5000, 4), now.Add(-5*time.Second), now)
	cv.render()
	assert.Nil(t, cv.img.Image)

	// Sized but with a single sample (right after pipeline start).
	cv.Resize(fyne.NewSize(300, 150))
	cv.SetData(GenerateSamples(now, now, 5000, 4), now.Add(-5*time.Second), now)
	cv.render()
	assert.Nil(t, cv.img.Image)
}

func TestChartViewSampleLookup(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cv := NewChartView(DefaultScopeConfig())
	cv.Resize(fyne.NewSize(500, 200))

	start := time.Now().Add(-time.Minute)
	now := time.Now()
	samples := GenerateSamples(now, start, 10000, 10)
	cv.SetData(samples, now.Add(-10*time.Second), now)

	cv.mu.Lock()
	left, ok := cv.sampleAtLocked(0)
	cv.mu.Unlock()
	require.True(t, ok)
	assert.Equal(t, samples[0].Timestamp, left.Timestamp)

	cv.mu.Lock()
	right, ok := cv.sampleAtLocked(500)
	cv.mu.Unlock()
	require.True(t, ok)
	assert.Equal(t, now, right.Timestamp)

	cv.mu.Lock()
	middle, ok := cv.sampleAtLocked(250)
	cv.mu.Unlock()
	require.True(t, ok)
	assert.WithinDuration(t, now.Add(-5*time.Second), middle.Timestamp, 15*time.Millisecond)
}

func TestChartViewDispose(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	cv := NewChartView(DefaultScopeConfig())
	cv.Resize(fyne.NewSize(400, 200))

	start := time.Now().Add(-time.Minute)
	now := time.Now()
	cv.SetData(GenerateSamples(now, start, 5000, 6), now.Add(-5*time.Second), now)
	cv.render()
	require.NotNil(t, cv.img.Image)

	cv.Dispose()
	assert.Nil(t, cv.img.Image)
	assert.Nil(t, cv.samples)
}
