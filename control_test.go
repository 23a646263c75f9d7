package main

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

func TestControlBarReflectsDefaults(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	sc := NewScopeContainer()
	defer sc.Shutdown()
	cb := sc.Control

	assert.Equal(t, "10 s", cb.windowSelect.Selected)
	assert.Equal(t, "10", cb.amplitudeSelect.Selected)
	assert.False(t, cb.xSubCheck.Checked)
	assert.False(t, cb.ySubCheck.Checked)
	assert.False(t, cb.xDensityRow.Visible())
	assert.False(t, cb.yDensityRow.Visible())
	assert.Equal(t, DefaultScopeConfig(), cb.currentConfig())
}

func TestControlBarCommitsSelections(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	sc := NewScopeContainer()
	defer sc.Shutdown()
	cb := sc.Control

	cb.windowSelect.SetSelected("30 s")
	assert.Equal(t, 30000, sc.Config().TimeWindowMs)

	cb.amplitudeSelect.SetSelected("4")
	assert.Equal(t, 4.0, sc.Config().Amplitude)

	cb.xSubCheck.SetChecked(true)
	assert.True(t, sc.Config().ShowXSubScale)
	assert.True(t, cb.xDensityRow.Visible(), "density stepper appears with its checkbox")

	cb.xDensityEntry.SetText("9")
	assert.Equal(t, 6, sc.Config().XScaleDensity, "committed density is clamped")

	cb.xSubCheck.SetChecked(false)
	assert.False(t, sc.Config().ShowXSubScale)
	assert.False(t, cb.xDensityRow.Visible())

	assert.True(t, sc.Clock().Running(), "pipeline keeps running across reconfigurations")
}

func TestControlBarRunStopButton(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	sc := NewScopeContainer()
	defer sc.Shutdown()
	cb := sc.Control

	assert.Equal(t, "Pause", cb.runStopButton.Text)

	test.Tap(cb.runStopButton)
	assert.False(t, sc.Clock().Running())
	assert.Equal(t, "Run", cb.runStopButton.Text)

	test.Tap(cb.runStopButton)
	assert.True(t, sc.Clock().Running())
	assert.Equal(t, "Pause", cb.runStopButton.Text)
}
