package main

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	xlayout "fyne.io/x/fyne/layout"
)

// The ControlBar structure owns the editable configuration of one scope
// view: the time window and amplitude dropdowns, the per-axis sub-scale
// checkboxes with their density steppers, and the run/pause button.  Every
// committed change is pushed to the ScopeContainer as a whole new
// ScopeConfig, which tears down and rebuilds the render pipeline.

type ControlBar struct {
	widget.BaseWidget

	scope *ScopeContainer

	windowSelect    *widget.Select
	amplitudeSelect *widget.Select
	xSubCheck       *widget.Check
	ySubCheck       *widget.Check
	xDensityEntry   *DensityEntry
	yDensityEntry   *DensityEntry
	xDensityRow     *fyne.Container
	yDensityRow     *fyne.Container
	runStopButton   *widget.Button

	bar *fyne.Container

	// committed density values; the entries may hold transient text
	xDensity int
	yDensity int

	ready bool // suppresses reconfiguration while the bar is being built
}

func NewControlBar(scope *ScopeContainer) *ControlBar {
	cb := &ControlBar{scope: scope}
	cfg := scope.Config()
	cb.xDensity = cfg.XScaleDensity
	cb.yDensity = cfg.YScaleDensity

	windowLabels := make([]string, len(timeWindowChoices))
	for i, ms := range timeWindowChoices {
		windowLabels[i] = fmt.Sprintf("%d s", ms/1000)
	}
	cb.windowSelect = widget.NewSelect(windowLabels, func(string) { cb.commit() })
	cb.windowSelect.SetSelected(fmt.Sprintf("%d s", cfg.TimeWindowMs/1000))

	amplitudeLabels := make([]string, len(amplitudeChoices))
	for i, a := range amplitudeChoices {
		amplitudeLabels[i] = strconv.FormatFloat(a, 'g', -1, 64)
	}
	cb.amplitudeSelect = widget.NewSelect(amplitudeLabels, func(string) { cb.commit() })
	cb.amplitudeSelect.SetSelected(strconv.FormatFloat(cfg.Amplitude, 'g', -1, 64))

	cb.xDensityEntry = NewDensityEntry(cb.xDensity, func(value int) {
		cb.xDensity = value
		cb.commit()
	})
	cb.yDensityEntry = NewDensityEntry(cb.yDensity, func(value int) {
		cb.yDensity = value
		cb.commit()
	})

	cb.xDensityRow = container.New(layout.NewHBoxLayout(), widget.NewLabel("density"), cb.xDensityEntry)
	cb.yDensityRow = container.New(layout.NewHBoxLayout(), widget.NewLabel("density"), cb.yDensityEntry)

	cb.xSubCheck = widget.NewCheck("Time sub-scale", func(checked bool) {
		if checked {
			cb.xDensityRow.Show()
		} else {
			cb.xDensityRow.Hide()
		}
		cb.commit()
	})
	cb.xSubCheck.SetChecked(cfg.ShowXSubScale)

	cb.ySubCheck = widget.NewCheck("Value sub-scale", func(checked bool) {
		if checked {
			cb.yDensityRow.Show()
		} else {
			cb.yDensityRow.Hide()
		}
		cb.commit()
	})
	cb.ySubCheck.SetChecked(cfg.ShowYSubScale)

	if !cfg.ShowXSubScale {
		cb.xDensityRow.Hide()
	}
	if !cfg.ShowYSubScale {
		cb.yDensityRow.Hide()
	}

	cb.runStopButton = widget.NewButtonWithIcon("Pause", theme.MediaPauseIcon(), func() {
		cb.scope.PauseResume()
	})

	cb.bar = container.New(xlayout.NewHPortion([]float64{0.35, 0.55, 0.1}),
		container.New(layout.NewHBoxLayout(),
			widget.NewLabel("Window:"), cb.windowSelect,
			widget.NewLabel("Amplitude:"), cb.amplitudeSelect),
		container.New(layout.NewHBoxLayout(),
			cb.xSubCheck, cb.xDensityRow, layout.NewSpacer(),
			cb.ySubCheck, cb.yDensityRow),
		container.New(layout.NewHBoxLayout(), layout.NewSpacer(), cb.runStopButton))

	cb.ExtendBaseWidget(cb)
	cb.ready = true
	return cb
}

func (cb *ControlBar) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cb.bar)
}

// currentConfig assembles the configuration from the widget states and the
// committed density values.
func (cb *ControlBar) currentConfig() ScopeConfig {
	cfg := ScopeConfig{
		TimeWindowMs:  timeWindowChoices[0],
		Amplitude:     amplitudeChoices[0],
		ShowXSubScale: cb.xSubCheck.Checked,
		ShowYSubScale: cb.ySubCheck.Checked,
		XScaleDensity: clampDensity(cb.xDensity),
		YScaleDensity: clampDensity(cb.yDensity),
	}
	if i := cb.windowSelect.SelectedIndex(); i >= 0 && i < len(timeWindowChoices) {
		cfg.TimeWindowMs = timeWindowChoices[i]
	}
	if i := cb.amplitudeSelect.SelectedIndex(); i >= 0 && i < len(amplitudeChoices) {
		cfg.Amplitude = amplitudeChoices[i]
	}
	return cfg
}

func (cb *ControlBar) commit() {
	if !cb.ready {
		return
	}
	cb.scope.Reconfigure(cb.currentConfig())
	cb.SyncRunState()
}

// SyncRunState updates the run/pause button to match the clock state.
func (cb *ControlBar) SyncRunState() {
	if cb.scope.Clock().Running() {
		cb.runStopButton.SetIcon(theme.MediaPauseIcon())
		cb.runStopButton.SetText("Pause")
	} else {
		cb.runStopButton.SetIcon(theme.MediaPlayIcon())
		cb.runStopButton.SetText("Run")
	}
}

// DensityEntry is a numeric stepper field for sub-scale density.  Empty
// text commits zero right away so the field can be cleared mid-edit;
// non-numeric text is ignored; numeric input is committed clamped to
// [0,6].  Losing focus rewrites the text to the committed value, which
// cleans up whatever out-of-range or partial text was left behind.
type DensityEntry struct {
	widget.Entry

	committed int
	onCommit  func(int)
}

func NewDensityEntry(initial int, onCommit func(int)) *DensityEntry {
	e := &DensityEntry{committed: clampDensity(initial), onCommit: onCommit}
	e.ExtendBaseWidget(e)
	e.SetText(strconv.Itoa(e.committed))
	e.OnChanged = e.textChanged
	return e
}

func (e *DensityEntry) Committed() int {
	return e.committed
}

func (e *DensityEntry) textChanged(text string) {
	value, ok := parseDensity(text)
	if !ok {
		return
	}
	if value == e.committed {
		return
	}
	e.committed = value
	if e.onCommit != nil {
		e.onCommit(value)
	}
}

// FocusLost re-clamps defensively: whatever the text ended up as, it is
// replaced by the committed in-range value.
func (e *DensityEntry) FocusLost() {
	clean := strconv.Itoa(e.committed)
	if e.Text != clean {
		e.SetText(clean)
	}
	e.Entry.FocusLost()
}
