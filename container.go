package main

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ScopeContainer is the overall container managing a single scope view.
// There is one per tab.  It has four major components.

type ScopeContainer struct {
	widget.BaseWidget

	container *fyne.Container

	// viewHolder wraps the two stacked drawing regions (chart above,
	// time ruler below) so a reconfiguration can swap in freshly built
	// instances without touching the rest of the layout.
	viewHolder *fyne.Container

	// The Chart element wraps the external charting widget that plots
	// the generated samples.
	Chart *ChartView

	// The Axis element is the hand-drawn time ruler kept in lockstep
	// with the chart's horizontal range.
	Axis *TimeAxis

	// The Control element presents the editable configuration and the
	// run/pause button.
	Control *ControlBar

	// The Status element reports frame statistics to the user.
	Status *StatusBar

	clock *ScopeClock

	mu  sync.RWMutex
	cfg ScopeConfig

	// frame statistics for the status bar
	lastFrameTime time.Time
	frameInterval time.Duration
	sampleCount   int
}

func NewScopeContainer() *ScopeContainer {
	sc := &ScopeContainer{cfg: DefaultScopeConfig()}

	sc.Chart = NewChartView(sc.cfg)
	sc.Axis = NewTimeAxis(sc.cfg)
	sc.viewHolder = container.NewStack(container.NewBorder(nil, sc.Axis, nil, nil, sc.Chart))

	sc.clock = NewScopeClock(Settings.RefreshRate(), sc.tick)

	sc.Control = NewControlBar(sc)
	sc.Status = NewStatusBar(sc)

	sc.container = container.NewBorder(sc.Control, sc.Status, nil, nil, sc.viewHolder)

	sc.ExtendBaseWidget(sc)
	sc.clock.Start()
	return sc
}

func (sc *ScopeContainer) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(sc.container)
}

// Config returns a snapshot of the current configuration.
func (sc *ScopeContainer) Config() ScopeConfig {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.cfg
}

func (sc *ScopeContainer) Clock() *ScopeClock {
	return sc.clock
}

// surfaces returns the drawing surfaces of the current pipeline
// generation, so a tick that races a reconfiguration still updates a
// consistent pair.
func (sc *ScopeContainer) surfaces() (*ChartView, *TimeAxis) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.Chart, sc.Axis
}

// tick is one frame of the pipeline: generate the sample window for this
// instant, push it and the matching time range into the chart, hand the
// same instant to the ruler, then repaint both.
func (sc *ScopeContainer) tick(now time.Time) {
	cfg := sc.Config()
	samples := GenerateSamples(now, sc.clock.ProcessStart(), cfg.TimeWindowMs, cfg.Amplitude)

	chart, axis := sc.surfaces()
	chart.SetData(samples, now.Add(-cfg.TimeWindow()), now)
	axis.SetInstant(now)
	chart.Refresh()
	axis.Refresh()

	sc.mu.Lock()
	if !sc.lastFrameTime.IsZero() {
		sc.frameInterval = now.Sub(sc.lastFrameTime)
	}
	sc.lastFrameTime = now
	sc.sampleCount = len(samples)
	sc.mu.Unlock()
}

// Reconfigure tears the running pipeline down and rebuilds it with the new
// configuration: the frame clock is stopped, the chart instance disposed
// and re-created along with the ruler, the process start time re-fixed,
// and the clock restarted.  Called for every configuration change; there
// is deliberately no partial-update path.
func (sc *ScopeContainer) Reconfigure(cfg ScopeConfig) {
	sc.clock.Stop()

	sc.mu.Lock()
	sc.cfg = cfg
	old := sc.Chart
	sc.Chart = NewChartView(cfg)
	sc.Axis = NewTimeAxis(cfg)
	chart, axis := sc.Chart, sc.Axis
	sc.lastFrameTime = time.Time{}
	sc.mu.Unlock()

	old.Dispose()
	sc.viewHolder.Objects = []fyne.CanvasObject{container.NewBorder(nil, axis, nil, nil, chart)}
	sc.viewHolder.Refresh()

	sc.clock.ResetStart()
	sc.clock.Start()
}

// PauseResume toggles the frame clock without resetting the process start
// time, so the wave picks up where it left off.
func (sc *ScopeContainer) PauseResume() {
	if sc.clock.Running() {
		sc.clock.Stop()
	} else {
		sc.clock.Start()
	}
	sc.Control.SyncRunState()
}

// Shutdown stops everything this view owns.  Called when its tab closes.
func (sc *ScopeContainer) Shutdown() {
	sc.clock.Stop()
	sc.Status.StopClocks()
	sc.Chart.Dispose()
}

func (sc *ScopeContainer) frameStats() (time.Duration, int) {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.frameInterval, sc.sampleCount
}
