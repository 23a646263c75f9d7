package main

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ChartView wraps the go-chart library as the scope's trace display.  Every
// frame the clock pushes a fresh sample buffer and the current time range
// into it; the chart is then re-rendered from scratch at the widget's pixel
// size and swapped into a canvas.Image.  The widget never keeps samples
// from previous frames.
//
// The horizontal axis of the chart itself is hidden: time ticks are the
// job of the TimeAxis ruler drawn directly below, which shares the same
// instantaneous range.

type ChartView struct {
	widget.BaseWidget

	Title        string
	LastDrawTime time.Duration // statistic of how long the last render took

	img *canvas.Image

	mu         sync.Mutex
	samples    []Sample
	xMin, xMax time.Time
	cfg        ScopeConfig

	// hover tooltip state
	tipBox  *canvas.Rectangle
	tipText *canvas.Text
}

func NewChartView(cfg ScopeConfig) *ChartView {
	cv := &ChartView{Title: "Signal", cfg: cfg}
	cv.img = canvas.NewImageFromImage(nil)
	cv.img.FillMode = canvas.ImageFillStretch

	cv.tipBox = canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: 160})
	cv.tipText = canvas.NewText("", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	cv.tipText.TextSize = 11
	cv.tipBox.Hide()
	cv.tipText.Hide()

	cv.ExtendBaseWidget(cv)
	return cv
}

func (cv *ChartView) CreateRenderer() fyne.WidgetRenderer {
	return &chartViewRenderer{view: cv}
}

func (cv *ChartView) MinSize() fyne.Size {
	return fyne.NewSize(300, 150)
}

// SetData installs the sample buffer and horizontal range for the current
// frame.  The caller is expected to Refresh afterwards.
func (cv *ChartView) SetData(samples []Sample, xMin, xMax time.Time) {
	cv.mu.Lock()
	cv.samples = samples
	cv.xMin, cv.xMax = xMin, xMax
	cv.mu.Unlock()
}

// Dispose drops the rendered frame and sample buffer.  The view must not
// be updated again afterwards; reconfiguration creates a fresh instance.
func (cv *ChartView) Dispose() {
	cv.mu.Lock()
	cv.samples = nil
	cv.img.Image = nil
	cv.mu.Unlock()
}

// pixelSize reports the widget size in physical pixels, honoring the
// canvas scale so the chart stays crisp on high-DPI displays.
func (cv *ChartView) pixelSize() (int, int) {
	size := cv.Size()
	scale := float32(1.0)
	if app := fyne.CurrentApp(); app != nil && app.Driver() != nil {
		if cnv := app.Driver().CanvasForObject(cv); cnv != nil {
			scale = cnv.Scale()
		}
	}
	return int(size.Width * scale), int(size.Height * scale)
}

// render builds the go-chart description for the current frame and rasters
// it.  Fixed vertical range, moving horizontal range, minor gridlines on
// the value axis driven by the configuration.
func (cv *ChartView) render() {
	cv.mu.Lock()
	defer cv.mu.Unlock()

	w, h := cv.pixelSize()
	if w < 10 || h < 10 || len(cv.samples) < 2 {
		return
	}

	start := time.Now()

	xs := make([]time.Time, len(cv.samples))
	ys := make([]float64, len(cv.samples))
	for i, s := range cv.samples {
		xs[i] = s.Timestamp
		ys[i] = s.Value
	}

	yAxis := chart.YAxis{
		Range: &chart.ContinuousRange{Min: -valueCeiling, Max: valueCeiling},
		Ticks: []chart.Tick{
			{Value: -10, Label: "-10"}, {Value: -5, Label: "-5"},
			{Value: 0, Label: "0"}, {Value: 5, Label: "5"}, {Value: 10, Label: "10"},
		},
		GridMajorStyle: chart.Style{
			StrokeColor: drawing.Color{R: 90, G: 90, B: 90, A: 255},
			StrokeWidth: 1.0,
		},
	}
	if cv.cfg.ShowYSubScale && cv.cfg.YScaleDensity > 0 {
		yAxis.GridLines = minorGridLines(cv.cfg.YScaleDensity)
		yAxis.GridMinorStyle = chart.Style{
			StrokeColor: drawing.Color{R: 55, G: 55, B: 55, A: 255},
			StrokeWidth: 1.0,
		}
	}

	ch := chart.Chart{
		Title:  cv.Title,
		Width:  w,
		Height: h,
		Background: chart.Style{
			Padding: chart.Box{Top: 8, Left: 8, Right: 8, Bottom: 4},
		},
		XAxis: chart.XAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{
				Min: chart.TimeToFloat64(cv.xMin),
				Max: chart.TimeToFloat64(cv.xMax),
			},
		},
		YAxis: yAxis,
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "signal",
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2.0,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		fyne.LogError("chart render failed", err)
		return // keep the previous frame on screen
	}
	frame, err := png.Decode(&buf)
	if err != nil {
		fyne.LogError("chart frame decode failed", err)
		return
	}
	cv.img.Image = frame
	cv.LastDrawTime = time.Since(start)
}

// minorGridLines spreads density gridlines between each pair of major
// ticks of the fixed [-10,10] range (majors every 5 units).
func minorGridLines(density int) []chart.GridLine {
	lines := make([]chart.GridLine, 0, 4*density)
	step := 5.0 / float64(density+1)
	for major := -10.0; major < 10.0; major += 5.0 {
		for i := 1; i <= density; i++ {
			lines = append(lines, chart.GridLine{IsMinor: true, Value: major + float64(i)*step})
		}
	}
	return lines
}

// Hover tooltip: maps the cursor position back through the current x range
// to the nearest sample and shows its timestamp and value at millisecond
// precision.

var _ desktop.Hoverable = (*ChartView)(nil)

func (cv *ChartView) MouseIn(ev *desktop.MouseEvent) {
	cv.MouseMoved(ev)
}

func (cv *ChartView) MouseMoved(ev *desktop.MouseEvent) {
	cv.mu.Lock()
	sample, ok := cv.sampleAtLocked(ev.Position.X)
	cv.mu.Unlock()
	if !ok {
		cv.hideTooltip()
		return
	}

	cv.tipText.Text = fmt.Sprintf("%s  %.3f",
		sample.Timestamp.Format("15:04:05.000"), sample.Value)
	tipSize := fyne.MeasureText(cv.tipText.Text, cv.tipText.TextSize, cv.tipText.TextStyle)
	pad := float32(4)
	pos := fyne.NewPos(ev.Position.X+10, ev.Position.Y-tipSize.Height-10)
	if pos.X+tipSize.Width+2*pad > cv.Size().Width {
		pos.X = cv.Size().Width - tipSize.Width - 2*pad
	}
	if pos.Y < 0 {
		pos.Y = ev.Position.Y + 14
	}
	cv.tipBox.Move(pos)
	cv.tipBox.Resize(fyne.NewSize(tipSize.Width+2*pad, tipSize.Height+2*pad))
	cv.tipText.Move(fyne.NewPos(pos.X+pad, pos.Y+pad))
	cv.tipBox.Show()
	cv.tipText.Show()
	canvas.Refresh(cv.tipBox)
	canvas.Refresh(cv.tipText)
}

func (cv *ChartView) MouseOut() {
	cv.hideTooltip()
}

func (cv *ChartView) hideTooltip() {
	cv.tipBox.Hide()
	cv.tipText.Hide()
	canvas.Refresh(cv.tipBox)
	canvas.Refresh(cv.tipText)
}

// sampleAtLocked resolves a widget x coordinate to the nearest sample of
// the current frame.  Callers must hold cv.mu.
func (cv *ChartView) sampleAtLocked(x float32) (Sample, bool) {
	width := cv.Size().Width
	if len(cv.samples) == 0 || width <= 0 || !cv.xMax.After(cv.xMin) {
		return Sample{}, false
	}
	frac := float64(x / width)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	target := cv.xMin.Add(time.Duration(frac * float64(cv.xMax.Sub(cv.xMin))))

	best := cv.samples[0]
	bestDelta := absDuration(best.Timestamp.Sub(target))
	for _, s := range cv.samples[1:] {
		if delta := absDuration(s.Timestamp.Sub(target)); delta < bestDelta {
			best, bestDelta = s, delta
		}
	}
	return best, true
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

type chartViewRenderer struct {
	view *ChartView
}

func (r *chartViewRenderer) MinSize() fyne.Size {
	return r.view.MinSize()
}

func (r *chartViewRenderer) Layout(size fyne.Size) {
	r.view.img.Resize(size)
	r.view.img.Move(fyne.NewPos(0, 0))
}

func (r *chartViewRenderer) Refresh() {
	r.view.render()
	canvas.Refresh(r.view.img)
}

func (r *chartViewRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.view.img, r.view.tipBox, r.view.tipText}
}

func (r *chartViewRenderer) Destroy() {
	r.view.Dispose()
}
