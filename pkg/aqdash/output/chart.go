package output

import (
	"html"
	"io"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

// Default image size in pixels.
const (
	DefaultWidth  = 1024
	DefaultHeight = 480
)

// maxCategoryTicks caps the labelled ticks of a non-time x-axis.
const maxCategoryTicks = 12

// dateLayouts are the date formats recognised for a time x-axis.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"02.01.2006",
}

// ImageOptions configures chart images.
type ImageOptions struct {
	Width  int
	Height int
}

func (o ImageOptions) size() (int, int) {
	w, h := o.Width, o.Height
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return w, h
}

// RenderSVG draws a chart specification as SVG. go-chart writes text
// elements verbatim, so every drawn string is XML-escaped first.
func RenderSVG(w io.Writer, spec models.ChartSpec, opts ImageOptions) error {
	return buildChart(escapeText(spec), opts).Render(chart.SVG, w)
}

// RenderPNG draws a chart specification as PNG.
func RenderPNG(w io.Writer, spec models.ChartSpec, opts ImageOptions) error {
	return buildChart(spec, opts).Render(chart.PNG, w)
}

// escapeText returns a copy of spec with the title, axis names, series
// names and x labels escaped for markup.
func escapeText(spec models.ChartSpec) models.ChartSpec {
	out := models.ChartSpec{
		Title:      html.EscapeString(spec.Title),
		XAxisTitle: html.EscapeString(spec.XAxisTitle),
		YAxisTitle: html.EscapeString(spec.YAxisTitle),
		Series:     make([]models.LineSeries, len(spec.Series)),
	}
	for i, s := range spec.Series {
		xs := make([]string, len(s.X))
		for j, x := range s.X {
			xs[j] = html.EscapeString(x)
		}
		out.Series[i] = models.LineSeries{Name: html.EscapeString(s.Name), Mode: s.Mode, X: xs, Y: s.Y}
	}
	return out
}

// buildChart converts a chart specification into a go-chart chart. Each series is
// drawn as one line per run of present values, so missing values leave a gap.
// When every x value parses as a date the x-axis is a time axis; otherwise x values are
// treated as ordered categories.
func buildChart(spec models.ChartSpec, opts ImageOptions) chart.Chart {
	width, height := opts.size()

	var (
		series []chart.Series
		xAxis  chart.XAxis
	)
	if times, ok := parseAllDates(spec.Series); ok {
		series, xAxis = timeSeries(spec.Series, times)
	} else {
		series, xAxis = categorySeries(spec.Series)
	}
	xAxis.Name = spec.XAxisTitle

	yMin, yMax := valueBounds(spec.Series)
	yAxis := chart.YAxis{
		Name:  spec.YAxisTitle,
		Range: &chart.ContinuousRange{Min: yMin, Max: yMax},
	}

	if len(series) == 0 {
		// go-chart refuses to draw without a visible series.
		series = []chart.Series{chart.ContinuousSeries{
			Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 1},
			XValues: []float64{0, 1},
			YValues: []float64{yMin, yMax},
		}}
		xAxis = chart.XAxis{Name: spec.XAxisTitle, Range: &chart.ContinuousRange{Min: 0, Max: 1}}
	}

	ch := chart.Chart{
		Title:      spec.Title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 16}},
		XAxis:      xAxis,
		YAxis:      yAxis,
		Series:     series,
	}
	if len(spec.Series) > 0 {
		// the legend lists series, not the segments they were split into
		legend := ch
		legend.Series = make([]chart.Series, len(spec.Series))
		for i, s := range spec.Series {
			legend.Series[i] = chart.ContinuousSeries{Name: s.Name, Style: lineStyle(i, 2)}
		}
		ch.Elements = []chart.Renderable{chart.Legend(&legend)}
	}
	return ch
}

// segments returns the [start, end) index ranges of consecutive present values.
func segments(ys []float64) [][2]int {
	var out [][2]int
	start := -1
	for i, y := range ys {
		switch {
		case models.IsMissing(y):
			if start >= 0 {
				out = append(out, [2]int{start, i})
				start = -1
			}
		case start < 0:
			start = i
		}
	}
	if start >= 0 {
		out = append(out, [2]int{start, len(ys)})
	}
	return out
}

// lineStyle returns the style of the i-th series. Single points get a dot
// since a one-point line has no length.
func lineStyle(i, points int) chart.Style {
	col := chart.GetDefaultColor(i)
	st := chart.Style{
		StrokeColor: col,
		StrokeWidth: 2,
	}
	if points == 1 {
		st.DotWidth = 4
		st.DotColor = col
	}
	return st
}

// parseAllDates parses the x values of every series as dates.
func parseAllDates(series []models.LineSeries) ([][]time.Time, bool) {
	out := make([][]time.Time, len(series))
	for i, s := range series {
		ts := make([]time.Time, len(s.X))
		for j, x := range s.X {
			t, ok := parseDate(x)
			if !ok {
				return nil, false
			}
			ts[j] = t
		}
		out[i] = ts
	}
	return out, len(series) > 0
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func timeSeries(spec []models.LineSeries, times [][]time.Time) ([]chart.Series, chart.XAxis) {
	var minT, maxT time.Time
	series := make([]chart.Series, 0, len(spec))
	for i, s := range spec {
		for _, t := range times[i] {
			if minT.IsZero() || t.Before(minT) {
				minT = t
			}
			if maxT.IsZero() || t.After(maxT) {
				maxT = t
			}
		}
		for _, seg := range segments(s.Y) {
			series = append(series, chart.TimeSeries{
				Name:    s.Name,
				Style:   lineStyle(i, seg[1]-seg[0]),
				XValues: times[i][seg[0]:seg[1]],
				YValues: s.Y[seg[0]:seg[1]],
			})
		}
	}

	minF, maxF := chart.TimeToFloat64(minT), chart.TimeToFloat64(maxT)
	if maxF <= minF {
		// Ensure non-zero X range even when there's only one timestamp
		minF = chart.TimeToFloat64(minT.Add(-12 * time.Hour))
		maxF = chart.TimeToFloat64(maxT.Add(12 * time.Hour))
	}

	format := "2006-01-02"
	if maxT.Sub(minT) < 48*time.Hour {
		format = "01-02 15:04"
	}
	return series, chart.XAxis{
		ValueFormatter: chart.TimeValueFormatterWithFormat(format),
		Range:          &chart.ContinuousRange{Min: minF, Max: maxF},
	}
}

// categorySeries places x values on an ordinal axis built from the distinct
// x values in order of first appearance across all series.
func categorySeries(spec []models.LineSeries) ([]chart.Series, chart.XAxis) {
	position := make(map[string]float64)
	var labels []string
	for _, s := range spec {
		for _, x := range s.X {
			if _, ok := position[x]; !ok {
				position[x] = float64(len(labels))
				labels = append(labels, x)
			}
		}
	}

	series := make([]chart.Series, 0, len(spec))
	for i, s := range spec {
		xs := make([]float64, len(s.X))
		for j, x := range s.X {
			xs[j] = position[x]
		}
		for _, seg := range segments(s.Y) {
			series = append(series, chart.ContinuousSeries{
				Name:    s.Name,
				Style:   lineStyle(i, seg[1]-seg[0]),
				XValues: xs[seg[0]:seg[1]],
				YValues: s.Y[seg[0]:seg[1]],
			})
		}
	}

	step := 1
	if len(labels) > maxCategoryTicks {
		step = int(math.Ceil(float64(len(labels)) / maxCategoryTicks))
	}
	ticks := make([]chart.Tick, 0, maxCategoryTicks+1)
	for i := 0; i < len(labels); i += step {
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: labels[i]})
	}

	maxX := float64(len(labels) - 1)
	if maxX < 1 {
		maxX = 1
	}
	if len(ticks) < 2 {
		// keep axis happy with a second tick
		ticks = append(ticks, chart.Tick{Value: maxX, Label: ""})
	}
	return series, chart.XAxis{
		Ticks: ticks,
		Range: &chart.ContinuousRange{Min: 0, Max: maxX},
	}
}

// valueBounds returns a non-empty y range covering every present value.
func valueBounds(series []models.LineSeries) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		for _, y := range s.Y {
			if models.IsMissing(y) {
				continue
			}
			lo = math.Min(lo, y)
			hi = math.Max(hi, y)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if lo > 0 {
		lo = 0
	}
	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi * 1.05
}
