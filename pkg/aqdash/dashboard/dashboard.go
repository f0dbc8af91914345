// Package dashboard composes line series into chart specifications.
package dashboard

import (
	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

// MakeSeries wraps parallel date and value sequences into a named line series.
// The caller guarantees equal lengths.
func MakeSeries(dates []string, values []float64, name string) models.LineSeries {
	return models.LineSeries{
		Name: name,
		Mode: models.ModeLines,
		X:    dates,
		Y:    values,
	}
}

// Dashboard accumulates line series under a title and axis labels.
// Series may be added at any time, also after Render.
type Dashboard struct {
	title  string
	xTitle string
	yTitle string
	series []models.LineSeries
}

// New creates an empty Dashboard.
func New(title, xTitle, yTitle string) *Dashboard {
	return &Dashboard{
		title:  title,
		xTitle: xTitle,
		yTitle: yTitle,
	}
}

// AddSeries appends a series to the dashboard.
func (d *Dashboard) AddSeries(s models.LineSeries) {
	d.series = append(d.series, s)
}

// Len returns the number of series added so far.
func (d *Dashboard) Len() int {
	return len(d.series)
}

// Render builds a ChartSpec from the series currently held, in the order they were added.
// Each call builds a fresh spec; later AddSeries calls do not affect specs already returned.
func (d *Dashboard) Render() models.ChartSpec {
	series := make([]models.LineSeries, len(d.series))
	copy(series, d.series)
	return models.ChartSpec{
		Title:      d.title,
		XAxisTitle: d.xTitle,
		YAxisTitle: d.yTitle,
		Series:     series,
	}
}
