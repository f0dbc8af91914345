// Package aqdash builds air quality line-chart dashboards from measurement files.
package aqdash

import (
	"fmt"
	"strings"
)

// Format represents a dashboard output format.
type Format string

const (
	// FormatJSON writes the chart specification as JSON.
	FormatJSON Format = "json"
	// FormatSVG draws the chart as an SVG image.
	FormatSVG Format = "svg"
	// FormatPNG draws the chart as a PNG image.
	FormatPNG Format = "png"
	// FormatHTML writes a standalone HTML dashboard page.
	FormatHTML Format = "html"
)

// Default chart labels.
const (
	DefaultTitle      = "Air Quality Dashboard"
	DefaultXAxisTitle = "Date"
	DefaultYAxisTitle = "AQI"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatSVG, FormatPNG, FormatHTML:
		return f, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be json, svg, png, or html)", s)
	}
}

// Options configures dashboard building.
type Options struct {
	// Title is the chart title.
	Title string
	// XAxisTitle is the X-axis title.
	XAxisTitle string
	// YAxisTitle is the Y-axis title.
	YAxisTitle string
	// Cities restricts the chart to the named cities.
	// If nil, every city present in the table is plotted.
	// A non-nil empty slice selects no city.
	Cities []string
	// Sheet names the spreadsheet sheet to read (first sheet when empty).
	Sheet string
}

// DefaultOptions returns default dashboard options.
func DefaultOptions() Options {
	return Options{
		Title:      DefaultTitle,
		XAxisTitle: DefaultXAxisTitle,
		YAxisTitle: DefaultYAxisTitle,
	}
}

// withDefaults fills empty labels with their defaults.
func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.XAxisTitle == "" {
		o.XAxisTitle = DefaultXAxisTitle
	}
	if o.YAxisTitle == "" {
		o.YAxisTitle = DefaultYAxisTitle
	}
	return o
}

// ParseCities splits a comma separated city list.
// Blank input yields nil, meaning every city.
func ParseCities(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var cities []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cities = append(cities, c)
		}
	}
	return cities
}
