package models

// ModeLines is the drawing mode of a line series.
const ModeLines = "lines"

// LineSeries represents one named line of a chart.
type LineSeries struct {
	// Name is the series display name.
	Name string `json:"name"`
	// Mode is the drawing mode (always "lines").
	Mode string `json:"mode"`
	// X holds the x-axis values (dates).
	X []string `json:"x"`
	// Y holds the y-axis values (AQI); missing values are gaps in the line.
	Y []float64 `json:"y"`
}

// ChartSpec describes a complete chart before it is drawn.
type ChartSpec struct {
	// Title is the chart title.
	Title string `json:"title"`
	// XAxisTitle is the X-axis title.
	XAxisTitle string `json:"x_axis_title"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title"`
	// Series is the list of line series in the order they were added.
	Series []LineSeries `json:"series"`
}

// SeriesNames returns the names of the chart's series in order.
func (c ChartSpec) SeriesNames() []string {
	names := make([]string, len(c.Series))
	for i, s := range c.Series {
		names[i] = s.Name
	}
	return names
}
