// Package models defines data structures for air quality dashboards.
package models

// Required column names of a measurement file.
const (
	ColumnCity = "City"
	ColumnDate = "Date"
	ColumnAQI  = "AQI"
)

// Measurement represents a single row of a measurement file.
type Measurement struct {
	// Row is the source row index (1-based, header row included).
	Row int `json:"row"`
	// City is the city the measurement belongs to.
	City string `json:"city"`
	// Date is the raw date value as found in the source.
	Date string `json:"date"`
	// AQI is the air quality index value (see IsMissing for blank cells).
	AQI float64 `json:"aqi"`
}

// MeasurementTable is an ordered sequence of measurements.
type MeasurementTable struct {
	// Source is the file name or URL the table was loaded from.
	Source string `json:"source,omitempty"`
	// Rows holds the measurements in source order.
	Rows []Measurement `json:"rows"`
}

// Len returns the number of rows in the table.
func (t MeasurementTable) Len() int {
	return len(t.Rows)
}
