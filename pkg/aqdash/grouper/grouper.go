// Package grouper restricts measurement tables to cities and splits them into per-city series.
package grouper

import (
	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

// CitySet is a set of city names.
type CitySet map[string]struct{}

// NewCitySet builds a CitySet from names.
func NewCitySet(cities ...string) CitySet {
	set := make(CitySet, len(cities))
	for _, c := range cities {
		set[c] = struct{}{}
	}
	return set
}

// Contains reports whether city is in the set.
func (s CitySet) Contains(city string) bool {
	_, ok := s[city]
	return ok
}

// FilterCities returns a table holding only the rows whose city is in cities.
// Row order is preserved and duplicates are kept. An empty set yields an empty table.
// The input table is not modified.
func FilterCities(table models.MeasurementTable, cities CitySet) models.MeasurementTable {
	out := models.MeasurementTable{
		Source: table.Source,
		Rows:   make([]models.Measurement, 0, len(table.Rows)),
	}
	if len(cities) == 0 {
		return out
	}

	for _, m := range table.Rows {
		if cities.Contains(m.City) {
			out.Rows = append(out.Rows, m)
		}
	}
	return out
}

// GroupByCity splits a table into one series per distinct city.
// Cities are ordered by first appearance; each series keeps the table's row order.
// Values are passed through unchanged, including repeated dates.
func GroupByCity(table models.MeasurementTable) *models.CitySeriesSet {
	set := models.NewCitySeriesSet()
	for _, m := range table.Rows {
		set.Append(m.City, m.Date, m.AQI)
	}
	return set
}

// UniqueCities returns the distinct cities of a table in order of first appearance.
func UniqueCities(table models.MeasurementTable) []string {
	seen := make(map[string]struct{})
	var cities []string
	for _, m := range table.Rows {
		if _, ok := seen[m.City]; ok {
			continue
		}
		seen[m.City] = struct{}{}
		cities = append(cities, m.City)
	}
	return cities
}
