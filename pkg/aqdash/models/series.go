package models

// CitySeries pairs a city with its dates and AQI values in source row order.
// Dates and Values always have the same length.
type CitySeries struct {
	// City is the city name.
	City string `json:"city"`
	// Dates holds the raw date values.
	Dates []string `json:"dates"`
	// Values holds the AQI values; blank cells are missing values.
	Values []float64 `json:"values"`
}

// Len returns the number of points in the series.
func (s CitySeries) Len() int {
	return len(s.Dates)
}

// CitySeriesSet is an ordered collection of CitySeries keyed by city name.
type CitySeriesSet struct {
	series []CitySeries
	index  map[string]int
}

// NewCitySeriesSet creates an empty CitySeriesSet.
func NewCitySeriesSet() *CitySeriesSet {
	return &CitySeriesSet{index: make(map[string]int)}
}

// Append adds a point to the series of city, creating the series on first use.
func (s *CitySeriesSet) Append(city, date string, value float64) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	i, ok := s.index[city]
	if !ok {
		i = len(s.series)
		s.index[city] = i
		s.series = append(s.series, CitySeries{City: city})
	}
	s.series[i].Dates = append(s.series[i].Dates, date)
	s.series[i].Values = append(s.series[i].Values, value)
}

// Get returns the series of city.
func (s *CitySeriesSet) Get(city string) (CitySeries, bool) {
	if s == nil {
		return CitySeries{}, false
	}
	i, ok := s.index[city]
	if !ok {
		return CitySeries{}, false
	}
	return s.series[i], true
}

// Cities returns the city names in insertion order.
func (s *CitySeriesSet) Cities() []string {
	if s == nil {
		return nil
	}
	cities := make([]string, len(s.series))
	for i, cs := range s.series {
		cities[i] = cs.City
	}
	return cities
}

// Series returns the series in insertion order.
func (s *CitySeriesSet) Series() []CitySeries {
	if s == nil {
		return nil
	}
	out := make([]CitySeries, len(s.series))
	copy(out, s.series)
	return out
}

// Len returns the number of cities in the set.
func (s *CitySeriesSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.series)
}
