package models

import (
	"encoding/json"
	"math"
)

// Missing returns the value of a blank measurement cell.
// It is encoded as null in JSON.
func Missing() float64 {
	return math.NaN()
}

// IsMissing reports whether v stands for a blank cell.
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}

// nullable converts values to pointers, with nil for missing values.
func nullable(vs []float64) []*float64 {
	if vs == nil {
		return nil
	}
	out := make([]*float64, len(vs))
	for i := range vs {
		if !IsMissing(vs[i]) {
			v := vs[i]
			out[i] = &v
		}
	}
	return out
}

// fromNullable converts pointers back to values, with nil read as missing.
func fromNullable(ps []*float64) []float64 {
	if ps == nil {
		return nil
	}
	out := make([]float64, len(ps))
	for i, p := range ps {
		if p == nil {
			out[i] = Missing()
			continue
		}
		out[i] = *p
	}
	return out
}

// MarshalJSON encodes a missing AQI as null.
func (m Measurement) MarshalJSON() ([]byte, error) {
	type plain Measurement
	var aqi *float64
	if !IsMissing(m.AQI) {
		aqi = &m.AQI
	}
	return json.Marshal(struct {
		plain
		AQI *float64 `json:"aqi"`
	}{plain(m), aqi})
}

// UnmarshalJSON decodes a null AQI as missing.
func (m *Measurement) UnmarshalJSON(data []byte) error {
	type plain Measurement
	aux := struct {
		*plain
		AQI *float64 `json:"aqi"`
	}{plain: (*plain)(m)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	m.AQI = Missing()
	if aux.AQI != nil {
		m.AQI = *aux.AQI
	}
	return nil
}

// MarshalJSON encodes missing values as null.
func (s CitySeries) MarshalJSON() ([]byte, error) {
	type plain CitySeries
	return json.Marshal(struct {
		plain
		Values []*float64 `json:"values"`
	}{plain(s), nullable(s.Values)})
}

// UnmarshalJSON decodes null values as missing.
func (s *CitySeries) UnmarshalJSON(data []byte) error {
	type plain CitySeries
	aux := struct {
		*plain
		Values []*float64 `json:"values"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Values = fromNullable(aux.Values)
	return nil
}

// MarshalJSON encodes missing y values as null.
func (s LineSeries) MarshalJSON() ([]byte, error) {
	type plain LineSeries
	return json.Marshal(struct {
		plain
		Y []*float64 `json:"y"`
	}{plain(s), nullable(s.Y)})
}

// UnmarshalJSON decodes null y values as missing.
func (s *LineSeries) UnmarshalJSON(data []byte) error {
	type plain LineSeries
	aux := struct {
		*plain
		Y []*float64 `json:"y"`
	}{plain: (*plain)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Y = fromNullable(aux.Y)
	return nil
}
