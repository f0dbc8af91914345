package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestLineSeriesJSONMissing(t *testing.T) {
	s := LineSeries{Name: "Delhi", Mode: ModeLines, X: []string{"d1", "d2", "d3"}, Y: []float64{180, Missing(), 150}}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	expected := `{"name":"Delhi","mode":"lines","x":["d1","d2","d3"],"y":[180,null,150]}`
	if string(data) != expected {
		t.Errorf("Marshal = %s, expected %s", data, expected)
	}

	var back LineSeries
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.Name != "Delhi" || len(back.Y) != 3 || !IsMissing(back.Y[1]) || back.Y[2] != 150 {
		t.Errorf("Unmarshal = %+v", back)
	}
}

func TestMeasurementJSONMissing(t *testing.T) {
	data, err := json.Marshal(Measurement{Row: 3, City: "Delhi", Date: "d2", AQI: math.NaN()})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"row":3,"city":"Delhi","date":"d2","aqi":null}` {
		t.Errorf("Marshal = %s", data)
	}

	var m Measurement
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if m.City != "Delhi" || !IsMissing(m.AQI) {
		t.Errorf("Unmarshal = %+v", m)
	}
}

func TestCitySeriesJSONMissing(t *testing.T) {
	data, err := json.Marshal(CitySeries{City: "Delhi", Dates: []string{"d1"}, Values: []float64{Missing()}})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"city":"Delhi","dates":["d1"],"values":[null]}` {
		t.Errorf("Marshal = %s", data)
	}
}
