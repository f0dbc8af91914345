package aqdash

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `City,Date,AQI
Paris,2023-01-01,42
Paris,2023-01-02,50
Lyon,2023-01-01,30
`

func loadSample(t *testing.T) models.MeasurementTable {
	t.Helper()
	table, err := LoadReader(strings.NewReader(sampleCSV), "sample.csv", DefaultOptions())
	if err != nil {
		t.Fatalf("LoadReader failed: %v", err)
	}
	return table
}

func TestBuildScenario(t *testing.T) {
	opts := DefaultOptions()
	opts.Cities = []string{"Paris", "Lyon"}

	spec := Build(loadSample(t), opts)

	if spec.Title != "Air Quality Dashboard" || spec.XAxisTitle != "Date" || spec.YAxisTitle != "AQI" {
		t.Errorf("unexpected labels %+v", spec)
	}
	if got := spec.SeriesNames(); !reflect.DeepEqual(got, []string{"Paris", "Lyon"}) {
		t.Fatalf("SeriesNames() = %v", got)
	}
	paris := spec.Series[0]
	if paris.Mode != models.ModeLines {
		t.Errorf("Expected lines mode, got %q", paris.Mode)
	}
	if !reflect.DeepEqual(paris.X, []string{"2023-01-01", "2023-01-02"}) || !reflect.DeepEqual(paris.Y, []float64{42, 50}) {
		t.Errorf("Paris series = %+v", paris)
	}
	lyon := spec.Series[1]
	if !reflect.DeepEqual(lyon.X, []string{"2023-01-01"}) || !reflect.DeepEqual(lyon.Y, []float64{30}) {
		t.Errorf("Lyon series = %+v", lyon)
	}
}

func TestBuildSelection(t *testing.T) {
	table := loadSample(t)

	tests := []struct {
		name     string
		cities   []string
		expected []string
	}{
		{"all cities when unset", nil, []string{"Paris", "Lyon"}},
		{"no match", []string{"Berlin"}, []string{}},
		{"empty selection", []string{}, []string{}},
		{"subset", []string{"Lyon"}, []string{"Lyon"}},
	}

	for _, tt := range tests {
		opts := DefaultOptions()
		opts.Cities = tt.cities
		spec := Build(table, opts)
		if got := spec.SeriesNames(); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("%s: SeriesNames() = %v, expected %v", tt.name, got, tt.expected)
		}
	}
}

func TestBuildDefaultsLabels(t *testing.T) {
	spec := Build(loadSample(t), Options{YAxisTitle: "Index"})
	if spec.Title != DefaultTitle || spec.XAxisTitle != DefaultXAxisTitle || spec.YAxisTitle != "Index" {
		t.Errorf("unexpected labels %+v", spec)
	}
}

func TestBuildMissingValues(t *testing.T) {
	input := "City,Date,AQI\nDelhi,2020-01-01,180\nDelhi,2020-01-02,\nDelhi,2020-01-03,NaN\nDelhi,2020-01-04,150\n"
	spec, err := BuildFromReader(strings.NewReader(input), "aqi.csv", DefaultOptions())
	if err != nil {
		t.Fatalf("BuildFromReader failed: %v", err)
	}
	delhi := spec.Series[0]
	if len(delhi.Y) != 4 || !models.IsMissing(delhi.Y[1]) || !models.IsMissing(delhi.Y[2]) || delhi.Y[3] != 150 {
		t.Errorf("Delhi series = %+v", delhi)
	}

	data, err := json.Marshal(spec)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), `"y":[180,null,null,150]`) {
		t.Errorf("unexpected JSON %s", data)
	}
}

func TestBuildFromReaderNoInput(t *testing.T) {
	spec, err := BuildFromReader(nil, "", DefaultOptions())
	if err != nil || spec != nil {
		t.Errorf("BuildFromReader(nil) = %v, %v; expected nil, nil", spec, err)
	}
}

func TestBuildFromReaderErrors(t *testing.T) {
	_, err := BuildFromReader(strings.NewReader("City,Date\nParis,2023-01-01\n"), "a.csv", DefaultOptions())
	var mce *MissingColumnError
	if !errors.As(err, &mce) || mce.Column != "AQI" {
		t.Errorf("Expected missing AQI column, got %v", err)
	}
	var le *LoadError
	if !errors.As(err, &le) || le.Stage != "parse" {
		t.Errorf("Expected parse LoadError, got %v", err)
	}

	_, err = BuildFromReader(strings.NewReader("City,Date,AQI\nParis,2023-01-01,x\n"), "a.csv", DefaultOptions())
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Row != 2 {
		t.Errorf("Expected ParseError at row 2, got %v", err)
	}

	_, err = BuildFromReader(strings.NewReader("{}"), "a.json", DefaultOptions())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestBuildFromFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "aqi.csv")
	if err := os.WriteFile(csvPath, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	spec, err := BuildFromFile(csvPath, DefaultOptions())
	if err != nil {
		t.Fatalf("BuildFromFile failed: %v", err)
	}
	if len(spec.Series) != 2 {
		t.Errorf("Expected 2 series, got %d", len(spec.Series))
	}

	_, err = BuildFromFile(filepath.Join(dir, "missing.csv"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestLoadXLSXFile(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetName("Sheet1", "Readings")
	rows := [][]interface{}{
		{"City", "Date", "AQI"},
		{"Paris", "2023-01-01", 42},
		{"Lyon", "2023-01-01", 30},
	}
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Readings", cell, &row); err != nil {
			t.Fatalf("Failed to set row: %v", err)
		}
	}
	path := filepath.Join(t.TempDir(), "aqi.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	opts := DefaultOptions()
	opts.Sheet = "Readings"
	table, err := Load(path, opts)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if table.Source != "aqi.xlsx" || table.Len() != 2 {
		t.Errorf("unexpected table %+v", table)
	}
}

func TestParseCities(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"  ", nil},
		{"Paris", []string{"Paris"}},
		{"Paris, Lyon ,,Nice", []string{"Paris", "Lyon", "Nice"}},
	}
	for _, tt := range tests {
		if got := ParseCities(tt.input); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("ParseCities(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"json", "SVG", " png ", "html"} {
		if _, err := ParseFormat(s); err != nil {
			t.Errorf("ParseFormat(%q) failed: %v", s, err)
		}
	}
	if _, err := ParseFormat("pdf"); err == nil {
		t.Error("Expected error for pdf")
	}
}
