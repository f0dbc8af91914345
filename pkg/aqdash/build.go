package aqdash

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/dashboard"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/grouper"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/parser"
)

// inputKind is the file type of an input.
type inputKind int

const (
	kindCSV inputKind = iota
	kindXLSX
)

// kindOf selects the input type from a file name extension.
func kindOf(name string) (inputKind, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt", "":
		return kindCSV, nil
	case ".xlsx", ".xlsm":
		return kindXLSX, nil
	default:
		return 0, ErrUnsupportedFormat
	}
}

// Build turns a measurement table into a chart specification.
// It filters the table to the selected cities, groups it by city and adds
// one line series per city in order of first appearance.
func Build(table models.MeasurementTable, opts Options) models.ChartSpec {
	opts = opts.withDefaults()

	cities := opts.Cities
	if cities == nil {
		cities = grouper.UniqueCities(table)
	}
	filtered := grouper.FilterCities(table, grouper.NewCitySet(cities...))
	byCity := grouper.GroupByCity(filtered)

	d := dashboard.New(opts.Title, opts.XAxisTitle, opts.YAxisTitle)
	for _, s := range byCity.Series() {
		d.AddSeries(dashboard.MakeSeries(s.Dates, s.Values, s.City))
	}
	return d.Render()
}

// Load reads a measurement table from a CSV or xlsx file.
func Load(path string, opts Options) (models.MeasurementTable, error) {
	// Validate input file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return models.MeasurementTable{}, NewLoadError(path, "open", ErrFileNotFound)
	}

	kind, err := kindOf(path)
	if err != nil {
		return models.MeasurementTable{}, NewLoadError(path, "open", err)
	}

	var table models.MeasurementTable
	switch kind {
	case kindXLSX:
		table, err = parser.LoadXLSX(path, opts.Sheet)
	default:
		f, openErr := os.Open(path)
		if openErr != nil {
			return models.MeasurementTable{}, NewLoadError(path, "open", openErr)
		}
		defer f.Close()
		table, err = parser.LoadCSV(f)
	}
	if err != nil {
		return models.MeasurementTable{}, NewLoadError(path, "parse", err)
	}

	table.Source = filepath.Base(path)
	return table, nil
}

// LoadReader reads a measurement table from a stream.
// The name selects CSV or xlsx parsing by its extension.
func LoadReader(r io.Reader, name string, opts Options) (models.MeasurementTable, error) {
	kind, err := kindOf(name)
	if err != nil {
		return models.MeasurementTable{}, NewLoadError(name, "open", err)
	}

	var table models.MeasurementTable
	switch kind {
	case kindXLSX:
		table, err = parser.LoadXLSXReader(r, opts.Sheet)
	default:
		table, err = parser.LoadCSV(r)
	}
	if err != nil {
		return models.MeasurementTable{}, NewLoadError(name, "parse", err)
	}

	table.Source = name
	return table, nil
}

// BuildFromFile loads a file and builds its chart specification.
func BuildFromFile(path string, opts Options) (models.ChartSpec, error) {
	table, err := Load(path, opts)
	if err != nil {
		return models.ChartSpec{}, err
	}
	return Build(table, opts), nil
}

// BuildFromReader loads a stream and builds its chart specification.
// A nil reader means no input was supplied: nothing is read and the
// returned spec is nil.
func BuildFromReader(r io.Reader, name string, opts Options) (*models.ChartSpec, error) {
	if r == nil {
		return nil, nil
	}
	table, err := LoadReader(r, name, opts)
	if err != nil {
		return nil, err
	}
	spec := Build(table, opts)
	return &spec, nil
}

// buildFromBytes builds a chart specification from downloaded content.
func buildFromBytes(data []byte, name string, opts Options) (models.ChartSpec, error) {
	spec, err := BuildFromReader(bytes.NewReader(data), name, opts)
	if err != nil {
		return models.ChartSpec{}, err
	}
	return *spec, nil
}
