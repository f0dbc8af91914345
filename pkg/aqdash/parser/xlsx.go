package parser

import (
	"fmt"
	"io"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
	"github.com/xuri/excelize/v2"
)

// LoadXLSX reads a measurement table from a sheet of an Excel file.
// An empty sheet name selects the first sheet.
func LoadXLSX(path string, sheet string) (models.MeasurementTable, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.MeasurementTable{}, &ParseError{Err: err}
	}
	defer f.Close()

	return loadWorkbook(f, sheet)
}

// LoadXLSXReader reads a measurement table from an Excel stream.
func LoadXLSXReader(r io.Reader, sheet string) (models.MeasurementTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return models.MeasurementTable{}, &ParseError{Err: err}
	}
	defer f.Close()

	return loadWorkbook(f, sheet)
}

// loadWorkbook reads the data region of a sheet. The first row of the
// region is the header; blank rows inside the region are skipped.
// Cell values are read as displayed, so dates keep their number format.
func loadWorkbook(f *excelize.File, sheet string) (models.MeasurementTable, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return models.MeasurementTable{}, &ParseError{Err: ErrNoHeader}
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return models.MeasurementTable{}, &ParseError{Err: fmt.Errorf("sheet %q: %w", sheet, err)}
	}

	region, first := dataRegion(rows)
	if len(region) == 0 {
		return models.MeasurementTable{}, &ParseError{Err: ErrNoHeader}
	}

	cols, err := resolveColumns(region[0])
	if err != nil {
		return models.MeasurementTable{}, err
	}

	table := models.MeasurementTable{Rows: []models.Measurement{}}
	for i, record := range region[1:] {
		if isBlank(record) {
			continue
		}
		rowNum := first + i + 2 // 1-based, after the header
		m, err := cols.measurement(rowNum, record)
		if err != nil {
			return models.MeasurementTable{}, err
		}
		table.Rows = append(table.Rows, m)
	}

	return table, nil
}
