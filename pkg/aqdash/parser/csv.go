// Package parser provides measurement file parsing utilities.
package parser

import (
	"encoding/csv"
	"errors"
	"io"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

// LoadCSV reads a comma separated measurement file.
// The first record is the header; it must name the City, Date and AQI columns.
// Every data record must have the same number of fields as the header.
// Measurement rows carry the source line number of their record.
func LoadCSV(r io.Reader) (models.MeasurementTable, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return models.MeasurementTable{}, &ParseError{Err: ErrNoHeader}
	}
	if err != nil {
		return models.MeasurementTable{}, csvError(err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return models.MeasurementTable{}, err
	}

	table := models.MeasurementTable{Rows: []models.Measurement{}}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return models.MeasurementTable{}, csvError(err)
		}
		rowNum, _ := cr.FieldPos(0)

		m, err := cols.measurement(rowNum, record)
		if err != nil {
			return models.MeasurementTable{}, err
		}
		table.Rows = append(table.Rows, m)
	}

	return table, nil
}

// csvError converts an encoding/csv error into a ParseError.
func csvError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Row: pe.StartLine, Err: pe.Err}
	}
	return &ParseError{Err: err}
}
