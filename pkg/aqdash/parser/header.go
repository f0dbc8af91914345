package parser

import (
	"strings"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

const utf8BOM = "\ufeff"

// columns holds the header positions of the required columns.
type columns struct {
	city int
	date int
	aqi  int
}

// resolveColumns finds the required columns in a header row.
// Names are matched exactly; the first occurrence wins.
func resolveColumns(header []string) (columns, error) {
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}

	pos := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}

	var cols columns
	for _, req := range []struct {
		name string
		dst  *int
	}{
		{models.ColumnCity, &cols.city},
		{models.ColumnDate, &cols.date},
		{models.ColumnAQI, &cols.aqi},
	} {
		i, ok := pos[req.name]
		if !ok {
			return columns{}, &MissingColumnError{Column: req.name, Header: header}
		}
		*req.dst = i
	}
	return cols, nil
}

// measurement builds a Measurement from a record using the resolved columns.
// Cells past the end of a short record read as empty.
func (c columns) measurement(rowNum int, record []string) (models.Measurement, error) {
	cell := func(i int) string {
		if i < len(record) {
			return record[i]
		}
		return ""
	}

	aqi, err := parseAQI(cell(c.aqi))
	if err != nil {
		return models.Measurement{}, &ParseError{Row: rowNum, Column: models.ColumnAQI, Err: err}
	}

	return models.Measurement{
		Row:  rowNum,
		City: cell(c.city),
		Date: cell(c.date),
		AQI:  aqi,
	}, nil
}
