package parser

import (
	"errors"
	"fmt"
)

// ErrNoHeader indicates the input has no header row.
var ErrNoHeader = errors.New("no header row")

// ErrInvalidNumber indicates an AQI value is not numeric.
var ErrInvalidNumber = errors.New("invalid number")

// ParseError represents input that cannot be read as a measurement table.
type ParseError struct {
	// Row is the 1-based source row (0 when unknown).
	Row int
	// Column is the column name involved, if any.
	Column string
	Err    error
}

func (e *ParseError) Error() string {
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("parse error at row %d column %q: %v", e.Row, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("parse error at row %d: %v", e.Row, e.Err)
	default:
		return fmt.Sprintf("parse error: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MissingColumnError indicates a required column is absent from the header.
type MissingColumnError struct {
	Column string
	// Header is the header row that was found.
	Header []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Column)
}
