package aqdash

import (
	"errors"
	"fmt"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input is neither CSV nor xlsx.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrFetchFailed indicates a remote input could not be downloaded.
var ErrFetchFailed = errors.New("fetch failed")

// ParseError represents input that is not a readable measurement table.
type ParseError = parser.ParseError

// MissingColumnError indicates a required column is absent.
type MissingColumnError = parser.MissingColumnError

// LoadError represents an error while loading an input.
type LoadError struct {
	Source string
	Stage  string // "open", "fetch", "parse"
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load error in %q (%s): %v", e.Source, e.Stage, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, stage string, err error) *LoadError {
	return &LoadError{
		Source: source,
		Stage:  stage,
		Err:    err,
	}
}
