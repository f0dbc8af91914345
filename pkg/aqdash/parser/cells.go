package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

// naValues are the cell texts read as a missing value.
var naValues = map[string]bool{
	"":     true,
	"NA":   true,
	"N/A":  true,
	"n/a":  true,
	"#N/A": true,
	"NaN":  true,
	"nan":  true,
	"-NaN": true,
	"-nan": true,
	"null": true,
	"NULL": true,
	"None": true,
	"<NA>": true,
	"#NA":  true,
	"-":    true,
}

// parseAQI parses an AQI cell value.
// Integers and decimals are accepted; surrounding spaces are ignored.
// Blank and NA cells yield models.Missing(); infinities are rejected.
func parseAQI(s string) (float64, error) {
	v := strings.TrimSpace(s)
	if naValues[v] {
		return models.Missing(), nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(v, 10, 64); err == nil {
		return float64(i), nil
	}
	// Try float
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		if math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidNumber, s)
		}
		if math.IsNaN(f) {
			return models.Missing(), nil
		}
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
}
