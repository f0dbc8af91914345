package parser

import (
	"errors"
	"testing"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

func TestParseAQI(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"42", 42},
		{"123.45", 123.45},
		{"-100", -100},
		{" 50 ", 50},
		{"1e2", 100},
	}

	for _, tt := range tests {
		result, err := parseAQI(tt.input)
		if err != nil {
			t.Errorf("parseAQI(%q) returned error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("parseAQI(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestParseAQIMissing(t *testing.T) {
	for _, input := range []string{"", "  ", "NA", "N/A", "NaN", "nan", "NAN", "null", "#N/A"} {
		result, err := parseAQI(input)
		if err != nil {
			t.Errorf("parseAQI(%q) returned error: %v", input, err)
			continue
		}
		if !models.IsMissing(result) {
			t.Errorf("parseAQI(%q) = %v, expected a missing value", input, result)
		}
	}
}

func TestParseAQIInvalid(t *testing.T) {
	for _, input := range []string{"high", "42ppm", "4,2", "Inf", "+Inf", "-inf", "Infinity"} {
		if _, err := parseAQI(input); !errors.Is(err, ErrInvalidNumber) {
			t.Errorf("parseAQI(%q) error = %v, expected ErrInvalidNumber", input, err)
		}
	}
}
