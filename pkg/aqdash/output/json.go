// Package output serializes and draws chart specifications.
package output

import (
	"encoding/json"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

// ToJSON serializes a chart specification.
func ToJSON(spec models.ChartSpec, pretty bool) ([]byte, error) {
	if spec.Series == nil {
		spec.Series = []models.LineSeries{}
	}
	if pretty {
		return json.MarshalIndent(spec, "", "  ")
	}
	return json.Marshal(spec)
}
