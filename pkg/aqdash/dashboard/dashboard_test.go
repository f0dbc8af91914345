package dashboard

import (
	"reflect"
	"testing"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

func TestMakeSeries(t *testing.T) {
	s := MakeSeries([]string{"2023-01-01", "2023-01-02"}, []float64{42, 50}, "Paris")
	if s.Name != "Paris" {
		t.Errorf("Expected name Paris, got %q", s.Name)
	}
	if s.Mode != models.ModeLines {
		t.Errorf("Expected mode %q, got %q", models.ModeLines, s.Mode)
	}
	if len(s.X) != 2 || len(s.Y) != 2 {
		t.Errorf("unexpected lengths x=%d y=%d", len(s.X), len(s.Y))
	}
}

func TestRenderOrderAndLabels(t *testing.T) {
	d := New("Air Quality Dashboard", "Date", "AQI")
	for _, city := range []string{"A", "B", "C"} {
		d.AddSeries(MakeSeries([]string{"d"}, []float64{1}, city))
	}

	spec := d.Render()
	if spec.Title != "Air Quality Dashboard" || spec.XAxisTitle != "Date" || spec.YAxisTitle != "AQI" {
		t.Errorf("unexpected labels %+v", spec)
	}
	if got := spec.SeriesNames(); !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Errorf("SeriesNames() = %v", got)
	}
}

func TestRenderIdempotent(t *testing.T) {
	d := New("t", "x", "y")
	d.AddSeries(MakeSeries([]string{"d1", "d2"}, []float64{1, 2}, "A"))

	first := d.Render()
	second := d.Render()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("renders differ: %+v vs %+v", first, second)
	}
}

func TestAddSeriesAfterRender(t *testing.T) {
	d := New("t", "x", "y")
	d.AddSeries(MakeSeries(nil, nil, "A"))
	first := d.Render()

	d.AddSeries(MakeSeries(nil, nil, "B"))
	second := d.Render()

	if len(first.Series) != 1 {
		t.Errorf("earlier spec changed: %v", first.SeriesNames())
	}
	if got := second.SeriesNames(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("SeriesNames() = %v", got)
	}
}

func TestRenderEmpty(t *testing.T) {
	spec := New("t", "x", "y").Render()
	if len(spec.Series) != 0 {
		t.Errorf("Expected 0 series, got %d", len(spec.Series))
	}
	if spec.Series == nil {
		t.Error("Expected non-nil series slice")
	}
}
