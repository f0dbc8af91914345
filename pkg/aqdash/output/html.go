package output

import (
	"bytes"
	"html/template"
	"io"
	"strconv"

	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

// Page holds the content of a dashboard page.
type Page struct {
	// Spec is the chart to show; nil shows no chart.
	Spec *models.ChartSpec
	// Upload shows the file upload form.
	Upload bool
	// Action is the form target used with Upload.
	Action string
	// FileName is the name of the uploaded file, if any.
	FileName string
	// Cities is the city filter as typed by the user.
	Cities string
	// Error is shown above the chart when set.
	Error string
	// Image sizes the embedded chart.
	Image ImageOptions
}

type pageView struct {
	Page
	Title string
	Chart template.HTML
	Rows  []seriesRow
}

// seriesRow summarizes a series; Min and Max are "-" when it has no values.
type seriesRow struct {
	Name    string
	Points  int
	Missing int
	Min     string
	Max     string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
form { margin-bottom: 1.5em; }
.error { color: #a00; border: 1px solid #a00; padding: .5em; margin-bottom: 1em; }
.empty { color: #666; }
table { border-collapse: collapse; margin-top: 1em; }
td, th { border: 1px solid #ccc; padding: .25em .75em; text-align: left; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{if .Upload}}
<form method="post" action="{{.Action}}" enctype="multipart/form-data">
  <label>Choose a CSV file: <input type="file" name="file" accept=".csv,.xlsx"></label>
  <label>Cities: <input type="text" name="cities" value="{{.Cities}}" placeholder="all"></label>
  <button type="submit">Plot</button>
</form>
{{end}}
{{if .Error}}<div class="error">{{.Error}}</div>{{end}}
{{with .Spec}}
{{if $.FileName}}<p>Source: {{$.FileName}}</p>{{end}}
{{if not .Series}}<p class="empty">No measurements for the selected cities.</p>{{end}}
<div class="chart">{{$.Chart}}</div>
{{if $.Rows}}
<table>
<tr><th>City</th><th>Points</th><th>Missing</th><th>Min {{.YAxisTitle}}</th><th>Max {{.YAxisTitle}}</th></tr>
{{range $.Rows}}<tr><td>{{.Name}}</td><td>{{.Points}}</td><td>{{.Missing}}</td><td>{{.Min}}</td><td>{{.Max}}</td></tr>
{{end}}</table>
{{end}}
{{end}}
</body>
</html>
`))

// RenderHTML writes a dashboard page with the chart embedded as SVG.
func RenderHTML(w io.Writer, page Page) error {
	view := pageView{Page: page, Title: "Air Quality Dashboard"}

	if page.Spec != nil {
		if page.Spec.Title != "" {
			view.Title = page.Spec.Title
		}

		var buf bytes.Buffer
		if err := RenderSVG(&buf, *page.Spec, page.Image); err != nil {
			return err
		}
		view.Chart = template.HTML(buf.String())

		for _, s := range page.Spec.Series {
			view.Rows = append(view.Rows, summarize(s))
		}
	}

	return pageTemplate.Execute(w, view)
}

func summarize(s models.LineSeries) seriesRow {
	row := seriesRow{Name: s.Name, Points: len(s.Y), Min: "-", Max: "-"}
	first := true
	var lo, hi float64
	for _, y := range s.Y {
		if models.IsMissing(y) {
			row.Missing++
			continue
		}
		if first || y < lo {
			lo = y
		}
		if first || y > hi {
			hi = y
		}
		first = false
	}
	if !first {
		row.Min = strconv.FormatFloat(lo, 'g', -1, 64)
		row.Max = strconv.FormatFloat(hi, 'g', -1, 64)
	}
	return row
}
