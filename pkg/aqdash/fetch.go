package aqdash

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

// DefaultFetchTimeout bounds a single download.
const DefaultFetchTimeout = 30 * time.Second

// IsURL reports whether an input names an http or https resource.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetcher downloads remote measurement files.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "text/csv, application/vnd.openxmlformats-officedocument.spreadsheetml.sheet, */*")
	return &Fetcher{client: client}
}

// Fetch downloads rawURL and returns its body and file name.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", NewLoadError(rawURL, "fetch", err)
	}

	resp, err := f.client.R().SetContext(ctx).Get(u.String())
	if err != nil {
		return nil, "", NewLoadError(rawURL, "fetch", fmt.Errorf("%w: %v", ErrFetchFailed, err))
	}
	if resp.IsError() {
		return nil, "", NewLoadError(rawURL, "fetch", fmt.Errorf("%w: status %s", ErrFetchFailed, resp.Status()))
	}

	name := path.Base(u.Path)
	if name == "/" || name == "." {
		name = ""
	}
	return resp.Body(), name, nil
}

// LoadURL downloads and reads a measurement table.
func (f *Fetcher) LoadURL(ctx context.Context, rawURL string, opts Options) (models.MeasurementTable, error) {
	data, name, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return models.MeasurementTable{}, err
	}
	table, err := LoadReader(bytes.NewReader(data), name, opts)
	if err != nil {
		return models.MeasurementTable{}, err
	}
	table.Source = rawURL
	return table, nil
}

// BuildFromURL downloads a measurement file and builds its chart specification.
func (f *Fetcher) BuildFromURL(ctx context.Context, rawURL string, opts Options) (models.ChartSpec, error) {
	data, name, err := f.Fetch(ctx, rawURL)
	if err != nil {
		return models.ChartSpec{}, err
	}
	return buildFromBytes(data, name, opts)
}
