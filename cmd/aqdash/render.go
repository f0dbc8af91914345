package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ukaji3/aqdash-go/internal/logging"
	"github.com/ukaji3/aqdash-go/pkg/aqdash"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/output"
)

// chartFlags are the flags shared by commands that draw charts.
type chartFlags struct {
	title  string
	xTitle string
	yTitle string
	width  int
	height int
}

func (f *chartFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", aqdash.DefaultTitle, "Chart title")
	cmd.Flags().StringVar(&f.xTitle, "x-title", aqdash.DefaultXAxisTitle, "X-axis title")
	cmd.Flags().StringVar(&f.yTitle, "y-title", aqdash.DefaultYAxisTitle, "Y-axis title")
	cmd.Flags().IntVar(&f.width, "width", output.DefaultWidth, "Image width in pixels")
	cmd.Flags().IntVar(&f.height, "height", output.DefaultHeight, "Image height in pixels")
}

func (f *chartFlags) options() aqdash.Options {
	return aqdash.Options{
		Title:      f.title,
		XAxisTitle: f.xTitle,
		YAxisTitle: f.yTitle,
	}
}

func (f *chartFlags) image() output.ImageOptions {
	return output.ImageOptions{Width: f.width, Height: f.height}
}

type renderOptions struct {
	chart      chartFlags
	outputPath string
	format     string
	pretty     bool
	cities     []string
	sheet      string
	timeout    time.Duration
}

func newRenderCmd() *cobra.Command {
	var o renderOptions

	cmd := &cobra.Command{
		Use:   "render [input.csv|input.xlsx|URL]",
		Short: "Render a dashboard to JSON, SVG, PNG or HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := o.chart.options()
			opts.Sheet = o.sheet
			if cmd.Flags().Changed("cities") {
				opts.Cities = o.cities
				if opts.Cities == nil {
					opts.Cities = []string{}
				}
			}
			return runRender(cmd.Context(), cmd.OutOrStdout(), args[0], opts, o)
		},
	}

	o.chart.register(cmd)
	cmd.Flags().StringVarP(&o.outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().StringVar(&o.format, "format", string(aqdash.FormatJSON), "Output format: json, svg, png, html")
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringSliceVar(&o.cities, "cities", nil, "Cities to plot (default: every city in the file)")
	cmd.Flags().StringVar(&o.sheet, "sheet", "", "Sheet to read from an xlsx file (default: first sheet)")
	cmd.Flags().DurationVar(&o.timeout, "timeout", aqdash.DefaultFetchTimeout, "Download timeout for URL inputs")

	return cmd
}

func runRender(ctx context.Context, stdout io.Writer, input string, opts aqdash.Options, o renderOptions) error {
	format, err := aqdash.ParseFormat(o.format)
	if err != nil {
		return err
	}

	spec, err := buildSpec(ctx, input, opts, o.timeout)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	logging.Debugf("Built dashboard from %s: %d series", input, len(spec.Series))

	var buf bytes.Buffer
	switch format {
	case aqdash.FormatJSON:
		data, err := output.ToJSON(spec, o.pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		buf.Write(data)
		buf.WriteByte('\n')
	case aqdash.FormatSVG:
		err = output.RenderSVG(&buf, spec, o.chart.image())
	case aqdash.FormatPNG:
		err = output.RenderPNG(&buf, spec, o.chart.image())
	case aqdash.FormatHTML:
		err = output.RenderHTML(&buf, output.Page{Spec: &spec, FileName: input, Image: o.chart.image()})
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	// Write output
	if o.outputPath != "" {
		if err := os.WriteFile(o.outputPath, buf.Bytes(), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logging.Infof("Wrote %s (%d series)", o.outputPath, len(spec.Series))
		return nil
	}
	_, err = stdout.Write(buf.Bytes())
	return err
}

// buildSpec builds the chart of a local file or URL input.
func buildSpec(ctx context.Context, input string, opts aqdash.Options, timeout time.Duration) (models.ChartSpec, error) {
	if aqdash.IsURL(input) {
		if ctx == nil {
			ctx = context.Background()
		}
		return aqdash.NewFetcher(timeout).BuildFromURL(ctx, input, opts)
	}
	return aqdash.BuildFromFile(input, opts)
}
