// Package main provides the CLI entry point for aqdash.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ukaji3/aqdash-go/internal/logging"
)

var logLevel string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "aqdash",
		Short: "Plot air quality measurements per city",
		Long: `aqdash reads a CSV (or xlsx) file of air quality measurements with
City, Date and AQI columns and draws one line per city.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel != "" && !logging.SetLevel(logLevel) {
				logging.Warnf("Unknown log level %q, keeping %v", logLevel, logging.GetLevel())
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newRenderCmd(), newServeCmd(), newCitiesCmd())
	return rootCmd
}
