package main

import (
	"github.com/spf13/cobra"

	"github.com/ukaji3/aqdash-go/internal/config"
	"github.com/ukaji3/aqdash-go/internal/logging"
	"github.com/ukaji3/aqdash-go/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		chart   chartFlags
		addr    string
		envFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard upload page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var files []string
			if envFile != "" {
				files = append(files, envFile)
			}
			cfg, err := config.Load(files...)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			if !cmd.Flags().Changed("log-level") {
				logging.SetLevel(cfg.LogLevel)
			}

			return web.NewServer(cfg, chart.options(), chart.image()).ListenAndServe()
		},
	}

	chart.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: $AQDASH_ADDR or :8080)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "Environment file to load (default: .env)")

	return cmd
}
