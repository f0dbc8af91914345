package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/aqdash-go/pkg/aqdash"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/grouper"
	"github.com/ukaji3/aqdash-go/pkg/aqdash/models"
)

func newCitiesCmd() *cobra.Command {
	var sheet string

	cmd := &cobra.Command{
		Use:   "cities [input.csv|input.xlsx|URL]",
		Short: "List the cities of a measurement file in order of first appearance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := aqdash.DefaultOptions()
			opts.Sheet = sheet

			var (
				table models.MeasurementTable
				err   error
			)
			if aqdash.IsURL(args[0]) {
				ctx := cmd.Context()
				if ctx == nil {
					ctx = context.Background()
				}
				table, err = aqdash.NewFetcher(aqdash.DefaultFetchTimeout).LoadURL(ctx, args[0], opts)
			} else {
				table, err = aqdash.Load(args[0], opts)
			}
			if err != nil {
				return err
			}

			for _, city := range grouper.UniqueCities(table) {
				fmt.Fprintln(cmd.OutOrStdout(), city)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sheet, "sheet", "", "Sheet to read from an xlsx file (default: first sheet)")
	return cmd
}
