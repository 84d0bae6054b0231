package cmd

import (
	"fmt"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/spf13/cobra"
)

func newTimeSeriesCmd(app *app) *cobra.Command {
	var days int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "timeseries <account-id>",
		Short: "Generate the per-day delivery series for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := app.service.GenerateTimeSeries(cmd.Context(), domain.AccountID(args[0]), days)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, points)
			}

			for _, p := range points {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t$%.2f\t%d impressions\t%d clicks\t%d conversions\tcpc $%.2f\tcpm $%.2f\n",
					p.Date, p.Spend, p.Impressions, p.Clicks, p.Conversions, p.CPC, p.CPM)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 30, "Window size in days")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
