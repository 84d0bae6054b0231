package cmd

import (
	"fmt"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/spf13/cobra"
)

func newConversionsCmd(app *app) *cobra.Command {
	var window int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "conversions <account-id>",
		Short: "Compute the conversion-event breakdown for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := app.service.ComputeConversionEvents(cmd.Context(), domain.AccountID(args[0]), window)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, events)
			}

			for _, ev := range events {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%-12s\t%d conversions\t$%.2f value\t%.2f%% rate\t$%.2f per conversion\n",
					ev.ID, ev.Name, ev.Count, ev.Value, ev.ConversionRate, ev.CostPerConversion)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&window, "window", 28, "Attribution window in days (1|7|28)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
