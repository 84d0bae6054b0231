package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInvoiceCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoice",
		Short: "Billing reference data",
	}

	cmd.AddCommand(newInvoiceListCmd(app))

	return cmd
}

func newInvoiceListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		RunE: func(cmd *cobra.Command, _ []string) error {
			invoices := app.service.ListInvoices()

			if asJSON {
				return writeJSON(cmd, invoices)
			}

			for _, inv := range invoices {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t$%.2f\t%s\n", inv.ID, inv.Date, inv.Amount, inv.Status)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
