package cmd

import (
	"fmt"

	"github.com/D-C-Legacy/ad-admin/internal/application"
	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/spf13/cobra"
)

func newAccountCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage advertiser accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(app),
		newAccountMetricsCmd(app),
		newAccountUpdateCmd(app),
	)

	return cmd
}

func newAccountListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List advertiser accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := app.service.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, accounts)
			}

			for _, account := range accounts {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\tbudget $%.2f\tspend $%.2f\n",
					account.ID, account.Name, account.Industry, account.TotalBudget, account.TotalSpend)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAccountMetricsCmd(app *app) *cobra.Command {
	var dateRange string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "metrics <account-id>",
		Short: "Show the rolled-up metrics summary for one account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.service.GetAccountMetrics(cmd.Context(), domain.AccountID(args[0]), application.DateRange(dateRange))
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, summary)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "spend:       $%.2f\n", summary.Spend)
			_, _ = fmt.Fprintf(out, "impressions: %d\n", summary.Impressions)
			_, _ = fmt.Fprintf(out, "clicks:      %d\n", summary.Clicks)
			_, _ = fmt.Fprintf(out, "conversions: %d\n", summary.Conversions)
			_, _ = fmt.Fprintf(out, "avg cpc:     $%.2f\n", summary.AvgCPC)
			_, _ = fmt.Fprintf(out, "avg cpm:     $%.2f\n", summary.AvgCPM)
			_, _ = fmt.Fprintf(out, "campaigns:   %d active / %d paused / %d limited\n",
				summary.ActiveCampaigns, summary.PausedCampaigns, summary.LimitedCampaigns)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateRange, "range", string(application.DateRange30d), "Date range (today|7d|30d|90d|custom)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAccountUpdateCmd(app *app) *cobra.Command {
	var name, timezone, industry string

	cmd := &cobra.Command{
		Use:   "update <account-id>",
		Short: "Update account name, timezone or industry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var details domain.AccountDetails
			if cmd.Flags().Changed("name") {
				details.Name = &name
			}
			if cmd.Flags().Changed("timezone") {
				details.Timezone = &timezone
			}
			if cmd.Flags().Changed("industry") {
				details.Industry = &industry
			}

			account, err := app.service.UpdateAccountDetails(cmd.Context(), domain.AccountID(args[0]), details)
			if err != nil {
				return err
			}
			if account.ID == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account %s not found; nothing to do\n", args[0])
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", account.ID, account.Name, account.Timezone, account.Industry)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New account name")
	cmd.Flags().StringVar(&timezone, "timezone", "", "New account timezone")
	cmd.Flags().StringVar(&industry, "industry", "", "New account industry")

	return cmd
}
