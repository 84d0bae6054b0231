package cmd

import (
	"fmt"

	"github.com/D-C-Legacy/ad-admin/internal/application"
	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/spf13/cobra"
)

func newCampaignCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campaign",
		Short: "Manage campaigns",
	}

	cmd.AddCommand(
		newCampaignListCmd(app),
		newCampaignToggleCmd(app),
		newCampaignSetStrategyCmd(app),
		newCampaignCreateCmd(app),
	)

	return cmd
}

func newCampaignListCmd(app *app) *cobra.Command {
	var accountID, status, objective, search, sortKey string
	var ascending, asJSON bool
	var page, pageSize int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List campaigns with filtering, sorting and pagination",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := app.service.ListCampaigns(cmd.Context(),
				application.CampaignFilter{
					AccountID: domain.AccountID(accountID),
					Status:    domain.CampaignStatus(status),
					Objective: domain.CampaignObjective(objective),
					Search:    search,
				},
				application.CampaignSort{
					Key:       application.CampaignSortKey(sortKey),
					Ascending: ascending,
				},
				page, pageSize,
			)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, result)
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "page %d/%d (%d campaigns)\n", result.Page, result.TotalPages, result.Total)
			for _, c := range result.Campaigns {
				_, _ = fmt.Fprintf(out, "%s\t%-40s\t%s\t%s\t$%.2f/day\t$%.2f spent\tcpc $%.2f\n",
					c.ID, c.Name, c.Status, c.Objective, c.DailyBudget, c.TotalSpend, c.CPC)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Filter by account ID")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (active|paused|limited)")
	cmd.Flags().StringVar(&objective, "objective", "", "Filter by objective (traffic|conversions|app_installs)")
	cmd.Flags().StringVar(&search, "search", "", "Filter by name substring")
	cmd.Flags().StringVar(&sortKey, "sort", "", "Sort key (name|status|objective|daily_budget|total_spend|impressions|clicks|conversions|cpc|cpm)")
	cmd.Flags().BoolVar(&ascending, "asc", false, "Sort ascending instead of descending")
	cmd.Flags().IntVar(&page, "page", 1, "Page number")
	cmd.Flags().IntVar(&pageSize, "page-size", 10, "Campaigns per page")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newCampaignToggleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <campaign-id>",
		Short: "Toggle a campaign between active and paused",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaign, err := app.service.ToggleCampaignStatus(cmd.Context(), domain.CampaignID(args[0]))
			if err != nil {
				return err
			}
			if campaign.ID == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "campaign %s not found; nothing to do\n", args[0])
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", campaign.ID, campaign.Status)
			return nil
		},
	}
}

func newCampaignSetStrategyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-strategy <campaign-id> <strategy>",
		Short: "Change a campaign's bid strategy (manual_cpc|manual_cpm|optimized_conversions)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			campaign, err := app.service.SetBidStrategy(cmd.Context(), domain.CampaignID(args[0]), domain.BidStrategy(args[1]))
			if err != nil {
				return err
			}
			if campaign.ID == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "campaign %s not found; nothing to do\n", args[0])
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tcpc $%.2f\tcpm $%.2f\n",
				campaign.ID, campaign.BidStrategy, campaign.CPC, campaign.CPM)
			return nil
		},
	}
}

func newCampaignCreateCmd(app *app) *cobra.Command {
	var accountID, name, objective, strategy string
	var dailyBudget float64

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a campaign with zeroed metrics",
		RunE: func(cmd *cobra.Command, _ []string) error {
			campaign, err := app.service.CreateCampaign(cmd.Context(), application.CreateCampaignCommand{
				AccountID:   domain.AccountID(accountID),
				Name:        name,
				Objective:   domain.CampaignObjective(objective),
				DailyBudget: dailyBudget,
				BidStrategy: domain.BidStrategy(strategy),
			})
			if err != nil {
				return err
			}
			if campaign.ID == "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "account %s not found; nothing to do\n", accountID)
				return nil
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created %s\t%s\n", campaign.ID, campaign.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Owning account ID")
	cmd.Flags().StringVar(&name, "name", "", "Campaign name")
	cmd.Flags().StringVar(&objective, "objective", string(domain.ObjectiveTraffic), "Objective (traffic|conversions|app_installs)")
	cmd.Flags().Float64Var(&dailyBudget, "daily-budget", 0, "Daily budget")
	cmd.Flags().StringVar(&strategy, "strategy", string(domain.BidStrategyManualCPC), "Bid strategy")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("daily-budget")

	return cmd
}
