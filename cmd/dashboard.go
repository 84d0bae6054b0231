package cmd

import (
	"context"
	"fmt"

	"github.com/D-C-Legacy/ad-admin/internal/adapters/render/dashboard"
	"github.com/D-C-Legacy/ad-admin/internal/application"
	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"
)

func newDashboardCmd(app *app) *cobra.Command {
	var dateRange string
	var days int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Interactive dashboard over all accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			accounts, err := app.service.ListAccounts(cmd.Context())
			if err != nil {
				return err
			}

			fetch := dashboardFetcher(cmd.Context(), app.service, application.DateRange(dateRange), days)
			return dashboard.RunInteractive(accounts, fetch, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&dateRange, "range", string(application.DateRange30d), "Date range (today|7d|30d|90d|custom)")
	cmd.Flags().IntVar(&days, "days", 14, "Days of spend history to chart")

	return cmd
}

func dashboardFetcher(ctx context.Context, service *application.Service, dateRange application.DateRange, days int) dashboard.Fetcher {
	return func(id domain.AccountID) (dashboard.Overview, []table.Row, error) {
		account := domain.Account{ID: id}
		accounts, err := service.ListAccounts(ctx)
		if err != nil {
			return dashboard.Overview{}, nil, err
		}
		for _, a := range accounts {
			if a.ID == id {
				account = a
				break
			}
		}

		metrics, err := service.GetAccountMetrics(ctx, id, dateRange)
		if err != nil {
			return dashboard.Overview{}, nil, err
		}
		series, err := service.GenerateTimeSeries(ctx, id, days)
		if err != nil {
			return dashboard.Overview{}, nil, err
		}
		notifications, err := service.GenerateNotifications(ctx, id)
		if err != nil {
			return dashboard.Overview{}, nil, err
		}
		page, err := service.ListCampaigns(ctx,
			application.CampaignFilter{AccountID: id},
			application.CampaignSort{},
			1, 50,
		)
		if err != nil {
			return dashboard.Overview{}, nil, err
		}

		rows := make([]table.Row, 0, len(page.Campaigns))
		for _, c := range page.Campaigns {
			rows = append(rows, table.Row{
				string(c.ID),
				c.Name,
				string(c.Status),
				string(c.Objective),
				fmt.Sprintf("$%.0f", c.DailyBudget),
				fmt.Sprintf("$%.2f", c.TotalSpend),
				fmt.Sprintf("$%.2f", c.CPC),
			})
		}

		overview := dashboard.Overview{
			Account:       account,
			Range:         dateRange,
			Metrics:       metrics,
			Series:        series,
			Notifications: notifications,
		}
		return overview, rows, nil
	}
}
