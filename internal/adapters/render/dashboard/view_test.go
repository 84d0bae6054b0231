package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/D-C-Legacy/ad-admin/internal/application"
	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRenderOverview(t *testing.T) {
	output := Render(Overview{
		Account: domain.Account{
			ID:       "acc-1",
			Name:     "Acme Corp",
			Timezone: "America/New_York",
			Industry: "E-Commerce",
		},
		Range: application.DateRange30d,
		Metrics: application.MetricsSummary{
			Spend:            6000,
			Impressions:      600000,
			Clicks:           3300,
			Conversions:      140,
			AvgCPC:           1.82,
			AvgCPM:           10,
			ActiveCampaigns:  3,
			PausedCampaigns:  1,
			LimitedCampaigns: 2,
		},
		Series: []domain.TimeSeriesPoint{
			{Date: "2026-02-05", Spend: 180.50, Impressions: 25000, Clicks: 400, Conversions: 12},
			{Date: "2026-02-06", Spend: 210.25, Impressions: 31000, Clicks: 520, Conversions: 18},
		},
		Notifications: []domain.Notification{
			{
				ID:        "notif-budget-0",
				Type:      domain.NotificationBudget,
				Title:     "Budget Alert",
				Message:   `"Lead Gen" has spent 167% of monthly budget.`,
				Timestamp: time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC),
				Read:      false,
			},
		},
	}, RenderOptions{})

	assert.Contains(t, output, "Campaign Dashboard")
	assert.Contains(t, output, "Acme Corp (acc-1)")
	assert.Contains(t, output, "range: 30d")
	assert.Contains(t, output, "$6000.00")
	assert.Contains(t, output, "600000")
	assert.Contains(t, output, "3 active / 1 paused / 2 limited")
	assert.Contains(t, output, "daily spend (last 2 days)")
	assert.Contains(t, output, "2026-02-05")
	assert.Contains(t, output, "$210.25")
	assert.Contains(t, output, "[")
	assert.Contains(t, output, "]")
	assert.Contains(t, output, "notifications: 1")
	assert.Contains(t, output, "* [budget] Budget Alert:")
	assert.Contains(t, output, "167%")
}

func TestRenderOverviewWithoutSeriesOrNotifications(t *testing.T) {
	output := Render(Overview{
		Account: domain.Account{ID: "acc-2", Name: "Globex Industries"},
		Range:   application.DateRange7d,
	}, RenderOptions{})

	assert.Contains(t, output, "Globex Industries (acc-2)")
	assert.Contains(t, output, "notifications: 0")
	assert.Contains(t, output, "No notifications for this account.")
	assert.NotContains(t, output, "daily spend")
}

func TestRenderSeriesTruncatesToWindow(t *testing.T) {
	series := make([]domain.TimeSeriesPoint, 0, 30)
	base := time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		series = append(series, domain.TimeSeriesPoint{
			Date:  base.AddDate(0, 0, i).Format("2006-01-02"),
			Spend: 100,
		})
	}

	output := Render(Overview{
		Account: domain.Account{ID: "acc-1", Name: "Acme Corp"},
		Range:   application.DateRange30d,
		Series:  series,
	}, RenderOptions{SeriesDays: 7})

	assert.Contains(t, output, "daily spend (last 7 days)")
	// Only the newest seven dates survive.
	assert.Contains(t, output, "2026-02-06")
	assert.Contains(t, output, "2026-01-31")
	assert.NotContains(t, output, "2026-01-30")
}

func TestRenderSpendBarProportions(t *testing.T) {
	s := newStyles()

	full := renderSpendBar(100, 100, 10, s)
	assert.Contains(t, full, strings.Repeat("=", 10))
	assert.NotContains(t, full, "-")

	half := renderSpendBar(50, 100, 10, s)
	assert.Contains(t, half, strings.Repeat("=", 5))
	assert.Contains(t, half, strings.Repeat("-", 5))

	empty := renderSpendBar(0, 0, 10, s)
	assert.Contains(t, empty, strings.Repeat("-", 10))
	assert.NotContains(t, empty, "=")
}
