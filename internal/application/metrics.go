package application

import (
	"context"
	"fmt"
	"math"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
)

// GetAccountMetrics rolls the account's campaigns up into one summary.
// The date range is applied as a multiplicative factor of days/30 over
// lifetime totals rather than a true per-day slice; that approximation
// is documented engine behaviour, inherited from the dashboard this
// engine models. An unknown account yields an empty summary.
func (s *Service) GetAccountMetrics(ctx context.Context, id domain.AccountID, dateRange DateRange) (MetricsSummary, error) {
	campaigns, err := s.campaigns.ListByAccount(ctx, id)
	if err != nil {
		return MetricsSummary{}, fmt.Errorf("list campaigns for account: %w", err)
	}

	factor := float64(dateRange.Days()) / 30

	var summary MetricsSummary
	var spend, impressions, clicks, conversions float64
	for _, c := range campaigns {
		spend += c.TotalSpend
		impressions += float64(c.Impressions)
		clicks += float64(c.Clicks)
		conversions += float64(c.Conversions)

		switch c.Status {
		case domain.CampaignStatusActive:
			summary.ActiveCampaigns++
		case domain.CampaignStatusPaused:
			summary.PausedCampaigns++
		case domain.CampaignStatusLimited:
			summary.LimitedCampaigns++
		}
	}

	spend *= factor
	impressions *= factor
	clicks *= factor
	conversions *= factor

	summary.Spend = domain.RoundCents(spend)
	summary.Impressions = int64(math.Round(impressions))
	summary.Clicks = int64(math.Round(clicks))
	summary.Conversions = int64(math.Round(conversions))
	if clicks > 0 {
		summary.AvgCPC = domain.RoundCents(spend / clicks)
	}
	if impressions > 0 {
		summary.AvgCPM = domain.RoundCents(spend / impressions * 1000)
	}

	return summary, nil
}
