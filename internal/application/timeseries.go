package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/D-C-Legacy/ad-admin/internal/synth"
)

// GenerateTimeSeries produces one point per day over the requested
// window, oldest first, anchored at the service's reference date. The
// noise stream is reseeded from the account ID per call, so identical
// arguments always yield identical points. Base spend is the average
// daily budget of the account's active campaigns; weekends deliver at
// 0.7 and spend drifts upward by 0.3% per elapsed day.
func (s *Service) GenerateTimeSeries(ctx context.Context, id domain.AccountID, days int) ([]domain.TimeSeriesPoint, error) {
	if days <= 0 {
		return nil, nil
	}

	campaigns, err := s.campaigns.ListByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list campaigns for account: %w", err)
	}

	var budgetSum float64
	var activeCount int
	for _, c := range campaigns {
		if c.Status == domain.CampaignStatusActive {
			budgetSum += c.DailyBudget
			activeCount++
		}
	}
	var baseSpend float64
	if activeCount > 0 {
		baseSpend = budgetSum / float64(activeCount)
	}

	rng := synth.NewRand(synth.SeedFor(string(id), "timeseries"))

	points := make([]domain.TimeSeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := s.refDate.AddDate(0, 0, -i)
		weekendFactor := 1.0
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekendFactor = 0.7
		}
		trendFactor := 1 + float64(days-i)*0.003

		spend := domain.RoundCents(baseSpend * weekendFactor * trendFactor * rng.Between(0.8, 1.2))
		impressions := int64(math.Round(spend / 0.007 * rng.Between(0.8, 1.2)))
		clicks := int64(math.Round(float64(impressions) * rng.Between(0.008, 0.033)))
		conversions := int64(math.Round(float64(clicks) * rng.Between(0.02, 0.10)))

		points = append(points, domain.TimeSeriesPoint{
			Date:        date.Format("2006-01-02"),
			Spend:       spend,
			Impressions: impressions,
			Clicks:      clicks,
			Conversions: conversions,
			CPC:         domain.CPC(spend, clicks),
			CPM:         domain.CPM(spend, impressions),
		})
	}

	return points, nil
}
