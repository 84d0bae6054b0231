package application

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/D-C-Legacy/ad-admin/internal/synth"
)

// eventCatalog is the fixed set of conversion event types every account
// reports on.
var eventCatalog = []struct {
	ID   string
	Name string
	Type domain.ConversionEventType
}{
	{"ev-1", "Purchase", domain.ConversionEventPurchase},
	{"ev-2", "Add to Cart", domain.ConversionEventAddToCart},
	{"ev-3", "Sign Up", domain.ConversionEventSignup},
	{"ev-4", "Lead", domain.ConversionEventLead},
	{"ev-5", "Page View", domain.ConversionEventPageView},
	{"ev-6", "App Install", domain.ConversionEventAppInstall},
}

func attributionMultiplier(windowDays int) float64 {
	switch windowDays {
	case 1:
		return 0.4
	case 7:
		return 0.75
	default:
		return 1.0
	}
}

// ComputeConversionEvents derives the per-event breakdown for one
// account and attribution window. Each event takes a reseeded fraction
// of the account's lifetime clicks, scaled by the window multiplier, so
// results are stable per (account, window) pair but differ across
// pairs. Nothing is stored.
func (s *Service) ComputeConversionEvents(ctx context.Context, id domain.AccountID, windowDays int) ([]domain.ConversionEvent, error) {
	campaigns, err := s.campaigns.ListByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list campaigns for account: %w", err)
	}

	var totalClicks int64
	var totalSpend float64
	for _, c := range campaigns {
		totalClicks += c.Clicks
		totalSpend += c.TotalSpend
	}

	multiplier := attributionMultiplier(windowDays)
	rng := synth.NewRand(synth.SeedFor(string(id), "attribution", strconv.Itoa(windowDays)))

	events := make([]domain.ConversionEvent, 0, len(eventCatalog))
	for _, entry := range eventCatalog {
		fraction := rng.Between(0.05, 0.30)
		count := int64(math.Round(float64(totalClicks) * fraction * multiplier))
		value := domain.RoundCents(float64(count) * rng.Between(10, 100))

		var conversionRate float64
		if totalClicks > 0 {
			conversionRate = math.Round(float64(count)/float64(totalClicks)*10000) / 100
		}
		var costPerConversion float64
		if count > 0 {
			costPerConversion = domain.RoundCents(totalSpend * fraction / float64(count))
		}

		events = append(events, domain.ConversionEvent{
			ID:                entry.ID,
			Name:              entry.Name,
			Type:              entry.Type,
			Count:             count,
			Value:             value,
			ConversionRate:    conversionRate,
			CostPerConversion: costPerConversion,
		})
	}

	return events, nil
}
