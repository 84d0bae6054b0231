package application

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
)

const (
	maxBudgetAlerts     = 3
	maxDeliveryWarnings = 2
	pausedNoticeFloor   = 5
)

// GenerateNotifications scans one account's campaigns for threshold
// breaches. Budget alerts come first, then delivery warnings, then the
// aggregate paused notice. Only the first budget alert is unread; the
// read flags are positional and carry no server-side state.
func (s *Service) GenerateNotifications(ctx context.Context, id domain.AccountID) ([]domain.Notification, error) {
	campaigns, err := s.campaigns.ListByAccount(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list campaigns for account: %w", err)
	}

	now := s.clock.Now()
	var notifications []domain.Notification

	budgetAlerts := 0
	for _, c := range campaigns {
		if budgetAlerts == maxBudgetAlerts {
			break
		}
		if c.TotalSpend <= c.DailyBudget*45 {
			continue
		}
		percent := math.Round(c.TotalSpend / (c.DailyBudget * 30) * 100)
		notifications = append(notifications, domain.Notification{
			ID:        fmt.Sprintf("notif-budget-%d", budgetAlerts),
			Type:      domain.NotificationBudget,
			Title:     "Budget Alert",
			Message:   fmt.Sprintf("%q has spent %.0f%% of monthly budget.", c.Name, percent),
			Timestamp: now.Add(-time.Duration(budgetAlerts) * time.Hour),
			Read:      budgetAlerts > 0,
		})
		budgetAlerts++
	}

	deliveryWarnings := 0
	for _, c := range campaigns {
		if deliveryWarnings == maxDeliveryWarnings {
			break
		}
		if c.Status != domain.CampaignStatusLimited {
			continue
		}
		notifications = append(notifications, domain.Notification{
			ID:        fmt.Sprintf("notif-delivery-%d", deliveryWarnings),
			Type:      domain.NotificationDelivery,
			Title:     "Delivery Warning",
			Message:   fmt.Sprintf("%q is limited by budget. Consider increasing daily budget.", c.Name),
			Timestamp: now.Add(-time.Duration(deliveryWarnings+3) * time.Hour),
			Read:      false,
		})
		deliveryWarnings++
	}

	paused := 0
	for _, c := range campaigns {
		if c.Status == domain.CampaignStatusPaused {
			paused++
		}
	}
	if paused > pausedNoticeFloor {
		notifications = append(notifications, domain.Notification{
			ID:        "notif-campaign-1",
			Type:      domain.NotificationCampaign,
			Title:     "Campaign Notice",
			Message:   fmt.Sprintf("%d campaigns are currently paused across this account.", paused),
			Timestamp: now.Add(-2 * time.Hour),
			Read:      true,
		})
	}

	return notifications, nil
}
