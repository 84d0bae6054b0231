package domain

import "time"

type NotificationType string

const (
	NotificationBudget   NotificationType = "budget"
	NotificationDelivery NotificationType = "delivery"
	NotificationCampaign NotificationType = "campaign"
)

// Notification is an advisory derived from current campaign state. It is
// never persisted; the Read flag is positional and illustrative only.
type Notification struct {
	ID        string
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
	Read      bool
}
