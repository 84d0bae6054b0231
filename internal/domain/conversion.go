package domain

type ConversionEventType string

const (
	ConversionEventPurchase   ConversionEventType = "purchase"
	ConversionEventAddToCart  ConversionEventType = "add_to_cart"
	ConversionEventSignup     ConversionEventType = "signup"
	ConversionEventLead       ConversionEventType = "lead"
	ConversionEventPageView   ConversionEventType = "pageview"
	ConversionEventAppInstall ConversionEventType = "app_install"
)

// ConversionEvent is one row of the per-account conversion breakdown,
// recomputed per (account, attribution window) query.
type ConversionEvent struct {
	ID                string
	Name              string
	Type              ConversionEventType
	Count             int64
	Value             float64
	ConversionRate    float64
	CostPerConversion float64
}
