package domain

type CampaignID string
type CampaignStatus string
type CampaignObjective string
type BidStrategy string

const (
	CampaignStatusActive  CampaignStatus = "active"
	CampaignStatusPaused  CampaignStatus = "paused"
	CampaignStatusLimited CampaignStatus = "limited"

	ObjectiveTraffic     CampaignObjective = "traffic"
	ObjectiveConversions CampaignObjective = "conversions"
	ObjectiveAppInstalls CampaignObjective = "app_installs"

	BidStrategyManualCPC            BidStrategy = "manual_cpc"
	BidStrategyManualCPM            BidStrategy = "manual_cpm"
	BidStrategyOptimizedConversions BidStrategy = "optimized_conversions"
)

func (s CampaignStatus) Valid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusLimited:
		return true
	default:
		return false
	}
}

func (o CampaignObjective) Valid() bool {
	switch o {
	case ObjectiveTraffic, ObjectiveConversions, ObjectiveAppInstalls:
		return true
	default:
		return false
	}
}

func (b BidStrategy) Valid() bool {
	switch b {
	case BidStrategyManualCPC, BidStrategyManualCPM, BidStrategyOptimizedConversions:
		return true
	default:
		return false
	}
}

// EfficiencyMultiplier is the instantaneous CPC/CPM shift applied when a
// campaign moves to this strategy. It models an efficiency step, not a
// gradual learning curve.
func (b BidStrategy) EfficiencyMultiplier() float64 {
	switch b {
	case BidStrategyOptimizedConversions:
		return 0.85
	case BidStrategyManualCPM:
		return 1.10
	default:
		return 1.0
	}
}

// Campaign is a budgeted, objective-driven advertising effort under one
// account. Invariants: Conversions <= Clicks <= Impressions; CPC and CPM
// are always derived from TotalSpend via the helpers in money.go.
type Campaign struct {
	ID          CampaignID
	AccountID   AccountID
	Name        string
	Status      CampaignStatus
	Objective   CampaignObjective
	DailyBudget float64
	TotalSpend  float64
	Impressions int64
	Clicks      int64
	Conversions int64
	CPC         float64
	CPM         float64
	BidStrategy BidStrategy
	StartDate   string
	EndDate     string
}

// RecomputeRates rederives CPC and CPM from the current totals.
func (c *Campaign) RecomputeRates() {
	c.CPC = CPC(c.TotalSpend, c.Clicks)
	c.CPM = CPM(c.TotalSpend, c.Impressions)
}

// ToggleStatus flips between active and paused. Limited campaigns stay
// limited until changed through another path.
func (c *Campaign) ToggleStatus() {
	switch c.Status {
	case CampaignStatusActive:
		c.Status = CampaignStatusPaused
	case CampaignStatusPaused:
		c.Status = CampaignStatusActive
	}
}
