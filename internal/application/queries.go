package application

import "github.com/D-C-Legacy/ad-admin/internal/domain"

type DateRange string

const (
	DateRangeToday  DateRange = "today"
	DateRange7d     DateRange = "7d"
	DateRange30d    DateRange = "30d"
	DateRange90d    DateRange = "90d"
	DateRangeCustom DateRange = "custom"
)

// Days maps a range key to its day count. Unknown keys fall back to 30,
// matching the behaviour the dashboard always had.
func (d DateRange) Days() int {
	switch d {
	case DateRangeToday:
		return 1
	case DateRange7d:
		return 7
	case DateRange90d:
		return 90
	default:
		return 30
	}
}

// MetricsSummary is the account-level rollup for one date range. Money
// values are rounded to cents, counts to integers; campaign status
// counts always reflect the current graph and are never scaled.
type MetricsSummary struct {
	Spend            float64
	Impressions      int64
	Clicks           int64
	Conversions      int64
	AvgCPC           float64
	AvgCPM           float64
	ActiveCampaigns  int
	PausedCampaigns  int
	LimitedCampaigns int
}

type CampaignSortKey string

const (
	CampaignSortName        CampaignSortKey = "name"
	CampaignSortStatus      CampaignSortKey = "status"
	CampaignSortObjective   CampaignSortKey = "objective"
	CampaignSortDailyBudget CampaignSortKey = "daily_budget"
	CampaignSortTotalSpend  CampaignSortKey = "total_spend"
	CampaignSortImpressions CampaignSortKey = "impressions"
	CampaignSortClicks      CampaignSortKey = "clicks"
	CampaignSortConversions CampaignSortKey = "conversions"
	CampaignSortCPC         CampaignSortKey = "cpc"
	CampaignSortCPM         CampaignSortKey = "cpm"
)

type CampaignFilter struct {
	AccountID domain.AccountID
	Status    domain.CampaignStatus
	Objective domain.CampaignObjective
	Search    string
}

type CampaignSort struct {
	Key       CampaignSortKey
	Ascending bool
}

// CampaignPage is one page of a filtered, sorted campaign listing.
type CampaignPage struct {
	Campaigns  []domain.Campaign
	Total      int
	Page       int
	PageSize   int
	TotalPages int
}

type AdGroupFilter struct {
	CampaignID domain.CampaignID
	AccountID  domain.AccountID
}

type CreativeFilter struct {
	Type   domain.CreativeType
	Status domain.CreativeStatus
}
