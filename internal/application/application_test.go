package application

import (
	"time"

	"github.com/D-C-Legacy/ad-admin/internal/adapters/repo/memory"
	"github.com/D-C-Legacy/ad-admin/internal/domain"
	"github.com/D-C-Legacy/ad-admin/internal/synth"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2026, 2, 6, 12, 0, 0, 0, time.UTC)

func newTestService(ds synth.Dataset) *Service {
	store := memory.NewStore(ds)
	return NewService(
		store.Accounts(),
		store.Campaigns(),
		store.AdGroups(),
		store.Creatives(),
		fixedClock{now: testNow},
		Config{},
	)
}

// commandDataset is a small hand-built graph for mutation tests.
func commandDataset() synth.Dataset {
	return synth.Dataset{
		Accounts: []domain.Account{
			{ID: "acc-1", Name: "Acme Corp", Timezone: "America/New_York", Industry: "E-Commerce", TotalBudget: 100000, TotalSpend: 6000},
		},
		Campaigns: []domain.Campaign{
			{
				ID: "cmp-acc-1-0", AccountID: "acc-1", Name: "Lead Gen — US Q1",
				Status: domain.CampaignStatusActive, Objective: domain.ObjectiveConversions,
				DailyBudget: 100, TotalSpend: 5000, Impressions: 500000, Clicks: 2500, Conversions: 100,
				CPC: 2.00, CPM: 10.00, BidStrategy: domain.BidStrategyManualCPC,
			},
			{
				ID: "cmp-acc-1-1", AccountID: "acc-1", Name: "Brand Awareness — EU Q2",
				Status: domain.CampaignStatusLimited, Objective: domain.ObjectiveTraffic,
				DailyBudget: 200, TotalSpend: 1000, Impressions: 100000, Clicks: 800, Conversions: 40,
				CPC: 1.25, CPM: 10.00, BidStrategy: domain.BidStrategyManualCPM,
			},
		},
		AdGroups: []domain.AdGroup{
			{ID: "ag-1", CampaignID: "cmp-acc-1-0", Status: domain.AdGroupStatusActive, BidAmount: 1, Impressions: 10000, Clicks: 400, Conversions: 20},
			{ID: "ag-2", CampaignID: "cmp-acc-1-0", Status: domain.AdGroupStatusPaused, BidAmount: 0, Impressions: 100, Clicks: 10, Conversions: 1},
		},
		Creatives: []domain.Creative{
			{ID: "cr-0", Name: "Creative 1 — Banner A", Type: domain.CreativeTypeImage, Status: domain.CreativeStatusApproved},
		},
	}
}
