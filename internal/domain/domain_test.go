package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundCents(t *testing.T) {
	assert.Equal(t, 1.23, RoundCents(1.234))
	assert.Equal(t, 1.24, RoundCents(1.235))
	assert.Equal(t, 0.0, RoundCents(0))
	assert.Equal(t, -2.5, RoundCents(-2.499))
}

func TestDerivedRatesZeroGuards(t *testing.T) {
	assert.Equal(t, 0.0, CPC(100, 0))
	assert.Equal(t, 0.0, CPM(100, 0))
	assert.Equal(t, 2.0, CPC(100, 50))
	assert.Equal(t, 5.0, CPM(100, 20000))
}

func TestCampaignRecomputeRates(t *testing.T) {
	c := Campaign{TotalSpend: 1234.56, Impressions: 100000, Clicks: 617}
	c.RecomputeRates()

	assert.Equal(t, 2.0, c.CPC)
	assert.Equal(t, 12.35, c.CPM)
}

func TestCampaignToggleStatus(t *testing.T) {
	tests := []struct {
		name string
		from CampaignStatus
		want CampaignStatus
	}{
		{name: "active pauses", from: CampaignStatusActive, want: CampaignStatusPaused},
		{name: "paused activates", from: CampaignStatusPaused, want: CampaignStatusActive},
		{name: "limited stays limited", from: CampaignStatusLimited, want: CampaignStatusLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Campaign{Status: tt.from}
			c.ToggleStatus()
			assert.Equal(t, tt.want, c.Status)
		})
	}
}

func TestBidStrategyEfficiencyMultiplier(t *testing.T) {
	assert.Equal(t, 0.85, BidStrategyOptimizedConversions.EfficiencyMultiplier())
	assert.Equal(t, 1.10, BidStrategyManualCPM.EfficiencyMultiplier())
	assert.Equal(t, 1.0, BidStrategyManualCPC.EfficiencyMultiplier())
}

func TestAdGroupApplyBidScalesVolumeSubLinearly(t *testing.T) {
	g := AdGroup{BidAmount: 1, Impressions: 10000, Clicks: 400, Conversions: 20}
	g.ApplyBid(4)

	// sqrt(4/1) = 2
	assert.Equal(t, 4.0, g.BidAmount)
	assert.Equal(t, int64(20000), g.Impressions)
	assert.Equal(t, int64(800), g.Clicks)
	assert.Equal(t, int64(40), g.Conversions)
}

func TestAdGroupApplyBidNeverDecreasesVolumeOnRaise(t *testing.T) {
	g := AdGroup{BidAmount: 1.5, Impressions: 33333, Clicks: 701, Conversions: 13}
	before := g

	g.ApplyBid(2.5)

	assert.GreaterOrEqual(t, g.Impressions, before.Impressions)
	assert.GreaterOrEqual(t, g.Clicks, before.Clicks)
	assert.GreaterOrEqual(t, g.Conversions, before.Conversions)
}

func TestAdGroupApplyBidZeroOldBidTreatedAsOne(t *testing.T) {
	g := AdGroup{BidAmount: 0, Impressions: 100, Clicks: 10, Conversions: 1}
	g.ApplyBid(1)

	assert.Equal(t, int64(100), g.Impressions)
	assert.Equal(t, int64(10), g.Clicks)
	assert.Equal(t, int64(1), g.Conversions)
}

func TestCreativeAssignAdGroupIsIdempotent(t *testing.T) {
	c := Creative{ID: "cr-1"}

	c.AssignAdGroup("ag-1")
	c.AssignAdGroup("ag-2")
	c.AssignAdGroup("ag-1")

	require.Len(t, c.AdGroupIDs, 2)
	assert.Equal(t, []AdGroupID{"ag-1", "ag-2"}, c.AdGroupIDs)
}

func TestAccountDetailsApplyMergesOnlySetFields(t *testing.T) {
	account := Account{
		ID:          "acc-1",
		Name:        "Acme Corp",
		Timezone:    "America/New_York",
		Industry:    "E-Commerce",
		TotalBudget: 100000,
		TotalSpend:  42000.50,
	}

	name := "Acme Holdings"
	AccountDetails{Name: &name}.Apply(&account)

	assert.Equal(t, "Acme Holdings", account.Name)
	assert.Equal(t, "America/New_York", account.Timezone)
	assert.Equal(t, "E-Commerce", account.Industry)
	assert.Equal(t, 42000.50, account.TotalSpend)
}

func TestEnumValidation(t *testing.T) {
	assert.True(t, CampaignStatusLimited.Valid())
	assert.False(t, CampaignStatus("archived").Valid())
	assert.True(t, ObjectiveAppInstalls.Valid())
	assert.False(t, CampaignObjective("reach").Valid())
	assert.True(t, BidStrategyOptimizedConversions.Valid())
	assert.False(t, BidStrategy("target_roas").Valid())
}
