package domain

import "math"

type AdGroupID string
type AdGroupStatus string

const (
	AdGroupStatusActive AdGroupStatus = "active"
	AdGroupStatusPaused AdGroupStatus = "paused"
)

// Targeting describes who an ad group is shown to.
type Targeting struct {
	Geo      []string
	Device   []string
	Platform []string
}

// AdGroup is a targeting plus bidding unit within a campaign.
type AdGroup struct {
	ID          AdGroupID
	CampaignID  CampaignID
	Name        string
	Status      AdGroupStatus
	BidAmount   float64
	Targeting   Targeting
	Impressions int64
	Clicks      int64
	Conversions int64
}

// ToggleStatus flips between active and paused.
func (g *AdGroup) ToggleStatus() {
	if g.Status == AdGroupStatusActive {
		g.Status = AdGroupStatusPaused
	} else {
		g.Status = AdGroupStatusActive
	}
}

// ApplyBid sets a new bid and rescales delivered volume by
// sqrt(newBid/oldBid), a sub-linear volume response. A zero old bid is
// treated as 1 to avoid division by zero.
func (g *AdGroup) ApplyBid(newBid float64) {
	oldBid := g.BidAmount
	if oldBid == 0 {
		oldBid = 1
	}
	scale := math.Sqrt(newBid / oldBid)

	g.BidAmount = newBid
	g.Impressions = int64(math.Round(float64(g.Impressions) * scale))
	g.Clicks = int64(math.Round(float64(g.Clicks) * scale))
	g.Conversions = int64(math.Round(float64(g.Conversions) * scale))
}
