package synth

import (
	"fmt"
	"math"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
)

// Advertiser names one tenant to synthesize an account for.
type Advertiser struct {
	Name     string
	Timezone string
	Industry string
}

// Config controls the synthesizer. The same config always yields the
// same dataset.
type Config struct {
	Seed             uint32
	Advertisers      []Advertiser
	CreativePoolSize int
}

func DefaultConfig() Config {
	return Config{
		Seed:             42,
		Advertisers:      defaultAdvertisers,
		CreativePoolSize: 60,
	}
}

// Dataset is the complete synthesized entity graph.
type Dataset struct {
	Accounts  []domain.Account
	Campaigns []domain.Campaign
	AdGroups  []domain.AdGroup
	Creatives []domain.Creative
}

// Synthesizer builds the entity graph from one seeded stream. It runs
// once at startup; all later reads and mutations go through the
// application service.
type Synthesizer struct {
	cfg Config
	rng *Rand
}

func NewSynthesizer(cfg Config) *Synthesizer {
	if len(cfg.Advertisers) == 0 {
		cfg.Advertisers = defaultAdvertisers
	}
	if cfg.CreativePoolSize <= 0 {
		cfg.CreativePoolSize = 60
	}
	return &Synthesizer{cfg: cfg, rng: NewRand(cfg.Seed)}
}

// Build synthesizes accounts, campaigns, ad groups and creatives, then
// runs the account-spend fix-up pass. Campaign spend must exist before
// the fix-up, so the pass order is fixed.
func (s *Synthesizer) Build() Dataset {
	var ds Dataset

	ds.Accounts = s.buildAccounts()
	for i := range ds.Accounts {
		ds.Campaigns = append(ds.Campaigns, s.buildCampaigns(ds.Accounts[i].ID)...)
	}
	fixUpAccountSpend(ds.Accounts, ds.Campaigns)

	for i := range ds.Campaigns {
		ds.AdGroups = append(ds.AdGroups, s.buildAdGroups(ds.Campaigns[i])...)
	}
	ds.Creatives = s.buildCreatives(ds.AdGroups)

	return ds
}

func (s *Synthesizer) buildAccounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(s.cfg.Advertisers))
	for i, adv := range s.cfg.Advertisers {
		accounts = append(accounts, domain.Account{
			ID:          domain.AccountID(fmt.Sprintf("acc-%d", i+1)),
			Name:        adv.Name,
			Timezone:    adv.Timezone,
			Industry:    adv.Industry,
			Currency:    "USD",
			TotalBudget: math.Round(s.rng.Between(50000, 200000)),
			TotalSpend:  0, // fixed up after campaigns exist
		})
	}
	return accounts
}

func (s *Synthesizer) buildCampaigns(accountID domain.AccountID) []domain.Campaign {
	count := s.rng.IntBetween(35, 50)
	campaigns := make([]domain.Campaign, 0, count)

	for i := 0; i < count; i++ {
		objective := Pick(s.rng, campaignObjectives)
		status := Pick(s.rng, campaignStatuses)
		dailyBudget := math.Round(s.rng.Between(50, 2000))
		impressions := int64(s.rng.IntBetween(10000, 5000000))
		clicks := int64(s.rng.IntBetween(
			int(float64(impressions)*0.005),
			int(float64(impressions)*0.04),
		))
		conversions := int64(s.rng.IntBetween(
			int(float64(clicks)*0.01),
			int(float64(clicks)*0.15),
		))
		totalSpend := domain.RoundCents(s.rng.Between(dailyBudget*5, dailyBudget*60))

		label := Pick(s.rng, objectiveLabels[objective])
		region := Pick(s.rng, regions)
		season := Pick(s.rng, seasons)

		campaign := domain.Campaign{
			ID:          domain.CampaignID(fmt.Sprintf("cmp-%s-%d", accountID, i)),
			AccountID:   accountID,
			Name:        fmt.Sprintf("%s — %s %s", label, region, season),
			Status:      status,
			Objective:   objective,
			DailyBudget: dailyBudget,
			TotalSpend:  totalSpend,
			Impressions: impressions,
			Clicks:      clicks,
			Conversions: conversions,
			BidStrategy: Pick(s.rng, bidStrategies),
			StartDate:   s.randomDate(2025),
			EndDate:     s.randomDate(2026),
		}
		campaign.RecomputeRates()
		campaigns = append(campaigns, campaign)
	}

	return campaigns
}

// fixUpAccountSpend recomputes every account's total spend from its
// campaigns, rounded to cents.
func fixUpAccountSpend(accounts []domain.Account, campaigns []domain.Campaign) {
	spend := make(map[domain.AccountID]float64, len(accounts))
	for _, c := range campaigns {
		spend[c.AccountID] += c.TotalSpend
	}
	for i := range accounts {
		accounts[i].TotalSpend = domain.RoundCents(spend[accounts[i].ID])
	}
}

func (s *Synthesizer) buildAdGroups(campaign domain.Campaign) []domain.AdGroup {
	count := s.rng.IntBetween(2, 6)
	groups := make([]domain.AdGroup, 0, count)

	for i := 0; i < count; i++ {
		bidAmount := domain.RoundCents(s.rng.Between(0.1, 5))
		impressions := int64(s.rng.IntBetween(1000, int(campaign.Impressions)/count))
		clicks := int64(s.rng.IntBetween(
			int(float64(impressions)*0.005),
			int(float64(impressions)*0.04),
		))
		conversions := int64(s.rng.IntBetween(
			int(float64(clicks)*0.01),
			int(float64(clicks)*0.15),
		))

		status := domain.AdGroupStatusActive
		if s.rng.Next() <= 0.2 {
			status = domain.AdGroupStatusPaused
		}

		groups = append(groups, domain.AdGroup{
			ID:         domain.AdGroupID(fmt.Sprintf("ag-%s-%d", campaign.ID, i)),
			CampaignID: campaign.ID,
			Name:       fmt.Sprintf("%s — Group %d", campaign.Name, i+1),
			Status:     status,
			BidAmount:  bidAmount,
			Targeting: domain.Targeting{
				Geo:      Pick(s.rng, geoOptions),
				Device:   Pick(s.rng, deviceOptions),
				Platform: Pick(s.rng, platformOptions),
			},
			Impressions: impressions,
			Clicks:      clicks,
			Conversions: conversions,
		})
	}

	return groups
}

func (s *Synthesizer) buildCreatives(adGroups []domain.AdGroup) []domain.Creative {
	creatives := make([]domain.Creative, 0, s.cfg.CreativePoolSize)

	for i := 0; i < s.cfg.CreativePoolSize; i++ {
		creativeType := Pick(s.rng, creativeTypes)

		status := domain.CreativeStatusRejected
		if s.rng.Next() > 0.15 {
			status = domain.CreativeStatusApproved
			if s.rng.Next() <= 0.2 {
				status = domain.CreativeStatusPending
			}
		}

		var related []domain.AdGroupID
		for _, group := range adGroups {
			if s.rng.Next() > 0.92 {
				related = append(related, group.ID)
			}
		}
		if limit := s.rng.IntBetween(1, 4); len(related) > limit {
			related = related[:limit]
		}

		fileSize := "< 1 KB"
		if creativeType != domain.CreativeTypeText {
			fileSize = fmt.Sprintf("%d KB", s.rng.IntBetween(20, 5000))
		}

		creatives = append(creatives, domain.Creative{
			ID:          domain.CreativeID(fmt.Sprintf("cr-%d", i)),
			Name:        fmt.Sprintf("Creative %d — %s %s", i+1, creativeKindLabel(creativeType), Pick(s.rng, creativeVariants)),
			Type:        creativeType,
			Status:      status,
			AdGroupIDs:  related,
			Dimensions:  Pick(s.rng, creativeDimensions[creativeType]),
			FileSize:    fileSize,
			CreatedDate: s.randomDate(2025),
		})
	}

	return creatives
}

func (s *Synthesizer) randomDate(year int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, s.rng.IntBetween(1, 12), s.rng.IntBetween(1, 28))
}
