package synth

import "github.com/D-C-Legacy/ad-admin/internal/domain"

// Static catalogs the synthesizer draws from. Pool contents and order
// feed the deterministic stream, so reordering entries changes every
// generated dataset.

var (
	defaultAdvertisers = []Advertiser{
		{Name: "Acme Corp", Timezone: "America/New_York", Industry: "E-Commerce"},
		{Name: "Globex Industries", Timezone: "Europe/London", Industry: "SaaS"},
		{Name: "Initech Solutions", Timezone: "Asia/Tokyo", Industry: "Mobile Gaming"},
	}

	objectiveLabels = map[domain.CampaignObjective][]string{
		domain.ObjectiveTraffic:     {"Brand Awareness", "Website Traffic", "Landing Page", "Blog Promo", "Content Push"},
		domain.ObjectiveConversions: {"Lead Gen", "Signup Drive", "Purchase", "Free Trial", "Demo Request"},
		domain.ObjectiveAppInstalls: {"App Install", "App Engagement", "Re-engagement", "Deep Link", "App Promo"},
	}

	regions = []string{"US", "EU", "APAC", "LATAM", "Global"}
	seasons = []string{"Q1", "Q2", "Q3", "Q4", "Evergreen", "Holiday", "Summer", "BFCM"}

	campaignStatuses = []domain.CampaignStatus{
		domain.CampaignStatusActive,
		domain.CampaignStatusPaused,
		domain.CampaignStatusLimited,
	}
	campaignObjectives = []domain.CampaignObjective{
		domain.ObjectiveTraffic,
		domain.ObjectiveConversions,
		domain.ObjectiveAppInstalls,
	}
	bidStrategies = []domain.BidStrategy{
		domain.BidStrategyManualCPC,
		domain.BidStrategyManualCPM,
		domain.BidStrategyOptimizedConversions,
	}

	geoOptions = [][]string{
		{"US"}, {"US", "CA"}, {"UK", "DE", "FR"}, {"JP", "KR"}, {"BR", "MX"}, {"AU", "NZ"},
	}
	deviceOptions = [][]string{
		{"desktop"}, {"mobile"}, {"desktop", "mobile"}, {"mobile", "tablet"}, {"desktop", "mobile", "tablet"},
	}
	platformOptions = [][]string{
		{"web"}, {"ios"}, {"android"}, {"ios", "android"}, {"web", "ios", "android"},
	}

	creativeTypes = []domain.CreativeType{
		domain.CreativeTypeImage,
		domain.CreativeTypeVideo,
		domain.CreativeTypeText,
	}
	creativeDimensions = map[domain.CreativeType][]string{
		domain.CreativeTypeImage: {"300x250", "728x90", "160x600", "320x50", "1200x628"},
		domain.CreativeTypeVideo: {"1920x1080", "1280x720", "640x360", "1080x1080"},
		domain.CreativeTypeText:  {"N/A"},
	}
	creativeVariants = []string{"A", "B", "C", "D"}
)

func creativeKindLabel(t domain.CreativeType) string {
	switch t {
	case domain.CreativeTypeImage:
		return "Banner"
	case domain.CreativeTypeVideo:
		return "Pre-roll"
	default:
		return "Headline"
	}
}
