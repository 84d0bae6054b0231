package application

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
)

// Mutations never fail for a known ID and well-formed input. An unknown
// ID is a no-op returning a zero-value entity: the surrounding UI may
// hold stale IDs and retries must not corrupt the graph. Malformed
// numeric input is rejected with domain.ErrInvalidArgument before any
// state is touched.

// CreateCampaignCommand carries the caller-supplied fields for a new
// campaign. All traffic metrics start at zero.
type CreateCampaignCommand struct {
	AccountID   domain.AccountID
	Name        string
	Objective   domain.CampaignObjective
	DailyBudget float64
	BidStrategy domain.BidStrategy
}

func positiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ToggleCampaignStatus flips a campaign between active and paused. A
// limited campaign is left alone.
func (s *Service) ToggleCampaignStatus(ctx context.Context, id domain.CampaignID) (domain.Campaign, error) {
	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			return domain.Campaign{}, nil
		}
		return domain.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}

	campaign.ToggleStatus()

	if err := s.campaigns.Save(ctx, campaign); err != nil {
		return domain.Campaign{}, fmt.Errorf("save campaign: %w", err)
	}
	return campaign, nil
}

// ToggleAdGroupStatus flips an ad group between active and paused.
func (s *Service) ToggleAdGroupStatus(ctx context.Context, id domain.AdGroupID) (domain.AdGroup, error) {
	group, err := s.adGroups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAdGroupNotFound) {
			return domain.AdGroup{}, nil
		}
		return domain.AdGroup{}, fmt.Errorf("get ad group: %w", err)
	}

	group.ToggleStatus()

	if err := s.adGroups.Save(ctx, group); err != nil {
		return domain.AdGroup{}, fmt.Errorf("save ad group: %w", err)
	}
	return group, nil
}

// SetBidStrategy changes a campaign's strategy and rescales its CPC and
// CPM by the strategy's efficiency multiplier, re-rounded to cents.
func (s *Service) SetBidStrategy(ctx context.Context, id domain.CampaignID, strategy domain.BidStrategy) (domain.Campaign, error) {
	if !strategy.Valid() {
		return domain.Campaign{}, fmt.Errorf("%w: bid strategy %q", domain.ErrInvalidArgument, strategy)
	}

	campaign, err := s.campaigns.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCampaignNotFound) {
			return domain.Campaign{}, nil
		}
		return domain.Campaign{}, fmt.Errorf("get campaign: %w", err)
	}

	multiplier := strategy.EfficiencyMultiplier()
	campaign.BidStrategy = strategy
	campaign.CPC = domain.RoundCents(campaign.CPC * multiplier)
	campaign.CPM = domain.RoundCents(campaign.CPM * multiplier)

	if err := s.campaigns.Save(ctx, campaign); err != nil {
		return domain.Campaign{}, fmt.Errorf("save campaign: %w", err)
	}
	return campaign, nil
}

// SetAdGroupBid sets a new bid and rescales the group's delivered
// volume sub-linearly (sqrt of the bid ratio).
func (s *Service) SetAdGroupBid(ctx context.Context, id domain.AdGroupID, bid float64) (domain.AdGroup, error) {
	if !positiveFinite(bid) {
		return domain.AdGroup{}, fmt.Errorf("%w: bid %v", domain.ErrInvalidArgument, bid)
	}

	group, err := s.adGroups.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAdGroupNotFound) {
			return domain.AdGroup{}, nil
		}
		return domain.AdGroup{}, fmt.Errorf("get ad group: %w", err)
	}

	group.ApplyBid(bid)

	if err := s.adGroups.Save(ctx, group); err != nil {
		return domain.AdGroup{}, fmt.Errorf("save ad group: %w", err)
	}
	return group, nil
}

// AssignCreative adds an ad group to a creative's association set.
// Duplicate assignment is a no-op.
func (s *Service) AssignCreative(ctx context.Context, creativeID domain.CreativeID, adGroupID domain.AdGroupID) (domain.Creative, error) {
	if _, err := s.adGroups.GetByID(ctx, adGroupID); err != nil {
		if errors.Is(err, domain.ErrAdGroupNotFound) {
			return domain.Creative{}, nil
		}
		return domain.Creative{}, fmt.Errorf("get ad group: %w", err)
	}

	creative, err := s.creatives.GetByID(ctx, creativeID)
	if err != nil {
		if errors.Is(err, domain.ErrCreativeNotFound) {
			return domain.Creative{}, nil
		}
		return domain.Creative{}, fmt.Errorf("get creative: %w", err)
	}

	creative.AssignAdGroup(adGroupID)

	if err := s.creatives.Save(ctx, creative); err != nil {
		return domain.Creative{}, fmt.Errorf("save creative: %w", err)
	}
	return creative, nil
}

// CreateCampaign inserts a new campaign with zeroed traffic metrics at
// the front of the collection, keeping listings most-recent-first. The
// ID is derived from the account's campaign count, which only grows.
func (s *Service) CreateCampaign(ctx context.Context, cmd CreateCampaignCommand) (domain.Campaign, error) {
	if !cmd.Objective.Valid() {
		return domain.Campaign{}, fmt.Errorf("%w: objective %q", domain.ErrInvalidArgument, cmd.Objective)
	}
	if !cmd.BidStrategy.Valid() {
		return domain.Campaign{}, fmt.Errorf("%w: bid strategy %q", domain.ErrInvalidArgument, cmd.BidStrategy)
	}
	if !positiveFinite(cmd.DailyBudget) {
		return domain.Campaign{}, fmt.Errorf("%w: daily budget %v", domain.ErrInvalidArgument, cmd.DailyBudget)
	}

	if _, err := s.accounts.GetByID(ctx, cmd.AccountID); err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Campaign{}, nil
		}
		return domain.Campaign{}, fmt.Errorf("get account: %w", err)
	}

	existing, err := s.campaigns.ListByAccount(ctx, cmd.AccountID)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("list campaigns for account: %w", err)
	}

	today := s.clock.Now().Format("2006-01-02")
	campaign := domain.Campaign{
		ID:          domain.CampaignID(fmt.Sprintf("cmp-%s-%d", cmd.AccountID, len(existing))),
		AccountID:   cmd.AccountID,
		Name:        cmd.Name,
		Status:      domain.CampaignStatusActive,
		Objective:   cmd.Objective,
		DailyBudget: cmd.DailyBudget,
		BidStrategy: cmd.BidStrategy,
		StartDate:   today,
		EndDate:     "",
	}

	if err := s.campaigns.Insert(ctx, campaign); err != nil {
		return domain.Campaign{}, fmt.Errorf("insert campaign: %w", err)
	}
	return campaign, nil
}

// UpdateAccountDetails merges the provided name, timezone and industry
// fields into the account. Budget and spend are not touched.
func (s *Service) UpdateAccountDetails(ctx context.Context, id domain.AccountID, details domain.AccountDetails) (domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.Account{}, nil
		}
		return domain.Account{}, fmt.Errorf("get account: %w", err)
	}

	details.Apply(&account)

	if err := s.accounts.Save(ctx, account); err != nil {
		return domain.Account{}, fmt.Errorf("save account: %w", err)
	}
	return account, nil
}
