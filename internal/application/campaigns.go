package application

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
)

const defaultPageSize = 10

// ListCampaigns filters, sorts and paginates the campaign collection.
// The unsorted base order is most-recent-first; sorting is stable with
// the campaign ID as tiebreak so repeated queries paginate identically.
func (s *Service) ListCampaigns(ctx context.Context, filter CampaignFilter, sortBy CampaignSort, page, pageSize int) (CampaignPage, error) {
	var campaigns []domain.Campaign
	var err error
	if filter.AccountID != "" {
		campaigns, err = s.campaigns.ListByAccount(ctx, filter.AccountID)
	} else {
		campaigns, err = s.campaigns.List(ctx)
	}
	if err != nil {
		return CampaignPage{}, fmt.Errorf("list campaigns: %w", err)
	}

	filtered := campaigns[:0:0]
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	for _, c := range campaigns {
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		if filter.Objective != "" && c.Objective != filter.Objective {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		filtered = append(filtered, c)
	}

	if sortBy.Key != "" {
		sortCampaigns(filtered, sortBy)
	}

	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return CampaignPage{
		Campaigns:  append([]domain.Campaign(nil), filtered[start:end]...),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func sortCampaigns(campaigns []domain.Campaign, by CampaignSort) {
	less := func(a, b domain.Campaign) bool {
		switch by.Key {
		case CampaignSortName:
			return a.Name < b.Name
		case CampaignSortStatus:
			return a.Status < b.Status
		case CampaignSortObjective:
			return a.Objective < b.Objective
		case CampaignSortDailyBudget:
			return a.DailyBudget < b.DailyBudget
		case CampaignSortTotalSpend:
			return a.TotalSpend < b.TotalSpend
		case CampaignSortImpressions:
			return a.Impressions < b.Impressions
		case CampaignSortClicks:
			return a.Clicks < b.Clicks
		case CampaignSortConversions:
			return a.Conversions < b.Conversions
		case CampaignSortCPC:
			return a.CPC < b.CPC
		case CampaignSortCPM:
			return a.CPM < b.CPM
		default:
			return a.ID < b.ID
		}
	}

	sort.SliceStable(campaigns, func(i, j int) bool {
		a, b := campaigns[i], campaigns[j]
		if less(a, b) != less(b, a) {
			if by.Ascending {
				return less(a, b)
			}
			return less(b, a)
		}
		return a.ID < b.ID
	})
}

// ListAdGroups returns ad groups, optionally scoped to one campaign or
// one account. Unknown IDs yield an empty listing.
func (s *Service) ListAdGroups(ctx context.Context, filter AdGroupFilter) ([]domain.AdGroup, error) {
	if filter.CampaignID != "" {
		groups, err := s.adGroups.ListByCampaign(ctx, filter.CampaignID)
		if err != nil {
			return nil, fmt.Errorf("list ad groups by campaign: %w", err)
		}
		return groups, nil
	}

	if filter.AccountID != "" {
		campaigns, err := s.campaigns.ListByAccount(ctx, filter.AccountID)
		if err != nil {
			return nil, fmt.Errorf("list campaigns for account: %w", err)
		}
		var out []domain.AdGroup
		for _, c := range campaigns {
			groups, err := s.adGroups.ListByCampaign(ctx, c.ID)
			if err != nil {
				return nil, fmt.Errorf("list ad groups by campaign: %w", err)
			}
			out = append(out, groups...)
		}
		return out, nil
	}

	groups, err := s.adGroups.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ad groups: %w", err)
	}
	return groups, nil
}

// ListCreatives returns creatives, optionally filtered by type and
// review status.
func (s *Service) ListCreatives(ctx context.Context, filter CreativeFilter) ([]domain.Creative, error) {
	creatives, err := s.creatives.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list creatives: %w", err)
	}

	if filter.Type == "" && filter.Status == "" {
		return creatives, nil
	}

	out := creatives[:0:0]
	for _, c := range creatives {
		if filter.Type != "" && c.Type != filter.Type {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
