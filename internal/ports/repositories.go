package ports

import (
	"context"

	"github.com/D-C-Legacy/ad-admin/internal/domain"
)

type AccountRepository interface {
	GetByID(ctx context.Context, id domain.AccountID) (domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	Save(ctx context.Context, account domain.Account) error
}

type CampaignRepository interface {
	GetByID(ctx context.Context, id domain.CampaignID) (domain.Campaign, error)
	List(ctx context.Context) ([]domain.Campaign, error)
	ListByAccount(ctx context.Context, id domain.AccountID) ([]domain.Campaign, error)
	Save(ctx context.Context, campaign domain.Campaign) error
	// Insert prepends a new campaign so listings stay most-recent-first.
	Insert(ctx context.Context, campaign domain.Campaign) error
}

type AdGroupRepository interface {
	GetByID(ctx context.Context, id domain.AdGroupID) (domain.AdGroup, error)
	List(ctx context.Context) ([]domain.AdGroup, error)
	ListByCampaign(ctx context.Context, id domain.CampaignID) ([]domain.AdGroup, error)
	Save(ctx context.Context, adGroup domain.AdGroup) error
}

type CreativeRepository interface {
	GetByID(ctx context.Context, id domain.CreativeID) (domain.Creative, error)
	List(ctx context.Context) ([]domain.Creative, error)
	Save(ctx context.Context, creative domain.Creative) error
}
